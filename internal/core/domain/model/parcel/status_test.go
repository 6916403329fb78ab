package parcel_test

import (
	"testing"

	"paquexpress/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  parcel.Status
		wantErr bool
	}{
		{"pending is valid", parcel.Pending, false},
		{"delivered is valid", parcel.Delivered, false},
		{"unknown is invalid", parcel.Unknown, true},
		{"out of range value is invalid", parcel.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", parcel.Pending.String())
	assert.Equal(t, "Delivered", parcel.Delivered.String())
	assert.Equal(t, "Unknown", parcel.Unknown.String())
	assert.Equal(t, "Unknown", parcel.Status(42).String())
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("pending transitions to delivered", func(t *testing.T) {
		newStatus, err := parcel.Pending.Deliver()

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, newStatus)
	})

	t.Run("delivered cannot be delivered again", func(t *testing.T) {
		_, err := parcel.Delivered.Deliver()

		require.Error(t, err)
		assert.ErrorIs(t, err, parcel.ErrParcelAlreadyDelivered)
	})

	t.Run("unknown cannot be delivered", func(t *testing.T) {
		_, err := parcel.Unknown.Deliver()

		require.Error(t, err)
		assert.NotErrorIs(t, err, parcel.ErrParcelAlreadyDelivered)
	})
}

func TestStatus_ValidateCanHaveEvidence(t *testing.T) {
	tests := []struct {
		name     string
		status   parcel.Status
		evidence bool
		wantErr  bool
	}{
		{"pending without evidence", parcel.Pending, false, false},
		{"delivered with evidence", parcel.Delivered, true, false},
		{"pending with evidence is forbidden", parcel.Pending, true, true},
		{"delivered without evidence is forbidden", parcel.Delivered, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.ValidateCanHaveEvidence(tt.evidence)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
