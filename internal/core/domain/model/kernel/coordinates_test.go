package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{
			name:      "valid coordinates",
			latitude:  19.43,
			longitude: -99.13,
			wantErr:   false,
		},
		{
			name:      "valid coordinates at min bounds",
			latitude:  kernel.LatitudeMin,
			longitude: kernel.LongitudeMin,
			wantErr:   false,
		},
		{
			name:      "valid coordinates at max bounds",
			latitude:  kernel.LatitudeMax,
			longitude: kernel.LongitudeMax,
			wantErr:   false,
		},
		{
			name:      "valid coordinates at origin",
			latitude:  0,
			longitude: 0,
			wantErr:   false,
		},
		{
			name:      "invalid latitude too small",
			latitude:  -90.0001,
			longitude: 0,
			wantErr:   true,
		},
		{
			name:      "invalid latitude too large",
			latitude:  90.0001,
			longitude: 0,
			wantErr:   true,
		},
		{
			name:      "invalid longitude too small",
			latitude:  0,
			longitude: -180.0001,
			wantErr:   true,
		},
		{
			name:      "invalid longitude too large",
			latitude:  0,
			longitude: 180.0001,
			wantErr:   true,
		},
		{
			name:      "both components invalid",
			latitude:  100,
			longitude: 200,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := kernel.NewCoordinates(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.latitude, coords.Latitude(), 0)
			assert.InDelta(t, tt.longitude, coords.Longitude(), 0)
			assert.NoError(t, coords.Validate())
		})
	}
}

func TestNewCoordinates_BothViolationsReported(t *testing.T) {
	_, err := kernel.NewCoordinates(100, 200)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("constructed coordinates are valid", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(10, 20)
		require.NoError(t, err)
		require.NoError(t, coords.Validate())
	})

	t.Run("zero value coordinates are invalid", func(t *testing.T) {
		var coords kernel.Coordinates
		err := coords.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a, err := kernel.NewCoordinates(19.43, -99.13)
		require.NoError(t, err)
		b, err := kernel.NewCoordinates(19.43, -99.13)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a, err := kernel.NewCoordinates(19.43, -99.13)
		require.NoError(t, err)
		b, err := kernel.NewCoordinates(40.71, -74.00)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		a, err := kernel.NewCoordinates(19.43, -99.13)
		require.NoError(t, err)
		var b kernel.Coordinates

		_, err = a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestCoordinates_String(t *testing.T) {
	coords, err := kernel.NewCoordinates(19.43, -99.13)
	require.NoError(t, err)

	assert.Equal(t, "Coordinates(19.430000,-99.130000)", coords.String())
}
