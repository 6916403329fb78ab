package parcel_test

import (
	"testing"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvidence_ValidInput(t *testing.T) {
	coords, err := kernel.NewCoordinates(19.43, -99.13)
	require.NoError(t, err)
	deliveredAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	evidence, err := parcel.NewEvidence(coords, "pkg_abc_1717245000.jpg", deliveredAt)

	require.NoError(t, err)
	assert.Equal(t, coords, evidence.Coordinates())
	assert.Equal(t, "pkg_abc_1717245000.jpg", evidence.PhotoKey())
	assert.Equal(t, deliveredAt, evidence.DeliveredAt())
	require.NoError(t, evidence.Validate())
}

func TestNewEvidence_InvalidCoordinates(t *testing.T) {
	var coords kernel.Coordinates // zero value

	_, err := parcel.NewEvidence(coords, "photo.jpg", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}

func TestNewEvidence_EmptyPhotoKey(t *testing.T) {
	coords, err := kernel.NewCoordinates(19.43, -99.13)
	require.NoError(t, err)

	_, err = parcel.NewEvidence(coords, "", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, parcel.ErrPhotoKeyIsRequired)
}

func TestNewEvidence_ZeroTimestamp(t *testing.T) {
	coords, err := kernel.NewCoordinates(19.43, -99.13)
	require.NoError(t, err)

	_, err = parcel.NewEvidence(coords, "photo.jpg", time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, parcel.ErrDeliveredAtIsRequired)
}

func TestEvidence_Validate_ZeroValue(t *testing.T) {
	var evidence parcel.Evidence

	err := evidence.Validate()

	require.Error(t, err)
	assert.Equal(t, parcel.ErrEvidenceIsNotConstructed, err)
}
