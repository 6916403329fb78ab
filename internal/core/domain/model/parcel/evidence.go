package parcel

import (
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var (
	// ErrEvidenceIsNotConstructed is returned when using an improperly initialized Evidence value.
	ErrEvidenceIsNotConstructed = errs.NewValueIsRequiredError(
		"evidence must be created via NewEvidence constructor")
	// ErrPhotoKeyIsRequired is returned when attempting to create evidence without a photo reference.
	ErrPhotoKeyIsRequired = errs.NewValueIsRequiredError("photo key")
	// ErrDeliveredAtIsRequired is returned when attempting to create evidence without a timestamp.
	ErrDeliveredAtIsRequired = errs.NewValueIsRequiredError("delivered at")
)

// Evidence is an immutable value object bundling the proof of a completed delivery:
// the GPS coordinates of the drop-off, the logical key of the stored photo, and the
// delivery timestamp. The three always travel together; a parcel either has a
// complete Evidence value or none at all.
//
// The photo key is a logical identifier within the evidence store's namespace,
// not a filesystem path or URL. Resolution to a retrievable location happens at
// read time through the evidence store.
type Evidence struct {
	coordinates kernel.Coordinates
	photoKey    string
	deliveredAt time.Time
	guard       guard.ConstructorGuard
}

// NewEvidence creates a complete proof-of-delivery value.
// All three components are required: validated drop-off coordinates, a non-empty
// photo key, and a non-zero delivery timestamp.
func NewEvidence(coordinates kernel.Coordinates, photoKey string, deliveredAt time.Time) (Evidence, error) {
	if err := errors.Join(
		coordinates.Validate(),
		validatePhotoKey(photoKey),
		validateDeliveredAt(deliveredAt),
	); err != nil {
		return Evidence{}, err
	}

	return Evidence{
		coordinates: coordinates,
		photoKey:    photoKey,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Evidence was properly constructed using the constructor.
func (e Evidence) Validate() error {
	return e.guard.Validate(ErrEvidenceIsNotConstructed)
}

// Coordinates returns the GPS position recorded at the drop-off.
func (e Evidence) Coordinates() kernel.Coordinates {
	return e.coordinates
}

// PhotoKey returns the logical key of the stored delivery photo.
func (e Evidence) PhotoKey() string {
	return e.photoKey
}

// DeliveredAt returns the moment the delivery was recorded.
func (e Evidence) DeliveredAt() time.Time {
	return e.deliveredAt
}

func validatePhotoKey(photoKey string) error {
	if photoKey == "" {
		return ErrPhotoKeyIsRequired
	}
	return nil
}

func validateDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return ErrDeliveredAtIsRequired
	}
	return nil
}
