package commands

import (
	"errors"
	"io"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrSubmitDeliveryCommandIsNotConstructed = errors.New(
		"SubmitDeliveryCommand must be created via NewSubmitDeliveryCommand constructor",
	)
	ErrPhotoIsRequired = errors.New("photo content is required")
)

// SubmitDeliveryCommand represents a request to record proof of delivery for a parcel:
// the drop-off GPS position and the evidence photo captured by the agent.
//
// Coordinate bounds are validated at construction, before the command reaches the
// handler, so an out-of-range position can never trigger storage or database work.
//
// Example:
//
//	cmd, err := NewSubmitDeliveryCommand(parcelID, 19.43, -99.13, photoFile, "evidence.jpg")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewSubmitDeliveryCommandHandler(uowFactory, evidenceStore)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to record delivery: %w", err)
//	}
//	fmt.Printf("Evidence available at %s", result.EvidenceURL)
type SubmitDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	coordinates   kernel.Coordinates
	photo         io.Reader
	photoNameHint string

	guard guard.ConstructorGuard
}

// NewSubmitDeliveryCommand creates a command to record a parcel delivery.
// Validates that the parcel id is valid, the latitude/longitude are within
// [-90, 90] and [-180, 180], and photo content is present.
// Returns an error if any validation fails.
func NewSubmitDeliveryCommand(
	parcelID kernel.UUID,
	latitude float64,
	longitude float64,
	photo io.Reader,
	photoNameHint string,
) (SubmitDeliveryCommand, error) {
	cmd := SubmitDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCoordinates(latitude, longitude),
		cmd.setPhoto(photo),
	); err != nil {
		return SubmitDeliveryCommand{}, err
	}

	cmd.photoNameHint = photoNameHint
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitDeliveryCommandIsNotConstructed if validation fails.
func (c SubmitDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being delivered.
func (c SubmitDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Coordinates returns the validated drop-off position.
func (c SubmitDeliveryCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

// Photo returns the evidence photo content stream.
func (c SubmitDeliveryCommand) Photo() io.Reader {
	return c.photo
}

// PhotoNameHint returns the original filename of the uploaded photo.
// Used only to preserve the file extension; may be empty.
func (c SubmitDeliveryCommand) PhotoNameHint() string {
	return c.photoNameHint
}

func (c *SubmitDeliveryCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *SubmitDeliveryCommand) setCoordinates(latitude float64, longitude float64) error {
	coordinates, err := kernel.NewCoordinates(latitude, longitude)
	if err != nil {
		return err
	}

	c.coordinates = coordinates
	return nil
}

func (c *SubmitDeliveryCommand) setPhoto(photo io.Reader) error {
	if photo == nil {
		return ErrPhotoIsRequired
	}

	c.photo = photo
	return nil
}
