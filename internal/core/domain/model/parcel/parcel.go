package parcel

import (
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
	// the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
	// ErrTrackingCodeIsRequired is returned when attempting to create a parcel without a tracking code.
	ErrTrackingCodeIsRequired = errs.NewValueIsRequiredError("tracking code")
	// ErrAddressIsRequired is returned when attempting to create a parcel without a destination address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrDeliveredBeforeCreated is returned when a delivery timestamp precedes the parcel's creation time.
	ErrDeliveredBeforeCreated = errs.NewValueIsInvalidError(
		"delivery timestamp cannot precede parcel creation time")
)

// Parcel represents a unit of delivery work in the system. It is the aggregate root
// that manages the parcel lifecycle from assignment through proof of delivery.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and a unique, immutable tracking code
//   - Must have a non-empty destination address
//   - Either the parcel is Pending with no evidence, or Delivered with complete
//     evidence; partial evidence state is forbidden
//   - The delivery timestamp, when present, is never earlier than the creation time
//   - The owning agent, once assigned, does not change
//   - Can only be created through NewParcel or RestoreParcel
//
// The Parcel struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// trackingCode is the external identifier, globally unique and immutable after creation
	trackingCode string

	// address is the destination address
	address string

	// description is free-text information about the parcel contents
	description string

	// agentID is the owning agent's ID (nil until assignment)
	agentID *kernel.UUID

	// status represents the current state in the parcel lifecycle
	status Status

	// evidence is the proof of delivery (nil until delivered)
	evidence *Evidence

	// createdAt is the moment the parcel record was created
	createdAt time.Time

	// guard ensures the parcel was created via a constructor
	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel instance with validation. This is the only way to
// create a fresh parcel, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the parcel (must be a valid UUID)
//   - trackingCode: External identifier (must be non-empty; uniqueness is enforced by storage)
//   - address: Destination address (must be non-empty)
//   - description: Free-text description (may be empty)
//   - agentID: Owning agent, or nil if the parcel starts unassigned
//   - createdAt: Creation time of the record (must be non-zero)
//
// The constructor validates all inputs and ensures the parcel is created in
// Pending status with no evidence attached.
func NewParcel(
	id kernel.UUID,
	trackingCode string,
	address string,
	description string,
	agentID *kernel.UUID,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setAddress(address),
		p.setDescription(description),
		p.setAgentID(agentID),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage.
// Unlike NewParcel which always produces a pending parcel, this constructor restores
// a parcel to its previously persisted state, including delivery evidence.
//
// Business rules enforced on restoration:
//   - Status must be a valid lifecycle state
//   - Evidence presence must match the status: Pending parcels carry none,
//     Delivered parcels carry a complete Evidence value
//   - A restored delivery timestamp must not precede the creation time
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	address string,
	description string,
	agentID *kernel.UUID,
	status Status,
	evidence *Evidence,
	createdAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, trackingCode, address, description, agentID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveEvidence(evidence != nil); err != nil {
		return nil, err
	}

	if evidence != nil {
		if err = evidence.Validate(); err != nil {
			return nil, err
		}
		if evidence.DeliveredAt().Before(createdAt) {
			return nil, ErrDeliveredBeforeCreated
		}
	}

	p.status = status
	p.evidence = evidence
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the parcel's external tracking code.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// Address returns the destination address.
func (p *Parcel) Address() string {
	return p.address
}

// Description returns the free-text parcel description.
func (p *Parcel) Description() string {
	return p.description
}

// Agent returns the owning agent's ID.
// Returns nil if no agent is assigned.
func (p *Parcel) Agent() *kernel.UUID {
	return p.agentID
}

// Status returns the current status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// IsDelivered reports whether the parcel has reached the terminal Delivered state.
func (p *Parcel) IsDelivered() bool {
	return p.status == Delivered
}

// Evidence returns the proof of delivery.
// Returns nil while the parcel is pending.
func (p *Parcel) Evidence() *Evidence {
	return p.evidence
}

// CreatedAt returns the moment the parcel record was created.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// Deliver records the proof of delivery and transitions the parcel to Delivered.
//
// This method enforces the following business rules:
//   - The parcel must be in Pending status; a second delivery attempt fails with
//     ErrParcelAlreadyDelivered and leaves the parcel untouched
//   - The evidence components (coordinates, photo key, timestamp) must all be valid;
//     they are attached together or not at all
//   - The delivery timestamp must not precede the parcel's creation time
//
// Parameters:
//   - coordinates: GPS position of the drop-off
//   - photoKey: Logical key of the stored delivery photo
//   - deliveredAt: Moment the delivery is recorded
//
// After successful delivery, the parcel's status is Delivered, which is the final
// state in the parcel lifecycle.
func (p *Parcel) Deliver(coordinates kernel.Coordinates, photoKey string, deliveredAt time.Time) error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	evidence, err := NewEvidence(coordinates, photoKey, deliveredAt)
	if err != nil {
		return err
	}

	if deliveredAt.Before(p.createdAt) {
		return ErrDeliveredBeforeCreated
	}

	p.status = newStatus
	p.evidence = &evidence
	return nil
}

// setID validates and sets the parcel's unique identifier.
// This is a private method used only during construction.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setTrackingCode validates and sets the parcel's tracking code.
// This is a private method used only during construction; the code is immutable afterwards.
func (p *Parcel) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	p.trackingCode = trackingCode
	return nil
}

// setAddress validates and sets the destination address.
// This is a private method used only during construction.
func (p *Parcel) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	p.address = address
	return nil
}

// setDescription sets the free-text description. An empty description is allowed.
func (p *Parcel) setDescription(description string) error {
	p.description = description
	return nil
}

// setAgentID validates and sets the owning agent reference.
// A nil agentID is allowed: the parcel starts unassigned.
func (p *Parcel) setAgentID(agentID *kernel.UUID) error {
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return err
		}
	}
	p.agentID = agentID
	return nil
}

// setCreatedAt validates and sets the creation time.
func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("created at",
			fmt.Errorf("zero time is not a valid creation time"))
	}
	p.createdAt = createdAt
	return nil
}
