package commands

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrAssignParcelCommandIsNotConstructed = errors.New(
		"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
	)
	ErrTrackingCodeIsRequired = errors.New("tracking code is required")
	ErrAddressIsRequired      = errors.New("address is required")
)

// AssignParcelCommand represents an administrative request to register a parcel
// and place it on an agent's pending list. Like agent provisioning, this is
// seeding scaffolding outside the delivery workflow's public API.
type AssignParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	agentID      kernel.UUID
	trackingCode string
	address      string
	description  string

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command to register a parcel for an agent.
// Validates that both ids are valid and the tracking code and address are non-empty.
// Returns an error if any validation fails.
func NewAssignParcelCommand(
	parcelID kernel.UUID,
	agentID kernel.UUID,
	trackingCode string,
	address string,
	description string,
) (AssignParcelCommand, error) {
	cmd := AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAgentID(agentID),
		cmd.setTrackingCode(trackingCode),
		cmd.setAddress(address),
	); err != nil {
		return AssignParcelCommand{}, err
	}

	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignParcelCommandIsNotConstructed if validation fails.
func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c AssignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// AgentID returns the identifier of the agent receiving the parcel.
func (c AssignParcelCommand) AgentID() kernel.UUID {
	return c.agentID
}

// TrackingCode returns the parcel's external tracking code.
func (c AssignParcelCommand) TrackingCode() string {
	return c.trackingCode
}

// Address returns the destination address.
func (c AssignParcelCommand) Address() string {
	return c.address
}

// Description returns the free-text parcel description.
func (c AssignParcelCommand) Description() string {
	return c.description
}

func (c *AssignParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignParcelCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *AssignParcelCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *AssignParcelCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
