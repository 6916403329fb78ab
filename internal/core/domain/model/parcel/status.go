package parcel

import (
	"errors"
	"fmt"

	"paquexpress/internal/pkg/errs"
)

// ErrParcelAlreadyDelivered is returned when attempting to deliver a parcel that has
// already been delivered. Re-delivery attempts are rejected, never silently merged.
var ErrParcelAlreadyDelivered = errors.New("parcel is already delivered")

// Status represents the lifecycle state of a parcel.
// It implements a state machine with a single allowed transition to ensure a
// parcel is delivered exactly once.
//
// State transitions:
//
//	Pending ──> Delivered
//
// Delivered is terminal: no transition leads out of it, and a repeated delivery
// attempt fails with ErrParcelAlreadyDelivered.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a parcel is assigned for delivery.
	// Parcels in this status are awaiting drop-off by their agent.
	Pending

	// Delivered indicates the parcel was dropped off and proof of delivery recorded.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Delivered. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveEvidence validates the consistency between parcel status and the
// presence of delivery evidence. Enforces the all-or-nothing evidence rule.
//
// Business Rules:
//   - Pending parcels must not carry evidence
//   - Delivered parcels must carry evidence
//
// Parameters:
//   - evidence: whether the parcel has delivery evidence attached
//
// Returns a validation error if status and evidence presence are inconsistent.
func (s Status) ValidateCanHaveEvidence(evidence bool) error {
	if evidence && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have evidence", s.String()),
		)
	}

	if !evidence && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no evidence", s.String()),
		)
	}

	return nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered (proof of delivery recorded)
//
// Invalid transitions:
//   - Delivered -> Delivered (fails with ErrParcelAlreadyDelivered; the idempotency guard)
//   - Unknown -> Delivered (invalid initial state)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Deliver() (Status, error) {
	if s == Delivered {
		return 0, ErrParcelAlreadyDelivered
	}
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
