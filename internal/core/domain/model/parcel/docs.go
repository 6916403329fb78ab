// Package parcel provides domain entities and business logic for parcel management
// in the delivery system. It implements the Parcel aggregate root with lifecycle
// management and the proof-of-delivery transition.
//
// The package includes:
//   - Parcel: The aggregate root that manages parcel identity, ownership, and lifecycle
//   - Status: A state machine that enforces the single Pending -> Delivered transition
//   - Evidence: A value object bundling the GPS coordinates, photo reference, and
//     timestamp that prove a delivery occurred
//
// Key business rules:
//   - Parcels must have a valid unique identifier, a unique immutable tracking code,
//     and a non-empty destination address
//   - A parcel is delivered at most once; Delivered is a terminal state and retry
//     attempts are rejected rather than merged
//   - Delivery evidence is all-or-nothing: a pending parcel carries no evidence
//     fields and a delivered parcel carries all of them
//   - The delivery timestamp can never precede the parcel's creation time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
