// Package agent provides the domain entity for delivery agents in the parcel
// delivery system. An agent is a delivery person with login credentials who owns
// zero or more parcels assigned for drop-off.
//
// Key business rules:
//   - Agents must have a valid unique identifier, non-empty username, and password digest
//   - The password digest is opaque to the domain; hashing and verification are
//     performed by the credential verifier adapter
//   - Agents are created by an administrative provisioning operation and never deleted
package agent
