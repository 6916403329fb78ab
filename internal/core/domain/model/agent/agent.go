package agent

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrUsernameIsRequired is returned when attempting to create an agent without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordDigestIsRequired is returned when attempting to create an agent without a password digest.
	ErrPasswordDigestIsRequired = errs.NewValueIsRequiredError("password digest")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")
)

// Agent represents a delivery agent in the system.
// It is the identity record for a delivery person: a unique id, a unique username,
// and a one-way password digest used by the authentication gate.
//
// The digest is treated as opaque data. The domain never interprets, logs, or
// exposes it beyond handing it to the credential verifier.
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// username is the unique login name, matched case-sensitively
	username string
	// passwordDigest is the salted one-way digest of the agent's password
	passwordDigest string
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a new Agent with the specified identity and credentials.
// This is the only way to create a valid Agent instance for a fresh registration.
//
// Parameters:
//   - id: Unique identifier for the agent (must be a valid UUID)
//   - username: Unique login name (must be non-empty)
//   - passwordDigest: Salted one-way digest produced by the credential verifier (must be non-empty)
//
// Returns the constructed agent, or a validation error aggregating all invalid inputs.
func NewAgent(id kernel.UUID, username string, passwordDigest string) (*Agent, error) {
	a := &Agent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setPasswordDigest(passwordDigest),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent from persistent storage.
// The restored agent behaves identically to one created through NewAgent;
// the same validation rules apply.
func RestoreAgent(id kernel.UUID, username string, passwordDigest string) (*Agent, error) {
	return NewAgent(id, username, passwordDigest)
}

// Validate ensures the Agent instance was properly constructed through a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Username returns the agent's unique login name.
func (a *Agent) Username() string {
	return a.username
}

// PasswordDigest returns the agent's opaque password digest.
// Callers must hand this only to the credential verifier; it must never be
// written to logs or returned in responses.
func (a *Agent) PasswordDigest() string {
	return a.passwordDigest
}

// setID validates and sets the agent's unique identifier.
func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setUsername validates and sets the agent's username.
func (a *Agent) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	a.username = username
	return nil
}

// setPasswordDigest validates and sets the agent's password digest.
func (a *Agent) setPasswordDigest(passwordDigest string) error {
	if passwordDigest == "" {
		return ErrPasswordDigestIsRequired
	}
	a.passwordDigest = passwordDigest
	return nil
}
