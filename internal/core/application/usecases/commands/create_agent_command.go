package commands

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentUsernameIsRequired = errors.New("username is required")
	ErrAgentPasswordIsRequired = errors.New("password is required")
)

// CreateAgentCommand represents an administrative request to provision a new
// delivery agent with login credentials. This is seeding scaffolding rather than
// part of the delivery workflow's public API.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	username string
	password string

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to provision a delivery agent.
// Validates that the agent id is valid and username and password are non-empty.
// The plaintext password is carried only until the handler hashes it; it is
// never persisted or logged.
func NewCreateAgentCommand(agentID kernel.UUID, username string, password string) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAgentCommandIsNotConstructed if validation fails.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the new agent.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Username returns the new agent's login name.
func (c CreateAgentCommand) Username() string {
	return c.username
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreateAgentCommand) Password() string {
	return c.password
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setUsername(username string) error {
	if username == "" {
		return ErrAgentUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *CreateAgentCommand) setPassword(password string) error {
	if password == "" {
		return ErrAgentPasswordIsRequired
	}

	c.password = password
	return nil
}
