package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// Fails with an already-exists conflict if the username is taken.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no agent with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetByUsername retrieves an agent by its unique username (case-sensitive
	// exact match). Returns an ObjectNotFoundError on a lookup miss.
	GetByUsername(ctx context.Context, username string) (*agent.Agent, error)
}
