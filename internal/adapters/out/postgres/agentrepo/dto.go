// Package agentrepo provides data transfer objects and mapping functions for agent persistence.
package agentrepo

import (
	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// Only the password digest is stored; plaintext never reaches this layer.
type AgentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	PasswordDigest string    `gorm:"not null"`
}

// TableName specifies the database table name for agent entities.
// Overrides GORM's default naming convention to use "agents".
func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:             aggregate.ID().Bytes(),
		Username:       aggregate.Username(),
		PasswordDigest: aggregate.PasswordDigest(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Username, dto.PasswordDigest)
}
