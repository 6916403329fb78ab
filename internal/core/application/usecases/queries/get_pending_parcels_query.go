package queries

import (
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/guard"
)

var (
	ErrGetPendingParcelsQueryIsNotConstructed = errors.New(
		"GetPendingParcelsQuery must be created via NewGetPendingParcelsQuery constructor",
	)
)

// GetPendingParcelsQuery retrieves all undelivered parcels owned by one agent.
// An agent with nothing pending yields an empty result, not an error.
type GetPendingParcelsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingParcelsQuery creates a query for an agent's pending workload.
// The agent id must be a valid UUID.
func NewGetPendingParcelsQuery(agentID kernel.UUID) (GetPendingParcelsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetPendingParcelsQuery{}, err
	}

	return GetPendingParcelsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingParcelsQueryIsNotConstructed if validation fails.
func (q GetPendingParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingParcelsQueryIsNotConstructed)
}

// AgentID returns the owning agent whose pending parcels are requested.
func (q GetPendingParcelsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetPendingParcelsQueryResponse summarizes one parcel for the agent's work list.
// Parcels returned by this query are always undelivered, so no evidence fields
// appear here.
type GetPendingParcelsQueryResponse struct {
	ID           kernel.UUID
	TrackingCode string
	Address      string
	Description  string
	IsDelivered  bool
}
