package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// It is the sole writer of parcel state: the delivery workflow never mutates
// storage directly, only through these operations, so every write is observable
// as a single commit.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// Fails with an already-exists conflict if the tracking code is taken.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// When the aggregate carries a delivery, the write is guarded by the stored
	// delivered flag so that concurrent delivery attempts for the same parcel
	// have exactly one winner; losers observe an already-delivered conflict.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no parcel with that id exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetAllPendingByAgent retrieves all undelivered parcels owned by the agent,
	// sorted by id for deterministic ordering. An agent with nothing pending
	// yields an empty slice, not an error.
	GetAllPendingByAgent(ctx context.Context, agentID kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllEvidenceKeys retrieves the photo keys referenced by delivered parcels.
	// Used by the evidence sweep to distinguish referenced files from orphans.
	GetAllEvidenceKeys(ctx context.Context) ([]string, error)
}
