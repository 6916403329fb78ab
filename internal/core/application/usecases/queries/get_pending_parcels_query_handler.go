package queries

import (
	"context"
	"database/sql"

	"paquexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingParcelsQueryHandler retrieves an agent's undelivered parcels.
// This is the work list an agent sees at the start of a route.
//
// Example:
//
//	handler := NewGetPendingParcelsQueryHandler(db)
//	query, _ := NewGetPendingParcelsQuery(agentID)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending parcels: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d parcels awaiting drop-off\n", len(pending))
type GetPendingParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingParcelsQueryHandler creates a handler for pending parcel queries.
// Requires a GORM database connection for query execution.
func NewGetPendingParcelsQueryHandler(db *gorm.DB) GetPendingParcelsQueryHandler {
	return GetPendingParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve the agent's pending parcels.
// Returns only undelivered parcels owned by the queried agent, sorted by
// parcel ID for consistent output. An unknown agent simply has no parcels.
func (h GetPendingParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingParcelsQuery,
) ([]GetPendingParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetPendingParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			address,
			description,
			is_delivered
		FROM parcels
		WHERE agent_id = ? AND is_delivered = false
		ORDER BY id
	`, query.AgentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetPendingParcelsQueryResponse
		var id uuid.UUID
		var description sql.NullString

		err = rows.Scan(
			&id,
			&parcelResp.TrackingCode,
			&parcelResp.Address,
			&description,
			&parcelResp.IsDelivered,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelResp.ID = parcelID
		parcelResp.Description = description.String

		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
