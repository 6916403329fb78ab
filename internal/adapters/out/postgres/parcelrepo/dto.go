// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The delivered flag is stored denormalized next to the evidence columns so the
// guarded update can express the one-winner condition in a single statement.
type ParcelDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode string     `gorm:"uniqueIndex;not null"`
	Address      string     `gorm:"not null"`
	Description  string
	AgentID      *uuid.UUID `gorm:"type:uuid;index"`
	IsDelivered  bool       `gorm:"not null;default:false"`
	Latitude     *float64
	Longitude    *float64
	PhotoKey     *string
	DeliveredAt  *time.Time
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
// Evidence columns stay NULL until the parcel is delivered.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	dto := ParcelDTO{
		ID:           aggregate.ID().Bytes(),
		TrackingCode: aggregate.TrackingCode(),
		Address:      aggregate.Address(),
		Description:  aggregate.Description(),
		AgentID:      agentID,
		IsDelivered:  aggregate.IsDelivered(),
		CreatedAt:    aggregate.CreatedAt(),
	}

	if evidence := aggregate.Evidence(); evidence != nil {
		latitude := evidence.Coordinates().Latitude()
		longitude := evidence.Coordinates().Longitude()
		photoKey := evidence.PhotoKey()
		deliveredAt := evidence.DeliveredAt()

		dto.Latitude = &latitude
		dto.Longitude = &longitude
		dto.PhotoKey = &photoKey
		dto.DeliveredAt = &deliveredAt
	}

	return dto
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including delivery evidence using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	status := parcel.Pending
	var evidence *parcel.Evidence
	if dto.IsDelivered {
		status = parcel.Delivered

		coordinates, coordErr := kernel.NewCoordinates(
			derefFloat(dto.Latitude), derefFloat(dto.Longitude))
		if coordErr != nil {
			return nil, coordErr
		}

		ev, evidenceErr := parcel.NewEvidence(
			coordinates, derefString(dto.PhotoKey), derefTime(dto.DeliveredAt))
		if evidenceErr != nil {
			return nil, evidenceErr
		}

		evidence = &ev
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		dto.Address,
		dto.Description,
		agentID,
		status,
		evidence,
		dto.CreatedAt,
	)
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefTime(v *time.Time) time.Time {
	if v == nil {
		return time.Time{}
	}
	return *v
}
