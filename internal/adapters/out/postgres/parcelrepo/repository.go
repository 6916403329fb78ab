package parcelrepo

import (
	"context"
	"errors"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
// A duplicate tracking code surfaces as an ObjectAlreadyExistsError.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"tracking_code", aggregate.TrackingCode(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
//
// When the aggregate carries a delivery, the statement updates the row only while
// its stored delivered flag is still false. Concurrent submissions for the same
// parcel then resolve at the database: the first statement to execute flips the
// flag, every later one matches zero rows and surfaces ErrParcelAlreadyDelivered.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	tx := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID)
	if dto.IsDelivered {
		tx = tx.Where("is_delivered = ?", false)
	}

	result := tx.Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if dto.IsDelivered {
			return r.classifyDeliveryConflict(ctx, aggregate.ID())
		}
		return errs.NewObjectNotFoundError("parcelId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyDeliveryConflict distinguishes a lost delivery race from a missing row.
func (r *GormParcelRepository) classifyDeliveryConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("parcelId", id.String())
	}

	return parcel.ErrParcelAlreadyDelivered
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingByAgent retrieves all undelivered parcels owned by the agent, sorted by id.
func (r *GormParcelRepository) GetAllPendingByAgent(
	ctx context.Context, agentID kernel.UUID,
) ([]*parcel.Parcel, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Order("id").
		Find(&dtos, "agent_id = ? AND is_delivered = ?", agentID.Bytes(), false).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// GetAllEvidenceKeys retrieves the photo keys referenced by delivered parcels.
func (r *GormParcelRepository) GetAllEvidenceKeys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("photo_key IS NOT NULL").
		Pluck("photo_key", &keys).Error; err != nil {
		return nil, err
	}

	return keys, nil
}
