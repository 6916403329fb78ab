package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/core/ports"
)

// ErrEvidenceStorageFailed indicates the evidence photo could not be written to
// durable storage. The delivery is aborted before any database write, so the
// parcel record remains untouched.
var ErrEvidenceStorageFailed = errors.New("evidence storage failed")

// SubmitDeliveryResult exposes the outcome of a recorded delivery.
type SubmitDeliveryResult struct {
	// EvidenceKey is the logical key of the stored photo.
	EvidenceKey string
	// EvidenceURL is the externally retrievable location of the photo.
	EvidenceURL string
	// DeliveredAt is the timestamp recorded with the delivery.
	DeliveredAt time.Time
}

// SubmitDeliveryCommandHandler orchestrates the pending-to-delivered transition.
// It validates the parcel's existence and current state, persists the evidence
// photo, and commits the updated record as one logical unit.
//
// Ordering is deliberate: the already-delivered check happens before the photo is
// written, so a rejected attempt never leaves an orphaned evidence file. A storage
// failure aborts the operation before any database write. A database failure after
// a successful photo write reports failure; the database record is authoritative,
// and the stranded file is reclaimed later by the evidence sweep.
//
// Example:
//
//	handler := NewSubmitDeliveryCommandHandler(uowFactory, evidenceStore)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such parcel
//	case errors.Is(err, parcel.ErrParcelAlreadyDelivered):
//	    // idempotency guard fired; another attempt already won
//	case errors.Is(err, ErrEvidenceStorageFailed):
//	    // photo could not be stored; parcel untouched
//	case err != nil:
//	    // persistence failure
//	default:
//	    fmt.Println("evidence at", result.EvidenceURL)
//	}
type SubmitDeliveryCommandHandler struct {
	uowFactory    ParcelUoWFactory
	evidenceStore ports.EvidenceStore
}

// NewSubmitDeliveryCommandHandler creates a handler for delivery submissions.
// Requires a ParcelUoWFactory for transactional persistence and an EvidenceStore
// for the photo upload.
func NewSubmitDeliveryCommandHandler(
	uowFactory ParcelUoWFactory,
	evidenceStore ports.EvidenceStore,
) SubmitDeliveryCommandHandler {
	return SubmitDeliveryCommandHandler{
		uowFactory:    uowFactory,
		evidenceStore: evidenceStore,
	}
}

// Handle processes the delivery submission.
// Steps: load the parcel (not-found surfaces immediately), reject if already
// delivered, store the photo, record the delivery on the aggregate, and persist
// through the repository's guarded update so concurrent attempts for the same
// parcel have exactly one winner.
func (h SubmitDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitDeliveryCommand,
) (SubmitDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return SubmitDeliveryResult{}, err
	}

	// Check-before-write: a rejected transition must not orphan an evidence file.
	if aggregate.IsDelivered() {
		return SubmitDeliveryResult{}, parcel.ErrParcelAlreadyDelivered
	}

	photoKey, err := h.evidenceStore.Store(ctx, cmd.ParcelID(), cmd.Photo(), cmd.PhotoNameHint())
	if err != nil {
		return SubmitDeliveryResult{}, fmt.Errorf("%w: %w", ErrEvidenceStorageFailed, err)
	}

	deliveredAt := time.Now().UTC()
	if err = aggregate.Deliver(cmd.Coordinates(), photoKey, deliveredAt); err != nil {
		return SubmitDeliveryResult{}, err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return SubmitDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitDeliveryResult{}, err
	}

	return SubmitDeliveryResult{
		EvidenceKey: photoKey,
		EvidenceURL: h.evidenceStore.PublicURL(photoKey),
		DeliveredAt: deliveredAt,
	}, nil
}
