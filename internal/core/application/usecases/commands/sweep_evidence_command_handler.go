package commands

import (
	"context"
	"time"

	"paquexpress/internal/core/ports"
)

// SweepEvidenceCommandHandler reclaims evidence files that no delivered parcel
// references. A file can be stranded when the photo upload succeeds but the
// delivery transaction fails afterwards; the database record is authoritative,
// so such files are garbage. The handler compares the store's contents against
// the photo keys referenced in storage and removes unreferenced files older
// than the command's retention window.
type SweepEvidenceCommandHandler struct {
	uowFactory    ParcelUoWFactory
	evidenceStore ports.EvidenceStore
}

// NewSweepEvidenceCommandHandler creates a handler for evidence sweep operations.
func NewSweepEvidenceCommandHandler(
	uowFactory ParcelUoWFactory,
	evidenceStore ports.EvidenceStore,
) SweepEvidenceCommandHandler {
	return SweepEvidenceCommandHandler{
		uowFactory:    uowFactory,
		evidenceStore: evidenceStore,
	}
}

// Handle processes the sweep command and returns the number of files removed.
// The sweep reads without a transaction: the referenced-key set only grows, so
// a key committed after the read simply survives until it is referenced, and a
// file younger than the retention window is never touched.
func (h SweepEvidenceCommandHandler) Handle(ctx context.Context, cmd SweepEvidenceCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	referencedKeys, err := uow.ParcelRepository().GetAllEvidenceKeys(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, len(referencedKeys))
	for _, key := range referencedKeys {
		referenced[key] = struct{}{}
	}

	stored, err := h.evidenceStore.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.Retention())
	removed := 0
	for _, file := range stored {
		if _, ok := referenced[file.Key]; ok {
			continue
		}
		if file.StoredAt.After(cutoff) {
			continue
		}
		if err = h.evidenceStore.Remove(ctx, file.Key); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
