package ports

import (
	"context"
	"io"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
)

// StoredEvidence describes one file present in the evidence store's namespace.
type StoredEvidence struct {
	// Key is the logical identifier of the file within the store.
	Key string
	// StoredAt is when the file was written.
	StoredAt time.Time
}

// EvidenceStore persists uploaded delivery photos to durable storage under
// collision-resistant names and resolves stable keys to retrievable locations.
//
// The namespace is write-once-per-key by construction: no two stores collide,
// even for concurrent deliveries at the same instant, so no locking is needed.
type EvidenceStore interface {
	// Store writes the photo content fully to durable storage and returns its
	// logical key. The key is never handed out before the content is completely
	// written; a partially written file is never observable behind a returned key.
	// The derived name incorporates the parcel id, a high-resolution timestamp,
	// and the original filename's extension.
	// Fails with a storage error if the destination is not writable; the caller
	// must not proceed to mark the parcel delivered in that case.
	Store(ctx context.Context, parcelID kernel.UUID, content io.Reader, filenameHint string) (string, error)

	// List enumerates all files currently present in the store.
	List(ctx context.Context) ([]StoredEvidence, error)

	// Remove deletes the file with the given key. Removing a key that does not
	// exist is not an error.
	Remove(ctx context.Context, key string) error

	// PublicURL resolves a logical key to its externally retrievable location.
	// Resolution is deterministic: the same key always yields the same URL.
	PublicURL(key string) string
}
