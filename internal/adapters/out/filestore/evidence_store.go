// Package filestore persists delivery evidence photos on the local filesystem.
// Keys are derived from the parcel id and a high-resolution timestamp, so
// concurrent writes never collide and a key uniquely names one file forever.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/ports"
	"paquexpress/internal/pkg/errs"
)

// DiskEvidenceStore implements ports.EvidenceStore over a local directory.
// Files are written to a temporary name first and renamed into place, so a
// returned key never points at a partially written file.
type DiskEvidenceStore struct {
	dir          string
	publicPrefix string
}

// NewDiskEvidenceStore creates a store rooted at dir. The directory is created
// if it does not exist. publicPrefix is the URL path under which the directory
// is served, for example "/static".
func NewDiskEvidenceStore(dir string, publicPrefix string) (*DiskEvidenceStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create evidence directory: %w", err)
	}

	return &DiskEvidenceStore{
		dir:          dir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

// Store writes the photo content to disk and returns its logical key.
// The key incorporates the parcel id and a nanosecond timestamp; the original
// filename contributes only its extension.
func (s *DiskEvidenceStore) Store(
	ctx context.Context, parcelID kernel.UUID, content io.Reader, filenameHint string,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := parcelID.Validate(); err != nil {
		return "", err
	}
	if content == nil {
		return "", errs.NewValueIsRequiredError("content")
	}

	key := fmt.Sprintf("pkg_%s_%d%s",
		parcelID.String(), time.Now().UnixNano(), sanitizeExt(filenameHint))

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create evidence file: %w", err)
	}

	if _, err = io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write evidence file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close evidence file: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish evidence file: %w", err)
	}

	return key, nil
}

// List enumerates all evidence files currently on disk.
// In-flight temporary files are not part of the store's namespace and are skipped.
func (s *DiskEvidenceStore) List(ctx context.Context) ([]ports.StoredEvidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read evidence directory: %w", err)
	}

	stored := make([]ports.StoredEvidence, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil, fmt.Errorf("stat evidence file: %w", infoErr)
		}

		stored = append(stored, ports.StoredEvidence{
			Key:      entry.Name(),
			StoredAt: info.ModTime(),
		})
	}

	return stored, nil
}

// Remove deletes the file with the given key. A missing file is not an error.
func (s *DiskEvidenceStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	// Keys are single path elements; reject anything that escapes the directory.
	if key != filepath.Base(key) {
		return errs.NewValueIsInvalidError("key")
	}

	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove evidence file: %w", err)
	}

	return nil
}

// PublicURL resolves a logical key to the URL path it is served under.
func (s *DiskEvidenceStore) PublicURL(key string) string {
	return s.publicPrefix + "/" + key
}

// Dir returns the directory the store writes to.
func (s *DiskEvidenceStore) Dir() string {
	return s.dir
}

// sanitizeExt extracts a safe file extension from an uploaded filename.
// Anything that is not a short dot-extension of word characters is dropped.
func sanitizeExt(filenameHint string) string {
	ext := strings.ToLower(path.Ext(path.Base(filenameHint)))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
