package filestore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paquexpress/internal/adapters/out/filestore"
	"paquexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *filestore.DiskEvidenceStore {
	t.Helper()
	store, err := filestore.NewDiskEvidenceStore(filepath.Join(t.TempDir(), "evidence"), "/static")
	require.NoError(t, err)
	return store
}

func TestNewDiskEvidenceStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "evidence")

	_, err := filestore.NewDiskEvidenceStore(dir, "/static")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewDiskEvidenceStore_EmptyDir(t *testing.T) {
	_, err := filestore.NewDiskEvidenceStore("", "/static")
	require.Error(t, err)
}

func TestStore_WritesContentUnderDerivedKey(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)
	parcelID := kernel.NewUUID()

	key, err := store.Store(ctx, parcelID, strings.NewReader("jpeg bytes"), "evidence.JPG")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "pkg_"+parcelID.String()+"_"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	content, err := os.ReadFile(filepath.Join(store.Dir(), key))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestStore_DistinctKeysForSameParcel(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)
	parcelID := kernel.NewUUID()

	key1, err := store.Store(ctx, parcelID, strings.NewReader("first"), "a.jpg")
	require.NoError(t, err)
	key2, err := store.Store(ctx, parcelID, strings.NewReader("second"), "a.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
}

func TestStore_HostileFilenameContributesNoExtension(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)

	testCases := []struct {
		name     string
		filename string
	}{
		{name: "path traversal", filename: "../../etc/passwd"},
		{name: "no extension", filename: "photo"},
		{name: "dot only", filename: "photo."},
		{name: "overlong extension", filename: "photo.somethinghuge"},
		{name: "special characters", filename: "photo.j%g"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := store.Store(ctx, kernel.NewUUID(), strings.NewReader("x"), tc.filename)
			require.NoError(t, err)
			assert.NotContains(t, key, "/")
			assert.NotContains(t, key, "..")
			assert.False(t, strings.Contains(key, "."), "key %q should carry no extension", key)
		})
	}
}

func TestStore_UnwritableDestination(t *testing.T) {
	ctx := t.Context()
	dir := filepath.Join(t.TempDir(), "evidence")
	store, err := filestore.NewDiskEvidenceStore(dir, "/static")
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o750) })

	_, err = store.Store(ctx, kernel.NewUUID(), strings.NewReader("x"), "x.jpg")
	require.Error(t, err)
}

func TestList_ReturnsStoredFiles(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)

	key1, err := store.Store(ctx, kernel.NewUUID(), strings.NewReader("a"), "a.jpg")
	require.NoError(t, err)
	key2, err := store.Store(ctx, kernel.NewUUID(), strings.NewReader("b"), "b.png")
	require.NoError(t, err)

	stored, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	keys := map[string]bool{stored[0].Key: true, stored[1].Key: true}
	assert.True(t, keys[key1])
	assert.True(t, keys[key2])
	for _, file := range stored {
		assert.False(t, file.StoredAt.IsZero())
	}
}

func TestRemove_MissingKeyIsNotAnError(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)

	err := store.Remove(ctx, "pkg_nonexistent.jpg")
	require.NoError(t, err)
}

func TestRemove_DeletesFile(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)

	key, err := store.Store(ctx, kernel.NewUUID(), strings.NewReader("x"), "x.jpg")
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, key))

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRemove_RejectsPathEscapes(t *testing.T) {
	ctx := t.Context()
	store := newStore(t)

	err := store.Remove(ctx, "../outside.jpg")
	require.Error(t, err)
}

func TestPublicURL_JoinsPrefixAndKey(t *testing.T) {
	store := newStore(t)

	url := store.PublicURL("pkg_abc_123.jpg")

	assert.Equal(t, "/static/pkg_abc_123.jpg", url)
	// Resolution is deterministic.
	assert.Equal(t, url, store.PublicURL("pkg_abc_123.jpg"))
}
