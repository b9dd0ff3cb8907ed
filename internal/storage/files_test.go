package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_SaveOpenRemove(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "uploads")

	store, err := NewLocalFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	require.NoError(t, store.Save(ctx, "1700000000000.pdf", []byte("%PDF-1.4 body")))

	f, err := store.Open(ctx, "1700000000000.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "%PDF-1.4 body", string(data))

	require.NoError(t, store.Remove(ctx, "1700000000000.pdf"))
	_, err = os.Stat(filepath.Join(dir, "1700000000000.pdf"))
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, store.Remove(ctx, "1700000000000.pdf"))
}

func TestLocalFileStore_SaveDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "a.pdf", []byte("first")))
	assert.Error(t, store.Save(ctx, "a.pdf", []byte("second")))
}

func TestLocalFileStore_OpenMissing(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalFileStore_RejectsPaths(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.pdf", `a\b.pdf`} {
		_, err := store.Open(ctx, name)
		assert.ErrorIs(t, err, ErrInvalidFileName, name)
		assert.ErrorIs(t, store.Save(ctx, name, nil), ErrInvalidFileName, name)
		assert.ErrorIs(t, store.Remove(ctx, name), ErrInvalidFileName, name)
	}
}

func TestIsNoSuchKey(t *testing.T) {
	assert.False(t, IsNoSuchKey(nil))
	assert.False(t, IsNoSuchKey(assert.AnError))
}
