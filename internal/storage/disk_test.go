package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/cardport/internal/config"
)

func TestDiskStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	payload := []byte("%PDF-1.4 fake")
	key := "3f2a9c1e-0000-4000-8000-000000000001"

	require.NoError(t, store.Put(ctx, key, bytes.NewReader(payload), int64(len(payload)), "application/pdf"))

	rc, err := store.Open(ctx, key)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, payload, got)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Open(ctx, key)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.NoError(t, store.Delete(ctx, key), "deleting twice is fine")
}

func TestDiskStore_FanOutLayout(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	path, err := store.path("abcdef")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "ab", "cd", "abcdef"), path)
}

func TestDiskStore_RejectsBadKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "abc", "../../etc/passwd", "ab/cdef", `ab\cdef`} {
		err := store.Put(context.Background(), key, strings.NewReader("x"), 1, "text/plain")
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestDiskStore_ShortWrite(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	err = store.Put(context.Background(), "abcdef", strings.NewReader("abc"), 10, "text/plain")
	assert.Error(t, err)

	_, err = store.Open(context.Background(), "abcdef")
	assert.ErrorIs(t, err, ErrNotFound, "a failed put leaves nothing behind")
}

func TestNew_SelectsBackend(t *testing.T) {
	store, err := New(context.Background(), config.Storage{
		Backend: config.BackendDisk,
		Disk:    config.DiskStorage{Root: t.TempDir()},
	})
	require.NoError(t, err)
	assert.IsType(t, &DiskStore{}, store)

	_, err = New(context.Background(), config.Storage{Backend: "tape"})
	assert.ErrorIs(t, err, config.ErrUnknownBackend)

	_, err = NewS3Store(context.Background(), config.S3Storage{})
	assert.ErrorIs(t, err, config.ErrMissingBucket)
}
