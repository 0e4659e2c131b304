// Package storage keeps attachment payloads in a blob store addressed by key
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/cardport/internal/config"
)

// ErrNotFound is returned when no blob exists under a key
var ErrNotFound = errors.New("blob not found")

// Store puts, reads and deletes blobs by key
type Store interface {
	// Put writes size bytes from r under key. r is rewindable so
	// backends that retry or sign the payload can read it again.
	Put(ctx context.Context, key string, r io.ReadSeeker, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by the storage config
func New(ctx context.Context, cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case config.BackendDisk:
		return NewDiskStore(cfg.Disk.Root)
	case config.BackendS3:
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}
