// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO,
// AWS S3, ArvanCloud).
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("object not found")

// ObjectStore is the interface for reading, writing and deleting objects.
type ObjectStore interface {
	// Get returns the full content of the object at key.
	// Returns ErrNotFound when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put streams data to the store under the given key.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes the object identified by key.
	Delete(ctx context.Context, key string) error
	// PresignedURL returns a time-limited signed URL granting read access
	// to a private object.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PublicURL constructs the permanent browser-accessible URL for a key.
	// Only meaningful when the bucket allows anonymous reads.
	PublicURL(key string) string
}
