// internal/blobstore/blobstore.go
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no blob exists under the key.
// Callers treat it the same as any other read failure: resume empty.
var ErrNotFound = errors.New("blob not found")

// Store is the key-value persistence boundary. Implementations hold opaque
// text blobs; the cart ledger and the session cache are the only writers.
type Store interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
