// Package blob persists whole JSON documents by key. The storefront keeps
// exactly two documents: the settings document and the product collection.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("blob: not found")

// Store reads and writes whole documents. Put must be atomic: a concurrent
// reader sees either the previous or the new document, never a partial write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
