// Package images implements the upload processing pipeline: original
// preservation, optimized re-encode and thumbnail generation, backed by
// a bucket-style object store.
package images

import (
	"context"
	"time"
)

// ObjectInfo describes a stored object for listing.
type ObjectInfo struct {
	Path    string
	Created time.Time
}

// ObjectStore is the bucket abstraction. Upload returns a long-lived
// public URL for the written object.
type ObjectStore interface {
	Download(ctx context.Context, path string) ([]byte, error)
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
