package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// Blob storage errors.
var (
	// ErrObjectNotFound is returned when no object exists under the key.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectExists is returned when Put targets a key that is already written.
	ErrObjectExists = errors.New("object already exists")
	// ErrURLUnsupported is returned when the storage has no public base URL.
	ErrURLUnsupported = errors.New("object URLs not supported by storage backend")
)

// BlobStorage is write-once object storage for uploaded photos.
type BlobStorage interface {
	// Put writes the object under key. It never overwrites an existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader) error

	// Open returns a reader for the object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// URL returns a durable public URL for the object.
	URL(ctx context.Context, key string) (string, error)
}
