package ports

import (
	"context"
	"io"
)

// ObjectStore persists uploaded binaries: model files and order photos.
// Keys are opaque storage references recorded on the owning aggregate.
type ObjectStore interface {
	// Put streams an object into the store under a new key and returns
	// that key.
	Put(ctx context.Context, prefix string, reader io.Reader) (string, error)

	// Get opens the object stored under the key. The caller closes the
	// returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under the key. Deleting a missing
	// key is not an error.
	Delete(ctx context.Context, key string) error
}
