// Package localfs stores uploaded objects on the local filesystem.
package localfs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/errs"
)

// ObjectStore keeps objects as files under a root directory. Keys are
// relative paths of the form prefix/uuid.
type ObjectStore struct {
	root string
}

// NewObjectStore creates a store rooted at dir, creating it if needed.
func NewObjectStore(dir string) (*ObjectStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &ObjectStore{root: dir}, nil
}

// Put writes the reader's content under a fresh key within prefix.
func (s *ObjectStore) Put(ctx context.Context, prefix string, reader io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := filepath.Join(prefix, kernel.NewUUID().String())
	path := filepath.Join(s.root, key)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		os.Remove(path)

		return "", err
	}

	if err := file.Close(); err != nil {
		return "", err
	}

	return filepath.ToSlash(key), nil
}

// Get opens the object stored under key.
func (s *ObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("object", key, err)
		}

		return nil, err
	}

	return file, nil
}

// Delete removes the object stored under key. Missing keys are not an error.
func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
