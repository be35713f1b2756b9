package repository

import (
	"context"
	"errors"
	"io"
)

// ErrPhotoNotFound is returned by Open when no photo is stored under the name.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository stores profile photo bytes under flat file names.
type PhotoRepository interface {
	// Save writes the photo, replacing any previous one with the same name.
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	// Open returns the photo content and its size.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	// Remove deletes the photo. Removing a missing photo is not an error.
	Remove(ctx context.Context, name string) error
}
