package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gdugdh24/profiles-backend/internal/repository"
)

// FilesystemStorage keeps photos as plain files in one directory.
type FilesystemStorage struct {
	basePath string
}

// NewFilesystemStorage creates basePath if needed.
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("photo storage path is required")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}

	return &FilesystemStorage{basePath: basePath}, nil
}

// path rejects anything that is not a bare file name.
func (s *FilesystemStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid photo name %q", name)
	}
	return filepath.Join(s.basePath, name), nil
}

// Save writes to a temp file and renames it into place, so readers and
// concurrent writers of the same name never observe a partial file.
func (s *FilesystemStorage) Save(_ context.Context, name string, r io.Reader, _ int64) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write photo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write photo: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save photo: %w", err)
	}

	return nil
}

func (s *FilesystemStorage) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	target, err := s.path(name)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, repository.ErrPhotoNotFound
		}
		return nil, 0, fmt.Errorf("failed to open photo: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("failed to stat photo: %w", err)
	}

	return f, info.Size(), nil
}

func (s *FilesystemStorage) Remove(_ context.Context, name string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}

	return nil
}

var _ repository.PhotoRepository = (*FilesystemStorage)(nil)
