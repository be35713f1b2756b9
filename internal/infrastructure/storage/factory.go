package storage

import (
	"context"
	"fmt"

	"github.com/gdugdh24/profiles-backend/internal/config"
	"github.com/gdugdh24/profiles-backend/internal/repository"
)

const (
	TypeFilesystem = "filesystem"
	TypeMinio      = "minio"
)

// NewPhotoStorage picks the photo backend named by cfg.Storage.Type.
func NewPhotoStorage(ctx context.Context, cfg *config.Config) (repository.PhotoRepository, error) {
	switch cfg.Storage.Type {
	case TypeFilesystem, "":
		return NewFilesystemStorage(cfg.Storage.Path)
	case TypeMinio:
		return NewMinioStorage(ctx, &cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
