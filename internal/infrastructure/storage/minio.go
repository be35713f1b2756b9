package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/gdugdh24/profiles-backend/internal/config"
	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage keeps photos as objects in an S3-compatible bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects to the endpoint and checks that the bucket exists.
// The endpoint may carry an http:// or https:// scheme, which then decides TLS.
func NewMinioStorage(ctx context.Context, cfg *config.S3Config) (*MinioStorage, error) {
	const op = "storage/minio/New"

	endpoint := cfg.Endpoint
	secure := cfg.UseSSL
	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStorage) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	const op = "storage/minio/Save"

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: domain.PhotoContentType(name),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *MinioStorage) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	const op = "storage/minio/Open"

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, 0, repository.ErrPhotoNotFound
		}
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return obj, info.Size, nil
}

func (s *MinioStorage) Remove(ctx context.Context, name string) error {
	const op = "storage/minio/Remove"

	err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
	if err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// isNoSuchKey reports a missing object. A missing bucket is a real failure.
func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

var _ repository.PhotoRepository = (*MinioStorage)(nil)
