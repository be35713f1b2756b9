package mocks

import (
	"context"
	"io"
	"testing"

	"github.com/gdugdh24/profiles-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockPhotoRepository is a mock of repository.PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func NewMockPhotoRepository(t *testing.T) *MockPhotoRepository {
	m := &MockPhotoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPhotoRepository) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	args := m.Called(ctx, name, r, size)
	return args.Error(0)
}

func (m *MockPhotoRepository) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}

func (m *MockPhotoRepository) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

var _ repository.PhotoRepository = (*MockPhotoRepository)(nil)
