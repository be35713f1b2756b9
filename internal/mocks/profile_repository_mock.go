package mocks

import (
	"context"
	"testing"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock of repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) (uuid.UUID, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)
