package repository

import (
	"context"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/google/uuid"
)

// ProfileRepository persists profiles keyed by account ID.
// Failures are *domain.Error values: 400 invalid input, 404 not found,
// 409 duplicate account, 500 storage failure.
type ProfileRepository interface {
	// Create inserts a new profile, assigning a fresh ProfileID, and returns its AccountID.
	Create(ctx context.Context, profile *domain.Profile) (uuid.UUID, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error)
	// Update overwrites every mutable column of the profile with profile.AccountID.
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}
