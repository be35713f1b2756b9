package profile

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/profiles-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	photos      repository.PhotoRepository
	validate    *validator.Validate
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	photos repository.PhotoRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		photos:      photos,
		validate:    newValidator(),
	}
}

// checkRequest runs the shared intake checks of create and update and
// returns the parsed account id.
func (uc *ProfileUseCase) checkRequest(req *ProfileRequest, nilMessage string) (uuid.UUID, error) {
	if req == nil {
		return uuid.Nil, domain.InvalidInput(nilMessage)
	}
	if req.AccountID == "" {
		return uuid.Nil, domain.InvalidInput("AccountID cannot be empty")
	}

	req.normalize()
	if err := uc.validateRequest(req); err != nil {
		return uuid.Nil, err
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil || accountID == uuid.Nil {
		return uuid.Nil, domain.InvalidInput("AccountID cannot be empty")
	}
	return accountID, nil
}

// AddProfile validates the request, stores its photos and creates the profile.
// It returns the account id of the new profile.
func (uc *ProfileUseCase) AddProfile(ctx context.Context, req *ProfileRequest) (uuid.UUID, error) {
	lg := logger.From(ctx).With("op", "usecase/profile/AddProfile")

	accountID, err := uc.checkRequest(req, "Profile cannot be null or empty")
	if err != nil {
		lg.Warn("invalid profile request", "err", err)
		return uuid.Nil, err
	}
	lg = lg.With("account_id", accountID.String())

	// Photo names derive from the account id, so an existing profile's files
	// must not be overwritten by a request that is going to be rejected.
	if _, err := uc.profileRepo.GetByAccountID(ctx, accountID); err == nil {
		lg.Warn("account already exists")
		return uuid.Nil, domain.Conflict("Profile with the same AccountID already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, err
	}

	profile := req.toEntity(accountID)

	slots, written, err := uc.savePhotos(ctx, accountID, req.Images)
	if err != nil {
		lg.Error("failed to save photos", "err", err)
		_ = uc.removePhotos(ctx, written, false)
		return uuid.Nil, err
	}
	profile.ImagePaths = slots

	id, err := uc.profileRepo.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost a race with a concurrent create; the files now belong to the winner.
			lg.Warn("account already exists")
			return uuid.Nil, domain.Conflict("Profile with the same AccountID already exists")
		}
		lg.Error("failed to add profile", "err", err)
		_ = uc.removePhotos(ctx, written, false)
		return uuid.Nil, err
	}

	lg.Info("profile created", "profile_id", profile.ProfileID.String(), "photos", len(written))
	return id, nil
}

// GetProfileByAccountID returns the profile owned by accountID.
func (uc *ProfileUseCase) GetProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error) {
	if accountID == uuid.Nil {
		return nil, domain.InvalidInput("Account ID cannot be empty")
	}

	profile, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.WithMessage(err, "Profile not found")
		}
		return nil, err
	}

	return profile, nil
}

// UpdateProfile replaces every mutable field. Newly uploaded photos fill slots
// from 0 upwards; slots without a new upload keep their stored photo.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, req *ProfileRequest) error {
	lg := logger.From(ctx).With("op", "usecase/profile/UpdateProfile")

	accountID, err := uc.checkRequest(req, "Profile update request is invalid")
	if err != nil {
		lg.Warn("invalid profile request", "err", err)
		return err
	}
	lg = lg.With("account_id", accountID.String())

	existing, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithMessage(err, "Profile with the given AccountID does not exist")
		}
		return err
	}

	profile := req.toEntity(accountID)
	profile.ProfileID = existing.ProfileID
	profile.ImagePaths = existing.ImagePaths

	slots, written, err := uc.savePhotos(ctx, accountID, req.Images)
	if err != nil {
		lg.Error("failed to save photos", "err", err)
		_ = uc.removePhotos(ctx, unreferenced(written, existing.ImagePaths), false)
		return err
	}
	stale := mergeSlots(&profile.ImagePaths, slots)

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		_ = uc.removePhotos(ctx, unreferenced(written, existing.ImagePaths), false)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithMessage(err, "Profile with the given AccountID does not exist")
		}
		lg.Error("failed to update profile", "err", err)
		return err
	}

	_ = uc.removePhotos(ctx, stale, false)

	lg.Info("profile updated")
	return nil
}

// DeleteProfile removes the profile and every photo it references.
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, accountID uuid.UUID) error {
	lg := logger.From(ctx).With("op", "usecase/profile/DeleteProfile", "account_id", accountID.String())

	if accountID == uuid.Nil {
		return domain.InvalidInput("Profile ID cannot be empty")
	}

	existing, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithMessage(err, "Profile not found")
		}
		return err
	}

	// Photos go first; a failure leaves the row in place so the delete can be retried.
	if err := uc.removePhotos(ctx, existing.StoredPhotos(), true); err != nil {
		lg.Error("failed to remove photos", "err", err)
		return err
	}

	if err := uc.profileRepo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithMessage(err, "Profile not found")
		}
		lg.Error("failed to delete profile", "err", err)
		return err
	}

	lg.Info("profile deleted")
	return nil
}

// SetPhotos stores 1 to 3 new photos for an existing profile, filling slots
// from 0 upwards and keeping the stored photo in any slot left unfilled.
func (uc *ProfileUseCase) SetPhotos(ctx context.Context, accountID uuid.UUID, files []*multipart.FileHeader) error {
	lg := logger.From(ctx).With("op", "usecase/profile/SetPhotos", "account_id", accountID.String())

	if accountID == uuid.Nil {
		return domain.InvalidInput("AccountID cannot be empty")
	}
	if len(files) == 0 || len(files) > domain.PhotoSlots {
		return domain.InvalidInput("Between 1 and 3 photos must be provided")
	}

	profile, err := uc.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithMessage(err, "Profile not found")
		}
		return err
	}

	stored := profile.ImagePaths
	slots, written, err := uc.savePhotos(ctx, accountID, files)
	if err != nil {
		lg.Error("failed to save photos", "err", err)
		_ = uc.removePhotos(ctx, unreferenced(written, stored), false)
		return err
	}
	if len(written) == 0 {
		lg.Info("no photo with an allowed format, nothing to update")
		return nil
	}
	stale := mergeSlots(&profile.ImagePaths, slots)

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		_ = uc.removePhotos(ctx, unreferenced(written, stored), false)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithMessage(err, "Profile not found")
		}
		lg.Error("failed to update profile photos", "err", err)
		return err
	}

	_ = uc.removePhotos(ctx, stale, false)

	lg.Info("photos updated", "photos", len(written))
	return nil
}

// GetPhoto opens the photo in the given slot.
func (uc *ProfileUseCase) GetPhoto(ctx context.Context, accountID uuid.UUID, index int) (*Photo, error) {
	if accountID == uuid.Nil {
		return nil, domain.InvalidInput("AccountID cannot be empty")
	}
	if index < 0 || index >= domain.PhotoSlots {
		return nil, domain.NotFound("Photo not found")
	}

	profile, err := uc.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	name := profile.ImagePaths[index]
	if name == "" {
		return nil, domain.NotFound("Photo not found")
	}

	return uc.openPhoto(ctx, name)
}
