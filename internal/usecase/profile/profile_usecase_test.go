package profile

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/storage"
	"github.com/gdugdh24/profiles-backend/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type upload struct {
	name    string
	content string
}

// uploads builds file headers the way a parsed multipart request holds them.
func uploads(t *testing.T, files ...upload) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["images"]
}

func validRequest(accountID uuid.UUID) *ProfileRequest {
	book := domain.BookFantasy
	movie := domain.MovieThriller
	music := domain.MusicRock
	return &ProfileRequest{
		AccountID:     accountID.String(),
		Name:          "Test",
		Description:   "About me",
		Gender:        domain.GenderFemale,
		DateOfBirth:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		BookInterest:  &book,
		MovieInterest: &movie,
		MusicInterest: &music,
	}
}

func newTestUseCase(t *testing.T) (*ProfileUseCase, *mocks.MockProfileRepository, string) {
	t.Helper()

	dir := t.TempDir()
	photos, err := storage.NewFilesystemStorage(dir)
	require.NoError(t, err)

	repo := mocks.NewMockProfileRepository(t)
	return NewProfileUseCase(repo, photos), repo, dir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func notFound() error {
	return domain.NotFound("Profile with the given ID does not exist")
}

func TestAddProfile_StoresAllowedPhotos(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()
	want := accountID.String() + "0.jpg"

	req := validRequest(accountID)
	req.Images = uploads(t,
		upload{"photo.txt", "not an image"},
		upload{"photo.jpg", "jpeg-bytes"},
	)

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.AccountID == accountID &&
			p.ImagePaths == [domain.PhotoSlots]string{want, "", ""} &&
			p.InterestCount() == 3
	})).Return(accountID, nil)

	id, err := uc.AddProfile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, accountID, id)

	assert.Equal(t, []string{want}, listDir(t, dir))
	data, err := os.ReadFile(filepath.Join(dir, want))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestAddProfile_AtMostThreePhotos(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()

	req := validRequest(accountID)
	req.Images = uploads(t,
		upload{"a.PNG", "1"},
		upload{"empty.jpg", ""},
		upload{"b.webp", "2"},
		upload{"c.jpeg", "3"},
		upload{"d.jpg", "4"},
	)

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ImagePaths == [domain.PhotoSlots]string{
			accountID.String() + "0.png",
			accountID.String() + "1.webp",
			accountID.String() + "2.jpeg",
		}
	})).Return(accountID, nil)

	_, err := uc.AddProfile(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, listDir(t, dir), 3)
}

func TestAddProfile_InvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.AddProfile(ctx, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Profile cannot be null or empty", domain.MessageOf(err))

	req := validRequest(uuid.New())
	req.AccountID = ""
	_, err = uc.AddProfile(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "AccountID cannot be empty", domain.MessageOf(err))

	req = validRequest(uuid.Nil)
	_, err = uc.AddProfile(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddProfile_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ProfileRequest)
		field  string
	}{
		{
			name:   "two interests",
			mutate: func(r *ProfileRequest) { r.MusicInterest = nil },
			field:  "interests",
		},
		{
			name: "empty interest counts as unset",
			mutate: func(r *ProfileRequest) {
				empty := domain.MusicInterest("")
				r.MusicInterest = &empty
			},
			field: "interests",
		},
		{
			name:   "name too long",
			mutate: func(r *ProfileRequest) { r.Name = "abcdefghijklmnopqrstuvwxyz01234" },
			field:  "name",
		},
		{
			name:   "missing description",
			mutate: func(r *ProfileRequest) { r.Description = "" },
			field:  "description",
		},
		{
			name:   "date of birth in the future",
			mutate: func(r *ProfileRequest) { r.DateOfBirth = time.Now().AddDate(1, 0, 0) },
			field:  "date_of_birth",
		},
		{
			name:   "missing date of birth",
			mutate: func(r *ProfileRequest) { r.DateOfBirth = time.Time{} },
			field:  "date_of_birth",
		},
		{
			name:   "unknown gender",
			mutate: func(r *ProfileRequest) { r.Gender = "Unknown" },
			field:  "gender",
		},
		{
			name: "unknown interest value",
			mutate: func(r *ProfileRequest) {
				food := domain.FoodInterest("Pizza")
				r.FoodInterest = &food
			},
			field: "food_interest",
		},
		{
			name:   "malformed account id",
			mutate: func(r *ProfileRequest) { r.AccountID = "not-a-uuid" },
			field:  "account_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, dir := newTestUseCase(t)

			req := validRequest(uuid.New())
			req.Images = uploads(t, upload{"photo.jpg", "jpeg-bytes"})
			tt.mutate(req)

			_, err := uc.AddProfile(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			var derr *domain.Error
			require.True(t, errors.As(err, &derr))
			fields := make([]string, 0, len(derr.Details))
			for _, d := range derr.Details {
				fields = append(fields, d.Field)
				assert.NotEmpty(t, d.Message)
			}
			assert.Contains(t, fields, tt.field)

			// Nothing is written for a rejected request.
			assert.Empty(t, listDir(t, dir))
		})
	}
}

func TestAddProfile_ThreeInterestsOfEight(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	accountID := uuid.New()

	req := validRequest(accountID)
	req.BookInterest, req.MovieInterest, req.MusicInterest = nil, nil, nil
	travel := domain.TravelBeach
	hobby := domain.HobbyGaming
	lifestyle := domain.LifestyleActive
	req.TravelInterest, req.HobbyInterest, req.LifestyleInterest = &travel, &hobby, &lifestyle

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	repo.On("Create", mock.Anything, mock.Anything).Return(accountID, nil)

	_, err := uc.AddProfile(context.Background(), req)
	require.NoError(t, err)
}

func TestAddProfile_Duplicate(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()

	req := validRequest(accountID)
	req.Images = uploads(t, upload{"photo.jpg", "jpeg-bytes"})

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{AccountID: accountID}, nil)

	_, err := uc.AddProfile(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Profile with the same AccountID already exists", domain.MessageOf(err))
	assert.Empty(t, listDir(t, dir))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddProfile_LostCreateRace(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	accountID := uuid.New()

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	repo.On("Create", mock.Anything, mock.Anything).
		Return(uuid.Nil, domain.Conflict("Profile with the same AccountID already exists"))

	_, err := uc.AddProfile(context.Background(), validRequest(accountID))
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddProfile_StoreFailureRemovesPhotos(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()

	req := validRequest(accountID)
	req.Images = uploads(t, upload{"photo.jpg", "jpeg-bytes"})

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	repo.On("Create", mock.Anything, mock.Anything).
		Return(uuid.Nil, domain.StorageFailure("Failed to add profile to the database", errors.New("boom")))

	_, err := uc.AddProfile(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Empty(t, listDir(t, dir))
}

func TestAddProfile_PhotoWriteFailure(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)
	photos := mocks.NewMockPhotoRepository(t)
	uc := NewProfileUseCase(repo, photos)
	accountID := uuid.New()
	first := accountID.String() + "0.jpg"
	second := accountID.String() + "1.png"

	req := validRequest(accountID)
	req.Images = uploads(t, upload{"a.jpg", "1"}, upload{"b.png", "2"})

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	photos.On("Save", mock.Anything, first, mock.Anything, int64(1)).Return(nil)
	photos.On("Save", mock.Anything, second, mock.Anything, int64(1)).Return(errors.New("disk full"))
	photos.On("Remove", mock.Anything, first).Return(nil)

	_, err := uc.AddProfile(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Equal(t, 500, domain.StatusOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetProfileByAccountID(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.GetProfileByAccountID(ctx, uuid.Nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	known, unknown := uuid.New(), uuid.New()
	repo.On("GetByAccountID", mock.Anything, known).Return(&domain.Profile{AccountID: known, Name: "Test"}, nil)
	repo.On("GetByAccountID", mock.Anything, unknown).Return(nil, notFound())

	p, err := uc.GetProfileByAccountID(ctx, known)
	require.NoError(t, err)
	assert.Equal(t, "Test", p.Name)

	_, err = uc.GetProfileByAccountID(ctx, unknown)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Profile not found", domain.MessageOf(err))
}

func TestUpdateProfile_MergesPhotoSlots(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()
	oldFirst := accountID.String() + "0.png"
	kept := accountID.String() + "1.jpg"
	newFirst := accountID.String() + "0.jpg"

	for _, name := range []string{oldFirst, kept} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("old"), 0o644))
	}

	existing := &domain.Profile{
		ProfileID:  uuid.New(),
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{oldFirst, kept, ""},
	}

	req := validRequest(accountID)
	req.Name = "Renamed"
	req.Images = uploads(t, upload{"new.jpg", "new"})

	repo.On("GetByAccountID", mock.Anything, accountID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ProfileID == existing.ProfileID &&
			p.Name == "Renamed" &&
			p.ImagePaths == [domain.PhotoSlots]string{newFirst, kept, ""}
	})).Return(nil)

	require.NoError(t, uc.UpdateProfile(context.Background(), req))

	assert.ElementsMatch(t, []string{newFirst, kept}, listDir(t, dir))
}

func TestUpdateProfile_NotFound(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()

	req := validRequest(accountID)
	req.Images = uploads(t, upload{"photo.jpg", "jpeg-bytes"})

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())

	err := uc.UpdateProfile(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Profile with the given AccountID does not exist", domain.MessageOf(err))
	assert.Empty(t, listDir(t, dir))
}

func TestUpdateProfile_DeletedConcurrently(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	accountID := uuid.New()

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{AccountID: accountID}, nil)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(domain.NotFound("Profile with the given AccountID does not exist"))

	err := uc.UpdateProfile(context.Background(), validRequest(accountID))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfile_StoreFailureRemovesNewPhotos(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()
	stored := accountID.String() + "0.png"

	require.NoError(t, os.WriteFile(filepath.Join(dir, stored), []byte("old"), 0o644))

	req := validRequest(accountID)
	req.Images = uploads(t, upload{"new.jpg", "new"})

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{
		ProfileID:  uuid.New(),
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{stored, "", ""},
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(domain.StorageFailure("Failed to update profile", errors.New("boom")))

	err := uc.UpdateProfile(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrStorageFailure)

	assert.Equal(t, []string{stored}, listDir(t, dir))
}

func TestUpdateProfile_InvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	err := uc.UpdateProfile(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Profile update request is invalid", domain.MessageOf(err))

	req := validRequest(uuid.New())
	req.HobbyInterest, req.MovieInterest = nil, nil
	require.ErrorIs(t, uc.UpdateProfile(context.Background(), req), domain.ErrInvalidInput)
}

func TestDeleteProfile(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()
	stored := accountID.String() + "0.jpg"
	missing := accountID.String() + "1.png"
	other := "someone-else0.jpg"

	require.NoError(t, os.WriteFile(filepath.Join(dir, stored), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, other), []byte("x"), 0o644))

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{stored, missing, ""},
	}, nil)
	repo.On("Delete", mock.Anything, accountID).Return(nil)

	require.NoError(t, uc.DeleteProfile(context.Background(), accountID))
	assert.Equal(t, []string{other}, listDir(t, dir))
}

func TestDeleteProfile_Errors(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	require.ErrorIs(t, uc.DeleteProfile(ctx, uuid.Nil), domain.ErrInvalidInput)

	unknown := uuid.New()
	repo.On("GetByAccountID", mock.Anything, unknown).Return(nil, notFound())

	err := uc.DeleteProfile(ctx, unknown)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Profile not found", domain.MessageOf(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteProfile_PhotoRemovalFailureKeepsRow(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)
	photos := mocks.NewMockPhotoRepository(t)
	uc := NewProfileUseCase(repo, photos)
	accountID := uuid.New()
	name := accountID.String() + "0.jpg"

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{name, "", ""},
	}, nil)
	photos.On("Remove", mock.Anything, name).Return(errors.New("permission denied"))

	err := uc.DeleteProfile(context.Background(), accountID)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSetPhotos(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()
	kept := accountID.String() + "2.webp"

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{"", "", kept},
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.ImagePaths == [domain.PhotoSlots]string{
			accountID.String() + "0.jpg",
			accountID.String() + "1.png",
			kept,
		}
	})).Return(nil)

	files := uploads(t, upload{"a.jpg", "a"}, upload{"b.png", "b"})
	require.NoError(t, uc.SetPhotos(context.Background(), accountID, files))
	assert.Len(t, listDir(t, dir), 2)
}

func TestSetPhotos_Errors(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	ctx := context.Background()
	accountID := uuid.New()

	one := uploads(t, upload{"a.jpg", "a"})
	four := uploads(t, upload{"a.jpg", "a"}, upload{"b.jpg", "b"}, upload{"c.jpg", "c"}, upload{"d.jpg", "d"})

	require.ErrorIs(t, uc.SetPhotos(ctx, uuid.Nil, one), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.SetPhotos(ctx, accountID, nil), domain.ErrInvalidInput)
	require.ErrorIs(t, uc.SetPhotos(ctx, accountID, four), domain.ErrInvalidInput)

	repo.On("GetByAccountID", mock.Anything, accountID).Return(nil, notFound())
	require.ErrorIs(t, uc.SetPhotos(ctx, accountID, one), domain.ErrNotFound)

	assert.Empty(t, listDir(t, dir))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetPhotos_OnlyDisallowedFormats(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	accountID := uuid.New()

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{AccountID: accountID}, nil)

	err := uc.SetPhotos(context.Background(), accountID, uploads(t, upload{"photo.txt", "x"}))
	require.NoError(t, err)

	assert.Empty(t, listDir(t, dir))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetPhotos_StoreFailureKeepsOverwrittenPhoto(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)
	photos := mocks.NewMockPhotoRepository(t)
	uc := NewProfileUseCase(repo, photos)
	accountID := uuid.New()
	stored := accountID.String() + "0.jpg"
	added := accountID.String() + "1.png"

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{stored, "", ""},
	}, nil)
	photos.On("Save", mock.Anything, stored, mock.Anything, int64(1)).Return(nil)
	photos.On("Save", mock.Anything, added, mock.Anything, int64(1)).Return(nil)
	photos.On("Remove", mock.Anything, added).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(domain.StorageFailure("Failed to update profile", errors.New("boom")))

	files := uploads(t, upload{"a.jpg", "1"}, upload{"b.png", "2"})
	err := uc.SetPhotos(context.Background(), accountID, files)
	require.ErrorIs(t, err, domain.ErrStorageFailure)

	photos.AssertNotCalled(t, "Remove", mock.Anything, stored)
}

func TestSetPhotos_PhotoWriteFailure(t *testing.T) {
	repo := mocks.NewMockProfileRepository(t)
	photos := mocks.NewMockPhotoRepository(t)
	uc := NewProfileUseCase(repo, photos)
	accountID := uuid.New()
	first := accountID.String() + "0.webp"
	second := accountID.String() + "1.jpg"

	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{AccountID: accountID}, nil)
	photos.On("Save", mock.Anything, first, mock.Anything, int64(1)).Return(nil)
	photos.On("Save", mock.Anything, second, mock.Anything, int64(1)).Return(errors.New("disk full"))
	photos.On("Remove", mock.Anything, first).Return(nil)

	files := uploads(t, upload{"a.webp", "1"}, upload{"b.jpg", "2"})
	err := uc.SetPhotos(context.Background(), accountID, files)
	require.ErrorIs(t, err, domain.ErrStorageFailure)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetPhoto(t *testing.T) {
	uc, repo, dir := newTestUseCase(t)
	ctx := context.Background()
	accountID := uuid.New()
	name := accountID.String() + "0.jpg"
	missing := accountID.String() + "1.png"

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpeg-bytes"), 0o644))
	repo.On("GetByAccountID", mock.Anything, accountID).Return(&domain.Profile{
		AccountID:  accountID,
		ImagePaths: [domain.PhotoSlots]string{name, missing, ""},
	}, nil)

	photo, err := uc.GetPhoto(ctx, accountID, 0)
	require.NoError(t, err)
	data, err := io.ReadAll(photo.Content)
	require.NoError(t, err)
	require.NoError(t, photo.Content.Close())
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", photo.ContentType)
	assert.EqualValues(t, 10, photo.Size)

	_, err = uc.GetPhoto(ctx, accountID, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetPhoto(ctx, accountID, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetPhoto(ctx, accountID, 3)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetPhoto(ctx, accountID, -1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetPhoto(ctx, uuid.Nil, 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
