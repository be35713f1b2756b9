package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"slices"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/profiles-backend/internal/repository"
	"github.com/google/uuid"
)

// Photo is an open stored photo. The caller closes Content.
type Photo struct {
	Name        string
	Content     io.ReadCloser
	ContentType string
	Size        int64
}

// savePhotos writes the uploaded files into consecutive slots starting at 0.
// Empty files and files with a disallowed extension are skipped. It returns
// the filled slots and the names written so far, also on error.
func (uc *ProfileUseCase) savePhotos(ctx context.Context, accountID uuid.UUID, files []*multipart.FileHeader) ([domain.PhotoSlots]string, []string, error) {
	var slots [domain.PhotoSlots]string
	written := make([]string, 0, domain.PhotoSlots)

	slot := 0
	for _, fh := range files {
		if slot == domain.PhotoSlots {
			break
		}
		if fh == nil || fh.Size == 0 {
			continue
		}
		ext, ok := domain.PhotoExtension(fh.Filename)
		if !ok {
			continue
		}

		name := domain.PhotoFileName(accountID, slot, ext)
		if err := uc.savePhoto(ctx, name, fh); err != nil {
			return slots, written, domain.StorageFailure("Failed to save photo", err)
		}

		slots[slot] = name
		written = append(written, name)
		slot++
	}

	return slots, written, nil
}

func (uc *ProfileUseCase) savePhoto(ctx context.Context, name string, fh *multipart.FileHeader) error {
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	return uc.photos.Save(ctx, name, f, fh.Size)
}

// mergeSlots overlays the filled slots of uploaded onto stored and returns
// the stored names that are no longer referenced.
func mergeSlots(stored *[domain.PhotoSlots]string, uploaded [domain.PhotoSlots]string) []string {
	var stale []string
	for i, name := range uploaded {
		if name == "" {
			continue
		}
		if stored[i] != "" && stored[i] != name {
			stale = append(stale, stored[i])
		}
		stored[i] = name
	}
	return stale
}

// unreferenced returns the names in written that stored does not reference.
// An upload that reused a stored name overwrote that photo in place.
func unreferenced(written []string, stored [domain.PhotoSlots]string) []string {
	var names []string
	for _, name := range written {
		if !slices.Contains(stored[:], name) {
			names = append(names, name)
		}
	}
	return names
}

// removePhotos deletes names from the photo store. With strict unset, failures
// are only logged.
func (uc *ProfileUseCase) removePhotos(ctx context.Context, names []string, strict bool) error {
	for _, name := range names {
		if err := uc.photos.Remove(ctx, name); err != nil {
			if strict {
				return domain.StorageFailure("Failed to remove photo", err)
			}
			logger.From(ctx).Warn("failed to remove photo", "name", name, "err", err)
		}
	}
	return nil
}

func (uc *ProfileUseCase) openPhoto(ctx context.Context, name string) (*Photo, error) {
	rc, size, err := uc.photos.Open(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, domain.NotFound("Photo not found")
		}
		return nil, domain.StorageFailure("Failed to read photo", err)
	}

	return &Photo{
		Name:        name,
		Content:     rc,
		ContentType: domain.PhotoContentType(name),
		Size:        size,
	}, nil
}
