package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// PhotoExtension returns the lower-cased extension of filename and whether
// it is one of .jpg, .jpeg, .png or .webp.
func PhotoExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := photoContentTypes[ext]
	return ext, ok
}

// PhotoContentType returns the image/<ext> content type for a stored photo.
func PhotoContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := photoContentTypes[ext]; ok {
		return ct
	}
	return "image/" + strings.TrimPrefix(ext, ".")
}

// PhotoFileName names the file stored for an account's photo slot.
func PhotoFileName(accountID uuid.UUID, slot int, ext string) string {
	return fmt.Sprintf("%s%d%s", accountID, slot, ext)
}
