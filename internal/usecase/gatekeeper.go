package usecase

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadBytes is the upload size ceiling (1 MiB).
const MaxUploadBytes = 1 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
}

var (
	ErrNoFile       = errors.New("no file selected")
	ErrBadExtension = errors.New("only PDF or JPG allowed")
	ErrFileTooLarge = errors.New("file must be under 1MB")
)

// ValidateUpload rejects uploads with a missing name, a disallowed extension
// or a size above the ceiling. At-limit sizes are accepted.
func ValidateUpload(originalName string, size int64) error {
	if originalName == "" {
		return ErrNoFile
	}
	if !allowedExtensions[extensionOf(originalName)] {
		return ErrBadExtension
	}
	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}

// StoredName derives a collision-free on-disk key for an accepted upload. The
// original name stays on the record as display metadata only.
func StoredName(originalName string) string {
	return uuid.NewString() + extensionOf(originalName)
}

func extensionOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i:])
}
