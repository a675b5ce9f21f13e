package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		want     error
	}{
		{"pdf ok", "resume.pdf", 1024, nil},
		{"jpg ok", "photo.jpg", 1024, nil},
		{"jpeg ok", "photo.jpeg", 1024, nil},
		{"uppercase extension ok", "RESUME.PDF", 1024, nil},
		{"mixed case ok", "Resume.JpEg", 1024, nil},
		{"at size limit ok", "resume.pdf", MaxUploadBytes, nil},
		{"one byte over", "resume.pdf", MaxUploadBytes + 1, ErrFileTooLarge},
		{"two MB pdf", "resume.pdf", 2 << 20, ErrFileTooLarge},
		{"png rejected", "resume.png", 1024, ErrBadExtension},
		{"docx rejected", "resume.docx", 1024, ErrBadExtension},
		{"no extension", "resume", 1024, ErrBadExtension},
		{"only suffix counts", "resume.pdf.exe", 1024, ErrBadExtension},
		{"empty name", "", 1024, ErrNoFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.size)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestStoredNameKeepsExtension(t *testing.T) {
	name := StoredName("My Resume.PDF")
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestStoredNameIsCollisionFree(t *testing.T) {
	// same user, same original name: keys must still differ
	a := StoredName("resume.pdf")
	b := StoredName("resume.pdf")
	assert.NotEqual(t, a, b)
}
