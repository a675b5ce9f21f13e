package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord maps an owner to a stored upload. Filename is the unique
// on-disk key; OriginalName is the name the user uploaded, kept for display.
type ResumeRecord struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// EnhancedResult is one finished enhancement run.
type EnhancedResult struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	ResumeFilename string    `json:"resume_filename"`
	JobDescription string    `json:"job_description"`
	EnhancedResume string    `json:"enhanced_resume"`
	CoverLetter    string    `json:"cover_letter"`
	CreatedAt      time.Time `json:"created_at"`
}
