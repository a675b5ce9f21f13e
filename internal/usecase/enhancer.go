package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"resume-enhancer/internal/common"
	"resume-enhancer/internal/domain"
)

const (
	improvedMarker = "IMPROVED_RESUME:"
	coverMarker    = "COVER_LETTER:"
)

// LLM is the single-call completion service behind an enhancement.
type LLM interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextExtractor produces best-effort plain text for a stored upload.
type TextExtractor interface {
	Text(ctx context.Context, path string) string
}

// ResumesRepo is the upload persistence needed by the enhancer and handlers.
type ResumesRepo interface {
	Add(ctx context.Context, rec *domain.ResumeRecord) error
	ListByEmail(ctx context.Context, email string) ([]domain.ResumeRecord, error)
	Find(ctx context.Context, email, filename string) (*domain.ResumeRecord, error)
	Remove(ctx context.Context, email, filename string) error
}

// ResultsRepo persists finished enhancements.
type ResultsRepo interface {
	Save(ctx context.Context, res *domain.EnhancedResult) error
}

// Enhancer runs the enhance flow: pull text out of a stored upload, make one
// model call, split the reply into the two output sections and persist them.
type Enhancer struct {
	llm       LLM
	extractor TextExtractor
	resumes   ResumesRepo
	results   ResultsRepo
	uploadDir string
	logger    *slog.Logger
}

func NewEnhancer(llm LLM, extractor TextExtractor, resumes ResumesRepo, results ResultsRepo, uploadDir string, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enhancer{
		llm:       llm,
		extractor: extractor,
		resumes:   resumes,
		results:   results,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Enhance processes one request for the given owner. The filename must be a
// stored key belonging to that owner.
func (e *Enhancer) Enhance(ctx context.Context, email, filename, jobDescription string) (*domain.EnhancedResult, error) {
	if _, err := e.resumes.Find(ctx, email, filename); err != nil {
		return nil, err
	}

	resumeText := e.extractor.Text(ctx, filepath.Join(e.uploadDir, filename))

	reply, err := e.llm.Complete(ctx, buildPrompt(resumeText, jobDescription))
	if err != nil {
		e.logger.Error("enhance model call failed", "email", email, "filename", filename, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}

	improved, cover, err := splitReply(reply)
	if err != nil {
		e.logger.Error("enhance reply malformed", "email", email, "filename", filename, "reply_len", len(reply))
		return nil, err
	}

	result := &domain.EnhancedResult{
		Email:          email,
		ResumeFilename: filename,
		JobDescription: jobDescription,
		EnhancedResume: improved,
		CoverLetter:    cover,
	}
	if err := e.results.Save(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// buildPrompt assembles the rewrite instruction. Resume text is collapsed to
// single spaces first so extraction artifacts do not leak into the prompt.
func buildPrompt(resumeText, jobDescription string) string {
	resumeText = strings.Join(strings.Fields(resumeText), " ")

	return fmt.Sprintf(`You are a professional resume writer.

Rewrite the resume below by:
- Using strong action verbs
- Quantifying achievements
- Making it ATS-friendly
- Tailoring it to the job description

Resume:
%s

Job Description:
%s

Return output in this format:

%s
<text>

%s
<text>
`, resumeText, jobDescription, improvedMarker, coverMarker)
}

// splitReply divides the model output on the cover-letter marker. The model
// is untrusted; a missing marker is a tagged error, not a panic.
func splitReply(reply string) (improved, cover string, err error) {
	before, after, found := strings.Cut(reply, coverMarker)
	if !found {
		return "", "", common.ErrMalformedResponse
	}
	improved = strings.TrimSpace(strings.ReplaceAll(before, improvedMarker, ""))
	cover = strings.TrimSpace(after)
	return improved, cover, nil
}
