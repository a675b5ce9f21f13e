package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-enhancer/internal/common"
	"resume-enhancer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply     string
	err       error
	gotPrompt string
	callCount int
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	f.callCount++
	return f.reply, f.err
}

type fakeExtractor struct{ text string }

func (f *fakeExtractor) Text(context.Context, string) string { return f.text }

type fakeResumesRepo struct {
	records map[string]*domain.ResumeRecord // keyed by email+"/"+filename
}

func newFakeResumesRepo() *fakeResumesRepo {
	return &fakeResumesRepo{records: map[string]*domain.ResumeRecord{}}
}

func (f *fakeResumesRepo) Add(_ context.Context, rec *domain.ResumeRecord) error {
	f.records[rec.Email+"/"+rec.Filename] = rec
	return nil
}

func (f *fakeResumesRepo) ListByEmail(_ context.Context, email string) ([]domain.ResumeRecord, error) {
	var out []domain.ResumeRecord
	for _, rec := range f.records {
		if rec.Email == email {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeResumesRepo) Find(_ context.Context, email, filename string) (*domain.ResumeRecord, error) {
	rec, ok := f.records[email+"/"+filename]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rec, nil
}

func (f *fakeResumesRepo) Remove(_ context.Context, email, filename string) error {
	key := email + "/" + filename
	if _, ok := f.records[key]; !ok {
		return common.ErrNotFound
	}
	delete(f.records, key)
	return nil
}

type fakeResultsRepo struct {
	saved []*domain.EnhancedResult
	err   error
}

func (f *fakeResultsRepo) Save(_ context.Context, res *domain.EnhancedResult) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, res)
	return nil
}

func newTestEnhancer(llm *fakeLLM, results *fakeResultsRepo) (*Enhancer, *fakeResumesRepo) {
	resumes := newFakeResumesRepo()
	_ = resumes.Add(context.Background(), &domain.ResumeRecord{
		Email: "a@x.com", Filename: "key.pdf", OriginalName: "cv.pdf",
	})
	e := NewEnhancer(llm, &fakeExtractor{text: "Go\tengineer\n\nfive   years"}, resumes, results, "uploads", nil)
	return e, resumes
}

func TestEnhanceHappyPath(t *testing.T) {
	llm := &fakeLLM{reply: "IMPROVED_RESUME:\nSenior Go engineer.\n\nCOVER_LETTER:\nDear team,"}
	results := &fakeResultsRepo{}
	e, _ := newTestEnhancer(llm, results)

	res, err := e.Enhance(context.Background(), "a@x.com", "key.pdf", "Go developer role")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer.", res.EnhancedResume)
	assert.Equal(t, "Dear team,", res.CoverLetter)
	assert.Equal(t, 1, llm.callCount)

	// whitespace from extraction is collapsed before prompting
	assert.Contains(t, llm.gotPrompt, "Go engineer five years")
	assert.Contains(t, llm.gotPrompt, "Go developer role")
	assert.Contains(t, llm.gotPrompt, "IMPROVED_RESUME:")
	assert.Contains(t, llm.gotPrompt, "COVER_LETTER:")

	// result was persisted
	require.Len(t, results.saved, 1)
	assert.Equal(t, "key.pdf", results.saved[0].ResumeFilename)
}

func TestEnhanceMissingMarkerIsTaggedError(t *testing.T) {
	llm := &fakeLLM{reply: "Here is a much better resume with no sections at all."}
	e, _ := newTestEnhancer(llm, &fakeResultsRepo{})

	_, err := e.Enhance(context.Background(), "a@x.com", "key.pdf", "job")
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestEnhanceUpstreamFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("connection refused")}
	e, _ := newTestEnhancer(llm, &fakeResultsRepo{})

	_, err := e.Enhance(context.Background(), "a@x.com", "key.pdf", "job")
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
}

func TestEnhanceUnownedFileRejected(t *testing.T) {
	llm := &fakeLLM{reply: "unused"}
	e, _ := newTestEnhancer(llm, &fakeResultsRepo{})

	_, err := e.Enhance(context.Background(), "b@x.com", "key.pdf", "job")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 0, llm.callCount)
}

func TestSplitReply(t *testing.T) {
	improved, cover, err := splitReply("IMPROVED_RESUME:\n  resume body \nCOVER_LETTER:\n letter body ")
	require.NoError(t, err)
	assert.Equal(t, "resume body", improved)
	assert.Equal(t, "letter body", cover)
}

func TestSplitReplyWithoutImprovedMarker(t *testing.T) {
	// leading marker absent: everything before COVER_LETTER: is the resume
	improved, cover, err := splitReply("plain rewrite\nCOVER_LETTER:\nletter")
	require.NoError(t, err)
	assert.Equal(t, "plain rewrite", improved)
	assert.Equal(t, "letter", cover)
}

func TestBuildPromptCollapsesWhitespace(t *testing.T) {
	p := buildPrompt("a\n\nb\t c", "job")
	assert.Contains(t, p, "Resume:\na b c")
}
