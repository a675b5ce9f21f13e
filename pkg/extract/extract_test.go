package extract

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner returns canned output per binary name.
type stubRunner struct {
	stdout map[string]string
	errs   map[string]error
	calls  []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.errs[name]; ok && err != nil {
		return nil, []byte("boom"), err
	}
	return []byte(s.stdout[name]), nil, nil
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

func TestTextPDFNativeFastPath(t *testing.T) {
	long := strings.Repeat("Senior Go engineer with measurable impact. ", 5)
	e := newTestExtractor(&stubRunner{stdout: map[string]string{"pdftotext": "\n" + long + "\n"}})

	got := e.Text(context.Background(), "resume.pdf")
	assert.Equal(t, strings.TrimSpace(long), got)
}

func TestTextPDFShortTextReturnsAdvisory(t *testing.T) {
	e := newTestExtractor(&stubRunner{stdout: map[string]string{"pdftotext": "just a header"}})

	got := e.Text(context.Background(), "scan.pdf")
	assert.Equal(t, ScannedPDFAdvisory, got)
}

func TestTextPDFExactThresholdReturnsAdvisory(t *testing.T) {
	// 100 chars is not "more than 100"
	e := newTestExtractor(&stubRunner{stdout: map[string]string{"pdftotext": strings.Repeat("a", 100)}})

	got := e.Text(context.Background(), "edge.pdf")
	assert.Equal(t, ScannedPDFAdvisory, got)
}

func TestTextPDFExtractionFailureIsSwallowed(t *testing.T) {
	e := newTestExtractor(&stubRunner{errs: map[string]error{"pdftotext": errors.New("exit 1")}})

	got := e.Text(context.Background(), "broken.pdf")
	assert.Equal(t, ScannedPDFAdvisory, got)
}

func TestTextPDFNeverRunsOCR(t *testing.T) {
	r := &stubRunner{stdout: map[string]string{"pdftotext": "short"}}
	e := newTestExtractor(r)

	e.Text(context.Background(), "scan.pdf")
	for _, c := range r.calls {
		assert.NotEqual(t, "tesseract", c)
	}
}

func TestTextImageRunsOCR(t *testing.T) {
	r := &stubRunner{stdout: map[string]string{"tesseract": "recognized text\n"}}
	e := newTestExtractor(r)

	got := e.Text(context.Background(), writeTestImage(t))
	assert.Equal(t, "recognized text\n", got)
	assert.Contains(t, r.calls, "tesseract")
	assert.NotEqual(t, ScannedPDFAdvisory, got)
}

func TestTextImageOCRFailureYieldsEmpty(t *testing.T) {
	e := newTestExtractor(&stubRunner{errs: map[string]error{"tesseract": errors.New("exit 1")}})

	got := e.Text(context.Background(), writeTestImage(t))
	assert.Equal(t, "", got)
}

func TestTextImageUnreadableYieldsEmpty(t *testing.T) {
	e := newTestExtractor(&stubRunner{})

	got := e.Text(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Equal(t, "", got)
}

func TestBinarizeThreshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: binarizeCutoff})     // at cutoff -> black
	img.SetGray(1, 0, color.Gray{Y: binarizeCutoff + 1}) // above -> white

	out := binarize(img, binarizeCutoff)
	assert.Equal(t, uint8(0), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), out.GrayAt(1, 0).Y)
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "resume.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}
