// Package extract pulls best-effort plain text out of uploaded resumes.
//
// PDFs take the fast path: native text via pdftotext. If a PDF yields no
// meaningful text layer it is assumed to be a scan, and a fixed advisory is
// returned instead of attempting OCR (rasterizing and recognizing a multi-page
// scan inline is too slow for a request path). Images always go through OCR.
package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// ScannedPDFAdvisory is returned for PDFs with no usable text layer.
const ScannedPDFAdvisory = "This resume appears to be a scanned PDF. " +
	"For best results, please upload a text-based PDF or image resume."

// nativeTextMin is the minimum extracted length for a PDF to count as
// digitally authored rather than scanned.
const nativeTextMin = 100

type Config struct {
	Pdftotext     string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Text extracts plain text from the file at path. The result may be empty or
// the scanned-PDF advisory; callers treat empty output as "nothing usable
// extracted", never as an error.
func (e *Extractor) Text(ctx context.Context, path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		txt, err := e.pdfToText(ctx, path)
		if err != nil {
			e.logger.Warn("pdf text extraction failed", "path", path, "error", err)
			txt = ""
		}
		txt = strings.TrimSpace(txt)
		if len(txt) > nativeTextMin {
			return txt
		}
		return ScannedPDFAdvisory
	}

	txt, err := e.imageOCR(ctx, path)
	if err != nil {
		e.logger.Warn("image ocr failed", "path", path, "error", err)
		return ""
	}
	return txt
}
