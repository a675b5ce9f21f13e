package extract

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	_ "image/jpeg" // jpg/jpeg uploads

	"github.com/google/uuid"
)

// binarizeCutoff maps gray pixels to pure black/white to sharpen text edges
// before recognition.
const binarizeCutoff = 150

func (e *Extractor) imageOCR(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bin := binarize(img, binarizeCutoff)

	tmp := filepath.Join(os.TempDir(), "resume-ocr-"+uuid.NewString()+".png")
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp)

	if err := png.Encode(out, bin); err != nil {
		out.Close()
		return "", fmt.Errorf("encode temp image: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	return e.tesseractOCR(ctx, tmp)
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

// binarize converts img to grayscale and applies a fixed threshold: pixels
// above cutoff become white, the rest black.
func binarize(img image.Image, cutoff uint8) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y > cutoff {
				out.SetGray(x, y, color.Gray{Y: 255})
			} else {
				out.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return out
}
