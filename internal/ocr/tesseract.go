package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract performs recognition through the native Tesseract bindings.
//
// Tesseract must be installed on the system together with training data for
// the configured languages:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-chi-sim
//   - macOS: brew install tesseract
type Tesseract struct {
	// Languages are Tesseract language codes tried in order (e.g. "chi_sim",
	// "eng"). The corresponding traineddata files must be installed.
	Languages []string
}

// NewTesseract creates a Tesseract engine configured for simplified Chinese
// plus English, the same language pair the other engines default to.
func NewTesseract() *Tesseract {
	return &Tesseract{Languages: []string{"chi_sim", "eng"}}
}

// Name returns "tesseract".
func (t *Tesseract) Name() string { return "tesseract" }

// Available reports whether the Tesseract library can be initialized.
func (t *Tesseract) Available() bool {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version() != ""
}

// Recognize runs Tesseract over the image and returns its text lines.
//
// Line granularity uses Tesseract's RIL_TEXTLINE iterator, which yields a
// per-line confidence. If line iteration fails (it can with some Tesseract
// builds), the plain recognized text is split on newlines instead and the
// confidence is reported as zero.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) ([]Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for tesseract: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Languages...); err != nil {
		return nil, fmt.Errorf("%w: failed to set tesseract languages %v: %v", ErrEngineUnavailable, t.Languages, err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set tesseract image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err == nil && len(boxes) > 0 {
		lines := make([]Line, 0, len(boxes))
		for _, box := range boxes {
			text := strings.TrimSpace(box.Word)
			if text == "" {
				continue
			}
			lines = append(lines, Line{Text: text, Confidence: box.Confidence / 100.0})
		}
		return lines, nil
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract recognition failed: %w", err)
	}
	return splitPlainText(text), nil
}

// splitPlainText converts engine output with embedded newlines into Lines,
// dropping blank rows. Confidence is unknown and reported as zero.
func splitPlainText(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		row := strings.TrimSpace(raw)
		if row == "" {
			continue
		}
		lines = append(lines, Line{Text: row})
	}
	return lines
}
