package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// ErrEngineUnavailable reports that the selected recognition engine is not
// usable on this system (binary, library, or Python package missing).
// Returned errors wrap it, so test with errors.Is.
var ErrEngineUnavailable = errors.New("recognition engine unavailable")

// Line is a single recognized text line with its engine-reported confidence.
//
// Confidence is in [0, 1]; its exact semantics are engine-defined and
// comparable only within one engine. Ordering of lines follows the engine's
// reading order for the image.
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Engine is the recognition capability the pipeline consumes: one image in,
// ordered text lines out.
//
// Recognize is blocking and potentially slow (model-bound, possibly seconds
// per call); cancellation is the caller's responsibility via ctx. Identical
// pixel input must yield lines in a consistent reading order across calls.
type Engine interface {
	// Name returns the engine's selector name (e.g. "tesseract").
	Name() string

	// Available reports whether the engine can run on this system.
	Available() bool

	// Recognize extracts ordered text lines from the image. Errors wrap
	// ErrEngineUnavailable when the engine is missing rather than failing.
	Recognize(ctx context.Context, img image.Image) ([]Line, error)
}

// EngineNames lists the selectable engine names accepted by Select.
func EngineNames() []string {
	return []string{"tesseract", "easyocr", "paddleocr"}
}

// Select resolves an engine by its configured name. This is the single
// place where an engine-name string is branched on; everything downstream
// works against the Engine interface.
func Select(name string) (Engine, error) {
	switch name {
	case "tesseract":
		return NewTesseract(), nil
	case "easyocr":
		return NewEasyOCR(), nil
	case "paddleocr":
		return NewPaddleOCR(), nil
	default:
		return nil, fmt.Errorf("unknown recognition engine %q (choose one of %v)", name, EngineNames())
	}
}
