package ocr

import (
	"context"
	"image"
)

// easyocrScript runs EasyOCR on the image path in argv[1] and prints one
// JSON array of recognized lines. Exit code 3 means the package is missing.
const easyocrScript = `
import json, sys
try:
    import easyocr
except ImportError:
    sys.stderr.write("easyocr is not installed (pip install easyocr)\n")
    sys.exit(3)
reader = easyocr.Reader(["ch_sim", "en"], gpu=False, verbose=False)
results = reader.readtext(sys.argv[1], paragraph=False)
print(json.dumps([{"text": text, "confidence": float(prob)} for (_, text, prob) in results]))
`

// EasyOCR performs recognition through the EasyOCR Python package, invoked
// as a subprocess. Requires python3 with easyocr installed; the first call
// on a fresh machine downloads model files and can take a while.
type EasyOCR struct {
	bridge pythonBridge
}

// NewEasyOCR creates an EasyOCR engine reading simplified Chinese and
// English.
func NewEasyOCR() *EasyOCR {
	return &EasyOCR{bridge: pythonBridge{name: "easyocr", script: easyocrScript}}
}

// Name returns "easyocr".
func (e *EasyOCR) Name() string { return "easyocr" }

// Available reports whether python3 and the easyocr package are present.
func (e *EasyOCR) Available() bool {
	return e.bridge.available("import easyocr")
}

// Recognize runs EasyOCR over the image and returns its text lines in
// reading order with per-line probabilities as confidence.
func (e *EasyOCR) Recognize(ctx context.Context, img image.Image) ([]Line, error) {
	return e.bridge.recognize(ctx, img)
}
