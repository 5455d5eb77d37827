package ocr

import (
	"context"
	"image"
)

// paddleScript runs PaddleOCR on the image path in argv[1] and prints one
// JSON array of recognized lines. Exit code 3 means the package is missing.
const paddleScript = `
import json, sys
try:
    from paddleocr import PaddleOCR
except ImportError:
    sys.stderr.write("paddleocr is not installed (pip install paddlepaddle paddleocr)\n")
    sys.exit(3)
ocr = PaddleOCR(use_angle_cls=True, lang="ch", show_log=False)
result = ocr.ocr(sys.argv[1], cls=True)
lines = []
if result and result[0]:
    for entry in result[0]:
        text, prob = entry[1]
        lines.append({"text": text, "confidence": float(prob)})
print(json.dumps(lines))
`

// PaddleOCR performs recognition through the PaddleOCR Python package,
// invoked as a subprocess. Requires python3 with paddlepaddle and paddleocr
// installed. Tends to do better than EasyOCR on dense Chinese text.
type PaddleOCR struct {
	bridge pythonBridge
}

// NewPaddleOCR creates a PaddleOCR engine with angle classification enabled
// and Chinese as the primary language.
func NewPaddleOCR() *PaddleOCR {
	return &PaddleOCR{bridge: pythonBridge{name: "paddleocr", script: paddleScript}}
}

// Name returns "paddleocr".
func (p *PaddleOCR) Name() string { return "paddleocr" }

// Available reports whether python3 and the paddleocr package are present.
func (p *PaddleOCR) Available() bool {
	return p.bridge.available("import paddleocr")
}

// Recognize runs PaddleOCR over the image and returns its text lines in
// reading order with recognition probabilities as confidence.
func (p *PaddleOCR) Recognize(ctx context.Context, img image.Image) ([]Line, error) {
	return p.bridge.recognize(ctx, img)
}
