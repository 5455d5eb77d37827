// Package ocr defines the recognition engine contract the pipeline depends
// on, plus the three interchangeable engines that satisfy it: Tesseract
// (native bindings via gosseract), EasyOCR and PaddleOCR (Python bridges
// invoked as subprocesses).
//
// The interface is intentionally small: pixels in, ordered text lines out.
// Engines must preserve reading order between calls for identical input;
// confidence semantics are engine-defined and bounding geometry is not
// trusted across engines, so none is exposed.
//
// # Availability
//
// Engines may be missing from the host system entirely (Tesseract not
// installed, Python packages absent). Recognize reports this by wrapping
// ErrEngineUnavailable so callers can decide whether the condition is fatal
// (single-image mode) or skippable (batch mode). Recognition is assumed
// expensive and idempotent-on-failure; nothing in this package retries.
//
// # Temporary Files
//
// The bridge engines require file-based input and write each image to a
// uniquely named temporary PNG, removed after the call. Concurrent calls
// never collide because os.CreateTemp picks a fresh name per invocation.
package ocr
