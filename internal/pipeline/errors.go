package pipeline

import "errors"

// Error categories for pipeline failures. All errors returned by this
// package wrap exactly one of these (or ocr.ErrEngineUnavailable), so
// callers classify with errors.Is.
//
// Config and precondition errors are fatal for a whole run. Format and
// recognition errors are scoped to one file: batch processing logs them,
// skips the file, and keeps its sequence slot; single-image mode surfaces
// them with a non-zero exit.
var (
	// ErrConfig reports invalid pipeline configuration, such as band
	// geometry where the overlap is not smaller than the band height.
	ErrConfig = errors.New("invalid configuration")

	// ErrPrecondition reports a missing input path or an output directory
	// that cannot be created.
	ErrPrecondition = errors.New("precondition failed")

	// ErrFormat reports an unreadable or corrupt input image.
	ErrFormat = errors.New("unreadable image")

	// ErrRecognition reports that the recognition engine raised during a
	// call. Calls are never retried; recognition is assumed expensive and
	// idempotent on failure.
	ErrRecognition = errors.New("recognition failed")
)
