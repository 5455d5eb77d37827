package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/stripocr/stripocr/internal/imaging"
	"github.com/stripocr/stripocr/internal/ocr"
)

// Result holds everything produced by one per-image pipeline run.
type Result struct {
	// Document is the merged, deduplicated text for the whole image.
	Document Document

	// Width and Height are the source image dimensions.
	Width  int
	Height int

	// Bands is the band geometry the image was split into, in order.
	Bands []imaging.Span
}

// Run processes a single image through the full pipeline: load, split into
// overlapping bands, optionally enhance each band, recognize each band with
// the engine, and merge the per-band lines into one document.
//
// Errors are classified per the package taxonomy: missing file wraps
// ErrPrecondition, undecodable data wraps ErrFormat, bad geometry wraps
// ErrConfig, and engine failures wrap ErrRecognition (or pass through
// ocr.ErrEngineUnavailable).
func Run(ctx context.Context, path string, cfg Config, engine ocr.Engine) (*Result, error) {
	img, err := imaging.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrPrecondition, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	width, height := imaging.Dimensions(img)
	log.Printf("image %s: %d x %d", path, width, height)

	bands, err := imaging.SplitBands(img, cfg.BandHeight, cfg.Overlap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	log.Printf("split into %d bands (band height %d, overlap %d)", len(bands), cfg.BandHeight, cfg.Overlap)

	perBand, err := recognizeBands(ctx, bands, cfg, engine)
	if err != nil {
		return nil, err
	}

	spans := make([]imaging.Span, len(bands))
	for i, band := range bands {
		spans[i] = band.Span
	}

	return &Result{
		Document: MergeLines(perBand, cfg.Overlap, cfg.LineHeight),
		Width:    width,
		Height:   height,
		Bands:    spans,
	}, nil
}

// recognizeBands obtains per-band line sequences, in band order.
//
// With Workers <= 1 bands are processed strictly sequentially. Otherwise
// recognition fans out across bands, bounded by Workers; bands are
// independent pure inputs, and results are written into an indexed slice so
// the merger always sees them in original band order regardless of
// completion order.
func recognizeBands(ctx context.Context, bands []imaging.Band, cfg Config, engine ocr.Engine) ([][]ocr.Line, error) {
	results := make([][]ocr.Line, len(bands))

	if cfg.Workers <= 1 {
		for i, band := range bands {
			lines, err := recognizeBand(ctx, band, cfg, engine)
			if err != nil {
				return nil, err
			}
			log.Printf("band %d/%d (y=%d): %d lines", i+1, len(bands), band.OriginY, len(lines))
			results[i] = lines
		}
		return results, nil
	}

	sem := make(chan struct{}, cfg.Workers)
	errs := make([]error, len(bands))
	var wg sync.WaitGroup

	for i := range bands {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = recognizeBand(ctx, bands[i], cfg, engine)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// recognizeBand runs preprocessing and recognition for one band.
func recognizeBand(ctx context.Context, band imaging.Band, cfg Config, engine ocr.Engine) ([]ocr.Line, error) {
	pixels := imaging.Enhance(band.Pixels, cfg.Enhance)

	lines, err := engine.Recognize(ctx, pixels)
	if err != nil {
		if errors.Is(err, ocr.ErrEngineUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: band at y=%d: %v", ErrRecognition, band.OriginY, err)
	}
	return lines, nil
}
