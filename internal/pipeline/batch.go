package pipeline

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stripocr/stripocr/internal/imaging"
	"github.com/stripocr/stripocr/internal/ocr"
)

// imageExtensions is the case-insensitive allow-list of input file
// extensions batch mode picks up.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
}

// BatchSummary reports the outcome of a batch run.
type BatchSummary struct {
	// Total is the number of eligible image files found.
	Total int

	// Processed is the number of files that produced an output document.
	Processed int

	// Failed is the number of files skipped due to per-file errors.
	Failed int
}

// ListImages returns the eligible image filenames in dir, filtered by the
// extension allow-list and sorted by filename.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input directory: %v", ErrPrecondition, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// RunBatch processes every eligible image in cfg.InputDir through the
// pipeline and writes one sequentially numbered text file per image into
// cfg.OutputDir.
//
// Sequence numbering starts at cfg.StartIndex and advances by one per input
// file whether or not that file succeeds, so downstream consumers can rely
// on stage numbers lining up with the sorted input order. A failed file
// writes no output; its slot is simply consumed.
//
// Per-file failures (unreadable images, engine errors, engine unavailable)
// are logged and isolated - the batch continues. Config and precondition
// failures (missing input directory, uncreatable output directory) abort
// the whole run. An empty input directory is not an error; the run ends
// with a zero summary.
func RunBatch(ctx context.Context, cfg Config, engine ocr.Engine) (BatchSummary, error) {
	if err := cfg.Validate(); err != nil {
		return BatchSummary{}, err
	}

	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("%w: input directory %s: %v", ErrPrecondition, cfg.InputDir, err)
	}
	if !info.IsDir() {
		return BatchSummary{}, fmt.Errorf("%w: input path %s is not a directory", ErrPrecondition, cfg.InputDir)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return BatchSummary{}, fmt.Errorf("%w: failed to create output directory %s: %v", ErrPrecondition, cfg.OutputDir, err)
	}

	names, err := ListImages(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, err
	}
	if len(names) == 0 {
		log.Printf("no image files found in %s", cfg.InputDir)
		return BatchSummary{}, nil
	}

	log.Printf("found %d images, output starts at stage-%d.txt", len(names), cfg.StartIndex)

	summary := BatchSummary{Total: len(names)}
	for i, name := range names {
		seq := cfg.StartIndex + i
		inputPath := filepath.Join(cfg.InputDir, name)
		outputName := fmt.Sprintf("stage-%d.txt", seq)
		outputPath := filepath.Join(cfg.OutputDir, outputName)

		log.Printf("[%d/%d] %s -> %s", i+1, len(names), name, outputName)

		result, err := Run(ctx, inputPath, cfg, engine)
		if err != nil {
			log.Printf("failed to process %s: %v", name, err)
			summary.Failed++
			continue
		}

		if err := WriteDocument(outputPath, result.Document); err != nil {
			log.Printf("failed to write %s: %v", outputPath, err)
			summary.Failed++
			continue
		}

		if cfg.DebugBands {
			overlayPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("stage-%d_bands.png", seq))
			if err := writeBandOverlay(inputPath, overlayPath, result.Bands); err != nil {
				// Debug output only; the text result already exists.
				log.Printf("failed to write band overlay %s: %v", overlayPath, err)
			}
		}

		summary.Processed++
	}

	log.Printf("batch done: %d processed, %d failed", summary.Processed, summary.Failed)
	return summary, nil
}

// WriteDocument serializes a document to path as UTF-8 plain text, one line
// per newline-terminated record, overwriting any existing file.
func WriteDocument(path string, doc Document) error {
	text := doc.Text()
	if text != "" {
		text += "\n"
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// writeBandOverlay renders the band layout over the source image and saves
// it as a PNG for visual inspection of the split geometry.
func writeBandOverlay(imagePath, outputPath string, spans []imaging.Span) error {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return err
	}

	overlay := imaging.BandOverlay(img, spans)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, overlay)
}
