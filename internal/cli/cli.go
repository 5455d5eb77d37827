// Package cli parses arguments and dispatches the two program modes: batch
// (first argument is a directory) and single image (first argument is a
// file). Parsing is deliberately forgiving: an unparseable start index
// falls back to 1 with a warning and unknown flags are warned about and
// ignored, neither is fatal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stripocr/stripocr/internal/ocr"
	"github.com/stripocr/stripocr/internal/pipeline"
)

// Exit codes: 0 for success (including "no files found"), 1 for
// configuration or precondition failures and for single-image errors.
const (
	exitOK    = 0
	exitError = 1
)

// Run executes the program with the given arguments (os.Args[1:]) and
// returns the process exit code.
func Run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return exitError
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return exitOK
	}

	info, err := os.Stat(args[0])
	if err != nil {
		log.Printf("input path does not exist: %s", args[0])
		return exitError
	}

	if info.IsDir() {
		return runBatch(args)
	}
	return runSingle(args)
}

// runBatch handles: <input_dir> <output_dir> [start_index] [options]
func runBatch(args []string) int {
	if len(args) < 2 {
		printUsage()
		return exitError
	}

	cfg := pipeline.DefaultConfig()
	cfg.InputDir = args[0]
	cfg.OutputDir = args[1]

	if err := parseBatchOptions(args[2:], &cfg); err != nil {
		log.Printf("%v", err)
		return exitError
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("%v", err)
		return exitError
	}

	engine, err := ocr.Select(cfg.Engine)
	if err != nil {
		log.Printf("%v", err)
		return exitError
	}

	if _, err := pipeline.RunBatch(context.Background(), cfg, engine); err != nil {
		log.Printf("%v", err)
		return exitError
	}
	return exitOK
}

// parseBatchOptions consumes the optional positional start index followed
// by the option flags, mutating cfg.
func parseBatchOptions(args []string, cfg *pipeline.Config) error {
	i := 0
	if len(args) > 0 && !strings.HasPrefix(args[0], "--") {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			log.Printf("warning: start index %q is not an integer, using 1", args[0])
		} else {
			cfg.StartIndex = n
		}
		i = 1
	}

	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--chunk-height" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("%w: --chunk-height %q is not an integer", pipeline.ErrConfig, args[i+1])
			}
			cfg.BandHeight = n
			i += 2
		case arg == "--overlap" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("%w: --overlap %q is not an integer", pipeline.ErrConfig, args[i+1])
			}
			cfg.Overlap = n
			i += 2
		case arg == "--line-height" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("%w: --line-height %q is not an integer", pipeline.ErrConfig, args[i+1])
			}
			cfg.LineHeight = n
			i += 2
		case arg == "--workers" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("%w: --workers %q is not an integer", pipeline.ErrConfig, args[i+1])
			}
			cfg.Workers = n
			i += 2
		case arg == "--engine" && i+1 < len(args):
			cfg.Engine = args[i+1]
			i += 2
		case arg == "--no-enhance":
			cfg.Enhance = false
			i++
		case arg == "--paddle":
			cfg.Engine = "paddleocr"
			i++
		case arg == "--debug-bands":
			cfg.DebugBands = true
			i++
		default:
			log.Printf("warning: ignoring unknown argument %q", arg)
			i++
		}
	}
	return nil
}

// runSingle handles: <image_path> [output_file] [method]
func runSingle(args []string) int {
	imagePath := args[0]

	outputPath := defaultOutputPath(imagePath)
	if len(args) > 1 && args[1] != "" {
		outputPath = args[1]
	}

	engineName := pipeline.DefaultEngine
	if len(args) > 2 {
		engineName = args[2]
	}

	engine, err := ocr.Select(engineName)
	if err != nil {
		log.Printf("%v", err)
		return exitError
	}

	cfg := pipeline.DefaultConfig()
	cfg.Engine = engineName

	result, err := pipeline.Run(context.Background(), imagePath, cfg, engine)
	if err != nil {
		if errors.Is(err, ocr.ErrEngineUnavailable) {
			log.Printf("engine %s is not available: %v", engineName, err)
		} else {
			log.Printf("failed to process %s: %v", imagePath, err)
		}
		return exitError
	}

	if err := pipeline.WriteDocument(outputPath, result.Document); err != nil {
		log.Printf("failed to write %s: %v", outputPath, err)
		return exitError
	}

	log.Printf("recognized %d lines, saved to %s", len(result.Document.Lines), outputPath)
	return exitOK
}

// defaultOutputPath derives the single-mode output file from the input
// filename: the stem with an _ocr suffix and a .txt extension, in the same
// directory.
func defaultOutputPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	stem := strings.TrimSuffix(imagePath, ext)
	return stem + "_ocr.txt"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  stripocr <input_dir> <output_dir> [start_index] [options]")
	fmt.Fprintln(os.Stderr, "  stripocr <image_path> [output_file] [method]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Batch options:")
	fmt.Fprintln(os.Stderr, "  --chunk-height N   band height in pixels (default 2000)")
	fmt.Fprintln(os.Stderr, "  --overlap N        rows shared between bands (default 200)")
	fmt.Fprintln(os.Stderr, "  --line-height N    assumed text line height for overlap trim (default 30)")
	fmt.Fprintln(os.Stderr, "  --no-enhance       disable image enhancement preprocessing")
	fmt.Fprintln(os.Stderr, "  --paddle           use the PaddleOCR engine")
	fmt.Fprintln(os.Stderr, "  --engine NAME      recognition engine: tesseract, easyocr, paddleocr")
	fmt.Fprintln(os.Stderr, "  --workers N        concurrent recognition calls per image (default 1)")
	fmt.Fprintln(os.Stderr, "  --debug-bands      write band-layout overlay PNGs next to outputs")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Single-image method: tesseract, easyocr (default), paddleocr")
}
