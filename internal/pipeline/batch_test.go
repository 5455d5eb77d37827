package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func batchConfig(inputDir, outputDir string) Config {
	cfg := DefaultConfig()
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir
	cfg.BandHeight = 40
	cfg.Overlap = 10
	cfg.Enhance = false
	return cfg
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "c.PNG", "notes.txt", "d.jpeg", "x.webp", "y.tiff", "z.bmp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatalf("failed to make dir: %v", err)
	}

	names, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}

	want := []string{"a.jpg", "b.png", "c.PNG", "d.jpeg", "x.webp", "y.tiff", "z.bmp"}
	if len(names) != len(want) {
		t.Fatalf("file count: got %d (%v), want %d", len(names), names, len(want))
	}
	for i, name := range names {
		if name != want[i] {
			t.Errorf("file %d: got %q, want %q", i, name, want[i])
		}
	}
}

func TestRunBatch_SequenceNumbering(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeTallPNG(t, filepath.Join(inputDir, "a.png"), 20, 90)
	// b.png is corrupt: it must fail, be skipped, and still consume a slot.
	if err := os.WriteFile(filepath.Join(inputDir, "b.png"), []byte("corrupt"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}
	writeTallPNG(t, filepath.Join(inputDir, "c.png"), 20, 90)

	cfg := batchConfig(inputDir, outputDir)
	cfg.StartIndex = 5

	summary, err := RunBatch(context.Background(), cfg, newFakeEngine())
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	if summary.Total != 3 || summary.Processed != 2 || summary.Failed != 1 {
		t.Errorf("summary: got %+v, want Total=3 Processed=2 Failed=1", summary)
	}

	for _, name := range []string{"stage-5.txt", "stage-7.txt"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}
	// The failed file writes nothing at its slot.
	if _, err := os.Stat(filepath.Join(outputDir, "stage-6.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Error("stage-6.txt should not exist for the failed file")
	}
}

func TestRunBatch_OutputContent(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeTallPNG(t, filepath.Join(inputDir, "only.png"), 20, 90)

	if _, err := RunBatch(context.Background(), batchConfig(inputDir, outputDir), newFakeEngine()); err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "stage-1.txt"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		t.Error("output should end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 7 {
		t.Errorf("output line count: got %d, want 7", len(lines))
	}
	if lines[0] != "band0-line0" {
		t.Errorf("first line: got %q, want band0-line0", lines[0])
	}
}

func TestRunBatch_EmptyDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	summary, err := RunBatch(context.Background(), batchConfig(inputDir, outputDir), newFakeEngine())
	if err != nil {
		t.Fatalf("RunBatch on an empty directory should not fail: %v", err)
	}
	if summary.Total != 0 {
		t.Errorf("summary total: got %d, want 0", summary.Total)
	}
}

func TestRunBatch_MissingInputDir(t *testing.T) {
	cfg := batchConfig(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	_, err := RunBatch(context.Background(), cfg, newFakeEngine())
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("got %v, want ErrPrecondition", err)
	}
}

func TestRunBatch_InvalidConfig(t *testing.T) {
	cfg := batchConfig(t.TempDir(), t.TempDir())
	cfg.Overlap = cfg.BandHeight
	_, err := RunBatch(context.Background(), cfg, newFakeEngine())
	if !errors.Is(err, ErrConfig) {
		t.Errorf("got %v, want ErrConfig", err)
	}
}

func TestRunBatch_UnavailableEngineContinues(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeTallPNG(t, filepath.Join(inputDir, "a.png"), 20, 90)
	writeTallPNG(t, filepath.Join(inputDir, "b.png"), 20, 90)

	engine := newFakeEngine()
	engine.unavailable = true

	summary, err := RunBatch(context.Background(), batchConfig(inputDir, outputDir), engine)
	if err != nil {
		t.Fatalf("batch should isolate unavailable-engine errors per file: %v", err)
	}
	if summary.Failed != 2 || summary.Processed != 0 {
		t.Errorf("summary: got %+v, want Failed=2 Processed=0", summary)
	}
}

func TestRunBatch_DebugBands(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")
	writeTallPNG(t, filepath.Join(inputDir, "a.png"), 20, 90)

	cfg := batchConfig(inputDir, outputDir)
	cfg.DebugBands = true

	if _, err := RunBatch(context.Background(), cfg, newFakeEngine()); err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "stage-1_bands.png")); err != nil {
		t.Errorf("expected band overlay PNG: %v", err)
	}
}

func TestRunBatch_CreatesOutputDir(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "deep", "nested", "out")
	writeTallPNG(t, filepath.Join(inputDir, "a.png"), 20, 90)

	if _, err := RunBatch(context.Background(), batchConfig(inputDir, outputDir), newFakeEngine()); err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "stage-1.txt")); err != nil {
		t.Errorf("expected output in created directory: %v", err)
	}
}
