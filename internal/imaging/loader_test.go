package imaging

import (
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, createRowPattern(width, height)); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestLoad_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writePNG(t, path, 64, 48)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	w, h := Dimensions(img)
	if w != 64 || h != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", w, h)
	}
}

func TestLoad_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := bmp.Encode(f, createRowPattern(32, 16)); err != nil {
		f.Close()
		t.Fatalf("failed to encode bmp: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed for bmp: %v", err)
	}
	if w, h := Dimensions(img); w != 32 || h != 16 {
		t.Errorf("dimensions: got %dx%d, want 32x16", w, h)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should preserve fs.ErrNotExist, got: %v", err)
	}
}

func TestLoad_CorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for corrupt image data")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("decode failure should not look like a missing file")
	}
}
