package imaging

import (
	"image/color"
	"testing"
)

func TestBandOverlay(t *testing.T) {
	img := createRowPattern(40, 90)
	spans, err := BandLayout(90, 40, 10)
	if err != nil {
		t.Fatalf("BandLayout failed: %v", err)
	}

	overlay := BandOverlay(img, spans)

	bounds := overlay.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 90 {
		t.Fatalf("overlay dimensions: got %dx%d, want 40x90", bounds.Dx(), bounds.Dy())
	}

	// Each band's top boundary row must be painted over the source pattern.
	for i, span := range spans {
		r, g, b, _ := overlay.At(5, span.OriginY).RGBA()
		src := color.NRGBA{R: uint8(span.OriginY % 256), G: 50, B: 100, A: 255}
		sr, sg, sb, _ := src.RGBA()
		if r == sr && g == sg && b == sb {
			t.Errorf("band %d boundary row %d was not painted", i, span.OriginY)
		}
	}

	// Rows away from any boundary keep the source pixels.
	midY := spans[0].OriginY + spans[0].Height/2
	r, _, _, _ := overlay.At(5, midY).RGBA()
	if want := uint32(midY%256) * 257; r != want {
		t.Errorf("non-boundary row %d changed: red=%d, want %d", midY, r, want)
	}
}

func TestBandOverlay_NoSpans(t *testing.T) {
	img := createRowPattern(10, 10)
	overlay := BandOverlay(img, nil)
	if overlay.Bounds().Dx() != 10 || overlay.Bounds().Dy() != 10 {
		t.Error("overlay with no spans should still copy the source image")
	}
}
