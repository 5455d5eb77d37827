package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Span describes the vertical extent of one band in source-image coordinates.
type Span struct {
	// OriginY is the top offset of the band in source rows.
	OriginY int `json:"origin_y"`

	// Height is the number of source rows the band covers.
	Height int `json:"height"`
}

// End returns the exclusive bottom row of the span (OriginY + Height).
func (s Span) End() int { return s.OriginY + s.Height }

// Band is a horizontal slice of a source image with its own pixel buffer.
//
// Pixels is a copy of the source rows [OriginY, OriginY+Height); mutating it
// does not affect the source image. A Band is meant to be discarded once its
// recognition result has been obtained.
type Band struct {
	Span

	// Pixels holds the band's image data, full source width.
	Pixels *image.NRGBA
}

// BandLayout computes the band geometry for an image of the given height
// without touching any pixels.
//
// Parameters:
//   - height: Source image height in rows. Must be > 0.
//   - bandHeight: Nominal band height in rows. Must be > 0.
//   - overlap: Rows shared between consecutive bands. Must satisfy
//     0 <= overlap < bandHeight; an overlap >= bandHeight would make no
//     forward progress and is rejected rather than looped forever.
//
// The returned spans are in strictly increasing OriginY order and cover
// every source row. When height <= bandHeight a single span covers the
// whole image and overlap plays no part. The final span may be shorter
// than bandHeight; it is never folded into the previous one.
func BandLayout(height, bandHeight, overlap int) ([]Span, error) {
	if height <= 0 {
		return nil, fmt.Errorf("image height must be positive, got %d", height)
	}
	if bandHeight <= 0 {
		return nil, fmt.Errorf("band height must be positive, got %d", bandHeight)
	}
	if overlap < 0 || overlap >= bandHeight {
		return nil, fmt.Errorf("overlap must be in [0, band height), got overlap=%d band height=%d", overlap, bandHeight)
	}

	var spans []Span
	y := 0
	for {
		end := y + bandHeight
		if end > height {
			end = height
		}
		spans = append(spans, Span{OriginY: y, Height: end - y})
		if end >= height {
			return spans, nil
		}
		// end-overlap > y because overlap < bandHeight, so this always advances.
		y = end - overlap
	}
}

// SplitBands splits an image into overlapping horizontal bands.
//
// Geometry follows BandLayout; each band's pixels are cropped out of the
// source as an independent copy, so bands can be processed (and enhanced
// in place) concurrently.
func SplitBands(img image.Image, bandHeight, overlap int) ([]Band, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	spans, err := BandLayout(height, bandHeight, overlap)
	if err != nil {
		return nil, err
	}

	bands := make([]Band, 0, len(spans))
	for _, span := range spans {
		rect := image.Rect(bounds.Min.X, bounds.Min.Y+span.OriginY, bounds.Min.X+width, bounds.Min.Y+span.End())
		bands = append(bands, Band{
			Span:   span,
			Pixels: imaging.Crop(img, rect),
		})
	}

	return bands, nil
}
