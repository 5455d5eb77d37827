package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
)

// boundaryThickness is the height in pixels of each drawn band boundary line.
const boundaryThickness = 3

// BandOverlay renders a copy of the source image with every band's top and
// bottom boundary drawn as a colored horizontal line, one distinct color per
// band. Overlap zones show two differently colored lines close together,
// which makes mis-configured geometry obvious at a glance.
//
// The caller is responsible for encoding the returned image (PNG works well).
func BandOverlay(img image.Image, spans []Span) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	if len(spans) == 0 {
		return result
	}

	palette := colorful.FastHappyPalette(len(spans))
	for i, span := range spans {
		r, g, b := palette[i].RGB255()
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		drawRow(result, span.OriginY, c)
		drawRow(result, span.End()-boundaryThickness, c)
	}

	return result
}

// drawRow fills a horizontal stripe boundaryThickness pixels tall starting
// at row y, clamped to the image bounds.
func drawRow(img *image.RGBA, y int, c color.RGBA) {
	bounds := img.Bounds()
	for dy := 0; dy < boundaryThickness; dy++ {
		row := bounds.Min.Y + y + dy
		if row < bounds.Min.Y || row >= bounds.Max.Y {
			continue
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, row, c)
		}
	}
}
