package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
)

// contrastBoost doubles each pixel's distance from mid-gray, the equivalent
// of a 2.0 contrast multiplier. Kept fixed so reference outputs stay
// reproducible across runs.
const contrastBoost = 1.0

// Enhance applies the recognition preprocessing transform to band pixels:
// grayscale conversion, a fixed contrast boost, then sharpening.
//
// When enabled is false the input is returned unchanged (same value, no
// copy). The transform is deterministic and carries no state, so identical
// input always yields identical output.
func Enhance(img image.Image, enabled bool) image.Image {
	if !enabled {
		return img
	}

	gray := effect.Grayscale(img)
	boosted := adjust.Contrast(gray, contrastBoost)
	return effect.Sharpen(boosted)
}
