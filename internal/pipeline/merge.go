package pipeline

import (
	"strings"

	"github.com/stripocr/stripocr/internal/ocr"
)

// Document is the final ordered, deduplicated text result for one source
// image.
type Document struct {
	Lines []ocr.Line
}

// Text serializes the document as plain text, one line per row, no header
// or metadata.
func (d Document) Text() string {
	texts := make([]string, len(d.Lines))
	for i, line := range d.Lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}

// MergeLines combines per-band recognition results into one document,
// trimming lines duplicated by the band overlap.
//
// Consecutive bands share overlapPx source rows, so a line fully inside the
// overlap window is recognized twice: at the bottom of band i and again at
// the top of band i+1. Rather than attempting pixel-level deduplication
// (geometry is not trustworthy across engines), a positional heuristic drops
// the first max(1, overlapPx/lineHeightPx) lines of every band after the
// first and keeps the rest in order.
//
// The heuristic assumes a roughly uniform line height of lineHeightPx
// (default DefaultLineHeight) and overlap rows fully occupied by whole
// lines. Irregular spacing or a line straddling the overlap boundary can
// cause an under- or over-trim; this is a known, documented approximation
// and is intentionally left as-is.
//
// Zero bands yield an empty document; a single band is returned unmodified.
func MergeLines(perBand [][]ocr.Line, overlapPx, lineHeightPx int) Document {
	if len(perBand) == 0 {
		return Document{}
	}
	if lineHeightPx <= 0 {
		lineHeightPx = DefaultLineHeight
	}

	var merged []ocr.Line
	merged = append(merged, perBand[0]...)

	trim := overlapPx / lineHeightPx
	if trim < 1 {
		trim = 1
	}

	for _, lines := range perBand[1:] {
		if len(lines) <= trim {
			continue
		}
		merged = append(merged, lines[trim:]...)
	}

	return Document{Lines: merged}
}
