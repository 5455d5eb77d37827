package pipeline

import "fmt"

// Defaults for the pipeline configuration. The assumed line height feeds
// the overlap trim heuristic and is deliberately overridable (see
// MergeLines); its default is kept so reference outputs stay reproducible.
const (
	DefaultBandHeight = 2000
	DefaultOverlap    = 200
	DefaultLineHeight = 30
	DefaultEngine     = "easyocr"
)

// Config carries the pipeline settings threaded explicitly from the CLI
// down to every stage. There is no ambient state: engine selection, band
// geometry, and enhancement all live here.
type Config struct {
	// BandHeight is the nominal height in pixels of each band.
	BandHeight int

	// Overlap is the number of source rows shared between consecutive
	// bands, used to avoid cutting a text line at a band boundary.
	Overlap int

	// LineHeight is the assumed text line height in pixels used by the
	// overlap trim heuristic. Default 30.
	LineHeight int

	// Enhance enables grayscale/contrast/sharpen preprocessing per band.
	Enhance bool

	// Engine selects the recognition engine by name.
	Engine string

	// Workers bounds concurrent recognition calls across bands of one
	// image. 1 (or less) means strictly sequential processing.
	Workers int

	// StartIndex is the sequence number assigned to the first batch file.
	StartIndex int

	// InputDir and OutputDir drive batch mode.
	InputDir  string
	OutputDir string

	// DebugBands writes a band-layout overlay PNG next to each batch
	// output file.
	DebugBands bool
}

// DefaultConfig returns the configuration the CLI starts from before
// applying arguments.
func DefaultConfig() Config {
	return Config{
		BandHeight: DefaultBandHeight,
		Overlap:    DefaultOverlap,
		LineHeight: DefaultLineHeight,
		Enhance:    true,
		Engine:     DefaultEngine,
		Workers:    1,
		StartIndex: 1,
	}
}

// Validate checks the geometry and heuristic settings, wrapping ErrConfig
// on failure. Overlap >= BandHeight is rejected because it would make no
// forward progress down the image.
func (c Config) Validate() error {
	if c.BandHeight <= 0 {
		return fmt.Errorf("%w: band height must be positive, got %d", ErrConfig, c.BandHeight)
	}
	if c.Overlap < 0 || c.Overlap >= c.BandHeight {
		return fmt.Errorf("%w: overlap must be in [0, band height), got overlap=%d band height=%d", ErrConfig, c.Overlap, c.BandHeight)
	}
	if c.LineHeight <= 0 {
		return fmt.Errorf("%w: line height must be positive, got %d", ErrConfig, c.LineHeight)
	}
	return nil
}
