// Package pipeline wires the stages together: split an image into
// overlapping bands, recognize each band through an ocr.Engine, merge the
// per-band lines into one document, and batch-process directories into
// sequentially numbered text files.
//
// Processing is strictly sequential by default - one file at a time, one
// band at a time - which keeps engine memory usage and output ordering
// simple. Config.Workers optionally fans recognition out across the bands
// of a single image; bands are independent inputs and results are
// reassembled in band order before merging.
package pipeline
