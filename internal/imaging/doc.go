// Package imaging provides the image-side half of the OCR pipeline: loading
// source images, splitting tall images into overlapping horizontal bands,
// enhancing band pixels for recognition, and rendering band-layout overlays
// for debugging.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// Band geometry is expressed in source-image row coordinates: a band with
// OriginY=1800 and Height=2000 covers source rows [1800, 3800).
//
// # Band Geometry
//
// SplitBands walks the image top to bottom in steps of bandHeight-overlap,
// so consecutive bands share exactly overlap rows. Every source row belongs
// to at least one band; rows inside an overlap zone belong to exactly two
// consecutive bands. The final band may be shorter than bandHeight but is
// never merged into its neighbour, which keeps the duplicate-line trimming
// downstream easy to reason about.
//
// # Thread Safety
//
// All functions are stateless and side-effect-free; they can be called
// concurrently on different images. Returned pixel buffers are copies and
// never alias the source image.
package imaging
