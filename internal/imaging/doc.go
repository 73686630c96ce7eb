// Package imaging provides the pixel-level stages of the brick mosaic pipeline.
//
// This package turns decoded images into square grids of colors and back:
// decoding and caching source images, cropping, sampling an image down to an
// N x N grid of averaged colors, converting colors to CIE L*a*b*, and
// expanding a grid into a block image for previews. All operations work with
// standard Go image.Image types and use a coordinate system where (0,0) is
// the top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (Left,Top) is inclusive, (Right,Bottom) is exclusive
//
// Grid cells use the same orientation: cell (0,0) is the top-left brick.
//
// # Sampling
//
// Sample normalizes the image to opaque RGB, applies the optional crop box,
// center-crops to a square and resizes to N x N with a Lanczos filter, so
// each cell is an anti-aliased average of its source area.
//
// # Color Representation
//
//   - RGBColor: 8-bit components (0-255); exact equality identifies a brick color
//   - Lab: CIE L*a*b* (D65), used for perceptual distance
//   - Hex: 6-character format "#RRGGBB"
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless and can be called concurrently; they never modify their inputs
// (OutlineCells and LabelCells draw onto the image they are given).
//
// # Error Handling
//
// Functions return wrapped sentinel errors (ErrInvalidCropRegion,
// ErrInvalidGridSize, ErrInvalidCellSize, ErrEmptyImage,
// ErrUnsupportedFormat); test for them with errors.Is.
package imaging
