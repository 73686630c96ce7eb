package mosaic

import (
	"errors"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
)

// Errors reported by the pipeline. Errors raised by the sampling stage are the
// imaging package's sentinels, re-exported here so callers need only one
// package to classify failures.
var (
	ErrInvalidCropRegion = imaging.ErrInvalidCropRegion
	ErrInvalidGridSize   = imaging.ErrInvalidGridSize
	ErrUnsupportedFormat = imaging.ErrUnsupportedFormat

	// ErrEmptyPalette is returned when the palette has no entries.
	ErrEmptyPalette = errors.New("empty palette")

	// ErrPaletteIndexMismatch reports a grid cell whose color is not exactly a
	// palette color. On grids produced by MapToPalette it indicates a bug.
	ErrPaletteIndexMismatch = errors.New("palette index mismatch")
)
