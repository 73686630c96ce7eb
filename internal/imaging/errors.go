package imaging

import "errors"

// Sentinel errors returned (wrapped) by the sampling, expansion and decoding
// functions. Test for them with errors.Is.
var (
	// ErrInvalidCropRegion is returned when a crop box lies outside the image
	// or is not normalized (left >= right or top >= bottom).
	ErrInvalidCropRegion = errors.New("invalid crop region")

	// ErrInvalidGridSize is returned when the requested grid side is not positive.
	ErrInvalidGridSize = errors.New("invalid grid size")

	// ErrInvalidCellSize is returned when an expansion or block sampling cell
	// size is not positive or does not divide the image.
	ErrInvalidCellSize = errors.New("invalid cell size")

	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("empty image")

	// ErrUnsupportedFormat is returned when image bytes cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)
