package render

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
)

// DefaultCellSize is the default preview size of one brick, in pixels.
const DefaultCellSize = 16

// PreviewOptions controls preview rendering.
type PreviewOptions struct {
	// CellSize is the edge of one brick in pixels. Zero means DefaultCellSize.
	CellSize int

	// Outline draws a thin border around each brick.
	Outline bool

	// OutlineColor is the border color as "#RRGGBB" or "#RRGGBBAA".
	// Empty means imaging.DefaultOutlineColor.
	OutlineColor string

	// Labels writes each brick's palette index into its corner when the
	// cell is large enough to hold it.
	Labels bool
}

// Preview renders a mosaic as an image of solid brick-colored blocks.
func Preview(r *mosaic.Result, opts PreviewOptions) (*image.NRGBA, error) {
	cellSize := opts.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}

	img, err := imaging.Expand(r.Grid, cellSize)
	if err != nil {
		return nil, err
	}
	if opts.Outline {
		imaging.OutlineCells(img, cellSize, opts.OutlineColor)
	}
	if opts.Labels {
		if _, err := imaging.LabelCells(img, r.Bricks, cellSize, r.Indices); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := imgio.PNGEncoder()(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// PreviewPNG renders a mosaic preview and returns it PNG-encoded.
func PreviewPNG(r *mosaic.Result, opts PreviewOptions) ([]byte, error) {
	img, err := Preview(r, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
