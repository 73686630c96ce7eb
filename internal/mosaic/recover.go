package mosaic

import (
	"fmt"
	"image"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
)

// RecoverIndices finds the palette index of every cell of a quantized grid by
// exact color match.
//
// Every cell must equal some palette color byte for byte. A cell that does not
// is reported as ErrPaletteIndexMismatch; for grids produced by MapToPalette
// that means the pipeline is broken, and callers must not paper over it.
func RecoverIndices(g *imaging.Grid, p *palette.Palette) ([]int, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	indices := make([]int, len(g.Cells))
	for i, c := range g.Cells {
		idx, ok := p.IndexOf(c)
		if !ok {
			return nil, fmt.Errorf("%w: cell (%d,%d) color %s is not in the palette",
				ErrPaletteIndexMismatch, i%g.Size, i/g.Size, c.Hex())
		}
		indices[i] = idx
	}
	return indices, nil
}

// Decompose reads a rendered preview back into a mosaic.
//
// The preview must be an expanded grid (see imaging.Expand) with the given
// cell size, drawn with colors of p. Cell outlines and index labels are
// tolerated. Raw is the same as Grid in the returned result.
//
// A preview containing colors outside the palette (a different palette, or a
// lossy re-encoding) fails with ErrPaletteIndexMismatch.
func Decompose(img image.Image, cellSize int, p *palette.Palette) (*Result, error) {
	grid, err := imaging.SampleBlocks(img, cellSize)
	if err != nil {
		return nil, err
	}
	indices, err := RecoverIndices(grid, p)
	if err != nil {
		return nil, err
	}
	return &Result{
		Bricks:  grid.Size,
		Raw:     grid,
		Grid:    grid.Clone(),
		Indices: indices,
		Counts:  countUsage(indices, p),
		Palette: p,
	}, nil
}
