package mosaic

import (
	"fmt"
	"image"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
)

// DefaultBricks is the default number of bricks per side.
const DefaultBricks = 32

// Options controls a conversion.
type Options struct {
	// Bricks is the grid side length N. Must be positive.
	Bricks int

	// Crop is an optional region of the source, applied before the image is
	// center-cropped to a square. Nil means the whole image.
	Crop *imaging.CropBox
}

// Result is a complete, internally consistent mosaic.
type Result struct {
	// Bricks is the grid side length N.
	Bricks int

	// Raw is the sampled grid of averaged source colors.
	Raw *imaging.Grid

	// Grid is the quantized grid; every cell is exactly a palette color.
	Grid *imaging.Grid

	// Indices holds the palette index of every cell, row-major.
	Indices []int

	// Counts has one entry per palette color in palette order, zeros included.
	Counts []UsageCount

	// Palette is the palette the mosaic was built with.
	Palette *palette.Palette
}

// Convert builds a mosaic from a decoded image.
//
// The image is sampled to an opts.Bricks x opts.Bricks grid (see
// imaging.Sample) and each cell is snapped to its nearest palette color (see
// MapToPalette). Either a complete result or an error is returned; identical
// inputs always produce identical results.
func Convert(img image.Image, opts Options, p *palette.Palette) (*Result, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPalette
	}

	raw, err := imaging.Sample(img, opts.Bricks, opts.Crop)
	if err != nil {
		return nil, err
	}

	m, err := MapToPalette(raw, p)
	if err != nil {
		return nil, err
	}

	return &Result{
		Bricks:  opts.Bricks,
		Raw:     raw,
		Grid:    m.Grid,
		Indices: m.Indices,
		Counts:  m.Counts,
		Palette: p,
	}, nil
}

// ConvertBytes decodes raw image bytes and builds a mosaic from them.
//
// Undecodable input is reported as ErrUnsupportedFormat.
func ConvertBytes(data []byte, opts Options, p *palette.Palette) (*Result, error) {
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}
	return Convert(img, opts, p)
}

// IndexAt returns the palette index of cell (x, y).
func (r *Result) IndexAt(x, y int) int {
	return r.Indices[y*r.Bricks+x]
}

// EntryAt returns the palette entry of cell (x, y).
func (r *Result) EntryAt(x, y int) palette.Entry {
	return r.Palette.Entry(r.IndexAt(x, y))
}

// Matrix returns the palette indices as rows, [y][x].
func (r *Result) Matrix() [][]int {
	rows := make([][]int, r.Bricks)
	for y := range rows {
		row := make([]int, r.Bricks)
		copy(row, r.Indices[y*r.Bricks:(y+1)*r.Bricks])
		rows[y] = row
	}
	return rows
}

// Used returns the counts of palette colors that appear in the mosaic, in
// palette order.
func (r *Result) Used() []UsageCount {
	used := make([]UsageCount, 0, len(r.Counts))
	for _, c := range r.Counts {
		if c.Count > 0 {
			used = append(used, c)
		}
	}
	return used
}

// Total returns the number of cells, Bricks*Bricks.
func (r *Result) Total() int {
	return r.Bricks * r.Bricks
}

// Verify checks the result's invariants: every cell is exactly the palette
// color of its index, and the counts add up to the number of cells.
//
// A failure wraps ErrPaletteIndexMismatch.
func (r *Result) Verify() error {
	if _, err := RecoverIndices(r.Grid, r.Palette); err != nil {
		return err
	}
	for i, idx := range r.Indices {
		if r.Palette.Entry(idx).RGB != r.Grid.Cells[i] {
			return fmt.Errorf("%w: cell %d has index %d but color %s",
				ErrPaletteIndexMismatch, i, idx, r.Grid.Cells[i].Hex())
		}
	}
	total := 0
	for _, c := range r.Counts {
		total += c.Count
	}
	if total != r.Total() {
		return fmt.Errorf("%w: counts sum to %d, want %d", ErrPaletteIndexMismatch, total, r.Total())
	}
	return nil
}
