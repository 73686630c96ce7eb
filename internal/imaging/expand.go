package imaging

import (
	"fmt"
	"image"
	"image/draw"
)

// Expand renders a grid as an image with each cell drawn as a solid
// cellSize x cellSize block.
//
// The output is (Size*cellSize) x (Size*cellSize) pixels. Blocks are filled,
// not interpolated: every pixel of a block equals its cell's color exactly.
//
// Returns ErrInvalidCellSize when cellSize <= 0.
func Expand(g *Grid, cellSize int) (*image.NRGBA, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidCellSize, cellSize)
	}
	if g == nil || g.Size <= 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidGridSize)
	}

	side := g.Size * cellSize
	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			block := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			draw.Draw(dst, block, &image.Uniform{C: g.At(x, y).NRGBA()}, image.Point{}, draw.Src)
		}
	}
	return dst, nil
}

// SampleBlocks is the inverse of Expand: it reads one color per
// cellSize x cellSize block, taken at the block's bottom-right pixel.
//
// The image must be square with a side that is a multiple of cellSize.
// Cell outlines run along each block's top and left edges and index labels
// sit in its top-left corner, so the bottom-right pixel of a decorated
// preview still carries the cell color.
func SampleBlocks(img image.Image, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidCellSize, cellSize)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}
	if w != h {
		return nil, fmt.Errorf("%w: image is %dx%d, not square", ErrInvalidGridSize, w, h)
	}
	if w%cellSize != 0 {
		return nil, fmt.Errorf("%w: %d does not divide image side %d", ErrInvalidCellSize, cellSize, w)
	}

	grid, err := NewGrid(w / cellSize)
	if err != nil {
		return nil, err
	}
	last := cellSize - 1
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			px := bounds.Min.X + x*cellSize + last
			py := bounds.Min.Y + y*cellSize + last
			grid.Set(x, y, FromColor(img.At(px, py)))
		}
	}
	return grid, nil
}
