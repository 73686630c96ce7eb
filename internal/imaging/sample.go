package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Grid is a square, row-major grid of RGB cells.
//
// The sampler produces a raw grid of averaged source colors; the palette
// mapper produces a quantized grid in which every cell is exactly a palette
// color. Both use this type.
type Grid struct {
	// Size is the side length N; the grid holds Size*Size cells.
	Size int `json:"size"`

	// Cells holds the colors row by row: cell (x, y) is Cells[y*Size+x].
	Cells []RGBColor `json:"cells"`
}

// NewGrid allocates an n x n grid of black cells.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidGridSize, n)
	}
	return &Grid{Size: n, Cells: make([]RGBColor, n*n)}, nil
}

// At returns the color of cell (x, y).
func (g *Grid) At(x, y int) RGBColor {
	return g.Cells[y*g.Size+x]
}

// Set assigns the color of cell (x, y).
func (g *Grid) Set(x, y int, c RGBColor) {
	g.Cells[y*g.Size+x] = c
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]RGBColor, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// Rows returns the grid as nested slices, [y][x].
func (g *Grid) Rows() [][]RGBColor {
	rows := make([][]RGBColor, g.Size)
	for y := range rows {
		rows[y] = g.Cells[y*g.Size : (y+1)*g.Size]
	}
	return rows
}

// Sample reduces an image to an n x n grid of averaged colors.
//
// Parameters:
//   - img: Source image in any color model. It is first normalized to opaque
//     RGB: alpha is dropped and grayscale is expanded to three channels.
//   - n: Grid side length (the number of bricks per side). Must be positive.
//   - crop: Optional crop box applied before squaring. Nil means no crop.
//
// The image is cropped to the box (if any), center-cropped to a square of
// side min(width, height), and resized to n x n with a Lanczos filter. The
// filter anti-aliases each cell's source area into one representative color
// instead of picking a single pixel.
//
// # Errors
//
//   - ErrInvalidGridSize when n <= 0
//   - ErrEmptyImage when the image has zero width or height
//   - ErrInvalidCropRegion when the crop box is outside the image or empty
func Sample(img image.Image, n int, crop *CropBox) (*Grid, error) {
	grid, err := NewGrid(n)
	if err != nil {
		return nil, err
	}

	src, err := toRGB(img)
	if err != nil {
		return nil, err
	}

	if crop != nil {
		src, err = Crop(src, *crop)
		if err != nil {
			return nil, err
		}
	}

	square := CropSquare(src)
	small := imaging.Resize(square, n, n, imaging.Lanczos)

	for y := 0; y < n; y++ {
		row := small.Pix[y*small.Stride:]
		for x := 0; x < n; x++ {
			p := row[x*4 : x*4+3]
			grid.Set(x, y, RGBColor{R: p[0], G: p[1], B: p[2]})
		}
	}
	return grid, nil
}

// toRGB copies an image into an opaque NRGBA with a (0,0) origin.
func toRGB(img image.Image) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
	}
	return dst, nil
}
