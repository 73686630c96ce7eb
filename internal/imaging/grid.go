package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// DefaultOutlineColor is a translucent black that darkens cell borders
// without hiding the brick color.
const DefaultOutlineColor = "#00000060"

// labelCharWidth and labelHeight describe the built-in 3x5 digit font,
// including spacing and the one-pixel background margin.
const (
	labelCharWidth = 4
	labelHeight    = 7
)

// OutlineCells draws a border along the top and left edge of every cell of
// an expanded grid image.
//
// The outline color is a hex string "#RRGGBB" or "#RRGGBBAA"; alpha blends
// over the cell color. An empty or invalid color falls back to
// DefaultOutlineColor. Cell sizes below 2 are left untouched because every
// pixel would become border.
func OutlineCells(img *image.NRGBA, cellSize int, colorHex string) {
	if cellSize < 2 {
		return
	}
	lineColor, err := parseHexColor(colorHex)
	if err != nil {
		lineColor, _ = parseHexColor(DefaultOutlineColor)
	}
	src := &image.Uniform{C: lineColor}
	bounds := img.Bounds()

	// Vertical lines
	for x := bounds.Min.X + cellSize; x < bounds.Max.X; x += cellSize {
		draw.Draw(img, image.Rect(x, bounds.Min.Y, x+1, bounds.Max.Y), src, image.Point{}, draw.Over)
	}

	// Horizontal lines
	for y := bounds.Min.Y + cellSize; y < bounds.Max.Y; y += cellSize {
		draw.Draw(img, image.Rect(bounds.Min.X, y, bounds.Max.X, y+1), src, image.Point{}, draw.Over)
	}
}

// LabelCells writes a number into the top-left corner of every cell of an
// expanded grid image. labels holds one value per cell in row-major order.
//
// Returns the number of labels drawn. A label is skipped when it does not
// fit inside its cell, so small cell sizes produce an unlabeled image.
func LabelCells(img *image.NRGBA, gridSize, cellSize int, labels []int) (int, error) {
	if len(labels) != gridSize*gridSize {
		return 0, fmt.Errorf("%w: %d labels for a %dx%d grid", ErrInvalidGridSize, len(labels), gridSize, gridSize)
	}
	fg := color.NRGBA{255, 255, 255, 255}
	bg := color.NRGBA{0, 0, 0, 180}

	drawn := 0
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			text := strconv.Itoa(labels[y*gridSize+x])
			// Keep the bottom-right pixel clear: SampleBlocks reads it back.
			if len(text)*labelCharWidth+2 >= cellSize || labelHeight+2 >= cellSize {
				continue
			}
			drawLabel(img, x*cellSize+2, y*cellSize+2, text, fg, bg)
			drawn++
		}
	}
	return drawn, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// drawLabel draws a digits-only text label at the given position using a
// 3x5 pixel font on a blended background box.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		'-': {"000", "000", "111", "000", "000"},
	}

	bounds := img.Bounds()
	labelWidth := len(text) * labelCharWidth

	// Background, clipped to the image
	box := image.Rect(x-1, y-1, x+labelWidth, y+labelHeight-1).Intersect(bounds)
	draw.Draw(img, box, &image.Uniform{C: bg}, image.Point{}, draw.Over)

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += labelCharWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if image.Pt(px, py).In(bounds) {
						img.SetNRGBA(px, py, fg)
					}
				}
			}
		}
		cx += labelCharWidth
	}
}
