package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// RGBColor is comparable: two colors are the same brick color only if all
// three components are byte-for-byte equal.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c RGBColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts any color.Color to 8-bit RGB, dropping alpha.
func FromColor(c color.Color) RGBColor {
	if n, ok := c.(color.NRGBA); ok {
		return RGBColor{R: n.R, G: n.G, B: n.B}
	}
	r, g, b, _ := c.RGBA()
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseHex parses "#RRGGBB" (the leading '#' is optional) or "#RGB".
//
// The parsed value round-trips exactly: ParseHex(c.Hex()) == c.
func ParseHex(s string) (RGBColor, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	// colorful.Hex tolerates short and trailing fields; check the digits first.
	if len(s) != 4 && len(s) != 7 {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", s)
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return RGBColor{}, fmt.Errorf("invalid hex color %q: bad digit %q", s, r)
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// ColorFrequency represents a color and its share of an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB"
	Percentage float64  `json:"percentage"` // Share of the image (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components
}

// DominantColors extracts up to count dominant colors from an image.
//
// Colors are found by k-means clustering (cenkalti/dominantcolor) and are
// returned heaviest first. The image is normalized to opaque RGB before
// clustering so transparent areas contribute their underlying color, the same
// way the grid sampler treats them.
//
// Returns ErrEmptyImage for zero-sized images. A count below 1 yields an
// empty result.
func DominantColors(img image.Image, count int) ([]ColorFrequency, error) {
	src, err := toRGB(img)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return []ColorFrequency{}, nil
	}

	found := dominantcolor.FindWeight(src, count)
	colors := make([]ColorFrequency, 0, len(found))
	for _, c := range found {
		rgb := RGBColor{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B}
		colors = append(colors, ColorFrequency{
			Hex:        rgb.Hex(),
			Percentage: math.Round(c.Weight*10000) / 100,
			RGB:        rgb,
		})
	}
	return colors, nil
}
