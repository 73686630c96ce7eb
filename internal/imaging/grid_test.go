package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func solidNRGBA(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestOutlineCells(t *testing.T) {
	img := solidNRGBA(40, color.NRGBA{0, 0, 0, 255})

	OutlineCells(img, 10, "#FF0000FF")

	// Lines run along the top and left edge of every cell but the first.
	for _, p := range []image.Point{{10, 5}, {20, 35}, {5, 10}, {35, 30}} {
		if c := img.NRGBAAt(p.X, p.Y); c.R != 255 || c.G != 0 || c.B != 0 {
			t.Errorf("line pixel %v: got %v, want red", p, c)
		}
	}
	// Cell interiors and bottom-right corners are untouched.
	for _, p := range []image.Point{{0, 0}, {5, 5}, {9, 9}, {19, 19}, {39, 39}} {
		if c := img.NRGBAAt(p.X, p.Y); c.R != 0 {
			t.Errorf("interior pixel %v: got %v, want black", p, c)
		}
	}
}

func TestOutlineCells_DefaultColor(t *testing.T) {
	img := solidNRGBA(20, color.NRGBA{255, 255, 255, 255})

	OutlineCells(img, 10, "not a color")

	c := img.NRGBAAt(10, 3)
	if c.R == 255 || c.A != 255 {
		t.Errorf("default outline should darken opaque white, got %v", c)
	}
	if c.R == 0 {
		t.Errorf("default outline is translucent, got solid black")
	}
}

func TestOutlineCells_TinyCells(t *testing.T) {
	img := solidNRGBA(8, color.NRGBA{255, 255, 255, 255})

	OutlineCells(img, 1, "#000000")

	for i := 0; i < len(img.Pix); i++ {
		if img.Pix[i] != 255 {
			t.Fatal("cell size 1 must leave the image unchanged")
		}
	}
}

func TestLabelCells(t *testing.T) {
	img := solidNRGBA(48, color.NRGBA{0, 0, 255, 255})
	labels := []int{0, 1, 2, 3, 14, 5, 6, 7, 8}

	drawn, err := LabelCells(img, 3, 16, labels)
	if err != nil {
		t.Fatalf("LabelCells failed: %v", err)
	}
	if drawn != 9 {
		t.Errorf("drawn: got %d, want 9", drawn)
	}

	// Some white text pixels land in the first cell's corner.
	hasText := false
	for y := 2; y < 8; y++ {
		for x := 2; x < 6; x++ {
			if c := img.NRGBAAt(x, y); c.R == 255 && c.G == 255 && c.B == 255 {
				hasText = true
			}
		}
	}
	if !hasText {
		t.Error("expected label pixels in the first cell")
	}

	// The bottom-right pixel of each cell keeps the cell color.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c := img.NRGBAAt(x*16+15, y*16+15); c != (color.NRGBA{0, 0, 255, 255}) {
				t.Errorf("cell (%d,%d) corner: got %v", x, y, c)
			}
		}
	}
}

func TestLabelCells_TooSmall(t *testing.T) {
	tests := []struct {
		name     string
		cellSize int
		labels   []int
		want     int
	}{
		{"cell 8 fits nothing", 8, []int{1, 2, 3, 4}, 0},
		{"cell 10 fits one digit", 10, []int{1, 22, 3, 44}, 2},
		{"cell 16 fits three digits", 16, []int{1, 22, 333, 4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidNRGBA(2*tt.cellSize, color.NRGBA{255, 0, 0, 255})
			drawn, err := LabelCells(img, 2, tt.cellSize, tt.labels)
			if err != nil {
				t.Fatalf("LabelCells failed: %v", err)
			}
			if drawn != tt.want {
				t.Errorf("drawn: got %d, want %d", drawn, tt.want)
			}
		})
	}
}

func TestLabelCells_WrongCount(t *testing.T) {
	img := solidNRGBA(32, color.NRGBA{0, 0, 0, 255})
	if _, err := LabelCells(img, 2, 16, []int{1, 2, 3}); !errors.Is(err, ErrInvalidGridSize) {
		t.Errorf("got %v, want ErrInvalidGridSize", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantA   uint8
		wantErr bool
	}{
		{"#FF0000", 255, 0, 0, 255, false},
		{"#00FF00", 0, 255, 0, 255, false},
		{"#0000FF", 0, 0, 255, 255, false},
		{"FF0000", 255, 0, 0, 255, false},   // without #
		{"#00000060", 0, 0, 0, 0x60, false}, // with alpha
		{"FF000080", 255, 0, 0, 128, false}, // without # with alpha
		{"", 0, 0, 0, 0, true},              // empty
		{"#FFF", 0, 0, 0, 0, true},          // invalid length
		{"#GGGGGG", 0, 0, 0, 0, true},       // invalid hex
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := parseHexColor(tt.hex)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if c.R != tt.wantR || c.G != tt.wantG || c.B != tt.wantB || c.A != tt.wantA {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					c.R, c.G, c.B, c.A, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestDrawLabel_BoundsCheck(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))

	fg := color.NRGBA{255, 255, 255, 255}
	bg := color.NRGBA{0, 0, 0, 180}

	// These should not panic even if label extends past bounds
	drawLabel(img, 15, 15, "100", fg, bg)
	drawLabel(img, 0, 0, "-1", fg, bg)
	drawLabel(img, -5, -5, "42", fg, bg)
	drawLabel(img, 10, 10, "", fg, bg)
}
