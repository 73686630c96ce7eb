package imaging

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	g, _ := NewGrid(2)
	g.Set(0, 0, red)
	g.Set(1, 0, green)
	g.Set(0, 1, blue)
	g.Set(1, 1, white)

	img, err := Expand(g, 3)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 6, 6) {
		t.Fatalf("bounds: got %v, want 6x6", img.Bounds())
	}

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := g.At(x/3, y/3)
			if got := FromColor(img.NRGBAAt(x, y)); got != want {
				t.Errorf("pixel (%d,%d): got %s, want %s", x, y, got.Hex(), want.Hex())
			}
			if a := img.NRGBAAt(x, y).A; a != 255 {
				t.Errorf("pixel (%d,%d) alpha: got %d, want 255", x, y, a)
			}
		}
	}
}

func TestExpand_Errors(t *testing.T) {
	g, _ := NewGrid(2)
	for _, k := range []int{0, -3} {
		if _, err := Expand(g, k); !errors.Is(err, ErrInvalidCellSize) {
			t.Errorf("cell size %d: got %v, want ErrInvalidCellSize", k, err)
		}
	}
	if _, err := Expand(nil, 4); !errors.Is(err, ErrInvalidGridSize) {
		t.Errorf("nil grid: got %v, want ErrInvalidGridSize", err)
	}
}

func TestSampleBlocks_RoundTrip(t *testing.T) {
	g, _ := NewGrid(5)
	for i := range g.Cells {
		g.Cells[i] = RGBColor{uint8(i * 10), uint8(255 - i*10), uint8(i)}
	}

	for _, k := range []int{1, 2, 7, 16} {
		img, err := Expand(g, k)
		if err != nil {
			t.Fatalf("Expand failed: %v", err)
		}
		back, err := SampleBlocks(img, k)
		if err != nil {
			t.Fatalf("SampleBlocks failed: %v", err)
		}
		if !reflect.DeepEqual(back, g) {
			t.Errorf("cell size %d: round trip changed the grid", k)
		}
	}
}

func TestSampleBlocks_DecoratedPreview(t *testing.T) {
	g, _ := NewGrid(3)
	for i := range g.Cells {
		g.Cells[i] = RGBColor{200, uint8(i * 20), 40}
	}
	img, _ := Expand(g, 16)
	OutlineCells(img, 16, "#000000FF")
	if _, err := LabelCells(img, 3, 16, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		t.Fatalf("LabelCells failed: %v", err)
	}

	back, err := SampleBlocks(img, 16)
	if err != nil {
		t.Fatalf("SampleBlocks failed: %v", err)
	}
	if !reflect.DeepEqual(back, g) {
		t.Error("outlines and labels must not change the sampled colors")
	}
}

func TestSampleBlocks_Errors(t *testing.T) {
	tests := []struct {
		name     string
		img      image.Image
		cellSize int
		want     error
	}{
		{"zero cell", createInMemoryImage(8, 8, color.White), 0, ErrInvalidCellSize},
		{"not divisible", createInMemoryImage(10, 10, color.White), 4, ErrInvalidCellSize},
		{"not square", createInMemoryImage(8, 4, color.White), 4, ErrInvalidGridSize},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), 4, ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleBlocks(tt.img, tt.cellSize); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
