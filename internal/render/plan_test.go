package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
)

func TestPlanPDF(t *testing.T) {
	tests := []struct {
		name   string
		bricks int
		opts   PlanOptions
	}{
		{"defaults", 4, PlanOptions{}},
		{"titled", 8, PlanOptions{Title: "Test Mosaic", CellMM: 5}},
		{"large grid shrinks cells", 96, PlanOptions{CellMM: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PlanPDF(testResult(t, tt.bricks), tt.opts)
			if err != nil {
				t.Fatalf("PlanPDF failed: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF: %q", data[:8])
			}
		})
	}
}

func TestFitCell(t *testing.T) {
	tests := []struct {
		name   string
		cellMM float64
		bricks int
		availW float64
		availH float64
		want   float64
	}{
		{"fits", 7, 16, 200, 200, 7},
		{"too wide", 7, 40, 140, 400, 3.5},
		{"too tall", 7, 20, 400, 70, 3.5},
		{"both", 10, 50, 250, 200, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitCell(tt.cellMM, tt.bricks, tt.availW, tt.availH)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestLabelColor(t *testing.T) {
	tests := []struct {
		name string
		c    imaging.RGBColor
		want int
	}{
		{"white brick", imaging.RGBColor{R: 0xF4, G: 0xF4, B: 0xF4}, 0},
		{"yellow brick", imaging.RGBColor{R: 0xFA, G: 0xC8, B: 0x0A}, 0},
		{"black brick", imaging.RGBColor{R: 0x1B, G: 0x2A, B: 0x34}, 255},
		{"blue brick", imaging.RGBColor{R: 0x1E, G: 0x5A, B: 0xA8}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := labelColor(tt.c)
			if r != tt.want || g != tt.want || b != tt.want {
				t.Errorf("got (%d,%d,%d), want gray %d", r, g, b, tt.want)
			}
		})
	}
}
