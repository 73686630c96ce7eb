package mosaic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
)

// UsageCount is the number of cells mapped to one palette entry.
type UsageCount struct {
	Index int              `json:"index"`
	Code  string           `json:"code"`
	Name  string           `json:"name"`
	RGB   imaging.RGBColor `json:"rgb"`
	Hex   string           `json:"hex"`
	Count int              `json:"count"`
}

// Mapping is the result of snapping a grid to a palette.
type Mapping struct {
	// Grid is the quantized grid; every cell equals a palette color exactly.
	Grid *imaging.Grid

	// Indices holds the chosen palette index of every cell, row-major.
	Indices []int

	// Counts has one entry per palette color, in palette order, including
	// colors that were never chosen. The counts sum to Size*Size.
	Counts []UsageCount
}

// MapToPalette replaces every cell of a raw grid with the nearest palette
// color.
//
// Distance is Euclidean distance in CIE L*a*b*. Palette colors are converted
// once per call. When several entries are equally near, the one with the
// lowest palette index wins. The raw grid is not modified.
//
// Returns ErrEmptyPalette for an empty palette and ErrInvalidGridSize for a
// grid whose cell count does not match its size.
func MapToPalette(raw *imaging.Grid, p *palette.Palette) (*Mapping, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if raw == nil || raw.Size <= 0 || len(raw.Cells) != raw.Size*raw.Size {
		return nil, fmt.Errorf("%w: malformed grid", ErrInvalidGridSize)
	}

	m := newMatcher(p)
	cellLabs := imaging.RGBToLabBatch(raw.Cells)

	quantized := &imaging.Grid{Size: raw.Size, Cells: make([]imaging.RGBColor, len(raw.Cells))}
	indices := make([]int, len(raw.Cells))
	chosen := make(map[imaging.RGBColor]int)

	for i, c := range raw.Cells {
		idx, ok := chosen[c]
		if !ok {
			idx = m.nearest(cellLabs[i])
			chosen[c] = idx
		}
		indices[i] = idx
		quantized.Cells[i] = m.colors[idx]
	}

	return &Mapping{
		Grid:    quantized,
		Indices: indices,
		Counts:  countUsage(indices, p),
	}, nil
}

// Nearest returns the palette entry nearest to c and its L*a*b* distance.
func Nearest(c imaging.RGBColor, p *palette.Palette) (palette.Entry, float64, error) {
	if p.Len() == 0 {
		return palette.Entry{}, 0, ErrEmptyPalette
	}
	m := newMatcher(p)
	idx := m.nearest(imaging.RGBToLab(c))
	return p.Entry(idx), m.dist[idx], nil
}

// matcher holds the palette in L*a*b* for repeated nearest-color queries.
// It is not safe for concurrent use.
type matcher struct {
	colors []imaging.RGBColor
	labs   [][]float64
	point  []float64
	dist   []float64
}

func newMatcher(p *palette.Palette) *matcher {
	colors := p.Colors()
	labs := make([][]float64, len(colors))
	for i, lab := range imaging.RGBToLabBatch(colors) {
		labs[i] = []float64{lab.L, lab.A, lab.B}
	}
	return &matcher{
		colors: colors,
		labs:   labs,
		point:  make([]float64, 3),
		dist:   make([]float64, len(colors)),
	}
}

// nearest returns the index of the closest palette color. floats.MinIdx
// returns the first minimum, which gives ties to the lowest index.
func (m *matcher) nearest(lab imaging.Lab) int {
	m.point[0], m.point[1], m.point[2] = lab.L, lab.A, lab.B
	for i, ref := range m.labs {
		m.dist[i] = floats.Distance(m.point, ref, 2)
	}
	return floats.MinIdx(m.dist)
}

// countUsage tallies indices into one UsageCount per palette entry.
func countUsage(indices []int, p *palette.Palette) []UsageCount {
	counts := make([]UsageCount, p.Len())
	for i, e := range p.Entries() {
		counts[i] = UsageCount{
			Index: e.Index,
			Code:  e.Code,
			Name:  e.Name,
			RGB:   e.RGB,
			Hex:   e.Hex(),
		}
	}
	for _, idx := range indices {
		counts[idx].Count++
	}
	return counts
}
