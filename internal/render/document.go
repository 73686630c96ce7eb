package render

import (
	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
)

// Document is the JSON description of a mosaic: the palette index of every
// brick, the usage counts and the palette needed to interpret them.
type Document struct {
	Matrix  [][]int             `json:"matrix"`
	Counts  []mosaic.UsageCount `json:"counts"`
	Palette []palette.Entry     `json:"palette"`
	Info    DocumentInfo        `json:"info"`
}

// DocumentInfo summarizes a mosaic.
type DocumentInfo struct {
	Bricks     int `json:"bricks"`
	CellSize   int `json:"cell_size"`
	TotalCells int `json:"total_cells"`
	ColorsUsed int `json:"colors_used"`
	Baseplates int `json:"baseplates"`
}

// NewDocument describes a mosaic. cellSize is the preview cell size the
// client will render with; zero means DefaultCellSize.
func NewDocument(r *mosaic.Result, cellSize int) *Document {
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	return &Document{
		Matrix:  r.Matrix(),
		Counts:  r.Counts,
		Palette: r.Palette.Entries(),
		Info: DocumentInfo{
			Bricks:     r.Bricks,
			CellSize:   cellSize,
			TotalCells: r.Total(),
			ColorsUsed: len(r.Used()),
			Baseplates: Baseplates(r.Bricks),
		},
	}
}
