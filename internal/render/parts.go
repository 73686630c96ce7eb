package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ironsheep/brick-mosaic-mcp/internal/mosaic"
)

// Base plates the bricks are mounted on.
const (
	BaseplateSide = 16
	BaseplateCode = "BP16"
	BaseplateName = "Baseplate 16x16"
)

// Part is one line of a bill of materials.
type Part struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Hex      string `json:"hex,omitempty"`
	Quantity int    `json:"quantity"`
}

// Baseplates returns how many BaseplateSide x BaseplateSide plates cover an
// N x N mosaic.
func Baseplates(bricks int) int {
	perSide := (bricks + BaseplateSide - 1) / BaseplateSide
	return perSide * perSide
}

// PartsList returns the bill of materials for a mosaic: one line per palette
// color in use (palette order), followed by the base plates.
func PartsList(r *mosaic.Result) []Part {
	used := r.Used()
	parts := make([]Part, 0, len(used)+1)
	for _, c := range used {
		parts = append(parts, Part{
			Code:     c.Code,
			Name:     c.Name,
			Hex:      c.Hex,
			Quantity: c.Count,
		})
	}
	return append(parts, Part{
		Code:     BaseplateCode,
		Name:     BaseplateName,
		Quantity: Baseplates(r.Bricks),
	})
}

// WritePartsCSV writes a parts list as CSV with a header row.
func WritePartsCSV(w io.Writer, parts []Part) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "name", "hex", "quantity"}); err != nil {
		return fmt.Errorf("failed to write parts list: %w", err)
	}
	for _, p := range parts {
		if err := cw.Write([]string{p.Code, p.Name, p.Hex, strconv.Itoa(p.Quantity)}); err != nil {
			return fmt.Errorf("failed to write parts list: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
