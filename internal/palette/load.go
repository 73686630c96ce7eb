package palette

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
)

//go:embed data/bricks.csv
var defaultCSV []byte

// Column names accepted in palette CSV headers. The first name of each group
// is the canonical one used by the bundled palette.
var (
	codeColumns = []string{"value", "code", "id"}
	nameColumns = []string{"children", "name"}
	rgbColumns  = []string{"rgb", "hex", "color"}
)

// Default parses the palette bundled with the binary.
func Default() (*Palette, error) {
	p, err := ReadCSV(bytes.NewReader(defaultCSV))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled palette: %w", err)
	}
	return p, nil
}

// LoadFile reads a palette CSV from disk.
func LoadFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	p, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette %s: %w", path, err)
	}
	return p, nil
}

// ReadCSV reads a palette from CSV.
//
// The first row is a header. Column names are matched case-insensitively
// after trimming spaces; the code column may be named value, code or id, the
// name column children or name, and the color column rgb, hex or color.
// Colors are hex strings "#RRGGBB". Rows keep their order.
//
//	value,children,rgb
//	21,Bright Red,#B40000
func ReadCSV(r io.Reader) (*Palette, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	codeCol, err := findColumn(header, codeColumns)
	if err != nil {
		return nil, err
	}
	nameCol, err := findColumn(header, nameColumns)
	if err != nil {
		return nil, err
	}
	rgbCol, err := findColumn(header, rgbColumns)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		rgb, err := imaging.ParseHex(record[rgbCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		code := strings.TrimSpace(record[codeCol])
		if code == "" {
			return nil, fmt.Errorf("line %d: empty color code", line)
		}
		entries = append(entries, Entry{
			Code: code,
			Name: strings.TrimSpace(record[nameCol]),
			RGB:  rgb,
		})
	}

	return New(entries)
}

func findColumn(header []string, names []string) (int, error) {
	for _, name := range names {
		for i, h := range header {
			if h == name {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("missing %q column", names[0])
}
