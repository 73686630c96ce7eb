package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if p.Len() < 20 {
		t.Errorf("bundled palette is suspiciously small: %d colors", p.Len())
	}

	tests := []struct {
		code string
		name string
		rgb  imaging.RGBColor
	}{
		{"1", "White", imaging.RGBColor{R: 0xF4, G: 0xF4, B: 0xF4}},
		{"21", "Bright Red", imaging.RGBColor{R: 0xB4, G: 0x00, B: 0x00}},
		{"23", "Bright Blue", imaging.RGBColor{R: 0x1E, G: 0x5A, B: 0xA8}},
		{"26", "Black", imaging.RGBColor{R: 0x1B, G: 0x2A, B: 0x34}},
	}
	for _, tt := range tests {
		e, ok := p.ByCode(tt.code)
		if !ok {
			t.Errorf("code %s missing", tt.code)
			continue
		}
		if e.Name != tt.name || e.RGB != tt.rgb {
			t.Errorf("code %s: got %q %s, want %q %s", tt.code, e.Name, e.RGB.Hex(), tt.name, tt.rgb.Hex())
		}
	}

	if first := p.Entry(0); first.Code != "1" {
		t.Errorf("rows must keep file order, first code is %s", first.Code)
	}
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		want    []Entry
		wantErr string
	}{
		{
			name: "canonical header",
			csv:  "value,children,rgb\n21,Bright Red,#B40000\n23,Bright Blue,#1E5AA8\n",
			want: []Entry{
				{Index: 0, Code: "21", Name: "Bright Red", RGB: imaging.RGBColor{R: 0xB4}},
				{Index: 1, Code: "23", Name: "Bright Blue", RGB: imaging.RGBColor{R: 0x1E, G: 0x5A, B: 0xA8}},
			},
		},
		{
			name: "aliases reordered",
			csv:  "Hex, Name, Code\n#f4f4f4, White, 1\n",
			want: []Entry{
				{Index: 0, Code: "1", Name: "White", RGB: imaging.RGBColor{R: 0xF4, G: 0xF4, B: 0xF4}},
			},
		},
		{
			name: "header only",
			csv:  "value,children,rgb\n",
			want: []Entry{},
		},
		{name: "empty input", csv: "", wantErr: "missing header"},
		{name: "missing color column", csv: "value,children\n1,White\n", wantErr: `missing "rgb" column`},
		{name: "bad color", csv: "value,children,rgb\n1,White,#ZZZZZZ\n", wantErr: "line 2"},
		{name: "short color", csv: "value,children,rgb\n21,Bright Red,#B4000\n", wantErr: "line 2"},
		{name: "trailing color digits", csv: "value,children,rgb\n1,White,#FFFFFF00\n1,Snow,#FFFAFA\n", wantErr: "line 2"},
		{name: "empty code", csv: "value,children,rgb\n,White,#FFFFFF\n", wantErr: "empty color code"},
		{name: "duplicate code", csv: "value,children,rgb\n1,White,#FFFFFF\n1,Snow,#FFFAFA\n", wantErr: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReadCSV(strings.NewReader(tt.csv))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCSV failed: %v", err)
			}

			got := p.Entries()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.csv")
	if err := os.WriteFile(path, []byte("code,name,rgb\nX1,Test,#010203\n"), 0o644); err != nil {
		t.Fatalf("failed to write palette: %v", err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if p.Len() != 1 || p.Entry(0).RGB != (imaging.RGBColor{R: 1, G: 2, B: 3}) {
		t.Errorf("unexpected palette: %+v", p.Entries())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}
