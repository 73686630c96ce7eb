// Package palette provides the fixed set of brick colors a mosaic is built from.
//
// A Palette is an ordered, immutable list of entries. Construct it once (from
// the embedded default, a CSV file, or a literal list in tests) and pass it to
// the mosaic pipeline; it is safe to share between goroutines.
package palette

import (
	"errors"
	"fmt"

	"github.com/ironsheep/brick-mosaic-mcp/internal/imaging"
)

// Entry is one brick color.
type Entry struct {
	// Index is the 0-based position in the palette. It is assigned by New.
	Index int `json:"index"`

	// Code is the manufacturer's color identifier, e.g. "21".
	Code string `json:"code"`

	// Name is the display name, e.g. "Bright Red".
	Name string `json:"name"`

	// RGB is the brick color.
	RGB imaging.RGBColor `json:"rgb"`
}

// Hex returns the entry color as "#RRGGBB".
func (e Entry) Hex() string {
	return e.RGB.Hex()
}

// Palette is an ordered, immutable set of brick colors.
type Palette struct {
	entries []Entry
	byCode  map[string]int
	byRGB   map[imaging.RGBColor]int
}

// ErrDuplicateCode is returned by New when two entries share a code.
var ErrDuplicateCode = errors.New("duplicate palette code")

// New builds a palette from entries in order. Each entry's Index is set to
// its position. Codes must be unique; an empty list yields an empty palette,
// which the mosaic pipeline rejects.
//
// When two entries share an RGB value, reverse lookups by color resolve to
// the first of them.
func New(entries []Entry) (*Palette, error) {
	p := &Palette{
		entries: make([]Entry, len(entries)),
		byCode:  make(map[string]int, len(entries)),
		byRGB:   make(map[imaging.RGBColor]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := p.byCode[e.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, e.Code)
		}
		e.Index = i
		p.entries[i] = e
		p.byCode[e.Code] = i
		if _, seen := p.byRGB[e.RGB]; !seen {
			p.byRGB[e.RGB] = i
		}
	}
	return p, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Entry returns the entry at index i. It panics if i is out of range.
func (p *Palette) Entry(i int) Entry {
	return p.entries[i]
}

// Entries returns a copy of the entries in palette order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Colors returns the entry colors in palette order.
func (p *Palette) Colors() []imaging.RGBColor {
	out := make([]imaging.RGBColor, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.RGB
	}
	return out
}

// ByCode looks up an entry by its code.
func (p *Palette) ByCode(code string) (Entry, bool) {
	i, ok := p.byCode[code]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// IndexOf returns the index of the entry whose color equals c exactly.
func (p *Palette) IndexOf(c imaging.RGBColor) (int, bool) {
	i, ok := p.byRGB[c]
	return i, ok
}
