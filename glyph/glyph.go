package glyph

import "fmt"

// Cell sizes in bytes.
const (
	Size6x8   = 6
	Size8x16  = 16
	Size16x16 = 32
)

// Glyph6x8 is a small Latin glyph, 6 columns of 8 pixels.
type Glyph6x8 struct {
	Char    byte          // character from the ASCII alphabet
	Bitmap  [Size6x8]byte // one byte per column
	Comment string        // annotation found in the source
}

// Glyph8x16 is a large Latin glyph, 8 columns of 16 pixels, given as two
// pages of 8 bytes each.
type Glyph8x16 struct {
	Char    byte
	Bitmap  [Size8x16]byte
	Comment string // annotation of the glyph's last row
}

// Glyph16x16 is a double-byte glyph, 16 columns of 16 pixels, given as two
// pages of 16 bytes each.
type Glyph16x16 struct {
	Bitmap [Size16x16]byte
	Name   string // label as quoted in the source, not validated
}

func (g Glyph6x8) String() string {
	return fmt.Sprintf("6x8[%q]", g.Char)
}

func (g Glyph8x16) String() string {
	return fmt.Sprintf("8x16[%q]", g.Char)
}

func (g Glyph16x16) String() string {
	return fmt.Sprintf("16x16[%q]", g.Name)
}

// Table identifies one of the three glyph tables of a font source.
type Table int

// The glyph tables, in the order they are emitted.
const (
	Table6x8 Table = iota
	Table8x16
	Table16x16
)

// Tables lists all tables in emission order.
var Tables = []Table{Table6x8, Table8x16, Table16x16}

func (t Table) String() string {
	switch t {
	case Table6x8:
		return "6x8"
	case Table8x16:
		return "8x16"
	case Table16x16:
		return "16x16"
	default:
		return "UNKNOWN"
	}
}
