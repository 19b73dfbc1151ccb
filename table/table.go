/*
Package table assembles extracted glyph records into a generated C header.

The header declares one structure type per glyph size and one initialized
array per table, always in the order 6×8, 8×16, 16×16. Firmware may index
the arrays directly or search them by character or name.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package table

import (
	"bytes"
	"io"

	"github.com/npillmayer/oledfont/extract"
	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'oledfont.table'
func tracer() tracing.Trace {
	return tracing.Select("oledfont.table")
}

// Document holds the three glyph tables of a font source.
type Document struct {
	Small []glyph.Glyph6x8   // 6×8 Latin glyphs
	Large []glyph.Glyph8x16  // 8×16 Latin glyphs
	Hanzi []glyph.Glyph16x16 // 16×16 double-byte glyphs
	Drops glyph.Drops        // candidates which did not make it into a table
}

// Assemble extracts all glyph tables from src.
func Assemble(src scan.Source) *Document {
	doc := &Document{}
	var drops glyph.Drops
	doc.Small, drops = extract.Latin6x8(src)
	doc.Drops = append(doc.Drops, drops...)
	doc.Large, drops = extract.Latin8x16(src)
	doc.Drops = append(doc.Drops, drops...)
	doc.Hanzi, drops = extract.Hanzi16x16(src)
	doc.Drops = append(doc.Drops, drops...)
	tracer().Infof("assembled %d+%d+%d glyphs from %d bytes of source, %d candidates dropped",
		len(doc.Small), len(doc.Large), len(doc.Hanzi), src.Len(), len(doc.Drops))
	return doc
}

// Count returns the number of records in table t.
func (doc *Document) Count(t glyph.Table) int {
	switch t {
	case glyph.Table6x8:
		return len(doc.Small)
	case glyph.Table8x16:
		return len(doc.Large)
	case glyph.Table16x16:
		return len(doc.Hanzi)
	}
	return 0
}

// Bytes renders the document as a C header.
func (doc *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(preamble)
	doc.writeTable(&buf, glyph.Table6x8)
	buf.WriteString("\n")
	doc.writeTable(&buf, glyph.Table8x16)
	buf.WriteString("\n")
	doc.writeTable(&buf, glyph.Table16x16)
	buf.WriteString(closing)
	return buf.Bytes()
}

// WriteTo writes the rendered header to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.Bytes())
	return int64(n), err
}

func (doc *Document) writeTable(buf *bytes.Buffer, t glyph.Table) {
	buf.WriteString(Declaration(t))
	buf.WriteString(" = {\n")
	switch t {
	case glyph.Table6x8:
		for _, g := range doc.Small {
			buf.WriteString(Render6x8(g))
			buf.WriteByte('\n')
		}
	case glyph.Table8x16:
		for _, g := range doc.Large {
			buf.WriteString(Render8x16(g))
			buf.WriteByte('\n')
		}
	case glyph.Table16x16:
		for _, g := range doc.Hanzi {
			buf.WriteString(Render16x16(g))
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("};\n")
}

// Lookup6x8 returns the first 6×8 glyph for character c.
func (doc *Document) Lookup6x8(c byte) glyph.Option[glyph.Glyph6x8] {
	for _, g := range doc.Small {
		if g.Char == c {
			return glyph.Some(g)
		}
	}
	return glyph.None[glyph.Glyph6x8]()
}

// Lookup8x16 returns the first 8×16 glyph for character c.
func (doc *Document) Lookup8x16(c byte) glyph.Option[glyph.Glyph8x16] {
	for _, g := range doc.Large {
		if g.Char == c {
			return glyph.Some(g)
		}
	}
	return glyph.None[glyph.Glyph8x16]()
}

// LookupHanzi returns all 16×16 glyphs named name, in table order.
// Names are not unique within a table.
func (doc *Document) LookupHanzi(name string) []glyph.Glyph16x16 {
	var found []glyph.Glyph16x16
	for _, g := range doc.Hanzi {
		if g.Name == name {
			found = append(found, g)
		}
	}
	return found
}
