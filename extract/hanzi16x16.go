package extract

import (
	"strings"

	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
)

// half is one of the two lines making up a 16×16 glyph.
type half struct {
	line    int
	literal string
	name    string
}

// pair16x16 buffers the first half of a 16×16 glyph until its second half
// arrives.
type pair16x16 struct {
	pending glyph.Option[half]
}

// add offers a half to the pair. The first half is buffered and None is
// returned. The second half completes the pair and both halves are returned,
// the earlier one first; the buffer is empty afterwards.
func (p *pair16x16) add(h half) (first glyph.Option[half]) {
	first = p.pending
	if first.IsNone() {
		p.pending = glyph.Some(h)
		return
	}
	p.pending = glyph.None[half]()
	return
}

// Hanzi16x16 extracts the 16×16 double-byte glyph table from src.
//
// Candidate lines carry a block comment starting with a quoted name, /*"name"*/,
// preceded by half of a glyph's bitmap. Consecutive candidates are paired, and
// the glyph is named after the first line of a pair. A line whose name is not
// closed is dropped without affecting pairing, as is an unpaired last line.
func Hanzi16x16(src scan.Source) ([]glyph.Glyph16x16, glyph.Drops) {
	var glyphs []glyph.Glyph16x16
	c := collector{table: glyph.Table16x16}
	var p pair16x16
	for n, line := range src.Lines() {
		if !strings.Contains(line, scan.QuotedComment) {
			continue
		}
		name, ok := scan.QuotedName(line)
		if !ok {
			c.drop(n, "quoted name not closed")
			continue
		}
		code, _, _ := scan.SplitComment(line, scan.BlockComment)
		second := half{line: n, literal: scan.Literal(code), name: name}
		first, ok := p.add(second).Unwrap()
		if !ok {
			continue
		}
		if second.name != first.name {
			tracer().Debugf("line %d: name %q differs from %q of line %d, keeping %q",
				second.line, second.name, first.name, first.line, first.name)
		}
		values, err := decode(glyph.Size16x16, first.literal, second.literal)
		if err != nil {
			c.drop(first.line, "glyph %q: %v", first.name, err)
			continue
		}
		g := glyph.Glyph16x16{Name: first.name}
		copy(g.Bitmap[:], values)
		glyphs = append(glyphs, g)
	}
	if h, ok := p.pending.Unwrap(); ok {
		c.drop(h.line, "glyph %q: second half missing at end of input", h.name)
	}
	tracer().Debugf("16x16 table: %d glyphs, %d dropped", len(glyphs), len(c.drops))
	return glyphs, c.drops
}
