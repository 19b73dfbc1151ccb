package extract

import (
	"strconv"
	"strings"

	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
)

// Marker8x16 identifies the declaration line of the 8×16 table.
const Marker8x16 = "F8X16[]"

// rows8x16 is the number of data rows making up one 8×16 glyph.
const rows8x16 = 16

type phase int

const (
	seeking phase = iota
	accumulating
)

// row is a data row: a line with byte literals and a line comment.
type row struct {
	line    int
	literal string
	comment string
}

// block8x16 accumulates the data rows of one 8×16 glyph.
// The first row of a block determines the glyph's character, rows 2 to 16
// contribute data only.
type block8x16 struct {
	alphabet glyph.Alphabet
	phase    phase
	char     byte
	rows     []row
}

func newBlock8x16(alphabet glyph.Alphabet) *block8x16 {
	return &block8x16{alphabet: alphabet, rows: make([]row, 0, rows8x16)}
}

// start opens a new block for the character at index. If index is outside the
// alphabet, the block stays closed and None is returned.
func (b *block8x16) start(index int) glyph.Option[byte] {
	ch := b.alphabet.At(index)
	if c, ok := ch.Unwrap(); ok {
		b.phase = accumulating
		b.char = c
		b.rows = b.rows[:0]
	}
	return ch
}

// append adds a data row to an open block. When the block's last row arrives,
// the completed glyph is returned and the block is reset. A completed block
// whose data does not add up to a glyph is reset as well, and an error
// describes the problem.
func (b *block8x16) append(r row) (glyph.Option[glyph.Glyph8x16], error) {
	b.rows = append(b.rows, r)
	if len(b.rows) < rows8x16 {
		return glyph.None[glyph.Glyph8x16](), nil
	}
	defer b.reset()
	literals := make([]string, len(b.rows))
	for i := range b.rows {
		literals[i] = b.rows[i].literal
	}
	values, err := decode(glyph.Size8x16, literals...)
	if err != nil {
		return glyph.None[glyph.Glyph8x16](), err
	}
	g := glyph.Glyph8x16{Char: b.char, Comment: r.comment}
	copy(g.Bitmap[:], values)
	return glyph.Some(g), nil
}

func (b *block8x16) reset() {
	b.phase = seeking
	b.char = 0
	b.rows = b.rows[:0]
}

// Latin8x16 extracts the 8×16 glyph table from src.
//
// Every line holding byte literals and a line comment is a data row. A block
// starts with a row whose comment ends in an index into the ASCII alphabet and
// spans 16 rows. Rows which cannot start a block are dropped, as are blocks
// which are incomplete at the end of input.
//
// The table's declaration line (see Marker8x16) is skipped, but rows are
// accepted regardless of whether it has been seen.
func Latin8x16(src scan.Source) ([]glyph.Glyph8x16, glyph.Drops) {
	var glyphs []glyph.Glyph8x16
	c := collector{table: glyph.Table8x16}
	b := newBlock8x16(glyph.ASCII)
	start := 0 // line of the current block's first row
	marker := false
	for n, line := range src.Lines() {
		if strings.Contains(line, Marker8x16) {
			tracer().Debugf("8x16 table declared at line %d", n)
			marker = true
			continue
		}
		if !scan.HasByteLiteral(line) {
			continue
		}
		code, comment, ok := scan.SplitComment(line, scan.LineComment)
		if !ok {
			continue
		}
		r := row{line: n, literal: scan.Literal(code), comment: comment}
		if b.phase == seeking {
			token := scan.LastToken(comment)
			index, err := strconv.Atoi(token)
			if err != nil {
				c.drop(n, "comment %q does not end in a glyph index", comment)
				continue
			}
			if b.start(index).IsNone() {
				c.drop(n, "glyph index %d outside alphabet", index)
				continue
			}
			start = n
		}
		ch := b.char // append resets the block on completion
		g, err := b.append(r)
		if err != nil {
			c.drop(start, "glyph %q: %v", ch, err)
			continue
		}
		if rec, ok := g.Unwrap(); ok {
			glyphs = append(glyphs, rec)
		}
	}
	if b.phase == accumulating {
		c.drop(start, "block for %q incomplete at end of input: %d of %d rows",
			b.char, len(b.rows), rows8x16)
	}
	if !marker {
		tracer().Debugf("8x16 table declaration %s not found", Marker8x16)
	}
	tracer().Debugf("8x16 table: %d glyphs, %d dropped", len(glyphs), len(c.drops))
	return glyphs, c.drops
}
