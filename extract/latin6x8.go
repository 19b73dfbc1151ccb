package extract

import (
	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
)

// Latin6x8 extracts the 6×8 glyph table from src.
//
// A line is a candidate if it holds byte literals, a line comment and exactly
// six value fields. The comment must consist of a single character of the
// ASCII alphabet, which becomes the glyph's character; labels such as "sp"
// or "AB" are dropped rather than matched by prefix. Lines of any other
// shape are not part of this table and are skipped without notice.
func Latin6x8(src scan.Source) ([]glyph.Glyph6x8, glyph.Drops) {
	var glyphs []glyph.Glyph6x8
	c := collector{table: glyph.Table6x8}
	for n, line := range src.Lines() {
		if !scan.HasByteLiteral(line) {
			continue
		}
		code, comment, ok := scan.SplitComment(line, scan.LineComment)
		if !ok {
			continue
		}
		literal := scan.Literal(code)
		if len(scan.Fields(literal)) != glyph.Size6x8 {
			continue
		}
		ch, ok := glyph.ASCII.Lookup(comment).Unwrap()
		if !ok {
			c.drop(n, "comment %q does not name a character", comment)
			continue
		}
		values, err := decode(glyph.Size6x8, literal)
		if err != nil {
			c.drop(n, "glyph %q: %v", ch, err)
			continue
		}
		g := glyph.Glyph6x8{Char: ch, Comment: comment}
		copy(g.Bitmap[:], values)
		glyphs = append(glyphs, g)
	}
	tracer().Debugf("6x8 table: %d glyphs, %d dropped", len(glyphs), len(c.drops))
	return glyphs, c.drops
}
