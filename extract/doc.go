/*
Package extract recovers glyph records from legacy font sources.

A font source holds three tables which share one file but are encoded
slightly differently:

▪︎ 6×8 Latin glyphs: one line per glyph, six byte literals followed by a
line comment holding the character itself.

▪︎ 8×16 Latin glyphs: sixteen consecutive data rows per glyph. The comment
of a block's first row ends with the glyph's index into the ASCII alphabet.

▪︎ 16×16 double-byte glyphs: two lines per glyph, each carrying half of the
bitmap and a block comment with the glyph's name in quotes.

Each extractor scans the whole source on its own and owns its state.
Candidates which do not fit their table are dropped and reported as
glyph.Drop values; extraction never fails.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package extract

import (
	"fmt"
	"strings"

	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'oledfont.extract'
func tracer() tracing.Trace {
	return tracing.Select("oledfont.extract")
}

// collector accumulates dropped candidates of one table during a scan.
type collector struct {
	table glyph.Table
	drops glyph.Drops
}

func (c *collector) drop(line int, format string, args ...interface{}) {
	d := glyph.Drop{Table: c.table, Line: line, Issue: fmt.Sprintf(format, args...)}
	tracer().Debugf("%s", d)
	c.drops = append(c.drops, d)
}

// decode joins the non-empty byte literals and parses them into exactly n
// byte values.
func decode(n int, literals ...string) ([]byte, error) {
	parts := make([]string, 0, len(literals))
	for _, lit := range literals {
		if lit != "" {
			parts = append(parts, lit)
		}
	}
	values, err := scan.ParseBytes(strings.Join(parts, ","))
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, fmt.Errorf("expected %d bytes, got %d", n, len(values))
	}
	return values, nil
}
