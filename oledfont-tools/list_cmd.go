package main

import (
	"strconv"

	"github.com/npillmayer/oledfont"
	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/table"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runListCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	s := resolveSettings(flags)
	doc := mustLoad(s.Source, s.Encoding)
	pterm.Info.Printf("font source %s\n", s.Source)
	data := pterm.TableData{{"Table", "Declaration", "Glyphs", "Dropped", "First", "Last"}}
	for _, t := range glyph.Tables {
		first, last := span(doc, t)
		data = append(data, []string{
			t.String(),
			table.Declaration(t),
			strconv.Itoa(doc.Count(t)),
			strconv.Itoa(doc.Drops.Count(t)),
			first, last,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if mustFlagBool(flags["drops"], "drops") {
		printDrops(doc.Drops)
	}
}

// span returns labels for the first and last glyph of table t.
func span(doc *table.Document, t glyph.Table) (string, string) {
	var labels []string
	switch t {
	case glyph.Table6x8:
		for _, g := range doc.Small {
			labels = append(labels, string(g.Char))
		}
	case glyph.Table8x16:
		for _, g := range doc.Large {
			labels = append(labels, string(g.Char))
		}
	case glyph.Table16x16:
		for _, g := range doc.Hanzi {
			labels = append(labels, g.Name)
		}
	}
	if len(labels) == 0 {
		return "-", "-"
	}
	return strconv.Quote(labels[0]), strconv.Quote(labels[len(labels)-1])
}

func mustLoad(source, charset string) *table.Document {
	doc, err := oledfont.Load(source, oledfont.WithCharset(charset))
	if err != nil {
		fatalf("cannot load font source: %v", err)
	}
	return doc
}
