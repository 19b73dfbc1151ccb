package main

import (
	"strconv"

	"github.com/npillmayer/oledfont"
	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/table"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runConvertCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	s := resolveSettings(flags)
	report, err := oledfont.Transcode(s.Source, s.Target, oledfont.WithCharset(s.Encoding))
	if err != nil {
		pterm.Error.Println(err)
		fatalf("conversion failed")
	}
	pterm.Info.Printf("%s -> %s (%d bytes)\n", report.Source, report.Target, report.Bytes)
	data := pterm.TableData{{"Table", "Glyphs", "Dropped"}}
	for _, t := range glyph.Tables {
		data = append(data, []string{
			table.Declaration(t),
			strconv.Itoa(report.Glyphs[t]),
			strconv.Itoa(report.Drops.Count(t)),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if mustFlagBool(flags["drops"], "drops") {
		printDrops(report.Drops)
	}
}

func printDrops(drops glyph.Drops) {
	if len(drops) == 0 {
		pterm.Info.Println("no candidates dropped")
		return
	}
	for _, d := range drops {
		pterm.Println(d.String())
	}
}
