/*
Package oledfont converts the bitmap fonts of small OLED displays into
typed glyph tables.

Firmware for SSD1306-style displays commonly ships a header file 'oledfont.h'
holding its fonts as plain byte arrays:

▪︎ F6x8, a 6×8 pixel Latin font with one line per character;

▪︎ F8X16, an 8×16 pixel Latin font with sixteen lines per character;

▪︎ Hzk, a 16×16 pixel font of double-byte (Chinese) characters with two lines
per character.

Which bytes make up a glyph, and which character a glyph stands for, is only
given by the position of lines and by their comments. Package oledfont
recovers that structure and writes a new header, where every glyph is an
initialized struct carrying its character (or name) and its bitmap:

	static const FONT6x8 Font6x8[] = {
	    {'A', {0x00, 0x7C, 0x12, 0x11, 0x12, 0x7C}},  // A
	    ...
	};

Candidates which do not fit are dropped silently; they are reported to the
caller, but never abort a conversion.

# Status

Handles the three tables found in common oledfont.h variants. Fonts of other
sizes are not recognized.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package oledfont

import (
	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/internal/srcload"
	"github.com/npillmayer/oledfont/scan"
	"github.com/npillmayer/oledfont/table"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'oledfont'
func tracer() tracing.Trace {
	return tracing.Select("oledfont")
}

// Report summarizes a conversion run.
type Report struct {
	Source, Target string
	Glyphs         map[glyph.Table]int // records per table
	Drops          glyph.Drops         // dropped candidates
	Bytes          int                 // size of the generated header in bytes (before re-encoding)
}

// Option configures a conversion.
type Option func(*options)

type options struct {
	charset string
}

// WithCharset sets the charset of the font source and of the generated
// header, e.g. "gbk". The default is UTF-8.
func WithCharset(name string) Option {
	return func(o *options) {
		o.charset = name
	}
}

// Convert extracts the glyph tables from UTF-8 source text.
func Convert(text []byte) *table.Document {
	return table.Assemble(scan.FromBytes(text))
}

// Load reads a font source file and extracts its glyph tables.
// If the file cannot be read, an error wrapping glyph.ErrSourceUnavailable is
// returned.
func Load(source string, opts ...Option) (*table.Document, error) {
	o := collect(opts)
	fs, err := srcload.LoadFontSource(source, o.charset)
	if err != nil {
		tracer().Errorf("cannot load font source: %v", err)
		return nil, err
	}
	tracer().Debugf("loaded font source %s (%d bytes, %s)", fs.Path, len(fs.Binary), o.charset)
	return table.Assemble(fs.Source), nil
}

// Transcode converts the font source at path source into a header at path
// target. The header is written only after all tables have been assembled.
// Errors wrap either glyph.ErrSourceUnavailable or glyph.ErrDestinationUnwritable.
func Transcode(source, target string, opts ...Option) (*Report, error) {
	o := collect(opts)
	doc, err := Load(source, opts...)
	if err != nil {
		return nil, err
	}
	header := doc.Bytes()
	if err := srcload.StoreHeader(target, o.charset, header); err != nil {
		tracer().Errorf("cannot write header: %v", err)
		return nil, err
	}
	report := &Report{
		Source: source,
		Target: target,
		Glyphs: make(map[glyph.Table]int, len(glyph.Tables)),
		Drops:  doc.Drops,
		Bytes:  len(header),
	}
	for _, t := range glyph.Tables {
		report.Glyphs[t] = doc.Count(t)
	}
	tracer().Infof("wrote %s: %d/%d/%d glyphs (6x8/8x16/16x16)", target,
		report.Glyphs[glyph.Table6x8], report.Glyphs[glyph.Table8x16], report.Glyphs[glyph.Table16x16])
	return report, nil
}

func collect(opts []Option) options {
	o := options{charset: srcload.DefaultEncoding}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
