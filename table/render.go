package table

import (
	"fmt"
	"strings"

	"github.com/npillmayer/oledfont/glyph"
)

const preamble = `#ifndef __OLEDFONT_H
#define __OLEDFONT_H

// 8x16 Latin glyph
typedef struct {
    char ascii;           // ASCII character
    uint8_t data[16];     // 16 bytes of bitmap data (8x16 font)
} FONT8x16;

// 6x8 Latin glyph
typedef struct {
    char ascii;           // ASCII character
    uint8_t data[6];      // 6 bytes of bitmap data (6x8 font)
} FONT6x8;

// 16x16 double-byte glyph
typedef struct {
    uint8_t data[32];     // 32 bytes of bitmap data (16x16 font)
    char name[8];         // glyph name
} FONT16x16;

`

const closing = "\n#endif\n"

// Declaration returns the C declaration of the array holding table t.
func Declaration(t glyph.Table) string {
	switch t {
	case glyph.Table6x8:
		return "static const FONT6x8 Font6x8[]"
	case glyph.Table8x16:
		return "static const FONT8x16 Font8x16[]"
	case glyph.Table16x16:
		return "static const FONT16x16 Hzk[]"
	}
	panic(fmt.Sprintf("table: no declaration for table %d", int(t)))
}

// Render6x8 renders a 6×8 glyph as an array initializer, including the
// trailing comma and comment.
func Render6x8(g glyph.Glyph6x8) string {
	return fmt.Sprintf("    {%s, {%s}},", charLiteral(g.Char), hexList(g.Bitmap[:])) + comment(g.Comment)
}

// Render8x16 renders an 8×16 glyph as an array initializer, including the
// trailing comma and comment.
func Render8x16(g glyph.Glyph8x16) string {
	return fmt.Sprintf("    {%s, {%s}},", charLiteral(g.Char), hexList(g.Bitmap[:])) + comment(g.Comment)
}

// Render16x16 renders a 16×16 glyph as an array initializer, including the
// trailing comma.
func Render16x16(g glyph.Glyph16x16) string {
	return fmt.Sprintf("    {{%s}, %s},", hexList(g.Bitmap[:]), stringLiteral(g.Name))
}

// comment renders an annotation. A line comment ending in a backslash would
// splice the next line into the comment, so such text goes into a block
// comment instead.
func comment(text string) string {
	if text == "" {
		return ""
	}
	if strings.HasSuffix(text, `\`) {
		return "  /* " + strings.ReplaceAll(text, "*/", "* /") + " */"
	}
	return "  // " + text
}

func hexList(values []byte) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02X", v)
	}
	return sb.String()
}

func charLiteral(c byte) string {
	switch c {
	case '\'', '\\':
		return `'\` + string(c) + `'`
	}
	return "'" + string(c) + "'"
}

func stringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
