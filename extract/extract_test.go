package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ExtractTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestExtractFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "oledfont.extract")
	defer teardown()
	suite.Run(t, new(ExtractTestEnviron))
}

// --- Tests 8x16 ------------------------------------------------------------

func (env *ExtractTestEnviron) TestAllCharacters8x16() {
	var sb strings.Builder
	sb.WriteString("const unsigned char F8X16[]=\n{\n")
	for i := 0; i < glyph.ASCII.Len(); i++ {
		sb.WriteString(blockText8x16(i, 16, byte(i)))
	}
	sb.WriteString("};\n")
	glyphs, drops := Latin8x16(scan.NewSource(sb.String()))
	env.Empty(drops)
	env.Require().Len(glyphs, 95)
	for i, g := range glyphs {
		env.Equal(glyph.ASCII[i], g.Char, "glyph %d", i)
		for j := 0; j < 16; j++ {
			env.Equal(byte(i+j), g.Bitmap[j], "glyph %q, row %d", g.Char, j)
		}
	}
}

func (env *ExtractTestEnviron) TestTruncatedBlock8x16() {
	glyphs, drops := Latin8x16(scan.NewSource(blockText8x16(33, 15, 0)))
	env.Empty(glyphs)
	env.Require().Len(drops, 1)
	env.Equal(glyph.Table8x16, drops[0].Table)
	env.Equal(1, drops[0].Line)
}

func (env *ExtractTestEnviron) TestCommentOfLastRow8x16() {
	input := strings.Replace(blockText8x16(33, 16, 0x10), "0x1F,//", "0x1F,// the end", 1)
	glyphs, _ := Latin8x16(scan.NewSource(input))
	env.Require().Len(glyphs, 1)
	env.Equal(byte('A'), glyphs[0].Char)
	env.Equal("the end", glyphs[0].Comment)
	env.Equal(byte(0x10), glyphs[0].Bitmap[0])
	env.Equal(byte(0x1F), glyphs[0].Bitmap[15])
}

func (env *ExtractTestEnviron) TestOutOfBoundsIndex8x16() {
	input := "0xFF,// out of range 95\n" + blockText8x16(34, 16, 0)
	glyphs, drops := Latin8x16(scan.NewSource(input))
	env.Require().Len(glyphs, 1, "row with bad index must not open a block")
	env.Equal(byte('B'), glyphs[0].Char)
	env.Require().Len(drops, 1)
	env.Equal(1, drops[0].Line)

	input = "0xFF,// no index here\n0xFF,// -1\n" + blockText8x16(34, 16, 0)
	glyphs, drops = Latin8x16(scan.NewSource(input))
	env.Len(glyphs, 1)
	env.Len(drops, 2)
}

func (env *ExtractTestEnviron) TestMarkerIsOptional8x16() {
	body := blockText8x16(35, 16, 1) + blockText8x16(36, 16, 2)
	without, _ := Latin8x16(scan.NewSource(body))
	with, _ := Latin8x16(scan.NewSource("const unsigned char F8X16[]={ // 0x00 0\n" + body))
	env.Len(without, 2)
	env.Equal(without, with, "declaration line must neither start nor gate a block")
}

func (env *ExtractTestEnviron) TestNonDataLinesInsideBlock8x16() {
	lines := strings.SplitAfter(blockText8x16(33, 16, 0), "\n")
	input := strings.Join(lines[:8], "") + "\n  /* page 2 */\n" + strings.Join(lines[8:], "")
	glyphs, drops := Latin8x16(scan.NewSource(input))
	env.Empty(drops)
	env.Len(glyphs, 1)
}

func (env *ExtractTestEnviron) TestDataCountMismatch8x16() {
	input := strings.Replace(blockText8x16(33, 16, 0), "0x05,//", "0x05,0x06,//", 1)
	input += blockText8x16(34, 16, 0)
	glyphs, drops := Latin8x16(scan.NewSource(input))
	env.Require().Len(glyphs, 1, "block with 17 bytes must be dropped")
	env.Equal(byte('B'), glyphs[0].Char)
	env.Require().Len(drops, 1)
	env.Contains(drops[0].Issue, "expected 16 bytes")
}

// --- Tests 6x8 -------------------------------------------------------------

func (env *ExtractTestEnviron) TestCharacter6x8() {
	input := "0x00,0x7C,0x12,0x11,0x12,0x7C,// A\n"
	glyphs, drops := Latin6x8(scan.NewSource(input))
	env.Empty(drops)
	env.Require().Len(glyphs, 1)
	env.Equal(byte('A'), glyphs[0].Char)
	env.Equal([6]byte{0x00, 0x7C, 0x12, 0x11, 0x12, 0x7C}, glyphs[0].Bitmap)
	env.Equal("A", glyphs[0].Comment)
}

func (env *ExtractTestEnviron) TestBracedLine6x8() {
	input := "\t{0x00, 0x00, 0x00, 0x2f, 0x00, 0x00},// !\n"
	glyphs, _ := Latin6x8(scan.NewSource(input))
	env.Require().Len(glyphs, 1)
	env.Equal(byte('!'), glyphs[0].Char)
	env.Equal(byte(0x2F), glyphs[0].Bitmap[3])
}

func (env *ExtractTestEnviron) TestUnknownComment6x8() {
	input := "0x00,0x00,0x00,0x00,0x00,0x00,// sp\n"
	glyphs, drops := Latin6x8(scan.NewSource(input))
	env.Empty(glyphs)
	env.Require().Len(drops, 1)
	env.Equal(glyph.Table6x8, drops[0].Table)
}

func (env *ExtractTestEnviron) TestNoPrefixMatch6x8() {
	input := "0x00,0x7C,0x12,0x11,0x12,0x7C,// AB\n0x00,0x00,0x00,0x00,0x00,0x00,//\n"
	glyphs, drops := Latin6x8(scan.NewSource(input))
	env.Empty(glyphs, "comment must be exactly one character")
	env.Len(drops, 2)
}

func (env *ExtractTestEnviron) TestLineShape6x8() {
	input := strings.Join([]string{
		"0x00,0x00,0x00,0x00,0x00,// A",           // five fields
		"0x00,0x00,0x00,0x00,0x00,0x00,0x00,// B", // seven fields
		"0x00,0x00,0x00,0x00,0x00,0x00, C",        // no comment
		blockText8x16(33, 16, 0),
	}, "\n")
	glyphs, drops := Latin6x8(scan.NewSource(input))
	env.Empty(glyphs)
	env.Empty(drops, "lines of another shape are not candidates")
}

func (env *ExtractTestEnviron) TestBadValue6x8() {
	input := "0x00,0x00,0x100,0x00,0x00,0x00,// A\n"
	glyphs, drops := Latin6x8(scan.NewSource(input))
	env.Empty(glyphs)
	env.Len(drops, 1)
}

// --- Tests 16x16 -----------------------------------------------------------

func (env *ExtractTestEnviron) TestFirstNameWins16x16() {
	input := hanziLine(1, "中") + hanziLine(17, "中2")
	glyphs, drops := Hanzi16x16(scan.NewSource(input))
	env.Empty(drops)
	env.Require().Len(glyphs, 1)
	env.Equal("中", glyphs[0].Name)
	for i := 0; i < 32; i++ {
		env.Equal(byte(i+1), glyphs[0].Bitmap[i], "byte %d", i)
	}
}

func (env *ExtractTestEnviron) TestUnpairedLine16x16() {
	input := hanziLine(1, "水") + hanziLine(17, "水") + hanziLine(1, "位")
	glyphs, drops := Hanzi16x16(scan.NewSource(input))
	env.Len(glyphs, 1)
	env.Require().Len(drops, 1)
	env.Equal(3, drops[0].Line)
}

func (env *ExtractTestEnviron) TestDuplicateNames16x16() {
	input := hanziLine(1, "温") + hanziLine(17, "温") + hanziLine(33, "温") + hanziLine(49, "温")
	glyphs, _ := Hanzi16x16(scan.NewSource(input))
	env.Require().Len(glyphs, 2)
	env.Equal(glyphs[0].Name, glyphs[1].Name)
	env.Equal(byte(33), glyphs[1].Bitmap[0])
}

func (env *ExtractTestEnviron) TestUnclosedName16x16() {
	input := hanziLine(1, "度") + "0x00,0x00,/*\"broken*/\n" + hanziLine(17, "度")
	glyphs, drops := Hanzi16x16(scan.NewSource(input))
	env.Require().Len(glyphs, 1, "malformed line must not break the pair")
	env.Equal(byte(17), glyphs[0].Bitmap[16])
	env.Len(drops, 1)
}

func (env *ExtractTestEnviron) TestShortHalf16x16() {
	input := "0x01,0x02,/*\"短\",0*/\n" + hanziLine(17, "短") + hanziLine(1, "好") + hanziLine(17, "好")
	glyphs, drops := Hanzi16x16(scan.NewSource(input))
	env.Require().Len(glyphs, 1)
	env.Equal("好", glyphs[0].Name)
	env.Require().Len(drops, 1)
	env.Equal(1, drops[0].Line)
}

// --- Helpers ---------------------------------------------------------------

// blockText8x16 renders an 8×16 block for the character at index with the given
// number of rows. Row j holds the byte base+j.
func blockText8x16(index, rows int, base byte) string {
	var sb strings.Builder
	for j := 0; j < rows; j++ {
		if j == 0 {
			fmt.Fprintf(&sb, "0x%02X,// %c %d\n", base, glyph.ASCII[index%95], index)
			continue
		}
		fmt.Fprintf(&sb, "0x%02X,//\n", base+byte(j))
	}
	return sb.String()
}

// hanziLine renders one half of a 16×16 glyph, holding bytes first to first+15.
func hanziLine(first int, name string) string {
	values := make([]string, 16)
	for i := range values {
		values[i] = fmt.Sprintf("0x%02X", first+i)
	}
	return fmt.Sprintf("{%s},/*\"%s\",0*/\n", strings.Join(values, ","), name)
}
