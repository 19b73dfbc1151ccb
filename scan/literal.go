package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// Markers found in font sources.
const (
	HexPrefix     = "0x"  // prefix of a byte literal
	LineComment   = "//"  // start of a trailing line comment
	BlockComment  = "/*"  // start of a block comment
	QuotedComment = `/*"` // start of a block comment holding a quoted name
)

// HasByteLiteral reports whether line contains at least one hex byte literal.
func HasByteLiteral(line string) bool {
	return strings.Contains(line, HexPrefix)
}

// SplitComment cuts line at delim. code is the text before the first
// occurrence of delim, comment the whitespace-trimmed text after the last
// one. ok is false if line does not contain delim.
func SplitComment(line, delim string) (code, comment string, ok bool) {
	first := strings.Index(line, delim)
	if first < 0 {
		return line, "", false
	}
	last := strings.LastIndex(line, delim)
	return line[:first], strings.TrimSpace(line[last+len(delim):]), true
}

// QuotedName extracts the name from a comment of the form /*"name"*/.
// The name ends at the first closing quote; ok is false if line carries no
// quoted comment or the quote is not closed.
func QuotedName(line string) (name string, ok bool) {
	start := strings.Index(line, QuotedComment)
	if start < 0 {
		return "", false
	}
	rest := line[start+len(QuotedComment):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// LastToken returns the last whitespace-delimited token of s, or "".
func LastToken(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

// Literal returns the byte-literal text of a code fragment: surrounding
// whitespace and trailing separators are trimmed, as is one pair of
// enclosing braces.
func Literal(code string) string {
	lit := strings.TrimRight(strings.TrimSpace(code), ", \t")
	if strings.HasPrefix(lit, "{") && strings.HasSuffix(lit, "}") {
		lit = strings.TrimRight(strings.TrimSpace(lit[1:len(lit)-1]), ", \t")
	}
	return lit
}

// Fields splits a byte literal into its comma-separated value fields.
// An empty literal has no fields.
func Fields(literal string) []string {
	if strings.TrimSpace(literal) == "" {
		return nil
	}
	fields := strings.Split(literal, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// ParseBytes converts a byte literal into byte values. Fields may be C
// integer literals in hex, octal or decimal notation and must fit into 8 bits.
func ParseBytes(literal string) ([]byte, error) {
	fields := Fields(literal)
	values := make([]byte, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("field %d: invalid byte literal %q", i+1, f)
		}
		values = append(values, byte(v))
	}
	return values, nil
}
