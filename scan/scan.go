/*
Package scan reads font sources line by line and provides the small parsing
helpers shared by all glyph table extractors.

Font sources are C headers holding byte-literal arrays, where each line
carries some bytes of a glyph and a trailing comment identifying it:

	0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,// A 33

Nothing but position and comments tells which bytes belong to which glyph.
Package scan does not try to recover that structure; it only cuts lines
into code and comment and turns byte literals into values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"iter"
	"strings"
)

// Source is the complete text of a font source, held in memory.
type Source struct {
	text string
}

// NewSource wraps text as a font source.
func NewSource(text string) Source {
	return Source{text: text}
}

// FromBytes wraps UTF-8 encoded data as a font source.
func FromBytes(data []byte) Source {
	return Source{text: string(data)}
}

// Len returns the size of the source text in bytes.
func (src Source) Len() int {
	return len(src.text)
}

// Lines iterates over the physical lines of the source in order, together
// with their 1-based line number. Line terminators are not part of a line.
// Every call starts over at the first line.
func (src Source) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for line := range strings.Lines(src.text) {
			n++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(n, line) {
				return
			}
		}
	}
}
