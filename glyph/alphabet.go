package glyph

// Alphabet is an ordered set of single-byte characters. Position within the
// alphabet is what legacy font tables use as a glyph's index.
type Alphabet string

// ASCII is the alphabet of the 95 printable ASCII characters, from space to
// tilde, in code-point order. Index 0 is ' ', index 33 is 'A'.
const ASCII Alphabet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// At resolves a positional index to a character. Indices outside the
// alphabet resolve to None.
func (a Alphabet) At(index int) Option[byte] {
	if index < 0 || index >= len(a) {
		return None[byte]()
	}
	return Some(a[index])
}

// Lookup resolves a character by content: text must consist of exactly one
// character of the alphabet.
func (a Alphabet) Lookup(text string) Option[byte] {
	if len(text) != 1 {
		return None[byte]()
	}
	for i := 0; i < len(a); i++ {
		if a[i] == text[0] {
			return Some(a[i])
		}
	}
	return None[byte]()
}

// Index returns the position of character c, or -1.
func (a Alphabet) Index(c byte) int {
	for i := 0; i < len(a); i++ {
		if a[i] == c {
			return i
		}
	}
	return -1
}
