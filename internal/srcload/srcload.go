package srcload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/oledfont/glyph"
	"github.com/npillmayer/oledfont/scan"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the charset assumed for font sources if none is given.
const DefaultEncoding = "utf-8"

// FontSource is a font source file decoded to UTF-8.
type FontSource struct {
	Path     string
	Encoding string // charset of the file, as given by the caller
	Binary   []byte // raw file content
	Source   scan.Source
}

// Charset resolves a charset name (e.g., "utf-8", "gbk", "gb18030") to an
// encoding. An empty name selects DefaultEncoding.
func Charset(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	return enc, nil
}

// LoadFontSource reads a font source from a file and decodes it from charset
// into UTF-8. Failure to read the file is reported as glyph.ErrSourceUnavailable.
func LoadFontSource(path, charset string) (*FontSource, error) {
	enc, err := Charset(charset)
	if err != nil {
		return nil, err
	}
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", glyph.ErrSourceUnavailable, err)
	}
	return ParseFontSource(bytez, enc, path, charset)
}

// ParseFontSource decodes a font source from memory.
func ParseFontSource(bytez []byte, enc encoding.Encoding, path, charset string) (*FontSource, error) {
	text, err := enc.NewDecoder().Bytes(bytez)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %s as %s: %w", glyph.ErrSourceUnavailable, path, charset, err)
	}
	return &FontSource{
		Path:     path,
		Encoding: charset,
		Binary:   bytez,
		Source:   scan.FromBytes(text),
	}, nil
}

// StoreHeader encodes a UTF-8 header into charset and writes it to path.
// The file is first written to a temporary file in the same directory, then
// renamed, so that readers never observe a partial header.
// Failures are reported as glyph.ErrDestinationUnwritable.
func StoreHeader(path, charset string, header []byte) error {
	enc, err := Charset(charset)
	if err != nil {
		return err
	}
	out, err := enc.NewEncoder().Bytes(header)
	if err != nil {
		return fmt.Errorf("%w: cannot encode header as %s: %w", glyph.ErrDestinationUnwritable, charset, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", glyph.ErrDestinationUnwritable, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename
	if _, err = tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", glyph.ErrDestinationUnwritable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", glyph.ErrDestinationUnwritable, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", glyph.ErrDestinationUnwritable, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", glyph.ErrDestinationUnwritable, err)
	}
	return nil
}
