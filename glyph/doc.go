/*
Package glyph holds the data model for monochrome bitmap fonts as found in
small-display firmware: Latin glyphs of 6×8 and 8×16 pixels, and double-byte
(Hanzi) glyphs of 16×16 pixels.

Bitmaps are stored column-major, one byte per 8 vertical pixels, exactly as
the display controller expects them. Package `glyph` does not interpret
bitmaps; it only guarantees that every record carries the number of bytes
its cell size requires, by using fixed-size arrays.

Latin glyphs are identified by a character from a fixed alphabet of the 95
printable ASCII characters. Double-byte glyphs are identified by a short
name, usually the character itself in the source file's charset.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyph
