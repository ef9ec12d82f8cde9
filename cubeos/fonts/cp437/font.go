package cp437

import (
	"image/color"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Cell metrics of the VGA text-mode font.
const (
	Width    = 8
	Height   = 16
	Baseline = 12
)

// Font draws CP437 text-mode glyphs in 8x16 cells.
//
// Block and shade characters are generated so that adjacent cells tile without
// gaps; every other rune is drawn with the proggy bitmap font.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font8x16{fallback: &proggy.TinySZ8pt7b}

// Rune maps a CP437 code point to its Unicode rune.
func Rune(b byte) rune {
	return charmap.CodePage437.DecodeByte(b)
}

// Byte maps a rune to CP437. Runes without a CP437 encoding return '?' and false.
func Byte(r rune) (byte, bool) {
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok {
		return '?', false
	}
	return b, true
}

type font8x16 struct {
	g        block
	fallback tinyfont.Fonter
}

func (f *font8x16) GetYAdvance() uint8 { return Height }

func (f *font8x16) GetGlyph(r rune) tinyfont.Glypher {
	if fill := blockFill(r); fill != nil {
		f.g.r = r
		f.g.fill = fill
		return &f.g
	}
	return f.fallback.GetGlyph(r)
}

type block struct {
	r    rune
	fill func(x, y int) bool
}

func (g *block) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	top := y - Baseline
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if !g.fill(col, row) {
				continue
			}
			display.SetPixel(x+int16(col), top+int16(row), c)
		}
	}
}

func (g *block) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -Baseline,
	}
}

func blockFill(r rune) func(x, y int) bool {
	switch r {
	case '█': // █ 0xdb
		return func(x, y int) bool { return true }
	case '▓': // ▓ 0xb2
		return func(x, y int) bool { return x%2 != 0 || y%2 != 0 }
	case '▒': // ▒ 0xb1
		return func(x, y int) bool { return (x+y)%2 == 0 }
	case '░': // ░ 0xb0
		return func(x, y int) bool { return x%2 == 0 && y%2 == 0 }
	case '▀': // ▀ 0xdf
		return func(x, y int) bool { return y < Height/2 }
	case '▄': // ▄ 0xdc
		return func(x, y int) bool { return y >= Height/2 }
	case '▌': // ▌ 0xdd
		return func(x, y int) bool { return x < Width/2 }
	case '▐': // ▐ 0xde
		return func(x, y int) bool { return x >= Width/2 }
	}
	return nil
}
