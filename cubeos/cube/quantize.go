package cube

import "fmt"

// CP437 glyphs used for quantized cells.
const (
	GlyphFull     uint8 = 0xdb // █
	GlyphDark     uint8 = 0xb2 // ▓, three samples of the foreground
	GlyphMedium   uint8 = 0xb1 // ▒, two samples of the foreground
	GlyphSentinel uint8 = 0x40 // '@'
)

// AttrSentinel is white on black.
const AttrSentinel uint8 = 0x0f

const paletteSize = 16

// Cell is one character cell of text-mode output.
type Cell struct {
	Glyph uint8
	Attr  uint8
}

// Quantize collapses one 2x2 block of palette indices into a glyph and a color
// attribute. The dominant color becomes the foreground; the lowest other color
// present becomes the background.
//
// Quantize panics unless it is given exactly 4 samples in the range 0..15.
func Quantize(samples []uint8) Cell {
	if len(samples) != Supersampling*Supersampling {
		panic(fmt.Sprintf("cube: quantize needs %d samples, got %d", Supersampling*Supersampling, len(samples)))
	}

	var counts [paletteSize]int
	for _, s := range samples {
		if int(s) >= paletteSize {
			panic(fmt.Sprintf("cube: palette index %#x out of range", s))
		}
		counts[s]++
	}

	c1 := 0
	for i := 1; i < paletteSize; i++ {
		if counts[i] > counts[c1] {
			c1 = i
		}
	}

	c2 := -1
	for i := 0; i < paletteSize; i++ {
		if i != c1 && counts[i] > 0 {
			c2 = i
			break
		}
	}

	if c2 < 0 {
		return Cell{Glyph: GlyphFull, Attr: uint8(c1)}
	}

	n1, n2 := counts[c1], counts[c2]
	attr := Attr(uint8(c1), uint8(c2))
	switch {
	case n1 == 3 && n2 == 1:
		return Cell{Glyph: GlyphDark, Attr: attr}
	case n1 == 2 && n2 <= 2:
		return Cell{Glyph: GlyphMedium, Attr: attr}
	}
	return Cell{Glyph: GlyphSentinel, Attr: AttrSentinel}
}
