package cp437

import (
	"image/color"
	"testing"
)

type countDisplay struct {
	set map[[2]int16]bool
}

func (d *countDisplay) Size() (x, y int16) { return 64, 64 }

func (d *countDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.set == nil {
		d.set = map[[2]int16]bool{}
	}
	d.set[[2]int16{x, y}] = true
}

func (d *countDisplay) Display() error { return nil }

func TestRuneMapping(t *testing.T) {
	tests := []struct {
		b byte
		r rune
	}{
		{0xdb, '█'},
		{0xb2, '▓'},
		{0xb1, '▒'},
		{0xb0, '░'},
		{0x40, '@'},
		{0x41, 'A'},
	}
	for _, tt := range tests {
		if got := Rune(tt.b); got != tt.r {
			t.Fatalf("Rune(%#x) = %q, want %q", tt.b, got, tt.r)
		}
		b, ok := Byte(tt.r)
		if !ok || b != tt.b {
			t.Fatalf("Byte(%q) = %#x, %v, want %#x, true", tt.r, b, ok, tt.b)
		}
	}

	if b, ok := Byte('€'); ok || b != '?' {
		t.Fatalf("Byte('€') = %#x, %v, want '?', false", b, ok)
	}
}

func TestBlockCoverage(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{0xdb, Width * Height},
		{0xb2, Width * Height * 3 / 4},
		{0xb1, Width * Height / 2},
		{0xb0, Width * Height / 4},
		{0xdf, Width * Height / 2},
	}
	for _, tt := range tests {
		d := &countDisplay{}
		Font.GetGlyph(Rune(tt.b)).Draw(d, 8, Baseline, color.RGBA{A: 0xff})
		if got := len(d.set); got != tt.want {
			t.Fatalf("glyph %#x covers %d pixels, want %d", tt.b, got, tt.want)
		}
		for p := range d.set {
			if p[0] < 8 || p[0] >= 8+Width || p[1] < 0 || p[1] >= Height {
				t.Fatalf("glyph %#x drew outside its cell at %v", tt.b, p)
			}
		}
	}
}

func TestGlyphInfo(t *testing.T) {
	info := Font.GetGlyph('█').Info()
	if info.Width != Width || info.Height != Height || info.XAdvance != Width {
		t.Fatalf("block glyph info = %+v", info)
	}
	if Font.GetYAdvance() != Height {
		t.Fatalf("GetYAdvance() = %d, want %d", Font.GetYAdvance(), Height)
	}
}
