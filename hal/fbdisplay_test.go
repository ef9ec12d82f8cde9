package hal

import (
	"image/color"
	"testing"
)

type memFramebuffer struct {
	w, h int
	buf  []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int             { return f.w }
func (f *memFramebuffer) Height() int            { return f.h }
func (f *memFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte         { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8) {}
func (f *memFramebuffer) Present() error         { return nil }

func (f *memFramebuffer) pixel(x, y int) uint16 {
	return getRGB565(f.buf, y*f.StrideBytes()+x*2)
}

func TestFBDisplaySetPixel(t *testing.T) {
	fb := newMemFramebuffer(4, 3)
	d := NewFBDisplay(fb)

	d.SetPixel(1, 2, color.RGBA{R: 0xff, A: 0xff})
	if got, want := fb.pixel(1, 2), packRGB565(color.RGBA{R: 0xff, A: 0xff}); got != want {
		t.Fatalf("pixel = %#04x, want %#04x", got, want)
	}

	// Out of bounds writes are clipped.
	d.SetPixel(-1, 0, color.RGBA{G: 0xff, A: 0xff})
	d.SetPixel(4, 0, color.RGBA{G: 0xff, A: 0xff})
	d.SetPixel(0, 3, color.RGBA{G: 0xff, A: 0xff})
	for i, b := range fb.buf {
		if i == (2*4+1)*2 || i == (2*4+1)*2+1 {
			continue
		}
		if b != 0 {
			t.Fatalf("buf[%d] = %#x after clipped writes", i, b)
		}
	}
}

func TestFBDisplayFillRectangle(t *testing.T) {
	fb := newMemFramebuffer(4, 4)
	d := NewFBDisplay(fb)

	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if err := d.FillRectangle(2, 2, 10, 10, white); err != nil {
		t.Fatalf("FillRectangle() error = %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint16(0)
			if x >= 2 && y >= 2 {
				want = 0xffff
			}
			if got := fb.pixel(x, y); got != want {
				t.Fatalf("pixel(%d, %d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}

	if x, y := d.Size(); x != 4 || y != 4 {
		t.Fatalf("Size() = %d, %d", x, y)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{0xff, 0xff, 0xff},
		{0xff, 0x55, 0x55},
		{0x55, 0x55, 0xff},
	}
	for _, tt := range tests {
		c := unpackRGB565(packRGB565(color.RGBA{R: tt.r, G: tt.g, B: tt.b, A: 0xff}))
		if absDiff(c.R, tt.r) > 8 || absDiff(c.G, tt.g) > 4 || absDiff(c.B, tt.b) > 8 {
			t.Fatalf("round trip of %v = %v", tt, c)
		}
	}
	if c := unpackRGB565(0xffff); c != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("white = %v", c)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
