package hal

import (
	"encoding/binary"
	"image/color"
)

// Framebuffer pixels are RGB565, stored little-endian.

func packRGB565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// unpackRGB565 widens each channel back to 8 bits, replicating the high bits
// so that full intensity stays 0xff.
func unpackRGB565(p uint16) color.RGBA {
	r := uint8(p>>11) & 0x1f
	g := uint8(p>>5) & 0x3f
	b := uint8(p) & 0x1f
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
}

func getRGB565(buf []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(buf[off:])
}

func putRGB565(buf []byte, off int, p uint16) {
	binary.LittleEndian.PutUint16(buf[off:], p)
}
