package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// TextMode is a character-cell display addressed like VGA text memory: one
// glyph byte and one color attribute byte (low nibble fg, high nibble bg) per
// cell.
//
// WriteCell must not block beyond the memory write; Present makes the written
// cells visible where the device needs an explicit flush.
type TextMode interface {
	Cols() int
	Rows() int
	WriteCell(row, col int, glyph, attr uint8)
	Present() error
}

// Display provides access to the output devices. Either may be nil: bare-metal
// VGA has no framebuffer.
type Display interface {
	Framebuffer() Framebuffer
	TextMode() TextMode
}

// HAL provides the only contact point between the program and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
}
