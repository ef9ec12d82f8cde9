//go:build tinygo && baremetal

package hal

import (
	"runtime/volatile"
	"unsafe"
)

// VGA text memory: 80x25 cells, glyph byte then attribute byte.
const (
	vgaBase = 0xb8000
	vgaCols = 80
	vgaRows = 25
)

type tinyGoHAL struct {
	logger *consoleLogger
	text   *vgaTextMode
}

// New returns the bare-metal HAL. The text display writes straight into VGA
// memory; there is no framebuffer.
func New() HAL {
	return &tinyGoHAL{
		logger: &consoleLogger{},
		text:   &vgaTextMode{mem: (*[vgaCols * vgaRows * 2]volatile.Register8)(unsafe.Pointer(uintptr(vgaBase)))},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{text: h.text} }

type tinyGoDisplay struct {
	text TextMode
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return nil }
func (d tinyGoDisplay) TextMode() TextMode       { return d.text }

type vgaTextMode struct {
	mem *[vgaCols * vgaRows * 2]volatile.Register8
}

func (t *vgaTextMode) Cols() int { return vgaCols }
func (t *vgaTextMode) Rows() int { return vgaRows }

func (t *vgaTextMode) WriteCell(row, col int, glyph, attr uint8) {
	if row < 0 || col < 0 || row >= vgaRows || col >= vgaCols {
		return
	}
	i := (row*vgaCols + col) * 2
	t.mem[i].Set(glyph)
	t.mem[i+1].Set(attr)
}

// Present is a no-op: VGA memory is scanned out directly.
func (t *vgaTextMode) Present() error { return nil }

// consoleLogger writes through the TinyGo runtime console.
type consoleLogger struct{}

func (l *consoleLogger) WriteLineString(s string) {
	println(s)
}

func (l *consoleLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
