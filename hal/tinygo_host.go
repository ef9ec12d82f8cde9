//go:build tinygo && !baremetal

package hal

import (
	"os"

	"vgacube/cubeos/textmode"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	text   *tinyGoHostTextMode
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no VGA
// memory; frames are written to stdout as ANSI.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		text: &tinyGoHostTextMode{
			scr: textmode.NewScreen(textmode.Cols, textmode.Rows),
		},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{text: h.text} }

type tinyGoHostDisplay struct {
	text TextMode
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return nil }
func (d tinyGoHostDisplay) TextMode() TextMode       { return d.text }

type tinyGoHostTextMode struct {
	scr *textmode.Screen
}

func (t *tinyGoHostTextMode) Cols() int { return t.scr.Cols() }
func (t *tinyGoHostTextMode) Rows() int { return t.scr.Rows() }

func (t *tinyGoHostTextMode) WriteCell(row, col int, glyph, attr uint8) {
	t.scr.WriteCell(row, col, glyph, attr)
}

func (t *tinyGoHostTextMode) Present() error {
	return t.scr.WriteANSI(os.Stdout)
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
