//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"vgacube/cubeos/textmode"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	text   *hostTextMode
}

// New returns a host HAL implementation with an 80x25 text mode composited
// into a 640x400 framebuffer.
func New() HAL {
	return newHostHAL(os.Stdout, nil)
}

// newHostHAL builds the host HAL. Log lines go to logOut; when ansiOut is set,
// every Present also writes the text screen to it as an ANSI frame.
func newHostHAL(logOut, ansiOut io.Writer) *hostHAL {
	fb := newHostFramebuffer(textmode.Cols*textmode.CellWidth, textmode.Rows*textmode.CellHeight)
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     fb,
		text:   newHostTextMode(textmode.Cols, textmode.Rows, fb, ansiOut),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, text: h.text} }

type hostDisplay struct {
	fb   *hostFramebuffer
	text *hostTextMode
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) TextMode() TextMode       { return d.text }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
