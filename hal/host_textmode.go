//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"sync"

	"vgacube/cubeos/textmode"
)

// hostTextMode keeps cell memory in RAM and composites it into the host
// framebuffer on Present.
type hostTextMode struct {
	mu   sync.Mutex
	scr  *textmode.Screen
	fb   *hostFramebuffer
	d    *FBDisplay
	ansi io.Writer
}

func newHostTextMode(cols, rows int, fb *hostFramebuffer, ansi io.Writer) *hostTextMode {
	t := &hostTextMode{
		scr:  textmode.NewScreen(cols, rows),
		fb:   fb,
		ansi: ansi,
	}
	if fb != nil {
		t.d = NewFBDisplay(fb)
	}
	return t
}

func (t *hostTextMode) Cols() int { return t.scr.Cols() }
func (t *hostTextMode) Rows() int { return t.scr.Rows() }

func (t *hostTextMode) WriteCell(row, col int, glyph, attr uint8) {
	t.mu.Lock()
	t.scr.WriteCell(row, col, glyph, attr)
	t.mu.Unlock()
}

func (t *hostTextMode) Present() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fb != nil {
		t.fb.mu.Lock()
		t.scr.Draw(t.d)
		t.fb.mu.Unlock()
		if err := t.fb.Present(); err != nil {
			return err
		}
	}
	if t.ansi != nil {
		if err := t.scr.WriteANSI(t.ansi); err != nil {
			return fmt.Errorf("ansi frame: %w", err)
		}
	}
	return nil
}

func (t *hostTextMode) cell(row, col int) (glyph, attr uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scr.Cell(row, col)
}
