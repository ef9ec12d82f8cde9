package app

import (
	"fmt"
	"strings"

	"vgacube/cubeos/fonts/cp437"
	"vgacube/hal"

	"tinygo.org/x/tinyterm"
)

// Panic screen colors: bright white on red.
const panicAttr = 0x4f

type panicInfo struct {
	Value any
	Stack []byte
}

func (p panicInfo) lines() []string {
	lines := []string{
		"vgacube panic:",
		fmt.Sprintf("panic: %v", p.Value),
	}
	if len(p.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(p.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}

// showPanic reports a recovered panic on every output the HAL offers: the
// logger, the text cells and, where one exists, the framebuffer.
func showPanic(h hal.HAL, info panicInfo) {
	lines := info.lines()

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("vgacube panic: %v", info.Value))
		for _, line := range lines[2:] {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	if tm := disp.TextMode(); tm != nil {
		drawPanicCells(tm, lines)
	}
	if fb := disp.Framebuffer(); fb != nil {
		drawPanicTerm(fb, lines)
	}
}

func drawPanicCells(tm hal.TextMode, lines []string) {
	cols, rows := tm.Cols(), tm.Rows()
	if cols <= 0 || rows <= 0 {
		return
	}
	// The text device may be what panicked.
	defer func() { _ = recover() }()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tm.WriteCell(r, c, ' ', panicAttr)
		}
	}

	row := 0
	for _, line := range lines {
		for len(line) > 0 && row < rows {
			chunk, rest := takeRunes(line, cols)
			col := 0
			for _, r := range chunk {
				b, _ := cp437.Byte(r)
				tm.WriteCell(row, col, b, panicAttr)
				col++
			}
			row++
			line = strings.TrimLeft(rest, " ")
		}
		if row >= rows {
			break
		}
	}
	_ = tm.Present()
}

func drawPanicTerm(fb hal.Framebuffer, lines []string) {
	if fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(0, 0, 0)

	t := tinyterm.NewTerminal(hal.NewFBDisplay(fb))
	t.Configure(&tinyterm.Config{
		Font:              cp437.Font,
		FontHeight:        cp437.Height,
		FontOffset:        cp437.Baseline,
		UseSoftwareScroll: true,
	})

	fmt.Fprintf(t, "\x1b[31m%s\x1b[0m\r\n", lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(t, "%s\r\n", line)
	}
	_ = fb.Present()
}

func takeRunes(s string, max int) (chunk, rest string) {
	if max <= 0 {
		return "", s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i], s[i:]
		}
		n++
	}
	return s, ""
}
