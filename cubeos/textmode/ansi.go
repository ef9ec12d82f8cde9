package textmode

import (
	"bufio"
	"io"
	"strconv"

	"vgacube/cubeos/fonts/cp437"
)

// ANSI color numbers are ordered RGB-bit-reversed relative to VGA indices.
var vgaToANSI = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

func ansiFG(c uint8) int {
	if c >= 8 {
		return 90 + vgaToANSI[c-8]
	}
	return 30 + vgaToANSI[c]
}

func ansiBG(c uint8) int {
	if c >= 8 {
		return 100 + vgaToANSI[c-8]
	}
	return 40 + vgaToANSI[c]
}

// WriteANSI writes the screen to w as one terminal frame: cursor home, then each
// row with SGR color changes, resetting attributes at the end of every row.
func (s *Screen) WriteANSI(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("\x1b[H")

	for row := 0; row < s.rows; row++ {
		last := -1
		for col := 0; col < s.cols; col++ {
			glyph, attr := s.Cell(row, col)
			if int(attr) != last {
				bw.WriteString("\x1b[")
				bw.WriteString(strconv.Itoa(ansiFG(attr & 0x0F)))
				bw.WriteByte(';')
				bw.WriteString(strconv.Itoa(ansiBG(attr >> 4)))
				bw.WriteByte('m')
				last = int(attr)
			}
			if glyph == 0 {
				glyph = ' '
			}
			bw.WriteRune(cp437.Rune(glyph))
		}
		bw.WriteString("\x1b[0m\r\n")
	}
	return bw.Flush()
}
