// Package textmode models a VGA-style character display: cell memory with one
// glyph byte and one attribute byte per cell, and the means to turn that memory
// into pixels, ANSI terminal output, or images.
package textmode

import (
	"image/color"

	"vgacube/cubeos/fonts/cp437"

	"tinygo.org/x/drivers"
)

// Standard text-mode grid.
const (
	Cols = 80
	Rows = 25
)

// Pixel size of a cell when drawn.
const (
	CellWidth  = cp437.Width
	CellHeight = cp437.Height
)

// Palette is the 16-color text-mode palette indexed by attribute nibble.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0x00, 0x00, 0xaa, 0xff}, // blue
	{0x00, 0xaa, 0x00, 0xff}, // green
	{0x00, 0xaa, 0xaa, 0xff}, // cyan
	{0xaa, 0x00, 0x00, 0xff}, // red
	{0xaa, 0x00, 0xaa, 0xff}, // magenta
	{0xaa, 0x55, 0x00, 0xff}, // brown
	{0xaa, 0xaa, 0xaa, 0xff}, // light gray
	{0x55, 0x55, 0x55, 0xff}, // dark gray
	{0x55, 0x55, 0xff, 0xff}, // light blue
	{0x55, 0xff, 0x55, 0xff}, // light green
	{0x55, 0xff, 0xff, 0xff}, // light cyan
	{0xff, 0x55, 0x55, 0xff}, // light red
	{0xff, 0x55, 0xff, 0xff}, // light magenta
	{0xff, 0xff, 0x55, 0xff}, // yellow
	{0xff, 0xff, 0xff, 0xff}, // white
}

// Screen is in-memory cell storage laid out like VGA text memory: cell i
// occupies bytes 2i (glyph) and 2i+1 (attribute).
type Screen struct {
	cols int
	rows int
	mem  []byte
}

func NewScreen(cols, rows int) *Screen {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Screen{cols: cols, rows: rows, mem: make([]byte, cols*rows*2)}
}

func (s *Screen) Cols() int { return s.cols }
func (s *Screen) Rows() int { return s.rows }

// Memory returns the backing cell memory.
func (s *Screen) Memory() []byte { return s.mem }

// WriteCell stores one cell. Out-of-range cells are ignored.
func (s *Screen) WriteCell(row, col int, glyph, attr uint8) {
	if row < 0 || col < 0 || row >= s.rows || col >= s.cols {
		return
	}
	off := (row*s.cols + col) * 2
	s.mem[off] = glyph
	s.mem[off+1] = attr
}

// Cell returns the glyph and attribute at (row, col), or zeros when out of range.
func (s *Screen) Cell(row, col int) (glyph, attr uint8) {
	if row < 0 || col < 0 || row >= s.rows || col >= s.cols {
		return 0, 0
	}
	off := (row*s.cols + col) * 2
	return s.mem[off], s.mem[off+1]
}

// Fill sets every cell to glyph/attr.
func (s *Screen) Fill(glyph, attr uint8) {
	for i := 0; i+1 < len(s.mem); i += 2 {
		s.mem[i] = glyph
		s.mem[i+1] = attr
	}
}

// WriteString writes str starting at (row, col), encoding runes as CP437 and
// stopping at the end of the row. It returns the number of cells written.
func (s *Screen) WriteString(row, col int, str string, attr uint8) int {
	n := 0
	for _, r := range str {
		if col+n >= s.cols {
			break
		}
		b, _ := cp437.Byte(r)
		s.WriteCell(row, col+n, b, attr)
		n++
	}
	return n
}

// Draw renders every cell into d using the CP437 font, one CellWidth x
// CellHeight block per cell.
func (s *Screen) Draw(d drivers.Displayer) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			glyph, attr := s.Cell(row, col)
			drawCell(d, int16(col*CellWidth), int16(row*CellHeight), glyph, attr)
		}
	}
}

func drawCell(d drivers.Displayer, x, y int16, glyph, attr uint8) {
	fg := Palette[attr&0x0F]
	bg := Palette[attr>>4]

	for py := int16(0); py < CellHeight; py++ {
		for px := int16(0); px < CellWidth; px++ {
			d.SetPixel(x+px, y+py, bg)
		}
	}
	if glyph == 0 || glyph == ' ' {
		return
	}
	cp437.Font.GetGlyph(cp437.Rune(glyph)).Draw(d, x, y+cp437.Baseline, fg)
}
