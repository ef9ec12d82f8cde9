package cube

// Sink receives quantized character cells, row-major.
type Sink interface {
	WriteCell(row, col int, glyph, attr uint8)
}

// Renderer owns the base geometry and the supersampled buffer for one grid
// size. It is not safe for concurrent use.
type Renderer struct {
	Cols, Rows int

	base Geometry
	buf  *Buffer
}

// NewRenderer creates a renderer for a cols x rows character grid.
func NewRenderer(cols, rows int) *Renderer {
	return &Renderer{
		Cols: cols,
		Rows: rows,
		base: NewGeometry(),
		buf:  NewBuffer(cols, rows),
	}
}

// Buffer exposes the supersampled buffer of the last rendered frame.
func (r *Renderer) Buffer() *Buffer { return r.buf }

// Render draws one frame at the given view angles and emits every cell to s.
func (r *Renderer) Render(yaw, pitch Scalar, s Sink) {
	g := r.base.Orient(yaw, pitch)
	Rasterize(r.buf, &g)
	Emit(r.buf, r.Cols, r.Rows, s)
}

// Emit quantizes every cell of b and writes it to s, top to bottom, left to
// right.
func Emit(b *Buffer, cols, rows int, s Sink) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			blk := b.Block(col, row)
			c := Quantize(blk[:])
			s.WriteCell(row, col, c.Glyph, c.Attr)
		}
	}
}
