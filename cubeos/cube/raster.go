package cube

// Supersampling is the per-axis sample count of one character cell.
const Supersampling = 2

const (
	// Zoom scales the cube down so its corners stay on screen.
	Zoom Scalar = 1.1
	// Aspect corrects for character cells being taller than wide.
	Aspect Scalar = 16.0 / 9.0
)

// Buffer is a supersampled grid of palette indices.
type Buffer struct {
	W, H int
	Pix  []uint8
}

// NewBuffer allocates a buffer for a cols x rows character grid.
func NewBuffer(cols, rows int) *Buffer {
	w := cols * Supersampling
	h := rows * Supersampling
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h)}
}

func (b *Buffer) Clear(c uint8) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

func (b *Buffer) At(x, y int) uint8 { return b.Pix[y*b.W+x] }

func (b *Buffer) Set(x, y int, c uint8) { b.Pix[y*b.W+x] = c }

// Block returns the samples under character cell (col, row) in row-major order.
func (b *Buffer) Block(col, row int) [Supersampling * Supersampling]uint8 {
	var out [Supersampling * Supersampling]uint8
	x0 := col * Supersampling
	y0 := row * Supersampling
	i := 0
	for dy := 0; dy < Supersampling; dy++ {
		for dx := 0; dx < Supersampling; dx++ {
			out[i] = b.At(x0+dx, y0+dy)
			i++
		}
	}
	return out
}

// Project maps supersampled pixel (x, y) of a w x h buffer into object space.
//
// The point is compared with rotated faces' x/y directly, i.e. screen space and
// the object's x/y plane are the same plane (orthographic along z).
func Project(x, y, w, h int) Vec3 {
	fx, fy := Scalar(x), Scalar(y)
	fw, fh := Scalar(w), Scalar(h)

	rx := 2 * (fx - (fw-fh)/2) / (fh - 1)
	ry := 2 * fy / (fh - 1)

	return Vec3{
		X: (rx - 1) / Zoom,
		Y: Aspect * (ry - 1) / Zoom,
		Z: 0,
	}
}

// compare orders a and b; incomparable values (NaN) compare as equal.
func compare(a, b Scalar) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Bounds returns the x/y bounding box of q. On equal (or incomparable) values
// min keeps the first vertex and max keeps the last.
func Bounds(q Quad) (minX, maxX, minY, maxY Scalar) {
	minX, maxX = q[0].X, q[0].X
	minY, maxY = q[0].Y, q[0].Y
	for _, p := range q[1:] {
		if compare(p.X, minX) < 0 {
			minX = p.X
		}
		if compare(p.X, maxX) >= 0 {
			maxX = p.X
		}
		if compare(p.Y, minY) < 0 {
			minY = p.Y
		}
		if compare(p.Y, maxY) >= 0 {
			maxY = p.Y
		}
	}
	return minX, maxX, minY, maxY
}

// Inside reports whether p lies inside q, ignoring z. Every edge, taken in
// vertex order, must have p on its non-negative side.
func Inside(q Quad, p Vec3) bool {
	n := len(q)
	for i := 0; i < n; i++ {
		p1 := q[i]
		p2 := q[(i+1)%n]
		d := (p2.X-p1.X)*(p.Y-p1.Y) - (p2.Y-p1.Y)*(p.X-p1.X)
		if d < 0 {
			return false
		}
	}
	return true
}

// Rasterize clears b and paints every face of g in array order.
func Rasterize(b *Buffer, g *Geometry) {
	b.Clear(Background)
	for i := range g {
		rasterizeQuad(b, &g[i], FaceColor(i))
	}
}

func rasterizeQuad(b *Buffer, q *Quad, c uint8) {
	minX, maxX, minY, maxY := Bounds(*q)

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := Project(x, y, b.W, b.H)
			if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
				continue
			}
			if Inside(*q, p) {
				b.Set(x, y, c)
			}
		}
	}
}
