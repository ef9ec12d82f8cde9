package cube

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	testCols = 80
	testRows = 25
)

func centroid(q Quad) Vec3 {
	var c Vec3
	for _, p := range q {
		c.X += p.X / 4
		c.Y += p.Y / 4
		c.Z += p.Z / 4
	}
	return c
}

func TestInside(t *testing.T) {
	Convey("The inside test", t, func() {
		quads := []Quad{BaseQuad(), skewQuad(), Rotate(BaseQuad(), AxisZ, 0.8)}

		Convey("accepts the centroid", func() {
			for _, q := range quads {
				So(Inside(q, centroid(q)), ShouldBeTrue)
			}
		})

		Convey("rejects points outside the bounding box", func() {
			for _, q := range quads {
				minX, maxX, minY, maxY := Bounds(q)
				for _, p := range []Vec3{
					V3(minX-0.01, (minY+maxY)/2, 0),
					V3(maxX+0.01, (minY+maxY)/2, 0),
					V3((minX+maxX)/2, minY-0.01, 0),
					V3((minX+maxX)/2, maxY+0.01, 0),
					V3(maxX+3, maxY+3, 0),
				} {
					So(Inside(q, p), ShouldBeFalse)
				}
			}
		})

		Convey("ignores z", func() {
			So(Inside(BaseQuad(), V3(0, 0, 100)), ShouldBeTrue)
		})

		Convey("rejects everything for reversed winding", func() {
			q := BaseQuad()
			rev := Quad{q[3], q[2], q[1], q[0]}
			So(Inside(rev, centroid(rev)), ShouldBeFalse)
		})
	})
}

func TestBounds(t *testing.T) {
	Convey("Bounds", t, func() {
		Convey("covers all vertices", func() {
			minX, maxX, minY, maxY := Bounds(skewQuad())
			So(minX, ShouldEqual, Scalar(-1.5))
			So(maxX, ShouldEqual, Scalar(1.5))
			So(minY, ShouldEqual, Scalar(-1.25))
			So(maxY, ShouldEqual, Scalar(2))
		})

		Convey("does not fail on NaN", func() {
			nan := Scalar(math.NaN())
			q := BaseQuad()
			q[2].X = nan
			So(func() { Bounds(q) }, ShouldNotPanic)
			minX, _, minY, maxY := Bounds(q)
			So(minX, ShouldEqual, Scalar(-1))
			So(minY, ShouldEqual, Scalar(-1))
			So(maxY, ShouldEqual, Scalar(1))
		})
	})
}

func TestProject(t *testing.T) {
	Convey("Project", t, func() {
		w, h := testCols*Supersampling, testRows*Supersampling

		Convey("maps the left edge of the centered square to -1/zoom", func() {
			p := Project((w-h)/2, 0, w, h)
			So(float64(p.X), ShouldAlmostEqual, float64(-1/Zoom), eps)
			So(float64(p.Y), ShouldAlmostEqual, float64(-Aspect/Zoom), eps)
			So(p.Z, ShouldEqual, Scalar(0))
		})

		Convey("maps the last row to +aspect/zoom", func() {
			p := Project(0, h-1, w, h)
			So(float64(p.Y), ShouldAlmostEqual, float64(Aspect/Zoom), eps)
		})
	})
}

func TestRasterize(t *testing.T) {
	Convey("Rasterize", t, func() {
		b := NewBuffer(testCols, testRows)
		So(b.W, ShouldEqual, 160)
		So(b.H, ShouldEqual, 50)

		Convey("clears stale pixels to the background", func() {
			b.Clear(0x7)
			var g Geometry
			Rasterize(b, &g)
			for _, c := range b.Pix {
				So(c, ShouldEqual, Background)
			}
		})

		Convey("paints later faces over earlier ones", func() {
			var g Geometry
			for i := range g {
				g[i] = BaseQuad()
			}
			Rasterize(b, &g)

			So(b.At(b.W/2, b.H/2), ShouldEqual, FaceColor(NumFaces-1))
			for _, c := range b.Pix {
				So(c == Background || c == FaceColor(NumFaces-1), ShouldBeTrue)
			}
		})

		Convey("keeps an earlier face where a later one does not reach", func() {
			var g Geometry
			g[0] = BaseQuad()
			small := BaseQuad()
			for i := range small {
				small[i].X *= 0.25
				small[i].Y *= 0.25
			}
			g[3] = small
			Rasterize(b, &g)

			So(b.At(b.W/2, b.H/2), ShouldEqual, FaceColor(3))
			So(b.At(60, b.H/2), ShouldEqual, FaceColor(0))
			So(b.At(0, 0), ShouldEqual, Background)
		})

		Convey("shows only the front face of the unturned cube", func() {
			g := NewGeometry().Orient(0, 0)
			Rasterize(b, &g)

			for y := 0; y < b.H; y++ {
				for x := 0; x < b.W; x++ {
					in := x >= 53 && x <= 106 && y >= 10 && y <= 39
					if in {
						So(b.At(x, y), ShouldEqual, FaceColor(0))
					} else {
						So(b.At(x, y), ShouldEqual, Background)
					}
				}
			}
		})
	})
}

func TestFaceColor(t *testing.T) {
	Convey("Face colors cycle through the palette without the background", t, func() {
		want := []uint8{0x9, 0xd, 0xb, 0xa, 0xc, 0xe, 0x9}
		for i, c := range want {
			So(FaceColor(i), ShouldEqual, c)
		}
	})
}
