package cube

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type lattice [3]int

func snap(v Vec3) lattice {
	r := func(s Scalar) int { return int(math.Round(float64(s))) }
	return lattice{r(v.X), r(v.Y), r(v.Z)}
}

type edgeKey [2]lattice

func newEdgeKey(a, b lattice) edgeKey {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				a, b = b, a
			}
			break
		}
	}
	return edgeKey{a, b}
}

func TestGeometry(t *testing.T) {
	Convey("The cube geometry", t, func() {
		g := NewGeometry()

		Convey("starts with the base quad", func() {
			base := BaseQuad()
			for i := range base {
				So(g[0][i], shouldBeCloseVec, base[i])
			}
		})

		Convey("has every vertex on a unit cube corner", func() {
			for _, q := range g {
				for _, p := range q {
					c := snap(p)
					So(p, shouldBeCloseVec, V3(Scalar(c[0]), Scalar(c[1]), Scalar(c[2])))
					for _, v := range c {
						So(v == 1 || v == -1, ShouldBeTrue)
					}
				}
			}
		})

		Convey("is closed: each of the 12 edges belongs to exactly two faces", func() {
			edges := map[edgeKey]int{}
			for _, q := range g {
				for i := range q {
					edges[newEdgeKey(snap(q[i]), snap(q[(i+1)%4]))]++
				}
			}
			So(edges, ShouldHaveLength, 12)
			for _, n := range edges {
				So(n, ShouldEqual, 2)
			}
		})

		Convey("covers all six axis-aligned planes", func() {
			planes := map[lattice]bool{}
			for _, q := range g {
				var sum Vec3
				for _, p := range q {
					sum = Vec3{sum.X + p.X, sum.Y + p.Y, sum.Z + p.Z}
				}
				planes[snap(Vec3{sum.X / 4, sum.Y / 4, sum.Z / 4})] = true
			}
			So(planes, ShouldHaveLength, 6)
		})

		Convey("orients yaw before pitch", func() {
			yaw, pitch := Scalar(0.6), Scalar(0.4)
			got := g.Orient(yaw, pitch)
			want := g.Rotate(AxisY, yaw).Rotate(AxisX, pitch)
			swapped := g.Rotate(AxisX, pitch).Rotate(AxisY, yaw)
			So(got, ShouldResemble, want)
			So(got, ShouldNotResemble, swapped)
		})

		Convey("is not modified by Orient", func() {
			before := g
			_ = g.Orient(1, 1)
			So(g, ShouldResemble, before)
		})
	})
}
