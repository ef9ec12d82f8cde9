package cube

// NumFaces is the number of quads in the cube geometry.
const NumFaces = 6

// Geometry holds the cube faces in paint order.
type Geometry [NumFaces]Quad

// BaseQuad is the canonical face every cube face is rotated from.
func BaseQuad() Quad {
	return Quad{
		V3(-1, -1, -1),
		V3(1, -1, -1),
		V3(1, 1, -1),
		V3(-1, 1, -1),
	}
}

// NewGeometry builds the unit cube: four faces around the Y axis, then the two
// caps rotated about X.
func NewGeometry() Geometry {
	base := BaseQuad()

	var g Geometry
	for i := 0; i < 4; i++ {
		g[i] = Rotate(base, AxisY, Scalar(i)*Pi/2)
	}
	g[4] = Rotate(base, AxisX, -Pi/2)
	g[5] = Rotate(base, AxisX, Pi/2)
	return g
}

// Rotate returns a copy of g with every face rotated about axis.
func (g Geometry) Rotate(axis Axis, rad Scalar) Geometry {
	for i := range g {
		g[i] = Rotate(g[i], axis, rad)
	}
	return g
}

// Orient applies the per-frame view transform. Yaw is applied first, pitch
// second; the order is visible in the output.
func (g Geometry) Orient(yaw, pitch Scalar) Geometry {
	return g.Rotate(AxisY, yaw).Rotate(AxisX, pitch)
}
