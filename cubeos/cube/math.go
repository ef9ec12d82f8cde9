package cube

import (
	"fmt"
	"math"
)

// Scalar is the numeric type used by the pipeline.
type Scalar = float32

const Pi Scalar = math.Pi

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) Scalar {
	return Scalar(math.Sqrt(float64(Dot(v, v))))
}

// Axis selects one of the three fixed rotation axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Mat3 is a row-major 3x3 matrix: m[row*3+col].
type Mat3 [9]Scalar

// Rotation returns the right-handed rotation matrix about axis.
func Rotation(axis Axis, rad Scalar) Mat3 {
	c := Scalar(math.Cos(float64(rad)))
	s := Scalar(math.Sin(float64(rad)))
	switch axis {
	case AxisX:
		return Mat3{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		}
	case AxisY:
		return Mat3{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		}
	case AxisZ:
		return Mat3{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		}
	}
	panic(fmt.Sprintf("cube: unknown rotation %s", axis))
}

func Mat3MulV3(m Mat3, v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Quad is a planar convex polygon with a fixed vertex winding.
type Quad [4]Vec3

// Rotate returns q rotated about axis. Every vertex is transformed by the same
// matrix, so planarity, edge lengths and winding are preserved.
func Rotate(q Quad, axis Axis, rad Scalar) Quad {
	m := Rotation(axis, rad)
	var out Quad
	for i, p := range q {
		out[i] = Mat3MulV3(m, p)
	}
	return out
}
