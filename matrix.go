package prim

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Matrix represents a 2D affine transformation matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// which maps x' = a*x + b*y + c, y' = d*x + e*y + f. Scene graphs
// usually hand node transforms over in this form; Mat4 lifts it into the
// 4x4 world matrix the device expects.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// Mat4 returns m as a row-major 4x4 matrix acting on (x, y, z, 1).
func (m Matrix) Mat4() f32.Mat4 {
	return f32.Mat4{
		float32(m.A), float32(m.B), 0, float32(m.C),
		float32(m.D), float32(m.E), 0, float32(m.F),
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
