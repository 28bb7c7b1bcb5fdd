package prim

import "golang.org/x/image/math/f32"

// Transforms is the projection/view/world state bound before each draw
// call. All matrices are row-major (see golang.org/x/image/math/f32) and
// act on column vectors, so a position is mapped as
// Projection * View * World * p.
type Transforms struct {
	Projection f32.Mat4
	View       f32.Mat4
	World      f32.Mat4
}

// IdentityTransforms returns transforms that pass positions through as
// normalized device coordinates.
func IdentityTransforms() Transforms {
	return Transforms{
		Projection: Identity4(),
		View:       Identity4(),
		World:      Identity4(),
	}
}

// Ortho2D returns transforms with an orthographic projection mapping
// [0, width] x [0, height] to clip space with the origin at the bottom-left
// corner, the usual 2D scene-graph convention.
func Ortho2D(width, height float32) Transforms {
	t := IdentityTransforms()
	t.Projection = Ortho(0, width, 0, height, -1, 1)
	return t
}

// Combined returns Projection * View * World.
func (t Transforms) Combined() f32.Mat4 {
	return Mul4(t.Projection, Mul4(t.View, t.World))
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns a row-major orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) f32.Mat4 {
	rl, tb, fn := right-left, top-bottom, far-near
	return f32.Mat4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	}
}

// Mul4 returns a * b.
func Mul4(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[i*4+k] * b[k*4+j]
			}
			m[i*4+j] = s
		}
	}
	return m
}

// Apply maps p through m, returning homogeneous clip coordinates.
func Apply(m f32.Mat4, p f32.Vec3) f32.Vec4 {
	var out f32.Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[i*4]*p[0] + m[i*4+1]*p[1] + m[i*4+2]*p[2] + m[i*4+3]
	}
	return out
}

// Transpose returns the transpose of m. WGSL matrices are column-major,
// so GPU backends upload the transpose of a row-major matrix.
func Transpose(m f32.Mat4) f32.Mat4 {
	var t f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j*4+i] = m[i*4+j]
		}
	}
	return t
}
