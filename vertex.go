package prim

import "golang.org/x/image/math/f32"

// Vertex is a single batched vertex. Z is always 0 for the 2D primitives
// in this package. Colors are straight (non-premultiplied) alpha; devices
// premultiply when they upload.
type Vertex struct {
	Position f32.Vec3
	Color    RGBA
}

// V creates a 2D vertex at p with color c.
func V(p Point, c RGBA) Vertex {
	return Vertex{Position: f32.Vec3{float32(p.X), float32(p.Y), 0}, Color: c}
}

// Point returns the vertex position as a 2D point, dropping Z.
func (v Vertex) Point() Point {
	return Point{X: float64(v.Position[0]), Y: float64(v.Position[1])}
}
