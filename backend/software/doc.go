// Package software implements the "software" backend: a CPU render target
// that rasterizes prim draw calls with golang.org/x/image/vector.
//
// Vertices are mapped through the bound projection/view/world matrices to
// clip space and then to pixels with the origin at the top-left of the
// image. Triangles are filled with anti-aliased coverage. Lines and points
// have no width in clip space, so they are widened to one pixel. Each
// primitive is flat-shaded with the color of its first vertex and
// composited with source-over.
//
// Importing the package registers the backend:
//
//	import _ "github.com/gogpu/prim/backend/software"
package software
