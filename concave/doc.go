// Package concave fills arbitrary simple polygons, with optional holes,
// through a prim.Drawer by ear-clipping triangulation.
//
// The triangulator is github.com/mmp/earcut-go, which is a cgo package,
// so everything here except this file is built only with cgo enabled.
// The Vulkan HAL behind backend/wgpu is pure Go and is built with
// CGO_ENABLED=0; keep this package out of binaries that need that.
//
//	d.Begin()
//	concave.Fill(d, star, nil, prim.Green, true)
//	d.End()
package concave
