// Package backend provides a pluggable render target abstraction for prim.
//
// A backend turns the prim.Device contract into real pixels. Two backends
// ship with the module:
//
//   - "software": CPU rasterizer built on golang.org/x/image/vector (always available)
//   - "wgpu": GPU rendering through the gogpu/wgpu HAL with naga-compiled shaders
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// Import the backends you want:
//
//	import (
//		_ "github.com/gogpu/prim/backend/software"
//		_ "github.com/gogpu/prim/backend/wgpu"
//	)
//
// # Backend Selection
//
// Use InitDefault() to get the best backend that initializes on this
// machine, or Get() to request a specific backend by name:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	t, err := b.NewTarget(800, 600)
//
// # Usage with prim
//
// A Target implements prim.Device, so it plugs straight into a Drawer:
//
//	_ = t.BeginFrame(prim.Black)
//	d := prim.NewDrawer(t, prim.WithBatchOptions(prim.WithTransforms(prim.Ortho2D(800, 600))))
//	_ = d.Begin()
//	d.DrawLine(prim.Pt(0, 0), prim.Pt(800, 600), prim.White)
//	_ = d.End()
//	_ = t.EndFrame()
//	img, _ := t.Image()
package backend
