// Package prim batches immediate-mode 2D drawing primitives for a
// graphics device.
//
// # Overview
//
// A frame issues a sequence of drawing calls: points, lines, polygons,
// circles, Bézier curves and cardinal splines. prim turns them into
// vertices, accumulates them in one bounded buffer and submits them to a
// Device in as few draw calls as possible, grouped by topology and in
// submission order.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/prim"
//		"github.com/gogpu/prim/backend/software"
//	)
//
//	target, _ := software.NewDevice(512, 512)
//	target.BeginFrame(prim.Black)
//
//	d := prim.NewDrawer(target,
//		prim.WithBatchOptions(prim.WithTransforms(prim.Ortho2D(512, 512))))
//	d.Begin()
//	d.DrawCircle(prim.Pt(256, 256), 100, 0, 64, false, prim.Red)
//	d.DrawCubicBezier(prim.Pt(0, 0), prim.Pt(100, 400), prim.Pt(400, 100), prim.Pt(512, 512), 32, prim.White)
//	d.End()
//
//	target.EndFrame()
//	img, _ := target.Image()
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Point, Matrix, curve evaluation and sampling
//   - Batch: the vertex buffer, flush policy and draw-call submission
//   - Drawer: the primitive API on top of a Batch, with per-scope DrawState
//   - Device: the injected rendering context (transforms, effect passes,
//     DrawPrimitives)
//   - backend: a registry of render targets (software, wgpu) and a
//     recording device in package recording
//   - concave: ear-clipping fill of concave polygons with holes (cgo only)
//
// # Batching
//
// A Batch flushes when the topology changes, when the buffer reaches its
// capacity (rounded down to whole primitives), when a line strip starts or
// ends, when the transforms change and when the scope ends. Each flush
// sets the transforms on the device, then applies every effect pass and
// draws the pending vertices once per pass.
//
// # Coordinate System
//
// Positions are arbitrary 2D units mapped by the device transforms. With
// Ortho2D the origin is at the bottom-left corner, X increases right and
// Y increases up. Angles are in radians, counter-clockwise from +X.
//
// # Logging
//
// prim logs through log/slog and is silent by default; see SetLogger.
package prim

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
