// Package recording captures the draw calls a prim.Batch submits so they
// can be inspected, stored and replayed on another device.
//
// A Device records every SetTransforms, effect pass Apply and
// DrawPrimitives call as a typed Command. Finish returns an immutable
// Recording, which can be played back to any prim.Device:
//
//	rec := recording.NewDevice()
//	d := prim.NewDrawer(rec)
//	d.Begin()
//	d.DrawCircle(prim.Pt(50, 50), 20, 0, 32, false, prim.Red)
//	d.End()
//	r := rec.Finish()
//
//	// Replay on a software target
//	r.Playback(target)
//
// Recordings serialize to a compact msgpack stream compressed with zstd
// (WriteTo, Read, Save, Load), which makes them usable as golden files in
// tests and as bug-report attachments.
package recording
