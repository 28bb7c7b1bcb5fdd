package prim

// Device is the rendering context the batch draws into. It is supplied by
// the windowing or scene layer; prim never reaches for a global device.
//
// For every flush the batch calls SetTransforms once, then for each pass of
// Effect().Passes() calls Apply followed by DrawPrimitives with the flushed
// vertices. All calls happen on the goroutine that owns the device.
type Device interface {
	// SetTransforms binds the projection/view/world matrices used by the
	// next draw call.
	SetTransforms(Transforms)

	// Effect returns the shader effect bound before each draw call.
	Effect() Effect

	// DrawPrimitives issues one draw call of the given topology. The
	// vertex slice is only valid for the duration of the call.
	DrawPrimitives(topology Topology, vertices []Vertex) error
}

// Effect is a shader program made of one or more passes.
type Effect interface {
	Passes() []EffectPass
}

// EffectPass is a single pass of an Effect. Apply binds the pass state
// (pipeline, uniforms) on the device.
type EffectPass interface {
	Apply() error
}
