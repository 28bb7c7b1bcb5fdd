package wgpu

import "github.com/gogpu/prim"

// Effect is the primitive shader: a single pass that binds the transform
// uniforms.
type Effect struct {
	passes []prim.EffectPass
}

// Passes returns the effect passes.
func (e *Effect) Passes() []prim.EffectPass { return e.passes }

type pass struct{ d *Device }

// Apply uploads the current transforms and binds them for the next draw.
func (p *pass) Apply() error { return p.d.bindTransforms() }
