package software

import "github.com/gogpu/prim"

// Effect is the fixed-function shading of the software device: one pass
// that transforms positions and flat-shades each primitive.
type Effect struct {
	passes []prim.EffectPass
}

// Passes returns the effect passes.
func (e *Effect) Passes() []prim.EffectPass { return e.passes }

type pass struct{ d *Device }

// Apply latches the current transforms as the vertex matrix.
func (p *pass) Apply() error {
	p.d.mvp = p.d.transforms.Combined()
	p.d.bound = true
	return nil
}
