package recording

import (
	"slices"

	"github.com/gogpu/prim"
)

// Device is a prim.Device that records calls instead of rendering.
//
// The Device is not safe for concurrent use.
type Device struct {
	passes   []prim.EffectPass
	commands []Command
}

// Option configures a recording Device.
type Option func(*Device)

// WithPasses sets the number of passes of the recorded effect. The default
// is a single pass.
func WithPasses(n int) Option {
	return func(d *Device) {
		d.passes = make([]prim.EffectPass, max(n, 1))
		for i := range d.passes {
			d.passes[i] = &pass{device: d, index: i}
		}
	}
}

// NewDevice creates an empty recording device.
func NewDevice(opts ...Option) *Device {
	d := &Device{commands: make([]Command, 0, 64)}
	WithPasses(1)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetTransforms records the transforms for the next draw.
func (d *Device) SetTransforms(t prim.Transforms) {
	d.commands = append(d.commands, Command{Type: CmdSetTransforms, Transforms: t})
}

// Effect returns the recorded effect.
func (d *Device) Effect() prim.Effect { return effect{d.passes} }

// DrawPrimitives records a copy of vs. The batch reuses its buffer after
// the call returns.
func (d *Device) DrawPrimitives(t prim.Topology, vs []prim.Vertex) error {
	d.commands = append(d.commands, Command{Type: CmdDraw, Topology: t, Vertices: slices.Clone(vs)})
	return nil
}

// Len returns the number of commands recorded so far.
func (d *Device) Len() int { return len(d.commands) }

// Finish returns the commands recorded so far as an immutable Recording
// and resets the device for a new recording.
func (d *Device) Finish() *Recording {
	r := &Recording{commands: d.commands}
	d.commands = make([]Command, 0, 64)
	return r
}

type effect struct{ passes []prim.EffectPass }

func (e effect) Passes() []prim.EffectPass { return e.passes }

type pass struct {
	device *Device
	index  int
}

func (p *pass) Apply() error {
	p.device.commands = append(p.device.commands, Command{Type: CmdApply, Pass: p.index})
	return nil
}
