package prim

// Drawer is the immediate-mode drawing surface. Each Draw call decomposes
// a shape into vertices and appends them to the underlying Batch; nothing
// is retained once the call returns.
//
// The default color, point size and content scale live in a DrawState
// owned by the Drawer rather than in package-level variables, so two
// drawers never influence each other.
//
// Typical frame:
//
//	d := prim.NewDrawer(dev, prim.WithBatchOptions(prim.WithTransforms(prim.Ortho2D(w, h))))
//	if err := d.Begin(); err != nil {
//		return err
//	}
//	d.DrawLine(prim.Pt(0, 0), prim.Pt(100, 100), prim.Red)
//	d.DrawCircle(prim.Pt(50, 50), 20, 0, 32, false, prim.Green)
//	return d.End()
type Drawer struct {
	batch *Batch
	state DrawState
}

// NewDrawer creates a Drawer with its own Batch on device.
func NewDrawer(device Device, opts ...DrawerOption) *Drawer {
	o := drawerOptions{state: DefaultDrawState()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Drawer{
		batch: NewBatch(device, o.batch...),
		state: o.state,
	}
}

// Batch returns the underlying batch.
func (d *Drawer) Batch() *Batch { return d.batch }

// Begin opens the batch scope.
func (d *Drawer) Begin() error { return d.batch.Begin() }

// End flushes pending vertices and closes the batch scope.
func (d *Drawer) End() error { return d.batch.End() }

// SetTransforms replaces the projection/view/world state for subsequent
// draw calls.
func (d *Drawer) SetTransforms(t Transforms) error { return d.batch.SetTransforms(t) }

// State returns the current drawing state.
func (d *Drawer) State() DrawState { return d.state }

// SetState replaces the drawing state.
func (d *Drawer) SetState(s DrawState) { d.state = s }

// DefaultColor returns the color used by calls without an explicit color.
func (d *Drawer) DefaultColor() RGBA { return d.state.Color }

// SetDefaultColor sets the color used by calls without an explicit color.
func (d *Drawer) SetDefaultColor(c RGBA) { d.state.Color = c }

// PointSize returns the default point size.
func (d *Drawer) PointSize() float64 { return d.state.PointSize }

// SetPointSize sets the default point size.
func (d *Drawer) SetPointSize(size float64) { d.state.PointSize = size }

// ContentScale returns the content-scale factor.
func (d *Drawer) ContentScale() float64 { return d.state.ContentScale }

// SetContentScale sets the content-scale factor.
func (d *Drawer) SetContentScale(f float64) { d.state.ContentScale = f }

// vertex converts a logical point to a device vertex.
func (d *Drawer) vertex(p Point, c RGBA) Vertex {
	return V(p.Mul(d.state.ContentScale), c)
}

func (d *Drawer) add(p Point, c RGBA, t Topology) error {
	return d.batch.AddVertex(d.vertex(p, c), t)
}

func (d *Drawer) strip(pts []Point, c RGBA) error {
	verts := make([]Vertex, len(pts))
	for i, p := range pts {
		verts[i] = d.vertex(p, c)
	}
	return d.batch.AddStrip(verts)
}
