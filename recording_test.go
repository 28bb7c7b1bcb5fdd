package prim

import "errors"

// drawCall is one DrawPrimitives invocation captured by recordingDevice.
type drawCall struct {
	topology   Topology
	vertices   []Vertex
	transforms Transforms
}

// recordingDevice records every call the batch makes. drawErr and
// applyErr, when set, are returned from the matching call.
type recordingDevice struct {
	calls      []drawCall
	transforms Transforms
	setCount   int
	applies    int
	passes     int

	drawErr  error
	applyErr error
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{passes: 1}
}

var errInjected = errors.New("injected failure")

func (d *recordingDevice) SetTransforms(t Transforms) {
	d.transforms = t
	d.setCount++
}

func (d *recordingDevice) Effect() Effect { return recordingEffect{d} }

func (d *recordingDevice) DrawPrimitives(t Topology, vs []Vertex) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.calls = append(d.calls, drawCall{
		topology:   t,
		vertices:   append([]Vertex(nil), vs...),
		transforms: d.transforms,
	})
	return nil
}

// positions flattens the recorded vertices of call i into points.
func (d *recordingDevice) positions(i int) []Point {
	pts := make([]Point, len(d.calls[i].vertices))
	for j, v := range d.calls[i].vertices {
		pts[j] = v.Point()
	}
	return pts
}

// totalVertices returns the number of vertices drawn across all calls.
func (d *recordingDevice) totalVertices() int {
	n := 0
	for _, c := range d.calls {
		n += len(c.vertices)
	}
	return n
}

type recordingEffect struct{ d *recordingDevice }

func (e recordingEffect) Passes() []EffectPass {
	passes := make([]EffectPass, e.d.passes)
	for i := range passes {
		passes[i] = recordingPass{e.d}
	}
	return passes
}

type recordingPass struct{ d *recordingDevice }

func (p recordingPass) Apply() error {
	p.d.applies++
	return p.d.applyErr
}
