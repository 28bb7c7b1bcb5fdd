package wgpu

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/backend"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// recorder captures what the Device asks of the HAL.
type recorder struct {
	writes    [][]byte
	submits   int
	pipelines []gputypes.PrimitiveTopology
	draws     []uint32
	binds     int
	clear     gputypes.Color
}

type recordingQueue struct {
	hal.Queue
	rec *recorder
}

func (q *recordingQueue) WriteBuffer(b hal.Buffer, offset uint64, data []byte) error {
	q.rec.writes = append(q.rec.writes, append([]byte(nil), data...))
	return q.Queue.WriteBuffer(b, offset, data)
}

func (q *recordingQueue) Submit(cbs []hal.CommandBuffer) (uint64, error) {
	q.rec.submits++
	return q.Queue.Submit(cbs)
}

type recordingDevice struct {
	hal.Device
	rec *recorder
}

func (d *recordingDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	d.rec.pipelines = append(d.rec.pipelines, desc.Primitive.Topology)
	return d.Device.CreateRenderPipeline(desc)
}

func (d *recordingDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	enc, err := d.Device.CreateCommandEncoder(desc)
	if err != nil {
		return nil, err
	}
	return &recordingEncoder{CommandEncoder: enc, rec: d.rec}, nil
}

type recordingEncoder struct {
	hal.CommandEncoder
	rec *recorder
}

func (e *recordingEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	e.rec.clear = desc.ColorAttachments[0].ClearValue
	return &recordingPass{RenderPassEncoder: e.CommandEncoder.BeginRenderPass(desc), rec: e.rec}
}

type recordingPass struct {
	hal.RenderPassEncoder
	rec *recorder
}

func (p *recordingPass) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	p.rec.binds++
	p.RenderPassEncoder.SetBindGroup(index, group, offsets)
}

func (p *recordingPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.rec.draws = append(p.rec.draws, vertexCount)
	p.RenderPassEncoder.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func newRecordingTarget(t *testing.T, w, h int) (*Device, *recorder) {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)

	rec := &recorder{}
	d, err := NewDevice(&recordingDevice{Device: device, rec: rec}, &recordingQueue{Queue: queue, rec: rec}, w, h)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	t.Cleanup(d.Close)
	return d, rec
}

func float32At(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func TestDeviceFrame(t *testing.T) {
	dev, rec := newRecordingTarget(t, 64, 32)

	if err := dev.BeginFrame(prim.RGBA{R: 1, A: 0.5}); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	if rec.clear != (gputypes.Color{R: 0.5, A: 0.5}) {
		t.Errorf("clear value = %+v, want premultiplied", rec.clear)
	}

	ortho := prim.Ortho2D(64, 32)
	d := prim.NewDrawer(dev, prim.WithBatchOptions(prim.WithTransforms(ortho)))
	if err := d.Begin(); err != nil {
		t.Fatal(err)
	}
	half := prim.RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	if err := d.DrawLine(prim.Pt(1, 2), prim.Pt(3, 4), half); err != nil {
		t.Fatal(err)
	}
	if err := d.DrawSolidRect(prim.Pt(0, 0), prim.Pt(10, 10), prim.Red); err != nil {
		t.Fatal(err)
	}
	if err := d.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := dev.EndFrame(); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}

	if want := []uint32{2, 6}; len(rec.draws) != 2 || rec.draws[0] != want[0] || rec.draws[1] != want[1] {
		t.Errorf("draws = %v, want %v", rec.draws, want)
	}
	if want := []gputypes.PrimitiveTopology{prim.LineList, prim.TriangleList}; len(rec.pipelines) != 2 ||
		rec.pipelines[0] != want[0] || rec.pipelines[1] != want[1] {
		t.Errorf("pipelines = %v, want %v", rec.pipelines, want)
	}
	if rec.binds != 2 {
		t.Errorf("bind groups set = %d, want one per draw", rec.binds)
	}
	if rec.submits != 1 {
		t.Errorf("submits = %d, want 1", rec.submits)
	}

	// uniforms, vertices, uniforms, vertices
	if len(rec.writes) != 4 {
		t.Fatalf("buffer writes = %d, want 4", len(rec.writes))
	}
	uniforms := rec.writes[0]
	if len(uniforms) != uniformSize {
		t.Fatalf("uniform size = %d", len(uniforms))
	}
	m := ortho.Combined()
	// Column-major: element (row 0, col 3) is word 12.
	if float32At(uniforms, 12) != m[3] || float32At(uniforms, 0) != m[0] {
		t.Errorf("uniform matrix not uploaded column-major")
	}

	verts := rec.writes[1]
	if len(verts) != 2*vertexStride {
		t.Fatalf("vertex bytes = %d, want %d", len(verts), 2*vertexStride)
	}
	if x, y := float32At(verts, 0), float32At(verts, 1); x != 1 || y != 2 {
		t.Errorf("first vertex = (%v, %v), want (1, 2)", x, y)
	}
	if r, g, b, a := float32At(verts, 3), float32At(verts, 4), float32At(verts, 5), float32At(verts, 6); r != 0.5 || g != 0.25 || b != 0 || a != 0.5 {
		t.Errorf("first vertex color = (%v %v %v %v), want premultiplied", r, g, b, a)
	}

	s := dev.Stats()
	if s.Frames != 1 || s.DrawCalls != 2 || s.Vertices != 8 || s.Uploads != 4 {
		t.Errorf("stats = %+v", s)
	}
}

func TestDeviceImage(t *testing.T) {
	dev, _ := newRecordingTarget(t, 5, 3)
	if err := dev.BeginFrame(prim.Black); err != nil {
		t.Fatal(err)
	}
	if err := dev.EndFrame(); err != nil {
		t.Fatal(err)
	}
	img, err := dev.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("image bounds = %v, want 5x3", b)
	}
	if dev.rowPitch != 256 {
		t.Errorf("row pitch = %d, want 256", dev.rowPitch)
	}
}

func TestDeviceFrameErrors(t *testing.T) {
	dev, _ := newRecordingTarget(t, 8, 8)

	if err := dev.EndFrame(); !errors.Is(err, backend.ErrFrameNotStarted) {
		t.Errorf("EndFrame without BeginFrame = %v", err)
	}
	if err := dev.DrawPrimitives(prim.PointList, []prim.Vertex{{}}); !errors.Is(err, backend.ErrFrameNotStarted) {
		t.Errorf("DrawPrimitives outside frame = %v", err)
	}

	if err := dev.BeginFrame(prim.Black); err != nil {
		t.Fatal(err)
	}
	if err := dev.BeginFrame(prim.Black); err == nil {
		t.Error("nested BeginFrame should fail")
	}
	if err := dev.DrawPrimitives(prim.PointList, []prim.Vertex{{}}); err == nil {
		t.Error("DrawPrimitives before Apply should fail")
	}
	if err := dev.EndFrame(); err != nil {
		t.Fatal(err)
	}
}

func TestPipelineReuse(t *testing.T) {
	dev, rec := newRecordingTarget(t, 8, 8)
	for frame := 0; frame < 2; frame++ {
		_ = dev.BeginFrame(prim.Black)
		b := prim.NewBatch(dev)
		_ = b.Begin()
		_ = b.AddVertex(prim.V(prim.Pt(0, 0), prim.White), prim.PointList)
		if err := b.End(); err != nil {
			t.Fatal(err)
		}
		_ = dev.EndFrame()
	}
	if len(rec.pipelines) != 1 {
		t.Errorf("pipelines created = %d, want 1 reused across frames", len(rec.pipelines))
	}
}

func TestNewDeviceErrors(t *testing.T) {
	if _, err := NewDevice(nil, nil, 4, 4); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewDevice(nil) = %v, want ErrNilDevice", err)
	}
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()
	if _, err := NewDevice(device, queue, 0, 4); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("NewDevice(0x4) = %v, want ErrInvalidSize", err)
	}
}

func TestEncodeHelpers(t *testing.T) {
	tests := []struct {
		width int
		want  uint32
	}{
		{1, 256},
		{64, 256},
		{65, 512},
		{800, 3328},
	}
	for _, tt := range tests {
		if got := alignedBytesPerRow(tt.width); got != tt.want {
			t.Errorf("alignedBytesPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}

	buf := encodeVertices(make([]prim.Vertex, 3), nil)
	if len(buf) != 3*vertexStride {
		t.Errorf("encoded length = %d", len(buf))
	}
	if again := encodeVertices(make([]prim.Vertex, 1), buf); &again[0] != &buf[0] {
		t.Error("encodeVertices should reuse a large enough buffer")
	}
}
