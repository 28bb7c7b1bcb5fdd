package wgpu

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/backend"
)

// targetFormat is the offscreen color format. It matches image.RGBA so
// readback is a row copy.
const targetFormat = gputypes.TextureFormatRGBA8Unorm

// Device renders prim draw calls into an offscreen texture through the
// WebGPU HAL.
//
// Every draw call gets its own vertex buffer and every effect pass Apply
// its own uniform buffer and bind group, so nothing is rewritten while a
// render pass still references it. Per-frame resources are released in
// EndFrame after the queue drains.
//
// Device is not safe for concurrent use.
type Device struct {
	device hal.Device
	queue  hal.Queue
	width  int
	height int

	pipes *pipelineCache

	target   hal.Texture
	view     hal.TextureView
	readback hal.Buffer
	rowPitch uint32

	transforms prim.Transforms
	effect     *Effect
	frame      *frame
	staging    []byte
	stats      Stats
}

// Stats counts GPU work submitted by a Device.
type Stats struct {
	Frames    int
	DrawCalls int
	Vertices  int
	Uploads   int
}

// frame holds the encoder, the open render pass and the transient
// resources of one BeginFrame/EndFrame pair.
type frame struct {
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
	bound   bool

	buffers    []hal.Buffer
	bindGroups []hal.BindGroup
}

var _ backend.Target = (*Device)(nil)

// NewDevice creates an offscreen target on an already opened HAL device.
// The caller keeps ownership of device and queue.
func NewDevice(device hal.Device, queue hal.Queue, width, height int) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wgpu: %dx%d: %w", width, height, backend.ErrInvalidSize)
	}

	d := &Device{
		device:     device,
		queue:      queue,
		width:      width,
		height:     height,
		pipes:      newPipelineCache(device, targetFormat),
		transforms: prim.IdentityTransforms(),
	}
	d.effect = &Effect{passes: []prim.EffectPass{&pass{d}}}

	if err := d.pipes.init(); err != nil {
		return nil, err
	}
	if err := d.createTarget(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Device) createTarget() error {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "prim_target",
		Size:          hal.Extent3D{Width: uint32(d.width), Height: uint32(d.height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create target texture: %w", err)
	}
	d.target = tex

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "prim_target_view",
		Format:        targetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create target view: %w", err)
	}
	d.view = view

	d.rowPitch = alignedBytesPerRow(d.width)
	rb, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "prim_readback",
		Size:  uint64(d.rowPitch) * uint64(d.height),
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create readback buffer: %w", err)
	}
	d.readback = rb
	return nil
}

// Size returns the target dimensions in pixels.
func (d *Device) Size() (int, int) { return d.width, d.height }

// Stats returns the accumulated device statistics.
func (d *Device) Stats() Stats { return d.stats }

// BeginFrame opens a command encoder and a render pass that clears the
// target to c.
func (d *Device) BeginFrame(c prim.RGBA) error {
	if d.frame != nil {
		return fmt.Errorf("wgpu: frame already started")
	}
	enc, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "prim_frame"})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := enc.BeginEncoding("prim_frame"); err != nil {
		enc.Destroy()
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	p := c.Premultiply()
	rp := enc.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "prim_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       d.view,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: gputypes.Color{R: p.R, G: p.G, B: p.B, A: p.A},
			},
		},
	})
	d.frame = &frame{encoder: enc, pass: rp}
	return nil
}

// EndFrame ends the render pass, copies the target into the readback
// buffer, submits and waits for the queue to drain.
func (d *Device) EndFrame() error {
	f := d.frame
	if f == nil {
		return backend.ErrFrameNotStarted
	}
	d.frame = nil
	defer d.release(f)

	f.pass.End()
	f.encoder.CopyTextureToBuffer(d.target, d.readback, []hal.BufferTextureCopy{
		{
			BufferLayout: hal.ImageDataLayout{BytesPerRow: d.rowPitch, RowsPerImage: uint32(d.height)},
			TextureBase:  hal.ImageCopyTexture{Texture: d.target, Aspect: gputypes.TextureAspectAll},
			Size:         hal.Extent3D{Width: uint32(d.width), Height: uint32(d.height), DepthOrArrayLayers: 1},
		},
	})

	cmd, err := f.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmd)

	if _, err := d.queue.Submit([]hal.CommandBuffer{cmd}); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	if err := d.device.WaitIdle(); err != nil {
		return fmt.Errorf("wgpu: wait idle: %w", err)
	}
	d.stats.Frames++
	return nil
}

// release destroys the transient resources of f.
func (d *Device) release(f *frame) {
	for _, bg := range f.bindGroups {
		d.device.DestroyBindGroup(bg)
	}
	for _, b := range f.buffers {
		d.device.DestroyBuffer(b)
	}
	f.encoder.Destroy()
}

// Image maps the readback buffer and returns a copy of the last frame.
func (d *Device) Image() (*image.RGBA, error) {
	size := uint64(d.rowPitch) * uint64(d.height)
	m, err := d.device.MapBuffer(d.readback, 0, size)
	if err != nil {
		return nil, fmt.Errorf("wgpu: map readback: %w", err)
	}
	defer func() { _ = d.device.UnmapBuffer(d.readback) }()

	src := unsafe.Slice((*byte)(m.Ptr), size)
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	for y := 0; y < d.height; y++ {
		copy(img.Pix[y*img.Stride:(y+1)*img.Stride], src[uint64(y)*uint64(d.rowPitch):])
	}
	return img, nil
}

// Close releases the target and pipelines. The HAL device itself is not
// destroyed.
func (d *Device) Close() {
	if d.frame != nil {
		d.frame.pass.End()
		d.frame.encoder.DiscardEncoding()
		d.release(d.frame)
		d.frame = nil
	}
	if d.readback != nil {
		d.device.DestroyBuffer(d.readback)
		d.readback = nil
	}
	if d.view != nil {
		d.device.DestroyTextureView(d.view)
		d.view = nil
	}
	if d.target != nil {
		d.device.DestroyTexture(d.target)
		d.target = nil
	}
	d.pipes.destroy()
}

// SetTransforms stores the matrices uploaded by the next pass Apply.
func (d *Device) SetTransforms(t prim.Transforms) { d.transforms = t }

// Effect returns the device's single-pass effect.
func (d *Device) Effect() prim.Effect { return d.effect }

// DrawPrimitives uploads vs to a fresh vertex buffer and records one draw.
func (d *Device) DrawPrimitives(t prim.Topology, vs []prim.Vertex) error {
	f := d.frame
	if f == nil {
		return backend.ErrFrameNotStarted
	}
	if !f.bound {
		return fmt.Errorf("wgpu: draw %v: no effect pass applied", t)
	}
	if len(vs) == 0 {
		return nil
	}

	pipeline, err := d.pipes.pipeline(t)
	if err != nil {
		return err
	}

	d.staging = encodeVertices(vs, d.staging)
	buf, err := d.upload("prim_vertices", gputypes.BufferUsageVertex, d.staging)
	if err != nil {
		return err
	}

	f.pass.SetPipeline(pipeline)
	f.pass.SetVertexBuffer(0, buf, 0)
	f.pass.Draw(uint32(len(vs)), 1, 0, 0)

	d.stats.DrawCalls++
	d.stats.Vertices += len(vs)
	return nil
}

// bindTransforms uploads the combined matrix and binds it at group 0.
func (d *Device) bindTransforms() error {
	f := d.frame
	if f == nil {
		return backend.ErrFrameNotStarted
	}
	ub, err := d.upload("prim_uniforms", gputypes.BufferUsageUniform, encodeMatrix(d.transforms.Combined()))
	if err != nil {
		return err
	}
	bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "prim_bind",
		Layout: d.pipes.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: uniformSize}},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create bind group: %w", err)
	}
	f.bindGroups = append(f.bindGroups, bg)
	f.pass.SetBindGroup(0, bg, nil)
	f.bound = true
	return nil
}

// upload creates a buffer holding data and tracks it for release at
// EndFrame.
func (d *Device) upload(label string, usage gputypes.BufferUsage, data []byte) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create %s buffer: %w", label, err)
	}
	d.frame.buffers = append(d.frame.buffers, buf)
	if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
		return nil, fmt.Errorf("wgpu: write %s buffer: %w", label, err)
	}
	d.stats.Uploads++
	return buf, nil
}
