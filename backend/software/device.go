package software

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/backend"
)

// lineWidth is the width in pixels lines and points are widened to.
const lineWidth = 1

// Device rasterizes prim draw calls into an *image.RGBA.
//
// Device is not safe for concurrent use.
type Device struct {
	img *image.RGBA
	ras *vector.Rasterizer

	transforms prim.Transforms
	// mvp is the matrix uploaded by the last pass Apply.
	mvp   f32.Mat4
	bound bool

	inFrame bool
	effect  *Effect
	stats   Stats
}

// Stats counts the work a software device performed.
type Stats struct {
	DrawCalls  int
	Primitives int
	Culled     int
}

var _ backend.Target = (*Device)(nil)

func newDevice(width, height int) *Device {
	d := &Device{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:        vector.NewRasterizer(0, 0),
		transforms: prim.IdentityTransforms(),
	}
	d.ras.DrawOp = draw.Over
	d.effect = &Effect{passes: []prim.EffectPass{&pass{d}}}
	return d
}

// Size returns the target dimensions in pixels.
func (d *Device) Size() (int, int) {
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

// BeginFrame starts a frame and clears the target to c.
func (d *Device) BeginFrame(c prim.RGBA) error {
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
	d.inFrame = true
	d.bound = false
	return nil
}

// EndFrame finishes the frame. Rendering is synchronous, so there is
// nothing to submit.
func (d *Device) EndFrame() error {
	if !d.inFrame {
		return backend.ErrFrameNotStarted
	}
	d.inFrame = false
	return nil
}

// Image returns a copy of the target contents.
func (d *Device) Image() (*image.RGBA, error) {
	out := image.NewRGBA(d.img.Bounds())
	copy(out.Pix, d.img.Pix)
	return out, nil
}

// RGBA returns the live target image. It is valid until Close.
func (d *Device) RGBA() *image.RGBA { return d.img }

// Stats returns the accumulated device statistics.
func (d *Device) Stats() Stats { return d.stats }

// Close releases the target image.
func (d *Device) Close() {
	d.img = image.NewRGBA(image.Rectangle{})
	d.inFrame = false
}

// SetTransforms stores the matrices; they take effect at the next pass
// Apply, the same way a GPU device uploads uniforms.
func (d *Device) SetTransforms(t prim.Transforms) {
	d.transforms = t
}

// Effect returns the device's single-pass effect.
func (d *Device) Effect() prim.Effect { return d.effect }

// DrawPrimitives rasterizes one draw call.
func (d *Device) DrawPrimitives(t prim.Topology, vs []prim.Vertex) error {
	if !d.inFrame {
		return backend.ErrFrameNotStarted
	}
	if !d.bound {
		return fmt.Errorf("software: draw %v: no effect pass applied", t)
	}
	d.stats.DrawCalls++

	switch t {
	case prim.TriangleList:
		for i := 0; i+2 < len(vs); i += 3 {
			d.fill(vs[i].Color, d.project(vs[i]), d.project(vs[i+1]), d.project(vs[i+2]))
		}
	case prim.LineList:
		for i := 0; i+1 < len(vs); i += 2 {
			d.line(vs[i].Color, d.project(vs[i]), d.project(vs[i+1]))
		}
	case prim.LineStrip:
		for i := 0; i+1 < len(vs); i++ {
			d.line(vs[i].Color, d.project(vs[i]), d.project(vs[i+1]))
		}
	case prim.PointList:
		for _, v := range vs {
			d.point(v.Color, d.project(v))
		}
	default:
		return fmt.Errorf("software: unsupported topology %v", t)
	}
	return nil
}

// project maps a vertex to pixel coordinates.
func (d *Device) project(v prim.Vertex) f32.Vec2 {
	c := prim.Apply(d.mvp, v.Position)
	if c[3] != 0 && c[3] != 1 {
		c[0] /= c[3]
		c[1] /= c[3]
	}
	w, h := d.Size()
	return f32.Vec2{
		(c[0] + 1) / 2 * float32(w),
		(1 - c[1]) / 2 * float32(h),
	}
}

func (d *Device) line(c prim.RGBA, a, b f32.Vec2) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length < 1e-6 {
		d.point(c, a)
		return
	}
	// Half-width normal.
	nx := -dy / length * lineWidth / 2
	ny := dx / length * lineWidth / 2
	d.fill(c,
		f32.Vec2{a[0] + nx, a[1] + ny},
		f32.Vec2{b[0] + nx, b[1] + ny},
		f32.Vec2{b[0] - nx, b[1] - ny},
		f32.Vec2{a[0] - nx, a[1] - ny},
	)
}

func (d *Device) point(c prim.RGBA, p f32.Vec2) {
	const hs = lineWidth / 2.0
	d.fill(c,
		f32.Vec2{p[0] - hs, p[1] - hs},
		f32.Vec2{p[0] + hs, p[1] - hs},
		f32.Vec2{p[0] + hs, p[1] + hs},
		f32.Vec2{p[0] - hs, p[1] + hs},
	)
}

// fill rasterizes the closed polygon pts. The rasterizer is sized to the
// polygon's pixel bounds so a small primitive only touches its own pixels.
func (d *Device) fill(c prim.RGBA, pts ...f32.Vec2) {
	minX, minY := pts[0][0], pts[0][1]
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	).Intersect(d.img.Bounds())
	if r.Empty() {
		d.stats.Culled++
		return
	}
	d.stats.Primitives++

	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	d.ras.Reset(r.Dx(), r.Dy())
	d.ras.DrawOp = draw.Over
	d.ras.MoveTo(pts[0][0]-ox, pts[0][1]-oy)
	for _, p := range pts[1:] {
		d.ras.LineTo(p[0]-ox, p[1]-oy)
	}
	d.ras.ClosePath()
	d.ras.Draw(d.img, r, image.NewUniform(c.Color()), image.Point{})
}
