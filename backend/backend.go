package backend

import (
	"errors"
	"image"

	"github.com/gogpu/prim"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU rasterizer backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the Pure Go WebGPU backend (gogpu/wgpu HAL).
	BackendWGPU = "wgpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrInvalidSize is returned when a target is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("backend: invalid target size")

	// ErrFrameNotStarted is returned when vertices are drawn outside a
	// BeginFrame/EndFrame pair.
	ErrFrameNotStarted = errors.New("backend: frame not started")
)

// RenderBackend creates render targets for prim batches.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before NewTarget.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewTarget creates an offscreen target of the given size.
	NewTarget(width, height int) (Target, error)
}

// Target is a prim.Device that renders into an offscreen image.
//
// Draw calls are only accepted between BeginFrame and EndFrame:
//
//	if err := t.BeginFrame(prim.Black); err != nil {
//		return err
//	}
//	d := prim.NewDrawer(t, prim.WithBatchOptions(prim.WithTransforms(prim.Ortho2D(w, h))))
//	_ = d.Begin()
//	d.DrawCircle(prim.Pt(w/2, h/2), 40, 0, 64, false, prim.Red)
//	_ = d.End()
//	if err := t.EndFrame(); err != nil {
//		return err
//	}
//	img, err := t.Image()
type Target interface {
	prim.Device

	// Size returns the target dimensions in pixels.
	Size() (width, height int)

	// BeginFrame starts a frame and clears the target to c.
	BeginFrame(c prim.RGBA) error

	// EndFrame submits the frame.
	EndFrame() error

	// Image returns a copy of the target contents.
	Image() (*image.RGBA, error)

	// Close releases the target's resources.
	Close()
}
