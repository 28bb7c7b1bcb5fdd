package software

import (
	"fmt"

	"github.com/gogpu/prim/backend"
)

func init() {
	backend.Register(backend.BackendSoftware, func() backend.RenderBackend {
		return NewBackend()
	})
}

// Backend creates CPU render targets. It has no shared resources, so Init
// and Close only track state.
type Backend struct {
	initialized bool
}

// NewBackend creates a new software backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendSoftware
}

// Init initializes the backend.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *Backend) Close() {
	b.initialized = false
}

// NewTarget creates an offscreen image target.
func (b *Backend) NewTarget(width, height int) (backend.Target, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	dev, err := NewDevice(width, height)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// NewDevice creates a software target without going through the registry.
func NewDevice(width, height int) (*Device, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: %dx%d: %w", width, height, backend.ErrInvalidSize)
	}
	return newDevice(width, height), nil
}
