package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/backend"
)

func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return NewBackend()
	})
}

// Backend is a GPU rendering backend on the gogpu/wgpu HAL.
// It implements the backend.RenderBackend interface.
//
// The backend either opens its own device (Init) or borrows one from a
// host application (NewFromProvider). A borrowed device is never
// destroyed by Close.
//
// Backend is safe for concurrent use from multiple goroutines; the
// targets it creates are not.
type Backend struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string
	external bool

	initialized bool
}

// NewBackend creates a new wgpu backend.
// The backend must be initialized with Init() before use.
func NewBackend() *Backend {
	return &Backend{}
}

// NewFromProvider creates an initialized backend that renders on the
// device of a host application, such as a gogpu window. The provider must
// also implement HalDevice() any and HalQueue() any returning hal.Device
// and hal.Queue.
func NewFromProvider(provider gpucontext.DeviceProvider) (*Backend, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrProviderNotHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrProviderNotHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrProviderNotHAL)
	}

	b := &Backend{
		device:      device,
		queue:       queue,
		adapter:     provider.AdapterInfo().Name,
		external:    true,
		initialized: true,
	}
	prim.Logger().Debug("wgpu: using provider device", "adapter", b.adapter, "type", provider.AdapterInfo().Type)
	return b, nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// Adapter returns the name of the GPU adapter in use.
func (b *Backend) Adapter() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.adapter
}

// Init selects the best registered HAL backend, prefers a discrete or
// integrated adapter and opens a device on it.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	halBackend, err := hal.SelectBestBackend()
	if err != nil {
		return fmt.Errorf("wgpu: select backend: %w", err)
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return ErrNoGPU
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	open, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("wgpu: open device: %w", err)
	}

	b.instance = instance
	b.device = open.Device
	b.queue = open.Queue
	b.adapter = selected.Info.Name
	b.initialized = true
	prim.Logger().Debug("wgpu: device opened", "backend", halBackend.Variant(), "adapter", b.adapter)
	return nil
}

// Close releases all backend resources. Targets created by the backend
// must be closed first.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.external && b.device != nil {
		b.device.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
	}
	b.instance = nil
	b.device = nil
	b.queue = nil
	b.initialized = false
}

// NewTarget creates an offscreen target on the backend's device.
func (b *Backend) NewTarget(width, height int) (backend.Target, error) {
	b.mu.Lock()
	device, queue, ok := b.device, b.queue, b.initialized
	b.mu.Unlock()

	if !ok {
		return nil, backend.ErrNotInitialized
	}
	dev, err := NewDevice(device, queue, width, height)
	if err != nil {
		return nil, err
	}
	return dev, nil
}
