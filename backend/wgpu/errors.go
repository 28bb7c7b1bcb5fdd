package wgpu

import "errors"

// Package errors for the wgpu backend.
var (
	// ErrNilDevice is returned when a nil HAL device or queue is supplied.
	ErrNilDevice = errors.New("wgpu: nil device or queue")

	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("wgpu: no GPU adapter available")

	// ErrProviderNotHAL is returned when a device provider does not expose
	// HAL device and queue handles.
	ErrProviderNotHAL = errors.New("wgpu: provider does not expose HAL types")
)
