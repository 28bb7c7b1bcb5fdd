package wgpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

//go:embed shaders/prim.wgsl
var primShaderSource string

var (
	spirvOnce sync.Once
	spirvCode []uint32
	spirvErr  error
)

// compileShader compiles the primitive shader to SPIR-V once per process.
func compileShader() ([]uint32, error) {
	spirvOnce.Do(func() {
		spirvCode, spirvErr = compileToSPIRV(primShaderSource)
	})
	return spirvCode, spirvErr
}

// compileToSPIRV compiles WGSL source to SPIR-V words.
func compileToSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("wgpu: compile shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
