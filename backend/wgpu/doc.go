// Package wgpu provides the GPU rendering backend for prim using the
// gogpu/wgpu HAL.
//
// # Architecture Overview
//
// A Device owns an offscreen RGBA8 texture and renders each frame in one
// render pass:
//
//	BeginFrame -> (pass Apply -> DrawPrimitives)* -> EndFrame -> Image
//
// Key components:
//
//   - Backend: entry point implementing backend.RenderBackend
//   - Device: backend.Target recording draw calls into a render pass
//   - pipelineCache: one render pipeline per topology, sharing a shader
//     module and a uniform bind group layout
//   - shaders/prim.wgsl: the vertex/fragment shader, compiled to SPIR-V
//     with naga
//
// Colors are premultiplied when vertices are encoded and blended with
// premultiplied source-over, so the readback image is a valid image.RGBA.
//
// # Device Sharing
//
// A host application that already owns a GPU device (for example a
// gogpu window) passes it in through gpucontext:
//
//	b, err := wgpu.NewFromProvider(app)
//	t, err := b.NewTarget(800, 600)
//
// # Build Tags
//
// The Vulkan HAL is linked in by default. Build with -tags nogpu to leave
// it out; Init then fails unless another HAL backend is registered.
package wgpu
