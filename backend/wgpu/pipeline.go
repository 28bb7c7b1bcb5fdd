package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/prim"
)

// vertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1), premultiplied
//
// Total = 28 bytes per vertex.
const vertexStride = 28

// uniformSize is one column-major mat4x4<f32>.
const uniformSize = 64

// pipelineCache owns the shader, layouts and one render pipeline per
// topology. Pipelines are created on first use.
type pipelineCache struct {
	device hal.Device
	format gputypes.TextureFormat

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipelines     map[prim.Topology]hal.RenderPipeline
}

func newPipelineCache(device hal.Device, format gputypes.TextureFormat) *pipelineCache {
	return &pipelineCache{
		device:    device,
		format:    format,
		pipelines: make(map[prim.Topology]hal.RenderPipeline),
	}
}

// init creates the shader module and layouts shared by every pipeline.
func (pc *pipelineCache) init() error {
	if pc.shader != nil {
		return nil
	}

	spirv, err := compileShader()
	if err != nil {
		return err
	}
	shader, err := pc.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "prim_shader",
		Source: hal.ShaderSource{WGSL: primShaderSource, SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create shader module: %w", err)
	}
	pc.shader = shader

	uniformLayout, err := pc.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "prim_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		pc.destroy()
		return fmt.Errorf("wgpu: create uniform layout: %w", err)
	}
	pc.uniformLayout = uniformLayout

	pipeLayout, err := pc.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "prim_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{pc.uniformLayout},
	})
	if err != nil {
		pc.destroy()
		return fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}
	pc.pipeLayout = pipeLayout
	return nil
}

// pipeline returns the render pipeline for t, creating it on first use.
func (pc *pipelineCache) pipeline(t prim.Topology) (hal.RenderPipeline, error) {
	if p, ok := pc.pipelines[t]; ok {
		return p, nil
	}
	if err := pc.init(); err != nil {
		return nil, err
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	p, err := pc.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "prim_pipeline_" + t.String(),
		Layout: pc.pipeLayout,
		Vertex: hal.VertexState{
			Module:     pc.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     pc.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    pc.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  t,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		Multisample: gputypes.DefaultMultisampleState(),
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create %v pipeline: %w", t, err)
	}
	prim.Logger().Debug("wgpu: pipeline created", "topology", t)
	pc.pipelines[t] = p
	return p, nil
}

// destroy releases all pipeline resources in reverse creation order.
func (pc *pipelineCache) destroy() {
	for t, p := range pc.pipelines {
		pc.device.DestroyRenderPipeline(p)
		delete(pc.pipelines, t)
	}
	if pc.pipeLayout != nil {
		pc.device.DestroyPipelineLayout(pc.pipeLayout)
		pc.pipeLayout = nil
	}
	if pc.uniformLayout != nil {
		pc.device.DestroyBindGroupLayout(pc.uniformLayout)
		pc.uniformLayout = nil
	}
	if pc.shader != nil {
		pc.device.DestroyShaderModule(pc.shader)
		pc.shader = nil
	}
}

// vertexLayout returns the vertex buffer layout shared by all pipelines.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}
