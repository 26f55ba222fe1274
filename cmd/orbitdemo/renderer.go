package main

import (
	"fmt"

	"github.com/Carmen-Shannon/orbit-go/common"
	"github.com/Carmen-Shannon/orbit-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// cubeShaderWGSL renders instanced cubes with a per-vertex color. Group 0
// binding 0 carries the combined view-projection matrix; the model matrix
// arrives as four per-instance vec4 columns.
const cubeShaderWGSL = `
struct Camera {
    viewProj: mat4x4f,
};
@group(0) @binding(0) var<uniform> camera: Camera;

struct VSIn {
    @location(0) position: vec3f,
    @location(1) color: vec3f,
    @location(2) m0: vec4f,
    @location(3) m1: vec4f,
    @location(4) m2: vec4f,
    @location(5) m3: vec4f,
};

struct VSOut {
    @builtin(position) pos: vec4f,
    @location(0) color: vec3f,
};

@vertex
fn vs_main(in: VSIn) -> VSOut {
    let model = mat4x4f(in.m0, in.m1, in.m2, in.m3);
    var out: VSOut;
    out.pos = camera.viewProj * model * vec4f(in.position, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VSOut) -> @location(0) vec4f {
    return vec4f(in.color, 1.0);
}
`

// cubeVertices is a unit cube centered on the origin: position (xyz) followed
// by color (rgb) per vertex, one color per corner.
var cubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 1.0,
}

var cubeIndices = []uint32{
	0, 1, 2, 2, 3, 0, // back
	4, 6, 5, 6, 4, 7, // front
	0, 3, 7, 7, 4, 0, // left
	1, 5, 6, 6, 2, 1, // right
	3, 2, 6, 6, 7, 3, // top
	0, 4, 5, 5, 1, 0, // bottom
}

// cubeRenderer owns the WebGPU resources for the instanced cube grid.
type cubeRenderer struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	depthView     *wgpu.TextureView

	pipeline  *wgpu.RenderPipeline
	bindGroup *wgpu.BindGroup

	uniformBuffer  *wgpu.Buffer
	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	instanceBuffer *wgpu.Buffer

	instanceCount uint32
}

// newCubeRenderer initializes the WebGPU device/surface from the window and
// creates the render pipeline and static buffers for instanceCount cubes.
func newCubeRenderer(win window.Window, instanceCount int) (*cubeRenderer, error) {
	r := &cubeRenderer{
		instance:      wgpu.CreateInstance(nil),
		instanceCount: uint32(instanceCount),
	}

	r.surface = r.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Orbit Demo Device",
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	r.device = device
	r.queue = device.GetQueue()

	if err := r.configure(win.Width(), win.Height()); err != nil {
		return nil, err
	}
	if err := r.initBuffers(); err != nil {
		return nil, err
	}
	if err := r.initPipeline(); err != nil {
		return nil, err
	}
	return r, nil
}

// configure sets up the swapchain and depth texture for the given framebuffer
// size. Called at startup and again on every resize.
func (r *cubeRenderer) configure(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	depthTexture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create depth texture: %w", err)
	}
	r.depthView, err = depthTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create depth view: %w", err)
	}
	return nil
}

// initBuffers uploads the static cube mesh and allocates the uniform and
// per-instance buffers.
func (r *cubeRenderer) initBuffers() error {
	vertexData := common.SliceToBytes(cubeVertices)
	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Cube Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	r.queue.WriteBuffer(buf, 0, vertexData)
	r.vertexBuffer = buf

	indexData := common.SliceToBytes(cubeIndices)
	buf, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Cube Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create index buffer: %w", err)
	}
	r.queue.WriteBuffer(buf, 0, indexData)
	r.indexBuffer = buf

	r.uniformBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  64, // one mat4x4f
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}

	r.instanceBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Instance Buffer",
		Size:  uint64(r.instanceCount) * 64, // one mat4x4f per cube
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create instance buffer: %w", err)
	}
	return nil
}

// initPipeline compiles the WGSL shader and builds the render pipeline and
// camera bind group.
func (r *cubeRenderer) initPipeline() error {
	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "cube_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: cubeShaderWGSL,
		},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}

	bindGroupLayout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Cube Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}

	vertexLayouts := []wgpu.VertexBufferLayout{
		{
			ArrayStride: 24, // vec3f position + vec3f color
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			},
		},
		{
			ArrayStride: 64, // mat4x4f as four vec4f columns
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
			},
		},
	}

	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Cube Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    vertexLayouts,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}

	r.bindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	return nil
}

// frame uploads the camera matrix and instance transforms, then records and
// submits one render pass.
func (r *cubeRenderer) frame(viewProj, instanceData []float32) error {
	r.queue.WriteBuffer(r.uniformBuffer, 0, common.SliceToBytes(viewProj))
	r.queue.WriteBuffer(r.instanceBuffer, 0, common.SliceToBytes(instanceData))

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("create surface view: %w", err)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0.06, G: 0.06, B: 0.08, A: 1.0,
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, r.instanceBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(uint32(len(cubeIndices)), r.instanceCount, 0, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("finish encoder: %w", err)
	}
	r.queue.Submit(commandBuffer)

	r.surface.Present()

	commandBuffer.Release()
	encoder.Release()
	view.Release()
	surfaceTexture.Release()
	return nil
}

// resize reconfigures the swapchain and depth buffer. Safe to call with a
// zero size (minimized window); the frame is skipped instead.
func (r *cubeRenderer) resize(width, height int) {
	_ = r.configure(width, height)
}

// release frees all GPU resources.
func (r *cubeRenderer) release() {
	if r.depthView != nil {
		r.depthView.Release()
	}
	for _, buf := range []*wgpu.Buffer{r.uniformBuffer, r.vertexBuffer, r.indexBuffer, r.instanceBuffer} {
		if buf != nil {
			buf.Release()
		}
	}
	if r.pipeline != nil {
		r.pipeline.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	if r.surface != nil {
		r.surface.Release()
	}
	if r.instance != nil {
		r.instance.Release()
	}
}
