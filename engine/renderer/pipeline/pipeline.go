package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
)

// pipeline is the implementation of the Pipeline interface.
// It holds the underlying WebGPU render pipeline object plus the depth,
// stencil, blend, and cull configuration used during pipeline creation.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for caching and lookups
	pipelineKey string

	// sh is the render shader module for this pipeline, required to be set before registration.
	sh shader.Shader

	// renderPipeline is the GPU pipeline created during registration, nil until then
	renderPipeline *wgpu.RenderPipeline

	// The following properties configure the pipeline during creation and can be toggled/set with the builder options.

	depthTestEnabled  bool
	depthWriteEnabled bool
	blendEnabled      bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask
	blendState        *wgpu.BlendState

	stencilCompare   wgpu.CompareFunction
	stencilPassOp    wgpu.StencilOperation
	stencilReadMask  uint32
	stencilWriteMask uint32
}

// Pipeline defines the interface for a GPU render pipeline. It holds all
// configuration state required for pipeline creation including depth,
// stencil, blend, cull, and topology settings.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the render shader associated with this pipeline.
	//
	// Returns:
	//   - shader.Shader: the shader module, or nil if not set
	Shader() shader.Shader

	// Pipeline returns the underlying GPU render pipeline object.
	// Returns nil until the pipeline has been registered with a renderer.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the GPU pipeline object or nil
	Pipeline() *wgpu.RenderPipeline

	// DepthTestEnabled returns whether depth testing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth testing is enabled, false otherwise
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether depth writing is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if depth writing is enabled, false otherwise
	DepthWriteEnabled() bool

	// BlendEnabled returns whether blending is enabled for this pipeline.
	//
	// Returns:
	//   - bool: true if blending is enabled, false otherwise
	BlendEnabled() bool

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode for this pipeline (e.g., wgpu.CullModeNone, wgpu.CullModeBack)
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline (e.g., wgpu.PrimitiveTopologyTriangleList)
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order (e.g., wgpu.FrontFaceCCW)
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask (e.g., wgpu.ColorWriteMaskAll, wgpu.ColorWriteMaskNone)
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state configured for this pipeline.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state used when blending is enabled
	BlendState() *wgpu.BlendState

	// StencilCompare returns the stencil comparison function applied to both
	// front and back faces.
	//
	// Returns:
	//   - wgpu.CompareFunction: the stencil compare function (e.g., wgpu.CompareFunctionAlways, wgpu.CompareFunctionEqual)
	StencilCompare() wgpu.CompareFunction

	// StencilPassOp returns the stencil operation applied when both the
	// stencil and depth tests pass.
	//
	// Returns:
	//   - wgpu.StencilOperation: the pass operation (e.g., wgpu.StencilOperationKeep, wgpu.StencilOperationReplace)
	StencilPassOp() wgpu.StencilOperation

	// StencilReadMask returns the stencil read mask for this pipeline.
	//
	// Returns:
	//   - uint32: the stencil read mask
	StencilReadMask() uint32

	// StencilWriteMask returns the stencil write mask for this pipeline.
	// A write mask of 0 makes the pipeline a pure stencil consumer.
	//
	// Returns:
	//   - uint32: the stencil write mask
	StencilWriteMask() uint32

	// SetRenderPipeline sets the GPU render pipeline after registration.
	//
	// Parameters:
	//   - p: the WebGPU render pipeline to set
	SetRenderPipeline(p *wgpu.RenderPipeline)
}

var _ Pipeline = &pipeline{}

// NewPipeline is the entry point to create a new Pipeline interface.
// Defaults: depth test and write enabled, no blending, no culling, triangle
// list topology, CCW front face, full color write mask, stencil always/keep
// with full read and write masks.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified configuration
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		blendEnabled:      false,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
		blendState: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
		stencilCompare:   wgpu.CompareFunctionAlways,
		stencilPassOp:    wgpu.StencilOperationKeep,
		stencilReadMask:  0xFF,
		stencilWriteMask: 0xFF,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader() shader.Shader {
	return p.sh
}

func (p *pipeline) Pipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) StencilCompare() wgpu.CompareFunction {
	return p.stencilCompare
}

func (p *pipeline) StencilPassOp() wgpu.StencilOperation {
	return p.stencilPassOp
}

func (p *pipeline) StencilReadMask() uint32 {
	return p.stencilReadMask
}

func (p *pipeline) StencilWriteMask() uint32 {
	return p.stencilWriteMask
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}
