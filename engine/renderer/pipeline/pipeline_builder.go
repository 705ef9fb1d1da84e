package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithShader sets the render shader for this pipeline.
//
// Parameters:
//   - s: the shader module to use for this pipeline
//
// Returns:
//   - PipelineBuilderOption: a function that sets the shader for this pipeline
func WithShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.sh = s
	}
}

// WithDepthTestEnabled sets whether depth testing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth test enabled state for this pipeline
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether depth writing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth write enabled state for this pipeline
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithBlendEnabled sets whether blending is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether blending should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend enabled state for this pipeline
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithCullMode sets the cull mode for this pipeline.
//
// Parameters:
//   - mode: the cull mode to use for this pipeline (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology for this pipeline.
//
// Parameters:
//   - topology: the primitive topology to use for this pipeline (e.g., wgpu.PrimitiveTopologyTriangleList)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the primitive topology for this pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the front face winding order for this pipeline.
//
// Parameters:
//   - frontFace: the front face to use for this pipeline (e.g., wgpu.FrontFaceCCW, wgpu.FrontFaceCW)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the front face for this pipeline
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets the color write mask for this pipeline.
//
// Parameters:
//   - writeMask: the color write mask to use for this pipeline (e.g., wgpu.ColorWriteMaskAll, wgpu.ColorWriteMaskNone)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the color write mask for this pipeline
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}

// WithBlendState sets the blend state for this pipeline.
//
// Parameters:
//   - blendState: the blend state to use for this pipeline when blending is enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend state for this pipeline
func WithBlendState(blendState *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}

// WithStencilCompare sets the stencil comparison function applied to both
// front and back faces.
//
// Parameters:
//   - compare: the stencil compare function (e.g., wgpu.CompareFunctionAlways, wgpu.CompareFunctionEqual)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the stencil compare function for this pipeline
func WithStencilCompare(compare wgpu.CompareFunction) PipelineBuilderOption {
	return func(p *pipeline) {
		p.stencilCompare = compare
	}
}

// WithStencilPassOp sets the stencil operation applied when both the stencil
// and depth tests pass.
//
// Parameters:
//   - op: the stencil pass operation (e.g., wgpu.StencilOperationKeep, wgpu.StencilOperationReplace)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the stencil pass operation for this pipeline
func WithStencilPassOp(op wgpu.StencilOperation) PipelineBuilderOption {
	return func(p *pipeline) {
		p.stencilPassOp = op
	}
}

// WithStencilReadMask sets the stencil read mask for this pipeline.
//
// Parameters:
//   - mask: the stencil read mask
//
// Returns:
//   - PipelineBuilderOption: a function that sets the stencil read mask for this pipeline
func WithStencilReadMask(mask uint32) PipelineBuilderOption {
	return func(p *pipeline) {
		p.stencilReadMask = mask
	}
}

// WithStencilWriteMask sets the stencil write mask for this pipeline.
// Pass 0 to make the pipeline a pure stencil consumer that never modifies
// the stencil buffer.
//
// Parameters:
//   - mask: the stencil write mask
//
// Returns:
//   - PipelineBuilderOption: a function that sets the stencil write mask for this pipeline
func WithStencilWriteMask(mask uint32) PipelineBuilderOption {
	return func(p *pipeline) {
		p.stencilWriteMask = mask
	}
}
