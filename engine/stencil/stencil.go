package stencil

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/engine/renderer"
	"github.com/m-ridley/glasscube/engine/renderer/bind_group_provider"
	"github.com/m-ridley/glasscube/engine/renderer/pipeline"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
)

const (
	// MaskPipelineKey identifies the stencil mask pipeline in the renderer's cache.
	MaskPipelineKey = "stencil_mask"

	// ObjectPipelineKey identifies the stencil-tested object pipeline in the renderer's cache.
	ObjectPipelineKey = "stencil_object"
)

// manager is the implementation of the Manager interface.
type manager struct {
	renderer renderer.Renderer

	maskShader   shader.Shader
	objectShader shader.Shader
}

// Manager owns the stencil mask and stencil-tested object pipelines.
//
// The mask pipeline writes a reference value into the stencil buffer without
// touching the color or depth buffers. The object pipeline then draws only
// where the stencil buffer equals its reference value. Both draws must happen
// within the same render pass, mask draws first.
type Manager interface {
	// RegisterPipelines creates the mask and object GPU pipelines on the renderer.
	// Must be called once before RenderMask or RenderMasked.
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines() error

	// RenderMask writes the given reference value into the stencil buffer
	// wherever the mesh covers the screen. Color writes are fully masked off
	// and the depth buffer is neither tested nor written.
	//
	// Parameters:
	//   - mesh: the provider holding the mask mesh's position and index buffers
	//   - ref: the stencil reference value to write (1-255)
	//   - bindGroups: bind group providers set on the pass in group order (camera, transform)
	//
	// Returns:
	//   - error: an error if the mask pipeline is not registered
	RenderMask(mesh bind_group_provider.BindGroupProvider, ref uint32, bindGroups []bind_group_provider.BindGroupProvider) error

	// RenderMasked draws the mesh only where the stencil buffer equals the
	// given reference value. Depth testing and writing behave normally and
	// the stencil buffer is left unmodified.
	//
	// Parameters:
	//   - mesh: the provider holding the mesh's position, color, and index buffers
	//   - ref: the stencil reference value to test against
	//   - bindGroups: bind group providers set on the pass in group order (camera, transform)
	//
	// Returns:
	//   - error: an error if the object pipeline is not registered
	RenderMasked(mesh bind_group_provider.BindGroupProvider, ref uint32, bindGroups []bind_group_provider.BindGroupProvider) error
}

var _ Manager = &manager{}

// NewManager creates a stencil Manager bound to the given renderer.
//
// Parameters:
//   - r: the renderer used for pipeline registration and draw calls
//   - options: functional options to configure the manager
//
// Returns:
//   - Manager: the newly created manager
func NewManager(r renderer.Renderer, options ...ManagerOption) Manager {
	m := &manager{
		renderer:     r,
		maskShader:   shader.NewMaskShader(),
		objectShader: shader.NewObjectShader(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// NewMaskPipeline builds the pipeline configuration for stencil mask writes:
// stencil always passes and replaces the buffered value with the draw's
// reference, color writes are masked off entirely, and depth is neither
// tested nor written so masks never occlude each other.
//
// Parameters:
//   - sh: the position-only mask shader
//
// Returns:
//   - pipeline.Pipeline: the configured mask pipeline
func NewMaskPipeline(sh shader.Shader) pipeline.Pipeline {
	return pipeline.NewPipeline(MaskPipelineKey,
		pipeline.WithShader(sh),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithWriteMask(wgpu.ColorWriteMaskNone),
		pipeline.WithStencilCompare(wgpu.CompareFunctionAlways),
		pipeline.WithStencilPassOp(wgpu.StencilOperationReplace),
	)
}

// NewObjectPipeline builds the pipeline configuration for stencil-tested
// opaque objects: fragments pass only where the stencil buffer equals the
// draw's reference value, the stencil buffer itself is never written, and
// back faces are culled.
//
// Parameters:
//   - sh: the position-and-color object shader
//
// Returns:
//   - pipeline.Pipeline: the configured object pipeline
func NewObjectPipeline(sh shader.Shader) pipeline.Pipeline {
	return pipeline.NewPipeline(ObjectPipelineKey,
		pipeline.WithShader(sh),
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithStencilCompare(wgpu.CompareFunctionEqual),
		pipeline.WithStencilPassOp(wgpu.StencilOperationKeep),
		pipeline.WithStencilWriteMask(0),
	)
}

func (m *manager) RegisterPipelines() error {
	return m.renderer.RegisterPipelines(
		NewMaskPipeline(m.maskShader),
		NewObjectPipeline(m.objectShader),
	)
}

func (m *manager) RenderMask(mesh bind_group_provider.BindGroupProvider, ref uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	return m.renderer.DrawCall(MaskPipelineKey, mesh, ref, bindGroups)
}

func (m *manager) RenderMasked(mesh bind_group_provider.BindGroupProvider, ref uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	return m.renderer.DrawCall(ObjectPipelineKey, mesh, ref, bindGroups)
}
