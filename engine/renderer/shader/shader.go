package shader

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/common"
)

//go:embed assets/mask.wgsl
var maskSource string

//go:embed assets/object.wgsl
var objectSource string

//go:embed assets/transparent.wgsl
var transparentSource string

// shader is the implementation of the Shader interface.
// It holds the WGSL source as an opaque text block alongside explicitly
// declared vertex layouts and bind group layout descriptors. The source is
// never parsed; the declared contracts are the single source of truth for
// pipeline and bind group creation.
type shader struct {
	key                        string
	source                     string
	vertexEntryPoint           string
	fragmentEntryPoint         string
	vertexLayouts              []wgpu.VertexBufferLayout
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
}

// Shader defines the interface for a render shader module. It exposes the
// shader's unique key, WGSL source, entry points, vertex buffer layouts, and
// bind group layout descriptors needed for pipeline creation and resource wiring.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// VertexEntryPoint returns the vertex stage entry point name.
	//
	// Returns:
	//   - string: the vertex entry point (e.g. "vs_main")
	VertexEntryPoint() string

	// FragmentEntryPoint returns the fragment stage entry point name.
	//
	// Returns:
	//   - string: the fragment entry point (e.g. "fs_main")
	FragmentEntryPoint() string

	// VertexLayouts retrieves the declared vertex buffer layouts for this shader.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the vertex buffer layouts in slot order
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptor retrieves the declared bind group layout descriptor
	// for a specific group index.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor for the group, or an empty descriptor if not declared
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors retrieves all declared bind group layout descriptors.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor
}

var _ Shader = &shader{}

// NewShader creates a new Shader instance with all specified options applied.
// The source must be provided via WithSource; entry points default to
// "vs_main" and "fs_main" when not overridden.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - opts: a variadic list of ShaderBuilderOption functions to configure the shader
//
// Returns:
//   - Shader: a new Shader instance with the provided configuration
func NewShader(key string, opts ...ShaderBuilderOption) Shader {
	s := &shader{
		key:                        key,
		bindGroupLayoutDescriptors: make(map[int]wgpu.BindGroupLayoutDescriptor),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == "" {
		panic(fmt.Sprintf("shader: %s must have a source provided via WithSource", key))
	}
	s.vertexEntryPoint = common.Coalesce(s.vertexEntryPoint, "vs_main")
	s.fragmentEntryPoint = common.Coalesce(s.fragmentEntryPoint, "fs_main")
	return s
}

// NewMaskShader returns the stencil mask shader: position-only vertices, a
// camera uniform at group 0 and a model transform at group 1, and a fragment
// stage that emits transparent black. Pair it with a pipeline whose color
// write mask is fully masked off.
//
// Returns:
//   - Shader: the configured mask shader
func NewMaskShader() Shader {
	return NewShader("mask",
		WithSource(maskSource),
		WithVertexLayouts(PositionVertexLayout()),
		WithBindGroupLayoutDescriptor(0, CameraGroupLayout()),
		WithBindGroupLayoutDescriptor(1, TransformGroupLayout()),
	)
}

// NewObjectShader returns the opaque object shader: position and color
// vertex streams with interpolated per-vertex color output.
//
// Returns:
//   - Shader: the configured object shader
func NewObjectShader() Shader {
	return NewShader("object",
		WithSource(objectSource),
		WithVertexLayouts(PositionColorVertexLayout()),
		WithBindGroupLayoutDescriptor(0, CameraGroupLayout()),
		WithBindGroupLayoutDescriptor(1, TransformGroupLayout()),
	)
}

// NewTransparentShader returns the translucent shell shader. Identical
// vertex contract to the object shader; the fragment stage overrides the
// vertex alpha with a fixed translucency factor.
//
// Returns:
//   - Shader: the configured transparent shader
func NewTransparentShader() Shader {
	return NewShader("transparent",
		WithSource(transparentSource),
		WithVertexLayouts(PositionColorVertexLayout()),
		WithBindGroupLayoutDescriptor(0, CameraGroupLayout()),
		WithBindGroupLayoutDescriptor(1, TransformGroupLayout()),
	)
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexEntryPoint() string {
	return s.vertexEntryPoint
}

func (s *shader) FragmentEntryPoint() string {
	return s.fragmentEntryPoint
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}
