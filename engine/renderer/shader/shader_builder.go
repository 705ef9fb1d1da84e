package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithSource sets the WGSL source code for this shader.
// The source is treated as an opaque text block and is never parsed.
//
// Parameters:
//   - source: the WGSL source code
//
// Returns:
//   - ShaderBuilderOption: a function that sets the source for this shader
func WithSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.source = source
	}
}

// WithVertexEntryPoint overrides the vertex stage entry point name.
//
// Parameters:
//   - entryPoint: the vertex entry point name (defaults to "vs_main")
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex entry point
func WithVertexEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexEntryPoint = entryPoint
	}
}

// WithFragmentEntryPoint overrides the fragment stage entry point name.
//
// Parameters:
//   - entryPoint: the fragment entry point name (defaults to "fs_main")
//
// Returns:
//   - ShaderBuilderOption: a function that sets the fragment entry point
func WithFragmentEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.fragmentEntryPoint = entryPoint
	}
}

// WithVertexLayouts declares the vertex buffer layouts this shader consumes,
// in vertex buffer slot order.
//
// Parameters:
//   - layouts: the vertex buffer layouts
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts
func WithVertexLayouts(layouts []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}

// WithBindGroupLayoutDescriptor declares the bind group layout for a specific
// group index.
//
// Parameters:
//   - group: the bind group index
//   - descriptor: the bind group layout descriptor
//
// Returns:
//   - ShaderBuilderOption: a function that sets the descriptor for the group
func WithBindGroupLayoutDescriptor(group int, descriptor wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = descriptor
	}
}
