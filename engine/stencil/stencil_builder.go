package stencil

import "github.com/m-ridley/glasscube/engine/renderer/shader"

// ManagerOption is a functional option used to configure a Manager during construction.
type ManagerOption func(*manager)

// WithMaskShader overrides the shader used by the mask pipeline.
//
// Parameters:
//   - sh: the position-only shader for stencil mask draws
//
// Returns:
//   - ManagerOption: a function that sets the mask shader
func WithMaskShader(sh shader.Shader) ManagerOption {
	return func(m *manager) {
		m.maskShader = sh
	}
}

// WithObjectShader overrides the shader used by the stencil-tested object pipeline.
//
// Parameters:
//   - sh: the position-and-color shader for masked object draws
//
// Returns:
//   - ManagerOption: a function that sets the object shader
func WithObjectShader(sh shader.Shader) ManagerOption {
	return func(m *manager) {
		m.objectShader = sh
	}
}
