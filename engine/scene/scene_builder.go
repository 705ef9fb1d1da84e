package scene

import "github.com/m-ridley/glasscube/common"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithCubeSize sets the edge length of the outer cube in world units.
// The inner solids are sized proportionally. Defaults to 2.0.
//
// Parameters:
//   - size: the cube edge length (minimum values near zero produce degenerate geometry)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCubeSize(size float32) SceneBuilderOption {
	return func(s *scene) {
		s.cubeSize = size
	}
}

// WithRotationSpeed sets the cube's base angular speed in radians per second.
// Defaults to 0.8.
//
// Parameters:
//   - speed: the base angular speed
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRotationSpeed(speed float32) SceneBuilderOption {
	return func(s *scene) {
		s.rotationSpeed = speed
	}
}

// WithBoxColor sets the base color of the inner box. Each face derives its
// own color by permuting the base components.
//
// Parameters:
//   - color: the base box color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBoxColor(color common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.boxColor = color
	}
}

// WithSphereColor sets the inner sphere's color. Only the alpha component is
// used directly; the red, green, and blue components are replaced by the
// latitude gradient.
//
// Parameters:
//   - color: the sphere color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSphereColor(color common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.sphereColor = color
	}
}

// WithShellColor sets the color of the translucent outer shell and the face
// quads. The alpha component controls how strongly the shell tints the
// interior; it should be well below 1.
//
// Parameters:
//   - color: the shell color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShellColor(color common.Color) SceneBuilderOption {
	return func(s *scene) {
		s.shellColor = color
	}
}

// WithSetupWorkers sets the number of worker goroutines used for the parallel
// mesh build during scene construction. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of setup workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSetupWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.setupWorkers = n
	}
}
