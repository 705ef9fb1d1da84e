package composite

// TransparentCubeOption is a functional option used to configure a TransparentCube during construction.
type TransparentCubeOption func(*transparentCube)

// WithRotationSpeed sets the cube's base angular speed in radians per second.
// The x and z axes rotate at half and a quarter of this speed respectively.
//
// Parameters:
//   - speed: the base angular speed
//
// Returns:
//   - TransparentCubeOption: a function that sets the rotation speed
func WithRotationSpeed(speed float32) TransparentCubeOption {
	return func(c *transparentCube) {
		c.rotationSpeed = speed
	}
}
