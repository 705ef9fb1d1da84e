package camera

import (
	"math"
	"sync"
)

// orbitController is the implementation of the CameraController interface.
// It moves the camera along a horizontal circle around a fixed target point,
// at a constant height, advancing with elapsed time.
type orbitController struct {
	mu *sync.Mutex

	radius  float32
	height  float32
	speed   float32 // radians per second
	target  [3]float32
	elapsed float32
}

// CameraController drives the camera's position and look target over time.
type CameraController interface {
	// Advance updates the controller's state to the given elapsed time.
	//
	// Parameters:
	//   - elapsed: seconds since the render loop started
	Advance(elapsed float32)

	// Position returns the current world-space camera position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)
}

var _ CameraController = &orbitController{}

// NewOrbitController creates a CameraController that circles the target at a
// fixed radius and height. Defaults: radius 7, height 3, speed 0.3 rad/s,
// target at the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created orbit controller
func NewOrbitController(options ...OrbitControllerOption) CameraController {
	c := &orbitController{
		mu:     &sync.Mutex{},
		radius: 7.0,
		height: 3.0,
		speed:  0.3,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *orbitController) Advance(elapsed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = elapsed
}

func (c *orbitController) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	angle := float64(c.elapsed * c.speed)
	x = float32(math.Sin(angle))*c.radius + c.target[0]
	y = c.height + c.target[1]
	z = float32(math.Cos(angle))*c.radius + c.target[2]
	return x, y, z
}

func (c *orbitController) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

// OrbitControllerOption is a functional option used to configure an orbit controller during construction.
type OrbitControllerOption func(*orbitController)

// WithOrbitRadius sets the horizontal distance from the target.
//
// Parameters:
//   - radius: the orbit radius
//
// Returns:
//   - OrbitControllerOption: a function that sets the orbit radius
func WithOrbitRadius(radius float32) OrbitControllerOption {
	return func(c *orbitController) {
		c.radius = radius
	}
}

// WithOrbitHeight sets the fixed camera height above the target plane.
//
// Parameters:
//   - height: the camera height
//
// Returns:
//   - OrbitControllerOption: a function that sets the orbit height
func WithOrbitHeight(height float32) OrbitControllerOption {
	return func(c *orbitController) {
		c.height = height
	}
}

// WithOrbitSpeed sets the angular speed of the orbit in radians per second.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - OrbitControllerOption: a function that sets the orbit speed
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(c *orbitController) {
		c.speed = speed
	}
}

// WithOrbitTarget sets the world-space point the camera circles and looks at.
//
// Parameters:
//   - x, y, z: target components
//
// Returns:
//   - OrbitControllerOption: a function that sets the orbit target
func WithOrbitTarget(x, y, z float32) OrbitControllerOption {
	return func(c *orbitController) {
		c.target = [3]float32{x, y, z}
	}
}
