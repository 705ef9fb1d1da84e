// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Color is an RGBA color with float32 components in the [0, 1] range.
// Alpha carries through to the GPU untouched; blending behavior is decided
// by the pipeline, not the color value.
type Color struct {
	R, G, B, A float32
}

// Array returns the color as a flat [4]float32 in RGBA order, matching the
// float32x4 vertex attribute layout used by the render pipelines.
//
// Returns:
//   - [4]float32: the color components in RGBA order
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// WithAlpha returns a copy of the color with the alpha channel replaced.
//
// Parameters:
//   - a: the new alpha value
//
// Returns:
//   - Color: the color with the replaced alpha
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}
