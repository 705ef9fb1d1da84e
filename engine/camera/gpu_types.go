package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly: a view matrix at offset 0
// followed by a projection matrix at offset 64. Size: 128 bytes.
type GPUCameraUniform struct {
	View [16]float32 // offset  0: view matrix (mat4x4<f32>)
	Proj [16]float32 // offset 64: projection matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// MarshalView serializes the view matrix into a 64-byte buffer suitable for a
// GPU sub-write at offset 0 of the camera uniform.
//
// Returns:
//   - []byte: the serialized view matrix
func (g *GPUCameraUniform) MarshalView() []byte {
	buf := make([]byte, 64)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	return buf
}

// MarshalProjection serializes the projection matrix into a 64-byte buffer
// suitable for a GPU sub-write at offset 64 of the camera uniform.
//
// Returns:
//   - []byte: the serialized projection matrix
func (g *GPUCameraUniform) MarshalProjection() []byte {
	buf := make([]byte, 64)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Proj[i]))
	}
	return buf
}
