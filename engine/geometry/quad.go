package geometry

import (
	"github.com/m-ridley/glasscube/common"
)

// BuildFaceQuad constructs a square quad of the given size in the XY plane at
// z=0, baked through the provided transform matrix. The quad has 4 vertices
// and 6 indices wound counter-clockwise toward +z before transformation.
// All vertices share the given flat color.
//
// Parameters:
//   - size: the edge length of the quad
//   - transform: a column-major 4x4 matrix applied to each vertex position
//   - color: the flat color for all four vertices
//
// Returns:
//   - MeshData: positions, per-vertex colors, and indices for the quad
func BuildFaceQuad(size float32, transform []float32, color common.Color) MeshData {
	h := size / 2

	corners := [4][3]float32{
		{-h, -h, 0},
		{h, -h, 0},
		{h, h, 0},
		{-h, h, 0},
	}

	positions := make([]float32, 0, 4*3)
	colors := make([]float32, 0, 4*4)
	for _, corner := range corners {
		x, y, z := common.TransformPoint(transform, corner[0], corner[1], corner[2])
		positions = append(positions, x, y, z)
		colors = append(colors, color.R, color.G, color.B, color.A)
	}

	return MeshData{
		Positions: positions,
		Colors:    colors,
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
}
