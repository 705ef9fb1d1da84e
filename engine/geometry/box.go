package geometry

import (
	"github.com/m-ridley/glasscube/common"
)

// BuildBox constructs an axis-aligned box centered at the given position with
// 24 vertices (4 per face, so each face can carry its own color) and 36
// indices. Faces are wound counter-clockwise when viewed from outside.
//
// Each face's color is a fixed permutation of the base color's channels, so a
// single base color yields six visually distinct faces: front keeps (r,g,b),
// back swaps to (g,r,b), top rotates to (b,r,g), bottom zeroes blue, right
// zeroes red, left zeroes green. Alpha is carried through unchanged.
//
// Parameters:
//   - width, height, depth: full extents of the box along x, y, z
//   - px, py, pz: center position of the box
//   - color: the base color whose channel permutations color the faces
//
// Returns:
//   - MeshData: positions, per-vertex colors, and indices for the box
func BuildBox(width, height, depth float32, px, py, pz float32, color common.Color) MeshData {
	hx := width / 2
	hy := height / 2
	hz := depth / 2

	// 4 corners per face, ordered so that indices 0,1,2 / 0,2,3 wind CCW
	// from outside. Face order: front(+z), back(-z), top(+y), bottom(-y),
	// right(+x), left(-x).
	facePositions := [6][12]float32{
		{-hx, -hy, hz, hx, -hy, hz, hx, hy, hz, -hx, hy, hz},
		{hx, -hy, -hz, -hx, -hy, -hz, -hx, hy, -hz, hx, hy, -hz},
		{-hx, hy, hz, hx, hy, hz, hx, hy, -hz, -hx, hy, -hz},
		{-hx, -hy, -hz, hx, -hy, -hz, hx, -hy, hz, -hx, -hy, hz},
		{hx, -hy, hz, hx, -hy, -hz, hx, hy, -hz, hx, hy, hz},
		{-hx, -hy, -hz, -hx, -hy, hz, -hx, hy, hz, -hx, hy, -hz},
	}

	r, g, bl, a := color.R, color.G, color.B, color.A
	faceColors := [6][4]float32{
		{r, g, bl, a},
		{g, r, bl, a},
		{bl, r, g, a},
		{r, g, 0, a},
		{0, g, bl, a},
		{r, 0, bl, a},
	}

	positions := make([]float32, 0, 6*4*3)
	colors := make([]float32, 0, 6*4*4)
	indices := make([]uint32, 0, 6*6)

	for face := 0; face < 6; face++ {
		base := uint32(face * 4)
		for v := 0; v < 4; v++ {
			positions = append(positions,
				facePositions[face][v*3+0]+px,
				facePositions[face][v*3+1]+py,
				facePositions[face][v*3+2]+pz,
			)
			colors = append(colors, faceColors[face][0], faceColors[face][1], faceColors[face][2], faceColors[face][3])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return MeshData{Positions: positions, Colors: colors, Indices: indices}
}
