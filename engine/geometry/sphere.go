package geometry

import (
	"math"

	"github.com/m-ridley/glasscube/common"
)

// BuildSphere constructs a UV sphere centered at the given position.
// Width segments are clamped to a minimum of 3 and height segments to a
// minimum of 2. The pole rows share the full segment count of vertices so the
// grid stays rectangular; degenerate triangles at the poles are skipped.
//
// Vertex colors form a latitude gradient from blue at the top through cyan
// and green to orange at the bottom. Alpha is taken from the input color.
//
// Parameters:
//   - radius: the sphere radius
//   - widthSegments: longitudinal segment count (minimum 3)
//   - heightSegments: latitudinal segment count (minimum 2)
//   - px, py, pz: center position of the sphere
//   - color: source of the alpha channel for the gradient colors
//
// Returns:
//   - MeshData: positions, per-vertex colors, and indices for the sphere
func BuildSphere(radius float32, widthSegments, heightSegments int, px, py, pz float32, color common.Color) MeshData {
	w := widthSegments
	if w < 3 {
		w = 3
	}
	h := heightSegments
	if h < 2 {
		h = 2
	}

	vertexCount := (w + 1) * (h + 1)
	positions := make([]float32, 0, vertexCount*3)
	colors := make([]float32, 0, vertexCount*4)

	for iy := 0; iy <= h; iy++ {
		v := float32(iy) / float32(h)
		theta := float64(v) * math.Pi
		for ix := 0; ix <= w; ix++ {
			u := float32(ix) / float32(w)
			phi := float64(u) * 2 * math.Pi

			x := radius * float32(math.Sin(theta)*math.Cos(phi))
			y := radius * float32(math.Cos(theta))
			z := radius * float32(math.Sin(theta)*math.Sin(phi))
			positions = append(positions, x+px, y+py, z+pz)

			cr, cg, cb := gradientColor(v)
			colors = append(colors, cr, cg, cb, color.A)
		}
	}

	indices := make([]uint32, 0, 6*w*(h-1))
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			a := uint32(iy*(w+1) + ix + 1)
			b := uint32(iy*(w+1) + ix)
			c := uint32((iy+1)*(w+1) + ix)
			d := uint32((iy+1)*(w+1) + ix + 1)

			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != h-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return MeshData{Positions: positions, Colors: colors, Indices: indices}
}

// gradientColor maps a latitude parameter v in [0,1] (0 = top pole) to the
// sphere's banded gradient: blue, blue-to-cyan, cyan-to-yellow-green, then
// yellow-to-orange at the bottom.
func gradientColor(v float32) (r, g, b float32) {
	switch {
	case v < 0.2:
		return 0, 0, 1
	case v < 0.5:
		t := (v - 0.2) / 0.3
		return 0, 1, t
	case v < 0.8:
		t := (v - 0.5) / 0.3
		return 1 - t, 1, 0
	default:
		t := (v - 0.8) / 0.2
		return 1, 0.5 * (1 - t), 0
	}
}
