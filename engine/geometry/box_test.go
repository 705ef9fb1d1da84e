package geometry

import (
	"math"
	"testing"

	"github.com/m-ridley/glasscube/common"
)

func TestBuildBoxCounts(t *testing.T) {
	mesh := BuildBox(2, 2, 2, 0, 0, 0, common.Color{R: 1, G: 0.5, B: 0.25, A: 1})

	if got := mesh.VertexCount(); got != 24 {
		t.Fatalf("vertex count = %d, want 24", got)
	}
	if got := len(mesh.Colors); got != 24*4 {
		t.Fatalf("color floats = %d, want %d", got, 24*4)
	}
	if got := len(mesh.Indices); got != 36 {
		t.Fatalf("index count = %d, want 36", got)
	}
}

func TestBuildBoxIndicesInRange(t *testing.T) {
	mesh := BuildBox(1, 2, 3, 0, 0, 0, common.Color{A: 1})
	for i, idx := range mesh.Indices {
		if idx >= 24 {
			t.Fatalf("index %d = %d, out of range for 24 vertices", i, idx)
		}
	}
}

func TestBuildBoxExtents(t *testing.T) {
	tests := []struct {
		name                string
		width, height, depth float32
		px, py, pz           float32
	}{
		{name: "unit cube at origin", width: 1, height: 1, depth: 1},
		{name: "stretched box", width: 4, height: 2, depth: 6},
		{name: "offset box", width: 2, height: 2, depth: 2, px: 1, py: -2, pz: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := BuildBox(tt.width, tt.height, tt.depth, tt.px, tt.py, tt.pz, common.Color{A: 1})
			for v := 0; v < mesh.VertexCount(); v++ {
				x := mesh.Positions[v*3+0] - tt.px
				y := mesh.Positions[v*3+1] - tt.py
				z := mesh.Positions[v*3+2] - tt.pz
				if abs(x) != tt.width/2 || abs(y) != tt.height/2 || abs(z) != tt.depth/2 {
					t.Fatalf("vertex %d at (%v,%v,%v), want corners at half extents (%v,%v,%v)",
						v, x, y, z, tt.width/2, tt.height/2, tt.depth/2)
				}
			}
		})
	}
}

func TestBuildBoxFaceColorPermutations(t *testing.T) {
	base := common.Color{R: 0.1, G: 0.2, B: 0.3, A: 0.9}
	mesh := BuildBox(2, 2, 2, 0, 0, 0, base)

	want := [6][4]float32{
		{0.1, 0.2, 0.3, 0.9}, // front
		{0.2, 0.1, 0.3, 0.9}, // back
		{0.3, 0.1, 0.2, 0.9}, // top
		{0.1, 0.2, 0, 0.9},   // bottom
		{0, 0.2, 0.3, 0.9},   // right
		{0.1, 0, 0.3, 0.9},   // left
	}
	for face := 0; face < 6; face++ {
		for v := 0; v < 4; v++ {
			off := (face*4 + v) * 4
			got := [4]float32{mesh.Colors[off], mesh.Colors[off+1], mesh.Colors[off+2], mesh.Colors[off+3]}
			if got != want[face] {
				t.Fatalf("face %d vertex %d color = %v, want %v", face, v, got, want[face])
			}
		}
	}
}

func TestBuildBoxWindingCCW(t *testing.T) {
	// Every triangle's normal must point away from the box center.
	mesh := BuildBox(2, 2, 2, 0, 0, 0, common.Color{A: 1})
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := vertexAt(mesh, mesh.Indices[i])
		b := vertexAt(mesh, mesh.Indices[i+1])
		c := vertexAt(mesh, mesh.Indices[i+2])

		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		normal := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		centroid := [3]float32{
			(a[0] + b[0] + c[0]) / 3,
			(a[1] + b[1] + c[1]) / 3,
			(a[2] + b[2] + c[2]) / 3,
		}
		dot := normal[0]*centroid[0] + normal[1]*centroid[1] + normal[2]*centroid[2]
		if dot <= 0 {
			t.Fatalf("triangle %d winds inward (normal·centroid = %v)", i/3, dot)
		}
	}
}

func vertexAt(mesh MeshData, idx uint32) [3]float32 {
	return [3]float32{
		mesh.Positions[idx*3+0],
		mesh.Positions[idx*3+1],
		mesh.Positions[idx*3+2],
	}
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
