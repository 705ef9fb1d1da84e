package geometry

import (
	"testing"

	"github.com/m-ridley/glasscube/common"
)

func TestBuildFaceQuadIdentityTransform(t *testing.T) {
	identity := make([]float32, 16)
	common.Identity(identity)

	mesh := BuildFaceQuad(2, identity, common.Color{R: 1, A: 1})

	if got := mesh.VertexCount(); got != 4 {
		t.Fatalf("vertex count = %d, want 4", got)
	}
	want := []float32{
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	}
	for i := range want {
		if mesh.Positions[i] != want[i] {
			t.Fatalf("position[%d] = %v, want %v", i, mesh.Positions[i], want[i])
		}
	}
	wantIndices := []uint32{0, 1, 2, 0, 2, 3}
	for i := range wantIndices {
		if mesh.Indices[i] != wantIndices[i] {
			t.Fatalf("index[%d] = %d, want %d", i, mesh.Indices[i], wantIndices[i])
		}
	}
}

func TestBuildFaceQuadBakesTransform(t *testing.T) {
	translation := make([]float32, 16)
	common.Translation(translation, 0, 0, 5)

	mesh := BuildFaceQuad(2, translation, common.Color{A: 1})

	for v := 0; v < mesh.VertexCount(); v++ {
		if got := mesh.Positions[v*3+2]; got != 5 {
			t.Fatalf("vertex %d z = %v, want 5", v, got)
		}
	}
}

func TestBuildFaceQuadFlatColor(t *testing.T) {
	identity := make([]float32, 16)
	common.Identity(identity)

	color := common.Color{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	mesh := BuildFaceQuad(1, identity, color)

	for v := 0; v < 4; v++ {
		got := common.Color{
			R: mesh.Colors[v*4+0],
			G: mesh.Colors[v*4+1],
			B: mesh.Colors[v*4+2],
			A: mesh.Colors[v*4+3],
		}
		if got != color {
			t.Fatalf("vertex %d color = %+v, want %+v", v, got, color)
		}
	}
}
