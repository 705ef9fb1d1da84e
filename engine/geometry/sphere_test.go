package geometry

import (
	"math"
	"testing"

	"github.com/m-ridley/glasscube/common"
)

func TestBuildSphereCounts(t *testing.T) {
	tests := []struct {
		name           string
		widthSegments  int
		heightSegments int
		wantW, wantH   int
	}{
		{name: "typical", widthSegments: 16, heightSegments: 12, wantW: 16, wantH: 12},
		{name: "minimum", widthSegments: 3, heightSegments: 2, wantW: 3, wantH: 2},
		{name: "clamped below minimum", widthSegments: 1, heightSegments: 0, wantW: 3, wantH: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := BuildSphere(1, tt.widthSegments, tt.heightSegments, 0, 0, 0, common.Color{A: 1})

			wantVerts := (tt.wantW + 1) * (tt.wantH + 1)
			if got := mesh.VertexCount(); got != wantVerts {
				t.Fatalf("vertex count = %d, want %d", got, wantVerts)
			}
			wantIndices := 6 * tt.wantW * (tt.wantH - 1)
			if got := len(mesh.Indices); got != wantIndices {
				t.Fatalf("index count = %d, want %d", got, wantIndices)
			}
		})
	}
}

func TestBuildSphereRadius(t *testing.T) {
	const radius = 2.5
	mesh := BuildSphere(radius, 8, 6, 1, -2, 3, common.Color{A: 1})

	for v := 0; v < mesh.VertexCount(); v++ {
		x := float64(mesh.Positions[v*3+0] - 1)
		y := float64(mesh.Positions[v*3+1] + 2)
		z := float64(mesh.Positions[v*3+2] - 3)
		dist := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(dist-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %v from center, want %v", v, dist, radius)
		}
	}
}

func TestBuildSphereIndicesInRange(t *testing.T) {
	mesh := BuildSphere(1, 8, 6, 0, 0, 0, common.Color{A: 1})
	limit := uint32(mesh.VertexCount())
	for i, idx := range mesh.Indices {
		if idx >= limit {
			t.Fatalf("index %d = %d, out of range for %d vertices", i, idx, limit)
		}
	}
}

func TestBuildSphereAlphaCarried(t *testing.T) {
	mesh := BuildSphere(1, 4, 3, 0, 0, 0, common.Color{A: 0.4})
	for v := 0; v < mesh.VertexCount(); v++ {
		if got := mesh.Colors[v*4+3]; got != 0.4 {
			t.Fatalf("vertex %d alpha = %v, want 0.4", v, got)
		}
	}
}

func TestGradientColorBands(t *testing.T) {
	tests := []struct {
		name    string
		v       float32
		r, g, b float32
	}{
		{name: "top pole is blue", v: 0, r: 0, g: 0, b: 1},
		{name: "upper band stays blue", v: 0.1, r: 0, g: 0, b: 1},
		{name: "band boundary turns green", v: 0.2, r: 0, g: 1, b: 0},
		{name: "cyan midpoint", v: 0.35, r: 0, g: 1, b: 0.5},
		{name: "green at equator band", v: 0.5, r: 1, g: 1, b: 0},
		{name: "yellow before bottom band", v: 0.8, r: 1, g: 0.5, b: 0},
		{name: "bottom pole is red", v: 1.0, r: 1, g: 0, b: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := gradientColor(tt.v)
			if !near(r, tt.r) || !near(g, tt.g) || !near(b, tt.b) {
				t.Fatalf("gradientColor(%v) = (%v,%v,%v), want (%v,%v,%v)", tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func near(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-5
}
