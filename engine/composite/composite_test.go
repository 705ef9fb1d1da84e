package composite

import (
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/common"
	"github.com/m-ridley/glasscube/engine/geometry"
	"github.com/m-ridley/glasscube/engine/renderer/bind_group_provider"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
)

func TestFacePlanStencilRefsUnique(t *testing.T) {
	plan := FacePlan(2)

	seen := make(map[uint32]bool)
	for i, face := range plan {
		if face.StencilRef < 1 || face.StencilRef > 6 {
			t.Fatalf("face %d stencil ref = %d, want 1-6", i, face.StencilRef)
		}
		if seen[face.StencilRef] {
			t.Fatalf("stencil ref %d assigned twice", face.StencilRef)
		}
		seen[face.StencilRef] = true
	}
}

func TestFacePlanSolidAlternates(t *testing.T) {
	plan := FacePlan(2)
	for i, face := range plan {
		if face.SolidIndex != i%2 {
			t.Fatalf("face %d solid index = %d, want %d", i, face.SolidIndex, i%2)
		}
	}
}

func TestFacePlanCenters(t *testing.T) {
	const size = 3.0
	const h = size / 2
	plan := FacePlan(size)

	wantCenters := [6][3]float32{
		{0, 0, h},  // front
		{0, 0, -h}, // back
		{0, h, 0},  // top
		{0, -h, 0}, // bottom
		{h, 0, 0},  // right
		{-h, 0, 0}, // left
	}
	for i, face := range plan {
		x, y, z := common.TransformPoint(face.Transform[:], 0, 0, 0)
		if !near(x, wantCenters[i][0]) || !near(y, wantCenters[i][1]) || !near(z, wantCenters[i][2]) {
			t.Fatalf("face %d center = (%v,%v,%v), want %v", i, x, y, z, wantCenters[i])
		}
	}
}

func TestFacePlanOrientations(t *testing.T) {
	// A quad's +z normal, rotated by each face transform (direction only,
	// so transform the offset of a point one unit along +z from the origin),
	// must point along the face's outward axis.
	plan := FacePlan(2)

	wantNormals := [6][3]float32{
		{0, 0, 1},  // front
		{0, 0, -1}, // back
		{0, 1, 0},  // top
		{0, -1, 0}, // bottom
		{1, 0, 0},  // right
		{-1, 0, 0}, // left
	}
	for i, face := range plan {
		ox, oy, oz := common.TransformPoint(face.Transform[:], 0, 0, 0)
		tx, ty, tz := common.TransformPoint(face.Transform[:], 0, 0, 1)
		nx, ny, nz := tx-ox, ty-oy, tz-oz
		if !near(nx, wantNormals[i][0]) || !near(ny, wantNormals[i][1]) || !near(nz, wantNormals[i][2]) {
			t.Fatalf("face %d normal = (%v,%v,%v), want %v", i, nx, ny, nz, wantNormals[i])
		}
	}
}

func TestRotationMatrixAtZeroIsIdentity(t *testing.T) {
	got := RotationMatrixAt(0.8, 0)

	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	for i := range identity {
		if !near(got[i], identity[i]) {
			t.Fatalf("element %d = %v, want %v", i, got[i], identity[i])
		}
	}
}

func TestRotationMatrixAtPreservesLength(t *testing.T) {
	m := RotationMatrixAt(0.8, 3.7)

	x, y, z := common.TransformPoint(m[:], 1, 2, 3)
	wantLen := math.Sqrt(1 + 4 + 9)
	gotLen := math.Sqrt(float64(x*x + y*y + z*z))
	if math.Abs(gotLen-wantLen) > 1e-4 {
		t.Fatalf("rotated length = %v, want %v", gotLen, wantLen)
	}
}

func TestTransparentPipelineConfig(t *testing.T) {
	p := NewTransparentPipeline(shader.NewTransparentShader())

	if p.PipelineKey() != TransparentPipelineKey {
		t.Fatalf("pipeline key = %q, want %q", p.PipelineKey(), TransparentPipelineKey)
	}
	if !p.BlendEnabled() {
		t.Error("transparent pipeline must blend")
	}
	if p.CullMode() != wgpu.CullModeNone {
		t.Errorf("cull mode = %v, want none", p.CullMode())
	}
	if p.StencilCompare() != wgpu.CompareFunctionAlways {
		t.Errorf("stencil compare = %v, want always", p.StencilCompare())
	}
	blend := p.BlendState()
	if blend.Color.SrcFactor != wgpu.BlendFactorSrcAlpha || blend.Color.DstFactor != wgpu.BlendFactorOneMinusSrcAlpha {
		t.Errorf("color blend = %+v, want src-alpha over", blend.Color)
	}
}

func TestUpdateRotationWrite(t *testing.T) {
	slot := bind_group_provider.NewBindGroupProvider("rotation_test")
	cube := NewTransparentCube([6]geometry.Geometry{}, nil, slot, WithRotationSpeed(1.0))

	write := cube.UpdateRotation(0)
	if write.Provider != slot {
		t.Error("write must target the rotation slot")
	}
	if write.Binding != 0 || write.Offset != 0 {
		t.Errorf("write binding/offset = %d/%d, want 0/0", write.Binding, write.Offset)
	}
	if len(write.Data) != 64 {
		t.Fatalf("write data = %d bytes, want 64", len(write.Data))
	}
}

func near(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-5
}
