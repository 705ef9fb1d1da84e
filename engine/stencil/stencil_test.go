package stencil

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
)

func TestMaskPipelineConfig(t *testing.T) {
	p := NewMaskPipeline(shader.NewMaskShader())

	if p.PipelineKey() != MaskPipelineKey {
		t.Fatalf("pipeline key = %q, want %q", p.PipelineKey(), MaskPipelineKey)
	}
	if p.DepthTestEnabled() {
		t.Error("mask pipeline must not depth test")
	}
	if p.DepthWriteEnabled() {
		t.Error("mask pipeline must not write depth")
	}
	if p.WriteMask() != wgpu.ColorWriteMaskNone {
		t.Errorf("color write mask = %v, want none", p.WriteMask())
	}
	if p.StencilCompare() != wgpu.CompareFunctionAlways {
		t.Errorf("stencil compare = %v, want always", p.StencilCompare())
	}
	if p.StencilPassOp() != wgpu.StencilOperationReplace {
		t.Errorf("stencil pass op = %v, want replace", p.StencilPassOp())
	}
	if p.StencilWriteMask() != 0xFF {
		t.Errorf("stencil write mask = %#x, want 0xFF", p.StencilWriteMask())
	}
}

func TestObjectPipelineConfig(t *testing.T) {
	p := NewObjectPipeline(shader.NewObjectShader())

	if p.PipelineKey() != ObjectPipelineKey {
		t.Fatalf("pipeline key = %q, want %q", p.PipelineKey(), ObjectPipelineKey)
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("object pipeline must depth test and write")
	}
	if p.CullMode() != wgpu.CullModeBack {
		t.Errorf("cull mode = %v, want back", p.CullMode())
	}
	if p.StencilCompare() != wgpu.CompareFunctionEqual {
		t.Errorf("stencil compare = %v, want equal", p.StencilCompare())
	}
	if p.StencilPassOp() != wgpu.StencilOperationKeep {
		t.Errorf("stencil pass op = %v, want keep", p.StencilPassOp())
	}
	if p.StencilWriteMask() != 0 {
		t.Errorf("stencil write mask = %#x, want 0", p.StencilWriteMask())
	}
	if p.BlendEnabled() {
		t.Error("object pipeline must not blend")
	}
}
