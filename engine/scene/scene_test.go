package scene

import (
	"errors"
	"sync"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/engine/camera"
	"github.com/m-ridley/glasscube/engine/composite"
	"github.com/m-ridley/glasscube/engine/geometry"
	"github.com/m-ridley/glasscube/engine/renderer"
	"github.com/m-ridley/glasscube/engine/renderer/bind_group_provider"
	"github.com/m-ridley/glasscube/engine/renderer/pipeline"
	"github.com/m-ridley/glasscube/engine/stencil"
)

func TestNewSceneRequiresCamera(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil camera")
		}
	}()
	_, _ = NewScene("test", nil, nil)
}

func TestMeshSlotLayout(t *testing.T) {
	if meshSlotCount != 9 {
		t.Fatalf("mesh slot count = %d, want 9 (two solids, shell, six faces)", meshSlotCount)
	}
	if meshSlotFaceBase+5 != meshSlotCount-1 {
		t.Fatal("face slots must be the final six build slots")
	}
}

// frameRecorder is a Renderer that records frame lifecycle calls without a GPU.
type frameRecorder struct {
	failBegin     bool
	failDrawCalls bool

	beginCalls   int
	drawCalls    int
	endCalls     int
	presentCalls int
}

var _ renderer.Renderer = &frameRecorder{}

func (f *frameRecorder) Pipeline(key string) pipeline.Pipeline        { return nil }
func (f *frameRecorder) Pipelines() map[string]pipeline.Pipeline      { return nil }
func (f *frameRecorder) RegisterPipelines(p ...pipeline.Pipeline) error { return nil }
func (f *frameRecorder) SetPipeline(key string, p pipeline.Pipeline)  {}
func (f *frameRecorder) SetPipelines(p map[string]pipeline.Pipeline)  {}
func (f *frameRecorder) Resize(width, height int)                     {}
func (f *frameRecorder) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, positionData, colorData, indexData []byte, indexCount int) error {
	return nil
}
func (f *frameRecorder) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return nil
}
func (f *frameRecorder) WriteBuffers(writes []bind_group_provider.BufferWrite) {}

func (f *frameRecorder) BeginFrame() error {
	if f.failBegin {
		return errors.New("surface outdated")
	}
	f.beginCalls++
	return nil
}

func (f *frameRecorder) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, stencilRef uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.drawCalls++
	if f.failDrawCalls {
		return errors.New("pipeline missing")
	}
	return nil
}

func (f *frameRecorder) EndFrame()                               { f.endCalls++ }
func (f *frameRecorder) Present()                                { f.presentCalls++ }
func (f *frameRecorder) SetPresentMode(mode renderer.PresentMode) {}
func (f *frameRecorder) Release()                                {}

type stubGeometry struct {
	provider bind_group_provider.BindGroupProvider
}

func (g *stubGeometry) Label() string { return "stub" }
func (g *stubGeometry) Provider() bind_group_provider.BindGroupProvider {
	return g.provider
}
func (g *stubGeometry) IndexCount() int { return 0 }
func (g *stubGeometry) Release()        {}

func newTestScene(rec *frameRecorder) *scene {
	mesh := func(label string) geometry.Geometry {
		return &stubGeometry{provider: bind_group_provider.NewBindGroupProvider(label)}
	}
	var faces [6]geometry.Geometry
	for i := range faces {
		faces[i] = mesh("face")
	}
	return &scene{
		mu:             &sync.RWMutex{},
		name:           "test",
		cam:            camera.NewCamera(camera.WithController(camera.NewOrbitController())),
		r:              rec,
		stencilMgr:     stencil.NewManager(rec),
		solids:         [2]geometry.Geometry{mesh("box"), mesh("sphere")},
		identitySlot:   bind_group_provider.NewBindGroupProvider("identity"),
		drawBindGroups: make([]bind_group_provider.BindGroupProvider, 0, 2),
		cube:           composite.NewTransparentCube(faces, mesh("shell"), bind_group_provider.NewBindGroupProvider("rotation")),
	}
}

func TestDrawEncodesFullFrame(t *testing.T) {
	rec := &frameRecorder{}
	s := newTestScene(rec)

	if err := s.Draw(1.5); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if rec.drawCalls != 13 {
		t.Fatalf("draw calls = %d, want 13 (6 masks, 6 solids, 1 shell)", rec.drawCalls)
	}
	if rec.beginCalls != 1 || rec.endCalls != 1 || rec.presentCalls != 1 {
		t.Fatalf("begin/end/present = %d/%d/%d, want 1/1/1", rec.beginCalls, rec.endCalls, rec.presentCalls)
	}
}

func TestDrawClosesFrameWhenDrawCallFails(t *testing.T) {
	rec := &frameRecorder{failDrawCalls: true}
	s := newTestScene(rec)

	if err := s.Draw(0); err == nil {
		t.Fatal("expected draw error")
	}
	// The acquired surface must be presented even on a failed frame, or every
	// later BeginFrame is rejected.
	if rec.endCalls != 1 || rec.presentCalls != 1 {
		t.Fatalf("end/present = %d/%d after a failed draw, want 1/1", rec.endCalls, rec.presentCalls)
	}
}

func TestDrawSkipsFrameWhenBeginFails(t *testing.T) {
	rec := &frameRecorder{failBegin: true}
	s := newTestScene(rec)

	if err := s.Draw(0); err == nil {
		t.Fatal("expected begin error")
	}
	if rec.drawCalls != 0 || rec.endCalls != 0 || rec.presentCalls != 0 {
		t.Fatalf("draw/end/present = %d/%d/%d without a frame, want 0/0/0", rec.drawCalls, rec.endCalls, rec.presentCalls)
	}
}
