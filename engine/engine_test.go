package engine

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-ridley/glasscube/engine/camera"
	"github.com/m-ridley/glasscube/engine/composite"
	"github.com/m-ridley/glasscube/engine/renderer"
)

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()

	// Closing an already-closed channel panics, so a double Quit must be
	// absorbed by the sync.Once.
	e.Quit()
	e.Quit()
}

func TestSetRenderFrameLimit(t *testing.T) {
	e := NewEngine().(*engine)

	e.SetRenderFrameLimit(60)
	if e.renderFrameLimit != time.Second/60 {
		t.Fatalf("frame limit = %v, want %v", e.renderFrameLimit, time.Second/60)
	}

	// Fractional fps below 1 must still produce a valid duration.
	e.SetRenderFrameLimit(0.5)
	if e.renderFrameLimit != 2*time.Second {
		t.Fatalf("frame limit at 0.5 fps = %v, want 2s", e.renderFrameLimit)
	}

	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Fatalf("frame limit = %v, want uncapped", e.renderFrameLimit)
	}

	e.SetRenderFrameLimit(-10)
	if e.renderFrameLimit != 0 {
		t.Fatalf("negative fps should uncap, got %v", e.renderFrameLimit)
	}
}

func TestWithRenderFrameLimitFractional(t *testing.T) {
	e := NewEngine(WithRenderFrameLimit(0.25)).(*engine)
	if e.renderFrameLimit != 4*time.Second {
		t.Fatalf("frame limit at 0.25 fps = %v, want 4s", e.renderFrameLimit)
	}
}

func TestSceneAccessors(t *testing.T) {
	e := NewEngine()
	if e.Scene() != nil {
		t.Fatal("new engine should have no scene")
	}
	e.SetScene(nil)
	if e.Scene() != nil {
		t.Fatal("scene should remain nil")
	}
}

// stubScene counts Draw calls and delegates the result to a test-provided func.
type stubScene struct {
	draws atomic.Int64
	draw  func(n int64) error
}

func (s *stubScene) Name() string                  { return "stub" }
func (s *stubScene) Camera() camera.Camera         { return nil }
func (s *stubScene) Renderer() renderer.Renderer   { return nil }
func (s *stubScene) Cube() composite.TransparentCube { return nil }
func (s *stubScene) Release()                      {}

func (s *stubScene) Draw(elapsed float32) error {
	n := s.draws.Add(1)
	if s.draw != nil {
		return s.draw(n)
	}
	return nil
}

func TestRenderLoopSkipsTransientDrawFailures(t *testing.T) {
	st := &stubScene{}
	e := NewEngine(WithScene(st)).(*engine)
	st.draw = func(n int64) error {
		if n <= 5 {
			return errors.New("surface outdated")
		}
		if n >= 20 {
			e.Quit()
		}
		return nil
	}

	e.wg.Add(1)
	go e.handleRender()

	select {
	case <-e.quitChannel:
	case <-time.After(10 * time.Second):
		t.Fatal("render loop stalled")
	}
	e.wg.Wait()

	if got := st.draws.Load(); got < 20 {
		t.Fatalf("loop drew %d frames; failures before frame 20 must not stop it", got)
	}
}

func TestRenderLoopStopsAfterPersistentDrawFailures(t *testing.T) {
	st := &stubScene{}
	st.draw = func(int64) error { return errors.New("device lost") }
	e := NewEngine(WithScene(st)).(*engine)

	e.wg.Add(1)
	go e.handleRender()

	select {
	case <-e.quitChannel:
	case <-time.After(30 * time.Second):
		t.Fatal("render loop never gave up on a dead scene")
	}
	e.wg.Wait()

	if got := st.draws.Load(); got != maxConsecutiveDrawFailures {
		t.Fatalf("loop drew %d frames before quitting, want %d", got, maxConsecutiveDrawFailures)
	}
}
