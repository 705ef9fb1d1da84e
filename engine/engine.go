package engine

import (
	"log"
	"sync"
	"time"

	"github.com/m-ridley/glasscube/engine/profiler"
	"github.com/m-ridley/glasscube/engine/scene"
	"github.com/m-ridley/glasscube/engine/window"
)

// engine implements the Engine interface.
// Coordinates the render and window threads.
type engine struct {
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	scn scene.Scene

	renderCallback func(elapsed float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// maxConsecutiveDrawFailures is the number of back-to-back failed frames the
// render loop tolerates before shutting down.
const maxConsecutiveDrawFailures = 120

// Engine is the main entry point for the demo.
// It owns the render loop and the window's message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetScene sets the scene rendered each frame, replacing any previous one.
	//
	// Parameters:
	//   - s: the Scene to render
	SetScene(s scene.Scene)

	// Scene returns the scene currently being rendered, or nil if none is set.
	//
	// Returns:
	//   - scene.Scene: the current scene
	Scene() scene.Scene

	// SetRenderCallback registers a function called after each render frame,
	// receiving the elapsed time in seconds since the render loop started.
	//
	// Parameters:
	//   - callback: function to call each render frame
	SetRenderCallback(callback func(elapsed float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the render loop and blocks in the window's message loop
	// until the window closes.
	Run()

	// Quit signals the engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.scn == nil || width == 0 || height == 0 {
				return
			}
			if r := e.scn.Renderer(); r != nil {
				r.Resize(width, height)
			}
			if c := e.scn.Camera(); c != nil {
				c.SetAspect(float32(width) / float32(height))
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals the engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the render and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleRender()
	go e.handleQuit()
}

// handleRender runs the render loop in its own goroutine. Each iteration
// draws the scene at the elapsed time since the loop started, so the cube's
// rotation and the camera's orbit stay continuous regardless of frame rate.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
//
// A failed frame is skipped, not fatal: the surface can be transiently
// outdated while the main thread reconfigures it during a resize. Only an
// unbroken run of maxConsecutiveDrawFailures failures shuts the engine down.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	start := time.Now()
	drawFailures := 0

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			frameStart := time.Now()
			elapsed := float32(frameStart.Sub(start).Seconds())

			if e.scn != nil {
				if err := e.scn.Draw(elapsed); err != nil {
					drawFailures++
					if drawFailures == 1 {
						log.Printf("skipping frame at %.2fs: %v", elapsed, err)
					}
					if drawFailures >= maxConsecutiveDrawFailures {
						log.Printf("%d consecutive frame failures, shutting down: %v", drawFailures, err)
						e.signalQuit()
						return
					}
					time.Sleep(time.Millisecond)
					continue
				}
				drawFailures = 0
			}

			if e.renderCallback != nil {
				e.renderCallback(elapsed)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				if remaining := e.renderFrameLimit - time.Since(frameStart); remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then requests the
// window close so ProcessMessages unblocks.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
	if e.window != nil {
		e.window.RequestClose()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetScene(s scene.Scene) {
	e.scn = s
}

func (e *engine) Scene() scene.Scene {
	return e.scn
}

// SetRenderCallback registers the function called after each render frame.
func (e *engine) SetRenderCallback(callback func(elapsed float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	// Divide in float space so fractional fps values below 1 still yield a
	// valid frame duration.
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
