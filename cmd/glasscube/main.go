package main

import (
	"log"
	"math"

	"github.com/m-ridley/glasscube/engine"
	"github.com/m-ridley/glasscube/engine/camera"
	"github.com/m-ridley/glasscube/engine/renderer"
	"github.com/m-ridley/glasscube/engine/scene"
	"github.com/m-ridley/glasscube/engine/window"
)

func main() {
	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("Glass Cube"),
		window.WithWidth(1280),
		window.WithHeight(720),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeVSync),
	)
	if err != nil {
		log.Fatalf("creating renderer: %v", err)
	}

	// ── Camera ──────────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithFov(float32(45.0*math.Pi/180.0)),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithNear(0.1),
		camera.WithFar(100),
		camera.WithController(camera.NewOrbitController(
			camera.WithOrbitRadius(7),
			camera.WithOrbitHeight(3),
			camera.WithOrbitSpeed(0.3),
			camera.WithOrbitTarget(0, 0, 0),
		)),
	)

	// ── Scene ───────────────────────────────────────────────────────────
	sc, err := scene.NewScene("glass_cube", cam, r,
		scene.WithCubeSize(2.0),
		scene.WithRotationSpeed(0.8),
	)
	if err != nil {
		log.Fatalf("creating scene: %v", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
	)

	log.Println("Starting Glass Cube (Escape to quit)")
	eng.Run()

	sc.Release()
	r.Release()
	_ = win.Close()
}
