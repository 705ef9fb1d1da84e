package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/m-ridley/glasscube/common"
	"github.com/m-ridley/glasscube/engine/camera"
	"github.com/m-ridley/glasscube/engine/composite"
	"github.com/m-ridley/glasscube/engine/geometry"
	"github.com/m-ridley/glasscube/engine/renderer"
	"github.com/m-ridley/glasscube/engine/renderer/bind_group_provider"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
	"github.com/m-ridley/glasscube/engine/stencil"
)

// scene is the implementation of the Scene interface.
type scene struct {
	mu   *sync.RWMutex
	name string
	cam  camera.Camera
	r    renderer.Renderer

	stencilMgr stencil.Manager
	cube       composite.TransparentCube

	// solids holds the two static inner solids: index 0 is the box, index 1
	// is the sphere. Face parity selects between them.
	solids [2]geometry.Geometry

	// identitySlot is the transform slot shared by both inner solids. It is
	// written once with the identity matrix; the solids never move.
	identitySlot bind_group_provider.BindGroupProvider

	cubeSize      float32
	rotationSpeed float32
	boxColor      common.Color
	sphereColor   common.Color
	shellColor    common.Color

	// setupWorkers sizes the worker pool used for the parallel mesh build
	// during construction.
	setupWorkers int
	setupPool    worker.DynamicWorkerPool

	// drawBindGroups is reused across draw calls within a frame to avoid
	// per-call slice allocations.
	drawBindGroups []bind_group_provider.BindGroupProvider
}

// Scene owns everything the composite cube demo draws: the orbiting camera,
// the rotating stencil-masked cube, and the two inner solids it reveals.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the scene camera
	Camera() camera.Camera

	// Renderer returns the renderer the scene draws with.
	//
	// Returns:
	//   - renderer.Renderer: the scene renderer
	Renderer() renderer.Renderer

	// Cube returns the rotating composite cube.
	//
	// Returns:
	//   - composite.TransparentCube: the composite cube
	Cube() composite.TransparentCube

	// Draw renders one frame at the given elapsed time. The frame runs in a
	// single render pass in a fixed order: the six stencil mask faces write
	// references 1 through 6, the inner solids draw stencil-tested against
	// those references, and the translucent shell blends over the result.
	//
	// Parameters:
	//   - elapsed: seconds since the render loop started
	//
	// Returns:
	//   - error: an error if acquiring the frame or any draw call fails
	Draw(elapsed float32) error

	// Release releases the GPU resources owned by the scene's geometry and
	// transform slots. The renderer itself is released by its owner.
	Release()
}

var _ Scene = &scene{}

// Mesh build slots for the parallel setup phase. The six face quads follow
// the shell slot, one per face in plan order.
const (
	meshSlotBox = iota
	meshSlotSphere
	meshSlotShell
	meshSlotFaceBase
	meshSlotCount = meshSlotFaceBase + 6
)

// NewScene builds a fully initialized scene: it registers the stencil and
// transparent pipelines, constructs all meshes on the CPU in parallel,
// uploads them, and wires the camera and transform uniforms.
//
// Parameters:
//   - name: the scene name, used as a prefix for GPU debug labels
//   - cam: the scene camera; must not be nil
//   - r: the renderer to draw with; must not be nil
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the initialized scene
//   - error: an error if pipeline registration or any GPU upload fails
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) (Scene, error) {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		cam:            cam,
		r:              r,
		cubeSize:       2.0,
		rotationSpeed:  0.8,
		boxColor:       common.Color{R: 0.9, G: 0.45, B: 0.1, A: 1},
		sphereColor:    common.Color{R: 1, G: 1, B: 1, A: 1},
		shellColor:     common.Color{R: 0.6, G: 0.8, B: 1.0, A: 0.25},
		setupWorkers:   max(runtime.NumCPU()-1, 1),
		drawBindGroups: make([]bind_group_provider.BindGroupProvider, 0, 2),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the setup pool after options so WithSetupWorkers can override the default.
	s.setupPool = worker.NewDynamicWorkerPool(s.setupWorkers, 256, 1*time.Second)

	if err := r.InitBindGroup(cam.BindGroupProvider(), shader.CameraGroupLayout(), nil, nil); err != nil {
		return nil, fmt.Errorf("initializing camera bind group: %w", err)
	}

	s.stencilMgr = stencil.NewManager(r)
	if err := s.stencilMgr.RegisterPipelines(); err != nil {
		return nil, fmt.Errorf("registering stencil pipelines: %w", err)
	}
	if err := r.RegisterPipelines(composite.NewTransparentPipeline(shader.NewTransparentShader())); err != nil {
		return nil, fmt.Errorf("registering transparent pipeline: %w", err)
	}

	if err := s.buildGeometry(); err != nil {
		return nil, err
	}
	return s, nil
}

// buildGeometry constructs all nine meshes on the CPU in parallel, uploads
// them, and assembles the composite cube. Each build task writes to its own
// slot, so a WaitGroup barrier is the only synchronization needed.
func (s *scene) buildGeometry() error {
	plan := composite.FacePlan(s.cubeSize)

	innerSize := s.cubeSize * 0.55
	sphereRadius := s.cubeSize * 0.325

	var meshes [meshSlotCount]geometry.MeshData
	builders := [meshSlotCount]func() geometry.MeshData{
		meshSlotBox: func() geometry.MeshData {
			return geometry.BuildBox(innerSize, innerSize, innerSize, 0, 0, 0, s.boxColor)
		},
		meshSlotSphere: func() geometry.MeshData {
			return geometry.BuildSphere(sphereRadius, 32, 16, 0, 0, 0, s.sphereColor)
		},
		meshSlotShell: func() geometry.MeshData {
			return geometry.BuildBox(s.cubeSize, s.cubeSize, s.cubeSize, 0, 0, 0, s.shellColor)
		},
	}
	for i := range plan {
		transform := plan[i].Transform
		builders[meshSlotFaceBase+i] = func() geometry.MeshData {
			return geometry.BuildFaceQuad(s.cubeSize, transform[:], s.shellColor)
		}
	}

	// A WaitGroup provides the barrier since pool.Wait() blocks until workers
	// idle-exit, which is unsuitable for a one-shot setup phase.
	var wg sync.WaitGroup
	for i, build := range builders {
		wg.Add(1)
		slot := i
		buildCap := build
		s.setupPool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()
				meshes[slot] = buildCap()
				return nil, nil
			},
		})
	}
	wg.Wait()

	var err error
	if s.solids[0], err = geometry.NewGeometry(s.r, s.name+"_inner_box", meshes[meshSlotBox]); err != nil {
		return err
	}
	if s.solids[1], err = geometry.NewGeometry(s.r, s.name+"_inner_sphere", meshes[meshSlotSphere]); err != nil {
		return err
	}
	shell, err := geometry.NewGeometry(s.r, s.name+"_shell", meshes[meshSlotShell])
	if err != nil {
		return err
	}
	var faces [6]geometry.Geometry
	for i := range faces {
		faces[i], err = geometry.NewGeometry(s.r, fmt.Sprintf("%s_face_%d", s.name, i), meshes[meshSlotFaceBase+i])
		if err != nil {
			return err
		}
	}

	rotationSlot, err := s.newTransformSlot(s.name + "_cube_rotation")
	if err != nil {
		return err
	}
	if s.identitySlot, err = s.newTransformSlot(s.name + "_solid_transform"); err != nil {
		return err
	}

	// The inner solids are static; their transform is written exactly once.
	identity := make([]float32, 16)
	common.Identity(identity)
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: s.identitySlot,
		Binding:  0,
		Offset:   0,
		Data:     common.SliceToBytes(identity),
	}})

	s.cube = composite.NewTransparentCube(faces, shell, rotationSlot, composite.WithRotationSpeed(s.rotationSpeed))
	return nil
}

// newTransformSlot creates a bind group provider holding a single model
// transform uniform and initializes its GPU buffer and bind group.
func (s *scene) newTransformSlot(label string) (bind_group_provider.BindGroupProvider, error) {
	provider := bind_group_provider.NewBindGroupProvider(label)
	if err := s.r.InitBindGroup(provider, shader.TransformGroupLayout(), nil, nil); err != nil {
		return nil, fmt.Errorf("initializing transform slot %q: %w", label, err)
	}
	return provider, nil
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Cube() composite.TransparentCube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cube
}

func (s *scene) Draw(elapsed float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage all uniform writes for the frame before the render pass opens.
	s.cam.Advance(elapsed)
	writes := s.cam.UniformWrites()
	writes = append(writes, s.cube.UpdateRotation(elapsed))
	s.r.WriteBuffers(writes)

	if err := s.r.BeginFrame(); err != nil {
		return err
	}

	// Once BeginFrame succeeds the pass is always ended and the surface always
	// presented, even when a draw call fails. An open frame would make the
	// backend reject every subsequent BeginFrame.
	err := s.encodePasses()
	s.r.EndFrame()
	s.r.Present()
	return err
}

// encodePasses records the frame's draw calls between BeginFrame and EndFrame.
// Callers hold s.mu.
func (s *scene) encodePasses() error {
	camGroup := s.cam.BindGroupProvider()
	rotationGroups := append(s.drawBindGroups[:0], camGroup, s.cube.RotationProvider())

	// Pass 1: each face quad stamps its stencil reference. Color and depth
	// writes are disabled, so order within this pass does not matter, but the
	// whole pass must precede the masked solids.
	for _, face := range s.cube.Faces() {
		if err := s.stencilMgr.RenderMask(face.Mesh.Provider(), face.StencilRef, rotationGroups); err != nil {
			return fmt.Errorf("mask draw for stencil ref %d: %w", face.StencilRef, err)
		}
	}

	// Pass 2: each inner solid draws only where its face's reference was
	// stamped. Both solids sit at the origin; face parity picks which one
	// shows through.
	staticGroups := []bind_group_provider.BindGroupProvider{camGroup, s.identitySlot}
	for _, face := range s.cube.Faces() {
		if err := s.stencilMgr.RenderMasked(s.solids[face.SolidIndex].Provider(), face.StencilRef, staticGroups); err != nil {
			return fmt.Errorf("masked draw for stencil ref %d: %w", face.StencilRef, err)
		}
	}

	// Pass 3: the translucent shell blends over the composited interior.
	if err := s.r.DrawCall(composite.TransparentPipelineKey, s.cube.Shell().Provider(), 0, rotationGroups); err != nil {
		return fmt.Errorf("shell draw: %w", err)
	}

	return nil
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cube != nil {
		s.cube.Release()
		s.cube = nil
	}
	for i, solid := range s.solids {
		if solid != nil {
			solid.Release()
			s.solids[i] = nil
		}
	}
	if s.identitySlot != nil {
		s.identitySlot.Release()
		s.identitySlot = nil
	}
}
