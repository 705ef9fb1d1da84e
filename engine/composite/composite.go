package composite

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/m-ridley/glasscube/common"
	"github.com/m-ridley/glasscube/engine/geometry"
	"github.com/m-ridley/glasscube/engine/renderer/bind_group_provider"
	"github.com/m-ridley/glasscube/engine/renderer/pipeline"
	"github.com/m-ridley/glasscube/engine/renderer/shader"
)

// TransparentPipelineKey identifies the translucent shell pipeline in the renderer's cache.
const TransparentPipelineKey = "transparent_shell"

// FaceSpec describes one face of the composite cube: the transform that moves
// a unit quad from the XY plane onto the face, the stencil reference value the
// face writes, and which inner solid shows through it.
type FaceSpec struct {
	// Transform places a quad from the XY plane at z=0 onto the face (column-major).
	Transform [16]float32
	// StencilRef is the unique stencil value this face writes, 1 through 6.
	StencilRef uint32
	// SolidIndex selects the inner solid revealed through this face: 0 or 1.
	SolidIndex int
}

// CubeFace pairs a face's uploaded quad mesh with its stencil assignment.
type CubeFace struct {
	Mesh       geometry.Geometry
	StencilRef uint32
	SolidIndex int
}

// FacePlan returns the six face specifications for a cube of the given edge
// length. Faces are ordered front(+z), back(-z), top(+y), bottom(-y),
// right(+x), left(-x); stencil references run 1 through 6 in that order and
// the revealed solid alternates with face parity.
//
// Parameters:
//   - size: the cube edge length
//
// Returns:
//   - [6]FaceSpec: the transform, stencil reference, and solid index per face
func FacePlan(size float32) [6]FaceSpec {
	h := size / 2
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)

	type placement struct {
		rotAxis byte // 'x', 'y', or 0 for identity
		angle   float32
		ox, oy, oz float32
	}
	placements := [6]placement{
		{0, 0, 0, 0, h},          // front(+z)
		{'y', pi, 0, 0, -h},      // back(-z)
		{'x', -halfPi, 0, h, 0},  // top(+y)
		{'x', halfPi, 0, -h, 0},  // bottom(-y)
		{'y', halfPi, h, 0, 0},   // right(+x)
		{'y', -halfPi, -h, 0, 0}, // left(-x)
	}

	var plan [6]FaceSpec
	rot := make([]float32, 16)
	trans := make([]float32, 16)
	for i, p := range placements {
		switch p.rotAxis {
		case 'x':
			common.RotationX(rot, p.angle)
		case 'y':
			common.RotationY(rot, p.angle)
		default:
			common.Identity(rot)
		}
		common.Translation(trans, p.ox, p.oy, p.oz)
		common.Mul4(plan[i].Transform[:], trans, rot)
		plan[i].StencilRef = uint32(i + 1)
		plan[i].SolidIndex = i % 2
	}
	return plan
}

// RotationMatrixAt returns the composite cube's rotation matrix at the given
// elapsed time: rotation around x at half speed, y at full speed, and z at a
// quarter speed, composed as Rx·Ry·Rz. At elapsed 0 this is the identity.
//
// Parameters:
//   - speed: the base angular speed in radians per second
//   - elapsed: seconds since the render loop started
//
// Returns:
//   - [16]float32: the column-major rotation matrix
func RotationMatrixAt(speed, elapsed float32) [16]float32 {
	var out [16]float32
	angle := elapsed * speed
	common.Rotation(out[:], 0.5*angle, angle, 0.25*angle)
	return out
}

// NewTransparentPipeline builds the pipeline configuration for the translucent
// shell: standard alpha blending on both color and alpha components, no
// culling so both sides of each face are visible, and no stencil interaction.
//
// Parameters:
//   - sh: the position-and-color transparent shader
//
// Returns:
//   - pipeline.Pipeline: the configured transparent pipeline
func NewTransparentPipeline(sh shader.Shader) pipeline.Pipeline {
	return pipeline.NewPipeline(TransparentPipelineKey,
		pipeline.WithShader(sh),
		pipeline.WithBlendEnabled(true),
		pipeline.WithBlendState(&wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		}),
		pipeline.WithCullMode(wgpu.CullModeNone),
	)
}

// transparentCube is the implementation of the TransparentCube interface.
type transparentCube struct {
	faces         [6]CubeFace
	shell         geometry.Geometry
	rotationSlot  bind_group_provider.BindGroupProvider
	rotationSpeed float32
}

// TransparentCube is the rotating outer cube: six stencil mask faces, a
// translucent shell, and a shared rotation transform slot that both follow.
type TransparentCube interface {
	// Faces returns the six cube faces with their stencil assignments, in
	// front, back, top, bottom, right, left order.
	//
	// Returns:
	//   - [6]CubeFace: the cube faces
	Faces() [6]CubeFace

	// Shell returns the translucent outer shell geometry.
	//
	// Returns:
	//   - geometry.Geometry: the shell geometry
	Shell() geometry.Geometry

	// RotationProvider returns the transform slot shared by the mask faces
	// and the shell.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the rotation transform slot
	RotationProvider() bind_group_provider.BindGroupProvider

	// RotationAt returns the cube's rotation matrix at the given elapsed time.
	//
	// Parameters:
	//   - elapsed: seconds since the render loop started
	//
	// Returns:
	//   - [16]float32: the column-major rotation matrix
	RotationAt(elapsed float32) [16]float32

	// UpdateRotation stages a single GPU write of the rotation matrix for the
	// given elapsed time into the shared transform slot.
	//
	// Parameters:
	//   - elapsed: seconds since the render loop started
	//
	// Returns:
	//   - bind_group_provider.BufferWrite: the staged transform write
	UpdateRotation(elapsed float32) bind_group_provider.BufferWrite

	// Release releases the GPU resources held by the cube's meshes and
	// rotation slot.
	Release()
}

var _ TransparentCube = &transparentCube{}

// NewTransparentCube assembles a TransparentCube from uploaded face and shell
// geometries and an initialized rotation transform slot. Faces must be in
// front, back, top, bottom, right, left order; stencil references 1 through 6
// and alternating solid indices are assigned positionally.
//
// Parameters:
//   - faces: the six uploaded face quad geometries
//   - shell: the uploaded translucent shell geometry
//   - rotationSlot: the transform slot holding the cube's rotation uniform
//   - options: functional options to configure the cube
//
// Returns:
//   - TransparentCube: the assembled cube
func NewTransparentCube(faces [6]geometry.Geometry, shell geometry.Geometry, rotationSlot bind_group_provider.BindGroupProvider, options ...TransparentCubeOption) TransparentCube {
	c := &transparentCube{
		shell:         shell,
		rotationSlot:  rotationSlot,
		rotationSpeed: 0.8,
	}
	for i, mesh := range faces {
		c.faces[i] = CubeFace{
			Mesh:       mesh,
			StencilRef: uint32(i + 1),
			SolidIndex: i % 2,
		}
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *transparentCube) Faces() [6]CubeFace {
	return c.faces
}

func (c *transparentCube) Shell() geometry.Geometry {
	return c.shell
}

func (c *transparentCube) RotationProvider() bind_group_provider.BindGroupProvider {
	return c.rotationSlot
}

func (c *transparentCube) RotationAt(elapsed float32) [16]float32 {
	return RotationMatrixAt(c.rotationSpeed, elapsed)
}

func (c *transparentCube) UpdateRotation(elapsed float32) bind_group_provider.BufferWrite {
	matrix := c.RotationAt(elapsed)
	return bind_group_provider.BufferWrite{
		Provider: c.rotationSlot,
		Binding:  0,
		Offset:   0,
		Data:     common.SliceToBytes(matrix[:]),
	}
}

func (c *transparentCube) Release() {
	for _, face := range c.faces {
		if face.Mesh != nil {
			face.Mesh.Release()
		}
	}
	if c.shell != nil {
		c.shell.Release()
	}
	if c.rotationSlot != nil {
		c.rotationSlot.Release()
	}
}
