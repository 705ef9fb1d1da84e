package shader

import "github.com/cogentcore/webgpu/wgpu"

// CameraUniformSize is the byte size of the camera uniform: a view matrix
// followed by a projection matrix, 64 bytes each.
const CameraUniformSize = 128

// TransformUniformSize is the byte size of a model transform uniform: a
// single 4x4 float32 matrix.
const TransformUniformSize = 64

// CameraGroupLayout returns the bind group layout descriptor for the camera
// uniform at group 0, binding 0. All render shaders in this module share it.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the camera group layout descriptor
func CameraGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: CameraUniformSize,
				},
			},
		},
	}
}

// TransformGroupLayout returns the bind group layout descriptor for the model
// transform uniform at group 1, binding 0.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the transform group layout descriptor
func TransformGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Transform Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: TransformUniformSize,
				},
			},
		},
	}
}

// PositionVertexLayout returns the vertex buffer layouts for shaders that
// consume only a position stream: one buffer of float32x3 positions at
// shader location 0.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the vertex buffer layouts in slot order
func PositionVertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: 3 * 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
	}
}

// PositionColorVertexLayout returns the vertex buffer layouts for shaders
// that consume separate position and color streams: float32x3 positions in
// slot 0 at location 0, float32x4 colors in slot 1 at location 1.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the vertex buffer layouts in slot order
func PositionColorVertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: 3 * 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         0,
					ShaderLocation: 0,
				},
			},
		},
		{
			ArrayStride: 4 * 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x4,
					Offset:         0,
					ShaderLocation: 1,
				},
			},
		},
	}
}
