package geometry

import (
	"fmt"

	"github.com/m-ridley/glasscube/common"
	"github.com/m-ridley/glasscube/engine/renderer"
	"github.com/m-ridley/glasscube/engine/renderer/bind_group_provider"
)

// MeshData is CPU-side mesh data ready for GPU upload: a flat position stream
// (3 floats per vertex), an optional flat color stream (4 floats per vertex),
// and a uint32 index stream.
type MeshData struct {
	Positions []float32
	Colors    []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the position stream.
//
// Returns:
//   - int: the vertex count
func (m MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

// geometry is the implementation of the Geometry interface.
type geometry struct {
	label    string
	provider bind_group_provider.BindGroupProvider
}

// Geometry wraps a mesh's uploaded GPU buffers behind a BindGroupProvider,
// ready to be passed to draw calls.
type Geometry interface {
	// Label returns the debug label for this geometry.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Provider returns the BindGroupProvider holding the uploaded mesh buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	Provider() bind_group_provider.BindGroupProvider

	// IndexCount returns the number of indices uploaded for this geometry.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Release releases the GPU buffers held by this geometry.
	Release()
}

var _ Geometry = &geometry{}

// NewGeometry uploads the given mesh data to the GPU through the renderer and
// returns a Geometry wrapping the resulting buffers. A nil color stream is
// allowed for meshes consumed only by position-only pipelines.
//
// Parameters:
//   - r: the renderer used to create and fill the GPU buffers
//   - label: a debug label for the underlying provider
//   - data: the CPU-side mesh data to upload
//
// Returns:
//   - Geometry: the uploaded geometry
//   - error: an error if the mesh has no positions or indices, or if buffer creation fails
func NewGeometry(r renderer.Renderer, label string, data MeshData) (Geometry, error) {
	if len(data.Positions) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("geometry %q requires positions and indices", label)
	}

	provider := bind_group_provider.NewBindGroupProvider(label)
	err := r.InitMeshBuffers(
		provider,
		common.SliceToBytes(data.Positions),
		common.SliceToBytes(data.Colors),
		common.SliceToBytes(data.Indices),
		len(data.Indices),
	)
	if err != nil {
		return nil, fmt.Errorf("uploading geometry %q: %w", label, err)
	}

	return &geometry{label: label, provider: provider}, nil
}

func (g *geometry) Label() string {
	return g.label
}

func (g *geometry) Provider() bind_group_provider.BindGroupProvider {
	return g.provider
}

func (g *geometry) IndexCount() int {
	return g.provider.IndexCount()
}

func (g *geometry) Release() {
	g.provider.Release()
}
