package scene

import "github.com/go-gl/mathgl/mgl32"

// DrawMode controls the OpenGL primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // gl.TRIANGLES (default)
	DrawLines                     // gl.LINES, pairs of indices form line segments
)

// Vertex is a model-space position. Colour is supplied per draw call.
type Vertex struct {
	Position mgl32.Vec3
}

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	DrawMode DrawMode // defaults to DrawTriangles
}

// CreateMeshFromData builds a Mesh from vertices and indices.
func CreateMeshFromData(name string, vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}
