package scene

import "github.com/go-gl/mathgl/mgl32"

// UnitCube builds a cube with corners at 0 and 1 on every axis, as 12
// triangles over 8 shared corners.
func UnitCube() *Mesh {
	vertices := []Vertex{
		{mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{1, 0, 1}},
		{mgl32.Vec3{1, 1, 1}},
		{mgl32.Vec3{0, 1, 1}},
		{mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{1, 1, 0}},
		{mgl32.Vec3{0, 1, 0}},
	}
	indices := []uint32{
		0, 1, 2, 2, 3, 0, // front
		3, 2, 6, 6, 7, 3, // top
		7, 6, 5, 5, 4, 7, // back
		4, 0, 3, 3, 7, 4, // left
		0, 1, 5, 5, 4, 0, // bottom
		1, 5, 6, 6, 2, 1, // right
	}
	return CreateMeshFromData("Cube", vertices, indices)
}
