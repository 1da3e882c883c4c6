package scene

import "github.com/go-gl/mathgl/mgl32"

// GridLines builds the floor grid for a dim x dim board as GL_LINES.
//
// Cells occupy [0, dim] on X and Z. The lines run one cell past the board on
// every side, so there are dim+3 lines along each axis spanning [-1, dim+1].
func GridLines(dim int) *Mesh {
	n := dim + 3
	lo, hi := float32(-1), float32(dim+1)

	vertices := make([]Vertex, 0, 4*n)
	indices := make([]uint32, 0, 4*n)

	addLine := func(a, b mgl32.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices, Vertex{Position: a}, Vertex{Position: b})
		indices = append(indices, base, base+1)
	}

	for i := 0; i < n; i++ {
		p := float32(i - 1)
		addLine(mgl32.Vec3{lo, 0, p}, mgl32.Vec3{hi, 0, p}) // parallel to X
		addLine(mgl32.Vec3{p, 0, lo}, mgl32.Vec3{p, 0, hi}) // parallel to Z
	}

	m := CreateMeshFromData("Grid", vertices, indices)
	m.DrawMode = DrawLines
	return m
}
