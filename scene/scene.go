package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"cube-stack/editor"
	"cube-stack/grid"
	"cube-stack/palette"
)

// markerHeight is how many cube levels the cursor column spans.
const markerHeight = 6

// Instance is one cube to draw.
type Instance struct {
	Model  mgl32.Mat4
	Colour palette.RGB
}

// Frame is everything the renderer needs to draw one frame. It is rebuilt
// from the editor every frame and never written back.
type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	World      mgl32.Mat4
	Cubes      []Instance
	Marker     mgl32.Mat4
}

// Build fills f from the editor state, reusing the Cubes backing array.
func (f *Frame) Build(ed *editor.Editor, pal *palette.Palette, v *View) {
	f.Projection = v.Projection()
	f.View = v.Camera()
	f.World = v.World(ed.Angle(), ed.Scale())
	f.Cubes = AppendCubes(f.Cubes[:0], ed.Grid(), pal, f.World)
	x, y := ed.Cursor()
	f.Marker = Marker(x, y, f.World)
}

// AppendCubes appends one instance per stacked cube in g, level by level,
// visiting cells in row-major order.
func AppendCubes(dst []Instance, g *grid.Grid, pal *palette.Palette, world mgl32.Mat4) []Instance {
	g.Each(func(x, y, height, colour int) {
		if height <= 0 {
			return
		}
		c := pal.At(colour)
		for level := 0; level < height; level++ {
			model := world.Mul4(mgl32.Translate3D(float32(x), float32(level), float32(y)))
			dst = append(dst, Instance{Model: model, Colour: c})
		}
	})
	return dst
}

// Marker returns the model matrix of the wireframe column over cell (x, y).
func Marker(x, y int, world mgl32.Mat4) mgl32.Mat4 {
	m := world.Mul4(mgl32.Translate3D(float32(x), 0, float32(y)))
	return m.Mul4(mgl32.Scale3D(1, markerHeight, 1))
}
