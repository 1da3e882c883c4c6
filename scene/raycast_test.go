package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-stack/grid"
)

// project returns the window position of a world-space point.
func project(v *View, p mgl32.Vec3, w, h float32) (float32, float32) {
	ndc := mgl32.TransformCoordinate(p, v.Projection().Mul4(v.Camera()))
	return (ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h
}

func TestScreenToRayHitsProjectedCell(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	v := NewView(4, 45, 800, 600)

	for _, angle := range []float32{0, 90, 215} {
		world := v.World(angle, 1.5)
		centre := mgl32.TransformCoordinate(mgl32.Vec3{1.5, 0, 2.5}, world)
		mx, my := project(v, centre, 800, 600)

		x, y, ok := PickCell(v.ScreenToRay(mx, my, 800, 600), g, world)
		require.True(t, ok, "angle %v", angle)
		assert.Equal(t, [2]int{1, 2}, [2]int{x, y}, "angle %v", angle)
	}
}

func TestPickCellMissesOutsideBoard(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)

	down := Ray{Origin: mgl32.Vec3{7.5, 10, 0.5}, Direction: mgl32.Vec3{0, -1, 0}}
	_, _, ok := PickCell(down, g, mgl32.Ident4())
	assert.False(t, ok)

	up := Ray{Origin: mgl32.Vec3{1.5, 10, 1.5}, Direction: mgl32.Vec3{0, 1, 0}}
	_, _, ok = PickCell(up, g, mgl32.Ident4())
	assert.False(t, ok, "board behind the ray origin")
}

func TestPickCellPrefersStacks(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	g.SetHeight(1, 1, 3)

	// Level with the floor, hitting the side of the column.
	side := Ray{Origin: mgl32.Vec3{-5, 1.5, 1.5}, Direction: mgl32.Vec3{1, 0, 0}}
	x, y, ok := PickCell(side, g, mgl32.Ident4())
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})

	// Descending diagonally: the column side is met before the floor beyond it.
	dir := mgl32.Vec3{1, -1, 0}.Normalize()
	diag := Ray{Origin: mgl32.Vec3{0.5, 3.2, 1.5}, Direction: dir}
	x, y, ok = PickCell(diag, g, mgl32.Ident4())
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})

	// Without the column the same ray lands on the floor further along.
	g.SetHeight(1, 1, 0)
	x, y, ok = PickCell(diag, g, mgl32.Ident4())
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 1}, [2]int{x, y})
}
