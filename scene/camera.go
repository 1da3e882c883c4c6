package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 1.0
	farPlane  = 1000.0
)

// View is the fixed camera looking down at the board from above and in
// front. Orbiting is done by rotating the world, not by moving the eye.
type View struct {
	Dim    int
	FOV    float32 // vertical field of view in degrees
	Aspect float32
}

// NewView creates a View for a dim x dim board and a width x height framebuffer.
func NewView(dim int, fov float32, width, height int) *View {
	v := &View{Dim: dim, FOV: fov, Aspect: 1}
	v.Resize(width, height)
	return v
}

// Resize updates the aspect ratio. Zero sizes (minimised window) are ignored.
func (v *View) Resize(width, height int) {
	if width > 0 && height > 0 {
		v.Aspect = float32(width) / float32(height)
	}
}

// Projection returns the perspective projection matrix.
func (v *View) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(v.FOV), v.Aspect, nearPlane, farPlane)
}

// Eye returns the camera position: 2*dim away from the origin at 45 degrees
// of elevation.
func (v *View) Eye() mgl32.Vec3 {
	d := float32(v.Dim) * 2 * math.Sqrt2 / 2
	return mgl32.Vec3{0, d, d}
}

// Camera returns the view matrix.
func (v *View) Camera() mgl32.Mat4 {
	return mgl32.LookAtV(v.Eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// World returns the board transform: rotate about +Y by angle degrees, move
// the board centre to the origin, then scale.
func (v *View) World(angle, scale float32) mgl32.Mat4 {
	half := float32(v.Dim) / 2
	w := mgl32.HomogRotate3DY(mgl32.DegToRad(angle))
	w = w.Mul4(mgl32.Translate3D(-half, 0, -half))
	return w.Mul4(mgl32.Scale3D(scale, scale, scale))
}
