package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cube-stack/grid"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// ScreenToRay converts a window-space mouse position to a ray starting at the
// eye and passing through that pixel on the near plane.
func (v *View) ScreenToRay(mouseX, mouseY, screenWidth, screenHeight float32) Ray {
	// Convert to normalized device coordinates (-1 to 1)
	ndcX := (2.0*mouseX)/screenWidth - 1.0
	ndcY := 1.0 - (2.0*mouseY)/screenHeight // flip Y

	inv := v.Projection().Mul4(v.Camera()).Inv()
	near := mgl32.TransformCoordinate(mgl32.Vec3{ndcX, ndcY, -1}, inv)

	eye := v.Eye()
	return Ray{Origin: eye, Direction: near.Sub(eye).Normalize()}
}

// PickCell returns the cell under ray. Stacked columns are tested first so
// the top or side of a tall stack wins over the floor behind it; otherwise
// the ray is intersected with the board plane. world is the matrix the board
// was drawn with.
func PickCell(ray Ray, g *grid.Grid, world mgl32.Mat4) (x, y int, ok bool) {
	inv := world.Inv()
	local := Ray{
		Origin:    mgl32.TransformCoordinate(ray.Origin, inv),
		Direction: mgl32.TransformNormal(ray.Direction, inv),
	}

	best := float32(math.MaxFloat32)
	g.Each(func(cx, cy, height, _ int) {
		if height <= 0 {
			return
		}
		box := AABB{
			Min: mgl32.Vec3{float32(cx), 0, float32(cy)},
			Max: mgl32.Vec3{float32(cx + 1), float32(height), float32(cy + 1)},
		}
		if t, hit := rayAABBIntersect(local, box); hit && t < best {
			best, x, y, ok = t, cx, cy, true
		}
	})

	if dy := local.Direction.Y(); math.Abs(float64(dy)) > 1e-6 {
		t := -local.Origin.Y() / dy
		if t >= 0 && t < best {
			p := local.Origin.Add(local.Direction.Mul(t))
			fx, fy := int(math.Floor(float64(p.X()))), int(math.Floor(float64(p.Z())))
			if g.InBounds(fx, fy) {
				return fx, fy, true
			}
		}
	}
	return x, y, ok
}

// rayAABBIntersect tests ray-AABB intersection using the slab method and
// returns the entry distance.
func rayAABBIntersect(ray Ray, box AABB) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	for i := 0; i < 3; i++ {
		o, d := ray.Origin[i], ray.Direction[i]
		if d == 0 {
			if o < box.Min[i] || o > box.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[i] - o) / d
		t2 := (box.Max[i] - o) / d
		tmin = max(tmin, min(t1, t2))
		tmax = min(tmax, max(t1, t2))
	}

	if tmax < 0 || tmin > tmax {
		return 0, false
	}
	return max(tmin, 0), true
}
