package game

import "math"

// Vec2 is a 2D extent or point in world units.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a world position; Z orders drawing, larger is nearer.
type Vec3 struct {
	X, Y, Z float32
}

// XY drops the depth component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Collide reports whether two boxes centred on aPos and bPos overlap.
// Boxes that only touch along an edge do not collide.
func Collide(aPos Vec3, aSize Vec2, bPos Vec3, bSize Vec2) bool {
	dx := abs(aPos.X - bPos.X)
	dy := abs(aPos.Y - bPos.Y)
	return dx < (aSize.X+bSize.X)/2 && dy < (aSize.Y+bSize.Y)/2
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

const tau = 2 * math.Pi

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float32) float32 {
	n := math.Mod(float64(a), tau)
	if n < 0 {
		n += tau
	}
	return float32(n)
}
