package koch

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, such as the difference of two points.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Cross returns the z component of the cross product of v and o. It is
// positive when o points to the left of v in y-up space.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Turn90 returns v rotated by a quarter turn, ⟨y, −x⟩.
//
// In a y-up coordinate system this is a clockwise rotation, so the result
// points to the right of v. In y-down space it points to the left. The
// magnitude is preserved and no division takes place, so the zero vector maps
// to itself.
func (v Vec2) Turn90() Vec2 {
	return Vec2{
		X: v.Y,
		Y: -v.X,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
