package koch

import "fmt"

// Size is the extent of a region, such as the area a snowflake is laid out in.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// AsVec2 returns the vector from a rectangle's origin to its opposite corner.
func (sz Size) AsVec2() Vec2 {
	return Vec(sz.Width, sz.Height)
}

// MinSide returns the smaller of width and height.
func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}
