package koch

import "fmt"

// Segment is a straight line segment from P0 to P1, the unit a [Curve] is made
// of. The direction matters for traversal order but not for the geometry.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s→%s", s.P0, s.P1)
}

// Vector returns the displacement from the start to the end point.
func (s Segment) Vector() Vec2 {
	return s.P1.Sub(s.P0)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Vector().Hypot()
}

// IsZero reports whether the segment has zero length.
func (s Segment) IsZero() bool {
	return s.P0 == s.P1
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

// Eval returns the point at parameter t, with t = 0 at P0 and t = 1 at P1.
func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

func (s Segment) Midpoint() Point {
	return s.P0.Midpoint(s.P1)
}

// Reverse returns the segment traversed in the opposite direction.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

func (s Segment) Translate(v Vec2) Segment {
	return Segment{
		P0: s.P0.Translate(v),
		P1: s.P1.Translate(v),
	}
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: s.P0.Transform(aff),
		P1: s.P1.Transform(aff),
	}
}

func (s Segment) BoundingBox() Rect {
	return NewRectFromPoints(s.P0, s.P1)
}

// SignedArea returns the signed area between the segment and the origin. For a
// closed curve, the sum over all segments is the area it encloses (the
// shoelace formula), positive for anti-clockwise curves in y-up space.
func (s Segment) SignedArea() float64 {
	return Vec2(s.P0).Cross(Vec2(s.P1)) * 0.5
}

// winding returns this segment's contribution to the winding number of pt,
// counting upward crossings of the ray from pt towards positive x as +1.
func (s Segment) winding(pt Point) int {
	p0, p1 := s.P0, s.P1
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && s.Vector().Cross(pt.Sub(p0)) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && s.Vector().Cross(pt.Sub(p0)) < 0 {
		return -1
	}
	return 0
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}
