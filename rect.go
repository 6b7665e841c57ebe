package koch

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1). Rectangles
// built by this package are normalized so that X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the normalized rectangle with corners p0 and p1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns the normalized rectangle spanning origin to
// origin+size.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs returns r with its corners swapped as needed to make width and height
// non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns X1 − X0. It is negative for unnormalized rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0. It is negative for unnormalized rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Size() Size {
	return Sz(r.Width(), r.Height())
}

func (r Rect) Center() Point {
	return r.Min().Midpoint(r.Max())
}

// Min returns the corner (X0, Y0).
func (r Rect) Min() Point { return Pt(r.X0, r.Y0) }

// Max returns the corner (X1, Y1).
func (r Rect) Max() Point { return Pt(r.X1, r.Y1) }

// ContainsClosed reports whether pt lies within r or on its boundary.
func (r Rect) ContainsClosed(pt Point) bool {
	return r.X0 <= pt.X && pt.X <= r.X1 &&
		r.Y0 <= pt.Y && pt.Y <= r.Y1
}

// UnionPoint grows r just enough to include pt. Folding UnionPoint over a set
// of points, starting from the zero-area rectangle at any one of them, yields
// their bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}
