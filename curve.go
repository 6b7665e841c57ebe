package koch

import (
	"io"
	"iter"
	"slices"
)

// Curve is an ordered sequence of segments. The order of the slice is the
// order in which the boundary is traversed.
//
// The generators in this package return freshly allocated curves that are
// owned by the caller.
type Curve []Segment

// Len returns the number of segments.
func (c Curve) Len() int { return len(c) }

// All returns an iterator over the segments in traversal order.
func (c Curve) All() iter.Seq[Segment] { return slices.Values(c) }

// Start returns the start point of the first segment, or false if c is empty.
func (c Curve) Start() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return c[0].P0, true
}

// End returns the end point of the last segment, or false if c is empty.
func (c Curve) End() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return c[len(c)-1].P1, true
}

// Length returns the total length of all segments.
func (c Curve) Length() float64 {
	var sum float64
	for _, s := range c {
		sum += s.Length()
	}
	return sum
}

// Gap returns the index i of the first segment whose end point is further than
// epsilon from the start point of segment i+1. It returns false if the curve is
// continuous.
func (c Curve) Gap(epsilon float64) (int, bool) {
	for i := 1; i < len(c); i++ {
		if !c[i-1].P1.Near(c[i].P0, epsilon) {
			return i - 1, true
		}
	}
	return 0, false
}

// IsContinuous reports whether every segment starts where the previous one
// ended, to within epsilon.
func (c Curve) IsContinuous(epsilon float64) bool {
	_, gap := c.Gap(epsilon)
	return !gap
}

// IsClosed reports whether c is a non-empty continuous curve that ends where it
// starts, to within epsilon.
func (c Curve) IsClosed(epsilon float64) bool {
	if len(c) == 0 || !c.IsContinuous(epsilon) {
		return false
	}
	return c[len(c)-1].P1.Near(c[0].P0, epsilon)
}

// BoundingBox returns the smallest rectangle enclosing all segments. The
// bounding box of an empty curve is the zero rectangle.
func (c Curve) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	bbox := c[0].BoundingBox()
	for _, s := range c[1:] {
		bbox = bbox.UnionPoint(s.P0).UnionPoint(s.P1)
	}
	return bbox
}

// SignedArea returns the sum of the segments' signed areas. For a closed curve
// this is the enclosed area, positive when the curve runs anti-clockwise in
// y-up space.
func (c Curve) SignedArea() float64 {
	var sum float64
	for _, s := range c {
		sum += s.SignedArea()
	}
	return sum
}

// Winding returns the winding number of pt with respect to c. The sign
// matches that of [Curve.SignedArea]. The result is only meaningful for closed
// curves.
func (c Curve) Winding(pt Point) int {
	var sum int
	for _, s := range c {
		sum += s.winding(pt)
	}
	return sum
}

// Contains reports whether pt is inside the closed curve c, using the non-zero
// rule.
func (c Curve) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

// Transform returns a new curve with aff applied to every segment.
//
// Transforms with a negative determinant reverse the curve's orientation.
func (c Curve) Transform(aff Affine) Curve {
	out := make(Curve, len(c))
	for i, s := range c {
		out[i] = s.Transform(aff)
	}
	return out
}

// Fit returns c scaled uniformly and centered so that its bounding box fills
// dst as far as its aspect ratio allows. It's used to draw curves generated in
// arbitrary units into a view. See [FitRect].
func (c Curve) Fit(dst Rect) Curve {
	return c.Transform(FitRect(c.BoundingBox(), dst))
}

// Reverse returns a new curve traversing c backwards.
func (c Curve) Reverse() Curve {
	out := make(Curve, len(c))
	for i, s := range c {
		out[len(c)-1-i] = s.Reverse()
	}
	return out
}

// Points returns the vertices of a continuous curve: the start point followed
// by the end point of every segment.
func (c Curve) Points() []Point {
	if len(c) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(c)+1)
	pts = append(pts, c[0].P0)
	for _, s := range c {
		pts = append(pts, s.P1)
	}
	return pts
}

// Elements returns the curve as drawing commands. See [Elements].
func (c Curve) Elements() iter.Seq[PathElement] {
	return Elements(c.All())
}

// Path returns the curve as a [Path]. A curve that ends exactly where it
// starts is terminated with a ClosePath element.
func (c Curve) Path() Path {
	p := make(Path, 0, len(c)+2)
	p = slices.AppendSeq(p, c.Elements())
	if c.IsClosed(0) {
		p.ClosePath()
	}
	return p
}

// SVG returns the curve as SVG path data.
func (c Curve) SVG(opts SVGOptions) string {
	return c.Path().SVG(opts)
}

// WriteSVG writes the curve as SVG path data to w.
func (c Curve) WriteSVG(w io.Writer, opts SVGOptions) error {
	return c.Path().WriteSVG(w, opts)
}
