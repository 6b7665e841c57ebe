package koch

import (
	"iter"
	"math"
	"math/bits"
	"slices"
)

// MaxDepth is the deepest recursion that callers driving the generator from
// user input should allow. It is not enforced: the segment count grows as
// 4^depth, so deeper curves are valid but rarely practical. See [ClampDepth].
const MaxDepth = 10

// Side selects which side of an edge the Koch bump is erected on, relative to
// the direction of travel from start to end in y-up space. In y-down space
// (the usual convention for graphics) the sides are swapped.
type Side int

const (
	// Right erects bumps clockwise of the direction of travel in y-up space.
	Right Side = 1
	// Left erects bumps anti-clockwise of the direction of travel in y-up space.
	Left Side = -1
)

func (s Side) String() string {
	switch s {
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "InvalidSide"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return -s
}

func (s Side) factor() float64 {
	switch s {
	case Right:
		return math.Sqrt(3) / 2
	case Left:
		return -math.Sqrt(3) / 2
	default:
		panic("invalid Side")
	}
}

// SegmentCount returns the number of segments a single edge expands to at the
// given depth, 4^depth. It returns 0 for negative depths and saturates at
// [math.MaxInt] for depths whose count doesn't fit in an int.
func SegmentCount(depth int) int {
	switch {
	case depth < 0:
		return 0
	case depth > (bits.UintSize-2)/2:
		return math.MaxInt
	default:
		return 1 << (2 * depth)
	}
}

// ClampDepth limits depth to the range [0, MaxDepth].
func ClampDepth(depth int) int {
	return min(max(depth, 0), MaxDepth)
}

// subdivide splits the edge a–e into the four edges of the Koch pattern:
// a–b, b–c, c–d and d–e. b and d lie at one and two thirds of the way and c is
// the apex of the equilateral triangle erected on b–d.
//
// The apex offset is the one-third step turned by 90° and scaled by √3/2,
// which avoids dividing by the edge length.
func subdivide(a, e Point, factor float64) (b, c, d Point) {
	v := e.Sub(a).Div(3)
	b = a.Translate(v)
	d = a.Translate(v.Mul(2))
	c = a.Midpoint(e).Translate(v.Turn90().Mul(factor))
	return b, c, d
}

// Edge returns the Koch curve replacing the edge from start to end after depth
// rounds of subdivision, with the bumps on the [Right] of the edge.
//
// At depth 0 the result is the single segment (start, end). At greater depths
// it is the concatenation of the curves of the four sub-edges at depth−1, so
// it consists of 4^depth segments whose total length is (4/3)^depth times the
// length of the edge. The first segment starts exactly at start and the last
// ends exactly at end.
//
// A zero-length edge can't be subdivided and yields the single zero-length
// segment (start, start) at any depth.
//
// A negative depth returns an [*InvalidDepthError] and a nil curve.
func Edge(start, end Point, depth int) (Curve, error) {
	return EdgeSide(start, end, depth, Right)
}

// EdgeSide is like [Edge] but erects the bumps on the given side.
func EdgeSide(start, end Point, depth int, side Side) (Curve, error) {
	return AppendEdge(nil, start, end, depth, side)
}

// AppendEdge appends the segments of [EdgeSide] to dst and returns the
// extended curve. On error dst is returned unchanged.
//
// AppendEdge panics if side is neither [Left] nor [Right].
func AppendEdge(dst Curve, start, end Point, depth int, side Side) (Curve, error) {
	if err := ValidateDepth(depth); err != nil {
		return dst, err
	}
	f := side.factor()
	if depth <= MaxDepth {
		dst = slices.Grow(dst, SegmentCount(depth))
	}
	return appendEdge(dst, start, end, depth, f), nil
}

func appendEdge(dst Curve, a, e Point, depth int, factor float64) Curve {
	if depth == 0 || a == e {
		return append(dst, Segment{a, e})
	}
	b, c, d := subdivide(a, e, factor)
	depth--
	dst = appendEdge(dst, a, b, depth, factor)
	dst = appendEdge(dst, b, c, depth, factor)
	dst = appendEdge(dst, c, d, depth, factor)
	return appendEdge(dst, d, e, depth, factor)
}

// OutwardSide returns the side of the edges p1→p2, p2→p3 and p3→p1 that faces
// away from the triangle's interior. Degenerate (collinear) triangles have no
// interior and report [Right].
func OutwardSide(p1, p2, p3 Point) Side {
	if p2.Sub(p1).Cross(p3.Sub(p1)) < 0 {
		return Left
	}
	return Right
}

// Triangle returns the Koch snowflake built on the triangle p1, p2, p3: the
// edge curves of p1→p2, p2→p3 and p3→p1 at the given depth, in that order.
// The result has 3·4^depth segments and is closed.
//
// The bumps are erected on the [OutwardSide] of the triangle, so they point
// away from its interior regardless of the winding order of the vertices. For
// triangles wound anti-clockwise in y-up space (clockwise on a y-down screen),
// this makes the result identical to concatenating the results of [Edge].
//
// Coincident vertices are not an error: their edges follow the zero-length
// edge rule of [Edge].
func Triangle(p1, p2, p3 Point, depth int) (Curve, error) {
	if err := ValidateDepth(depth); err != nil {
		return nil, err
	}
	side := OutwardSide(p1, p2, p3)
	var c Curve
	if depth <= MaxDepth {
		c = make(Curve, 0, 3*SegmentCount(depth))
	}
	for _, e := range [3][2]Point{{p1, p2}, {p2, p3}, {p3, p1}} {
		c = appendEdge(c, e[0], e[1], depth, side.factor())
	}
	return c, nil
}

type pendingEdge struct {
	a, e  Point
	depth int
}

// EdgeSegments returns an iterator over the segments of [EdgeSide], in the same
// order and with identical coordinates.
//
// Instead of recursing it keeps a stack of pending edges, which holds at most
// 3·depth+1 entries, and produces segments one at a time without materializing
// the curve. Only the stack's initial capacity depends on depth, and it is
// bounded by [MaxDepth], so a caller may stop after a few segments of an
// arbitrarily deep curve. A negative depth yields no segments; use [ValidateDepth] to
// distinguish that case.
func EdgeSegments(start, end Point, depth int, side Side) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if depth < 0 {
			return
		}
		f := side.factor()
		stack := make([]pendingEdge, 1, 3*min(depth, MaxDepth)+1)
		stack[0] = pendingEdge{start, end, depth}
		for len(stack) > 0 {
			pe := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if pe.depth == 0 || pe.a == pe.e {
				if !yield(Segment{pe.a, pe.e}) {
					return
				}
				continue
			}
			b, c, d := subdivide(pe.a, pe.e, f)
			n := pe.depth - 1
			// Pushed in reverse so that a–b is processed first.
			stack = append(stack,
				pendingEdge{d, pe.e, n},
				pendingEdge{c, d, n},
				pendingEdge{b, c, n},
				pendingEdge{pe.a, b, n},
			)
		}
	}
}

// TriangleSegments returns an iterator over the segments of [Triangle].
func TriangleSegments(p1, p2, p3 Point, depth int) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		side := OutwardSide(p1, p2, p3)
		for _, e := range [3][2]Point{{p1, p2}, {p2, p3}, {p3, p1}} {
			for s := range EdgeSegments(e[0], e[1], depth, side) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// EquilateralTriangle returns the vertices of the equilateral triangle with the
// given circumradius around center. The first vertex lies at center+(0, radius)
// and the vertices run anti-clockwise in y-up space.
func EquilateralTriangle(center Point, radius float64) (p1, p2, p3 Point) {
	hx := radius * math.Sqrt(3) / 2
	p1 = center.Translate(Vec(0, radius))
	p2 = center.Translate(Vec(-hx, -radius/2))
	p3 = center.Translate(Vec(hx, -radius/2))
	return p1, p2, p3
}

// Snowflake lays out a Koch snowflake in r for display in y-down space. The
// initial triangle is equilateral, centered in r with a circumradius of 40% of
// r's shorter side and its apex pointing up. The whole snowflake lies within
// that circumcircle and thus within r.
func Snowflake(r Rect, depth int) (Curve, error) {
	r = r.Abs()
	p1, p2, p3 := EquilateralTriangle(Point{}, 0.4*r.Size().MinSide())
	screen := FlipY.ThenTranslate(Vec2(r.Center()))
	return Triangle(p1.Transform(screen), p2.Transform(screen), p3.Transform(screen), depth)
}
