package koch

import (
	"math"
	"testing"
)

func TestSegmentLength(t *testing.T) {
	s := Seg(Pt(0.0, 0.0), Pt(1.0, 1.0))
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(s.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	if l := s.Reverse().Length(); l != s.Length() {
		t.Errorf("reversing changed the length from %v to %v", s.Length(), l)
	}
	if (Segment{Pt(2, 2), Pt(2, 2)}).Length() != 0 {
		t.Error("zero-length segment has non-zero length")
	}
}

func TestSegmentIsInf(t *testing.T) {
	if (Segment{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("segment is infinite but shouldn't be")
	}
	if !(Segment{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("segment is finite but shouldn't be")
	}
	if !(Segment{Pt(0.0, 0.0), Pt(0.0, math.NaN())}).IsNaN() {
		t.Errorf("segment isn't NaN but should be")
	}
}

func TestSegmentEval(t *testing.T) {
	s := Seg(Pt(-2, 4), Pt(6, 0))
	diff(t, s.P0, s.Eval(0))
	diff(t, s.P1, s.Eval(1))
	diff(t, Pt(2, 2), s.Eval(0.5))
	diff(t, s.Eval(0.5), s.Midpoint())
	diff(t, Rect{-2, 0, 6, 4}, s.BoundingBox())
}
