package koch

import (
	"testing"
)

func TestRectConstructors(t *testing.T) {
	diff(t, Rect{1, 2, 4, 6}, NewRectFromPoints(Pt(4, 2), Pt(1, 6)))
	diff(t, Rect{1, 2, 4, 6}, NewRectFromOrigin(Pt(1, 2), Sz(3, 4)))
	diff(t, Rect{1, 2, 4, 6}, NewRectFromOrigin(Pt(4, 6), Sz(-3, -4)))
	diff(t, Rect{1, 2, 4, 6}, Rect{4, 6, 1, 2}.Abs())
}

func TestRectMeasures(t *testing.T) {
	r := Rect{1, 2, 4, 6}
	diff(t, Sz(3, 4), r.Size())
	diff(t, Pt(2.5, 4), r.Center())
	diff(t, Pt(1, 2), r.Min())
	diff(t, Pt(4, 6), r.Max())
	if got := r.Size().MinSide(); got != 3 {
		t.Errorf("got min side %v, want 3", got)
	}
	if got := (Rect{4, 6, 1, 2}).Width(); got != -3 {
		t.Errorf("got width %v, want -3", got)
	}
}

func TestRectContainsClosed(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	for _, pt := range []Point{Pt(0, 0), Pt(10, 10), Pt(5, 0)} {
		if !r.ContainsClosed(pt) {
			t.Errorf("%v should be contained", pt)
		}
	}
	if r.ContainsClosed(Pt(10, 10.5)) {
		t.Error("(10, 10.5) shouldn't be contained")
	}
}

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(1, 1), Pt(1, 1))
	for _, pt := range []Point{Pt(3, -2), Pt(-1, 0), Pt(2, 5)} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-1, -2, 3, 5}, r)
}
