package koch

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Scale(1, 1)), p, epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(FlipY.ThenTranslate(Vec(0, 10))), Pt(3, 6), epsilon)
	assertNear(t, p.Transform(Translate(Vec(1, 1)).ThenScale(2, 3)), Pt(8, 15), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestFitRect(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{-1, -1, 1, 3}
	dst := Rect{0, 0, 100, 100}
	aff := FitRect(src, dst)

	// src is twice as tall as wide, so height limits the scale to 25.
	assertNear(t, src.Center().Transform(aff), dst.Center(), epsilon)
	assertNear(t, Pt(-1, -1).Transform(aff), Pt(25, 0), epsilon)
	assertNear(t, Pt(1, 3).Transform(aff), Pt(75, 100), epsilon)

	// A degenerate source collapses onto the center.
	assertNear(t, Pt(7, 7).Transform(FitRect(Rect{7, 7, 7, 7}, dst)), Pt(50, 50), epsilon)
	// A horizontal line spans the width.
	assertNear(t, Pt(4, 2).Transform(FitRect(Rect{0, 2, 4, 2}, dst)), Pt(100, 50), epsilon)
}
