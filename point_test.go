package koch

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Sub(Pt(4, 6)), Vec(-3, -4))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
	diff(t, Pt(0, 0).Lerp(Pt(9, 3), 0.5), Pt(4.5, 1.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointNear(t *testing.T) {
	p := Pt(1, 1)
	if !p.Near(p, 0) {
		t.Error("point isn't near itself")
	}
	if !p.Near(Pt(1, 1+1e-10), 1e-9) {
		t.Error("points should be near")
	}
	if p.Near(Pt(1, 1+1e-8), 1e-9) {
		t.Error("points shouldn't be near")
	}
}

func TestVecTurn90(t *testing.T) {
	diff(t, Vec(1, 0).Turn90(), Vec(0, -1))
	diff(t, Vec(3, 4).Turn90(), Vec(4, -3))
	diff(t, Vec(0, 0).Turn90(), Vec(0, 0))

	v := Vec(-2.5, 7)
	w := v.Turn90()
	if d := v.X*w.X + v.Y*w.Y; d != 0 {
		t.Errorf("turned vector isn't perpendicular, dot product is %v", d)
	}
	// Turning clockwise puts the result on the right, which has a negative cross product.
	if c := v.Cross(v.Turn90()); c >= 0 {
		t.Errorf("got cross product %v, want negative", c)
	}
	if math.Abs(v.Hypot()-v.Turn90().Hypot()) > 1e-12 {
		t.Error("turning changed the magnitude")
	}
}
