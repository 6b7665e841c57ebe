package koch

// Affine is a 2D affine transform. A point (x, y) maps to
//
//	(N0·x + N2·y + N4, N1·x + N3·y + N5)
//
// Transforms compose right to left: a.Mul(b) applies b first, then a.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY mirrors y. It maps the y-up space curves are generated in to the
// y-down space of most screens, and back.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale returns a transform scaling x by sx and y by sy.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// FitRect returns a uniform scale followed by a translation that maps src onto
// the largest rectangle of the same aspect ratio centered in dst.
//
// A src with zero width and height maps to the center of dst.
func FitRect(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	var s float64
	switch {
	case src.Width() == 0 && src.Height() == 0:
		s = 0
	case src.Width() == 0:
		s = dst.Height() / src.Height()
	case src.Height() == 0:
		s = dst.Width() / src.Width()
	default:
		s = min(dst.Width()/src.Width(), dst.Height()/src.Height())
	}
	return Translate(Vec2(src.Center()).Negate()).
		ThenScale(s, s).
		ThenTranslate(Vec2(dst.Center()))
}

// Mul returns the transform applying o and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by a scale of (sx, sy).
func (aff Affine) ThenScale(sx, sy float64) Affine {
	return Scale(sx, sy).Mul(aff)
}

// ThenTranslate returns aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
