// Package orbkoch converts Koch curves to and from [orb] geometries, so that
// snowflakes can be measured, simplified and exported as GeoJSON with the orb
// toolchain.
//
// Curve coordinates map directly to orb's planar [orb.Point] (X, Y). No
// projection takes place.
package orbkoch

import (
	"errors"
	"math"

	"honnef.co/go/koch"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

var (
	ErrEmpty         = errors.New("orbkoch: empty curve")
	ErrNotClosed     = errors.New("orbkoch: curve isn't closed")
	ErrDiscontinuous = errors.New("orbkoch: curve isn't continuous")
)

// Tolerance is the distance within which consecutive segments are considered
// connected, and a curve closed.
const Tolerance = 1e-9

func point(pt koch.Point) orb.Point {
	return orb.Point{pt.X, pt.Y}
}

func fromPoint(pt orb.Point) koch.Point {
	return koch.Pt(pt.X(), pt.Y())
}

// LineString returns the vertices of a continuous curve as a line string.
func LineString(c koch.Curve) (orb.LineString, error) {
	if len(c) == 0 {
		return nil, ErrEmpty
	}
	if !c.IsContinuous(Tolerance) {
		return nil, ErrDiscontinuous
	}
	pts := c.Points()
	ls := make(orb.LineString, len(pts))
	for i, pt := range pts {
		ls[i] = point(pt)
	}
	return ls, nil
}

// Ring returns a closed curve as a ring. The last point of the ring is set to
// exactly the first one, as orb expects.
func Ring(c koch.Curve) (orb.Ring, error) {
	ls, err := LineString(c)
	if err != nil {
		return nil, err
	}
	if !c.IsClosed(Tolerance) {
		return nil, ErrNotClosed
	}
	r := orb.Ring(ls)
	r[len(r)-1] = r[0]
	return r, nil
}

// Polygon returns a closed curve as a polygon without holes. orb's polygons
// expect an anti-clockwise outer ring; clockwise curves are reversed.
func Polygon(c koch.Curve) (orb.Polygon, error) {
	r, err := Ring(c)
	if err != nil {
		return nil, err
	}
	if r.Orientation() == orb.CW {
		r.Reverse()
	}
	return orb.Polygon{r}, nil
}

// Curve returns the segments between consecutive points of ls.
func Curve(ls orb.LineString) koch.Curve {
	if len(ls) < 2 {
		return nil
	}
	c := make(koch.Curve, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		c[i-1] = koch.Seg(fromPoint(ls[i-1]), fromPoint(ls[i]))
	}
	return c
}

// Measures are planar measurements of a curve computed by orb.
type Measures struct {
	// Length is the length of the curve.
	Length float64
	// Area is the unsigned area enclosed by the curve, or 0 for open curves.
	Area float64
	// Centroid is the centroid of the enclosed area, or of the line for open
	// curves.
	Centroid koch.Point
	// Bounds is the bounding box of the curve.
	Bounds koch.Rect
}

// Measure computes the length, area, centroid and bounds of a continuous
// curve.
func Measure(c koch.Curve) (Measures, error) {
	ls, err := LineString(c)
	if err != nil {
		return Measures{}, err
	}
	var g orb.Geometry = ls
	if c.IsClosed(Tolerance) && len(c) > 2 {
		r := orb.Ring(ls)
		r[len(r)-1] = r[0]
		g = r
	}
	centroid, area := planar.CentroidArea(g)
	b := ls.Bound()
	return Measures{
		Length:   planar.Length(ls),
		Area:     math.Abs(area),
		Centroid: fromPoint(centroid),
		Bounds:   koch.Rect{X0: b.Min.X(), Y0: b.Min.Y(), X1: b.Max.X(), Y1: b.Max.Y()},
	}, nil
}

// Simplify reduces the number of segments of a continuous curve with the
// Douglas–Peucker algorithm, dropping vertices that lie within threshold of
// the simplified line. The end points are kept, so closed curves stay closed.
//
// This is useful to thin out deep curves before rendering them at a scale
// where their detail isn't visible.
func Simplify(c koch.Curve, threshold float64) (koch.Curve, error) {
	ls, err := LineString(c)
	if err != nil {
		return nil, err
	}
	return Curve(simplify.DouglasPeucker(threshold).LineString(ls)), nil
}

// Feature returns the curve as a GeoJSON feature: a polygon for closed curves
// and a line string otherwise. The depth and the number of segments are
// recorded as the "depth" and "segments" properties.
func Feature(c koch.Curve, depth int) (*geojson.Feature, error) {
	if err := koch.ValidateDepth(depth); err != nil {
		return nil, err
	}
	var g orb.Geometry
	if c.IsClosed(Tolerance) && len(c) > 2 {
		p, err := Polygon(c)
		if err != nil {
			return nil, err
		}
		g = p
	} else {
		ls, err := LineString(c)
		if err != nil {
			return nil, err
		}
		g = ls
	}
	f := geojson.NewFeature(g)
	f.Properties["depth"] = depth
	f.Properties["segments"] = len(c)
	return f, nil
}

// FeatureCollection returns the snowflakes of r for every depth from 0 to
// maxDepth as one GeoJSON feature collection.
func FeatureCollection(r koch.Rect, maxDepth int) (*geojson.FeatureCollection, error) {
	if err := koch.ValidateDepth(maxDepth); err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for depth := 0; depth <= maxDepth; depth++ {
		c, err := koch.Snowflake(r, depth)
		if err != nil {
			return nil, err
		}
		f, err := Feature(c, depth)
		if err != nil {
			return nil, err
		}
		fc.Append(f)
	}
	return fc, nil
}
