// Package koch generates Koch curves and Koch snowflakes as sequences of
// straight line segments.
//
// # Koch curves
//
// The Koch rule replaces a straight edge with four edges of a third of its
// length: the middle third is replaced by the two other sides of an
// equilateral triangle erected on it. Applying the rule depth times to every
// edge yields 4^depth segments whose total length is (4/3)^depth times the
// length of the original edge.
//
// [Edge] expands a single edge, [Triangle] expands the three edges of a
// triangle into a closed snowflake, and [Snowflake] lays a snowflake out in a
// rectangle. [EdgeSegments] and [TriangleSegments] produce the same segments
// lazily, without recursion and without materializing the curve.
//
// The generators are pure functions: they keep no state between calls, are
// safe for concurrent use, and return freshly allocated curves owned by the
// caller. Depth is not bounded by the package, but output grows as 4^depth;
// callers driving the depth from user input should bound it, see [MaxDepth]
// and [ClampDepth].
//
// # Orientation
//
// Bumps are erected on one side of the direction of travel, see [Side]. In a
// y-up coordinate system [Right] is the clockwise side. [Triangle] picks the
// side facing away from the triangle's interior, so a snowflake always grows
// outward, whichever way its vertices are wound.
//
// # Degenerate input
//
// A zero-length edge has no direction to erect a bump on. Such an edge is
// returned as a single zero-length segment, whatever the requested depth, and
// never produces NaN coordinates. Negative depths are rejected with an
// [*InvalidDepthError].
//
// # Segments and paths
//
// A [Curve] is a slice of [Segment] in traversal order and offers measures
// such as [Curve.Length], [Curve.SignedArea] and [Curve.BoundingBox]. For
// renderers that consume drawing commands, [Curve.Path] converts it to a
// [Path] of [MoveTo], [LineTo] and [ClosePath] elements, and [Curve.SVG]
// formats it as SVG path data. Styling is left to the caller.
//
// [Affine] transforms, such as those returned by [FitRect], map curves between
// coordinate spaces.
package koch
