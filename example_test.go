package koch_test

import (
	"fmt"

	"honnef.co/go/koch"
)

func ExampleEdge() {
	c, err := koch.Edge(koch.Pt(0, 0), koch.Pt(9, 0), 1)
	if err != nil {
		panic(err)
	}
	for _, s := range c {
		fmt.Printf("(%.3f, %.3f) → (%.3f, %.3f)\n", s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
	}
	fmt.Println(c.SVG(koch.SVGOptions{MaxPrecision: 3}))

	// Output:
	// (0.000, 0.000) → (3.000, 0.000)
	// (3.000, 0.000) → (4.500, -2.598)
	// (4.500, -2.598) → (6.000, 0.000)
	// (6.000, 0.000) → (9.000, 0.000)
	// M0,0 L3,0 L4.5,-2.598 L6,0 L9,0
}

func ExampleSnowflake() {
	// Lay the snowflake out in a 300×300 view, the way a renderer working in
	// y-down screen coordinates would.
	view := koch.NewRectFromOrigin(koch.Pt(0, 0), koch.Sz(300, 300))
	for depth := range 4 {
		c, err := koch.Snowflake(view, depth)
		if err != nil {
			panic(err)
		}
		fmt.Printf("depth %d: %d segments, perimeter %.2f, closed: %t\n",
			depth, len(c), c.Length(), c.IsClosed(1e-9))
	}

	// Output:
	// depth 0: 3 segments, perimeter 623.54, closed: true
	// depth 1: 12 segments, perimeter 831.38, closed: true
	// depth 2: 48 segments, perimeter 1108.51, closed: true
	// depth 3: 192 segments, perimeter 1478.02, closed: true
}

func ExampleEdgeSegments() {
	// Stream the segments of a deep curve without materializing it.
	var n int
	var length float64
	for s := range koch.EdgeSegments(koch.Pt(0, 0), koch.Pt(1, 0), 8, koch.Right) {
		n++
		length += s.Length()
	}
	fmt.Printf("%d segments, length %.4f\n", n, length)

	// Output:
	// 65536 segments, length 9.9887
}
