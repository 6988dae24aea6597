package geom

import "math"

// flattenSteps returns how many straight pieces approximate a curve whose
// control polygon is length pixels long.
func flattenSteps(length float64) int {
	n := int(math.Ceil(length / 4))
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	return n
}

// FlattenQuad approximates the quadratic bezier p0-c-p1 with straight
// pieces. The returned points exclude p0 and end with p1.
func FlattenQuad(p0, c, p1 Point) []Point {
	n := flattenSteps(Euclidean(p0, c) + Euclidean(c, p1))
	out := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		out = append(out, Point{
			X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
			Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
		})
	}
	return out
}

// FlattenCubic approximates the cubic bezier p0-c1-c2-p1. The returned
// points exclude p0 and end with p1.
func FlattenCubic(p0, c1, c2, p1 Point) []Point {
	n := flattenSteps(Euclidean(p0, c1) + Euclidean(c1, c2) + Euclidean(c2, p1))
	out := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		cc := 3 * mt * t * t
		d := t * t * t
		out = append(out, Point{
			X: a*p0.X + b*c1.X + cc*c2.X + d*p1.X,
			Y: a*p0.Y + b*c1.Y + cc*c2.Y + d*p1.Y,
		})
	}
	return out
}

// ArcPoint returns the point at angle on the circle around center. Angles
// grow clockwise on screen because y points down.
func ArcPoint(center Point, radius, angle float64) Point {
	return Point{X: center.X + math.Cos(angle)*radius, Y: center.Y + math.Sin(angle)*radius}
}

// FlattenArc approximates the arc around center starting at start and
// sweeping sweep radians (negative sweeps run anticlockwise). The returned
// points include the arc's first point.
func FlattenArc(center Point, radius, start, sweep float64) []Point {
	n := flattenSteps(math.Abs(sweep) * radius)
	out := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		out = append(out, ArcPoint(center, radius, a))
	}
	return out
}
