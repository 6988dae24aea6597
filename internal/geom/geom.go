// Package geom holds the point math shared by the shape variants: distances,
// tolerant segment hit testing and the control point constructions used for
// arrow heads and curves.
package geom

import "math"

// Point is a screen-space position in pixels. Coordinates are not normalised.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Manhattan returns |dx|+|dy| between a and b.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Euclidean returns the straight line distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b with each coordinate
// rounded half up to a whole pixel.
func Midpoint(a, b Point) Point {
	return Point{X: RoundHalfUp((a.X + b.X) / 2), Y: RoundHalfUp((a.Y + b.Y) / 2)}
}

// RoundHalfUp rounds v to the nearest integer, with halves going towards
// positive infinity (-2.5 becomes -2).
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// NearSegment reports whether p lies on the segment from-to within
// hysteresis pixels.
//
// The test is a tolerant colinearity check rather than a distance check. p is
// rejected outright when it falls outside the segment's bounding box grown by
// hysteresis on every side. Otherwise the four terms
//
//	e1 = p.y-from.y   e2 = to.x-from.x   e3 = p.x-from.x   e4 = to.y-from.y
//
// are snapped to zero when their magnitude is below hysteresis. The point is
// accepted when e1 and e4 are both zero (horizontal), when e2 and e3 are both
// zero (vertical), or when e3/e2 and e1/e4 round to the same integer. Rounding
// is half away from zero, so at shallow angles the accepted band is wider
// than hysteresis; selection feel depends on this.
func NearSegment(from, to, p Point, hysteresis float64) bool {
	lx := math.Min(from.X, to.X) - hysteresis
	ly := math.Min(from.Y, to.Y) - hysteresis
	ux := math.Max(from.X, to.X) + hysteresis
	uy := math.Max(from.Y, to.Y) + hysteresis
	if p.X < lx || p.Y < ly || p.X > ux || p.Y > uy {
		return false
	}

	e1 := snap(p.Y-from.Y, hysteresis)
	e2 := snap(to.X-from.X, hysteresis)
	e3 := snap(p.X-from.X, hysteresis)
	e4 := snap(to.Y-from.Y, hysteresis)
	if (e1 == 0 && e4 == 0) || (e2 == 0 && e3 == 0) {
		return true
	}
	y := e1 / e4
	x := e3 / e2
	return math.Round(x) == math.Round(y)
}

func snap(v, hysteresis float64) float64 {
	if math.Abs(v) < hysteresis {
		return 0
	}
	return v
}

// wing projects a point h pixels away from tip, along the reversed from-tip
// direction rotated by offset radians.
func wing(from, tip Point, h, offset float64) Point {
	lineAngle := math.Atan2(tip.Y-from.Y, tip.X-from.X)
	a := lineAngle + math.Pi + offset
	return Point{X: tip.X + math.Cos(a)*h, Y: tip.Y + math.Sin(a)*h}
}

// Default construction parameters.
const (
	ArrowLength    = 10
	ArrowHalfAngle = math.Pi / 8
	CurveHalfAngle = math.Pi / 8
)

// ArrowHead returns the two wing tips of an arrow head drawn at to. Each wing
// is length/cos(halfAngle) long and leaves the line at ±halfAngle.
func ArrowHead(from, to Point, length, halfAngle float64) (top, bottom Point) {
	h := math.Abs(length / math.Cos(halfAngle))
	return wing(from, to, h, halfAngle), wing(from, to, h, -halfAngle)
}

// QuadraticControl returns the control point of the quadratic curve from
// from to to: d/cos(halfAngle) away from to, where d is the chord length,
// along the reversed chord rotated by halfAngle.
func QuadraticControl(from, to Point, halfAngle float64) Point {
	d := Euclidean(from, to)
	return wing(from, to, math.Abs(d/math.Cos(halfAngle)), halfAngle)
}

// ParableControl is the QuadraticControl construction with a π/4 half angle
// and a √2·d/2 projection, which yields a symmetric parabola over the chord.
func ParableControl(from, to Point) Point {
	h := math.Sqrt2 * (Euclidean(from, to) / 2)
	return wing(from, to, h, math.Pi/4)
}

// CubicControls returns the control points of the cubic bezier from a to b.
// c1 is the quadratic construction over (a, b) on the +halfAngle wing and c2
// the same construction over (b, a) on the -halfAngle wing.
func CubicControls(a, b Point, halfAngle float64) (c1, c2 Point) {
	d := Euclidean(a, b)
	h := math.Abs(d / math.Cos(halfAngle))
	return wing(a, b, h, halfAngle), wing(b, a, h, -halfAngle)
}
