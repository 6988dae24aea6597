package shape

import (
	"math"

	"github.com/example/sketchpad/internal/geom"
)

// quadratic is the geometry of the single-control curves. controlOf derives
// the control point from the end points and differs per variant.
type quadratic struct {
	Style
	twoPoint
	kind      Kind
	controlOf func(from, to geom.Point) geom.Point
	control   *geom.Point
}

func newQuadratic(kind Kind, controlOf func(from, to geom.Point) geom.Point) quadratic {
	return quadratic{Style: DefaultStyle(), kind: kind, controlOf: controlOf}
}

func (q *quadratic) Kind() Kind { return q.kind }

// Control returns the control point for the current end points.
func (q *quadratic) Control() geom.Point {
	if q.control == nil {
		c := q.controlOf(q.From, q.To)
		q.control = &c
	}
	return *q.control
}

func (q *quadratic) Draw(surf Surface, selected bool) {
	q.control = nil
	c := q.Control()
	surf.BeginPath()
	surf.MoveTo(q.From)
	surf.QuadTo(c, q.To)
	q.stroke(surf, selected)
}

func (q *quadratic) Update(p geom.Point) {
	q.twoPoint.Update(p)
	q.control = nil
}

func (q *quadratic) Move(delta geom.Point) {
	q.twoPoint.Move(delta)
	q.control = nil
}

// Contains tests the polyline from, mid(from, control), mid(control, to), to.
func (q *quadratic) Contains(p geom.Point) bool {
	c := q.Control()
	mid1 := geom.Midpoint(q.From, c)
	mid2 := geom.Midpoint(c, q.To)
	return anyNear(p, q.From, mid1, mid2, q.To)
}

func (q *quadratic) encode() wireShape {
	w := wireShape{Tag: string(q.kind)}
	q.encodePoints(&w)
	q.encodeStyle(&w)
	return w
}

func (q *quadratic) decode(w *wireShape) error {
	if err := q.decodePoints(q.kind, w); err != nil {
		return err
	}
	q.control = nil
	return q.decodeStyle(q.kind, w)
}

// anyNear reports whether p is near any segment of the polyline pts.
func anyNear(p geom.Point, pts ...geom.Point) bool {
	for i := 1; i < len(pts); i++ {
		if geom.NearSegment(pts[i-1], pts[i], p, segmentHysteresis) {
			return true
		}
	}
	return false
}

// Curve is a quadratic bezier bowing out to one side of its chord.
type Curve struct {
	quadratic
}

func curveControl(from, to geom.Point) geom.Point {
	return geom.QuadraticControl(from, to, geom.CurveHalfAngle)
}

// NewCurve returns an empty curve with the default style.
func NewCurve() *Curve {
	return &Curve{quadratic: newQuadratic(KindCurve, curveControl)}
}

// Parable is a symmetric quadratic bezier whose apex sits over the middle of
// its chord.
type Parable struct {
	quadratic
}

// NewParable returns an empty parable with the default style.
func NewParable() *Parable {
	return &Parable{quadratic: newQuadratic(KindParable, geom.ParableControl)}
}

type arcControls struct {
	c1, c2 geom.Point
}

// Arc is a cubic bezier with control points mirrored over its chord.
type Arc struct {
	Style
	twoPoint
	controls *arcControls
}

func (a *Arc) Kind() Kind { return KindArc }

// Controls returns the two cubic control points.
func (a *Arc) Controls() (c1, c2 geom.Point) {
	if a.controls == nil {
		c1, c2 := geom.CubicControls(a.From, a.To, geom.CurveHalfAngle)
		a.controls = &arcControls{c1: c1, c2: c2}
	}
	return a.controls.c1, a.controls.c2
}

func (a *Arc) Draw(surf Surface, selected bool) {
	a.controls = nil
	c1, c2 := a.Controls()
	surf.BeginPath()
	surf.MoveTo(a.From)
	surf.CubeTo(c1, c2, a.To)
	a.stroke(surf, selected)
}

func (a *Arc) Update(p geom.Point) {
	a.twoPoint.Update(p)
	a.controls = nil
}

func (a *Arc) Move(delta geom.Point) {
	a.twoPoint.Move(delta)
	a.controls = nil
}

// Contains tests five connected pieces through one level of de Casteljau
// midpoints of the control polygon.
func (a *Arc) Contains(p geom.Point) bool {
	c1, c2 := a.Controls()
	mid1 := geom.Midpoint(a.From, c1)
	mid3 := geom.Midpoint(c1, c2)
	mid5 := geom.Midpoint(c2, a.To)
	mid2 := geom.Midpoint(mid1, mid3)
	mid4 := geom.Midpoint(mid3, mid5)
	return anyNear(p, a.From, mid1, mid2, mid4, mid5, a.To)
}

func (a *Arc) encode() wireShape {
	w := wireShape{Tag: string(KindArc)}
	a.encodePoints(&w)
	a.encodeStyle(&w)
	return w
}

func (a *Arc) decode(w *wireShape) error {
	if err := a.decodePoints(KindArc, w); err != nil {
		return err
	}
	a.controls = nil
	return a.decodeStyle(KindArc, w)
}

// semicircleBand is the radial hit tolerance of semicircles.
const semicircleBand = 5

type roundGeometry struct {
	center geom.Point
	radius float64
	start  float64
}

// Semicircle is the half circle over the chord from-to, bulging to the left
// of the from-to direction.
type Semicircle struct {
	Style
	twoPoint
	round *roundGeometry
}

func (s *Semicircle) Kind() Kind { return KindSemicircle }

func (s *Semicircle) geometry() *roundGeometry {
	if s.round == nil {
		s.round = &roundGeometry{
			center: geom.Pt(
				math.Round((s.From.X+s.To.X)/2),
				math.Round((s.From.Y+s.To.Y)/2),
			),
			radius: geom.Euclidean(s.From, s.To) / 2,
			start:  math.Atan2(s.To.Y-s.From.Y, s.To.X-s.From.X),
		}
	}
	return s.round
}

// Center returns the centre, rounded to whole pixels.
func (s *Semicircle) Center() geom.Point { return s.geometry().center }

// Radius returns half the chord length.
func (s *Semicircle) Radius() float64 { return s.geometry().radius }

func (s *Semicircle) Draw(surf Surface, selected bool) {
	s.round = nil
	g := s.geometry()
	surf.BeginPath()
	surf.Arc(g.center, g.radius, g.start, -math.Pi)
	s.stroke(surf, selected)
}

func (s *Semicircle) Update(p geom.Point) {
	s.twoPoint.Update(p)
	s.round = nil
}

func (s *Semicircle) Move(delta geom.Point) {
	s.twoPoint.Move(delta)
	s.round = nil
}

// Contains accepts points within five pixels of the full circle, including
// the half that is not drawn.
func (s *Semicircle) Contains(p geom.Point) bool {
	g := s.geometry()
	d := geom.Euclidean(g.center, p)
	return d <= g.radius+semicircleBand && d >= g.radius-semicircleBand
}

func (s *Semicircle) encode() wireShape {
	w := wireShape{Tag: string(KindSemicircle)}
	s.encodePoints(&w)
	s.encodeStyle(&w)
	return w
}

func (s *Semicircle) decode(w *wireShape) error {
	if err := s.decodePoints(KindSemicircle, w); err != nil {
		return err
	}
	s.round = nil
	return s.decodeStyle(KindSemicircle, w)
}
