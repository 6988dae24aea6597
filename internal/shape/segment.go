package shape

import "github.com/example/sketchpad/internal/geom"

// segmentHysteresis is the hit tolerance of straight strokes in pixels.
const segmentHysteresis = 3

// twoPoint is the geometry shared by every variant defined by a start and an
// end point. To is only meaningful once hasTo is set by Update or decoding.
type twoPoint struct {
	From  geom.Point
	To    geom.Point
	hasTo bool
}

func (t *twoPoint) begin(p geom.Point) {
	t.From = p
	t.To = geom.Point{}
	t.hasTo = false
}

// Valid reports whether the end point is set and at least ten pixels away
// from the start, measured as |dx|+|dy|.
func (t *twoPoint) Valid() bool {
	return t.hasTo && geom.Manhattan(t.From, t.To) >= minExtent
}

// Update replaces the free end point.
func (t *twoPoint) Update(p geom.Point) {
	t.To = p
	t.hasTo = true
}

// Move translates both end points.
func (t *twoPoint) Move(delta geom.Point) {
	t.From = t.From.Add(delta)
	t.To = t.To.Add(delta)
}

func (t *twoPoint) encodePoints(w *wireShape) {
	w.Start = []float64{t.From.X, t.From.Y}
	w.End = []float64{t.To.X, t.To.Y}
}

func (t *twoPoint) decodePoints(kind Kind, w *wireShape) error {
	from, ok := pair(w.Start)
	if !ok {
		return &MalformedShapeError{Kind: kind, Field: "s"}
	}
	to, ok := pair(w.End)
	if !ok {
		return &MalformedShapeError{Kind: kind, Field: "e"}
	}
	t.From, t.To, t.hasTo = from, to, true
	return nil
}

func pair(v []float64) (geom.Point, bool) {
	if len(v) != 2 {
		return geom.Point{}, false
	}
	return geom.Pt(v[0], v[1]), true
}

// Segment is a straight line.
type Segment struct {
	Style
	twoPoint
}

func (s *Segment) Kind() Kind { return KindSegment }

func (s *Segment) Draw(surf Surface, selected bool) {
	surf.BeginPath()
	surf.MoveTo(s.From)
	surf.LineTo(s.To)
	s.stroke(surf, selected)
}

func (s *Segment) Contains(p geom.Point) bool {
	return geom.NearSegment(s.From, s.To, p, segmentHysteresis)
}

func (s *Segment) encode() wireShape {
	w := wireShape{Tag: string(KindSegment)}
	s.encodePoints(&w)
	s.encodeStyle(&w)
	return w
}

func (s *Segment) decode(w *wireShape) error {
	if err := s.decodePoints(KindSegment, w); err != nil {
		return err
	}
	return s.decodeStyle(KindSegment, w)
}

// Arrow is a segment with a head drawn at its end point. Geometry, validity
// and hit testing are the segment's.
type Arrow struct {
	Segment
}

func (a *Arrow) Kind() Kind { return KindArrow }

func (a *Arrow) Draw(surf Surface, selected bool) {
	top, bottom := geom.ArrowHead(a.From, a.To, geom.ArrowLength, geom.ArrowHalfAngle)
	surf.BeginPath()
	surf.MoveTo(a.From)
	surf.LineTo(a.To)
	surf.MoveTo(bottom)
	surf.LineTo(a.To)
	surf.MoveTo(top)
	surf.LineTo(a.To)
	a.stroke(surf, selected)
}

func (a *Arrow) encode() wireShape {
	w := a.Segment.encode()
	w.Tag = string(KindArrow)
	return w
}

func (a *Arrow) decode(w *wireShape) error {
	if err := a.decodePoints(KindArrow, w); err != nil {
		return err
	}
	return a.decodeStyle(KindArrow, w)
}
