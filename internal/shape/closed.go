package shape

import (
	"math"

	"github.com/example/sketchpad/internal/geom"
)

// Circle is the filled circle whose diameter is the from-to chord.
type Circle struct {
	Fill
	twoPoint
	round *roundGeometry
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) geometry() *roundGeometry {
	if c.round == nil {
		c.round = &roundGeometry{
			center: geom.Pt(
				math.Round((c.From.X+c.To.X)/2),
				math.Round((c.From.Y+c.To.Y)/2),
			),
			radius: geom.Euclidean(c.From, c.To) / 2,
		}
	}
	return c.round
}

// Center returns the centre, rounded to whole pixels.
func (c *Circle) Center() geom.Point { return c.geometry().center }

// Radius returns half the chord length.
func (c *Circle) Radius() float64 { return c.geometry().radius }

func (c *Circle) Draw(surf Surface, selected bool) {
	c.round = nil
	g := c.geometry()
	surf.BeginPath()
	surf.Arc(g.center, g.radius, 0, 2*math.Pi)
	surf.ClosePath()
	c.paint(surf, selected)
}

func (c *Circle) Update(p geom.Point) {
	c.twoPoint.Update(p)
	c.round = nil
}

func (c *Circle) Move(delta geom.Point) {
	c.twoPoint.Move(delta)
	c.round = nil
}

// Contains reports whether p lies inside or on the circle.
func (c *Circle) Contains(p geom.Point) bool {
	g := c.geometry()
	return geom.Euclidean(g.center, p) <= g.radius
}

func (c *Circle) encode() wireShape {
	w := wireShape{Tag: string(KindCircle)}
	c.encodePoints(&w)
	c.encodeFill(&w)
	return w
}

func (c *Circle) decode(w *wireShape) error {
	if err := c.decodePoints(KindCircle, w); err != nil {
		return err
	}
	c.round = nil
	return c.decodeFill(KindCircle, w)
}

// Rectangle is an axis aligned filled box. While drawn its corner and size
// follow the pointer relative to the corner the drag started from.
type Rectangle struct {
	Fill
	X, Y, W, H float64
	start      geom.Point
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) begin(p geom.Point) {
	r.start = p
	r.X, r.Y, r.W, r.H = p.X, p.Y, 0, 0
}

// Valid reports whether both sides are non-zero.
func (r *Rectangle) Valid() bool {
	return r.W != 0 && r.H != 0
}

// Update normalises the box spanned by the start corner and p so that X, Y
// is the upper left corner.
func (r *Rectangle) Update(p geom.Point) {
	r.X = math.Min(r.start.X, p.X)
	r.Y = math.Min(r.start.Y, p.Y)
	r.W = math.Abs(r.start.X - p.X)
	r.H = math.Abs(r.start.Y - p.Y)
}

func (r *Rectangle) Move(delta geom.Point) {
	r.X += delta.X
	r.Y += delta.Y
	r.start = r.start.Add(delta)
}

// Contains reports whether p lies strictly inside the box.
func (r *Rectangle) Contains(p geom.Point) bool {
	return p.X > r.X && p.Y > r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

func (r *Rectangle) Draw(surf Surface, selected bool) {
	surf.BeginPath()
	surf.Rect(r.X, r.Y, r.W, r.H)
	r.paint(surf, selected)
}

func (r *Rectangle) encode() wireShape {
	w, h := r.W, r.H
	out := wireShape{
		Tag:    string(KindRectangle),
		Corner: []float64{r.X, r.Y},
		W:      &w,
		H:      &h,
	}
	r.encodeFill(&out)
	return out
}

func (r *Rectangle) decode(w *wireShape) error {
	ulc, ok := pair(w.Corner)
	if !ok {
		return &MalformedShapeError{Kind: KindRectangle, Field: "ulc"}
	}
	if w.W == nil {
		return &MalformedShapeError{Kind: KindRectangle, Field: "w"}
	}
	if w.H == nil {
		return &MalformedShapeError{Kind: KindRectangle, Field: "h"}
	}
	r.X, r.Y, r.W, r.H = ulc.X, ulc.Y, *w.W, *w.H
	r.start = ulc
	return r.decodeFill(KindRectangle, w)
}

// minPencilPoints is the number of samples a freehand stroke needs.
const minPencilPoints = 4

// Pencil is a freehand polyline. It carries a fill colour like the other
// closed shapes but is only ever stroked, and it can never be selected.
type Pencil struct {
	Fill
	Points []geom.Point
}

func (p *Pencil) Kind() Kind { return KindPencil }

func (p *Pencil) begin(at geom.Point) {
	p.Points = []geom.Point{at}
}

// Valid reports whether the stroke has at least four samples.
func (p *Pencil) Valid() bool { return len(p.Points) >= minPencilPoints }

// Update appends a sample.
func (p *Pencil) Update(at geom.Point) {
	p.Points = append(p.Points, at)
}

func (p *Pencil) Move(delta geom.Point) {
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(delta)
	}
}

// Contains always reports false: freehand strokes are not selectable.
func (p *Pencil) Contains(geom.Point) bool { return false }

func (p *Pencil) Draw(surf Surface, selected bool) {
	if len(p.Points) == 0 {
		return
	}
	surf.BeginPath()
	surf.MoveTo(p.Points[0])
	for _, pt := range p.Points[1:] {
		surf.LineTo(pt)
	}
	p.stroke(surf, selected)
}

func (p *Pencil) encode() wireShape {
	w := wireShape{Tag: string(KindPencil), Points: append([]geom.Point(nil), p.Points...)}
	p.encodeFill(&w)
	return w
}

func (p *Pencil) decode(w *wireShape) error {
	if len(w.Points) == 0 {
		return &MalformedShapeError{Kind: KindPencil, Field: "p"}
	}
	p.Points = append([]geom.Point(nil), w.Points...)
	return p.decodeFill(KindPencil, w)
}
