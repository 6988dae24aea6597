// Package shape implements the drawable variants of a sketch: their stroke
// and fill styles, validity rules, hit tests and the compact JSON form used
// to persist a drawing.
package shape

import "github.com/example/sketchpad/internal/geom"

// Kind is the type tag of a shape variant. It doubles as the "t" field of
// the serialized form and as the name of the draw tool for the variant.
type Kind string

const (
	KindSegment    Kind = "segment"
	KindArrow      Kind = "arrow"
	KindCurve      Kind = "curve"
	KindParable    Kind = "parable"
	KindArc        Kind = "arc"
	KindSemicircle Kind = "semicircle"
	KindCircle     Kind = "circle"
	KindRectangle  Kind = "rectangle"
	KindPencil     Kind = "pencil"
)

// Defaults applied to freshly constructed shapes.
const (
	DefaultStrokeColor = "#000"
	DefaultFillColor   = "#ffffff"
	DefaultStrokeWidth = 2.0
	// DefaultHighlight replaces the stroke colour of a selected shape when
	// the surface does not provide its own highlight colour.
	DefaultHighlight = "#FF0"
)

// minExtent is the Manhattan length a two-point shape needs to be kept.
const minExtent = 10

// Surface is the 2D vector drawing capability shapes render onto. Paths are
// built with the path commands and consumed by Stroke or Fill; a Fill
// followed by a Stroke paints the same path twice.
type Surface interface {
	BeginPath()
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	QuadTo(ctrl, p geom.Point)
	CubeTo(c1, c2, p geom.Point)
	// Arc adds a circular arc starting at start radians and sweeping sweep
	// radians. Negative sweeps run anticlockwise on screen.
	Arc(center geom.Point, radius, start, sweep float64)
	Rect(x, y, w, h float64)
	ClosePath()
	Stroke(color string, width float64)
	Fill(color string)
}

// Highlighter is implemented by surfaces that choose the stroke colour of
// selected shapes.
type Highlighter interface {
	HighlightColor() string
}

func highlightOf(s Surface) string {
	if h, ok := s.(Highlighter); ok {
		if c := h.HighlightColor(); c != "" {
			return c
		}
	}
	return DefaultHighlight
}

// Shape is one drawable entity. The set of implementations is closed; all of
// them live in this package.
type Shape interface {
	Kind() Kind
	// Draw issues the shape's path on s and paints it. Derived geometry
	// (centres, radii, control points) is recomputed on every call.
	Draw(s Surface, selected bool)
	// Valid reports whether the shape may be committed to a drawing.
	Valid() bool
	// Update feeds the latest pointer position while the shape is drawn.
	Update(p geom.Point)
	// Contains reports whether p selects the shape.
	Contains(p geom.Point) bool
	// Move translates every geometry field by delta.
	Move(delta geom.Point)
	StrokeStyle() *Style

	begin(p geom.Point)
	encode() wireShape
	decode(w *wireShape) error
}

// Filler is implemented by closed shapes, which carry a fill colour.
type Filler interface {
	Shape
	FillStyle() *Fill
}

// Style is the stroke appearance shared by every variant.
type Style struct {
	StrokeColor string
	StrokeWidth float64
}

// DefaultStyle returns a black stroke of the default width.
func DefaultStyle() Style {
	return Style{StrokeColor: DefaultStrokeColor, StrokeWidth: DefaultStrokeWidth}
}

// StrokeStyle returns s so callers can restyle a shape in place.
func (s *Style) StrokeStyle() *Style { return s }

func (s *Style) stroke(surf Surface, selected bool) {
	col := s.StrokeColor
	if selected {
		col = highlightOf(surf)
	}
	surf.Stroke(col, s.StrokeWidth)
}

func (s *Style) encodeStyle(w *wireShape) {
	col := s.StrokeColor
	width := s.StrokeWidth
	w.Stroke = &col
	w.LineWidth = &width
}

func (s *Style) decodeStyle(kind Kind, w *wireShape) error {
	if w.Stroke != nil {
		s.StrokeColor = *w.Stroke
	}
	if w.LineWidth != nil {
		if *w.LineWidth <= 0 {
			return &MalformedShapeError{Kind: kind, Field: "lw"}
		}
		s.StrokeWidth = *w.LineWidth
	}
	return nil
}

// Fill adds a fill colour to Style. Only closed shapes embed it.
type Fill struct {
	Style
	FillColor string
}

// DefaultFill returns the default stroke with a white fill.
func DefaultFill() Fill {
	return Fill{Style: DefaultStyle(), FillColor: DefaultFillColor}
}

// FillStyle returns f so callers can restyle a closed shape in place.
func (f *Fill) FillStyle() *Fill { return f }

func (f *Fill) paint(surf Surface, selected bool) {
	surf.Fill(f.FillColor)
	f.stroke(surf, selected)
}

func (f *Fill) encodeFill(w *wireShape) {
	f.encodeStyle(w)
	col := f.FillColor
	w.FillColor = &col
}

func (f *Fill) decodeFill(kind Kind, w *wireShape) error {
	if err := f.decodeStyle(kind, w); err != nil {
		return err
	}
	if w.FillColor != nil {
		f.FillColor = *w.FillColor
	}
	return nil
}
