package tool

import "github.com/example/sketchpad/internal/shape"

// Palette holds the colours and width applied to new and recoloured shapes.
type Palette struct {
	Stroke string
	Fill   string
	Width  float64
}

// DefaultPalette returns a black stroke, a white fill and a two pixel width.
func DefaultPalette() Palette {
	return Palette{Stroke: "#000", Fill: "#FFF", Width: shape.DefaultStrokeWidth}
}

// style sets the stroke colour and width of a new shape, and its fill when
// it is closed.
func (p *Palette) style(s shape.Shape) {
	st := s.StrokeStyle()
	st.StrokeColor = p.Stroke
	if p.Width > 0 {
		st.StrokeWidth = p.Width
	}
	if f, ok := s.(shape.Filler); ok {
		f.FillStyle().FillColor = p.Fill
	}
}

// recolor sets the stroke colour, and the fill of closed shapes, leaving the
// width alone.
func (p *Palette) recolor(s shape.Shape) {
	s.StrokeStyle().StrokeColor = p.Stroke
	if f, ok := s.(shape.Filler); ok {
		f.FillStyle().FillColor = p.Fill
	}
}
