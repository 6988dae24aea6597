package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/sketchpad/internal/geom"
)

// PDF paints shapes as vector paths on a single PDF page whose size in
// points equals the canvas size in pixels.
type PDF struct {
	doc        *gofpdf.Fpdf
	width      float64
	height     float64
	background color.RGBA
	highlight  string
	colors     *colorCache
	ops        []func(*gofpdf.Fpdf)
	hasPoint   bool
	start      geom.Point
}

// NewPDF returns a one page document of width x height points.
func NewPDF(width, height float64, background color.RGBA) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")
	doc.AddPage()
	p := &PDF{
		doc:        doc,
		width:      width,
		height:     height,
		background: background,
		colors:     newColorCache(color.RGBA{A: 255}),
	}
	p.Clear()
	return p
}

// SetHighlight overrides the stroke colour used for selected shapes.
func (p *PDF) SetHighlight(c string) { p.highlight = c }

// HighlightColor implements shape.Highlighter.
func (p *PDF) HighlightColor() string { return p.highlight }

// Clear paints the page background. Anything drawn before stays underneath.
func (p *PDF) Clear() {
	p.withAlpha(p.background.A, func() {
		p.doc.SetFillColor(int(p.background.R), int(p.background.G), int(p.background.B))
		p.doc.Rect(0, 0, p.width, p.height, "F")
	})
	p.BeginPath()
}

func (p *PDF) BeginPath() {
	p.ops = p.ops[:0]
	p.hasPoint = false
}

func (p *PDF) record(op func(*gofpdf.Fpdf)) { p.ops = append(p.ops, op) }

func (p *PDF) MoveTo(pt geom.Point) {
	p.record(func(d *gofpdf.Fpdf) { d.MoveTo(pt.X, pt.Y) })
	p.hasPoint = true
	p.start = pt
}

func (p *PDF) LineTo(pt geom.Point) {
	if !p.hasPoint {
		p.MoveTo(pt)
		return
	}
	p.record(func(d *gofpdf.Fpdf) { d.LineTo(pt.X, pt.Y) })
}

func (p *PDF) QuadTo(c, pt geom.Point) {
	if !p.hasPoint {
		p.MoveTo(c)
	}
	p.record(func(d *gofpdf.Fpdf) { d.CurveTo(c.X, c.Y, pt.X, pt.Y) })
}

func (p *PDF) CubeTo(c1, c2, pt geom.Point) {
	if !p.hasPoint {
		p.MoveTo(c1)
	}
	p.record(func(d *gofpdf.Fpdf) { d.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y) })
}

// Arc converts screen angles, which grow clockwise, into the counter
// clockwise degrees gofpdf expects. Full circles are drawn as one 360 degree
// sweep.
func (p *PDF) Arc(center geom.Point, radius, start, sweep float64) {
	from := geom.ArcPoint(center, radius, start)
	if !p.hasPoint {
		p.MoveTo(from)
	}
	degStart := -start * 180 / math.Pi
	degEnd := -(start + sweep) * 180 / math.Pi
	if math.Abs(sweep) >= 2*math.Pi {
		degStart, degEnd = 0, 360
		p.LineTo(geom.ArcPoint(center, radius, 0))
	}
	p.record(func(d *gofpdf.Fpdf) {
		d.ArcTo(center.X, center.Y, radius, radius, 0, degStart, degEnd)
	})
}

func (p *PDF) Rect(x, y, w, h float64) {
	p.MoveTo(geom.Pt(x, y))
	p.LineTo(geom.Pt(x+w, y))
	p.LineTo(geom.Pt(x+w, y+h))
	p.LineTo(geom.Pt(x, y+h))
	p.ClosePath()
}

func (p *PDF) ClosePath() {
	p.record(func(d *gofpdf.Fpdf) { d.ClosePath() })
}

// Stroke replays the current path and strokes it.
func (p *PDF) Stroke(c string, width float64) {
	col := p.colors.lookup(c)
	p.withAlpha(col.A, func() {
		p.doc.SetDrawColor(int(col.R), int(col.G), int(col.B))
		p.doc.SetLineWidth(width)
		p.replay("D")
	})
}

// Fill replays the current path and fills it.
func (p *PDF) Fill(c string) {
	col := p.colors.lookup(c)
	p.withAlpha(col.A, func() {
		p.doc.SetFillColor(int(col.R), int(col.G), int(col.B))
		p.replay("F")
	})
}

func (p *PDF) replay(style string) {
	if len(p.ops) == 0 {
		return
	}
	for _, op := range p.ops {
		op(p.doc)
	}
	p.doc.DrawPath(style)
}

func (p *PDF) withAlpha(a uint8, fn func()) {
	if a == 255 {
		fn()
		return
	}
	p.doc.SetAlpha(float64(a)/255, "Normal")
	fn()
	p.doc.SetAlpha(1, "Normal")
}

// WriteTo writes the finished document to w.
func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := p.doc.Output(cw); err != nil {
		return cw.n, fmt.Errorf("write pdf: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
