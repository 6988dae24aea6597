// Package render provides the drawing surfaces shapes are painted on: an
// in-memory RGBA raster used by the editor window and PNG export, and a PDF
// page used for vector export.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/example/sketchpad/internal/geom"
)

// Raster paints shapes onto an RGBA image. Strokes use square brushes and
// fills are anti-aliased.
type Raster struct {
	img        *image.RGBA
	background color.RGBA
	highlight  string
	colors     *colorCache
	path       path
	rast       *vector.Rasterizer
}

// NewRaster returns a width x height raster cleared to background.
func NewRaster(width, height int, background color.RGBA) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		colors:     newColorCache(color.RGBA{A: 255}),
		rast:       vector.NewRasterizer(width, height),
	}
	r.Clear()
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// SetHighlight overrides the stroke colour used for selected shapes.
func (r *Raster) SetHighlight(c string) { r.highlight = c }

// HighlightColor implements shape.Highlighter.
func (r *Raster) HighlightColor() string { return r.highlight }

// Clear fills the whole image with the background colour.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), &image.Uniform{r.background}, image.Point{}, draw.Src)
	r.path.reset()
}

func (r *Raster) BeginPath()                  { r.path.reset() }
func (r *Raster) MoveTo(p geom.Point)         { r.path.moveTo(p) }
func (r *Raster) LineTo(p geom.Point)         { r.path.lineTo(p) }
func (r *Raster) QuadTo(c, p geom.Point)      { r.path.quadTo(c, p) }
func (r *Raster) CubeTo(c1, c2, p geom.Point) { r.path.cubeTo(c1, c2, p) }
func (r *Raster) ClosePath()                  { r.path.close() }

func (r *Raster) Arc(center geom.Point, radius, start, sweep float64) {
	r.path.arc(center, radius, start, sweep)
}

func (r *Raster) Rect(x, y, w, h float64) { r.path.rect(x, y, w, h) }

// Stroke draws every subpath of the current path with a brush width pixels
// wide.
func (r *Raster) Stroke(c string, width float64) {
	col := r.colors.lookup(c)
	thick := int(math.Round(width))
	if thick < 1 {
		thick = 1
	}
	pad := float64(thick/2 + 1)
	b := r.img.Bounds()
	lo := geom.Pt(float64(b.Min.X)-pad, float64(b.Min.Y)-pad)
	hi := geom.Pt(float64(b.Max.X)+pad, float64(b.Max.Y)+pad)
	for _, sp := range r.path.polylines() {
		pts := sp.pts
		if sp.closed {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if a, z, ok := clipLine(pts[i-1], pts[i], lo, hi); ok {
				drawLine(r.img, a, z, col, thick)
			}
		}
	}
}

// clipLine clips a-b to the box lo-hi with the Liang-Barsky algorithm.
// It reports false when no part of the segment is inside or an endpoint is
// not finite.
func clipLine(a, b, lo, hi geom.Point) (geom.Point, geom.Point, bool) {
	for _, v := range []float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return a, b, false
		}
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - lo.X},
		{dx, hi.X - a.X},
		{-dy, a.Y - lo.Y},
		{dy, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return geom.Pt(a.X+t0*dx, a.Y+t0*dy), geom.Pt(a.X+t1*dx, a.Y+t1*dy), true
}

// Fill paints the area enclosed by the current path using the non-zero
// winding rule. Open subpaths are closed implicitly.
func (r *Raster) Fill(c string) {
	subs := r.path.polylines()
	if len(subs) == 0 {
		return
	}
	b := r.img.Bounds()
	r.rast.Reset(b.Dx(), b.Dy())
	for _, sp := range subs {
		r.rast.MoveTo(float32(sp.pts[0].X), float32(sp.pts[0].Y))
		for _, p := range sp.pts[1:] {
			r.rast.LineTo(float32(p.X), float32(p.Y))
		}
		r.rast.ClosePath()
	}
	r.rast.Draw(r.img, b, image.NewUniform(r.colors.lookup(c)), image.Point{})
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.RGBA) {
	half := thick / 2
	b := img.Bounds()
	for dx := -half; dx <= half; dx++ {
		for dy := -half; dy <= half; dy++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

// drawLine rasterises a-b with Bresenham's algorithm, stamping a square
// brush at every step.
func drawLine(img *image.RGBA, a, b geom.Point, col color.RGBA, thick int) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
