package window

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/render"
)

const statusHeight = 20

var face = basicfont.Face7x13

// drawFrame composes the drawing, the status bar and any flashed message
// into dst.
func drawFrame(dst *image.RGBA, s *Session) {
	b := dst.Bounds()
	th := s.Theme
	draw.Draw(dst, b, &image.Uniform{th.Background}, image.Point{}, draw.Src)

	img := s.Raster.Image()
	draw.Draw(dst, img.Bounds(), img, image.Point{}, draw.Src)

	bar := image.Rect(b.Min.X, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBar}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: face,
		Dot: fixed.P(bar.Min.X+6, bar.Min.Y+14)}
	d.DrawString(s.Status())

	pal := s.Editor.Palette()
	x := bar.Max.X - 2*statusHeight
	drawSwatch(dst, image.Rect(x, bar.Min.Y+3, x+statusHeight-6, bar.Max.Y-3), pal.Stroke, th.StatusAccent)
	x += statusHeight
	drawSwatch(dst, image.Rect(x, bar.Min.Y+3, x+statusHeight-6, bar.Max.Y-3), pal.Fill, th.StatusAccent)

	if msg := s.Message(); msg != "" {
		drawMessage(dst, msg, th.StatusBar, th.StatusText, th.StatusAccent)
	}
}

// drawSwatch paints a small square of a palette colour with an outline.
func drawSwatch(dst *image.RGBA, r image.Rectangle, c string, outline color.RGBA) {
	col, err := render.ParseColor(c)
	if err != nil {
		return
	}
	draw.Draw(dst, r, &image.Uniform{col}, image.Point{}, draw.Over)
	drawRect(dst, r, outline)
}

func drawMessage(dst *image.RGBA, msg string, bg, text, border color.RGBA) {
	b := dst.Bounds()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(text), Face: face}
	w := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := b.Min.X + (b.Dx()-w)/2
	py := b.Min.Y + (b.Dy()-statusHeight-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+w+8, py+descent+8)
	draw.Draw(dst, rect, &image.Uniform{bg}, image.Point{}, draw.Over)
	drawRect(dst, rect, border)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func drawRect(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, col)
		dst.SetRGBA(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, col)
		dst.SetRGBA(r.Max.X-1, y, col)
	}
}
