package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by drawn shapes on export.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
	// Color tints the shadow. The zero value means opaque black.
	Color color.RGBA
}

// DefaultShadowOptions returns a soft shadow offset down and to the right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{Radius: 4, Offset: image.Pt(3, 3), Opacity: 0.35}
}

// Flatten composites a transparent shape layer over background. When opts
// has a positive opacity the layer's alpha, blurred and offset, is painted
// in between as a shadow. The result has the layer's bounds.
func Flatten(layer *image.RGBA, background color.RGBA, opts ShadowOptions) *image.RGBA {
	b := layer.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{background}, image.Point{}, draw.Src)
	if opts.Opacity > 0 {
		opacity := opts.Opacity
		if opacity > 1 {
			opacity = 1
		}
		mask := boxBlur(alphaMask(layer), opts.Radius)
		shade := image.NewUniform(scale(opts.Color, opacity))
		draw.DrawMask(out, b, shade, image.Point{}, mask, b.Min.Sub(opts.Offset), draw.Over)
	}
	draw.Draw(out, b, layer, b.Min, draw.Over)
	return out
}

// scale multiplies every premultiplied channel of c by k.
func scale(c color.RGBA, k float64) color.RGBA {
	if c == (color.RGBA{}) {
		c.A = 255
	}
	mul := func(v uint8) uint8 { return uint8(float64(v)*k + 0.5) }
	return color.RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: mul(c.A)}
}

func alphaMask(img *image.RGBA) *image.Alpha {
	b := img.Bounds()
	m := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.SetAlpha(x, y, color.Alpha{A: img.RGBAAt(x, y).A})
		}
	}
	return m
}

// boxBlur averages every pixel over a (2r+1) square, one axis at a time.
func boxBlur(src *image.Alpha, r int) *image.Alpha {
	if r <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := make([]uint8, w*h)
	out := image.NewAlpha(b)
	row := make([]int, w+1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			row[x+1] = row[x] + int(src.Pix[y*src.Stride+x])
		}
		for x := 0; x < w; x++ {
			lo, hi := clampRange(x, r, w)
			tmp[y*w+x] = uint8((row[hi+1] - row[lo]) / (hi - lo + 1))
		}
	}
	col := make([]int, h+1)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y+1] = col[y] + int(tmp[y*w+x])
		}
		for y := 0; y < h; y++ {
			lo, hi := clampRange(y, r, h)
			out.Pix[y*out.Stride+x] = uint8((col[hi+1] - col[lo]) / (hi - lo + 1))
		}
	}
	return out
}

func clampRange(i, r, n int) (lo, hi int) {
	lo, hi = i-r, i+r
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	return lo, hi
}
