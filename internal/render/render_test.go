package render

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

var white = color.RGBA{255, 255, 255, 255}

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#000":      {0, 0, 0, 255},
		"#FFF":      {255, 255, 255, 255},
		"#ff0000":   {255, 0, 0, 255},
		"red":       {255, 0, 0, 255},
		" Blue ":    {0, 0, 255, 255},
		"#00ff00ff": {0, 255, 0, 255},
		"#0000":     {0, 0, 0, 0},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q = %v, want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestParseColorPremultipliesAlpha(t *testing.T) {
	got, err := ParseColor("#ff000080")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.A != 0x80 || got.R != 0x80 {
		t.Fatalf("got %v, want premultiplied red", got)
	}
}

func TestColorCacheFallsBack(t *testing.T) {
	c := newColorCache(color.RGBA{1, 2, 3, 255})
	if got := c.lookup("bogus"); got != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("fallback = %v", got)
	}
	if _, ok := c.parsed["bogus"]; !ok {
		t.Fatal("failed lookups should be cached")
	}
}

func TestPathRectIsClosed(t *testing.T) {
	var p path
	p.rect(0, 0, 10, 5)
	subs := p.polylines()
	if len(subs) != 1 || !subs[0].closed || len(subs[0].pts) != 4 {
		t.Fatalf("subpaths = %+v", subs)
	}
}

func TestPathArcJoinsCurrentPoint(t *testing.T) {
	var p path
	p.moveTo(geom.Pt(0, 0))
	p.arc(geom.Pt(50, 0), 10, 0, math.Pi)
	subs := p.polylines()
	if len(subs) != 1 {
		t.Fatalf("expected a single subpath, got %d", len(subs))
	}
	if got := subs[0].pts[1]; math.Abs(got.X-60) > 1e-9 {
		t.Fatalf("expected a joining line to the arc start, got %v", got)
	}
}

func TestRasterStrokeAndFill(t *testing.T) {
	r := NewRaster(120, 80, white)
	rect, err := shape.Begin(shape.KindRectangle, geom.Pt(10, 10))
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	rect.Update(geom.Pt(110, 60))
	rect.(shape.Filler).FillStyle().FillColor = "#00f"
	rect.Draw(r, false)

	img := r.Image()
	if got := img.RGBAAt(60, 35); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("interior = %v, want blue", got)
	}
	if got := img.RGBAAt(60, 10); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("edge = %v, want black stroke", got)
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Fatalf("outside = %v, want background", got)
	}
}

func TestRasterStrokeClipsFarSegments(t *testing.T) {
	r := NewRaster(200, 200, white)
	r.BeginPath()
	r.MoveTo(geom.Pt(0, 5))
	r.LineTo(geom.Pt(1e12, 5))
	r.MoveTo(geom.Pt(-1e12, -1e12))
	r.LineTo(geom.Pt(-1e12, 1e12))
	r.Stroke("#000", 2)

	img := r.Image()
	if got := img.RGBAAt(150, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("visible part = %v, want black", got)
	}
	if got := img.RGBAAt(150, 50); got != white {
		t.Fatalf("off-canvas segment painted %v", got)
	}
}

func TestClipLine(t *testing.T) {
	lo, hi := geom.Pt(0, 0), geom.Pt(10, 10)
	a, b, ok := clipLine(geom.Pt(-10, 5), geom.Pt(30, 5), lo, hi)
	if !ok || a != geom.Pt(0, 5) || b != geom.Pt(10, 5) {
		t.Fatalf("clip = %v %v %v", a, b, ok)
	}
	if _, _, ok := clipLine(geom.Pt(-5, -5), geom.Pt(-1, 20), lo, hi); ok {
		t.Fatal("segment left of the box should be rejected")
	}
	if _, _, ok := clipLine(geom.Pt(1, 1), geom.Pt(math.Inf(1), 1), lo, hi); ok {
		t.Fatal("infinite endpoint should be rejected")
	}
	a, b, ok = clipLine(geom.Pt(2, 3), geom.Pt(4, 5), lo, hi)
	if !ok || a != geom.Pt(2, 3) || b != geom.Pt(4, 5) {
		t.Fatal("inside segment should be unchanged")
	}
}

func TestRasterHighlight(t *testing.T) {
	r := NewRaster(50, 20, white)
	r.SetHighlight("#f00")
	seg, err := shape.Begin(shape.KindSegment, geom.Pt(5, 10))
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	seg.Update(geom.Pt(45, 10))
	seg.Draw(r, true)
	if got := r.Image().RGBAAt(25, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("selected stroke = %v, want red", got)
	}
	r.Clear()
	if got := r.Image().RGBAAt(25, 10); got != white {
		t.Fatalf("after clear = %v", got)
	}
}

func TestPDFOutput(t *testing.T) {
	p := NewPDF(200, 100, white)
	for _, k := range shape.Kinds() {
		s, err := shape.Begin(k, geom.Pt(20, 20))
		if err != nil {
			t.Fatalf("begin %s: %v", k, err)
		}
		s.Update(geom.Pt(80, 60))
		s.Update(geom.Pt(90, 70))
		s.Update(geom.Pt(100, 80))
		s.Draw(p, false)
	}
	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != int64(buf.Len()) || !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("unexpected output (%d bytes)", n)
	}
}

func TestFlattenShadow(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 5; y < 10; y++ {
		for x := 5; x < 10; x++ {
			layer.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	out := Flatten(layer, white, ShadowOptions{Radius: 1, Offset: image.Pt(4, 4), Opacity: 1})
	if !out.Bounds().Eq(layer.Bounds()) {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if got := out.RGBAAt(7, 7); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("layer pixel = %v", got)
	}
	if got := out.RGBAAt(12, 12); got == white {
		t.Fatal("expected shadow under the offset region")
	}
	if got := out.RGBAAt(1, 18); got != white {
		t.Fatalf("far pixel = %v, want background", got)
	}

	plain := Flatten(layer, white, ShadowOptions{})
	if got := plain.RGBAAt(12, 12); got != white {
		t.Fatalf("no shadow expected without opacity, got %v", got)
	}
}
