package canvas

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/shape"
)

// nullSurface records how often the canvas was cleared and what was drawn
// selected.
type nullSurface struct {
	clears  int
	strokes []string
}

func (n *nullSurface) Clear()                      { n.clears++ }
func (n *nullSurface) BeginPath()                  {}
func (n *nullSurface) MoveTo(geom.Point)           {}
func (n *nullSurface) LineTo(geom.Point)           {}
func (n *nullSurface) QuadTo(_, _ geom.Point)      {}
func (n *nullSurface) CubeTo(_, _, _ geom.Point)   {}
func (n *nullSurface) Arc(geom.Point, float64, float64, float64) {}
func (n *nullSurface) Rect(_, _, _, _ float64)     {}
func (n *nullSurface) ClosePath()                  {}
func (n *nullSurface) Stroke(c string, _ float64)  { n.strokes = append(n.strokes, c) }
func (n *nullSurface) Fill(string)                 {}

func segment(t *testing.T, from, to geom.Point, color string) shape.Shape {
	t.Helper()
	s, err := shape.Begin(shape.KindSegment, from)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	s.Update(to)
	s.StrokeStyle().StrokeColor = color
	return s
}

func TestRedrawOrder(t *testing.T) {
	surf := &nullSurface{}
	c := New(surf)
	c.Add(segment(t, geom.Pt(0, 0), geom.Pt(50, 0), "a"))
	c.Add(segment(t, geom.Pt(0, 10), geom.Pt(50, 10), "b"))
	c.Hold(segment(t, geom.Pt(0, 20), geom.Pt(50, 20), "held"))
	c.Redraw()
	want := []string{"a", "b", shape.DefaultHighlight}
	if len(surf.strokes) != len(want) {
		t.Fatalf("strokes = %v", surf.strokes)
	}
	for i := range want {
		if surf.strokes[i] != want[i] {
			t.Fatalf("strokes = %v, want %v", surf.strokes, want)
		}
	}
	if surf.clears != 1 {
		t.Fatalf("clears = %d", surf.clears)
	}
}

func TestTopmostAndHits(t *testing.T) {
	c := New(&nullSurface{})
	c.Add(segment(t, geom.Pt(0, 0), geom.Pt(100, 0), "low"))
	c.Add(segment(t, geom.Pt(0, 0), geom.Pt(100, 0), "high"))
	if i := c.TopmostAt(geom.Pt(50, 0)); i != 1 {
		t.Fatalf("topmost = %d, want 1", i)
	}
	hits := c.HitsAt(geom.Pt(50, 0))
	if len(hits) != 2 || hits[0].StrokeStyle().StrokeColor != "high" {
		t.Fatalf("hits not topmost first")
	}
	if i := c.TopmostAt(geom.Pt(50, 50)); i != -1 {
		t.Fatalf("expected no hit, got %d", i)
	}
}

func TestUndoAndReset(t *testing.T) {
	c := New(&nullSurface{})
	if c.UndoLast() || c.HasUnsavedChanges() {
		t.Fatal("undo on empty canvas should report false and change nothing")
	}
	c.Add(segment(t, geom.Pt(0, 0), geom.Pt(50, 0), "a"))
	c.Add(segment(t, geom.Pt(0, 10), geom.Pt(50, 10), "b"))
	if c.HasUnsavedChanges() {
		t.Fatal("canvas should start unchanged")
	}
	if !c.UndoLast() || c.Len() != 1 || c.At(0).StrokeStyle().StrokeColor != "a" {
		t.Fatal("undo should drop the last shape")
	}
	if !c.HasUnsavedChanges() {
		t.Fatal("undo should mark the drawing changed")
	}
	c.MarkSaved()
	c.Reset()
	if c.Len() != 0 || !c.HasUnsavedChanges() {
		t.Fatal("reset should empty the list and mark the drawing changed")
	}
	c.MarkSaved()
	if c.HasUnsavedChanges() {
		t.Fatal("MarkSaved should clear the flag")
	}
}

func TestExportEmpty(t *testing.T) {
	b, err := New(&nullSurface{}).ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("export = %s", b)
	}
}

func TestImportAppendsInOrder(t *testing.T) {
	surf := &nullSurface{}
	c := New(surf)
	c.Add(segment(t, geom.Pt(0, 0), geom.Pt(50, 0), "first"))
	data := []byte(`[
		{"t":"segment","s":[0,10],"e":[50,10],"ss":"second","lw":2},
		{"t":"rectangle","ulc":[10,10],"w":100,"h":50,"ss":"third","lw":2,"fs":"#fff"}
	]`)
	if err := c.ImportJSON(data); err != nil {
		t.Fatalf("import: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d", c.Len())
	}
	for i, want := range []string{"first", "second", "third"} {
		if got := c.At(i).StrokeStyle().StrokeColor; got != want {
			t.Fatalf("shape %d = %q, want %q", i, got, want)
		}
	}
	if surf.clears != 1 {
		t.Fatalf("import should redraw once, got %d", surf.clears)
	}
}

func TestImportIsAllOrNothing(t *testing.T) {
	c := New(&nullSurface{})
	err := c.ImportJSON([]byte(`[{"t":"segment","s":[0,0],"e":[50,0]},{"t":"star"}]`))
	var de *shape.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("nothing should be imported, got %d shapes", c.Len())
	}

	err = c.ImportJSON([]byte(`[{"t":"circle","s":[0,0]}]`))
	var me *shape.MalformedShapeError
	if !errors.As(err, &me) || c.Len() != 0 {
		t.Fatalf("expected MalformedShapeError and no shapes, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	a := New(&nullSurface{})
	a.Add(segment(t, geom.Pt(1, 2), geom.Pt(30, 40), "#123"))
	out, err := a.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	b := New(&nullSurface{})
	if err := b.ImportJSON(out); err != nil {
		t.Fatalf("import: %v", err)
	}
	again, err := b.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(again) != string(out) {
		t.Fatalf("round trip mismatch:\n%s\n%s", out, again)
	}
}

func TestImportFarCoordinatesRedraws(t *testing.T) {
	c := New(render.NewRaster(200, 200, color.RGBA{255, 255, 255, 255}))
	done := make(chan error, 1)
	go func() {
		done <- c.ImportJSON([]byte(`[{"t":"segment","s":[0,0],"e":[1e12,5]}]`))
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("import: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("redraw did not finish")
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
}
