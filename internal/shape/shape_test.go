package shape

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/geom"
)

type recorder struct {
	ops []string
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) BeginPath() { r.add("begin") }
func (r *recorder) MoveTo(p geom.Point) { r.add("move %v,%v", p.X, p.Y) }
func (r *recorder) LineTo(p geom.Point) { r.add("line %v,%v", p.X, p.Y) }
func (r *recorder) QuadTo(c, p geom.Point) { r.add("quad") }
func (r *recorder) CubeTo(c1, c2, p geom.Point) { r.add("cube") }
func (r *recorder) Arc(c geom.Point, radius, start, sweep float64) {
	r.add("arc %v,%v r=%v", c.X, c.Y, radius)
}
func (r *recorder) Rect(x, y, w, h float64) { r.add("rect %v,%v %vx%v", x, y, w, h) }
func (r *recorder) ClosePath() { r.add("close") }
func (r *recorder) Stroke(color string, w float64) { r.add("stroke %s %v", color, w) }
func (r *recorder) Fill(color string) { r.add("fill %s", color) }

func (r *recorder) last() string { return r.ops[len(r.ops)-1] }

type highlighted struct {
	recorder
}

func (h *highlighted) HighlightColor() string { return "#f0f" }

func drawn(t *testing.T, k Kind, from, to geom.Point) Shape {
	t.Helper()
	s, err := Begin(k, from)
	if err != nil {
		t.Fatalf("begin %s: %v", k, err)
	}
	s.Update(to)
	return s
}

func TestRoundTripEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		s := drawn(t, k, geom.Pt(3, 7), geom.Pt(90, 41))
		if k == KindPencil {
			s.Update(geom.Pt(95.5, 44))
			s.Update(geom.Pt(100, 50))
		}
		st := s.StrokeStyle()
		st.StrokeColor = "#123456"
		st.StrokeWidth = 4.5
		if f, ok := s.(Filler); ok {
			f.FillStyle().FillColor = "red"
		}
		want, err := EncodeShape(s)
		if err != nil {
			t.Fatalf("encode %s: %v", k, err)
		}
		back, err := DecodeShape(want)
		if err != nil {
			t.Fatalf("decode %s: %v", k, err)
		}
		if back.Kind() != k {
			t.Fatalf("decoded kind = %s, want %s", back.Kind(), k)
		}
		got, err := EncodeShape(back)
		if err != nil {
			t.Fatalf("re-encode %s: %v", k, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s round trip:\n got %s\nwant %s", k, got, want)
		}
	}
}

func TestEncodeOmitsDerivedFields(t *testing.T) {
	for _, k := range []Kind{KindCurve, KindParable, KindArc, KindSemicircle, KindCircle} {
		s := drawn(t, k, geom.Pt(0, 0), geom.Pt(80, 20))
		s.Draw(&recorder{}, false)
		b, err := EncodeShape(s)
		if err != nil {
			t.Fatalf("encode %s: %v", k, err)
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		for key := range m {
			switch key {
			case "t", "s", "e", "ss", "lw", "fs":
			default:
				t.Errorf("%s encoded unexpected field %q", k, key)
			}
		}
	}
}

func TestValidityBoundary(t *testing.T) {
	for _, k := range []Kind{KindSegment, KindArrow, KindCurve, KindParable, KindArc, KindSemicircle, KindCircle} {
		if drawn(t, k, geom.Pt(0, 0), geom.Pt(4, 5)).Valid() {
			t.Errorf("%s with extent 9 should be invalid", k)
		}
		if !drawn(t, k, geom.Pt(0, 0), geom.Pt(5, 5)).Valid() {
			t.Errorf("%s with extent 10 should be valid", k)
		}
	}
}

func TestTwoPointInvalidWithoutEnd(t *testing.T) {
	s, err := Begin(KindSegment, geom.Pt(0, 0))
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.Valid() {
		t.Fatal("segment without an end point should be invalid")
	}
}

func TestPencilBoundary(t *testing.T) {
	p, err := Begin(KindPencil, geom.Pt(0, 0))
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	p.Update(geom.Pt(1, 1))
	p.Update(geom.Pt(2, 2))
	if p.Valid() {
		t.Fatal("pencil with 3 points should be invalid")
	}
	p.Update(geom.Pt(3, 3))
	if !p.Valid() {
		t.Fatal("pencil with 4 points should be valid")
	}
}

func TestRectangleNormalises(t *testing.T) {
	s := drawn(t, KindRectangle, geom.Pt(110, 60), geom.Pt(10, 10))
	r := s.(*Rectangle)
	if r.X != 10 || r.Y != 10 || r.W != 100 || r.H != 50 {
		t.Fatalf("rectangle = %v,%v %vx%v", r.X, r.Y, r.W, r.H)
	}
	if !r.Valid() {
		t.Fatal("rectangle should be valid")
	}
	flat := drawn(t, KindRectangle, geom.Pt(10, 10), geom.Pt(200, 10))
	if flat.Valid() {
		t.Fatal("rectangle with zero height should be invalid")
	}
}

func TestRectangleScenarioEncoding(t *testing.T) {
	s := drawn(t, KindRectangle, geom.Pt(10, 10), geom.Pt(110, 60))
	s.StrokeStyle().StrokeColor = "#000"
	s.(Filler).FillStyle().FillColor = "#fff"
	b, err := EncodeShape(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var got struct {
		T   string    `json:"t"`
		ULC []float64 `json:"ulc"`
		W   float64   `json:"w"`
		H   float64   `json:"h"`
		SS  string    `json:"ss"`
		FS  string    `json:"fs"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.T != "rectangle" || len(got.ULC) != 2 || got.ULC[0] != 10 || got.ULC[1] != 10 ||
		got.W != 100 || got.H != 50 || got.SS != "#000" || got.FS != "#fff" {
		t.Fatalf("unexpected encoding %s", b)
	}
}

func TestContains(t *testing.T) {
	seg := drawn(t, KindSegment, geom.Pt(0, 0), geom.Pt(100, 0))
	if !seg.Contains(geom.Pt(50, 1)) || seg.Contains(geom.Pt(50, 10)) {
		t.Error("segment hit test")
	}
	arrow := drawn(t, KindArrow, geom.Pt(0, 0), geom.Pt(100, 0))
	if !arrow.Contains(geom.Pt(50, 1)) || arrow.Contains(geom.Pt(50, 10)) {
		t.Error("arrow hit test should match the segment's")
	}

	circle := drawn(t, KindCircle, geom.Pt(0, 0), geom.Pt(100, 0))
	if !circle.Contains(geom.Pt(50, 40)) || !circle.Contains(geom.Pt(50, 50)) {
		t.Error("circle should contain interior and boundary points")
	}
	if circle.Contains(geom.Pt(50, 51)) {
		t.Error("circle should not contain outside points")
	}

	rect := drawn(t, KindRectangle, geom.Pt(10, 10), geom.Pt(110, 60))
	if rect.Contains(geom.Pt(10, 30)) || rect.Contains(geom.Pt(110, 30)) {
		t.Error("rectangle edges should not hit")
	}
	if !rect.Contains(geom.Pt(11, 11)) {
		t.Error("rectangle interior should hit")
	}

	semi := drawn(t, KindSemicircle, geom.Pt(0, 0), geom.Pt(100, 0))
	if !semi.Contains(geom.Pt(50, -50)) || !semi.Contains(geom.Pt(50, 54)) {
		t.Error("semicircle should accept the whole band around its circle")
	}
	if semi.Contains(geom.Pt(50, 0)) || semi.Contains(geom.Pt(50, 56)) {
		t.Error("semicircle should reject points off the band")
	}

	pencil := drawn(t, KindPencil, geom.Pt(0, 0), geom.Pt(1, 1))
	if pencil.Contains(geom.Pt(0, 0)) {
		t.Error("pencil should never be hit")
	}
}

func TestCurvedContainsEndpointsBeforeDraw(t *testing.T) {
	for _, k := range []Kind{KindCurve, KindParable, KindArc} {
		s := drawn(t, k, geom.Pt(20, 30), geom.Pt(140, 90))
		if !s.Contains(geom.Pt(20, 30)) || !s.Contains(geom.Pt(140, 90)) {
			t.Errorf("%s should contain its end points", k)
		}
		if s.Contains(geom.Pt(900, 900)) {
			t.Errorf("%s should not contain a far point", k)
		}
	}
}

func TestArcContainsLastPiece(t *testing.T) {
	a := drawn(t, KindArc, geom.Pt(0, 0), geom.Pt(100, 0)).(*Arc)
	_, c2 := a.Controls()
	if mid5 := geom.Midpoint(c2, a.To); mid5 != geom.Pt(100, -21) {
		t.Fatalf("last midpoint = %v, want (100,-21)", mid5)
	}
	// The final piece runs straight down from (100,-21) to the end point.
	if !a.Contains(geom.Pt(101, -10)) {
		t.Fatal("point beside the final piece should hit")
	}
	if a.Contains(geom.Pt(110, -10)) {
		t.Fatal("point right of the arc should miss")
	}
}

func TestMoveInvalidatesDerived(t *testing.T) {
	c := drawn(t, KindCircle, geom.Pt(0, 0), geom.Pt(20, 0))
	c.Draw(&recorder{}, false)
	if !c.Contains(geom.Pt(10, 0)) {
		t.Fatal("expected centre hit")
	}
	c.Move(geom.Pt(100, 100))
	if c.Contains(geom.Pt(10, 0)) {
		t.Fatal("stale centre after move")
	}
	if !c.Contains(geom.Pt(110, 100)) {
		t.Fatal("expected hit at moved centre")
	}
}

func TestDrawHighlight(t *testing.T) {
	s := drawn(t, KindSegment, geom.Pt(0, 0), geom.Pt(40, 0))
	var r recorder
	s.Draw(&r, true)
	if r.last() != "stroke #FF0 2" {
		t.Fatalf("selected stroke = %q", r.last())
	}
	r.ops = nil
	s.Draw(&r, false)
	if r.last() != "stroke #000 2" {
		t.Fatalf("plain stroke = %q", r.last())
	}
	var h highlighted
	s.Draw(&h, true)
	if h.last() != "stroke #f0f 2" {
		t.Fatalf("surface highlight = %q", h.last())
	}
}

func TestClosedShapesFillThenStroke(t *testing.T) {
	for _, k := range []Kind{KindCircle, KindRectangle} {
		s := drawn(t, k, geom.Pt(0, 0), geom.Pt(40, 30))
		var r recorder
		s.Draw(&r, false)
		n := len(r.ops)
		if n < 2 || r.ops[n-2] != "fill #ffffff" || r.ops[n-1] != "stroke #000 2" {
			t.Errorf("%s ops = %v", k, r.ops)
		}
	}
}

func TestPencilOnlyStrokes(t *testing.T) {
	s := drawn(t, KindPencil, geom.Pt(0, 0), geom.Pt(1, 1))
	var r recorder
	s.Draw(&r, false)
	for _, op := range r.ops {
		if strings.HasPrefix(op, "fill") {
			t.Fatalf("pencil filled: %v", r.ops)
		}
	}
	if r.last() != "stroke #000 2" {
		t.Fatalf("pencil ops = %v", r.ops)
	}
}

func TestSemicircleCenterRounded(t *testing.T) {
	s := drawn(t, KindSemicircle, geom.Pt(0, 0), geom.Pt(15, 0)).(*Semicircle)
	if c := s.Center(); c.X != 8 || c.Y != 0 {
		t.Fatalf("centre = %v, want (8, 0)", c)
	}
	if s.Radius() != 7.5 {
		t.Fatalf("radius = %v", s.Radius())
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode([]byte(`[{"t":"segment","s":[0,0],"e":[20,0]},{"t":"hexagon"}]`))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Index != 1 || de.Tag != "hexagon" {
		t.Fatalf("unexpected error %+v", de)
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatal("DecodeError should match ErrUnknownKind")
	}

	_, err = Decode([]byte(`[{"s":[0,0],"e":[20,0]}]`))
	if !errors.As(err, &de) || de.Tag != "" {
		t.Fatalf("expected missing tag DecodeError, got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		`[{"t":"segment","s":[0,0]}]`:                           "e",
		`[{"t":"circle","s":[0],"e":[1,1]}]`:                    "s",
		`[{"t":"rectangle","ulc":[0,0],"h":4}]`:                 "w",
		`[{"t":"rectangle","w":3,"h":4}]`:                       "ulc",
		`[{"t":"pencil","p":[]}]`:                               "p",
		`[{"t":"arc","s":[0,0],"e":[20,0],"lw":0}]`:             "lw",
		`[{"t":"arrow","s":[0,0],"e":[20,0],"lw":-1,"ss":"#f"}]`: "lw",
	}
	for in, field := range cases {
		_, err := Decode([]byte(in))
		var me *MalformedShapeError
		if !errors.As(err, &me) {
			t.Errorf("%s: expected MalformedShapeError, got %v", in, err)
			continue
		}
		if me.Field != field || me.Index != 0 {
			t.Errorf("%s: got field %q index %d, want %q", in, me.Field, me.Index, field)
		}
	}

	_, err := Decode([]byte(`[{"t":"segment","s":"nope","e":[1,1]}]`))
	var me *MalformedShapeError
	if !errors.As(err, &me) || me.Kind != KindSegment {
		t.Fatalf("expected MalformedShapeError for a type mismatch, got %v", err)
	}
}

func TestDecodeAppliesDefaults(t *testing.T) {
	shapes, err := Decode([]byte(`[{"t":"pencil","p":[{"x":1,"y":2},{"x":3,"y":4}]},{"t":"circle","s":[0,0],"e":[20,0]}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	p := shapes[0].(*Pencil)
	if len(p.Points) != 2 || p.Points[1] != geom.Pt(3, 4) {
		t.Fatalf("points = %v", p.Points)
	}
	if p.StrokeColor != DefaultStrokeColor || p.StrokeWidth != DefaultStrokeWidth {
		t.Fatalf("pencil style = %+v", p.Style)
	}
	c := shapes[1].(*Circle)
	if c.FillColor != DefaultFillColor {
		t.Fatalf("circle fill = %q", c.FillColor)
	}
}

func TestDecodePencilIgnoresBadStyle(t *testing.T) {
	cases := []string{
		`[{"t":"pencil","p":[{"x":1,"y":2}],"lw":0}]`,
		`[{"t":"pencil","p":[{"x":1,"y":2}],"ss":5}]`,
		`[{"t":"pencil","p":[{"x":1,"y":2}],"fs":[1],"lw":"wide"}]`,
		`[{"t":"pencil","p":[{"x":1,"y":2}],"ss":null,"lw":-3}]`,
	}
	for _, in := range cases {
		shapes, err := Decode([]byte(in))
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		p := shapes[0].(*Pencil)
		if p.StrokeColor != DefaultStrokeColor || p.StrokeWidth != DefaultStrokeWidth {
			t.Errorf("%s: style = %+v, want defaults", in, p.Style)
		}
	}

	shapes, err := Decode([]byte(`[{"t":"pencil","p":[{"x":1,"y":2}],"ss":"#f00","lw":0,"fs":"#0f0"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := shapes[0].(*Pencil)
	if p.StrokeColor != "#f00" || p.StrokeWidth != DefaultStrokeWidth || p.FillColor != "#0f0" {
		t.Fatalf("well-formed keys should be kept: %+v", p.Fill)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	b, err := Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("empty list = %s", b)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := drawn(t, KindPencil, geom.Pt(0, 0), geom.Pt(5, 5))
	orig.Update(geom.Pt(6, 6))
	orig.Update(geom.Pt(7, 7))
	c, err := Clone(orig)
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	c.Move(geom.Pt(10, 10))
	c.StrokeStyle().StrokeColor = "blue"
	if got := orig.(*Pencil).Points[0]; got != geom.Pt(0, 0) {
		t.Fatalf("original moved with clone: %v", got)
	}
	if orig.StrokeStyle().StrokeColor != DefaultStrokeColor {
		t.Fatal("original style changed with clone")
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New("blob"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
