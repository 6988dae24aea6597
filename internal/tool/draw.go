package tool

import (
	"log"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

// Draw creates shapes of one kind. The shape follows the pointer while it is
// held and is committed on release only if it is valid.
type Draw struct {
	kind    shape.Kind
	canvas  *canvas.Canvas
	palette *Palette
	shape   shape.Shape
	last    geom.Point
}

func (d *Draw) Name() string { return string(d.kind) }

func (d *Draw) Active() bool { return d.shape != nil }

func (d *Draw) Down(p geom.Point) {
	if d.shape != nil {
		return
	}
	s, err := shape.Begin(d.kind, p)
	if err != nil {
		log.Printf("draw: %v", err)
		return
	}
	d.palette.style(s)
	d.shape = s
	d.last = p
	d.canvas.Hold(s)
}

func (d *Draw) Move(p geom.Point) {
	if d.shape == nil {
		return
	}
	d.shape.Update(p)
	d.last = p
	d.canvas.Redraw()
}

// Up applies p unless it repeats the last applied position, then commits.
func (d *Draw) Up(p geom.Point) {
	if d.shape == nil {
		return
	}
	if p != d.last {
		d.shape.Update(p)
	}
	d.finish()
}

// Cancel commits using the geometry gathered so far.
func (d *Draw) Cancel() {
	if d.shape == nil {
		return
	}
	d.finish()
}

func (d *Draw) finish() {
	s := d.shape
	d.shape = nil
	d.canvas.Release()
	if s.Valid() {
		d.canvas.Add(s)
	}
	d.canvas.Redraw()
}
