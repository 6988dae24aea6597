package tool

import (
	"log"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

// drag carries a picked shape with the pointer and puts it back on top of
// the list when released. pick chooses the shape for a down position and
// reports nil when nothing is hit.
type drag struct {
	name   string
	canvas *canvas.Canvas
	pick   func(p geom.Point) shape.Shape
	held   shape.Shape
	last   geom.Point
}

func (d *drag) Name() string { return d.name }

func (d *drag) Active() bool { return d.held != nil }

func (d *drag) Down(p geom.Point) {
	if d.held != nil {
		return
	}
	s := d.pick(p)
	if s == nil {
		return
	}
	d.held = s
	d.last = p
	d.canvas.Hold(s)
	d.canvas.Redraw()
}

func (d *drag) Move(p geom.Point) {
	if d.held == nil {
		return
	}
	d.held.Move(p.Sub(d.last))
	d.last = p
	d.canvas.Redraw()
}

func (d *drag) Up(p geom.Point) {
	if d.held == nil {
		return
	}
	d.held.Move(p.Sub(d.last))
	d.last = p
	d.drop()
}

func (d *drag) Cancel() {
	if d.held == nil {
		return
	}
	d.drop()
}

func (d *drag) drop() {
	s := d.held
	d.held = nil
	d.canvas.Release()
	d.canvas.Add(s)
	d.canvas.Redraw()
}

// Mover lifts the topmost shape under the pointer out of the list, drags it
// and re-appends it, so moved shapes end up on top.
type Mover struct {
	drag
}

// NewMover returns a move tool for c.
func NewMover(c *canvas.Canvas) *Mover {
	m := &Mover{drag{name: NameMover, canvas: c}}
	m.pick = func(p geom.Point) shape.Shape {
		i := c.TopmostAt(p)
		if i < 0 {
			return nil
		}
		return c.RemoveAt(i)
	}
	return m
}

// Duplicator drags a copy of the topmost shape under the pointer. The
// original keeps its place in the list.
type Duplicator struct {
	drag
}

// NewDuplicator returns a duplicate tool for c.
func NewDuplicator(c *canvas.Canvas) *Duplicator {
	d := &Duplicator{drag{name: NameDuplicator, canvas: c}}
	d.pick = func(p geom.Point) shape.Shape {
		i := c.TopmostAt(p)
		if i < 0 {
			return nil
		}
		dup, err := shape.Clone(c.At(i))
		if err != nil {
			log.Printf("duplicate: %v", err)
			return nil
		}
		return dup
	}
	return d
}

// Deleter removes the topmost shape under the pointer on down.
type Deleter struct {
	canvas *canvas.Canvas
}

func (d *Deleter) Name() string { return NameDeleter }

func (d *Deleter) Active() bool { return false }

func (d *Deleter) Down(p geom.Point) {
	if i := d.canvas.TopmostAt(p); i >= 0 {
		d.canvas.RemoveAt(i)
	}
	d.canvas.Redraw()
}

func (d *Deleter) Move(geom.Point) {}
func (d *Deleter) Up(geom.Point)   {}
func (d *Deleter) Cancel()         {}

// Bucket recolours every shape under the pointer with the palette's stroke
// colour, and closed shapes with its fill colour too.
type Bucket struct {
	canvas  *canvas.Canvas
	palette *Palette
}

func (b *Bucket) Name() string { return NameBucket }

func (b *Bucket) Active() bool { return false }

func (b *Bucket) Down(p geom.Point) {
	for _, s := range b.canvas.HitsAt(p) {
		b.palette.recolor(s)
	}
	b.canvas.Redraw()
}

func (b *Bucket) Move(geom.Point) {}
func (b *Bucket) Up(geom.Point)   {}
func (b *Bucket) Cancel()         {}
