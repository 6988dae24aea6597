// Package canvas owns the ordered shape list of a drawing together with the
// surface it is painted on. The list order is the z-order: later shapes are
// drawn on top and win hit tests.
package canvas

import (
	"fmt"
	"log"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

// Surface is a shape.Surface that can be wiped before a full redraw.
type Surface interface {
	shape.Surface
	Clear()
}

// Canvas is the shared drawing model. It is not safe for concurrent use;
// callers serialise events on one goroutine.
type Canvas struct {
	surface Surface
	shapes  []shape.Shape
	held    shape.Shape
	changed bool
	// OnRedraw, if set, runs after every redraw so the owner can present
	// the surface.
	OnRedraw func()
}

// New returns an empty canvas painting on s.
func New(s Surface) *Canvas {
	return &Canvas{surface: s}
}

// Surface returns the surface the canvas paints on.
func (c *Canvas) Surface() Surface { return c.surface }

// Redraw clears the surface, draws every committed shape in order and then
// the held shape, selected, on top.
func (c *Canvas) Redraw() {
	c.surface.Clear()
	for _, s := range c.shapes {
		s.Draw(c.surface, false)
	}
	if c.held != nil {
		c.held.Draw(c.surface, true)
	}
	if c.OnRedraw != nil {
		c.OnRedraw()
	}
}

// Shapes returns a copy of the committed list in z-order.
func (c *Canvas) Shapes() []shape.Shape {
	return append([]shape.Shape(nil), c.shapes...)
}

// Len returns the number of committed shapes.
func (c *Canvas) Len() int { return len(c.shapes) }

// TopmostAt returns the index of the last committed shape containing p, or
// -1 when nothing is hit.
func (c *Canvas) TopmostAt(p geom.Point) int {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if c.shapes[i].Contains(p) {
			return i
		}
	}
	return -1
}

// HitsAt returns every committed shape containing p, topmost first.
func (c *Canvas) HitsAt(p geom.Point) []shape.Shape {
	var hits []shape.Shape
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if c.shapes[i].Contains(p) {
			hits = append(hits, c.shapes[i])
		}
	}
	return hits
}

// At returns the committed shape at index i.
func (c *Canvas) At(i int) shape.Shape { return c.shapes[i] }

// Add appends s on top of the list.
func (c *Canvas) Add(s shape.Shape) {
	c.shapes = append(c.shapes, s)
	log.Printf("canvas: added %s (%d shapes)", s.Kind(), len(c.shapes))
}

// RemoveAt takes the shape at index i out of the list and returns it.
func (c *Canvas) RemoveAt(i int) shape.Shape {
	s := c.shapes[i]
	c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
	log.Printf("canvas: removed %s (%d shapes)", s.Kind(), len(c.shapes))
	return s
}

// Hold marks s as the in-flight shape drawn selected on every redraw. The
// held shape is never part of the committed list.
func (c *Canvas) Hold(s shape.Shape) { c.held = s }

// Held returns the in-flight shape, if any.
func (c *Canvas) Held() shape.Shape { return c.held }

// Release clears the held shape and returns it.
func (c *Canvas) Release() shape.Shape {
	s := c.held
	c.held = nil
	return s
}

// Reset drops every shape and marks the drawing changed.
func (c *Canvas) Reset() {
	c.shapes = nil
	c.held = nil
	c.changed = true
	log.Printf("canvas: reset")
	c.Redraw()
}

// UndoLast removes the most recently added shape and marks the drawing
// changed. It reports false when the list is empty.
func (c *Canvas) UndoLast() bool {
	if len(c.shapes) == 0 {
		return false
	}
	c.RemoveAt(len(c.shapes) - 1)
	c.changed = true
	c.Redraw()
	return true
}

// ExportJSON encodes the committed list.
func (c *Canvas) ExportJSON() ([]byte, error) {
	return shape.Encode(c.shapes)
}

// ImportJSON decodes a JSON array of shapes and appends them in array order
// with a single redraw. Nothing is appended when any entry fails to decode.
func (c *Canvas) ImportJSON(data []byte) error {
	decoded, err := shape.Decode(data)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	c.shapes = append(c.shapes, decoded...)
	log.Printf("canvas: imported %d shapes (%d total)", len(decoded), len(c.shapes))
	c.Redraw()
	return nil
}

// HasUnsavedChanges reports whether an interaction touched the drawing since
// it was loaded or last saved.
func (c *Canvas) HasUnsavedChanges() bool { return c.changed }

// MarkChanged flags the drawing as modified.
func (c *Canvas) MarkChanged() { c.changed = true }

// MarkSaved clears the modified flag.
func (c *Canvas) MarkSaved() { c.changed = false }
