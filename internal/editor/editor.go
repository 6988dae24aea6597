// Package editor is the boundary between an input source and the drawing
// tools. It filters pointer events, tracks the selected tool and palette and
// flags the drawing as changed when an interaction starts.
package editor

import (
	"fmt"
	"log"

	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/tool"
)

// Editor routes accepted events to the active tool.
type Editor struct {
	canvas  *canvas.Canvas
	palette *tool.Palette
	tool    tool.Tool
}

// Option configures an Editor.
type Option func(*Editor)

// WithPalette sets the initial colours and width.
func WithPalette(p tool.Palette) Option {
	return func(e *Editor) { *e.palette = p }
}

// New returns an editor for c with the named tool selected. An empty name
// selects the default tool.
func New(c *canvas.Canvas, toolName string, opts ...Option) (*Editor, error) {
	pal := tool.DefaultPalette()
	e := &Editor{canvas: c, palette: &pal}
	for _, opt := range opts {
		opt(e)
	}
	if toolName == "" {
		toolName = tool.DefaultName
	}
	if err := e.SelectTool(toolName); err != nil {
		return nil, err
	}
	return e, nil
}

// Canvas returns the edited canvas.
func (e *Editor) Canvas() *canvas.Canvas { return e.canvas }

// Tool returns the active tool.
func (e *Editor) Tool() tool.Tool { return e.tool }

// Palette returns the current colours and width.
func (e *Editor) Palette() tool.Palette { return *e.palette }

// SelectTool switches to the named tool. An interaction in progress on the
// previous tool is finished first so no shape is left held.
func (e *Editor) SelectTool(name string) error {
	t, err := tool.New(name, e.canvas, e.palette)
	if err != nil {
		return err
	}
	if e.tool != nil && e.tool.Active() {
		e.tool.Cancel()
	}
	e.tool = t
	log.Printf("editor: tool %s", name)
	return nil
}

// SetStroke sets the stroke colour used by draw and bucket tools.
func (e *Editor) SetStroke(c string) { e.palette.Stroke = c }

// SetFill sets the fill colour used for closed shapes.
func (e *Editor) SetFill(c string) { e.palette.Fill = c }

// SetWidth sets the stroke width of new shapes.
func (e *Editor) SetWidth(w float64) error {
	if w <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", w)
	}
	e.palette.Width = w
	return nil
}

// Accepts reports whether ev passes the input filter: primary mouse button
// only, or exactly one touch contact. Touch cancels carry no contact and
// always pass.
func Accepts(ev tool.Event) bool {
	switch ev.Pointer {
	case tool.Mouse:
		return ev.Button == 0
	case tool.Touch:
		return ev.Type == tool.Cancel || ev.Touches == 1
	}
	return false
}

// Handle filters ev and hands it to the active tool. It reports whether the
// event was accepted.
func (e *Editor) Handle(ev tool.Event) bool {
	if !Accepts(ev) {
		return false
	}
	if ev.Type == tool.Down {
		e.canvas.MarkChanged()
	}
	tool.Dispatch(e.tool, ev)
	return true
}

// Cancel ends any interaction in progress, as when the window loses focus.
func (e *Editor) Cancel() {
	if e.tool.Active() {
		e.tool.Cancel()
	}
}

// MouseEvent converts a shiny mouse event into a tool event. Presses and
// releases become Down and Up, button-less motion becomes Move. Wheel and
// step events report false.
func MouseEvent(m mouse.Event) (tool.Event, bool) {
	ev := tool.Event{
		Position: geom.Pt(float64(m.X), float64(m.Y)),
		Pointer:  tool.Mouse,
	}
	if m.Button.IsWheel() {
		return ev, false
	}
	switch m.Direction {
	case mouse.DirPress:
		ev.Type = tool.Down
	case mouse.DirRelease:
		ev.Type = tool.Up
	case mouse.DirNone:
		ev.Type = tool.Move
		return ev, true
	default:
		return ev, false
	}
	ev.Button = int(m.Button - mouse.ButtonLeft)
	return ev, true
}
