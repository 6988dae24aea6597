// Package tool turns pointer events into edits of a canvas. Each tool is a
// small state machine that is idle until a pointer goes down and active until
// it is released or cancelled.
package tool

import (
	"errors"
	"fmt"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

// EventType is the phase of a pointer interaction.
type EventType int

const (
	Down EventType = iota
	Move
	Up
	// Cancel ends an interaction without a final position, as a touch end
	// does.
	Cancel
)

func (t EventType) String() string {
	switch t {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// PointerKind identifies the device an event came from.
type PointerKind int

const (
	Mouse PointerKind = iota
	Touch
)

// Event is one normalised pointer event in canvas coordinates.
type Event struct {
	Type     EventType
	Position geom.Point
	Pointer  PointerKind
	// Button is the mouse button, 0 being the primary one.
	Button int
	// Touches is the number of active touch contacts.
	Touches int
}

// Tool handles the pointer events of one interaction mode.
type Tool interface {
	Name() string
	Down(p geom.Point)
	Move(p geom.Point)
	Up(p geom.Point)
	Cancel()
	Active() bool
}

// Dispatch routes ev to the matching method of t.
func Dispatch(t Tool, ev Event) {
	switch ev.Type {
	case Down:
		t.Down(ev.Position)
	case Move:
		t.Move(ev.Position)
	case Up:
		t.Up(ev.Position)
	case Cancel:
		t.Cancel()
	}
}

// Names of the tools that are not draw tools.
const (
	NameMover      = "mover"
	NameDeleter    = "deleter"
	NameDuplicator = "duplicator"
	NameBucket     = "bucket"
)

// DefaultName is the tool selected when nothing else is configured.
const DefaultName = string(shape.KindCircle)

// ErrUnknownTool is returned by New for names that select no tool.
var ErrUnknownTool = errors.New("unknown tool")

// Names lists every selectable tool: one draw tool per shape kind followed by
// the editing tools.
func Names() []string {
	var out []string
	for _, k := range shape.Kinds() {
		out = append(out, string(k))
	}
	return append(out, NameMover, NameDeleter, NameDuplicator, NameBucket)
}

// New returns the tool called name operating on c. Draw and bucket tools
// read colours from pal at the moment they act.
func New(name string, c *canvas.Canvas, pal *Palette) (Tool, error) {
	switch name {
	case NameMover:
		return NewMover(c), nil
	case NameDeleter:
		return &Deleter{canvas: c}, nil
	case NameDuplicator:
		return NewDuplicator(c), nil
	case NameBucket:
		return &Bucket{canvas: c, palette: pal}, nil
	}
	k := shape.Kind(name)
	if !shape.Known(k) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return &Draw{kind: k, canvas: c, palette: pal}, nil
}
