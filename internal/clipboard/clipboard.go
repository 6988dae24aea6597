// Package clipboard exchanges drawings with the system clipboard. Drawings
// travel as their JSON text; a rendered image can be published alongside.
package clipboard

import (
	"bytes"
	"errors"
	"os"
)

var (
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

	// ErrNoDrawing is returned by ReadDrawing when the clipboard holds
	// something other than a serialized shape list.
	ErrNoDrawing = errors.New("clipboard does not hold a drawing")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// drawingText trims clipboard text and checks it is a JSON array.
func drawingText(b []byte) ([]byte, error) {
	b = bytes.TrimSpace(b)
	if len(b) < 2 || b[0] != '[' || b[len(b)-1] != ']' {
		return nil, ErrNoDrawing
	}
	return b, nil
}
