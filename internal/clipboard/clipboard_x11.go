//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	backend  *x11Clipboard
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		clip := &x11Clipboard{}
		if err := clip.initialize(); err != nil {
			initErr = fmt.Errorf("clipboard: connect to X server: %w", err)
			return
		}
		backend = clip
	})
	return initErr
}

// WriteDrawing publishes serialized shapes as clipboard text.
func WriteDrawing(data []byte) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return backend.own(data, nil)
}

// ReadDrawing returns the clipboard text if it holds a shape list.
func ReadDrawing() ([]byte, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	var (
		data []byte
		err  error
	)
	for _, target := range []xproto.Atom{backend.atoms.json, backend.atoms.utf8, xproto.AtomString} {
		if data, err = backend.readSelection(target); err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return drawingText(bytes.TrimRight(data, "\x00"))
}

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return backend.own(nil, buf.Bytes())
}

// x11Clipboard owns the CLIPBOARD selection from a hidden window and serves
// the last drawing or image written to it.
type x11Clipboard struct {
	conn    *xgb.Conn
	window  xproto.Window
	atoms   atomSet
	mu      sync.RWMutex
	drawing []byte
	image   []byte
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	json      xproto.Atom
	png       xproto.Atom
	property  xproto.Atom
}

func (c *x11Clipboard) initialize() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	c.conn = conn
	c.window = window
	c.atoms = atoms
	go c.eventLoop()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8",
		"application/json", "image/png", "SKETCHPAD_CLIPBOARD"}
	got := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atomSet{}, fmt.Errorf("intern %s: %w", name, err)
		}
		got[i] = reply.Atom
	}
	return atomSet{
		clipboard: got[0],
		targets:   got[1],
		utf8:      got[2],
		textPlain: got[3],
		json:      got[4],
		png:       got[5],
		property:  got[6],
	}, nil
}

// own replaces the served content and claims the selection. Exactly one of
// drawing and img is set.
func (c *x11Clipboard) own(drawing, img []byte) error {
	c.mu.Lock()
	c.drawing = append([]byte(nil), drawing...)
	c.image = append([]byte(nil), img...)
	c.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(c.conn, c.window, c.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (c *x11Clipboard) eventLoop() {
	for {
		ev, err := c.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			c.handleSelectionRequest(e)
		case xproto.SelectionClearEvent:
			c.mu.Lock()
			c.drawing, c.image = nil, nil
			c.mu.Unlock()
		}
	}
}

// payload returns the property type, format and bytes served for target.
// ok is false when nothing is held in that form.
func (c *x11Clipboard) payload(target xproto.Atom) (typ xproto.Atom, format byte, data []byte, ok bool) {
	c.mu.RLock()
	drawing, img := c.drawing, c.image
	c.mu.RUnlock()

	switch target {
	case c.atoms.targets:
		targets := []xproto.Atom{c.atoms.targets}
		if len(drawing) > 0 {
			targets = append(targets, c.atoms.json, c.atoms.utf8, xproto.AtomString, c.atoms.textPlain)
		}
		if len(img) > 0 {
			targets = append(targets, c.atoms.png)
		}
		return xproto.AtomAtom, 32, atomsToBytes(targets), true
	case c.atoms.json:
		return c.atoms.json, 8, drawing, len(drawing) > 0
	case c.atoms.utf8, xproto.AtomString, c.atoms.textPlain:
		return c.atoms.utf8, 8, drawing, len(drawing) > 0
	case c.atoms.png:
		return c.atoms.png, 8, img, len(img) > 0
	}
	return 0, 0, nil, false
}

func (c *x11Clipboard) handleSelectionRequest(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	if typ, format, data, ok := c.payload(e.Target); ok {
		length := uint32(len(data))
		if format == 32 {
			length /= 4
		}
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, typ, format, length, data)
	} else {
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	xproto.SendEvent(c.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

// readSelection asks the current owner to convert CLIPBOARD to target and
// waits for the reply on a private connection.
func (c *x11Clipboard) readSelection(target xproto.Atom) ([]byte, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, 0, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOnly, 0, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, window)

	if err := xproto.ConvertSelectionChecked(conn, window, c.atoms.clipboard, target, c.atoms.property, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}
	for {
		ev, err := conn.WaitForEvent()
		if err != nil {
			return nil, err
		}
		e, ok := ev.(xproto.SelectionNotifyEvent)
		if !ok {
			continue
		}
		if e.Property == xproto.AtomNone {
			return nil, fmt.Errorf("clipboard target unavailable")
		}
		reply, perr := xproto.GetProperty(conn, true, window, e.Property, xproto.GetPropertyTypeAny, 0, (1<<31)-1).Reply()
		if perr != nil {
			return nil, perr
		}
		return append([]byte(nil), reply.Value...), nil
	}
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}
