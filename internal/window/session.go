// Package window hosts the interactive editor: a shiny window whose pointer
// events drive an editor.Editor and whose key presses run session actions.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
)

const messageDuration = 2 * time.Second

// Swatches are the colours cycled through by the stroke and fill keys.
var Swatches = []string{"#000", "#FFF", "red", "orange", "yellow", "green", "blue", "purple"}

// Widths are the stroke widths stepped through by the width keys.
var Widths = []float64{1, 2, 3, 5, 8, 13}

// Options configures a Session.
type Options struct {
	Path     string // drawing file, loaded when it exists
	SaveDir  string // directory for unnamed drawings and exports
	Width    int
	Height   int
	Tool     string
	Palette  tool.Palette
	Theme    *theme.Theme
	Shadow   render.ShadowOptions
	Notifier *notify.Notifier
}

// Session is one editing session of a drawing.
type Session struct {
	ID       string
	Path     string
	SaveDir  string
	Editor   *editor.Editor
	Raster   *render.Raster
	Theme    *theme.Theme
	Shadow   render.ShadowOptions
	Notifier *notify.Notifier

	message      string
	messageUntil time.Time
	confirmQuit  bool
	now          func() time.Time

	writeClipboard func([]byte) error
	readClipboard  func() ([]byte, error)
}

// NewSession creates the canvas and editor and loads opts.Path when the file
// exists.
func NewSession(opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	if opts.Palette == (tool.Palette{}) {
		opts.Palette = tool.DefaultPalette()
	}
	r := render.NewRaster(opts.Width, opts.Height, th.Canvas)
	r.SetHighlight(theme.Hex(th.Highlight))
	ed, err := editor.New(canvas.New(r), opts.Tool, editor.WithPalette(opts.Palette))
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:             uuid.NewString(),
		Path:           opts.Path,
		SaveDir:        opts.SaveDir,
		Editor:         ed,
		Raster:         r,
		Theme:          th,
		Shadow:         opts.Shadow,
		Notifier:       opts.Notifier,
		now:            time.Now,
		writeClipboard: clipboard.WriteDrawing,
		readClipboard:  clipboard.ReadDrawing,
	}
	if s.Path != "" {
		data, err := os.ReadFile(s.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Printf("session %s: new drawing %s", s.ID, s.Path)
		case err != nil:
			return nil, fmt.Errorf("open %s: %w", s.Path, err)
		default:
			if err := ed.Canvas().ImportJSON(data); err != nil {
				return nil, fmt.Errorf("open %s: %w", s.Path, err)
			}
			log.Printf("session %s: opened %s", s.ID, s.Path)
		}
	}
	ed.Canvas().MarkSaved()
	ed.Canvas().Redraw()
	return s, nil
}

// Canvas returns the edited drawing.
func (s *Session) Canvas() *canvas.Canvas { return s.Editor.Canvas() }

// Flash shows msg in the status bar for a short while and logs it.
func (s *Session) Flash(msg string) {
	s.message = msg
	s.messageUntil = s.now().Add(messageDuration)
	log.Printf("session %s: %s", s.ID, msg)
}

// Message returns the flashed message while it is still current.
func (s *Session) Message() string {
	if s.message == "" || !s.now().Before(s.messageUntil) {
		return ""
	}
	return s.message
}

// DismissMessage hides the flashed message.
func (s *Session) DismissMessage() { s.messageUntil = time.Time{} }

// Title names the window after the drawing and marks unsaved changes.
func (s *Session) Title() string {
	name := "untitled"
	if s.Path != "" {
		name = filepath.Base(s.Path)
	}
	if s.Canvas().HasUnsavedChanges() {
		name += " *"
	}
	return "Sketchpad - " + name
}

// Status summarises the active tool, palette and drawing size.
func (s *Session) Status() string {
	p := s.Editor.Palette()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s | stroke %s fill %s width %s | %d shapes",
		s.Editor.Tool().Name(), p.Stroke, p.Fill, strconv.FormatFloat(p.Width, 'g', -1, 64), s.Canvas().Len())
	if s.Canvas().HasUnsavedChanges() {
		sb.WriteString(" | modified")
	}
	return sb.String()
}

// Do runs a named action. It reports true when the window should close.
func (s *Session) Do(action string) bool {
	if action != ActionQuit {
		s.confirmQuit = false
	}
	var err error
	switch action {
	case ActionSave:
		err = s.Save()
	case ActionCopy:
		err = s.Copy()
	case ActionCopyImage:
		err = s.CopyImage()
	case ActionPaste:
		err = s.Paste()
	case ActionUndo:
		if !s.Canvas().UndoLast() {
			s.Flash("nothing to undo")
		}
	case ActionReset:
		s.Canvas().Reset()
	case ActionExport:
		err = s.Export()
	case ActionCancel:
		s.Editor.Cancel()
	case ActionStroke:
		s.Editor.SetStroke(next(Swatches, s.Editor.Palette().Stroke))
	case ActionFill:
		s.Editor.SetFill(next(Swatches, s.Editor.Palette().Fill))
	case ActionWider, ActionThinner:
		err = s.Editor.SetWidth(step(Widths, s.Editor.Palette().Width, action == ActionWider))
	case ActionQuit:
		return s.requestQuit()
	default:
		name, ok := strings.CutPrefix(action, toolPrefix)
		if !ok {
			log.Printf("session %s: unknown action %q", s.ID, action)
			return false
		}
		err = s.Editor.SelectTool(name)
	}
	if err != nil {
		s.Flash(err.Error())
	}
	return false
}

// requestQuit asks for a second quit when there are unsaved changes.
func (s *Session) requestQuit() bool {
	if !s.Canvas().HasUnsavedChanges() || s.confirmQuit {
		return true
	}
	s.confirmQuit = true
	s.Flash("unsaved changes, press ctrl+q again to quit")
	return false
}

// Save writes the drawing as JSON to Path, choosing a name in SaveDir the
// first time an unnamed drawing is saved.
func (s *Session) Save() error {
	if s.Path == "" {
		s.Path = s.defaultName(".json")
	}
	data, err := s.Canvas().ExportJSON()
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.Canvas().MarkSaved()
	s.Flash("saved " + s.Path)
	s.Notifier.Save(s.Path)
	return nil
}

// Copy places the drawing's JSON on the clipboard.
func (s *Session) Copy() error {
	data, err := s.Canvas().ExportJSON()
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := s.writeClipboard(data); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	s.Flash(fmt.Sprintf("copied %d shapes", s.Canvas().Len()))
	s.Notifier.Copy("drawing")
	return nil
}

// CopyImage places a rendered PNG of the drawing on the clipboard.
func (s *Session) CopyImage() error {
	if err := clipboard.WriteImage(export.Image(s.Canvas().Shapes(), s.exportOptions())); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	s.Flash("copied image")
	s.Notifier.Copy("image")
	return nil
}

// Paste appends the shapes held on the clipboard. Nothing is added when any
// of them fails to decode.
func (s *Session) Paste() error {
	data, err := s.readClipboard()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	before := s.Canvas().Len()
	if err := s.Canvas().ImportJSON(data); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	s.Canvas().MarkChanged()
	s.Flash(fmt.Sprintf("pasted %d shapes", s.Canvas().Len()-before))
	return nil
}

// Export renders the drawing to a PNG beside the drawing file, or in SaveDir
// when it has no file yet.
func (s *Session) Export() error {
	var path string
	if s.Path != "" {
		path = strings.TrimSuffix(s.Path, filepath.Ext(s.Path)) + ".png"
	} else {
		path = s.defaultName(".png")
	}
	img, err := export.File(path, s.Canvas().Shapes(), s.exportOptions())
	if err != nil {
		return err
	}
	s.Flash("exported " + path)
	s.Notifier.Export(path, img)
	return nil
}

func (s *Session) exportOptions() export.Options {
	b := s.Raster.Image().Bounds()
	shadow := s.Shadow
	if shadow.Color == (color.RGBA{}) {
		shadow.Color = s.Theme.Shadow
	}
	return export.Options{Width: b.Dx(), Height: b.Dy(), Background: s.Theme.Canvas, Shadow: shadow}
}

func (s *Session) defaultName(ext string) string {
	dir := s.SaveDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "drawing-"+s.now().Format("20060102-150405")+ext)
}

// next returns the entry after cur, wrapping around. An unknown cur yields
// the first entry.
func next(list []string, cur string) string {
	for i, v := range list {
		if strings.EqualFold(v, cur) {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

// step moves to the next larger or smaller width, clamping at the ends.
func step(list []float64, cur float64, up bool) float64 {
	if up {
		for _, w := range list {
			if w > cur {
				return w
			}
		}
		return list[len(list)-1]
	}
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] < cur {
			return list[i]
		}
	}
	return list[0]
}
