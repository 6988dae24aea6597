package window

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/editor"
)

// Run opens the editor window for s and blocks until it is closed.
func Run(s *Session) { driver.Main(func(scr screen.Screen) { Main(scr, s) }) }

// Main runs the event loop on scr. Every event is handled to completion
// before the next is read.
func Main(scr screen.Screen, s *Session) {
	b := s.Raster.Image().Bounds()
	width, height := b.Dx(), b.Dy()+statusHeight
	w, err := scr.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: s.Title()})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	s.Canvas().OnRedraw = func() { w.Send(paint.Event{}) }
	defer func() { s.Canvas().OnRedraw = nil }()
	log.Printf("session %s: window %dx%d", s.ID, width, height)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				s.Editor.Cancel()
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintFrame(scr, w, s, width, height)
		case mouse.Event:
			if s.Message() != "" && e.Direction == mouse.DirPress {
				s.DismissMessage()
				w.Send(paint.Event{})
				continue
			}
			if ev, ok := editor.MouseEvent(e); ok {
				s.Editor.Handle(ev)
			}
		case key.Event:
			action, ok := actionFor(e)
			if !ok {
				continue
			}
			if s.Do(action) {
				return
			}
			w.Send(paint.Event{})
		case error:
			log.Printf("window: %v", e)
		}
	}
}

func paintFrame(scr screen.Screen, w screen.Window, s *Session, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	buf, err := scr.NewBuffer(image.Point{X: width, Y: height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer buf.Release()
	drawFrame(buf.RGBA(), s)
	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
}
