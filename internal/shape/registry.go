package shape

import (
	"errors"
	"fmt"

	"github.com/example/sketchpad/internal/geom"
)

// ErrUnknownKind is returned when a kind has no registered variant.
var ErrUnknownKind = errors.New("unknown shape kind")

var kinds = []Kind{
	KindSegment,
	KindArrow,
	KindCurve,
	KindParable,
	KindArc,
	KindSemicircle,
	KindCircle,
	KindRectangle,
	KindPencil,
}

var factories = map[Kind]func() Shape{
	KindSegment:    func() Shape { return &Segment{Style: DefaultStyle()} },
	KindArrow:      func() Shape { return &Arrow{Segment: Segment{Style: DefaultStyle()}} },
	KindCurve:      func() Shape { return NewCurve() },
	KindParable:    func() Shape { return NewParable() },
	KindArc:        func() Shape { return &Arc{Style: DefaultStyle()} },
	KindSemicircle: func() Shape { return &Semicircle{Style: DefaultStyle()} },
	KindCircle:     func() Shape { return &Circle{Fill: DefaultFill()} },
	KindRectangle:  func() Shape { return &Rectangle{Fill: DefaultFill()} },
	KindPencil:     func() Shape { return &Pencil{Fill: DefaultFill()} },
}

// Kinds lists every shape kind in a stable order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Known reports whether k names a shape variant.
func Known(k Kind) bool {
	_, ok := factories[k]
	return ok
}

// IsClosed reports whether shapes of kind k carry a fill colour.
func IsClosed(k Kind) bool {
	switch k {
	case KindCircle, KindRectangle, KindPencil:
		return true
	}
	return false
}

// New returns an empty shape of kind k with default styles.
func New(k Kind) (Shape, error) {
	f, ok := factories[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return f(), nil
}

// Begin returns a shape of kind k anchored at p, as a draw tool creates it
// on pointer down.
func Begin(k Kind, p geom.Point) (Shape, error) {
	s, err := New(k)
	if err != nil {
		return nil, err
	}
	s.begin(p)
	return s, nil
}
