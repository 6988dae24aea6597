package shape

import (
	"encoding/json"
	"fmt"

	"github.com/example/sketchpad/internal/geom"
)

// wireShape is the serialized form of every variant. Geometry fields are
// pointers or slices so that missing values can be told apart from zeros.
type wireShape struct {
	Tag       string       `json:"t"`
	Start     []float64    `json:"s,omitempty"`
	End       []float64    `json:"e,omitempty"`
	Corner    []float64    `json:"ulc,omitempty"`
	W         *float64     `json:"w,omitempty"`
	H         *float64     `json:"h,omitempty"`
	Points    []geom.Point `json:"p,omitempty"`
	Stroke    *string      `json:"ss,omitempty"`
	LineWidth *float64     `json:"lw,omitempty"`
	FillColor *string      `json:"fs,omitempty"`
}

// EncodeShape returns the JSON object for s. Derived geometry is never
// written.
func EncodeShape(s Shape) ([]byte, error) {
	b, err := json.Marshal(s.encode())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.Kind(), err)
	}
	return b, nil
}

// Encode returns the JSON array for shapes in order. An empty list encodes
// as [].
func Encode(shapes []Shape) ([]byte, error) {
	out := make([]wireShape, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, s.encode())
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode shapes: %w", err)
	}
	return b, nil
}

// DecodeShape decodes a single JSON object. Errors carry an index of -1.
func DecodeShape(data []byte) (Shape, error) {
	return decodeAt(-1, data)
}

// Decode decodes a JSON array of shapes. The first bad entry aborts the whole
// list; nothing decoded before it is returned.
func Decode(data []byte) ([]Shape, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode shapes: %w", err)
	}
	out := make([]Shape, 0, len(raw))
	for i, r := range raw {
		s, err := decodeAt(i, r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeAt(index int, data []byte) (Shape, error) {
	var head struct {
		Tag *string `json:"t"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, &MalformedShapeError{Index: index, Err: err}
	}
	if head.Tag == nil || !Known(Kind(*head.Tag)) {
		tag := ""
		if head.Tag != nil {
			tag = *head.Tag
		}
		return nil, &DecodeError{Index: index, Tag: tag}
	}
	kind := Kind(*head.Tag)
	var w wireShape
	unmarshal := json.Unmarshal
	if kind == KindPencil {
		unmarshal = unmarshalPencil
	}
	if err := unmarshal(data, &w); err != nil {
		return nil, &MalformedShapeError{Index: index, Kind: kind, Err: err}
	}
	s, err := New(kind)
	if err != nil {
		return nil, err
	}
	if err := s.decode(&w); err != nil {
		if m, ok := err.(*MalformedShapeError); ok {
			m.Index = index
		}
		return nil, err
	}
	return s, nil
}

// styleKeys are optional on a pencil; a value of the wrong type or a
// non-positive width is dropped and the default kept.
var styleKeys = []string{"ss", "lw", "fs"}

func unmarshalPencil(data []byte, v any) error {
	w := v.(*wireShape)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	style := make(map[string]json.RawMessage, len(styleKeys))
	for _, k := range styleKeys {
		if raw, ok := fields[k]; ok {
			style[k] = raw
			delete(fields, k)
		}
	}
	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(rest, w); err != nil {
		return err
	}
	if json.Unmarshal(style["ss"], &w.Stroke) != nil {
		w.Stroke = nil
	}
	if json.Unmarshal(style["fs"], &w.FillColor) != nil {
		w.FillColor = nil
	}
	if json.Unmarshal(style["lw"], &w.LineWidth) != nil || (w.LineWidth != nil && *w.LineWidth <= 0) {
		w.LineWidth = nil
	}
	return nil
}

// Clone returns an independent copy of s made by encoding it and decoding
// the result into a fresh shape.
func Clone(s Shape) (Shape, error) {
	w := s.encode()
	c, err := New(s.Kind())
	if err != nil {
		return nil, err
	}
	if err := c.decode(&w); err != nil {
		return nil, fmt.Errorf("clone %s: %w", s.Kind(), err)
	}
	return c, nil
}
