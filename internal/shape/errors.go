package shape

import "fmt"

// DecodeError reports a serialized shape whose type tag is missing or names
// no known variant.
type DecodeError struct {
	Index int
	Tag   string
}

func (e *DecodeError) Error() string {
	what := fmt.Sprintf("unknown type tag %q", e.Tag)
	if e.Tag == "" {
		what = "missing type tag"
	}
	if e.Index < 0 {
		return "decode shape: " + what
	}
	return fmt.Sprintf("decode shape %d: %s", e.Index, what)
}

// Unwrap lets callers match the error with errors.Is(err, ErrUnknownKind).
func (e *DecodeError) Unwrap() error { return ErrUnknownKind }

// MalformedShapeError reports a serialized shape with a known tag whose
// required geometry is missing or malformed, or whose values are out of
// range. Field names the offending JSON key when known.
type MalformedShapeError struct {
	Index int
	Kind  Kind
	Field string
	Err   error
}

func (e *MalformedShapeError) Error() string {
	msg := "decode shape"
	if e.Index >= 0 {
		msg = fmt.Sprintf("decode shape %d", e.Index)
	}
	if e.Kind != "" {
		msg += fmt.Sprintf(" (%s)", e.Kind)
	}
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s: field %q: %v", msg, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: missing or malformed field %q", msg, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg + ": malformed"
}

func (e *MalformedShapeError) Unwrap() error { return e.Err }
