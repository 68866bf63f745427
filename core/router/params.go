package router

import (
	"fmt"
	"html"
	"strconv"

	"github.com/google/uuid"
)

// Params holds the typed values extracted from a matched dynamic route,
// keyed by marker name.
type Params map[string]any

// Int returns the named int parameter, or 0 when absent or differently typed.
func (p Params) Int(name string) int {
	v, _ := p[name].(int)
	return v
}

// Float returns the named float parameter, or 0 when absent or differently typed.
func (p Params) Float(name string) float64 {
	v, _ := p[name].(float64)
	return v
}

// String returns the named String parameter, HTML-escaped as delivered by
// the matcher, or "" when absent or differently typed.
func (p Params) String(name string) string {
	v, _ := p[name].(string)
	return v
}

// UUID returns the named uuid parameter, or the zero UUID when absent or
// differently typed.
func (p Params) UUID(name string) uuid.UUID {
	v, _ := p[name].(uuid.UUID)
	return v
}

// coerceParam converts a captured path segment to its declared type.
// The raw value is HTML-escaped before conversion.
func coerceParam(kind SegmentKind, name, raw string) (any, error) {
	escaped := html.EscapeString(raw)

	switch kind {
	case SegmentInt:
		n, err := strconv.Atoi(escaped)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an int", ErrParamCoercion, raw)
		}
		return n, nil

	case SegmentFloat:
		f, err := strconv.ParseFloat(escaped, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a float", ErrParamCoercion, raw)
		}
		return f, nil

	case SegmentString:
		return escaped, nil

	case SegmentPath:
		if len(escaped) == 0 || escaped[0] != '/' {
			return nil, fmt.Errorf("%w: path %q must start with '/'", ErrParamCoercion, raw)
		}
		return escaped, nil

	case SegmentUUID:
		id, err := uuid.Parse(escaped)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a UUID", ErrParamCoercion, raw)
		}
		if id.Version() != 4 {
			return nil, fmt.Errorf("%w: %q is not a version-4 UUID", ErrParamCoercion, raw)
		}
		return id, nil
	}

	return nil, fmt.Errorf("%w: %q for parameter %q", ErrUnknownSegmentType, kind, name)
}
