package router

import "errors"

var (
	// ErrEmptyTemplate indicates a route registered with an empty template.
	ErrEmptyTemplate = errors.New("route template cannot be empty")

	// ErrUnknownSegmentType indicates a <type:name> marker whose type is
	// outside the supported set (int, float, String, path, uuid).
	ErrUnknownSegmentType = errors.New("unknown segment type")

	// ErrInvalidTemplate indicates a template that does not compile to a
	// matching expression.
	ErrInvalidTemplate = errors.New("invalid route template")

	// ErrParamCoercion indicates a matched path segment that failed its
	// declared type conversion.
	ErrParamCoercion = errors.New("path parameter coercion failed")
)
