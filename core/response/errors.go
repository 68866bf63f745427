package response

import "errors"

var (
	// ErrTemplateNotFound indicates the template file could not be read.
	ErrTemplateNotFound = errors.New("template file not found")

	// ErrTemplateRender indicates the template failed to parse or execute.
	ErrTemplateRender = errors.New("template rendering failed")

	// ErrMarshalBody indicates a structured body that cannot be serialized.
	ErrMarshalBody = errors.New("failed to marshal response body")
)
