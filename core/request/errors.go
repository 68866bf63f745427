package request

import "errors"

var (
	// ErrMalformedRequest indicates the bytes do not contain a complete
	// HTTP message (no header/body separator).
	ErrMalformedRequest = errors.New("malformed request")

	// ErrInvalidRequestLine indicates the first line does not consist of
	// exactly method, path, and version tokens.
	ErrInvalidRequestLine = errors.New("invalid request line")

	// ErrUnsupportedContentType indicates a non-empty body whose content
	// type matches none of the known decoding categories.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrUnknownCharset indicates a text body declaring a charset the
	// parser cannot decode.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrInvalidTextEncoding indicates a text body that is not valid in
	// its declared (or default UTF-8) encoding.
	ErrInvalidTextEncoding = errors.New("invalid text encoding")

	// ErrInvalidJSONBody indicates a JSON body that is neither a single
	// document nor valid JSON Lines.
	ErrInvalidJSONBody = errors.New("invalid json body")

	// ErrMissingBoundary indicates a multipart/form-data content type
	// without a boundary attribute.
	ErrMissingBoundary = errors.New("multipart boundary missing in content-type")
)
