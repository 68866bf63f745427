package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// MIME types routed to each decoding category. Text types are matched by
// substring against the full content-type value, the rest require an exact
// match except multipart/form-data which is also matched by substring.
var (
	bytesTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/zip",
		"application/x-rar-compressed",
		"application/octet-stream",
		"application/gzip",
		"font/woff",
		"font/woff2",
		"application/vnd.ms-fontobject",
		"font/ttf",
		"font/otf",
		"application/x-tar",
		"application/x-shockwave-flash",
		"image/png",
		"image/jpeg",
		"image/gif",
		"image/svg+xml",
		"image/webp",
		"audio/mpeg",
		"audio/ogg",
		"audio/wav",
		"video/mp4",
		"video/webm",
		"video/ogg",
	}

	textTypes = []string{
		"text/plain",
		"text/html",
		"text/css",
		"text/javascript",
		"text/csv",
		"application/xml",
	}

	formTypes = []string{
		"application/x-www-form-urlencoded",
	}

	jsonTypes = []string{
		"application/json",
		"application/ld+json",
		"application/x-ndjson",
	}
)

// BodyKind tags which decoding rule was applied to a request body.
type BodyKind int

const (
	// BodyNone marks an empty body or one without a content type.
	BodyNone BodyKind = iota
	// BodyText marks a charset-decoded textual body.
	BodyText
	// BodyJSON marks a parsed JSON document or JSON Lines sequence.
	BodyJSON
	// BodyBytes marks an opaque binary body kept as raw bytes.
	BodyBytes
	// BodyForm marks a decoded application/x-www-form-urlencoded body.
	BodyForm
	// BodyMultiform marks a decoded multipart/form-data body.
	BodyMultiform
)

// Part is a single multipart/form-data field: either a file part carrying
// Filename and raw Content, or a plain text field carrying Value.
type Part struct {
	Filename string
	Content  []byte
	Value    string
}

// IsFile reports whether the part was uploaded with a filename.
func (p Part) IsFile() bool {
	return p.Filename != ""
}

// Body is a tagged union of decoded request body representations.
// At most one representation is populated, indicated by Kind.
type Body struct {
	kind      BodyKind
	text      string
	json      any
	raw       []byte
	form      map[string]string
	multiform map[string]Part
}

// Kind reports which body category was decoded.
func (b Body) Kind() BodyKind {
	return b.kind
}

// IsEmpty reports whether no body representation is populated.
func (b Body) IsEmpty() bool {
	return b.kind == BodyNone
}

// Text returns the decoded text body, or "" for other kinds.
func (b Body) Text() string {
	return b.text
}

// JSON returns the parsed JSON value: a single document, or a []any of
// per-line values for JSON Lines input. It is nil for other kinds.
func (b Body) JSON() any {
	return b.json
}

// Bytes returns the raw binary body, or nil for other kinds.
func (b Body) Bytes() []byte {
	return b.raw
}

// Form returns the sanitized form fields, or nil for other kinds.
func (b Body) Form() map[string]string {
	return b.form
}

// Multiform returns the multipart fields, or nil for other kinds.
func (b Body) Multiform() map[string]Part {
	return b.multiform
}

// decodeBody dispatches body decoding on the content type. Decoding only
// happens when the trimmed body is non-empty and a content type is present.
func decodeBody(body []byte, contentType string) (Body, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || contentType == "" {
		return Body{}, nil
	}

	switch {
	case containsAny(contentType, textTypes):
		text, err := decodeText(body, contentType)
		if err != nil {
			return Body{}, err
		}
		return Body{kind: BodyText, text: text}, nil

	case exactMatch(contentType, jsonTypes):
		value, err := decodeJSON(trimmed)
		if err != nil {
			return Body{}, err
		}
		return Body{kind: BodyJSON, json: value}, nil

	case exactMatch(contentType, bytesTypes):
		return Body{kind: BodyBytes, raw: body}, nil

	case exactMatch(contentType, formTypes):
		return Body{kind: BodyForm, form: decodeForm(trimmed)}, nil

	case strings.Contains(contentType, "multipart/form-data"):
		parts, err := decodeMultipart(body, contentType)
		if err != nil {
			return Body{}, err
		}
		return Body{kind: BodyMultiform, multiform: parts}, nil
	}

	return Body{}, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
}

// decodeText decodes a text body using the charset named in the content
// type, defaulting to UTF-8 when absent.
func decodeText(body []byte, contentType string) (string, error) {
	charset := ""
	if _, params, found := strings.Cut(contentType, ";"); found {
		if _, name, ok := strings.Cut(params, "="); ok {
			charset = strings.TrimSpace(name)
		}
	}

	if charset == "" || strings.EqualFold(charset, "utf-8") {
		if !utf8.Valid(body) {
			return "", ErrInvalidTextEncoding
		}
		return string(body), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTextEncoding, charset)
	}
	return string(decoded), nil
}

// decodeJSON parses a single JSON document, falling back to JSON Lines
// when the body is not one valid document.
func decodeJSON(body []byte) (any, error) {
	var value any
	if err := json.Unmarshal(body, &value); err == nil {
		return value, nil
	}

	var values []any
	for _, line := range strings.Split(string(body), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(line), &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSONBody, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func containsAny(contentType string, types []string) bool {
	for _, t := range types {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}

func exactMatch(contentType string, types []string) bool {
	for _, t := range types {
		if contentType == t {
			return true
		}
	}
	return false
}
