package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/vldk-exists/maya/core/cookie"
)

const (
	// DefaultVersion is the protocol version used when none is set.
	DefaultVersion = "HTTP/1.1"
	// DefaultStatus is the status used when none is set and a body exists.
	DefaultStatus = 200
	// EmptyBodyStatus is the status used when none is set and there is no body.
	EmptyBodyStatus = 204
)

// Header is a single response header. The header sequence is ordered and
// duplicates are allowed.
type Header struct {
	Name  string
	Value string
}

// Response is a mutable HTTP response builder.
type Response struct {
	// Version is the protocol version; empty means HTTP/1.1.
	Version string
	// Status is the status code; zero resolves to 200, or 204 when the
	// body is empty.
	Status int
	// Headers are emitted in order, duplicates preserved.
	Headers []Header
	// Body is rendered by type: raw bytes unchanged, scalars as text,
	// maps/slices/structs as JSON, anything else via its textual form.
	Body any
}

// New creates a response with the default version and status.
func New() *Response {
	return &Response{Version: DefaultVersion, Status: DefaultStatus}
}

// AddHeader appends a header, preserving order and duplicates.
func (r *Response) AddHeader(name, value string) *Response {
	r.Headers = append(r.Headers, Header{Name: name, Value: value})
	return r
}

// SetCookie appends a Set-Cookie header for the given cookie.
func (r *Response) SetCookie(c *cookie.Cookie) *Response {
	return r.AddHeader("Set-Cookie", c.String())
}

// SetBody replaces the response body.
func (r *Response) SetBody(v any) *Response {
	r.Body = v
	return r
}

// HasBody reports whether a body section will be rendered. Zero scalars
// (0, 0.0, false) and empty strings count as no body, so a response built
// from one resolves to 204 when no status is set.
func (r *Response) HasBody() bool {
	switch v := r.Body.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []byte:
		return len(v) > 0
	}

	switch rv := reflect.ValueOf(r.Body); rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	}
	return true
}

// ResolvedStatus returns the status code that Render will emit.
func (r *Response) ResolvedStatus() int {
	if r.Status != 0 {
		return r.Status
	}
	if r.HasBody() {
		return DefaultStatus
	}
	return EmptyBodyStatus
}

// Render serializes the response into wire bytes: the status line without a
// reason phrase, the ordered headers, and the body section. When there is
// no body, no blank line is appended after the headers.
func (r *Response) Render() []byte {
	version := r.Version
	if version == "" {
		version = DefaultVersion
	}

	var buf bytes.Buffer
	buf.WriteString(version)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(r.ResolvedStatus()))
	buf.WriteString("\r\n")

	for _, h := range r.Headers {
		buf.WriteString(h.Name)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.WriteString("\r\n")
	}

	if r.HasBody() {
		buf.WriteString("\r\n")
		buf.Write(renderBody(r.Body))
	}

	return buf.Bytes()
}

// renderBody converts a body value to bytes by its type.
func renderBody(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Appendf(nil, "%v", b)
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer:
		if data, err := marshalJSON(v); err == nil {
			return data
		}
	}

	return fmt.Appendf(nil, "%v", v)
}

// marshalJSON serializes structured bodies without escaping HTML or
// non-ASCII characters.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
