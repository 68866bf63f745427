package response

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"github.com/vldk-exists/maya/core/cookie"
)

// Option adjusts how a render helper builds its response.
type Option func(*renderOptions)

type renderOptions struct {
	status  int
	cookies []*cookie.Cookie
}

// WithStatus overrides the default 200 status of a render helper.
func WithStatus(status int) Option {
	return func(o *renderOptions) {
		o.status = status
	}
}

// WithCookies appends Set-Cookie headers, preserving the given order.
func WithCookies(cookies ...*cookie.Cookie) Option {
	return func(o *renderOptions) {
		o.cookies = append(o.cookies, cookies...)
	}
}

func applyOptions(opts []Option) renderOptions {
	o := renderOptions{status: DefaultStatus}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// build assembles a response with the shared header layout of the helpers.
func build(contentType string, body any, length int, o renderOptions) *Response {
	resp := &Response{
		Version: DefaultVersion,
		Status:  o.status,
		Body:    body,
	}
	resp.AddHeader("Content-Type", contentType).
		AddHeader("Content-Length", strconv.Itoa(length)).
		AddHeader("Connection", "close")
	for _, c := range o.cookies {
		resp.SetCookie(c)
	}
	return resp
}

// Template renders an HTML template file with the given context mapping.
func Template(path string, data any, opts ...Option) (*Response, error) {
	markup, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, path, err)
	}
	return FromString(string(markup), data, opts...)
}

// FromString renders inline HTML markup with the given context mapping.
func FromString(markup string, data any, opts ...Option) (*Response, error) {
	tmpl, err := template.New("page").Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	o := applyOptions(opts)
	return build("text/html; charset=UTF-8", buf.String(), buf.Len(), o), nil
}

// JSON renders a value as an application/json response body.
func JSON(v any, opts ...Option) (*Response, error) {
	data, err := marshalJSON(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalBody, err)
	}

	o := applyOptions(opts)
	return build("application/json", string(data), len(data), o), nil
}

// Redirect builds a 302 response pointing at location.
func Redirect(location string, opts ...Option) *Response {
	o := applyOptions(opts)

	resp := &Response{
		Version: DefaultVersion,
		Status:  302,
	}
	resp.AddHeader("Location", location)
	for _, c := range o.cookies {
		resp.SetCookie(c)
	}
	return resp
}

// HTTPMessage wraps raw HTTP message data in a message/http response,
// as used for TRACE echoes.
func HTTPMessage(data string, opts ...Option) *Response {
	o := applyOptions(opts)
	return build("message/http", data, len(data), o)
}
