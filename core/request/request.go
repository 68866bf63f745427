package request

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
)

var crlfcrlf = []byte("\r\n\r\n")

// Cookie is a single (name, value) pair decoded from the cookie header.
type Cookie struct {
	Name  string
	Value string
}

// Request is a parsed HTTP request. It is immutable once constructed.
type Request struct {
	// Method is the HTTP method token, e.g. "GET".
	Method string
	// Path is the raw request target, including any query string.
	Path string
	// Version is the protocol version, e.g. "HTTP/1.1".
	Version string
	// Headers maps lowercase header names to values. If a header occurs
	// more than once, the last occurrence wins.
	Headers map[string]string
	// Cookies holds the cookie header decoded into ordered pairs.
	// It is nil when no cookie header is present.
	Cookies []Cookie
	// Args holds the decoded query arguments.
	Args url.Values
	// Body is the decoded request body, tagged by content category.
	Body Body

	raw []byte
}

// Raw returns the original wire bytes the request was parsed from.
func (r *Request) Raw() []byte {
	return r.raw
}

// Header returns the value of the named header. The lookup is
// case-insensitive; missing headers yield "".
func (r *Request) Header(name string) string {
	return r.Headers[strings.ToLower(name)]
}

// Parse turns complete raw request bytes into a Request.
func Parse(raw []byte) (*Request, error) {
	headerBlock, body, found := bytes.Cut(raw, crlfcrlf)
	if !found {
		return nil, ErrMalformedRequest
	}

	lines := strings.Split(string(headerBlock), "\n")
	tokens := strings.Fields(strings.TrimSpace(lines[0]))
	if len(tokens) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRequestLine, strings.TrimSpace(lines[0]))
	}

	req := &Request{
		Method:  tokens[0],
		Path:    tokens[1],
		Version: tokens[2],
		Headers: make(map[string]string),
		Args:    parseQueryArgs(tokens[1]),
		raw:     raw,
	}

	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		req.Headers[name] = value
		if name == "cookie" {
			req.Cookies = parseCookies(value)
		}
	}

	decoded, err := decodeBody(body, req.Headers["content-type"])
	if err != nil {
		return nil, err
	}
	req.Body = decoded

	return req, nil
}

// parseQueryArgs extracts query arguments from the request target.
// Undecodable pairs are kept as-is rather than failing the request.
func parseQueryArgs(path string) url.Values {
	rest := path
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	_, query, found := strings.Cut(rest, "?")
	if !found || query == "" {
		return url.Values{}
	}
	args, _ := url.ParseQuery(query)
	return args
}

// parseCookies decodes a cookie header value into ordered pairs by
// splitting on "; " and then on the first "=".
func parseCookies(value string) []Cookie {
	parts := strings.Split(value, "; ")
	cookies := make([]Cookie, 0, len(parts))
	for _, part := range parts {
		name, val, _ := strings.Cut(part, "=")
		cookies = append(cookies, Cookie{Name: name, Value: val})
	}
	return cookies
}
