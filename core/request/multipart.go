package request

import (
	"bytes"
	"regexp"
	"strings"
)

var (
	boundaryPattern    = regexp.MustCompile(`(?i)boundary=(.+)`)
	dispositionPattern = regexp.MustCompile(`(?i)Content-Disposition: (.+)`)
)

// decodeMultipart splits a multipart/form-data body on its boundary and
// collects the named parts. Parts without a name attribute are dropped;
// parts with a filename keep their content as raw bytes, the rest are
// decoded as text with invalid byte sequences replaced.
func decodeMultipart(body []byte, contentType string) (map[string]Part, error) {
	m := boundaryPattern.FindStringSubmatch(contentType)
	if m == nil {
		return nil, ErrMissingBoundary
	}
	boundary := []byte("--" + m[1])

	result := make(map[string]Part)
	for _, part := range bytes.Split(body, boundary) {
		part = bytes.TrimSpace(part)
		if len(part) == 0 || bytes.Equal(part, []byte("--")) {
			continue
		}

		headers, content, _ := bytes.Cut(part, crlfcrlf)
		if len(headers) == 0 {
			continue
		}

		dm := dispositionPattern.FindSubmatch(headers)
		if dm == nil {
			continue
		}

		var name, filename string
		for _, attr := range strings.Split(string(dm[1]), ";") {
			attr = strings.TrimSpace(attr)
			switch {
			case strings.HasPrefix(attr, "name="):
				name = strings.Trim(attr[len("name="):], `"`)
			case strings.HasPrefix(attr, "filename="):
				filename = strings.Trim(attr[len("filename="):], `"`)
			}
		}
		if name == "" {
			continue
		}

		if filename != "" {
			result[name] = Part{Filename: filename, Content: content}
		} else {
			result[name] = Part{Value: strings.ToValidUTF8(string(content), "�")}
		}
	}

	return result, nil
}
