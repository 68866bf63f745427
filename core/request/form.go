package request

import (
	"html"
	"net/url"
	"strings"
)

// formSanitizer neutralizes characters significant to downstream string
// interpolation. This is a defensive pass, not a general escaping guarantee.
var formSanitizer = strings.NewReplacer(
	"'", `\'`,
	`"`, `\"`,
	"--", "",
)

// decodeForm decodes an application/x-www-form-urlencoded body into a
// mapping of lowercased field names to sanitized values. Only the first
// value of a repeated field is kept; undecodable pairs are skipped.
func decodeForm(body []byte) map[string]string {
	// ParseQuery fills in everything it managed to decode even on error.
	values, _ := url.ParseQuery(string(body))

	form := make(map[string]string, len(values))
	for name, vals := range values {
		if len(vals) == 0 {
			continue
		}
		form[strings.ToLower(name)] = sanitizeFormValue(vals[0])
	}
	return form
}

// sanitizeFormValue fully URL-decodes and HTML-unescapes the value, then
// HTML-escapes it and strips interpolation-significant characters.
func sanitizeFormValue(value string) string {
	if unescaped, err := url.QueryUnescape(value); err == nil {
		value = unescaped
	}
	value = html.EscapeString(html.UnescapeString(value))
	return formSanitizer.Replace(value)
}
