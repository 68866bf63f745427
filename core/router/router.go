package router

import (
	"regexp"
	"strings"
)

// Route is a single entry of the route table.
type Route[H any] struct {
	// Template is the path template the route was registered with.
	Template string
	// Handler is the value associated with the template.
	Handler H

	pattern  *regexp.Regexp
	segments []segment
}

// Dynamic reports whether the route carries typed path parameters.
func (r *Route[H]) Dynamic() bool {
	return r.pattern != nil
}

// Match is a successful lookup: the matched route and its extracted,
// type-coerced parameters (empty for literal routes).
type Match[H any] struct {
	Route  *Route[H]
	Params Params
}

// Table is an ordered route table. Routes are matched in registration
// order, first match wins. Registration is not safe for concurrent use
// with matching; register everything before serving.
type Table[H any] struct {
	routes []*Route[H]
}

// New creates an empty route table.
func New[H any]() *Table[H] {
	return &Table[H]{}
}

// Add registers a handler under a path template. Templates containing
// <type:name> markers are compiled to a matching expression at
// registration time.
func (t *Table[H]) Add(template string, handler H) error {
	if template == "" {
		return ErrEmptyTemplate
	}

	route := &Route[H]{Template: template, Handler: handler}
	if IsDynamic(template) {
		pattern, segments, err := compileTemplate(template)
		if err != nil {
			return err
		}
		route.pattern = pattern
		route.segments = segments
	}

	t.routes = append(t.routes, route)
	return nil
}

// Len returns the number of registered routes.
func (t *Table[H]) Len() int {
	return len(t.routes)
}

// Routes returns the registered templates in registration order.
func (t *Table[H]) Routes() []string {
	templates := make([]string, len(t.routes))
	for i, r := range t.routes {
		templates[i] = r.Template
	}
	return templates
}

// Match finds the first route matching the request path. hasArgs reports
// whether the request carries query arguments, which enables matching the
// path with its query string stripped against literal templates.
//
// A nil Match with a nil error means no route matched. A non-nil error
// means a route matched but a parameter failed its declared type
// conversion; the caller treats that as a handler fault, not a miss.
func (t *Table[H]) Match(path string, hasArgs bool) (*Match[H], error) {
	bare := path
	if i := strings.IndexByte(bare, '?'); i >= 0 {
		bare = bare[:i]
	}

	for _, route := range t.routes {
		if path == route.Template || (hasArgs && bare == route.Template) {
			return &Match[H]{Route: route, Params: Params{}}, nil
		}

		if route.pattern == nil {
			continue
		}
		captures := route.pattern.FindStringSubmatch(path)
		if captures == nil {
			continue
		}

		params := make(Params, len(route.segments))
		names := route.pattern.SubexpNames()
		for _, seg := range route.segments {
			raw := ""
			for i, name := range names {
				if name == seg.name && i < len(captures) {
					raw = captures[i]
					break
				}
			}
			value, err := coerceParam(seg.kind, seg.name, raw)
			if err != nil {
				return nil, err
			}
			params[seg.name] = value
		}
		return &Match[H]{Route: route, Params: params}, nil
	}

	return nil, nil
}
