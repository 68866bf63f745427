package router

import (
	"fmt"
	"regexp"
)

// SegmentKind is the declared type of a dynamic path segment.
type SegmentKind string

const (
	SegmentInt    SegmentKind = "int"
	SegmentFloat  SegmentKind = "float"
	SegmentString SegmentKind = "String"
	SegmentPath   SegmentKind = "path"
	SegmentUUID   SegmentKind = "uuid"
)

// markerPattern matches a <type:name> marker inside a route template.
var markerPattern = regexp.MustCompile(`<([a-zA-Z_]+):([a-zA-Z_]+)>`)

// segment is one dynamic marker of a compiled template.
type segment struct {
	kind SegmentKind
	name string
}

// IsDynamic reports whether the template contains at least one
// <type:name> marker.
func IsDynamic(template string) bool {
	return markerPattern.MatchString(template)
}

// compileTemplate turns a dynamic route template into an anchored regular
// expression with one named capturing group per marker. Each group matches
// a run of non-slash characters; the match is case-sensitive.
func compileTemplate(template string) (*regexp.Regexp, []segment, error) {
	var segments []segment
	for _, m := range markerPattern.FindAllStringSubmatch(template, -1) {
		kind := SegmentKind(m[1])
		switch kind {
		case SegmentInt, SegmentFloat, SegmentString, SegmentPath, SegmentUUID:
		default:
			return nil, nil, fmt.Errorf("%w: %q in %q", ErrUnknownSegmentType, m[1], template)
		}
		segments = append(segments, segment{kind: kind, name: m[2]})
	}

	expr := "^" + markerPattern.ReplaceAllString(template, `(?P<$2>[^/]+)`) + "$"
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, template, err)
	}

	return pattern, segments, nil
}
