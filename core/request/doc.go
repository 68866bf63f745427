// Package request parses raw HTTP/1.1 request bytes into a structured,
// immutable Request.
//
// Parse splits the header block from the body on the first CRLFCRLF, reads
// the request line, lowercases header names, extracts query arguments and
// cookie pairs, and decodes the body according to its content type. Exactly
// one body category is populated per request: text, json, bytes, form, or
// multiform. Requests without a body, or without a content-type header,
// carry an empty body.
//
//	req, err := request.Parse(raw)
//	if err != nil {
//		// malformed request, respond 400
//	}
//	switch req.Body.Kind() {
//	case request.BodyJSON:
//		data := req.Body.JSON()
//	case request.BodyForm:
//		form := req.Body.Form()
//	}
package request
