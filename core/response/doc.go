// Package response builds structured HTTP responses and serializes them to
// wire bytes.
//
// A Response is a mutable builder: version, status, an ordered header
// sequence that allows duplicates (multiple Set-Cookie headers keep their
// order), and a body of any type. Render produces the exact bytes written
// back to the connection: the status line carries only version and status
// (no reason phrase), and the body section is appended only when a body is
// present.
//
// Besides the builder, the package ships the render helpers the engine's
// handlers use: Template and FromString for HTML (backed by html/template),
// JSON, Redirect, and HTTPMessage.
package response
