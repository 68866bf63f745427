// Package logger provides slog attribute helpers for the server's access
// and error logs.
//
// Helpers follow the empty Attr pattern for nil safety: passing a nil error
// or an empty value yields an attribute slog discards, so call sites need
// no explicit checks.
package logger
