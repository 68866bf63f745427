package server

import "errors"

var (
	// ErrInvalidPort indicates a bind port outside 1-65535.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")

	// ErrServerAlreadyRunning indicates Run was called twice.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrNilHandler indicates a registration call with a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrNilResponse indicates a route handler that returned neither a
	// response nor an error.
	ErrNilResponse = errors.New("handler returned nil response")

	// ErrHandlerPanic wraps a panic recovered from a route handler.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrAfterHook indicates an after hook that failed or returned a nil
	// response. This is a configuration bug and is fatal to the request.
	ErrAfterHook = errors.New("after hook must return a response")
)
