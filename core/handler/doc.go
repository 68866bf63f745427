// Package handler defines the typed contracts between the server pipeline
// and user code: route handlers, before/after hooks, and status handlers.
//
// Every handler receives a fixed *Context carrying the parsed request and,
// once routing has completed, the extracted typed path parameters. A handler
// reads what it needs from the context instead of declaring it in its
// signature.
package handler
