package handler

import "github.com/vldk-exists/maya/core/response"

// Func handles a matched route. Returning an error (or a nil response with
// a nil error) is a handler fault and surfaces to the client as a 500.
type Func func(ctx *Context) (*response.Response, error)

// BeforeFunc runs before routing. A non-nil response short-circuits the
// pipeline: the route handler, the remaining before hooks, and the after
// hooks are all skipped and the returned response is sent as-is.
type BeforeFunc func(ctx *Context) *response.Response

// AfterFunc runs after a response exists, whether it came from a handler or
// from the status-handler table. It must return a response; returning nil
// or an error is fatal to the request.
type AfterFunc func(ctx *Context, resp *response.Response) (*response.Response, error)

// StatusFunc produces the response body for a status code, replacing the
// generic status page.
type StatusFunc func() *response.Response
