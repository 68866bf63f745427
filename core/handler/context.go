package handler

import (
	"github.com/vldk-exists/maya/core/request"
	"github.com/vldk-exists/maya/core/router"
)

// Context carries everything a handler may read for one request: the parsed
// request, the typed path parameters of the matched route, and the client
// address. A Context lives for the duration of one connection and is not
// shared across connections.
type Context struct {
	req        *request.Request
	params     router.Params
	clientAddr string
	values     map[string]any
}

// NewContext creates a request context. Params are attached later by the
// dispatcher, once routing has completed.
func NewContext(req *request.Request, clientAddr string) *Context {
	return &Context{
		req:        req,
		params:     router.Params{},
		clientAddr: clientAddr,
	}
}

// Request returns the parsed request.
func (c *Context) Request() *request.Request {
	return c.req
}

// Params returns the typed path parameters of the matched route.
// Before routing completes the map is empty.
func (c *Context) Params() router.Params {
	return c.params
}

// SetParams attaches extracted route parameters. It is called by the
// dispatcher after route matching.
func (c *Context) SetParams(params router.Params) {
	if params != nil {
		c.params = params
	}
}

// ClientAddr returns the remote address of the connection.
func (c *Context) ClientAddr() string {
	return c.clientAddr
}

// SetValue stores an arbitrary key/value pair on the context, typically by
// a before hook for a later handler or after hook to read.
func (c *Context) SetValue(key string, val any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = val
}

// Value returns a value stored with SetValue, or nil.
func (c *Context) Value(key string) any {
	return c.values[key]
}
