package server

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vldk-exists/maya/core/handler"
	"github.com/vldk-exists/maya/core/logger"
	"github.com/vldk-exists/maya/core/request"
	"github.com/vldk-exists/maya/core/response"
	"github.com/vldk-exists/maya/core/router"
)

type routeTable = router.Table[handler.Func]

func newRouteTable() *routeTable {
	return router.New[handler.Func]()
}

// outcome is the short-circuiting result of a pipeline stage: either keep
// going, send a response now, or fail with a status code.
type outcome struct {
	resp   *response.Response
	status int
	err    error
}

func respondNow(resp *response.Response) outcome {
	return outcome{resp: resp}
}

func fail(status int, err error) outcome {
	return outcome{status: status, err: err}
}

// handleConn drives one connection through the full pipeline and always
// closes it afterwards. Exactly one complete response is written, except
// for no-op requests and after-hook faults, which close silently.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	clientAddr := conn.RemoteAddr().String()

	raw := s.readRequest(conn)
	if len(raw) == 0 || bytes.Equal(raw, crlfcrlf) {
		return
	}

	req, err := request.Parse(raw)
	if err != nil {
		resp := s.statusResponse(http.StatusBadRequest)
		s.send(conn, resp)
		s.logAccess(clientAddr, "?", "?", resp.ResolvedStatus(), start)
		return
	}

	// Browser noise: favicon probes and prefetches are dropped without a
	// response.
	if req.Path == "/favicon.ico" || req.Headers["purpose"] == "prefetch" {
		return
	}

	if s.debug {
		s.logger.Debug("incoming request",
			logger.Method(req.Method),
			logger.Path(req.Path),
			logger.ClientIP(clientAddr),
			"headers", req.Headers,
			"args", req.Args,
		)
	}

	ctx := handler.NewContext(req, clientAddr)

	// A before hook short-circuits everything else: its response is sent
	// exactly as returned, bypassing routing and the after hooks.
	if premature := s.runBefore(ctx); premature != nil {
		if s.send(conn, premature) {
			s.logAccess(clientAddr, req.Path, req.Method, premature.ResolvedStatus(), start)
		}
		return
	}

	result := s.dispatch(ctx, req, raw)
	if result.err != nil {
		s.logger.Error("server error",
			logger.Error(result.err),
			logger.Method(req.Method),
			logger.Path(req.Path),
		)
	}

	resp := result.resp
	if resp == nil {
		resp = s.statusResponse(result.status)
	}

	// After hooks run for handler and error-status responses alike.
	for _, hook := range s.after {
		next, err := hook(ctx, resp)
		if err != nil || next == nil {
			if err == nil {
				err = ErrAfterHook
			}
			s.logger.Error("after hook failed", logger.Error(err), logger.Path(req.Path))
			return
		}
		resp = next
	}

	if !s.send(conn, resp) {
		// Peer reset mid-write; nothing to log.
		return
	}
	s.logAccess(clientAddr, req.Path, req.Method, resp.ResolvedStatus(), start)
}

// runBefore executes the before hooks in registration order, returning the
// first non-nil response, which short-circuits the rest of the pipeline.
func (s *Server) runBefore(ctx *handler.Context) *response.Response {
	for i, hook := range s.before {
		if s.debug {
			s.logger.Debug("before hook", "index", i)
		}
		if resp := hook(ctx); resp != nil {
			return resp
		}
	}
	return nil
}

// dispatch routes the request and invokes the matched handler.
func (s *Server) dispatch(ctx *handler.Context, req *request.Request, raw []byte) outcome {
	match, err := s.routes.Match(req.Path, len(req.Args) > 0)
	if err != nil {
		// A matched route whose parameters failed coercion is a handler
		// fault, not a miss.
		return fail(http.StatusInternalServerError, err)
	}
	if match == nil {
		return fail(http.StatusNotFound, nil)
	}

	ctx.SetParams(match.Params)
	if s.debug {
		s.logger.Debug("matched route", "template", match.Route.Template)
	}

	switch req.Method {
	case http.MethodHead:
		return respondNow(response.New())
	case http.MethodTrace:
		return respondNow(response.HTTPMessage(string(raw)))
	}

	resp, err := invoke(match.Route.Handler, ctx)
	if err != nil {
		return fail(http.StatusInternalServerError, err)
	}
	return respondNow(resp)
}

// invoke calls a route handler, converting panics and nil responses into
// errors.
func invoke(h handler.Func, ctx *handler.Context) (resp *response.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp = nil
			err = fmt.Errorf("%w: %v\n%s", ErrHandlerPanic, p, debug.Stack())
		}
	}()

	resp, err = h(ctx)
	if err == nil && resp == nil {
		err = ErrNilResponse
	}
	return resp, err
}

// statusResponse renders the response for a status code: the registered
// status handler if any, else a generic minimal HTML page naming the
// status.
func (s *Server) statusResponse(code int) *response.Response {
	if fn := s.statusHandlers[code]; fn != nil {
		if resp := fn(); resp != nil {
			return resp
		}
	}

	resp, err := response.FromString("<h1>"+http.StatusText(code)+"</h1>", nil,
		response.WithStatus(code))
	if err != nil {
		return &response.Response{Status: code}
	}
	return resp
}

// send writes the rendered response, reporting whether the write succeeded.
func (s *Server) send(conn net.Conn, resp *response.Response) bool {
	_, err := conn.Write(resp.Render())
	return err == nil
}

// logAccess emits the per-request access line.
func (s *Server) logAccess(clientAddr, path, method string, status int, start time.Time) {
	s.logger.Info("request handled",
		logger.ClientIP(clientAddr),
		logger.Path(path),
		logger.Method(method),
		logger.StatusCode(status),
		logger.Elapsed(start),
	)
}
