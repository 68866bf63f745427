package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/vldk-exists/maya/core/handler"
)

// Server owns the route table, the status-handler table, and the hook
// chains, and runs the accept loop. Build it, register everything, then
// call Run; the tables are treated as read-only once serving starts.
type Server struct {
	host string
	port int

	logger       *slog.Logger
	debug        bool
	maxConns     int
	chunkSize    int
	chunkTimeout time.Duration

	routes         *routeTable
	statusHandlers map[int]handler.StatusFunc
	before         []handler.BeforeFunc
	after          []handler.AfterFunc

	running atomic.Bool
}

// New creates a server bound to host:port. The port must be in 1-65535.
func New(host string, port int, opts ...Option) (*Server, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	s := &Server{
		host:           host,
		port:           port,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxConns:       DefaultMaxConnections,
		chunkSize:      DefaultReadChunkSize,
		chunkTimeout:   DefaultReadChunkTimeout,
		routes:         newRouteTable(),
		statusHandlers: make(map[int]handler.StatusFunc),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Route registers a handler under a path template. Templates may contain
// <type:name> markers; see the router package for the supported types.
func (s *Server) Route(template string, h handler.Func) error {
	if h == nil {
		return fmt.Errorf("%w: route %q", ErrNilHandler, template)
	}
	return s.routes.Add(template, h)
}

// HandleStatus registers a handler that produces the response for a status
// code, replacing the generic status page.
func (s *Server) HandleStatus(code int, fn handler.StatusFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: status %d", ErrNilHandler, code)
	}
	s.statusHandlers[code] = fn
	return nil
}

// Before appends a hook that runs before routing. Hooks run in
// registration order; a hook returning a non-nil response short-circuits
// the pipeline.
func (s *Server) Before(fn handler.BeforeFunc) {
	s.before = append(s.before, fn)
}

// After appends a hook that runs once a response exists, in registration
// order.
func (s *Server) After(fn handler.AfterFunc) {
	s.after = append(s.after, fn)
}

// Routes returns the registered route templates in registration order.
func (s *Server) Routes() []string {
	return s.routes.Routes()
}

// Addr returns the configured bind address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Run listens on the configured address and serves connections until the
// context is canceled or Stop is called. Each connection is handled by its
// own goroutine; the number of concurrently handled connections is capped
// by the configured backlog.
func (s *Server) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}
	defer s.running.Store(false)

	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	defer ln.Close()

	if s.routes.Len() == 0 {
		s.logger.Warn("no routes registered, every request will yield 404")
	}
	s.logger.Info("server is running", "addr", "http://"+s.Addr())
	if s.debug {
		s.logger.Info("debug mode is enabled")
	}

	tcpLn, ok := ln.(*net.TCPListener)
	if !ok {
		return fmt.Errorf("unexpected listener type %T", ln)
	}

	slots := make(chan struct{}, s.maxConns)

	for s.running.Load() && ctx.Err() == nil {
		if err := tcpLn.SetDeadline(time.Now().Add(acceptPollInterval)); err != nil {
			return err
		}

		conn, err := tcpLn.Accept()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("accept failed", "error", err)
			continue
		}

		if !s.reserveSlot(ctx, slots) {
			conn.Close()
			continue
		}
		go func() {
			defer func() { <-slots }()
			s.handleConn(conn)
		}()
	}

	s.logger.Info("server stopped")
	return nil
}

// reserveSlot takes a connection slot, waiting for one to free up when the
// cap is reached. It keeps polling the stop flag and the context while
// waiting, so shutdown stays prompt under saturation. Returns false when
// the server is stopping.
func (s *Server) reserveSlot(ctx context.Context, slots chan struct{}) bool {
	for s.running.Load() && ctx.Err() == nil {
		select {
		case slots <- struct{}{}:
			return true
		case <-ctx.Done():
			return false
		case <-time.After(acceptPollInterval):
		}
	}
	return false
}

// Stop signals the accept loop to exit. In-flight connections run to
// completion; there is no per-connection cancellation.
func (s *Server) Stop() {
	s.running.Store(false)
}
