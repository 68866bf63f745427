package server

import (
	"log/slog"
	"time"
)

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets the logger for server operations. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDebug toggles verbose per-request tracing.
func WithDebug(debug bool) Option {
	return func(s *Server) {
		s.debug = debug
	}
}

// WithMaxConnections caps the number of concurrently handled connections;
// further accepted connections wait for a free slot.
func WithMaxConnections(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxConns = n
		}
	}
}

// WithReadChunkSize sets the size of each socket read during framing.
func WithReadChunkSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithReadChunkTimeout bounds each individual header-phase read.
func WithReadChunkTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.chunkTimeout = d
		}
	}
}
