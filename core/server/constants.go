package server

import "time"

const (
	// DefaultReadChunkSize is the size of each socket read during framing.
	DefaultReadChunkSize = 1024

	// DefaultReadChunkTimeout bounds each individual read while waiting
	// for the header block. Body reads are not bounded; a peer that
	// declares a Content-Length it never sends holds its goroutine.
	DefaultReadChunkTimeout = 5 * time.Second

	// DefaultMaxConnections caps concurrently handled connections.
	DefaultMaxConnections = 128

	// acceptPollInterval is the accept deadline, short enough that a stop
	// signal is observed promptly between iterations.
	acceptPollInterval = time.Second
)
