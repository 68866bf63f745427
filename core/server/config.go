package server

import "time"

// Config holds server configuration with environment variable support.
type Config struct {
	Host    string `env:"SERVER_HOST" envDefault:"127.0.0.1"`
	Port    int    `env:"SERVER_PORT" envDefault:"80"`
	Debug   bool   `env:"SERVER_DEBUG" envDefault:"false"`
	Backlog int    `env:"SERVER_BACKLOG" envDefault:"128"`

	ReadChunkSize    int           `env:"SERVER_READ_CHUNK_SIZE" envDefault:"1024"`
	ReadChunkTimeout time.Duration `env:"SERVER_READ_CHUNK_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		Host:             "127.0.0.1",
		Port:             80,
		Backlog:          DefaultMaxConnections,
		ReadChunkSize:    DefaultReadChunkSize,
		ReadChunkTimeout: DefaultReadChunkTimeout,
	}
}

// NewFromConfig creates a Server from configuration. Additional options
// override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	configOpts := make([]Option, 0, len(opts)+4)

	configOpts = append(configOpts, WithDebug(cfg.Debug))
	if cfg.Backlog > 0 {
		configOpts = append(configOpts, WithMaxConnections(cfg.Backlog))
	}
	if cfg.ReadChunkSize > 0 {
		configOpts = append(configOpts, WithReadChunkSize(cfg.ReadChunkSize))
	}
	if cfg.ReadChunkTimeout > 0 {
		configOpts = append(configOpts, WithReadChunkTimeout(cfg.ReadChunkTimeout))
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.Host, cfg.Port, configOpts...)
}
