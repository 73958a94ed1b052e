package server

import "context"

// Server defines the lifecycle contract of the bridge transport.
type Server interface {
	// Listen binds the configured address. RunServer calls it when the
	// caller has not, so binding early is only needed to fail fast or to
	// know the address before serving starts.
	Listen() error

	// RunServer serves requests and blocks until ctx is cancelled or the
	// listener fails. Cancellation triggers a graceful shutdown.
	RunServer(ctx context.Context) error

	// Addr reports the bound listener address, or the configured address
	// before Listen.
	Addr() string
}
