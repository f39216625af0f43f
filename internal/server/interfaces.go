package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
