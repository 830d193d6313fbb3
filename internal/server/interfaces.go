package server

import "context"

// Server defines the lifecycle contract of the process's transport server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// a stop signal arrives or serving fails. A graceful shutdown returns
	// nil.
	RunServer(ctx context.Context) error
}
