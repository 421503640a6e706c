// Package server hosts the bridge's introspection HTTP server: a small
// read-only surface that reports liveness and the definitions bundle the
// bridge built at startup.
package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [Server.RunServer] until shutdown
// is requested and to release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
