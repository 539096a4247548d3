package server

// Server is the mock node's network front: the HTTP and gRPC node APIs the
// light client syncs against.
type Server interface {
	// RunServer serves every configured node API until SIGTERM, SIGINT or
	// SIGQUIT, then shuts them down.
	RunServer()

	// Shutdown stops the node APIs without waiting for a signal.
	Shutdown()
}
