package server

// Server is the lifecycle shared by the transport servers.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully and releases its listener.
	Shutdown()
}
