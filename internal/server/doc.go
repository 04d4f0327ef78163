// Package server runs the MoviSimple transport servers.
//
// It listens on the configured HTTP and gRPC addresses, serves until SIGINT,
// SIGTERM or SIGQUIT arrives, and then shuts every transport down
// gracefully.
package server
