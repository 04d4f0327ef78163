package server

import (
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/movisimple/internal/config"
	myGRPC "github.com/MKhiriev/movisimple/internal/handler/grpc"
	"github.com/MKhiriev/movisimple/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errListening, cfg.GRPCAddress, err)
	}

	var opts []grpc.ServerOption
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	srv := grpc.NewServer(opts...)
	handler.Register(srv)

	return &grpcServer{
		handler:  handler,
		server:   srv,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) Addr() net.Addr {
	return g.listener.Addr()
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING first so health probes see the drain, then
// stops gracefully. Streams still open after shutdownTimeout are cut.
func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing")
		g.server.Stop()
	}
}
