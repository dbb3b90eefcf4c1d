package server

import (
	stderrors "errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probes can ask about in addition to the empty
// (whole server) name.
const ServiceName = "txlab.MessageService"

// HealthServer exposes grpc.health.v1 so orchestrators can probe readiness.
// It starts NOT_SERVING until MarkServing is called.
type HealthServer struct {
	log    *slog.Logger
	server *grpc.Server
	health *health.Server
}

func NewHealthServer(log *slog.Logger) *HealthServer {
	s := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)

	hs := &HealthServer{log: log, server: s, health: h}
	hs.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return hs
}

// Serve blocks until Stop is called.
func (s *HealthServer) Serve(listener net.Listener) error {
	s.log.Info("Starting gRPC health server", "address", listener.Addr().String())
	if err := s.server.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *HealthServer) MarkServing() {
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (s *HealthServer) MarkNotServing() {
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

// Stop flips every status to NOT_SERVING and ends open streams gracefully.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}

func (s *HealthServer) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
