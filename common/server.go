package common

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterFunc registers gRPC services on a server.
type RegisterFunc func(*grpc.Server)

// ServerConfig configures a gRPC server.
type ServerConfig struct {
	Domain  string
	Port    string
	Logger  *zap.Logger
	Options []grpc.ServerOption
}

// RunServer listens on cfg.Port and serves gRPC with health checks until ctx
// is cancelled, then stops gracefully.
func RunServer(ctx context.Context, cfg ServerConfig, register RegisterFunc) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, lis, cfg, register)
}

// Serve runs the gRPC server on an existing listener.
func Serve(ctx context.Context, lis net.Listener, cfg ServerConfig, register RegisterFunc) error {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger)),
	}, cfg.Options...)
	s := grpc.NewServer(opts...)
	register(s)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("grpc server started",
		zap.String("domain", cfg.Domain),
		zap.String("addr", lis.Addr().String()),
	)

	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			healthServer.Shutdown()
			s.GracefulStop()
		case <-stopped:
		}
	}()
	defer close(stopped)

	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	logger.Info("grpc server stopped", zap.String("domain", cfg.Domain))
	return nil
}

// UnaryLoggingInterceptor logs every unary call with its duration and status.
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Warn("rpc failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("rpc handled", fields...)
		}
		return resp, err
	}
}
