// Package server runs a service's HTTP API next to its gRPC health endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/shop-ecom/internal/logx"
)

type Options struct {
	Name           string
	HTTPAddr       string
	GRPCAddr       string
	AllowedOrigins []string
	// ShutdownTimeout defaults to 10s.
	ShutdownTimeout time.Duration
}

// WithCORS lets the storefront call the API from another origin.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})(h)
}

// Run blocks until ctx is done or a listener fails, then shuts both servers down.
func Run(ctx context.Context, opts Options, h http.Handler) error {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	srv := &http.Server{
		Addr:              opts.HTTPAddr,
		Handler:           WithCORS(h, opts.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", opts.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", opts.GRPCAddr, err)
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(opts.Name, healthpb.HealthCheckResponse_SERVING)

	errc := make(chan error, 2)
	go func() {
		logx.Info().Str("service", opts.Name).Str("addr", opts.HTTPAddr).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		logx.Info().Str("service", opts.Name).Str("addr", opts.GRPCAddr).Msg("grpc health listening")
		if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errc <- fmt.Errorf("grpc: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errc:
	}

	logx.Info().Str("service", opts.Name).Msg("shutting down")
	hs.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	gs.GracefulStop()
	return runErr
}
