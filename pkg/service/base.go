package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"github.com/luminet-io/luminet/pkg/config"
	healthcheck "github.com/luminet-io/luminet/pkg/health"
	"github.com/luminet-io/luminet/pkg/logger"
)

// ServiceState tracks the lifecycle of a service.
type ServiceState int

const (
	StateStarting ServiceState = iota
	StateRunning
	StateStopping
	StateStopped
)

// Service interface that all services must implement
type Service interface {
	// Initialize is called after registration but before starting
	Initialize(ctx context.Context, config *config.Config) error

	// Start begins the service's main work
	Start(ctx context.Context) error

	// Stop gracefully shuts down the service
	Stop(ctx context.Context, gracePeriod time.Duration) error

	// CollectMetrics returns current service metrics
	CollectMetrics() map[string]int64

	// HealthChecks returns service-specific health check functions
	HealthChecks() map[string]healthcheck.CheckFunc
}

// GRPCServerAware is an optional interface that services can implement
// if they need access to the shared gRPC server
type GRPCServerAware interface {
	SetGRPCServer(server *grpc.Server)
}

// LoggerAware is an optional interface that services can implement
// if they need access to the logger
type LoggerAware interface {
	SetLogger(logger *logger.Logger)
}

// MetricsAware is an optional interface that services can implement
// if they export Prometheus collectors
type MetricsAware interface {
	SetMetricsRegistry(registry *prometheus.Registry)
}

// BaseService provides common functionality for all services
type BaseService struct {
	// Service identification
	Name       string
	Version    string
	InstanceID string

	// Network configuration
	Port        int
	MetricsPort int

	// Core components
	Logger        *logger.Logger
	Config        *config.Config
	HealthChecker *healthcheck.Checker

	grpcServer  *grpc.Server
	grpcHealth  *health.Server
	registry    *prometheus.Registry
	metricsHTTP *http.Server

	// State management
	mu        sync.RWMutex
	state     ServiceState
	stopCh    chan struct{}
	stoppedCh chan struct{}

	// Service implementation
	impl Service

	// gRPC server state
	listener net.Listener
}

// NewBaseService creates a new base service instance
func NewBaseService(name, version string, port, metricsPort int, impl Service) *BaseService {
	return &BaseService{
		Name:          name,
		Version:       version,
		InstanceID:    uuid.New().String(),
		Port:          port,
		MetricsPort:   metricsPort,
		Logger:        logger.New(name, version),
		Config:        config.New(),
		HealthChecker: healthcheck.NewChecker(),
		registry:      prometheus.NewRegistry(),
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
		impl:          impl,
	}
}

// Run starts the service and manages its lifecycle
func (s *BaseService) Run(ctx context.Context) error {
	s.setState(StateStarting)

	// Start gRPC server
	if err := s.startGRPCServer(); err != nil {
		return fmt.Errorf("failed to start gRPC server: %w", err)
	}

	// Provide shared components to the service implementation
	if gRPCAware, ok := s.impl.(GRPCServerAware); ok {
		gRPCAware.SetGRPCServer(s.grpcServer)
	}
	if loggerAware, ok := s.impl.(LoggerAware); ok {
		loggerAware.SetLogger(s.Logger)
	}
	if metricsAware, ok := s.impl.(MetricsAware); ok {
		metricsAware.SetMetricsRegistry(s.registry)
	}

	// Initialize service implementation
	if err := s.impl.Initialize(ctx, s.Config); err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	s.Logger.Infof("Service implementation initialized successfully")

	// Now start serving gRPC requests after all services are registered
	s.StartServing()
	s.startMetricsEndpoint()

	// Start background tasks
	go s.healthCheckLoop(ctx)

	// Start service implementation
	if err := s.impl.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	s.setState(StateRunning)
	s.grpcHealth.SetServingStatus("", healthv1.HealthCheckResponse_SERVING)
	s.Logger.Info("Service started successfully")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		s.Logger.Info("Received shutdown signal")
	case <-s.stopCh:
		s.Logger.Info("Received stop command")
	case <-ctx.Done():
		s.Logger.Info("Context cancelled")
	}

	s.setState(StateStopping)
	return s.shutdown(ctx)
}

// Stop asks a running service to shut down.
func (s *BaseService) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}

func (s *BaseService) startGRPCServer() error {
	maxRetries := 3
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Port))
		if err != nil {
			if attempt < maxRetries {
				s.Logger.Warnf("Failed to bind to port %d (attempt %d/%d): %v, retrying...", s.Port, attempt, maxRetries, err)
				time.Sleep(retryDelay)
				retryDelay *= 2
				continue
			}
			return fmt.Errorf("failed to listen on port %d after %d attempts: %w", s.Port, maxRetries, err)
		}

		var opts []grpc.ServerOption
		opts = append(opts, grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 15 * time.Second,
			MaxConnectionAge:  30 * time.Second,
			Time:              5 * time.Second,
			Timeout:           1 * time.Second,
		}))
		// Bound the stream handler pool to available parallelism.
		opts = append(opts, grpc.NumStreamWorkers(uint32(runtime.NumCPU())))

		s.grpcServer = grpc.NewServer(opts...)

		// Register the standard health service; it reports NOT_SERVING
		// until the implementation has started.
		s.grpcHealth = health.NewServer()
		s.grpcHealth.SetServingStatus("", healthv1.HealthCheckResponse_NOT_SERVING)
		healthv1.RegisterHealthServer(s.grpcServer, s.grpcHealth)

		s.Logger.Infof("gRPC server created on port %d", s.Port)

		// Store the listener for later serving
		s.listener = lis
		return nil
	}

	return fmt.Errorf("failed to start gRPC server after %d attempts", maxRetries)
}

// StartServing begins serving gRPC requests after all services are registered
func (s *BaseService) StartServing() {
	if s.grpcServer != nil && s.listener != nil {
		s.Logger.Infof("Starting gRPC server on port %d", s.Port)

		go func() {
			if err := s.grpcServer.Serve(s.listener); err != nil {
				s.Logger.Errorf("Failed to serve: %v", err)
			}
		}()

		// Give the server a moment to start
		time.Sleep(100 * time.Millisecond)
		s.Logger.Infof("gRPC server started successfully on port %d", s.Port)
	}
}

func (s *BaseService) startMetricsEndpoint() {
	if s.MetricsPort <= 0 {
		return
	}
	s.registry.MustRegister(collectors.NewGoCollector())
	s.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.metricsHTTP = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.MetricsPort),
		Handler: mux,
	}
	go func() {
		s.Logger.Infof("Metrics endpoint listening on port %d", s.MetricsPort)
		if err := s.metricsHTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Errorf("Metrics endpoint failed: %v", err)
		}
	}()
}

func (s *BaseService) healthCheckLoop(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	// Get service-specific health checks
	checks := s.impl.HealthChecks()

	for {
		select {
		case <-ticker.C:
			for name, checkFunc := range checks {
				s.HealthChecker.RunCheck(name, checkFunc)
			}
			status := healthv1.HealthCheckResponse_SERVING
			if s.HealthChecker.GetOverallStatus() == healthcheck.StatusUnhealthy {
				status = healthv1.HealthCheckResponse_NOT_SERVING
			}
			s.grpcHealth.SetServingStatus("", status)

		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		}
	}
}

// CollectMetrics reports runtime counters alongside the implementation's.
func (s *BaseService) CollectMetrics() map[string]int64 {
	metrics := s.impl.CollectMetrics()
	if metrics == nil {
		metrics = make(map[string]int64)
	}
	metrics["goroutines"] = int64(runtime.NumGoroutine())
	metrics["memory_bytes"] = getMemoryUsage()
	metrics["cpu_seconds"] = getCPUSeconds()
	return metrics
}

func (s *BaseService) setState(state ServiceState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// State returns the current lifecycle state.
func (s *BaseService) State() ServiceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *BaseService) shutdown(ctx context.Context) error {
	s.Logger.Info("Starting graceful shutdown")

	if s.grpcHealth != nil {
		s.grpcHealth.SetServingStatus("", healthv1.HealthCheckResponse_NOT_SERVING)
	}

	// Stop service implementation
	gracePeriod := 30 * time.Second
	if err := s.impl.Stop(ctx, gracePeriod); err != nil {
		s.Logger.Errorf("Service implementation shutdown error: %v", err)
	}

	// Stop metrics endpoint
	if s.metricsHTTP != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.metricsHTTP.Shutdown(shutdownCtx); err != nil {
			s.Logger.Errorf("Metrics endpoint shutdown error: %v", err)
		}
	}

	// Stop gRPC server
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}

	// Signal stopped
	close(s.stoppedCh)
	s.setState(StateStopped)
	s.Logger.Info("Service stopped")

	return nil
}
