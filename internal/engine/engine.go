package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"google.golang.org/grpc"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/asset"
	"github.com/luminet-io/luminet/internal/services/basestation"
	"github.com/luminet-io/luminet/internal/services/element"
	"github.com/luminet-io/luminet/internal/services/telecell"
	"github.com/luminet-io/luminet/internal/services/user"
	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/config"
	"github.com/luminet-io/luminet/pkg/logger"
)

type Engine struct {
	config     *config.Config
	grpcServer *grpc.Server
	store      store.Store
	logger     *logger.Logger
	state      struct {
		sync.Mutex
		isRunning         bool
		ongoingOperations int32
	}
	metrics struct {
		requestsProcessed int64
		errors            int64
	}
	prom *promMetrics

	assets       *asset.Service
	elements     *element.Service
	telecells    *telecell.Service
	basestations *basestation.Service
	users        *user.Service
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		config: cfg,
	}
}

// SetLogger sets the logger for the engine
func (e *Engine) SetLogger(logger *logger.Logger) {
	e.logger = logger
}

// SetStore sets the backing store and builds the entity services on top
// of it. Must be called before Start.
func (e *Engine) SetStore(st store.Store) {
	e.store = st
	e.assets = asset.NewService(st, e.logger)
	e.elements = element.NewService(st, e.logger)
	e.telecells = telecell.NewService(st, e.logger)
	e.basestations = basestation.NewService(st, e.logger)
	e.users = user.NewService(st, e.logger)
}

// SetGRPCServer sets the shared gRPC server and registers the services immediately
func (e *Engine) SetGRPCServer(server *grpc.Server) {
	e.grpcServer = server

	// Register the services immediately when server is set (BEFORE serving starts)
	if e.grpcServer != nil {
		srv := NewServer(e)
		lightingv1.RegisterAssetServiceServer(e.grpcServer, srv)
		lightingv1.RegisterElementServiceServer(e.grpcServer, srv)
		lightingv1.RegisterTelecellServiceServer(e.grpcServer, srv)
		lightingv1.RegisterBasestationServiceServer(e.grpcServer, srv)
		lightingv1.RegisterUserServiceServer(e.grpcServer, srv)
	}
}

func (e *Engine) Start(ctx context.Context) error {
	e.state.Lock()
	defer e.state.Unlock()

	if e.state.isRunning {
		return fmt.Errorf("engine is already running")
	}

	if e.grpcServer == nil {
		return fmt.Errorf("gRPC server not set - call SetGRPCServer first")
	}

	if e.store == nil {
		return fmt.Errorf("store not set - call SetStore first")
	}

	// Services are already registered in SetGRPCServer, just mark as running
	e.state.isRunning = true
	return nil
}

func (e *Engine) Stop(ctx context.Context) error {
	e.state.Lock()
	defer e.state.Unlock()

	if !e.state.isRunning {
		return nil
	}

	e.state.isRunning = false
	return nil
}

func (e *Engine) GetMetrics() map[string]int64 {
	return map[string]int64{
		"requests_processed": atomic.LoadInt64(&e.metrics.requestsProcessed),
		"errors":             atomic.LoadInt64(&e.metrics.errors),
		"ongoing_operations": int64(atomic.LoadInt32(&e.state.ongoingOperations)),
	}
}

func (e *Engine) CheckGRPCServer() error {
	e.state.Lock()
	defer e.state.Unlock()

	if !e.state.isRunning {
		return fmt.Errorf("service not initialized")
	}

	if e.grpcServer == nil {
		return fmt.Errorf("gRPC server not initialized")
	}

	return nil
}

func (e *Engine) CheckStore() error {
	e.state.Lock()
	defer e.state.Unlock()

	if !e.state.isRunning {
		return fmt.Errorf("service not initialized")
	}

	if e.store == nil {
		return fmt.Errorf("store not initialized")
	}

	return nil
}

func (e *Engine) CheckHealth() error {
	e.state.Lock()
	defer e.state.Unlock()

	if !e.state.isRunning {
		return fmt.Errorf("service not initialized")
	}

	return nil
}

func (e *Engine) TrackOperation() {
	atomic.AddInt32(&e.state.ongoingOperations, 1)
}

func (e *Engine) UntrackOperation() {
	atomic.AddInt32(&e.state.ongoingOperations, -1)
}

func (e *Engine) IncrementRequestsProcessed(method string) {
	atomic.AddInt64(&e.metrics.requestsProcessed, 1)
	if e.prom != nil {
		e.prom.requests.WithLabelValues(method).Inc()
	}
}

func (e *Engine) IncrementErrors(method string) {
	atomic.AddInt64(&e.metrics.errors, 1)
	if e.prom != nil {
		e.prom.errors.WithLabelValues(method).Inc()
	}
}
