package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"github.com/luminet-io/luminet/internal/store/memory"
	"github.com/luminet-io/luminet/internal/store/postgres"
	"github.com/luminet-io/luminet/pkg/config"
	"github.com/luminet-io/luminet/pkg/database"
	"github.com/luminet-io/luminet/pkg/health"
	"github.com/luminet-io/luminet/pkg/logger"
)

// Service wires the lighting engine into the shared service runtime.
type Service struct {
	engine     *Engine
	config     *config.Config
	grpcServer *grpc.Server // Store the gRPC server until engine is created
	registry   *prometheus.Registry
	logger     *logger.Logger
	db         *database.PostgreSQL
}

func NewService() *Service {
	return &Service{}
}

// SetLogger implements the service.LoggerAware interface
func (s *Service) SetLogger(logger *logger.Logger) {
	s.logger = logger
	if s.engine != nil {
		s.engine.SetLogger(logger)
	}
}

// SetGRPCServer implements the GRPCServerAware interface
func (s *Service) SetGRPCServer(server *grpc.Server) {
	s.grpcServer = server
	if s.engine != nil {
		s.engine.SetGRPCServer(server)
	}
}

// SetMetricsRegistry implements the service.MetricsAware interface
func (s *Service) SetMetricsRegistry(registry *prometheus.Registry) {
	s.registry = registry
	if s.engine != nil {
		s.engine.SetMetricsRegistry(registry)
	}
}

func (s *Service) Initialize(ctx context.Context, cfg *config.Config) error {
	s.config = cfg

	cfg.SetRestartKeys(config.RestartKeys)

	s.engine = NewEngine(cfg)

	if s.logger != nil {
		s.engine.SetLogger(s.logger)
	}

	if cfg.Get(config.KeyStorageMode) == "memory" {
		s.engine.SetStore(memory.New())
	} else {
		db, err := database.New(ctx, database.FromGlobalConfig(cfg))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		s.db = db
		s.engine.SetStore(postgres.New(db))
	}

	// Set the gRPC server and metrics registry if they were provided earlier
	if s.grpcServer != nil {
		s.engine.SetGRPCServer(s.grpcServer)
	}
	if s.registry != nil {
		s.engine.SetMetricsRegistry(s.registry)
	}

	return nil
}

func (s *Service) Start(ctx context.Context) error {
	return s.engine.Start(ctx)
}

func (s *Service) Stop(ctx context.Context, gracePeriod time.Duration) error {
	if s.engine != nil {
		if err := s.engine.Stop(ctx); err != nil {
			return err
		}
	}
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
	return nil
}

func (s *Service) CollectMetrics() map[string]int64 {
	if s.engine == nil {
		return nil
	}
	return s.engine.GetMetrics()
}

func (s *Service) HealthChecks() map[string]health.CheckFunc {
	return map[string]health.CheckFunc{
		"grpc_server": s.checkGRPCServer,
		"store":       s.checkStore,
		"engine":      s.checkEngine,
	}
}

func (s *Service) checkGRPCServer() error {
	if s.engine == nil {
		return fmt.Errorf("service not initialized")
	}
	return s.engine.CheckGRPCServer()
}

func (s *Service) checkStore() error {
	if s.engine == nil {
		return fmt.Errorf("service not initialized")
	}
	return s.engine.CheckStore()
}

func (s *Service) checkEngine() error {
	if s.engine == nil {
		return fmt.Errorf("service not initialized")
	}
	return s.engine.CheckHealth()
}
