package main

import (
	"context"
	"flag"
	"log"

	"github.com/luminet-io/luminet/internal/engine"
	"github.com/luminet-io/luminet/pkg/config"
	"github.com/luminet-io/luminet/pkg/service"
)

var (
	port           = flag.Int("port", 50051, "The server port")
	metricsPort    = flag.Int("metrics-port", 9090, "The Prometheus metrics port")
	memoryStore    = flag.Bool("memory", false, "Use the in-memory store instead of PostgreSQL")
	serviceVersion = "1.0.0"
)

func main() {
	flag.Parse()

	// Create service implementation
	impl := engine.NewService()

	// Create base service with implementation
	svc := service.NewBaseService(
		"lighting",
		serviceVersion,
		*port,
		*metricsPort,
		impl,
	)

	if *memoryStore {
		svc.Config.Update(map[string]string{config.KeyStorageMode: "memory"})
	}

	// Run the service
	ctx := context.Background()
	if err := svc.Run(ctx); err != nil {
		log.Fatalf("Failed to run service: %v", err)
	}
}
