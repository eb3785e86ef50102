package engine

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/store"
)

// Streaming replies are chunked; each entity has its own batch size.
const (
	assetBatchSize       = 100
	elementBatchSize     = 50
	telecellBatchSize    = 50
	basestationBatchSize = 1000
	userBatchSize        = 1000
)

// Server is the main gRPC server that implements all lighting service interfaces
type Server struct {
	// Embed all unimplemented servers to satisfy interface requirements
	lightingv1.UnimplementedAssetServiceServer
	lightingv1.UnimplementedElementServiceServer
	lightingv1.UnimplementedTelecellServiceServer
	lightingv1.UnimplementedBasestationServiceServer
	lightingv1.UnimplementedUserServiceServer

	// Engine reference for tracking operations
	engine *Engine
}

// NewServer creates a new gRPC server over the engine's services
func NewServer(engine *Engine) *Server {
	return &Server{
		engine: engine,
	}
}

// Helper method to track operations
func (s *Server) trackOperation() func() {
	s.engine.TrackOperation()
	return s.engine.UntrackOperation
}

// rpcError translates a store or service error into a gRPC status and
// bumps the engine error counter.
func (s *Server) rpcError(method string, err error) error {
	s.engine.IncrementErrors(method)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: %v", method, err)
	case errors.Is(err, store.ErrPartialBatch):
		return status.Errorf(codes.NotFound, "%s: %v", method, err)
	case errors.Is(err, store.ErrMissingIdentifier):
		return status.Errorf(codes.InvalidArgument, "%s: %v", method, err)
	case errors.Is(err, store.ErrValidation):
		return status.Errorf(codes.InvalidArgument, "%s: %v", method, err)
	case errors.Is(err, store.ErrDuplicateUUID):
		return status.Errorf(codes.AlreadyExists, "%s: %v", method, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", method, err)
	}
}
