package engine

import (
	"context"
	"fmt"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/basestation"
	"github.com/luminet-io/luminet/internal/store"
)

// GetBasestation returns a single basestation identified by id or uuid
func (s *Server) GetBasestation(ctx context.Context, req *lightingv1.GetBasestationRequest) (*lightingv1.GetBasestationResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.basestations.Get(ctx, req.Id, req.Uuid)
	if err != nil {
		return nil, s.rpcError("get basestation", err)
	}

	s.engine.IncrementRequestsProcessed("get basestation")
	return &lightingv1.GetBasestationResponse{Basestation: assembleBasestation(d)}, nil
}

// ListBasestations streams all basestations in batches
func (s *Server) ListBasestations(req *lightingv1.ListBasestationsRequest, stream lightingv1.BasestationService_ListBasestationsServer) error {
	defer s.trackOperation()()

	details, err := s.engine.basestations.List(stream.Context(), store.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		return s.rpcError("list basestations", err)
	}

	for lo := 0; lo < len(details); lo += basestationBatchSize {
		end := lo + basestationBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Basestation, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleBasestation(d))
		}
		if err := stream.Send(&lightingv1.ListBasestationsResponse{Basestations: batch}); err != nil {
			return s.rpcError("list basestations", err)
		}
	}

	s.engine.IncrementRequestsProcessed("list basestations")
	return nil
}

// SearchBasestationsByLocation streams the basestations inside a bounding box
func (s *Server) SearchBasestationsByLocation(req *lightingv1.SearchBasestationsByLocationRequest, stream lightingv1.BasestationService_SearchBasestationsByLocationServer) error {
	defer s.trackOperation()()

	a, b, err := corners(req.Rectangle)
	if err != nil {
		return s.rpcError("search basestations", err)
	}

	details, err := s.engine.basestations.SearchByLocation(stream.Context(), a, b)
	if err != nil {
		return s.rpcError("search basestations", err)
	}

	for lo := 0; lo < len(details); lo += basestationBatchSize {
		end := lo + basestationBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Basestation, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleBasestation(d))
		}
		if err := stream.Send(&lightingv1.SearchBasestationsByLocationResponse{Basestations: batch}); err != nil {
			return s.rpcError("search basestations", err)
		}
	}

	s.engine.IncrementRequestsProcessed("search basestations")
	return nil
}

// CreateBasestation creates a new basestation
func (s *Server) CreateBasestation(ctx context.Context, req *lightingv1.CreateBasestationRequest) (*lightingv1.CreateBasestationResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.basestations.Create(ctx, basestation.CreateParams{
		UUID:     req.Uuid,
		Status:   statusParam(req.Status),
		Location: locationParam(req.Location),
		Version:  req.Version,
	})
	if err != nil {
		return nil, s.rpcError("create basestation", err)
	}

	s.engine.IncrementRequestsProcessed("create basestation")
	return &lightingv1.CreateBasestationResponse{
		Message:     fmt.Sprintf("Basestation %d created successfully", d.Basestation.ID),
		Success:     true,
		Basestation: assembleBasestation(d),
	}, nil
}

// UpdateBasestation applies a partial update to a basestation identified
// by id or uuid
func (s *Server) UpdateBasestation(ctx context.Context, req *lightingv1.UpdateBasestationRequest) (*lightingv1.UpdateBasestationResponse, error) {
	defer s.trackOperation()()

	upd := store.BasestationUpdate{
		Status:   statusParam(req.Status),
		Location: locationParam(req.Location),
		Version:  req.Version,
	}
	d, err := s.engine.basestations.Update(ctx, req.Id, req.Uuid, upd)
	if err != nil {
		return nil, s.rpcError("update basestation", err)
	}

	s.engine.IncrementRequestsProcessed("update basestation")
	return &lightingv1.UpdateBasestationResponse{
		Message:     fmt.Sprintf("Basestation %d updated successfully", d.Basestation.ID),
		Success:     true,
		Basestation: assembleBasestation(d),
	}, nil
}

// DeleteBasestation soft-deletes a basestation
func (s *Server) DeleteBasestation(ctx context.Context, req *lightingv1.DeleteBasestationRequest) (*lightingv1.DeleteBasestationResponse, error) {
	defer s.trackOperation()()

	bs, err := s.engine.basestations.Delete(ctx, req.Id, req.Uuid)
	if err != nil {
		return nil, s.rpcError("delete basestation", err)
	}

	s.engine.IncrementRequestsProcessed("delete basestation")
	return &lightingv1.DeleteBasestationResponse{
		Message:     fmt.Sprintf("Basestation %d deleted successfully", bs.ID),
		Success:     true,
		Basestation: assembleBasestationRecord(bs, nil),
	}, nil
}

// PruneBasestation permanently removes a basestation and clears the
// reference from its telecells
func (s *Server) PruneBasestation(ctx context.Context, req *lightingv1.PruneBasestationRequest) (*lightingv1.PruneBasestationResponse, error) {
	defer s.trackOperation()()

	res, err := s.engine.basestations.Prune(ctx, req.Id, req.Uuid)
	if err != nil {
		return nil, s.rpcError("prune basestation", err)
	}

	s.engine.IncrementRequestsProcessed("prune basestation")
	return &lightingv1.PruneBasestationResponse{
		Message:            "Basestation pruned successfully",
		Success:            true,
		Id:                 req.Id,
		ClearedTelecellIds: res.TelecellIDs,
	}, nil
}
