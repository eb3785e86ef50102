package engine

import (
	"context"
	"fmt"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/telecell"
	"github.com/luminet-io/luminet/internal/store"
)

// GetTelecell returns a single telecell identified by id or uuid
func (s *Server) GetTelecell(ctx context.Context, req *lightingv1.GetTelecellRequest) (*lightingv1.GetTelecellResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.telecells.Get(ctx, req.Id, req.Uuid)
	if err != nil {
		return nil, s.rpcError("get telecell", err)
	}

	s.engine.IncrementRequestsProcessed("get telecell")
	return &lightingv1.GetTelecellResponse{Telecell: assembleTelecell(d)}, nil
}

// ListTelecells streams all telecells in batches
func (s *Server) ListTelecells(req *lightingv1.ListTelecellsRequest, stream lightingv1.TelecellService_ListTelecellsServer) error {
	defer s.trackOperation()()

	details, err := s.engine.telecells.List(stream.Context(), store.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		return s.rpcError("list telecells", err)
	}

	for lo := 0; lo < len(details); lo += telecellBatchSize {
		end := lo + telecellBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Telecell, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleTelecell(d))
		}
		if err := stream.Send(&lightingv1.ListTelecellsResponse{Telecells: batch}); err != nil {
			return s.rpcError("list telecells", err)
		}
	}

	s.engine.IncrementRequestsProcessed("list telecells")
	return nil
}

// SearchTelecellsByLocation streams the telecells inside a bounding box
func (s *Server) SearchTelecellsByLocation(req *lightingv1.SearchTelecellsByLocationRequest, stream lightingv1.TelecellService_SearchTelecellsByLocationServer) error {
	defer s.trackOperation()()

	a, b, err := corners(req.Rectangle)
	if err != nil {
		return s.rpcError("search telecells", err)
	}

	details, err := s.engine.telecells.SearchByLocation(stream.Context(), a, b)
	if err != nil {
		return s.rpcError("search telecells", err)
	}

	for lo := 0; lo < len(details); lo += telecellBatchSize {
		end := lo + telecellBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Telecell, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleTelecell(d))
		}
		if err := stream.Send(&lightingv1.SearchTelecellsByLocationResponse{Telecells: batch}); err != nil {
			return s.rpcError("search telecells", err)
		}
	}

	s.engine.IncrementRequestsProcessed("search telecells")
	return nil
}

// CreateTelecell creates a new telecell
func (s *Server) CreateTelecell(ctx context.Context, req *lightingv1.CreateTelecellRequest) (*lightingv1.CreateTelecellResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.telecells.Create(ctx, telecell.CreateParams{
		UUID:          req.Uuid,
		Relay:         req.Relay,
		Status:        statusParam(req.Status),
		Location:      locationParam(req.Location),
		BasestationID: req.BasestationId,
	})
	if err != nil {
		return nil, s.rpcError("create telecell", err)
	}

	s.engine.IncrementRequestsProcessed("create telecell")
	return &lightingv1.CreateTelecellResponse{
		Message:  fmt.Sprintf("Telecell %d created successfully", d.Telecell.ID),
		Success:  true,
		Telecell: assembleTelecell(d),
	}, nil
}

// UpdateTelecell applies a partial update to a telecell identified by
// id or uuid
func (s *Server) UpdateTelecell(ctx context.Context, req *lightingv1.UpdateTelecellRequest) (*lightingv1.UpdateTelecellResponse, error) {
	defer s.trackOperation()()

	upd := store.TelecellUpdate{
		Relay:         req.Relay,
		Status:        statusParam(req.Status),
		Location:      locationParam(req.Location),
		BasestationID: req.BasestationId,
	}
	d, err := s.engine.telecells.Update(ctx, req.Id, req.Uuid, upd)
	if err != nil {
		return nil, s.rpcError("update telecell", err)
	}

	s.engine.IncrementRequestsProcessed("update telecell")
	return &lightingv1.UpdateTelecellResponse{
		Message:  fmt.Sprintf("Telecell %d updated successfully", d.Telecell.ID),
		Success:  true,
		Telecell: assembleTelecell(d),
	}, nil
}

// DeleteTelecell soft-deletes a telecell
func (s *Server) DeleteTelecell(ctx context.Context, req *lightingv1.DeleteTelecellRequest) (*lightingv1.DeleteTelecellResponse, error) {
	defer s.trackOperation()()

	tc, err := s.engine.telecells.Delete(ctx, req.Id, req.Uuid)
	if err != nil {
		return nil, s.rpcError("delete telecell", err)
	}

	loc, noLoc := assembleLocation(tc.Location)
	s.engine.IncrementRequestsProcessed("delete telecell")
	return &lightingv1.DeleteTelecellResponse{
		Message: fmt.Sprintf("Telecell %d deleted successfully", tc.ID),
		Success: true,
		Telecell: &lightingv1.Telecell{
			Id:            tc.ID,
			Uuid:          tc.UUID,
			Relay:         tc.Relay,
			Status:        lightingv1.ActivityStatus(tc.Status),
			Location:      loc,
			NoLocation:    noLoc,
			BasestationId: tc.BasestationID,
		},
	}, nil
}

// PruneTelecell permanently removes a telecell and clears the reference
// from its elements
func (s *Server) PruneTelecell(ctx context.Context, req *lightingv1.PruneTelecellRequest) (*lightingv1.PruneTelecellResponse, error) {
	defer s.trackOperation()()

	res, err := s.engine.telecells.Prune(ctx, req.Id, req.Uuid)
	if err != nil {
		return nil, s.rpcError("prune telecell", err)
	}

	s.engine.IncrementRequestsProcessed("prune telecell")
	return &lightingv1.PruneTelecellResponse{
		Message:           "Telecell pruned successfully",
		Success:           true,
		Id:                req.Id,
		ClearedElementIds: res.ElementIDs,
	}, nil
}

// AddTelecellToElements associates a telecell with a batch of elements.
// The batch is all-or-nothing.
func (s *Server) AddTelecellToElements(ctx context.Context, req *lightingv1.AddTelecellToElementsRequest) (*lightingv1.AddTelecellToElementsResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.telecells.AddToElements(ctx, req.Id, req.Uuid, req.ElementIds)
	if err != nil {
		return nil, s.rpcError("add telecell to elements", err)
	}

	s.engine.IncrementRequestsProcessed("add telecell to elements")
	return &lightingv1.AddTelecellToElementsResponse{
		Message:  fmt.Sprintf("Telecell %d added to %d elements successfully", d.Telecell.ID, len(req.ElementIds)),
		Success:  true,
		Telecell: assembleTelecell(d),
	}, nil
}

// RemoveTelecellFromElements removes a telecell's association from a
// batch of elements. The batch is all-or-nothing.
func (s *Server) RemoveTelecellFromElements(ctx context.Context, req *lightingv1.RemoveTelecellFromElementsRequest) (*lightingv1.RemoveTelecellFromElementsResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.telecells.RemoveFromElements(ctx, req.Id, req.Uuid, req.ElementIds)
	if err != nil {
		return nil, s.rpcError("remove telecell from elements", err)
	}

	s.engine.IncrementRequestsProcessed("remove telecell from elements")
	return &lightingv1.RemoveTelecellFromElementsResponse{
		Message:  fmt.Sprintf("Telecell %d removed from %d elements successfully", d.Telecell.ID, len(req.ElementIds)),
		Success:  true,
		Telecell: assembleTelecell(d),
	}, nil
}
