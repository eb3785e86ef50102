package engine

import (
	"context"
	"fmt"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/element"
	"github.com/luminet-io/luminet/internal/store"
)

// GetElement returns a single element with its resolved owning asset
func (s *Server) GetElement(ctx context.Context, req *lightingv1.GetElementRequest) (*lightingv1.GetElementResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.elements.Get(ctx, req.Id)
	if err != nil {
		return nil, s.rpcError("get element", err)
	}

	s.engine.IncrementRequestsProcessed("get element")
	return &lightingv1.GetElementResponse{Element: assembleElement(d)}, nil
}

// ListElements streams all elements in batches
func (s *Server) ListElements(req *lightingv1.ListElementsRequest, stream lightingv1.ElementService_ListElementsServer) error {
	defer s.trackOperation()()

	details, err := s.engine.elements.List(stream.Context(), store.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		return s.rpcError("list elements", err)
	}

	for lo := 0; lo < len(details); lo += elementBatchSize {
		end := lo + elementBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Element, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleElement(d))
		}
		if err := stream.Send(&lightingv1.ListElementsResponse{Elements: batch}); err != nil {
			return s.rpcError("list elements", err)
		}
	}

	s.engine.IncrementRequestsProcessed("list elements")
	return nil
}

// SearchElementsByLocation streams the elements whose owning asset lies
// inside a bounding box
func (s *Server) SearchElementsByLocation(req *lightingv1.SearchElementsByLocationRequest, stream lightingv1.ElementService_SearchElementsByLocationServer) error {
	defer s.trackOperation()()

	a, b, err := corners(req.Rectangle)
	if err != nil {
		return s.rpcError("search elements", err)
	}

	details, err := s.engine.elements.SearchByLocation(stream.Context(), a, b)
	if err != nil {
		return s.rpcError("search elements", err)
	}

	for lo := 0; lo < len(details); lo += elementBatchSize {
		end := lo + elementBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Element, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleElement(d))
		}
		if err := stream.Send(&lightingv1.SearchElementsByLocationResponse{Elements: batch}); err != nil {
			return s.rpcError("search elements", err)
		}
	}

	s.engine.IncrementRequestsProcessed("search elements")
	return nil
}

// CreateElement creates a new element on an asset
func (s *Server) CreateElement(ctx context.Context, req *lightingv1.CreateElementRequest) (*lightingv1.CreateElementResponse, error) {
	defer s.trackOperation()()

	if req.AssetId == 0 {
		return nil, s.rpcError("create element", fmt.Errorf("asset: %w", store.ErrMissingIdentifier))
	}
	p := element.CreateParams{
		Status:  statusParam(req.Status),
		AssetID: &req.AssetId,
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	d, err := s.engine.elements.Create(ctx, p)
	if err != nil {
		return nil, s.rpcError("create element", err)
	}

	s.engine.IncrementRequestsProcessed("create element")
	return &lightingv1.CreateElementResponse{
		Message: fmt.Sprintf("Element %d created successfully", d.Element.ID),
		Success: true,
		Element: assembleElement(d),
	}, nil
}

// UpdateElement applies a partial update to an element
func (s *Server) UpdateElement(ctx context.Context, req *lightingv1.UpdateElementRequest) (*lightingv1.UpdateElementResponse, error) {
	defer s.trackOperation()()

	upd := store.ElementUpdate{
		Description: req.Description,
		Status:      statusParam(req.Status),
		AssetID:     req.AssetId,
	}
	d, err := s.engine.elements.Update(ctx, req.Id, upd)
	if err != nil {
		return nil, s.rpcError("update element", err)
	}

	s.engine.IncrementRequestsProcessed("update element")
	return &lightingv1.UpdateElementResponse{
		Message: fmt.Sprintf("Element %d updated successfully", d.Element.ID),
		Success: true,
		Element: assembleElement(d),
	}, nil
}

// DeleteElement soft-deletes an element
func (s *Server) DeleteElement(ctx context.Context, req *lightingv1.DeleteElementRequest) (*lightingv1.DeleteElementResponse, error) {
	defer s.trackOperation()()

	el, err := s.engine.elements.Delete(ctx, req.Id)
	if err != nil {
		return nil, s.rpcError("delete element", err)
	}

	s.engine.IncrementRequestsProcessed("delete element")
	return &lightingv1.DeleteElementResponse{
		Message: fmt.Sprintf("Element %d deleted successfully", el.ID),
		Success: true,
		Element: &lightingv1.Element{
			Id:          el.ID,
			Description: el.Description,
			Status:      lightingv1.ActivityStatus(el.Status),
			TelecellId:  el.TelecellID,
		},
	}, nil
}

// PruneElement permanently removes an element
func (s *Server) PruneElement(ctx context.Context, req *lightingv1.PruneElementRequest) (*lightingv1.PruneElementResponse, error) {
	defer s.trackOperation()()

	if err := s.engine.elements.Prune(ctx, req.Id); err != nil {
		return nil, s.rpcError("prune element", err)
	}

	s.engine.IncrementRequestsProcessed("prune element")
	return &lightingv1.PruneElementResponse{
		Message: fmt.Sprintf("Element %d pruned successfully", req.Id),
		Success: true,
		Id:      req.Id,
	}, nil
}

// AddElementToAsset moves an element onto an asset
func (s *Server) AddElementToAsset(ctx context.Context, req *lightingv1.AddElementToAssetRequest) (*lightingv1.AddElementToAssetResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.elements.AddToAsset(ctx, req.ElementId, req.AssetId)
	if err != nil {
		return nil, s.rpcError("add element to asset", err)
	}

	s.engine.IncrementRequestsProcessed("add element to asset")
	return &lightingv1.AddElementToAssetResponse{
		Message: fmt.Sprintf("Element %d added to asset %d successfully", req.ElementId, req.AssetId),
		Success: true,
		Element: assembleElement(d),
	}, nil
}
