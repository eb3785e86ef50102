package engine

import (
	"context"
	"fmt"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/store"
)

// GetAsset returns a single asset with the ids of its elements
func (s *Server) GetAsset(ctx context.Context, req *lightingv1.GetAssetRequest) (*lightingv1.GetAssetResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.assets.Get(ctx, req.Id)
	if err != nil {
		return nil, s.rpcError("get asset", err)
	}

	s.engine.IncrementRequestsProcessed("get asset")
	return &lightingv1.GetAssetResponse{Asset: assembleAsset(d)}, nil
}

// ListAssets streams all assets in batches
func (s *Server) ListAssets(req *lightingv1.ListAssetsRequest, stream lightingv1.AssetService_ListAssetsServer) error {
	defer s.trackOperation()()

	details, err := s.engine.assets.List(stream.Context(), store.Page{Limit: req.Limit, Offset: req.Offset})
	if err != nil {
		return s.rpcError("list assets", err)
	}

	for lo := 0; lo < len(details); lo += assetBatchSize {
		end := lo + assetBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Asset, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleAsset(d))
		}
		if err := stream.Send(&lightingv1.ListAssetsResponse{Assets: batch}); err != nil {
			return s.rpcError("list assets", err)
		}
	}

	s.engine.IncrementRequestsProcessed("list assets")
	return nil
}

// SearchAssetsByLocation streams the assets inside a bounding box
func (s *Server) SearchAssetsByLocation(req *lightingv1.SearchAssetsByLocationRequest, stream lightingv1.AssetService_SearchAssetsByLocationServer) error {
	defer s.trackOperation()()

	a, b, err := corners(req.Rectangle)
	if err != nil {
		return s.rpcError("search assets", err)
	}

	details, err := s.engine.assets.SearchByLocation(stream.Context(), a, b)
	if err != nil {
		return s.rpcError("search assets", err)
	}

	for lo := 0; lo < len(details); lo += assetBatchSize {
		end := lo + assetBatchSize
		if end > len(details) {
			end = len(details)
		}
		batch := make([]*lightingv1.Asset, 0, end-lo)
		for _, d := range details[lo:end] {
			batch = append(batch, assembleAsset(d))
		}
		if err := stream.Send(&lightingv1.SearchAssetsByLocationResponse{Assets: batch}); err != nil {
			return s.rpcError("search assets", err)
		}
	}

	s.engine.IncrementRequestsProcessed("search assets")
	return nil
}

// CreateAsset creates a new asset
func (s *Server) CreateAsset(ctx context.Context, req *lightingv1.CreateAssetRequest) (*lightingv1.CreateAssetResponse, error) {
	defer s.trackOperation()()

	d, err := s.engine.assets.Create(ctx, statusParam(req.Status), locationParam(req.Location))
	if err != nil {
		return nil, s.rpcError("create asset", err)
	}

	s.engine.IncrementRequestsProcessed("create asset")
	return &lightingv1.CreateAssetResponse{
		Message: fmt.Sprintf("Asset %d created successfully", d.Asset.ID),
		Success: true,
		Asset:   assembleAsset(d),
	}, nil
}

// UpdateAsset applies a partial update to an asset
func (s *Server) UpdateAsset(ctx context.Context, req *lightingv1.UpdateAssetRequest) (*lightingv1.UpdateAssetResponse, error) {
	defer s.trackOperation()()

	upd := store.AssetUpdate{
		Status:   statusParam(req.Status),
		Location: locationParam(req.Location),
	}
	d, err := s.engine.assets.Update(ctx, req.Id, upd)
	if err != nil {
		return nil, s.rpcError("update asset", err)
	}

	s.engine.IncrementRequestsProcessed("update asset")
	return &lightingv1.UpdateAssetResponse{
		Message: fmt.Sprintf("Asset %d updated successfully", d.Asset.ID),
		Success: true,
		Asset:   assembleAsset(d),
	}, nil
}

// DeleteAsset soft-deletes an asset and cascades to its elements and
// their exclusively associated telecells
func (s *Server) DeleteAsset(ctx context.Context, req *lightingv1.DeleteAssetRequest) (*lightingv1.DeleteAssetResponse, error) {
	defer s.trackOperation()()

	a, res, err := s.engine.assets.Delete(ctx, req.Id)
	if err != nil {
		return nil, s.rpcError("delete asset", err)
	}

	loc, noLoc := assembleLocation(a.Location)
	s.engine.IncrementRequestsProcessed("delete asset")
	return &lightingv1.DeleteAssetResponse{
		Message: fmt.Sprintf("Asset %d deleted successfully", a.ID),
		Success: true,
		Asset: &lightingv1.Asset{
			Id:         a.ID,
			Status:     lightingv1.ActivityStatus(a.Status),
			Location:   loc,
			NoLocation: noLoc,
			ElementIds: res.ElementIDs,
		},
		DeletedElementIds:  res.ElementIDs,
		DeletedTelecellIds: res.TelecellIDs,
	}, nil
}

// PruneAsset permanently removes an asset together with its elements
func (s *Server) PruneAsset(ctx context.Context, req *lightingv1.PruneAssetRequest) (*lightingv1.PruneAssetResponse, error) {
	defer s.trackOperation()()

	res, err := s.engine.assets.Prune(ctx, req.Id)
	if err != nil {
		return nil, s.rpcError("prune asset", err)
	}

	s.engine.IncrementRequestsProcessed("prune asset")
	return &lightingv1.PruneAssetResponse{
		Message:          fmt.Sprintf("Asset %d pruned successfully", req.Id),
		Success:          true,
		Id:               req.Id,
		PrunedElementIds: res.ElementIDs,
	}, nil
}
