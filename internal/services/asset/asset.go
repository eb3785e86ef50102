// Package asset implements asset-related operations on the lighting graph.
package asset

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/cascade"
	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/logger"
)

// Service handles asset-related operations
type Service struct {
	st     store.Store
	logger *logger.Logger
}

// NewService creates a new asset service
func NewService(st store.Store, logger *logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

// Detail is an asset together with the ids of the elements it owns,
// ready for assembly into a reply.
type Detail struct {
	Asset      *store.Asset
	ElementIDs []int64
}

func (s *Service) detail(ctx context.Context, st store.Store, a *store.Asset) (*Detail, error) {
	els, err := st.Elements().ListByAsset(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list elements of asset %d: %w", a.ID, err)
	}
	d := &Detail{Asset: a}
	for _, el := range els {
		d.ElementIDs = append(d.ElementIDs, el.ID)
	}
	return d, nil
}

// Get returns the asset with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset: %w", store.ErrMissingIdentifier)
	}
	a, err := s.st.Assets().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.st, a)
}

// List returns every asset.
func (s *Service) List(ctx context.Context, page store.Page) ([]*Detail, error) {
	as, err := s.st.Assets().List(ctx, page)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, as)
}

// SearchByLocation returns the assets whose coordinate falls inside the
// box spanned by the two corners. Assets without a location never match.
func (s *Service) SearchByLocation(ctx context.Context, a, b spatial.Point) ([]*Detail, error) {
	as, err := s.st.Assets().SearchByBox(ctx, spatial.NewRect(a, b))
	if err != nil {
		return nil, err
	}
	return s.details(ctx, as)
}

func (s *Service) details(ctx context.Context, as []*store.Asset) ([]*Detail, error) {
	out := make([]*Detail, 0, len(as))
	for _, a := range as {
		d, err := s.detail(ctx, s.st, a)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Create creates a new asset. A nil status defaults to INACTIVE.
func (s *Service) Create(ctx context.Context, status *store.ActivityStatus, loc *store.Location) (*Detail, error) {
	a := &store.Asset{Status: store.DefaultStatus, Location: loc}
	if status != nil {
		a.Status = *status
	}
	created, err := s.st.Assets().Create(ctx, a)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Created asset %d", created.ID)
	return &Detail{Asset: created}, nil
}

// Update applies a partial update to the asset.
func (s *Service) Update(ctx context.Context, id int64, upd store.AssetUpdate) (*Detail, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset: %w", store.ErrMissingIdentifier)
	}
	a, err := s.st.Assets().Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.st, a)
}

// Delete soft-deletes the asset, cascading DELETED status to its
// elements and their telecells in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) (*store.Asset, *cascade.Result, error) {
	if id == 0 {
		return nil, nil, fmt.Errorf("asset: %w", store.ErrMissingIdentifier)
	}
	var (
		a   *store.Asset
		res *cascade.Result
	)
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		var err error
		a, res, err = cascade.SoftDeleteAsset(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	s.logger.Infof("Soft-deleted asset %d (%d elements, %d telecells)", id, len(res.ElementIDs), len(res.TelecellIDs))
	return a, res, nil
}

// Prune removes the asset and its elements permanently. Telecells
// referenced by those elements are kept.
func (s *Service) Prune(ctx context.Context, id int64) (*cascade.Result, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset: %w", store.ErrMissingIdentifier)
	}
	var res *cascade.Result
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		var err error
		res, err = cascade.PruneAsset(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Pruned asset %d (%d elements)", id, len(res.ElementIDs))
	return res, nil
}
