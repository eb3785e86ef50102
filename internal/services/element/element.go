// Package element implements element-related operations on the lighting graph.
package element

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/cascade"
	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/logger"
)

// Service handles element-related operations
type Service struct {
	st     store.Store
	logger *logger.Logger
}

// NewService creates a new element service
func NewService(st store.Store, logger *logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

// Detail is an element together with its resolved owning asset. The
// asset carries the coordinate the element inherits and the full list
// of element ids it owns.
type Detail struct {
	Element         *store.Element
	Asset           *store.Asset
	AssetElementIDs []int64
}

func (s *Service) detail(ctx context.Context, st store.Store, el *store.Element) (*Detail, error) {
	d := &Detail{Element: el}
	if el.AssetID == nil {
		return d, nil
	}
	a, err := st.Assets().Get(ctx, *el.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve asset of element %d: %w", el.ID, err)
	}
	d.Asset = a
	siblings, err := st.Elements().ListByAsset(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list elements of asset %d: %w", a.ID, err)
	}
	for _, sib := range siblings {
		d.AssetElementIDs = append(d.AssetElementIDs, sib.ID)
	}
	return d, nil
}

// Get returns the element with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	if id == 0 {
		return nil, fmt.Errorf("element: %w", store.ErrMissingIdentifier)
	}
	el, err := s.st.Elements().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.st, el)
}

// List returns every element.
func (s *Service) List(ctx context.Context, page store.Page) ([]*Detail, error) {
	els, err := s.st.Elements().List(ctx, page)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, els)
}

// SearchByLocation returns the elements whose owning asset's coordinate
// falls inside the box spanned by the two corners. Elements without an
// asset, and elements whose asset has no location, never match.
func (s *Service) SearchByLocation(ctx context.Context, a, b spatial.Point) ([]*Detail, error) {
	els, err := s.st.Elements().SearchByAssetBox(ctx, spatial.NewRect(a, b))
	if err != nil {
		return nil, err
	}
	return s.details(ctx, els)
}

func (s *Service) details(ctx context.Context, els []*store.Element) ([]*Detail, error) {
	out := make([]*Detail, 0, len(els))
	for _, el := range els {
		d, err := s.detail(ctx, s.st, el)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// CreateParams are the caller-supplied fields for a new element. Nil
// status defaults to INACTIVE. Referenced asset and telecell must exist.
type CreateParams struct {
	Description string
	Status      *store.ActivityStatus
	AssetID     *int64
	TelecellID  *int64
}

// Create creates a new element.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Detail, error) {
	el := &store.Element{
		Description: p.Description,
		Status:      store.DefaultStatus,
		AssetID:     p.AssetID,
		TelecellID:  p.TelecellID,
	}
	if p.Status != nil {
		el.Status = *p.Status
	}
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		if p.AssetID != nil {
			if _, err := tx.Assets().Get(ctx, *p.AssetID); err != nil {
				return err
			}
		}
		if p.TelecellID != nil {
			if _, err := tx.Telecells().Get(ctx, *p.TelecellID); err != nil {
				return err
			}
		}
		created, err := tx.Elements().Create(ctx, el)
		if err != nil {
			return err
		}
		d, err = s.detail(ctx, tx, created)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Created element %d", d.Element.ID)
	return d, nil
}

// Update applies a partial update to the element. A new asset or
// telecell reference must point at an existing entity.
func (s *Service) Update(ctx context.Context, id int64, upd store.ElementUpdate) (*Detail, error) {
	if id == 0 {
		return nil, fmt.Errorf("element: %w", store.ErrMissingIdentifier)
	}
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		if upd.AssetID != nil && !upd.ClearAsset {
			if _, err := tx.Assets().Get(ctx, *upd.AssetID); err != nil {
				return err
			}
		}
		if upd.TelecellID != nil && !upd.ClearTelecell {
			if _, err := tx.Telecells().Get(ctx, *upd.TelecellID); err != nil {
				return err
			}
		}
		el, err := tx.Elements().Update(ctx, id, upd)
		if err != nil {
			return err
		}
		d, err = s.detail(ctx, tx, el)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Delete soft-deletes the element. Its asset and telecell are untouched.
func (s *Service) Delete(ctx context.Context, id int64) (*store.Element, error) {
	if id == 0 {
		return nil, fmt.Errorf("element: %w", store.ErrMissingIdentifier)
	}
	var el *store.Element
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		var err error
		el, err = cascade.SoftDeleteElement(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Soft-deleted element %d", id)
	return el, nil
}

// Prune removes the element permanently.
func (s *Service) Prune(ctx context.Context, id int64) error {
	if id == 0 {
		return fmt.Errorf("element: %w", store.ErrMissingIdentifier)
	}
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		return cascade.PruneElement(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Infof("Pruned element %d", id)
	return nil
}

// AddToAsset associates the element with the asset. Both must exist.
func (s *Service) AddToAsset(ctx context.Context, elementID, assetID int64) (*Detail, error) {
	if elementID == 0 || assetID == 0 {
		return nil, fmt.Errorf("element/asset pair: %w", store.ErrMissingIdentifier)
	}
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		if _, err := tx.Assets().Get(ctx, assetID); err != nil {
			return err
		}
		el, err := tx.Elements().Update(ctx, elementID, store.ElementUpdate{AssetID: &assetID})
		if err != nil {
			return err
		}
		d, err = s.detail(ctx, tx, el)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Added element %d to asset %d", elementID, assetID)
	return d, nil
}
