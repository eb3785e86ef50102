// Package telecell implements telecell-related operations on the
// lighting graph, including the element association batch operations.
package telecell

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/cascade"
	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/logger"
)

// Service handles telecell-related operations
type Service struct {
	st     store.Store
	logger *logger.Logger
}

// NewService creates a new telecell service
func NewService(st store.Store, logger *logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

// Detail is a telecell together with the ids of the elements associated
// with it and its resolved basestation, if any.
type Detail struct {
	Telecell    *store.Telecell
	ElementIDs  []int64
	Basestation *store.Basestation
}

func (s *Service) detail(ctx context.Context, st store.Store, tc *store.Telecell) (*Detail, error) {
	d := &Detail{Telecell: tc}
	els, err := st.Elements().ListByTelecell(ctx, tc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list elements of telecell %d: %w", tc.ID, err)
	}
	for _, el := range els {
		d.ElementIDs = append(d.ElementIDs, el.ID)
	}
	if tc.BasestationID != nil {
		bs, err := st.Basestations().Get(ctx, *tc.BasestationID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve basestation of telecell %d: %w", tc.ID, err)
		}
		d.Basestation = bs
	}
	return d, nil
}

// resolve finds a telecell by surrogate id when given, otherwise by
// uuid.
func (s *Service) resolve(ctx context.Context, st store.Store, id, uuid int64) (*store.Telecell, error) {
	switch {
	case id != 0:
		return st.Telecells().Get(ctx, id)
	case uuid != 0:
		return st.Telecells().GetByUUID(ctx, uuid)
	default:
		return nil, fmt.Errorf("telecell: %w", store.ErrMissingIdentifier)
	}
}

// Get returns the telecell identified by id or uuid.
func (s *Service) Get(ctx context.Context, id, uuid int64) (*Detail, error) {
	tc, err := s.resolve(ctx, s.st, id, uuid)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.st, tc)
}

// List returns every telecell.
func (s *Service) List(ctx context.Context, page store.Page) ([]*Detail, error) {
	tcs, err := s.st.Telecells().List(ctx, page)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, tcs)
}

// SearchByLocation returns the telecells whose coordinate falls inside
// the box spanned by the two corners.
func (s *Service) SearchByLocation(ctx context.Context, a, b spatial.Point) ([]*Detail, error) {
	tcs, err := s.st.Telecells().SearchByBox(ctx, spatial.NewRect(a, b))
	if err != nil {
		return nil, err
	}
	return s.details(ctx, tcs)
}

func (s *Service) details(ctx context.Context, tcs []*store.Telecell) ([]*Detail, error) {
	out := make([]*Detail, 0, len(tcs))
	for _, tc := range tcs {
		d, err := s.detail(ctx, s.st, tc)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// CreateParams are the caller-supplied fields for a new telecell. UUID
// is required; nil status defaults to INACTIVE; a referenced
// basestation must exist.
type CreateParams struct {
	UUID          int64
	Relay         bool
	Status        *store.ActivityStatus
	Location      *store.Location
	BasestationID *int64
}

// Create creates a new telecell.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Detail, error) {
	tc := &store.Telecell{
		UUID:          p.UUID,
		Relay:         p.Relay,
		Status:        store.DefaultStatus,
		Location:      p.Location,
		BasestationID: p.BasestationID,
	}
	if p.Status != nil {
		tc.Status = *p.Status
	}
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		if p.BasestationID != nil {
			if _, err := tx.Basestations().Get(ctx, *p.BasestationID); err != nil {
				return err
			}
		}
		created, err := tx.Telecells().Create(ctx, tc)
		if err != nil {
			return err
		}
		d, err = s.detail(ctx, tx, created)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Created telecell %d (uuid %d)", d.Telecell.ID, d.Telecell.UUID)
	return d, nil
}

// Update applies a partial update to the telecell identified by id or
// uuid. A new basestation reference must point at an existing record.
func (s *Service) Update(ctx context.Context, id, uuid int64, upd store.TelecellUpdate) (*Detail, error) {
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		tc, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		if upd.BasestationID != nil && !upd.ClearBasestation {
			if _, err := tx.Basestations().Get(ctx, *upd.BasestationID); err != nil {
				return err
			}
		}
		updated, err := tx.Telecells().Update(ctx, tc.ID, upd)
		if err != nil {
			return err
		}
		d, err = s.detail(ctx, tx, updated)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Delete soft-deletes the telecell. Associated elements keep their
// reference and status.
func (s *Service) Delete(ctx context.Context, id, uuid int64) (*store.Telecell, error) {
	var tc *store.Telecell
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		found, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		tc, err = cascade.SoftDeleteTelecell(ctx, tx, found.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Soft-deleted telecell %d", tc.ID)
	return tc, nil
}

// Prune removes the telecell permanently, clearing the reference on
// every associated element first.
func (s *Service) Prune(ctx context.Context, id, uuid int64) (*cascade.Result, error) {
	var res *cascade.Result
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		tc, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		res, err = cascade.PruneTelecell(ctx, tx, tc.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Pruned telecell (%d elements cleared)", len(res.ElementIDs))
	return res, nil
}

// AddToElements associates the telecell with every listed element in
// one transaction. If any element is missing the whole batch is
// rejected.
func (s *Service) AddToElements(ctx context.Context, id, uuid int64, elementIDs []int64) (*Detail, error) {
	if len(elementIDs) == 0 {
		return nil, fmt.Errorf("no elements given: %w", store.ErrValidation)
	}
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		tc, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		for _, elID := range elementIDs {
			if _, err := tx.Elements().Get(ctx, elID); err != nil {
				return fmt.Errorf("element %d: %w", elID, store.ErrPartialBatch)
			}
			if _, err := tx.Elements().Update(ctx, elID, store.ElementUpdate{TelecellID: &tc.ID}); err != nil {
				return err
			}
		}
		d, err = s.detail(ctx, tx, tc)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Added telecell %d to %d elements", d.Telecell.ID, len(elementIDs))
	return d, nil
}

// RemoveFromElements clears the telecell reference on every listed
// element in one transaction. An element that does not exist, or is not
// associated with this telecell, rejects the whole batch.
func (s *Service) RemoveFromElements(ctx context.Context, id, uuid int64, elementIDs []int64) (*Detail, error) {
	if len(elementIDs) == 0 {
		return nil, fmt.Errorf("no elements given: %w", store.ErrValidation)
	}
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		tc, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		for _, elID := range elementIDs {
			el, err := tx.Elements().Get(ctx, elID)
			if err != nil {
				return fmt.Errorf("element %d: %w", elID, store.ErrPartialBatch)
			}
			if el.TelecellID == nil || *el.TelecellID != tc.ID {
				return fmt.Errorf("element %d is not associated with telecell %d: %w", elID, tc.ID, store.ErrPartialBatch)
			}
			if _, err := tx.Elements().Update(ctx, elID, store.ElementUpdate{ClearTelecell: true}); err != nil {
				return err
			}
		}
		d, err = s.detail(ctx, tx, tc)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Removed telecell %d from %d elements", d.Telecell.ID, len(elementIDs))
	return d, nil
}
