// Package basestation implements basestation-related operations on the
// lighting graph.
package basestation

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/cascade"
	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/logger"
)

// Service handles basestation-related operations
type Service struct {
	st     store.Store
	logger *logger.Logger
}

// NewService creates a new basestation service
func NewService(st store.Store, logger *logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

// Detail is a basestation together with the ids of the telecells
// associated with it.
type Detail struct {
	Basestation *store.Basestation
	TelecellIDs []int64
}

func (s *Service) detail(ctx context.Context, st store.Store, bs *store.Basestation) (*Detail, error) {
	tcs, err := st.Telecells().ListByBasestation(ctx, bs.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list telecells of basestation %d: %w", bs.ID, err)
	}
	d := &Detail{Basestation: bs}
	for _, tc := range tcs {
		d.TelecellIDs = append(d.TelecellIDs, tc.ID)
	}
	return d, nil
}

func (s *Service) resolve(ctx context.Context, st store.Store, id, uuid int64) (*store.Basestation, error) {
	switch {
	case id != 0:
		return st.Basestations().Get(ctx, id)
	case uuid != 0:
		return st.Basestations().GetByUUID(ctx, uuid)
	default:
		return nil, fmt.Errorf("basestation: %w", store.ErrMissingIdentifier)
	}
}

// Get returns the basestation identified by id or uuid.
func (s *Service) Get(ctx context.Context, id, uuid int64) (*Detail, error) {
	bs, err := s.resolve(ctx, s.st, id, uuid)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, s.st, bs)
}

// List returns every basestation.
func (s *Service) List(ctx context.Context, page store.Page) ([]*Detail, error) {
	bss, err := s.st.Basestations().List(ctx, page)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, bss)
}

// SearchByLocation returns the basestations whose coordinate falls
// inside the box spanned by the two corners.
func (s *Service) SearchByLocation(ctx context.Context, a, b spatial.Point) ([]*Detail, error) {
	bss, err := s.st.Basestations().SearchByBox(ctx, spatial.NewRect(a, b))
	if err != nil {
		return nil, err
	}
	return s.details(ctx, bss)
}

func (s *Service) details(ctx context.Context, bss []*store.Basestation) ([]*Detail, error) {
	out := make([]*Detail, 0, len(bss))
	for _, bs := range bss {
		d, err := s.detail(ctx, s.st, bs)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// CreateParams are the caller-supplied fields for a new basestation.
// UUID is required; nil status defaults to INACTIVE; nil version
// defaults to protocol version 3.
type CreateParams struct {
	UUID     int64
	Status   *store.ActivityStatus
	Location *store.Location
	Version  *int32
}

// Create creates a new basestation.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Detail, error) {
	bs := &store.Basestation{
		UUID:     p.UUID,
		Status:   store.DefaultStatus,
		Location: p.Location,
		Version:  store.DefaultBasestationVersion,
	}
	if p.Status != nil {
		bs.Status = *p.Status
	}
	if p.Version != nil {
		bs.Version = *p.Version
	}
	created, err := s.st.Basestations().Create(ctx, bs)
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Created basestation %d (uuid %d)", created.ID, created.UUID)
	return &Detail{Basestation: created}, nil
}

// Update applies a partial update to the basestation identified by id
// or uuid.
func (s *Service) Update(ctx context.Context, id, uuid int64, upd store.BasestationUpdate) (*Detail, error) {
	var d *Detail
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		bs, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		updated, err := tx.Basestations().Update(ctx, bs.ID, upd)
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

// Delete soft-deletes the basestation. Associated telecells are
// untouched.
func (s *Service) Delete(ctx context.Context, id, uuid int64) (*store.Basestation, error) {
	var bs *store.Basestation
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		found, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		bs, err = cascade.SoftDeleteBasestation(ctx, tx, found.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Soft-deleted basestation %d", bs.ID)
	return bs, nil
}

// Prune removes the basestation permanently, clearing the reference on
// every associated telecell first.
func (s *Service) Prune(ctx context.Context, id, uuid int64) (*cascade.Result, error) {
	var res *cascade.Result
	err := s.st.WithTx(ctx, func(tx store.Store) error {
		bs, err := s.resolve(ctx, tx, id, uuid)
		if err != nil {
			return err
		}
		res, err = cascade.PruneBasestation(ctx, tx, bs.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("Pruned basestation (%d telecells cleared)", len(res.TelecellIDs))
	return res, nil
}
