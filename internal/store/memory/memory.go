// Package memory provides an in-memory Store implementation backed by
// maps under a coarse lock. It serves tests and the -memory demo mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

// data is the whole dataset. Transactions work on a deep copy and swap
// it in on commit.
type data struct {
	seq          int64
	assets       map[int64]*store.Asset
	elements     map[int64]*store.Element
	telecells    map[int64]*store.Telecell
	basestations map[int64]*store.Basestation
	users        map[int64]*store.User
}

func newData() *data {
	return &data{
		assets:       make(map[int64]*store.Asset),
		elements:     make(map[int64]*store.Element),
		telecells:    make(map[int64]*store.Telecell),
		basestations: make(map[int64]*store.Basestation),
		users:        make(map[int64]*store.User),
	}
}

func (d *data) nextID() int64 {
	d.seq++
	return d.seq
}

func (d *data) clone() *data {
	c := &data{
		seq:          d.seq,
		assets:       make(map[int64]*store.Asset, len(d.assets)),
		elements:     make(map[int64]*store.Element, len(d.elements)),
		telecells:    make(map[int64]*store.Telecell, len(d.telecells)),
		basestations: make(map[int64]*store.Basestation, len(d.basestations)),
		users:        make(map[int64]*store.User, len(d.users)),
	}
	for id, a := range d.assets {
		c.assets[id] = cloneAsset(a)
	}
	for id, e := range d.elements {
		c.elements[id] = cloneElement(e)
	}
	for id, tc := range d.telecells {
		c.telecells[id] = cloneTelecell(tc)
	}
	for id, bs := range d.basestations {
		c.basestations[id] = cloneBasestation(bs)
	}
	for id, u := range d.users {
		c.users[id] = cloneUser(u)
	}
	return c
}

func cloneLocation(l *store.Location) *store.Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneAsset(a *store.Asset) *store.Asset {
	c := *a
	c.Location = cloneLocation(a.Location)
	return &c
}

func cloneElement(e *store.Element) *store.Element {
	c := *e
	c.AssetID = cloneID(e.AssetID)
	c.TelecellID = cloneID(e.TelecellID)
	return &c
}

func cloneTelecell(tc *store.Telecell) *store.Telecell {
	c := *tc
	c.Location = cloneLocation(tc.Location)
	c.BasestationID = cloneID(tc.BasestationID)
	return &c
}

func cloneBasestation(bs *store.Basestation) *store.Basestation {
	c := *bs
	c.Location = cloneLocation(bs.Location)
	return &c
}

func cloneUser(u *store.User) *store.User {
	c := *u
	return &c
}

// Store is the in-memory root handle. A nil mu marks a transactional
// view, which runs under the parent's exclusive lock and needs none of
// its own.
type Store struct {
	mu *sync.RWMutex
	d  *data
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{mu: &sync.RWMutex{}, d: newData()}
}

func (s *Store) rlock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock() func() {
	if s.mu == nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Assets() store.AssetStore             { return assets{s} }
func (s *Store) Elements() store.ElementStore         { return elements{s} }
func (s *Store) Telecells() store.TelecellStore       { return telecells{s} }
func (s *Store) Basestations() store.BasestationStore { return basestations{s} }
func (s *Store) Users() store.UserStore               { return users{s} }

// WithTx runs fn against a deep copy of the dataset and swaps the copy
// in only when fn succeeds. The exclusive lock is held throughout, so a
// transaction is fully serialized against every other operation.
func (s *Store) WithTx(ctx context.Context, fn func(store.Store) error) error {
	if s.mu == nil {
		// Already inside a transaction; reuse the same view.
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	view := &Store{d: s.d.clone()}
	if err := fn(view); err != nil {
		return err
	}
	s.d = view.d
	return nil
}

type assets struct{ s *Store }

func (st assets) Get(ctx context.Context, id int64) (*store.Asset, error) {
	defer st.s.rlock()()
	a, ok := st.s.d.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset %d: %w", id, store.ErrNotFound)
	}
	return cloneAsset(a), nil
}

func (st assets) Count(ctx context.Context) (int64, error) {
	defer st.s.rlock()()
	return int64(len(st.s.d.assets)), nil
}

func (st assets) List(ctx context.Context, page store.Page) ([]*store.Asset, error) {
	defer st.s.rlock()()
	out := make([]*store.Asset, 0, len(st.s.d.assets))
	for _, a := range st.s.d.assets {
		out = append(out, cloneAsset(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	lo, hi := page.Bounds(len(out))
	return out[lo:hi], nil
}

func (st assets) SearchByBox(ctx context.Context, box spatial.Rect) ([]*store.Asset, error) {
	defer st.s.rlock()()
	var out []*store.Asset
	for _, a := range st.s.d.assets {
		if a.Location != nil && box.Contains(a.Location.Point()) {
			out = append(out, cloneAsset(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st assets) Create(ctx context.Context, a *store.Asset) (*store.Asset, error) {
	defer st.s.lock()()
	c := cloneAsset(a)
	c.ID = st.s.d.nextID()
	st.s.d.assets[c.ID] = c
	return cloneAsset(c), nil
}

func (st assets) Update(ctx context.Context, id int64, upd store.AssetUpdate) (*store.Asset, error) {
	defer st.s.lock()()
	a, ok := st.s.d.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset %d: %w", id, store.ErrNotFound)
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.ClearLocation {
		a.Location = nil
	} else if upd.Location != nil {
		a.Location = cloneLocation(upd.Location)
	}
	return cloneAsset(a), nil
}

func (st assets) Delete(ctx context.Context, id int64) error {
	defer st.s.lock()()
	if _, ok := st.s.d.assets[id]; !ok {
		return fmt.Errorf("asset %d: %w", id, store.ErrNotFound)
	}
	delete(st.s.d.assets, id)
	return nil
}

type elements struct{ s *Store }

func (st elements) Get(ctx context.Context, id int64) (*store.Element, error) {
	defer st.s.rlock()()
	e, ok := st.s.d.elements[id]
	if !ok {
		return nil, fmt.Errorf("element %d: %w", id, store.ErrNotFound)
	}
	return cloneElement(e), nil
}

func (st elements) Count(ctx context.Context) (int64, error) {
	defer st.s.rlock()()
	return int64(len(st.s.d.elements)), nil
}

func (st elements) List(ctx context.Context, page store.Page) ([]*store.Element, error) {
	defer st.s.rlock()()
	out := make([]*store.Element, 0, len(st.s.d.elements))
	for _, e := range st.s.d.elements {
		out = append(out, cloneElement(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	lo, hi := page.Bounds(len(out))
	return out[lo:hi], nil
}

func (st elements) ListByAsset(ctx context.Context, assetID int64) ([]*store.Element, error) {
	defer st.s.rlock()()
	var out []*store.Element
	for _, e := range st.s.d.elements {
		if e.AssetID != nil && *e.AssetID == assetID {
			out = append(out, cloneElement(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st elements) ListByTelecell(ctx context.Context, telecellID int64) ([]*store.Element, error) {
	defer st.s.rlock()()
	var out []*store.Element
	for _, e := range st.s.d.elements {
		if e.TelecellID != nil && *e.TelecellID == telecellID {
			out = append(out, cloneElement(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st elements) SearchByAssetBox(ctx context.Context, box spatial.Rect) ([]*store.Element, error) {
	defer st.s.rlock()()
	var out []*store.Element
	for _, e := range st.s.d.elements {
		if e.AssetID == nil {
			continue
		}
		a, ok := st.s.d.assets[*e.AssetID]
		if !ok || a.Location == nil {
			continue
		}
		if box.Contains(a.Location.Point()) {
			out = append(out, cloneElement(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st elements) Create(ctx context.Context, e *store.Element) (*store.Element, error) {
	defer st.s.lock()()
	c := cloneElement(e)
	c.ID = st.s.d.nextID()
	st.s.d.elements[c.ID] = c
	return cloneElement(c), nil
}

func (st elements) Update(ctx context.Context, id int64, upd store.ElementUpdate) (*store.Element, error) {
	defer st.s.lock()()
	e, ok := st.s.d.elements[id]
	if !ok {
		return nil, fmt.Errorf("element %d: %w", id, store.ErrNotFound)
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.ClearAsset {
		e.AssetID = nil
	} else if upd.AssetID != nil {
		e.AssetID = cloneID(upd.AssetID)
	}
	if upd.ClearTelecell {
		e.TelecellID = nil
	} else if upd.TelecellID != nil {
		e.TelecellID = cloneID(upd.TelecellID)
	}
	return cloneElement(e), nil
}

func (st elements) Delete(ctx context.Context, id int64) error {
	defer st.s.lock()()
	if _, ok := st.s.d.elements[id]; !ok {
		return fmt.Errorf("element %d: %w", id, store.ErrNotFound)
	}
	delete(st.s.d.elements, id)
	return nil
}

type telecells struct{ s *Store }

func (st telecells) Get(ctx context.Context, id int64) (*store.Telecell, error) {
	defer st.s.rlock()()
	tc, ok := st.s.d.telecells[id]
	if !ok {
		return nil, fmt.Errorf("telecell %d: %w", id, store.ErrNotFound)
	}
	return cloneTelecell(tc), nil
}

func (st telecells) GetByUUID(ctx context.Context, uuid int64) (*store.Telecell, error) {
	defer st.s.rlock()()
	for _, tc := range st.s.d.telecells {
		if tc.UUID == uuid {
			return cloneTelecell(tc), nil
		}
	}
	return nil, fmt.Errorf("telecell uuid %d: %w", uuid, store.ErrNotFound)
}

func (st telecells) Count(ctx context.Context) (int64, error) {
	defer st.s.rlock()()
	return int64(len(st.s.d.telecells)), nil
}

func (st telecells) List(ctx context.Context, page store.Page) ([]*store.Telecell, error) {
	defer st.s.rlock()()
	out := make([]*store.Telecell, 0, len(st.s.d.telecells))
	for _, tc := range st.s.d.telecells {
		out = append(out, cloneTelecell(tc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	lo, hi := page.Bounds(len(out))
	return out[lo:hi], nil
}

func (st telecells) ListByBasestation(ctx context.Context, basestationID int64) ([]*store.Telecell, error) {
	defer st.s.rlock()()
	var out []*store.Telecell
	for _, tc := range st.s.d.telecells {
		if tc.BasestationID != nil && *tc.BasestationID == basestationID {
			out = append(out, cloneTelecell(tc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st telecells) SearchByBox(ctx context.Context, box spatial.Rect) ([]*store.Telecell, error) {
	defer st.s.rlock()()
	var out []*store.Telecell
	for _, tc := range st.s.d.telecells {
		if tc.Location != nil && box.Contains(tc.Location.Point()) {
			out = append(out, cloneTelecell(tc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st telecells) Create(ctx context.Context, tc *store.Telecell) (*store.Telecell, error) {
	defer st.s.lock()()
	if tc.UUID == 0 {
		return nil, fmt.Errorf("telecell uuid is required: %w", store.ErrValidation)
	}
	for _, other := range st.s.d.telecells {
		if other.UUID == tc.UUID {
			return nil, fmt.Errorf("telecell uuid %d: %w", tc.UUID, store.ErrDuplicateUUID)
		}
	}
	c := cloneTelecell(tc)
	c.ID = st.s.d.nextID()
	c.UpdatedAt = time.Now().UTC()
	st.s.d.telecells[c.ID] = c
	return cloneTelecell(c), nil
}

func (st telecells) Update(ctx context.Context, id int64, upd store.TelecellUpdate) (*store.Telecell, error) {
	defer st.s.lock()()
	tc, ok := st.s.d.telecells[id]
	if !ok {
		return nil, fmt.Errorf("telecell %d: %w", id, store.ErrNotFound)
	}
	if upd.UUID != nil {
		for _, other := range st.s.d.telecells {
			if other.ID != id && other.UUID == *upd.UUID {
				return nil, fmt.Errorf("telecell uuid %d: %w", *upd.UUID, store.ErrDuplicateUUID)
			}
		}
		tc.UUID = *upd.UUID
	}
	if upd.Relay != nil {
		tc.Relay = *upd.Relay
	}
	if upd.Status != nil {
		tc.Status = *upd.Status
	}
	if upd.ClearLocation {
		tc.Location = nil
	} else if upd.Location != nil {
		tc.Location = cloneLocation(upd.Location)
	}
	if upd.ClearBasestation {
		tc.BasestationID = nil
	} else if upd.BasestationID != nil {
		tc.BasestationID = cloneID(upd.BasestationID)
	}
	tc.UpdatedAt = time.Now().UTC()
	return cloneTelecell(tc), nil
}

func (st telecells) Delete(ctx context.Context, id int64) error {
	defer st.s.lock()()
	if _, ok := st.s.d.telecells[id]; !ok {
		return fmt.Errorf("telecell %d: %w", id, store.ErrNotFound)
	}
	delete(st.s.d.telecells, id)
	return nil
}

type basestations struct{ s *Store }

func (st basestations) Get(ctx context.Context, id int64) (*store.Basestation, error) {
	defer st.s.rlock()()
	bs, ok := st.s.d.basestations[id]
	if !ok {
		return nil, fmt.Errorf("basestation %d: %w", id, store.ErrNotFound)
	}
	return cloneBasestation(bs), nil
}

func (st basestations) GetByUUID(ctx context.Context, uuid int64) (*store.Basestation, error) {
	defer st.s.rlock()()
	for _, bs := range st.s.d.basestations {
		if bs.UUID == uuid {
			return cloneBasestation(bs), nil
		}
	}
	return nil, fmt.Errorf("basestation uuid %d: %w", uuid, store.ErrNotFound)
}

func (st basestations) Count(ctx context.Context) (int64, error) {
	defer st.s.rlock()()
	return int64(len(st.s.d.basestations)), nil
}

func (st basestations) List(ctx context.Context, page store.Page) ([]*store.Basestation, error) {
	defer st.s.rlock()()
	out := make([]*store.Basestation, 0, len(st.s.d.basestations))
	for _, bs := range st.s.d.basestations {
		out = append(out, cloneBasestation(bs))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	lo, hi := page.Bounds(len(out))
	return out[lo:hi], nil
}

func (st basestations) SearchByBox(ctx context.Context, box spatial.Rect) ([]*store.Basestation, error) {
	defer st.s.rlock()()
	var out []*store.Basestation
	for _, bs := range st.s.d.basestations {
		if bs.Location != nil && box.Contains(bs.Location.Point()) {
			out = append(out, cloneBasestation(bs))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st basestations) Create(ctx context.Context, bs *store.Basestation) (*store.Basestation, error) {
	defer st.s.lock()()
	if bs.UUID == 0 {
		return nil, fmt.Errorf("basestation uuid is required: %w", store.ErrValidation)
	}
	for _, other := range st.s.d.basestations {
		if other.UUID == bs.UUID {
			return nil, fmt.Errorf("basestation uuid %d: %w", bs.UUID, store.ErrDuplicateUUID)
		}
	}
	c := cloneBasestation(bs)
	c.ID = st.s.d.nextID()
	st.s.d.basestations[c.ID] = c
	return cloneBasestation(c), nil
}

func (st basestations) Update(ctx context.Context, id int64, upd store.BasestationUpdate) (*store.Basestation, error) {
	defer st.s.lock()()
	bs, ok := st.s.d.basestations[id]
	if !ok {
		return nil, fmt.Errorf("basestation %d: %w", id, store.ErrNotFound)
	}
	if upd.UUID != nil {
		for _, other := range st.s.d.basestations {
			if other.ID != id && other.UUID == *upd.UUID {
				return nil, fmt.Errorf("basestation uuid %d: %w", *upd.UUID, store.ErrDuplicateUUID)
			}
		}
		bs.UUID = *upd.UUID
	}
	if upd.Status != nil {
		bs.Status = *upd.Status
	}
	if upd.ClearLocation {
		bs.Location = nil
	} else if upd.Location != nil {
		bs.Location = cloneLocation(upd.Location)
	}
	if upd.Version != nil {
		bs.Version = *upd.Version
	}
	return cloneBasestation(bs), nil
}

func (st basestations) Delete(ctx context.Context, id int64) error {
	defer st.s.lock()()
	if _, ok := st.s.d.basestations[id]; !ok {
		return fmt.Errorf("basestation %d: %w", id, store.ErrNotFound)
	}
	delete(st.s.d.basestations, id)
	return nil
}

type users struct{ s *Store }

func (st users) Get(ctx context.Context, id int64) (*store.User, error) {
	defer st.s.rlock()()
	u, ok := st.s.d.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	return cloneUser(u), nil
}

func (st users) GetByUsername(ctx context.Context, username string) (*store.User, error) {
	defer st.s.rlock()()
	for _, u := range st.s.d.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, store.ErrNotFound)
}

func (st users) Count(ctx context.Context) (int64, error) {
	defer st.s.rlock()()
	return int64(len(st.s.d.users)), nil
}

func (st users) List(ctx context.Context, page store.Page) ([]*store.User, error) {
	defer st.s.rlock()()
	out := make([]*store.User, 0, len(st.s.d.users))
	for _, u := range st.s.d.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	lo, hi := page.Bounds(len(out))
	return out[lo:hi], nil
}

func (st users) Create(ctx context.Context, u *store.User) (*store.User, error) {
	defer st.s.lock()()
	if u.Username == "" {
		return nil, fmt.Errorf("username is required: %w", store.ErrValidation)
	}
	for _, other := range st.s.d.users {
		if other.Username == u.Username {
			return nil, fmt.Errorf("user %q: %w", u.Username, store.ErrDuplicateUUID)
		}
	}
	c := cloneUser(u)
	c.ID = st.s.d.nextID()
	st.s.d.users[c.ID] = c
	return cloneUser(c), nil
}

func (st users) Update(ctx context.Context, id int64, upd store.UserUpdate) (*store.User, error) {
	defer st.s.lock()()
	u, ok := st.s.d.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	if upd.Username != nil {
		for _, other := range st.s.d.users {
			if other.ID != id && other.Username == *upd.Username {
				return nil, fmt.Errorf("user %q: %w", *upd.Username, store.ErrDuplicateUUID)
			}
		}
		u.Username = *upd.Username
	}
	if upd.HashedPass != nil {
		u.HashedPass = *upd.HashedPass
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	return cloneUser(u), nil
}

func (st users) Delete(ctx context.Context, id int64) error {
	defer st.s.lock()()
	if _, ok := st.s.d.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	delete(st.s.d.users, id)
	return nil
}
