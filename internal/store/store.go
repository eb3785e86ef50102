// Package store defines the persistence contract for the lighting
// entity graph. Implementations live in store/postgres and store/memory.
package store

import (
	"context"
	"time"

	"github.com/luminet-io/luminet/internal/spatial"
)

// ActivityStatus is the lifecycle status carried by every graph entity.
type ActivityStatus int32

const (
	StatusUnavailable              ActivityStatus = 0
	StatusActive                   ActivityStatus = 1
	StatusInactive                 ActivityStatus = 2
	StatusUnassociatedToAsset      ActivityStatus = 3
	StatusUnassociatedToTC         ActivityStatus = 4
	StatusUnassociatedToAssetAndTC ActivityStatus = 5
	StatusDeleted                  ActivityStatus = 15
)

// DefaultStatus is applied on create when the caller omits a status.
const DefaultStatus = StatusInactive

// DefaultBasestationVersion is the protocol version assigned when a
// basestation is created without an explicit version.
const DefaultBasestationVersion = 3

// Role is a user's permission level.
type Role int32

const (
	RoleUnspecified Role = 0
	RoleAdmin       Role = 1
	RoleOperator    Role = 2
	RoleViewer      Role = 3
)

// DefaultRole is applied on user create when the caller omits a role.
const DefaultRole = RoleOperator

// Location is an atomic coordinate pair. Entities hold *Location: a nil
// pointer means the entity has no location, never a half-set pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Point converts the location for spatial containment checks.
func (l Location) Point() spatial.Point {
	return spatial.Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Asset is a physical installation owning zero or more elements.
type Asset struct {
	ID       int64
	Status   ActivityStatus
	Location *Location
}

// Element is a light point owned by at most one asset and associated
// with at most one telecell. It has no coordinate of its own; its
// effective location is its asset's.
type Element struct {
	ID          int64
	Description string
	Status      ActivityStatus
	AssetID     *int64
	TelecellID  *int64
}

// Telecell is a control node with an externally assigned uuid.
type Telecell struct {
	ID            int64
	UUID          int64
	Relay         bool
	Status        ActivityStatus
	Location      *Location
	BasestationID *int64
	UpdatedAt     time.Time
}

// Basestation is a radio concentrator with an externally assigned uuid.
type Basestation struct {
	ID       int64
	UUID     int64
	Status   ActivityStatus
	Location *Location
	Version  int32
}

// User is an account record outside the entity graph.
type User struct {
	ID         int64
	Username   string
	HashedPass string
	Role       Role
	Created    time.Time
}

// AssetUpdate describes a partial asset update. Nil fields are left
// untouched; ClearLocation removes the coordinate.
type AssetUpdate struct {
	Status        *ActivityStatus
	Location      *Location
	ClearLocation bool
}

// ElementUpdate describes a partial element update.
type ElementUpdate struct {
	Description   *string
	Status        *ActivityStatus
	AssetID       *int64
	ClearAsset    bool
	TelecellID    *int64
	ClearTelecell bool
}

// TelecellUpdate describes a partial telecell update. Every applied
// update refreshes UpdatedAt.
type TelecellUpdate struct {
	UUID             *int64
	Relay            *bool
	Status           *ActivityStatus
	Location         *Location
	ClearLocation    bool
	BasestationID    *int64
	ClearBasestation bool
}

// BasestationUpdate describes a partial basestation update.
type BasestationUpdate struct {
	UUID          *int64
	Status        *ActivityStatus
	Location      *Location
	ClearLocation bool
	Version       *int32
}

// UserUpdate describes a partial user update.
type UserUpdate struct {
	Username   *string
	HashedPass *string
	Role       *Role
}

// Page bounds a listing. A zero Limit means no cap; Offset rows are
// skipped from the id-ordered result. The zero Page returns everything.
type Page struct {
	Limit  int32
	Offset int32
}

// Bounds clamps the page against n rows and returns the index range to
// keep. Implementations that page in the backend never call it.
func (p Page) Bounds(n int) (int, int) {
	lo := int(p.Offset)
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	hi := n
	if p.Limit > 0 && lo+int(p.Limit) < hi {
		hi = lo + int(p.Limit)
	}
	return lo, hi
}

// AssetStore persists assets.
type AssetStore interface {
	Get(ctx context.Context, id int64) (*Asset, error)
	List(ctx context.Context, page Page) ([]*Asset, error)
	Count(ctx context.Context) (int64, error)
	SearchByBox(ctx context.Context, box spatial.Rect) ([]*Asset, error)
	Create(ctx context.Context, a *Asset) (*Asset, error)
	Update(ctx context.Context, id int64, upd AssetUpdate) (*Asset, error)
	Delete(ctx context.Context, id int64) error
}

// ElementStore persists elements and answers adjacency queries against
// assets and telecells.
type ElementStore interface {
	Get(ctx context.Context, id int64) (*Element, error)
	List(ctx context.Context, page Page) ([]*Element, error)
	Count(ctx context.Context) (int64, error)
	ListByAsset(ctx context.Context, assetID int64) ([]*Element, error)
	ListByTelecell(ctx context.Context, telecellID int64) ([]*Element, error)
	// SearchByAssetBox matches elements whose owning asset's coordinate
	// falls inside the box.
	SearchByAssetBox(ctx context.Context, box spatial.Rect) ([]*Element, error)
	Create(ctx context.Context, e *Element) (*Element, error)
	Update(ctx context.Context, id int64, upd ElementUpdate) (*Element, error)
	Delete(ctx context.Context, id int64) error
}

// TelecellStore persists telecells.
type TelecellStore interface {
	Get(ctx context.Context, id int64) (*Telecell, error)
	GetByUUID(ctx context.Context, uuid int64) (*Telecell, error)
	List(ctx context.Context, page Page) ([]*Telecell, error)
	Count(ctx context.Context) (int64, error)
	ListByBasestation(ctx context.Context, basestationID int64) ([]*Telecell, error)
	SearchByBox(ctx context.Context, box spatial.Rect) ([]*Telecell, error)
	Create(ctx context.Context, tc *Telecell) (*Telecell, error)
	Update(ctx context.Context, id int64, upd TelecellUpdate) (*Telecell, error)
	Delete(ctx context.Context, id int64) error
}

// BasestationStore persists basestations.
type BasestationStore interface {
	Get(ctx context.Context, id int64) (*Basestation, error)
	GetByUUID(ctx context.Context, uuid int64) (*Basestation, error)
	List(ctx context.Context, page Page) ([]*Basestation, error)
	Count(ctx context.Context) (int64, error)
	SearchByBox(ctx context.Context, box spatial.Rect) ([]*Basestation, error)
	Create(ctx context.Context, bs *Basestation) (*Basestation, error)
	Update(ctx context.Context, id int64, upd BasestationUpdate) (*Basestation, error)
	Delete(ctx context.Context, id int64) error
}

// UserStore persists users.
type UserStore interface {
	Get(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, page Page) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	Delete(ctx context.Context, id int64) error
}

// Store is the root handle over the entity collections. WithTx runs fn
// against a transactional view; if fn returns an error every change made
// through that view is discarded.
type Store interface {
	Assets() AssetStore
	Elements() ElementStore
	Telecells() TelecellStore
	Basestations() BasestationStore
	Users() UserStore
	WithTx(ctx context.Context, fn func(Store) error) error
}
