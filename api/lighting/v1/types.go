// Package lightingv1 is the wire contract for the lighting RPC surface.
//
// The message and enum definitions here mirror lighting.proto, which is the
// schema source of truth. Optional scalar fields use pointers so that a caller
// omitting a field is distinguishable from a caller explicitly sending the
// zero value.
package lightingv1

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// ActivityStatus is the closed lifecycle status enum shared by assets,
// elements, telecells and basestations.
type ActivityStatus int32

const (
	ActivityStatusUnavailable              ActivityStatus = 0
	ActivityStatusActive                   ActivityStatus = 1
	ActivityStatusInactive                 ActivityStatus = 2
	ActivityStatusUnassociatedToAsset      ActivityStatus = 3
	ActivityStatusUnassociatedToTC         ActivityStatus = 4
	ActivityStatusUnassociatedToAssetAndTC ActivityStatus = 5
	ActivityStatusDeleted                  ActivityStatus = 15
)

func (s ActivityStatus) String() string {
	switch s {
	case ActivityStatusUnavailable:
		return "UNAVAILABLE"
	case ActivityStatusActive:
		return "ACTIVE"
	case ActivityStatusInactive:
		return "INACTIVE"
	case ActivityStatusUnassociatedToAsset:
		return "UNASSOCIATED_TO_ASSET"
	case ActivityStatusUnassociatedToTC:
		return "UNASSOCIATED_TO_TC"
	case ActivityStatusUnassociatedToAssetAndTC:
		return "UNASSOCIATED_TO_ASSET_AND_TC"
	case ActivityStatusDeleted:
		return "DELETED"
	default:
		return fmt.Sprintf("ACTIVITY_STATUS(%d)", int32(s))
	}
}

// Role is the user role enum.
type Role int32

const (
	RoleUnspecified Role = 0
	RoleAdmin       Role = 1
	RoleOperator    Role = 2
	RoleViewer      Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleOperator:
		return "OPERATOR"
	case RoleViewer:
		return "VIEWER"
	default:
		return "UNSPECIFIED"
	}
}

// Location is a latitude/longitude coordinate pair. Both components are
// always set together; an absent location is expressed by the enclosing
// message's NoLocation marker, never by a partially-filled Location.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Rectangle is a bounding box given as two unordered corners.
type Rectangle struct {
	Lo *Location
	Hi *Location
}

// Asset is a lamppost record. Exactly one of Location and NoLocation is
// meaningful: Location non-nil with NoLocation false, or Location nil with
// NoLocation true.
type Asset struct {
	Id         int64
	Status     ActivityStatus
	Location   *Location
	NoLocation bool
	ElementIds []int64
}

// Element is a lamp unit record. Its effective coordinate is its owning
// Asset's, carried by the embedded Asset record.
type Element struct {
	Id          int64
	Description string
	Status      ActivityStatus
	Asset       *Asset
	TelecellId  *int64
}

// Telecell is a radio control unit record.
type Telecell struct {
	Id            int64
	Uuid          int64
	Relay         bool
	Status        ActivityStatus
	Location      *Location
	NoLocation    bool
	BasestationId *int64
	ElementIds    []int64
	Basestation   *Basestation
	UpdatedAt     *timestamppb.Timestamp
}

// Basestation is a radio base station record.
type Basestation struct {
	Id          int64
	Uuid        int64
	Version     int32
	Status      ActivityStatus
	Location    *Location
	NoLocation  bool
	TelecellIds []int64
}

// User is an operator account record. The hashed password is never exposed
// on the wire.
type User struct {
	Id       int64
	Username string
	Role     Role
	Created  *timestamppb.Timestamp
}

// Asset service messages.

type GetAssetRequest struct {
	Id int64
}

type GetAssetResponse struct {
	Asset *Asset
}

type ListAssetsRequest struct {
	Limit  int32
	Offset int32
}

type ListAssetsResponse struct {
	Assets []*Asset
}

type SearchAssetsByLocationRequest struct {
	Rectangle *Rectangle
}

type SearchAssetsByLocationResponse struct {
	Assets []*Asset
}

type CreateAssetRequest struct {
	Status   *ActivityStatus
	Location *Location
}

type CreateAssetResponse struct {
	Message string
	Success bool
	Asset   *Asset
}

type UpdateAssetRequest struct {
	Id       int64
	Status   *ActivityStatus
	Location *Location
}

type UpdateAssetResponse struct {
	Message string
	Success bool
	Asset   *Asset
}

type DeleteAssetRequest struct {
	Id int64
}

type DeleteAssetResponse struct {
	Message            string
	Success            bool
	Asset              *Asset
	DeletedElementIds  []int64
	DeletedTelecellIds []int64
}

type PruneAssetRequest struct {
	Id int64
}

type PruneAssetResponse struct {
	Message          string
	Success          bool
	Id               int64
	PrunedElementIds []int64
}

// Element service messages.

type GetElementRequest struct {
	Id int64
}

type GetElementResponse struct {
	Element *Element
}

type ListElementsRequest struct {
	Limit  int32
	Offset int32
}

type ListElementsResponse struct {
	Elements []*Element
}

type SearchElementsByLocationRequest struct {
	Rectangle *Rectangle
}

type SearchElementsByLocationResponse struct {
	Elements []*Element
}

type CreateElementRequest struct {
	AssetId     int64
	Description *string
	Status      *ActivityStatus
}

type CreateElementResponse struct {
	Message string
	Success bool
	Element *Element
}

type UpdateElementRequest struct {
	Id          int64
	Description *string
	Status      *ActivityStatus
	AssetId     *int64
}

type UpdateElementResponse struct {
	Message string
	Success bool
	Element *Element
}

type DeleteElementRequest struct {
	Id int64
}

type DeleteElementResponse struct {
	Message string
	Success bool
	Element *Element
}

type PruneElementRequest struct {
	Id int64
}

type PruneElementResponse struct {
	Message string
	Success bool
	Id      int64
}

type AddElementToAssetRequest struct {
	ElementId int64
	AssetId   int64
}

type AddElementToAssetResponse struct {
	Message string
	Success bool
	Element *Element
}

// Telecell service messages.

type GetTelecellRequest struct {
	Id   int64
	Uuid int64
}

type GetTelecellResponse struct {
	Telecell *Telecell
}

type ListTelecellsRequest struct {
	Limit  int32
	Offset int32
}

type ListTelecellsResponse struct {
	Telecells []*Telecell
}

type SearchTelecellsByLocationRequest struct {
	Rectangle *Rectangle
}

type SearchTelecellsByLocationResponse struct {
	Telecells []*Telecell
}

type CreateTelecellRequest struct {
	Uuid          int64
	Relay         bool
	Status        *ActivityStatus
	Location      *Location
	BasestationId *int64
}

type CreateTelecellResponse struct {
	Message  string
	Success  bool
	Telecell *Telecell
}

type UpdateTelecellRequest struct {
	Id            int64
	Uuid          int64
	Relay         *bool
	Status        *ActivityStatus
	Location      *Location
	BasestationId *int64
}

type UpdateTelecellResponse struct {
	Message  string
	Success  bool
	Telecell *Telecell
}

type DeleteTelecellRequest struct {
	Id   int64
	Uuid int64
}

type DeleteTelecellResponse struct {
	Message  string
	Success  bool
	Telecell *Telecell
}

type PruneTelecellRequest struct {
	Id   int64
	Uuid int64
}

type PruneTelecellResponse struct {
	Message           string
	Success           bool
	Id                int64
	ClearedElementIds []int64
}

type AddTelecellToElementsRequest struct {
	Id         int64
	Uuid       int64
	ElementIds []int64
}

type AddTelecellToElementsResponse struct {
	Message  string
	Success  bool
	Telecell *Telecell
}

type RemoveTelecellFromElementsRequest struct {
	Id         int64
	Uuid       int64
	ElementIds []int64
}

type RemoveTelecellFromElementsResponse struct {
	Message  string
	Success  bool
	Telecell *Telecell
}

// Basestation service messages.

type GetBasestationRequest struct {
	Id   int64
	Uuid int64
}

type GetBasestationResponse struct {
	Basestation *Basestation
}

type ListBasestationsRequest struct {
	Limit  int32
	Offset int32
}

type ListBasestationsResponse struct {
	Basestations []*Basestation
}

type SearchBasestationsByLocationRequest struct {
	Rectangle *Rectangle
}

type SearchBasestationsByLocationResponse struct {
	Basestations []*Basestation
}

type CreateBasestationRequest struct {
	Uuid     int64
	Version  *int32
	Status   *ActivityStatus
	Location *Location
}

type CreateBasestationResponse struct {
	Message     string
	Success     bool
	Basestation *Basestation
}

type UpdateBasestationRequest struct {
	Id       int64
	Uuid     int64
	Version  *int32
	Status   *ActivityStatus
	Location *Location
}

type UpdateBasestationResponse struct {
	Message     string
	Success     bool
	Basestation *Basestation
}

type DeleteBasestationRequest struct {
	Id   int64
	Uuid int64
}

type DeleteBasestationResponse struct {
	Message     string
	Success     bool
	Basestation *Basestation
}

type PruneBasestationRequest struct {
	Id   int64
	Uuid int64
}

type PruneBasestationResponse struct {
	Message            string
	Success            bool
	Id                 int64
	ClearedTelecellIds []int64
}

// User service messages.

type GetUserRequest struct {
	Id       int64
	Username string
}

type GetUserResponse struct {
	User *User
}

type ListUsersRequest struct {
	Limit  int32
	Offset int32
}

type ListUsersResponse struct {
	Users []*User
}

type CreateUserRequest struct {
	Username string
	Password string
	Role     *Role
}

type CreateUserResponse struct {
	Message string
	Success bool
	User    *User
}

type UpdateUserRequest struct {
	Id       int64
	Username *string
	Password *string
	Role     *Role
}

type UpdateUserResponse struct {
	Message string
	Success bool
	User    *User
}

type DeleteUserRequest struct {
	Id       int64
	Username string
}

type DeleteUserResponse struct {
	Message string
	Success bool
}
