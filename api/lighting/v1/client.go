package lightingv1

import (
	"context"

	"google.golang.org/grpc"
)

// Client stubs for the lighting services, kept in sync with
// lighting.proto and the server descriptors in service.go.

type AssetServiceClient interface {
	GetAsset(ctx context.Context, in *GetAssetRequest, opts ...grpc.CallOption) (*GetAssetResponse, error)
	ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (AssetService_ListAssetsClient, error)
	SearchAssetsByLocation(ctx context.Context, in *SearchAssetsByLocationRequest, opts ...grpc.CallOption) (AssetService_SearchAssetsByLocationClient, error)
	CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*CreateAssetResponse, error)
	UpdateAsset(ctx context.Context, in *UpdateAssetRequest, opts ...grpc.CallOption) (*UpdateAssetResponse, error)
	DeleteAsset(ctx context.Context, in *DeleteAssetRequest, opts ...grpc.CallOption) (*DeleteAssetResponse, error)
	PruneAsset(ctx context.Context, in *PruneAssetRequest, opts ...grpc.CallOption) (*PruneAssetResponse, error)
}

type assetServiceClient struct{ cc grpc.ClientConnInterface }

// NewAssetServiceClient creates a client over an established connection.
func NewAssetServiceClient(cc grpc.ClientConnInterface) AssetServiceClient {
	return &assetServiceClient{cc}
}

func (c *assetServiceClient) GetAsset(ctx context.Context, in *GetAssetRequest, opts ...grpc.CallOption) (*GetAssetResponse, error) {
	out := new(GetAssetResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.AssetService/GetAsset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assetServiceClient) ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (AssetService_ListAssetsClient, error) {
	stream, err := c.cc.NewStream(ctx, &AssetService_ServiceDesc.Streams[0], "/luminet.lighting.v1.AssetService/ListAssets", opts...)
	if err != nil {
		return nil, err
	}
	x := &assetServiceListAssetsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type AssetService_ListAssetsClient interface {
	Recv() (*ListAssetsResponse, error)
	grpc.ClientStream
}

type assetServiceListAssetsClient struct{ grpc.ClientStream }

func (x *assetServiceListAssetsClient) Recv() (*ListAssetsResponse, error) {
	m := new(ListAssetsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *assetServiceClient) SearchAssetsByLocation(ctx context.Context, in *SearchAssetsByLocationRequest, opts ...grpc.CallOption) (AssetService_SearchAssetsByLocationClient, error) {
	stream, err := c.cc.NewStream(ctx, &AssetService_ServiceDesc.Streams[1], "/luminet.lighting.v1.AssetService/SearchAssetsByLocation", opts...)
	if err != nil {
		return nil, err
	}
	x := &assetServiceSearchAssetsByLocationClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type AssetService_SearchAssetsByLocationClient interface {
	Recv() (*SearchAssetsByLocationResponse, error)
	grpc.ClientStream
}

type assetServiceSearchAssetsByLocationClient struct{ grpc.ClientStream }

func (x *assetServiceSearchAssetsByLocationClient) Recv() (*SearchAssetsByLocationResponse, error) {
	m := new(SearchAssetsByLocationResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *assetServiceClient) CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*CreateAssetResponse, error) {
	out := new(CreateAssetResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.AssetService/CreateAsset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assetServiceClient) UpdateAsset(ctx context.Context, in *UpdateAssetRequest, opts ...grpc.CallOption) (*UpdateAssetResponse, error) {
	out := new(UpdateAssetResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.AssetService/UpdateAsset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assetServiceClient) DeleteAsset(ctx context.Context, in *DeleteAssetRequest, opts ...grpc.CallOption) (*DeleteAssetResponse, error) {
	out := new(DeleteAssetResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.AssetService/DeleteAsset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assetServiceClient) PruneAsset(ctx context.Context, in *PruneAssetRequest, opts ...grpc.CallOption) (*PruneAssetResponse, error) {
	out := new(PruneAssetResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.AssetService/PruneAsset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type ElementServiceClient interface {
	GetElement(ctx context.Context, in *GetElementRequest, opts ...grpc.CallOption) (*GetElementResponse, error)
	ListElements(ctx context.Context, in *ListElementsRequest, opts ...grpc.CallOption) (ElementService_ListElementsClient, error)
	SearchElementsByLocation(ctx context.Context, in *SearchElementsByLocationRequest, opts ...grpc.CallOption) (ElementService_SearchElementsByLocationClient, error)
	CreateElement(ctx context.Context, in *CreateElementRequest, opts ...grpc.CallOption) (*CreateElementResponse, error)
	UpdateElement(ctx context.Context, in *UpdateElementRequest, opts ...grpc.CallOption) (*UpdateElementResponse, error)
	DeleteElement(ctx context.Context, in *DeleteElementRequest, opts ...grpc.CallOption) (*DeleteElementResponse, error)
	PruneElement(ctx context.Context, in *PruneElementRequest, opts ...grpc.CallOption) (*PruneElementResponse, error)
	AddElementToAsset(ctx context.Context, in *AddElementToAssetRequest, opts ...grpc.CallOption) (*AddElementToAssetResponse, error)
}

type elementServiceClient struct{ cc grpc.ClientConnInterface }

// NewElementServiceClient creates a client over an established connection.
func NewElementServiceClient(cc grpc.ClientConnInterface) ElementServiceClient {
	return &elementServiceClient{cc}
}

func (c *elementServiceClient) GetElement(ctx context.Context, in *GetElementRequest, opts ...grpc.CallOption) (*GetElementResponse, error) {
	out := new(GetElementResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.ElementService/GetElement", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *elementServiceClient) ListElements(ctx context.Context, in *ListElementsRequest, opts ...grpc.CallOption) (ElementService_ListElementsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ElementService_ServiceDesc.Streams[0], "/luminet.lighting.v1.ElementService/ListElements", opts...)
	if err != nil {
		return nil, err
	}
	x := &elementServiceListElementsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ElementService_ListElementsClient interface {
	Recv() (*ListElementsResponse, error)
	grpc.ClientStream
}

type elementServiceListElementsClient struct{ grpc.ClientStream }

func (x *elementServiceListElementsClient) Recv() (*ListElementsResponse, error) {
	m := new(ListElementsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *elementServiceClient) SearchElementsByLocation(ctx context.Context, in *SearchElementsByLocationRequest, opts ...grpc.CallOption) (ElementService_SearchElementsByLocationClient, error) {
	stream, err := c.cc.NewStream(ctx, &ElementService_ServiceDesc.Streams[1], "/luminet.lighting.v1.ElementService/SearchElementsByLocation", opts...)
	if err != nil {
		return nil, err
	}
	x := &elementServiceSearchElementsByLocationClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ElementService_SearchElementsByLocationClient interface {
	Recv() (*SearchElementsByLocationResponse, error)
	grpc.ClientStream
}

type elementServiceSearchElementsByLocationClient struct{ grpc.ClientStream }

func (x *elementServiceSearchElementsByLocationClient) Recv() (*SearchElementsByLocationResponse, error) {
	m := new(SearchElementsByLocationResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *elementServiceClient) CreateElement(ctx context.Context, in *CreateElementRequest, opts ...grpc.CallOption) (*CreateElementResponse, error) {
	out := new(CreateElementResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.ElementService/CreateElement", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *elementServiceClient) UpdateElement(ctx context.Context, in *UpdateElementRequest, opts ...grpc.CallOption) (*UpdateElementResponse, error) {
	out := new(UpdateElementResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.ElementService/UpdateElement", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *elementServiceClient) DeleteElement(ctx context.Context, in *DeleteElementRequest, opts ...grpc.CallOption) (*DeleteElementResponse, error) {
	out := new(DeleteElementResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.ElementService/DeleteElement", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *elementServiceClient) PruneElement(ctx context.Context, in *PruneElementRequest, opts ...grpc.CallOption) (*PruneElementResponse, error) {
	out := new(PruneElementResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.ElementService/PruneElement", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *elementServiceClient) AddElementToAsset(ctx context.Context, in *AddElementToAssetRequest, opts ...grpc.CallOption) (*AddElementToAssetResponse, error) {
	out := new(AddElementToAssetResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.ElementService/AddElementToAsset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type TelecellServiceClient interface {
	GetTelecell(ctx context.Context, in *GetTelecellRequest, opts ...grpc.CallOption) (*GetTelecellResponse, error)
	ListTelecells(ctx context.Context, in *ListTelecellsRequest, opts ...grpc.CallOption) (TelecellService_ListTelecellsClient, error)
	SearchTelecellsByLocation(ctx context.Context, in *SearchTelecellsByLocationRequest, opts ...grpc.CallOption) (TelecellService_SearchTelecellsByLocationClient, error)
	CreateTelecell(ctx context.Context, in *CreateTelecellRequest, opts ...grpc.CallOption) (*CreateTelecellResponse, error)
	UpdateTelecell(ctx context.Context, in *UpdateTelecellRequest, opts ...grpc.CallOption) (*UpdateTelecellResponse, error)
	DeleteTelecell(ctx context.Context, in *DeleteTelecellRequest, opts ...grpc.CallOption) (*DeleteTelecellResponse, error)
	PruneTelecell(ctx context.Context, in *PruneTelecellRequest, opts ...grpc.CallOption) (*PruneTelecellResponse, error)
	AddTelecellToElements(ctx context.Context, in *AddTelecellToElementsRequest, opts ...grpc.CallOption) (*AddTelecellToElementsResponse, error)
	RemoveTelecellFromElements(ctx context.Context, in *RemoveTelecellFromElementsRequest, opts ...grpc.CallOption) (*RemoveTelecellFromElementsResponse, error)
}

type telecellServiceClient struct{ cc grpc.ClientConnInterface }

// NewTelecellServiceClient creates a client over an established connection.
func NewTelecellServiceClient(cc grpc.ClientConnInterface) TelecellServiceClient {
	return &telecellServiceClient{cc}
}

func (c *telecellServiceClient) GetTelecell(ctx context.Context, in *GetTelecellRequest, opts ...grpc.CallOption) (*GetTelecellResponse, error) {
	out := new(GetTelecellResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/GetTelecell", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telecellServiceClient) ListTelecells(ctx context.Context, in *ListTelecellsRequest, opts ...grpc.CallOption) (TelecellService_ListTelecellsClient, error) {
	stream, err := c.cc.NewStream(ctx, &TelecellService_ServiceDesc.Streams[0], "/luminet.lighting.v1.TelecellService/ListTelecells", opts...)
	if err != nil {
		return nil, err
	}
	x := &telecellServiceListTelecellsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type TelecellService_ListTelecellsClient interface {
	Recv() (*ListTelecellsResponse, error)
	grpc.ClientStream
}

type telecellServiceListTelecellsClient struct{ grpc.ClientStream }

func (x *telecellServiceListTelecellsClient) Recv() (*ListTelecellsResponse, error) {
	m := new(ListTelecellsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *telecellServiceClient) SearchTelecellsByLocation(ctx context.Context, in *SearchTelecellsByLocationRequest, opts ...grpc.CallOption) (TelecellService_SearchTelecellsByLocationClient, error) {
	stream, err := c.cc.NewStream(ctx, &TelecellService_ServiceDesc.Streams[1], "/luminet.lighting.v1.TelecellService/SearchTelecellsByLocation", opts...)
	if err != nil {
		return nil, err
	}
	x := &telecellServiceSearchTelecellsByLocationClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type TelecellService_SearchTelecellsByLocationClient interface {
	Recv() (*SearchTelecellsByLocationResponse, error)
	grpc.ClientStream
}

type telecellServiceSearchTelecellsByLocationClient struct{ grpc.ClientStream }

func (x *telecellServiceSearchTelecellsByLocationClient) Recv() (*SearchTelecellsByLocationResponse, error) {
	m := new(SearchTelecellsByLocationResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *telecellServiceClient) CreateTelecell(ctx context.Context, in *CreateTelecellRequest, opts ...grpc.CallOption) (*CreateTelecellResponse, error) {
	out := new(CreateTelecellResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/CreateTelecell", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telecellServiceClient) UpdateTelecell(ctx context.Context, in *UpdateTelecellRequest, opts ...grpc.CallOption) (*UpdateTelecellResponse, error) {
	out := new(UpdateTelecellResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/UpdateTelecell", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telecellServiceClient) DeleteTelecell(ctx context.Context, in *DeleteTelecellRequest, opts ...grpc.CallOption) (*DeleteTelecellResponse, error) {
	out := new(DeleteTelecellResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/DeleteTelecell", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telecellServiceClient) PruneTelecell(ctx context.Context, in *PruneTelecellRequest, opts ...grpc.CallOption) (*PruneTelecellResponse, error) {
	out := new(PruneTelecellResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/PruneTelecell", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telecellServiceClient) AddTelecellToElements(ctx context.Context, in *AddTelecellToElementsRequest, opts ...grpc.CallOption) (*AddTelecellToElementsResponse, error) {
	out := new(AddTelecellToElementsResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/AddTelecellToElements", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *telecellServiceClient) RemoveTelecellFromElements(ctx context.Context, in *RemoveTelecellFromElementsRequest, opts ...grpc.CallOption) (*RemoveTelecellFromElementsResponse, error) {
	out := new(RemoveTelecellFromElementsResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.TelecellService/RemoveTelecellFromElements", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type BasestationServiceClient interface {
	GetBasestation(ctx context.Context, in *GetBasestationRequest, opts ...grpc.CallOption) (*GetBasestationResponse, error)
	ListBasestations(ctx context.Context, in *ListBasestationsRequest, opts ...grpc.CallOption) (BasestationService_ListBasestationsClient, error)
	SearchBasestationsByLocation(ctx context.Context, in *SearchBasestationsByLocationRequest, opts ...grpc.CallOption) (BasestationService_SearchBasestationsByLocationClient, error)
	CreateBasestation(ctx context.Context, in *CreateBasestationRequest, opts ...grpc.CallOption) (*CreateBasestationResponse, error)
	UpdateBasestation(ctx context.Context, in *UpdateBasestationRequest, opts ...grpc.CallOption) (*UpdateBasestationResponse, error)
	DeleteBasestation(ctx context.Context, in *DeleteBasestationRequest, opts ...grpc.CallOption) (*DeleteBasestationResponse, error)
	PruneBasestation(ctx context.Context, in *PruneBasestationRequest, opts ...grpc.CallOption) (*PruneBasestationResponse, error)
}

type basestationServiceClient struct{ cc grpc.ClientConnInterface }

// NewBasestationServiceClient creates a client over an established connection.
func NewBasestationServiceClient(cc grpc.ClientConnInterface) BasestationServiceClient {
	return &basestationServiceClient{cc}
}

func (c *basestationServiceClient) GetBasestation(ctx context.Context, in *GetBasestationRequest, opts ...grpc.CallOption) (*GetBasestationResponse, error) {
	out := new(GetBasestationResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.BasestationService/GetBasestation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *basestationServiceClient) ListBasestations(ctx context.Context, in *ListBasestationsRequest, opts ...grpc.CallOption) (BasestationService_ListBasestationsClient, error) {
	stream, err := c.cc.NewStream(ctx, &BasestationService_ServiceDesc.Streams[0], "/luminet.lighting.v1.BasestationService/ListBasestations", opts...)
	if err != nil {
		return nil, err
	}
	x := &basestationServiceListBasestationsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type BasestationService_ListBasestationsClient interface {
	Recv() (*ListBasestationsResponse, error)
	grpc.ClientStream
}

type basestationServiceListBasestationsClient struct{ grpc.ClientStream }

func (x *basestationServiceListBasestationsClient) Recv() (*ListBasestationsResponse, error) {
	m := new(ListBasestationsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *basestationServiceClient) SearchBasestationsByLocation(ctx context.Context, in *SearchBasestationsByLocationRequest, opts ...grpc.CallOption) (BasestationService_SearchBasestationsByLocationClient, error) {
	stream, err := c.cc.NewStream(ctx, &BasestationService_ServiceDesc.Streams[1], "/luminet.lighting.v1.BasestationService/SearchBasestationsByLocation", opts...)
	if err != nil {
		return nil, err
	}
	x := &basestationServiceSearchBasestationsByLocationClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type BasestationService_SearchBasestationsByLocationClient interface {
	Recv() (*SearchBasestationsByLocationResponse, error)
	grpc.ClientStream
}

type basestationServiceSearchBasestationsByLocationClient struct{ grpc.ClientStream }

func (x *basestationServiceSearchBasestationsByLocationClient) Recv() (*SearchBasestationsByLocationResponse, error) {
	m := new(SearchBasestationsByLocationResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *basestationServiceClient) CreateBasestation(ctx context.Context, in *CreateBasestationRequest, opts ...grpc.CallOption) (*CreateBasestationResponse, error) {
	out := new(CreateBasestationResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.BasestationService/CreateBasestation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *basestationServiceClient) UpdateBasestation(ctx context.Context, in *UpdateBasestationRequest, opts ...grpc.CallOption) (*UpdateBasestationResponse, error) {
	out := new(UpdateBasestationResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.BasestationService/UpdateBasestation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *basestationServiceClient) DeleteBasestation(ctx context.Context, in *DeleteBasestationRequest, opts ...grpc.CallOption) (*DeleteBasestationResponse, error) {
	out := new(DeleteBasestationResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.BasestationService/DeleteBasestation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *basestationServiceClient) PruneBasestation(ctx context.Context, in *PruneBasestationRequest, opts ...grpc.CallOption) (*PruneBasestationResponse, error) {
	out := new(PruneBasestationResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.BasestationService/PruneBasestation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type UserServiceClient interface {
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (UserService_ListUsersClient, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error)
}

type userServiceClient struct{ cc grpc.ClientConnInterface }

// NewUserServiceClient creates a client over an established connection.
func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc}
}

func (c *userServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	out := new(GetUserResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.UserService/GetUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (UserService_ListUsersClient, error) {
	stream, err := c.cc.NewStream(ctx, &UserService_ServiceDesc.Streams[0], "/luminet.lighting.v1.UserService/ListUsers", opts...)
	if err != nil {
		return nil, err
	}
	x := &userServiceListUsersClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type UserService_ListUsersClient interface {
	Recv() (*ListUsersResponse, error)
	grpc.ClientStream
}

type userServiceListUsersClient struct{ grpc.ClientStream }

func (x *userServiceListUsersClient) Recv() (*ListUsersResponse, error) {
	m := new(ListUsersResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *userServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	out := new(CreateUserResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.UserService/CreateUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error) {
	out := new(UpdateUserResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.UserService/UpdateUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	out := new(DeleteUserResponse)
	if err := c.cc.Invoke(ctx, "/luminet.lighting.v1.UserService/DeleteUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
