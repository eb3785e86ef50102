package lightingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service server interfaces and gRPC service descriptors for the lighting
// surface, kept in sync with lighting.proto.

// AssetServiceServer is the server API for AssetService.
type AssetServiceServer interface {
	GetAsset(context.Context, *GetAssetRequest) (*GetAssetResponse, error)
	ListAssets(*ListAssetsRequest, AssetService_ListAssetsServer) error
	SearchAssetsByLocation(*SearchAssetsByLocationRequest, AssetService_SearchAssetsByLocationServer) error
	CreateAsset(context.Context, *CreateAssetRequest) (*CreateAssetResponse, error)
	UpdateAsset(context.Context, *UpdateAssetRequest) (*UpdateAssetResponse, error)
	DeleteAsset(context.Context, *DeleteAssetRequest) (*DeleteAssetResponse, error)
	PruneAsset(context.Context, *PruneAssetRequest) (*PruneAssetResponse, error)
}

// ElementServiceServer is the server API for ElementService.
type ElementServiceServer interface {
	GetElement(context.Context, *GetElementRequest) (*GetElementResponse, error)
	ListElements(*ListElementsRequest, ElementService_ListElementsServer) error
	SearchElementsByLocation(*SearchElementsByLocationRequest, ElementService_SearchElementsByLocationServer) error
	CreateElement(context.Context, *CreateElementRequest) (*CreateElementResponse, error)
	UpdateElement(context.Context, *UpdateElementRequest) (*UpdateElementResponse, error)
	DeleteElement(context.Context, *DeleteElementRequest) (*DeleteElementResponse, error)
	PruneElement(context.Context, *PruneElementRequest) (*PruneElementResponse, error)
	AddElementToAsset(context.Context, *AddElementToAssetRequest) (*AddElementToAssetResponse, error)
}

// TelecellServiceServer is the server API for TelecellService.
type TelecellServiceServer interface {
	GetTelecell(context.Context, *GetTelecellRequest) (*GetTelecellResponse, error)
	ListTelecells(*ListTelecellsRequest, TelecellService_ListTelecellsServer) error
	SearchTelecellsByLocation(*SearchTelecellsByLocationRequest, TelecellService_SearchTelecellsByLocationServer) error
	CreateTelecell(context.Context, *CreateTelecellRequest) (*CreateTelecellResponse, error)
	UpdateTelecell(context.Context, *UpdateTelecellRequest) (*UpdateTelecellResponse, error)
	DeleteTelecell(context.Context, *DeleteTelecellRequest) (*DeleteTelecellResponse, error)
	PruneTelecell(context.Context, *PruneTelecellRequest) (*PruneTelecellResponse, error)
	AddTelecellToElements(context.Context, *AddTelecellToElementsRequest) (*AddTelecellToElementsResponse, error)
	RemoveTelecellFromElements(context.Context, *RemoveTelecellFromElementsRequest) (*RemoveTelecellFromElementsResponse, error)
}

// BasestationServiceServer is the server API for BasestationService.
type BasestationServiceServer interface {
	GetBasestation(context.Context, *GetBasestationRequest) (*GetBasestationResponse, error)
	ListBasestations(*ListBasestationsRequest, BasestationService_ListBasestationsServer) error
	SearchBasestationsByLocation(*SearchBasestationsByLocationRequest, BasestationService_SearchBasestationsByLocationServer) error
	CreateBasestation(context.Context, *CreateBasestationRequest) (*CreateBasestationResponse, error)
	UpdateBasestation(context.Context, *UpdateBasestationRequest) (*UpdateBasestationResponse, error)
	DeleteBasestation(context.Context, *DeleteBasestationRequest) (*DeleteBasestationResponse, error)
	PruneBasestation(context.Context, *PruneBasestationRequest) (*PruneBasestationResponse, error)
}

// UserServiceServer is the server API for UserService.
type UserServiceServer interface {
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	ListUsers(*ListUsersRequest, UserService_ListUsersServer) error
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
}

// Streaming server interfaces.

type AssetService_ListAssetsServer interface {
	Send(*ListAssetsResponse) error
	grpc.ServerStream
}

type AssetService_SearchAssetsByLocationServer interface {
	Send(*SearchAssetsByLocationResponse) error
	grpc.ServerStream
}

type ElementService_ListElementsServer interface {
	Send(*ListElementsResponse) error
	grpc.ServerStream
}

type ElementService_SearchElementsByLocationServer interface {
	Send(*SearchElementsByLocationResponse) error
	grpc.ServerStream
}

type TelecellService_ListTelecellsServer interface {
	Send(*ListTelecellsResponse) error
	grpc.ServerStream
}

type TelecellService_SearchTelecellsByLocationServer interface {
	Send(*SearchTelecellsByLocationResponse) error
	grpc.ServerStream
}

type BasestationService_ListBasestationsServer interface {
	Send(*ListBasestationsResponse) error
	grpc.ServerStream
}

type BasestationService_SearchBasestationsByLocationServer interface {
	Send(*SearchBasestationsByLocationResponse) error
	grpc.ServerStream
}

type UserService_ListUsersServer interface {
	Send(*ListUsersResponse) error
	grpc.ServerStream
}

type assetServiceListAssetsServer struct{ grpc.ServerStream }

func (x *assetServiceListAssetsServer) Send(m *ListAssetsResponse) error {
	return x.ServerStream.SendMsg(m)
}

type assetServiceSearchAssetsByLocationServer struct{ grpc.ServerStream }

func (x *assetServiceSearchAssetsByLocationServer) Send(m *SearchAssetsByLocationResponse) error {
	return x.ServerStream.SendMsg(m)
}

type elementServiceListElementsServer struct{ grpc.ServerStream }

func (x *elementServiceListElementsServer) Send(m *ListElementsResponse) error {
	return x.ServerStream.SendMsg(m)
}

type elementServiceSearchElementsByLocationServer struct{ grpc.ServerStream }

func (x *elementServiceSearchElementsByLocationServer) Send(m *SearchElementsByLocationResponse) error {
	return x.ServerStream.SendMsg(m)
}

type telecellServiceListTelecellsServer struct{ grpc.ServerStream }

func (x *telecellServiceListTelecellsServer) Send(m *ListTelecellsResponse) error {
	return x.ServerStream.SendMsg(m)
}

type telecellServiceSearchTelecellsByLocationServer struct{ grpc.ServerStream }

func (x *telecellServiceSearchTelecellsByLocationServer) Send(m *SearchTelecellsByLocationResponse) error {
	return x.ServerStream.SendMsg(m)
}

type basestationServiceListBasestationsServer struct{ grpc.ServerStream }

func (x *basestationServiceListBasestationsServer) Send(m *ListBasestationsResponse) error {
	return x.ServerStream.SendMsg(m)
}

type basestationServiceSearchBasestationsByLocationServer struct{ grpc.ServerStream }

func (x *basestationServiceSearchBasestationsByLocationServer) Send(m *SearchBasestationsByLocationResponse) error {
	return x.ServerStream.SendMsg(m)
}

type userServiceListUsersServer struct{ grpc.ServerStream }

func (x *userServiceListUsersServer) Send(m *ListUsersResponse) error {
	return x.ServerStream.SendMsg(m)
}

// UnimplementedAssetServiceServer can be embedded for forward compatibility.
type UnimplementedAssetServiceServer struct{}

func (UnimplementedAssetServiceServer) GetAsset(context.Context, *GetAssetRequest) (*GetAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAsset not implemented")
}
func (UnimplementedAssetServiceServer) ListAssets(*ListAssetsRequest, AssetService_ListAssetsServer) error {
	return status.Errorf(codes.Unimplemented, "method ListAssets not implemented")
}
func (UnimplementedAssetServiceServer) SearchAssetsByLocation(*SearchAssetsByLocationRequest, AssetService_SearchAssetsByLocationServer) error {
	return status.Errorf(codes.Unimplemented, "method SearchAssetsByLocation not implemented")
}
func (UnimplementedAssetServiceServer) CreateAsset(context.Context, *CreateAssetRequest) (*CreateAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAsset not implemented")
}
func (UnimplementedAssetServiceServer) UpdateAsset(context.Context, *UpdateAssetRequest) (*UpdateAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateAsset not implemented")
}
func (UnimplementedAssetServiceServer) DeleteAsset(context.Context, *DeleteAssetRequest) (*DeleteAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteAsset not implemented")
}
func (UnimplementedAssetServiceServer) PruneAsset(context.Context, *PruneAssetRequest) (*PruneAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PruneAsset not implemented")
}

// UnimplementedElementServiceServer can be embedded for forward compatibility.
type UnimplementedElementServiceServer struct{}

func (UnimplementedElementServiceServer) GetElement(context.Context, *GetElementRequest) (*GetElementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetElement not implemented")
}
func (UnimplementedElementServiceServer) ListElements(*ListElementsRequest, ElementService_ListElementsServer) error {
	return status.Errorf(codes.Unimplemented, "method ListElements not implemented")
}
func (UnimplementedElementServiceServer) SearchElementsByLocation(*SearchElementsByLocationRequest, ElementService_SearchElementsByLocationServer) error {
	return status.Errorf(codes.Unimplemented, "method SearchElementsByLocation not implemented")
}
func (UnimplementedElementServiceServer) CreateElement(context.Context, *CreateElementRequest) (*CreateElementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateElement not implemented")
}
func (UnimplementedElementServiceServer) UpdateElement(context.Context, *UpdateElementRequest) (*UpdateElementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateElement not implemented")
}
func (UnimplementedElementServiceServer) DeleteElement(context.Context, *DeleteElementRequest) (*DeleteElementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteElement not implemented")
}
func (UnimplementedElementServiceServer) PruneElement(context.Context, *PruneElementRequest) (*PruneElementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PruneElement not implemented")
}
func (UnimplementedElementServiceServer) AddElementToAsset(context.Context, *AddElementToAssetRequest) (*AddElementToAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddElementToAsset not implemented")
}

// UnimplementedTelecellServiceServer can be embedded for forward compatibility.
type UnimplementedTelecellServiceServer struct{}

func (UnimplementedTelecellServiceServer) GetTelecell(context.Context, *GetTelecellRequest) (*GetTelecellResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTelecell not implemented")
}
func (UnimplementedTelecellServiceServer) ListTelecells(*ListTelecellsRequest, TelecellService_ListTelecellsServer) error {
	return status.Errorf(codes.Unimplemented, "method ListTelecells not implemented")
}
func (UnimplementedTelecellServiceServer) SearchTelecellsByLocation(*SearchTelecellsByLocationRequest, TelecellService_SearchTelecellsByLocationServer) error {
	return status.Errorf(codes.Unimplemented, "method SearchTelecellsByLocation not implemented")
}
func (UnimplementedTelecellServiceServer) CreateTelecell(context.Context, *CreateTelecellRequest) (*CreateTelecellResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTelecell not implemented")
}
func (UnimplementedTelecellServiceServer) UpdateTelecell(context.Context, *UpdateTelecellRequest) (*UpdateTelecellResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTelecell not implemented")
}
func (UnimplementedTelecellServiceServer) DeleteTelecell(context.Context, *DeleteTelecellRequest) (*DeleteTelecellResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTelecell not implemented")
}
func (UnimplementedTelecellServiceServer) PruneTelecell(context.Context, *PruneTelecellRequest) (*PruneTelecellResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PruneTelecell not implemented")
}
func (UnimplementedTelecellServiceServer) AddTelecellToElements(context.Context, *AddTelecellToElementsRequest) (*AddTelecellToElementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddTelecellToElements not implemented")
}
func (UnimplementedTelecellServiceServer) RemoveTelecellFromElements(context.Context, *RemoveTelecellFromElementsRequest) (*RemoveTelecellFromElementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveTelecellFromElements not implemented")
}

// UnimplementedBasestationServiceServer can be embedded for forward compatibility.
type UnimplementedBasestationServiceServer struct{}

func (UnimplementedBasestationServiceServer) GetBasestation(context.Context, *GetBasestationRequest) (*GetBasestationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBasestation not implemented")
}
func (UnimplementedBasestationServiceServer) ListBasestations(*ListBasestationsRequest, BasestationService_ListBasestationsServer) error {
	return status.Errorf(codes.Unimplemented, "method ListBasestations not implemented")
}
func (UnimplementedBasestationServiceServer) SearchBasestationsByLocation(*SearchBasestationsByLocationRequest, BasestationService_SearchBasestationsByLocationServer) error {
	return status.Errorf(codes.Unimplemented, "method SearchBasestationsByLocation not implemented")
}
func (UnimplementedBasestationServiceServer) CreateBasestation(context.Context, *CreateBasestationRequest) (*CreateBasestationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBasestation not implemented")
}
func (UnimplementedBasestationServiceServer) UpdateBasestation(context.Context, *UpdateBasestationRequest) (*UpdateBasestationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateBasestation not implemented")
}
func (UnimplementedBasestationServiceServer) DeleteBasestation(context.Context, *DeleteBasestationRequest) (*DeleteBasestationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteBasestation not implemented")
}
func (UnimplementedBasestationServiceServer) PruneBasestation(context.Context, *PruneBasestationRequest) (*PruneBasestationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PruneBasestation not implemented")
}

// UnimplementedUserServiceServer can be embedded for forward compatibility.
type UnimplementedUserServiceServer struct{}

func (UnimplementedUserServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedUserServiceServer) ListUsers(*ListUsersRequest, UserService_ListUsersServer) error {
	return status.Errorf(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedUserServiceServer) CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateUser not implemented")
}
func (UnimplementedUserServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateUser not implemented")
}
func (UnimplementedUserServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteUser not implemented")
}

// RegisterAssetServiceServer registers the AssetService implementation.
func RegisterAssetServiceServer(s grpc.ServiceRegistrar, srv AssetServiceServer) {
	s.RegisterService(&AssetService_ServiceDesc, srv)
}

// RegisterElementServiceServer registers the ElementService implementation.
func RegisterElementServiceServer(s grpc.ServiceRegistrar, srv ElementServiceServer) {
	s.RegisterService(&ElementService_ServiceDesc, srv)
}

// RegisterTelecellServiceServer registers the TelecellService implementation.
func RegisterTelecellServiceServer(s grpc.ServiceRegistrar, srv TelecellServiceServer) {
	s.RegisterService(&TelecellService_ServiceDesc, srv)
}

// RegisterBasestationServiceServer registers the BasestationService implementation.
func RegisterBasestationServiceServer(s grpc.ServiceRegistrar, srv BasestationServiceServer) {
	s.RegisterService(&BasestationService_ServiceDesc, srv)
}

// RegisterUserServiceServer registers the UserService implementation.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

func _AssetService_GetAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).GetAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.AssetService/GetAsset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).GetAsset(ctx, req.(*GetAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssetService_ListAssets_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListAssetsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AssetServiceServer).ListAssets(m, &assetServiceListAssetsServer{stream})
}

func _AssetService_SearchAssetsByLocation_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SearchAssetsByLocationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AssetServiceServer).SearchAssetsByLocation(m, &assetServiceSearchAssetsByLocationServer{stream})
}

func _AssetService_CreateAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).CreateAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.AssetService/CreateAsset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).CreateAsset(ctx, req.(*CreateAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssetService_UpdateAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).UpdateAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.AssetService/UpdateAsset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).UpdateAsset(ctx, req.(*UpdateAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssetService_DeleteAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).DeleteAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.AssetService/DeleteAsset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).DeleteAsset(ctx, req.(*DeleteAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AssetService_PruneAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PruneAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).PruneAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.AssetService/PruneAsset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).PruneAsset(ctx, req.(*PruneAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AssetService_ServiceDesc is the grpc.ServiceDesc for AssetService.
var AssetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "luminet.lighting.v1.AssetService",
	HandlerType: (*AssetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAsset", Handler: _AssetService_GetAsset_Handler},
		{MethodName: "CreateAsset", Handler: _AssetService_CreateAsset_Handler},
		{MethodName: "UpdateAsset", Handler: _AssetService_UpdateAsset_Handler},
		{MethodName: "DeleteAsset", Handler: _AssetService_DeleteAsset_Handler},
		{MethodName: "PruneAsset", Handler: _AssetService_PruneAsset_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListAssets", Handler: _AssetService_ListAssets_Handler, ServerStreams: true},
		{StreamName: "SearchAssetsByLocation", Handler: _AssetService_SearchAssetsByLocation_Handler, ServerStreams: true},
	},
	Metadata: "api/lighting/v1/lighting.proto",
}

func _ElementService_GetElement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetElementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElementServiceServer).GetElement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.ElementService/GetElement"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElementServiceServer).GetElement(ctx, req.(*GetElementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ElementService_ListElements_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListElementsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ElementServiceServer).ListElements(m, &elementServiceListElementsServer{stream})
}

func _ElementService_SearchElementsByLocation_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SearchElementsByLocationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ElementServiceServer).SearchElementsByLocation(m, &elementServiceSearchElementsByLocationServer{stream})
}

func _ElementService_CreateElement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateElementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElementServiceServer).CreateElement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.ElementService/CreateElement"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElementServiceServer).CreateElement(ctx, req.(*CreateElementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ElementService_UpdateElement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateElementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElementServiceServer).UpdateElement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.ElementService/UpdateElement"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElementServiceServer).UpdateElement(ctx, req.(*UpdateElementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ElementService_DeleteElement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteElementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElementServiceServer).DeleteElement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.ElementService/DeleteElement"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElementServiceServer).DeleteElement(ctx, req.(*DeleteElementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ElementService_PruneElement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PruneElementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElementServiceServer).PruneElement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.ElementService/PruneElement"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElementServiceServer).PruneElement(ctx, req.(*PruneElementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ElementService_AddElementToAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddElementToAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElementServiceServer).AddElementToAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.ElementService/AddElementToAsset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElementServiceServer).AddElementToAsset(ctx, req.(*AddElementToAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ElementService_ServiceDesc is the grpc.ServiceDesc for ElementService.
var ElementService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "luminet.lighting.v1.ElementService",
	HandlerType: (*ElementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetElement", Handler: _ElementService_GetElement_Handler},
		{MethodName: "CreateElement", Handler: _ElementService_CreateElement_Handler},
		{MethodName: "UpdateElement", Handler: _ElementService_UpdateElement_Handler},
		{MethodName: "DeleteElement", Handler: _ElementService_DeleteElement_Handler},
		{MethodName: "PruneElement", Handler: _ElementService_PruneElement_Handler},
		{MethodName: "AddElementToAsset", Handler: _ElementService_AddElementToAsset_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListElements", Handler: _ElementService_ListElements_Handler, ServerStreams: true},
		{StreamName: "SearchElementsByLocation", Handler: _ElementService_SearchElementsByLocation_Handler, ServerStreams: true},
	},
	Metadata: "api/lighting/v1/lighting.proto",
}

func _TelecellService_GetTelecell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTelecellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).GetTelecell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/GetTelecell"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).GetTelecell(ctx, req.(*GetTelecellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelecellService_ListTelecells_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListTelecellsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TelecellServiceServer).ListTelecells(m, &telecellServiceListTelecellsServer{stream})
}

func _TelecellService_SearchTelecellsByLocation_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SearchTelecellsByLocationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TelecellServiceServer).SearchTelecellsByLocation(m, &telecellServiceSearchTelecellsByLocationServer{stream})
}

func _TelecellService_CreateTelecell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTelecellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).CreateTelecell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/CreateTelecell"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).CreateTelecell(ctx, req.(*CreateTelecellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelecellService_UpdateTelecell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTelecellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).UpdateTelecell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/UpdateTelecell"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).UpdateTelecell(ctx, req.(*UpdateTelecellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelecellService_DeleteTelecell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTelecellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).DeleteTelecell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/DeleteTelecell"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).DeleteTelecell(ctx, req.(*DeleteTelecellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelecellService_PruneTelecell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PruneTelecellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).PruneTelecell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/PruneTelecell"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).PruneTelecell(ctx, req.(*PruneTelecellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelecellService_AddTelecellToElements_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddTelecellToElementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).AddTelecellToElements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/AddTelecellToElements"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).AddTelecellToElements(ctx, req.(*AddTelecellToElementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TelecellService_RemoveTelecellFromElements_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveTelecellFromElementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TelecellServiceServer).RemoveTelecellFromElements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.TelecellService/RemoveTelecellFromElements"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TelecellServiceServer).RemoveTelecellFromElements(ctx, req.(*RemoveTelecellFromElementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TelecellService_ServiceDesc is the grpc.ServiceDesc for TelecellService.
var TelecellService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "luminet.lighting.v1.TelecellService",
	HandlerType: (*TelecellServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTelecell", Handler: _TelecellService_GetTelecell_Handler},
		{MethodName: "CreateTelecell", Handler: _TelecellService_CreateTelecell_Handler},
		{MethodName: "UpdateTelecell", Handler: _TelecellService_UpdateTelecell_Handler},
		{MethodName: "DeleteTelecell", Handler: _TelecellService_DeleteTelecell_Handler},
		{MethodName: "PruneTelecell", Handler: _TelecellService_PruneTelecell_Handler},
		{MethodName: "AddTelecellToElements", Handler: _TelecellService_AddTelecellToElements_Handler},
		{MethodName: "RemoveTelecellFromElements", Handler: _TelecellService_RemoveTelecellFromElements_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListTelecells", Handler: _TelecellService_ListTelecells_Handler, ServerStreams: true},
		{StreamName: "SearchTelecellsByLocation", Handler: _TelecellService_SearchTelecellsByLocation_Handler, ServerStreams: true},
	},
	Metadata: "api/lighting/v1/lighting.proto",
}

func _BasestationService_GetBasestation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBasestationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BasestationServiceServer).GetBasestation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.BasestationService/GetBasestation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BasestationServiceServer).GetBasestation(ctx, req.(*GetBasestationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BasestationService_ListBasestations_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListBasestationsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BasestationServiceServer).ListBasestations(m, &basestationServiceListBasestationsServer{stream})
}

func _BasestationService_SearchBasestationsByLocation_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SearchBasestationsByLocationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(BasestationServiceServer).SearchBasestationsByLocation(m, &basestationServiceSearchBasestationsByLocationServer{stream})
}

func _BasestationService_CreateBasestation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBasestationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BasestationServiceServer).CreateBasestation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.BasestationService/CreateBasestation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BasestationServiceServer).CreateBasestation(ctx, req.(*CreateBasestationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BasestationService_UpdateBasestation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateBasestationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BasestationServiceServer).UpdateBasestation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.BasestationService/UpdateBasestation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BasestationServiceServer).UpdateBasestation(ctx, req.(*UpdateBasestationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BasestationService_DeleteBasestation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteBasestationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BasestationServiceServer).DeleteBasestation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.BasestationService/DeleteBasestation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BasestationServiceServer).DeleteBasestation(ctx, req.(*DeleteBasestationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BasestationService_PruneBasestation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PruneBasestationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BasestationServiceServer).PruneBasestation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.BasestationService/PruneBasestation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BasestationServiceServer).PruneBasestation(ctx, req.(*PruneBasestationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BasestationService_ServiceDesc is the grpc.ServiceDesc for BasestationService.
var BasestationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "luminet.lighting.v1.BasestationService",
	HandlerType: (*BasestationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetBasestation", Handler: _BasestationService_GetBasestation_Handler},
		{MethodName: "CreateBasestation", Handler: _BasestationService_CreateBasestation_Handler},
		{MethodName: "UpdateBasestation", Handler: _BasestationService_UpdateBasestation_Handler},
		{MethodName: "DeleteBasestation", Handler: _BasestationService_DeleteBasestation_Handler},
		{MethodName: "PruneBasestation", Handler: _BasestationService_PruneBasestation_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListBasestations", Handler: _BasestationService_ListBasestations_Handler, ServerStreams: true},
		{StreamName: "SearchBasestationsByLocation", Handler: _BasestationService_SearchBasestationsByLocation_Handler, ServerStreams: true},
	},
	Metadata: "api/lighting/v1/lighting.proto",
}

func _UserService_GetUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.UserService/GetUser"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).GetUser(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserService_ListUsers_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ListUsersRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UserServiceServer).ListUsers(m, &userServiceListUsersServer{stream})
}

func _UserService_CreateUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).CreateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.UserService/CreateUser"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).CreateUser(ctx, req.(*CreateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserService_UpdateUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).UpdateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.UserService/UpdateUser"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).UpdateUser(ctx, req.(*UpdateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserService_DeleteUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).DeleteUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/luminet.lighting.v1.UserService/DeleteUser"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserServiceServer).DeleteUser(ctx, req.(*DeleteUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UserService_ServiceDesc is the grpc.ServiceDesc for UserService.
var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "luminet.lighting.v1.UserService",
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUser", Handler: _UserService_GetUser_Handler},
		{MethodName: "CreateUser", Handler: _UserService_CreateUser_Handler},
		{MethodName: "UpdateUser", Handler: _UserService_UpdateUser_Handler},
		{MethodName: "DeleteUser", Handler: _UserService_DeleteUser_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListUsers", Handler: _UserService_ListUsers_Handler, ServerStreams: true},
	},
	Metadata: "api/lighting/v1/lighting.proto",
}
