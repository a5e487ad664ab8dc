// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: sidepool/query/v1/query.proto

package queryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QueryService_GetDepositorBalance_FullMethodName = "/sidepool.query.v1.QueryService/GetDepositorBalance"
	QueryService_GetReservoirLevels_FullMethodName  = "/sidepool.query.v1.QueryService/GetReservoirLevels"
	QueryService_ListPositionDebts_FullMethodName   = "/sidepool.query.v1.QueryService/ListPositionDebts"
	QueryService_ListOperations_FullMethodName      = "/sidepool.query.v1.QueryService/ListOperations"
	QueryService_ListJournals_FullMethodName        = "/sidepool.query.v1.QueryService/ListJournals"
	QueryService_GetSystemStatus_FullMethodName     = "/sidepool.query.v1.QueryService/GetSystemStatus"
)

// QueryServiceClient is the client API for QueryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueryService reads from eventually consistent projections. Every response
// carries as_of_sequence, the projection watermark at read time.
type QueryServiceClient interface {
	GetDepositorBalance(ctx context.Context, in *GetDepositorBalanceRequest, opts ...grpc.CallOption) (*GetDepositorBalanceResponse, error)
	GetReservoirLevels(ctx context.Context, in *GetReservoirLevelsRequest, opts ...grpc.CallOption) (*GetReservoirLevelsResponse, error)
	ListPositionDebts(ctx context.Context, in *ListPositionDebtsRequest, opts ...grpc.CallOption) (*ListPositionDebtsResponse, error)
	ListOperations(ctx context.Context, in *ListOperationsRequest, opts ...grpc.CallOption) (*ListOperationsResponse, error)
	ListJournals(ctx context.Context, in *ListJournalsRequest, opts ...grpc.CallOption) (*ListJournalsResponse, error)
	GetSystemStatus(ctx context.Context, in *GetSystemStatusRequest, opts ...grpc.CallOption) (*GetSystemStatusResponse, error)
}

type queryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryServiceClient(cc grpc.ClientConnInterface) QueryServiceClient {
	return &queryServiceClient{cc}
}

func (c *queryServiceClient) GetDepositorBalance(ctx context.Context, in *GetDepositorBalanceRequest, opts ...grpc.CallOption) (*GetDepositorBalanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDepositorBalanceResponse)
	err := c.cc.Invoke(ctx, QueryService_GetDepositorBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetReservoirLevels(ctx context.Context, in *GetReservoirLevelsRequest, opts ...grpc.CallOption) (*GetReservoirLevelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReservoirLevelsResponse)
	err := c.cc.Invoke(ctx, QueryService_GetReservoirLevels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListPositionDebts(ctx context.Context, in *ListPositionDebtsRequest, opts ...grpc.CallOption) (*ListPositionDebtsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPositionDebtsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListPositionDebts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListOperations(ctx context.Context, in *ListOperationsRequest, opts ...grpc.CallOption) (*ListOperationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListOperationsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListOperations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListJournals(ctx context.Context, in *ListJournalsRequest, opts ...grpc.CallOption) (*ListJournalsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJournalsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListJournals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetSystemStatus(ctx context.Context, in *GetSystemStatusRequest, opts ...grpc.CallOption) (*GetSystemStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSystemStatusResponse)
	err := c.cc.Invoke(ctx, QueryService_GetSystemStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServiceServer is the server API for QueryService service.
// All implementations must embed UnimplementedQueryServiceServer
// for forward compatibility.
//
// QueryService reads from eventually consistent projections. Every response
// carries as_of_sequence, the projection watermark at read time.
type QueryServiceServer interface {
	GetDepositorBalance(context.Context, *GetDepositorBalanceRequest) (*GetDepositorBalanceResponse, error)
	GetReservoirLevels(context.Context, *GetReservoirLevelsRequest) (*GetReservoirLevelsResponse, error)
	ListPositionDebts(context.Context, *ListPositionDebtsRequest) (*ListPositionDebtsResponse, error)
	ListOperations(context.Context, *ListOperationsRequest) (*ListOperationsResponse, error)
	ListJournals(context.Context, *ListJournalsRequest) (*ListJournalsResponse, error)
	GetSystemStatus(context.Context, *GetSystemStatusRequest) (*GetSystemStatusResponse, error)
	mustEmbedUnimplementedQueryServiceServer()
}

// UnimplementedQueryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueryServiceServer struct{}

func (UnimplementedQueryServiceServer) GetDepositorBalance(context.Context, *GetDepositorBalanceRequest) (*GetDepositorBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDepositorBalance not implemented")
}
func (UnimplementedQueryServiceServer) GetReservoirLevels(context.Context, *GetReservoirLevelsRequest) (*GetReservoirLevelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReservoirLevels not implemented")
}
func (UnimplementedQueryServiceServer) ListPositionDebts(context.Context, *ListPositionDebtsRequest) (*ListPositionDebtsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPositionDebts not implemented")
}
func (UnimplementedQueryServiceServer) ListOperations(context.Context, *ListOperationsRequest) (*ListOperationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOperations not implemented")
}
func (UnimplementedQueryServiceServer) ListJournals(context.Context, *ListJournalsRequest) (*ListJournalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJournals not implemented")
}
func (UnimplementedQueryServiceServer) GetSystemStatus(context.Context, *GetSystemStatusRequest) (*GetSystemStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSystemStatus not implemented")
}
func (UnimplementedQueryServiceServer) mustEmbedUnimplementedQueryServiceServer() {}
func (UnimplementedQueryServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueryServiceServer will
// result in compilation errors.
type UnsafeQueryServiceServer interface {
	mustEmbedUnimplementedQueryServiceServer()
}

func RegisterQueryServiceServer(s grpc.ServiceRegistrar, srv QueryServiceServer) {
	// If the following call pancis, it indicates UnimplementedQueryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueryService_ServiceDesc, srv)
}

func _QueryService_GetDepositorBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDepositorBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetDepositorBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetDepositorBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetDepositorBalance(ctx, req.(*GetDepositorBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetReservoirLevels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReservoirLevelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetReservoirLevels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetReservoirLevels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetReservoirLevels(ctx, req.(*GetReservoirLevelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListPositionDebts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPositionDebtsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListPositionDebts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListPositionDebts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListPositionDebts(ctx, req.(*ListPositionDebtsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListOperations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOperationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListOperations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListOperations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListOperations(ctx, req.(*ListOperationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListJournals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJournalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListJournals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListJournals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListJournals(ctx, req.(*ListJournalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetSystemStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSystemStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetSystemStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetSystemStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetSystemStatus(ctx, req.(*GetSystemStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueryService_ServiceDesc is the grpc.ServiceDesc for QueryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sidepool.query.v1.QueryService",
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDepositorBalance",
			Handler:    _QueryService_GetDepositorBalance_Handler,
		},
		{
			MethodName: "GetReservoirLevels",
			Handler:    _QueryService_GetReservoirLevels_Handler,
		},
		{
			MethodName: "ListPositionDebts",
			Handler:    _QueryService_ListPositionDebts_Handler,
		},
		{
			MethodName: "ListOperations",
			Handler:    _QueryService_ListOperations_Handler,
		},
		{
			MethodName: "ListJournals",
			Handler:    _QueryService_ListJournals_Handler,
		},
		{
			MethodName: "GetSystemStatus",
			Handler:    _QueryService_GetSystemStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sidepool/query/v1/query.proto",
}
