// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: statements/v1/statements.proto

package statementspb

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
	StatementsService_ParseStatement_FullMethodName     = "/statements.v1.StatementsService/ParseStatement"
	StatementsService_GetJob_FullMethodName             = "/statements.v1.StatementsService/GetJob"
	StatementsService_GetResult_FullMethodName          = "/statements.v1.StatementsService/GetResult"
	StatementsService_ListResults_FullMethodName        = "/statements.v1.StatementsService/ListResults"
	StatementsService_ExportTransactions_FullMethodName = "/statements.v1.StatementsService/ExportTransactions"
)

// StatementsServiceClient is the client API for StatementsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type StatementsServiceClient interface {
	// ParseStatement ingests a statement PDF by path and runs the full parse.
	ParseStatement(ctx context.Context, in *ParseStatementRequest, opts ...grpc.CallOption) (*ParseStatementResponse, error)
	// GetJob returns the lifecycle state of one parse job.
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	// GetResult returns the parsed fields and transactions for a job.
	GetResult(ctx context.Context, in *GetResultRequest, opts ...grpc.CallOption) (*GetResultResponse, error)
	// ListResults returns recent results, optionally filtered by issuer.
	ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error)
	// ExportTransactions renders the transactions of one result as XLSX bytes.
	ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error)
}

type statementsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStatementsServiceClient(cc grpc.ClientConnInterface) StatementsServiceClient {
	return &statementsServiceClient{cc}
}

func (c *statementsServiceClient) ParseStatement(ctx context.Context, in *ParseStatementRequest, opts ...grpc.CallOption) (*ParseStatementResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseStatementResponse)
	err := c.cc.Invoke(ctx, StatementsService_ParseStatement_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statementsServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, StatementsService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statementsServiceClient) GetResult(ctx context.Context, in *GetResultRequest, opts ...grpc.CallOption) (*GetResultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetResultResponse)
	err := c.cc.Invoke(ctx, StatementsService_GetResult_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statementsServiceClient) ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResultsResponse)
	err := c.cc.Invoke(ctx, StatementsService_ListResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statementsServiceClient) ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTransactionsResponse)
	err := c.cc.Invoke(ctx, StatementsService_ExportTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StatementsServiceServer is the server API for StatementsService service.
// All implementations must embed UnimplementedStatementsServiceServer
// for forward compatibility.
type StatementsServiceServer interface {
	// ParseStatement ingests a statement PDF by path and runs the full parse.
	ParseStatement(context.Context, *ParseStatementRequest) (*ParseStatementResponse, error)
	// GetJob returns the lifecycle state of one parse job.
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	// GetResult returns the parsed fields and transactions for a job.
	GetResult(context.Context, *GetResultRequest) (*GetResultResponse, error)
	// ListResults returns recent results, optionally filtered by issuer.
	ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error)
	// ExportTransactions renders the transactions of one result as XLSX bytes.
	ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error)
	mustEmbedUnimplementedStatementsServiceServer()
}

// UnimplementedStatementsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedStatementsServiceServer struct{}

func (UnimplementedStatementsServiceServer) ParseStatement(context.Context, *ParseStatementRequest) (*ParseStatementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseStatement not implemented")
}
func (UnimplementedStatementsServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedStatementsServiceServer) GetResult(context.Context, *GetResultRequest) (*GetResultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetResult not implemented")
}
func (UnimplementedStatementsServiceServer) ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResults not implemented")
}
func (UnimplementedStatementsServiceServer) ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportTransactions not implemented")
}
func (UnimplementedStatementsServiceServer) mustEmbedUnimplementedStatementsServiceServer() {}
func (UnimplementedStatementsServiceServer) testEmbeddedByValue()                           {}

// UnsafeStatementsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to StatementsServiceServer will
// result in compilation errors.
type UnsafeStatementsServiceServer interface {
	mustEmbedUnimplementedStatementsServiceServer()
}

func RegisterStatementsServiceServer(s grpc.ServiceRegistrar, srv StatementsServiceServer) {
	// If the following call pancis, it indicates UnimplementedStatementsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&StatementsService_ServiceDesc, srv)
}

func _StatementsService_ParseStatement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseStatementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatementsServiceServer).ParseStatement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatementsService_ParseStatement_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatementsServiceServer).ParseStatement(ctx, req.(*ParseStatementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatementsService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatementsServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatementsService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatementsServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatementsService_GetResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatementsServiceServer).GetResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatementsService_GetResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatementsServiceServer).GetResult(ctx, req.(*GetResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatementsService_ListResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatementsServiceServer).ListResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatementsService_ListResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatementsServiceServer).ListResults(ctx, req.(*ListResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatementsService_ExportTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatementsServiceServer).ExportTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatementsService_ExportTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatementsServiceServer).ExportTransactions(ctx, req.(*ExportTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StatementsService_ServiceDesc is the grpc.ServiceDesc for StatementsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var StatementsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "statements.v1.StatementsService",
	HandlerType: (*StatementsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseStatement",
			Handler:    _StatementsService_ParseStatement_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _StatementsService_GetJob_Handler,
		},
		{
			MethodName: "GetResult",
			Handler:    _StatementsService_GetResult_Handler,
		},
		{
			MethodName: "ListResults",
			Handler:    _StatementsService_ListResults_Handler,
		},
		{
			MethodName: "ExportTransactions",
			Handler:    _StatementsService_ExportTransactions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "statements/v1/statements.proto",
}
