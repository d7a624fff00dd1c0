package observepb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion7

const (
	ObserveService_ListRuns_FullMethodName              = "/aadk.v1.ObserveService/ListRuns"
	ObserveService_ListRunOutputs_FullMethodName        = "/aadk.v1.ObserveService/ListRunOutputs"
	ObserveService_UpsertRun_FullMethodName             = "/aadk.v1.ObserveService/UpsertRun"
	ObserveService_UpsertRunOutputs_FullMethodName      = "/aadk.v1.ObserveService/UpsertRunOutputs"
	ObserveService_ExportSupportBundle_FullMethodName   = "/aadk.v1.ObserveService/ExportSupportBundle"
	ObserveService_ExportEvidenceBundle_FullMethodName  = "/aadk.v1.ObserveService/ExportEvidenceBundle"
	ObserveService_ReloadState_FullMethodName           = "/aadk.v1.ObserveService/ReloadState"
)

type ObserveServiceClient interface {
	ListRuns(ctx context.Context, in *ListRunsRequest, opts ...grpc.CallOption) (*ListRunsResponse, error)
	ListRunOutputs(ctx context.Context, in *ListRunOutputsRequest, opts ...grpc.CallOption) (*ListRunOutputsResponse, error)
	UpsertRun(ctx context.Context, in *UpsertRunRequest, opts ...grpc.CallOption) (*UpsertRunResponse, error)
	UpsertRunOutputs(ctx context.Context, in *UpsertRunOutputsRequest, opts ...grpc.CallOption) (*UpsertRunOutputsResponse, error)
	ExportSupportBundle(ctx context.Context, in *ExportSupportBundleRequest, opts ...grpc.CallOption) (*ExportSupportBundleResponse, error)
	ExportEvidenceBundle(ctx context.Context, in *ExportEvidenceBundleRequest, opts ...grpc.CallOption) (*ExportEvidenceBundleResponse, error)
	ReloadState(ctx context.Context, in *ReloadStateRequest, opts ...grpc.CallOption) (*ReloadStateResponse, error)
}

type observeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewObserveServiceClient(cc grpc.ClientConnInterface) ObserveServiceClient {
	return &observeServiceClient{cc}
}

func (c *observeServiceClient) ListRuns(ctx context.Context, in *ListRunsRequest, opts ...grpc.CallOption) (*ListRunsResponse, error) {
	out := new(ListRunsResponse)
	if err := c.cc.Invoke(ctx, ObserveService_ListRuns_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *observeServiceClient) ListRunOutputs(ctx context.Context, in *ListRunOutputsRequest, opts ...grpc.CallOption) (*ListRunOutputsResponse, error) {
	out := new(ListRunOutputsResponse)
	if err := c.cc.Invoke(ctx, ObserveService_ListRunOutputs_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *observeServiceClient) UpsertRun(ctx context.Context, in *UpsertRunRequest, opts ...grpc.CallOption) (*UpsertRunResponse, error) {
	out := new(UpsertRunResponse)
	if err := c.cc.Invoke(ctx, ObserveService_UpsertRun_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *observeServiceClient) UpsertRunOutputs(ctx context.Context, in *UpsertRunOutputsRequest, opts ...grpc.CallOption) (*UpsertRunOutputsResponse, error) {
	out := new(UpsertRunOutputsResponse)
	if err := c.cc.Invoke(ctx, ObserveService_UpsertRunOutputs_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *observeServiceClient) ExportSupportBundle(ctx context.Context, in *ExportSupportBundleRequest, opts ...grpc.CallOption) (*ExportSupportBundleResponse, error) {
	out := new(ExportSupportBundleResponse)
	if err := c.cc.Invoke(ctx, ObserveService_ExportSupportBundle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *observeServiceClient) ExportEvidenceBundle(ctx context.Context, in *ExportEvidenceBundleRequest, opts ...grpc.CallOption) (*ExportEvidenceBundleResponse, error) {
	out := new(ExportEvidenceBundleResponse)
	if err := c.cc.Invoke(ctx, ObserveService_ExportEvidenceBundle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *observeServiceClient) ReloadState(ctx context.Context, in *ReloadStateRequest, opts ...grpc.CallOption) (*ReloadStateResponse, error) {
	out := new(ReloadStateResponse)
	if err := c.cc.Invoke(ctx, ObserveService_ReloadState_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type ObserveServiceServer interface {
	ListRuns(context.Context, *ListRunsRequest) (*ListRunsResponse, error)
	ListRunOutputs(context.Context, *ListRunOutputsRequest) (*ListRunOutputsResponse, error)
	UpsertRun(context.Context, *UpsertRunRequest) (*UpsertRunResponse, error)
	UpsertRunOutputs(context.Context, *UpsertRunOutputsRequest) (*UpsertRunOutputsResponse, error)
	ExportSupportBundle(context.Context, *ExportSupportBundleRequest) (*ExportSupportBundleResponse, error)
	ExportEvidenceBundle(context.Context, *ExportEvidenceBundleRequest) (*ExportEvidenceBundleResponse, error)
	ReloadState(context.Context, *ReloadStateRequest) (*ReloadStateResponse, error)
}

type UnimplementedObserveServiceServer struct{}

func (UnimplementedObserveServiceServer) ListRuns(context.Context, *ListRunsRequest) (*ListRunsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRuns not implemented")
}
func (UnimplementedObserveServiceServer) ListRunOutputs(context.Context, *ListRunOutputsRequest) (*ListRunOutputsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRunOutputs not implemented")
}
func (UnimplementedObserveServiceServer) UpsertRun(context.Context, *UpsertRunRequest) (*UpsertRunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertRun not implemented")
}
func (UnimplementedObserveServiceServer) UpsertRunOutputs(context.Context, *UpsertRunOutputsRequest) (*UpsertRunOutputsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertRunOutputs not implemented")
}
func (UnimplementedObserveServiceServer) ExportSupportBundle(context.Context, *ExportSupportBundleRequest) (*ExportSupportBundleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportSupportBundle not implemented")
}
func (UnimplementedObserveServiceServer) ExportEvidenceBundle(context.Context, *ExportEvidenceBundleRequest) (*ExportEvidenceBundleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportEvidenceBundle not implemented")
}
func (UnimplementedObserveServiceServer) ReloadState(context.Context, *ReloadStateRequest) (*ReloadStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReloadState not implemented")
}

func RegisterObserveServiceServer(s *grpc.Server, srv ObserveServiceServer) {
	s.RegisterService(&_ObserveService_serviceDesc, srv)
}

func _ObserveService_ListRuns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRunsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).ListRuns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_ListRuns_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).ListRuns(ctx, req.(*ListRunsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObserveService_ListRunOutputs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRunOutputsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).ListRunOutputs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_ListRunOutputs_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).ListRunOutputs(ctx, req.(*ListRunOutputsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObserveService_UpsertRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).UpsertRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_UpsertRun_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).UpsertRun(ctx, req.(*UpsertRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObserveService_UpsertRunOutputs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertRunOutputsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).UpsertRunOutputs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_UpsertRunOutputs_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).UpsertRunOutputs(ctx, req.(*UpsertRunOutputsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObserveService_ExportSupportBundle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSupportBundleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).ExportSupportBundle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_ExportSupportBundle_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).ExportSupportBundle(ctx, req.(*ExportSupportBundleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObserveService_ExportEvidenceBundle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportEvidenceBundleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).ExportEvidenceBundle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_ExportEvidenceBundle_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).ExportEvidenceBundle(ctx, req.(*ExportEvidenceBundleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ObserveService_ReloadState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReloadStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ObserveServiceServer).ReloadState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ObserveService_ReloadState_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ObserveServiceServer).ReloadState(ctx, req.(*ReloadStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _ObserveService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "aadk.v1.ObserveService",
	HandlerType: (*ObserveServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListRuns", Handler: _ObserveService_ListRuns_Handler},
		{MethodName: "ListRunOutputs", Handler: _ObserveService_ListRunOutputs_Handler},
		{MethodName: "UpsertRun", Handler: _ObserveService_UpsertRun_Handler},
		{MethodName: "UpsertRunOutputs", Handler: _ObserveService_UpsertRunOutputs_Handler},
		{MethodName: "ExportSupportBundle", Handler: _ObserveService_ExportSupportBundle_Handler},
		{MethodName: "ExportEvidenceBundle", Handler: _ObserveService_ExportEvidenceBundle_Handler},
		{MethodName: "ReloadState", Handler: _ObserveService_ReloadState_Handler},
	},
	Metadata: "aadk/v1/observe.proto",
}
