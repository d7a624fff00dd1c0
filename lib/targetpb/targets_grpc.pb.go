package targetpb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion7

const (
	TargetsService_InstallApk_FullMethodName        = "/aadk.v1.TargetsService/InstallApk"
	TargetsService_Launch_FullMethodName            = "/aadk.v1.TargetsService/Launch"
	TargetsService_Stop_FullMethodName              = "/aadk.v1.TargetsService/Stop"
	TargetsService_CuttlefishInstall_FullMethodName = "/aadk.v1.TargetsService/CuttlefishInstall"
	TargetsService_CuttlefishStart_FullMethodName   = "/aadk.v1.TargetsService/CuttlefishStart"
	TargetsService_CuttlefishStop_FullMethodName    = "/aadk.v1.TargetsService/CuttlefishStop"
)

type TargetsServiceClient interface {
	InstallApk(ctx context.Context, in *InstallApkRequest, opts ...grpc.CallOption) (*InstallApkResponse, error)
	Launch(ctx context.Context, in *LaunchRequest, opts ...grpc.CallOption) (*LaunchResponse, error)
	Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*StopResponse, error)
	CuttlefishInstall(ctx context.Context, in *CuttlefishInstallRequest, opts ...grpc.CallOption) (*CuttlefishInstallResponse, error)
	CuttlefishStart(ctx context.Context, in *CuttlefishStartRequest, opts ...grpc.CallOption) (*CuttlefishStartResponse, error)
	CuttlefishStop(ctx context.Context, in *CuttlefishStopRequest, opts ...grpc.CallOption) (*CuttlefishStopResponse, error)
}

type targetsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTargetsServiceClient(cc grpc.ClientConnInterface) TargetsServiceClient {
	return &targetsServiceClient{cc}
}

func (c *targetsServiceClient) InstallApk(ctx context.Context, in *InstallApkRequest, opts ...grpc.CallOption) (*InstallApkResponse, error) {
	out := new(InstallApkResponse)
	if err := c.cc.Invoke(ctx, TargetsService_InstallApk_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *targetsServiceClient) Launch(ctx context.Context, in *LaunchRequest, opts ...grpc.CallOption) (*LaunchResponse, error) {
	out := new(LaunchResponse)
	if err := c.cc.Invoke(ctx, TargetsService_Launch_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *targetsServiceClient) Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*StopResponse, error) {
	out := new(StopResponse)
	if err := c.cc.Invoke(ctx, TargetsService_Stop_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *targetsServiceClient) CuttlefishInstall(ctx context.Context, in *CuttlefishInstallRequest, opts ...grpc.CallOption) (*CuttlefishInstallResponse, error) {
	out := new(CuttlefishInstallResponse)
	if err := c.cc.Invoke(ctx, TargetsService_CuttlefishInstall_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *targetsServiceClient) CuttlefishStart(ctx context.Context, in *CuttlefishStartRequest, opts ...grpc.CallOption) (*CuttlefishStartResponse, error) {
	out := new(CuttlefishStartResponse)
	if err := c.cc.Invoke(ctx, TargetsService_CuttlefishStart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *targetsServiceClient) CuttlefishStop(ctx context.Context, in *CuttlefishStopRequest, opts ...grpc.CallOption) (*CuttlefishStopResponse, error) {
	out := new(CuttlefishStopResponse)
	if err := c.cc.Invoke(ctx, TargetsService_CuttlefishStop_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type TargetsServiceServer interface {
	InstallApk(context.Context, *InstallApkRequest) (*InstallApkResponse, error)
	Launch(context.Context, *LaunchRequest) (*LaunchResponse, error)
	Stop(context.Context, *StopRequest) (*StopResponse, error)
	CuttlefishInstall(context.Context, *CuttlefishInstallRequest) (*CuttlefishInstallResponse, error)
	CuttlefishStart(context.Context, *CuttlefishStartRequest) (*CuttlefishStartResponse, error)
	CuttlefishStop(context.Context, *CuttlefishStopRequest) (*CuttlefishStopResponse, error)
}

type UnimplementedTargetsServiceServer struct{}

func (UnimplementedTargetsServiceServer) InstallApk(context.Context, *InstallApkRequest) (*InstallApkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InstallApk not implemented")
}
func (UnimplementedTargetsServiceServer) Launch(context.Context, *LaunchRequest) (*LaunchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Launch not implemented")
}
func (UnimplementedTargetsServiceServer) Stop(context.Context, *StopRequest) (*StopResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Stop not implemented")
}
func (UnimplementedTargetsServiceServer) CuttlefishInstall(context.Context, *CuttlefishInstallRequest) (*CuttlefishInstallResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CuttlefishInstall not implemented")
}
func (UnimplementedTargetsServiceServer) CuttlefishStart(context.Context, *CuttlefishStartRequest) (*CuttlefishStartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CuttlefishStart not implemented")
}
func (UnimplementedTargetsServiceServer) CuttlefishStop(context.Context, *CuttlefishStopRequest) (*CuttlefishStopResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CuttlefishStop not implemented")
}

func RegisterTargetsServiceServer(s *grpc.Server, srv TargetsServiceServer) {
	s.RegisterService(&_TargetsService_serviceDesc, srv)
}

func _TargetsService_InstallApk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InstallApkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TargetsServiceServer).InstallApk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TargetsService_InstallApk_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TargetsServiceServer).InstallApk(ctx, req.(*InstallApkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TargetsService_Launch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LaunchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TargetsServiceServer).Launch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TargetsService_Launch_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TargetsServiceServer).Launch(ctx, req.(*LaunchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TargetsService_Stop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TargetsServiceServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TargetsService_Stop_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TargetsServiceServer).Stop(ctx, req.(*StopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TargetsService_CuttlefishInstall_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CuttlefishInstallRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TargetsServiceServer).CuttlefishInstall(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TargetsService_CuttlefishInstall_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TargetsServiceServer).CuttlefishInstall(ctx, req.(*CuttlefishInstallRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TargetsService_CuttlefishStart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CuttlefishStartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TargetsServiceServer).CuttlefishStart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TargetsService_CuttlefishStart_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TargetsServiceServer).CuttlefishStart(ctx, req.(*CuttlefishStartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TargetsService_CuttlefishStop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CuttlefishStopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TargetsServiceServer).CuttlefishStop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TargetsService_CuttlefishStop_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TargetsServiceServer).CuttlefishStop(ctx, req.(*CuttlefishStopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _TargetsService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "aadk.v1.TargetsService",
	HandlerType: (*TargetsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InstallApk", Handler: _TargetsService_InstallApk_Handler},
		{MethodName: "Launch", Handler: _TargetsService_Launch_Handler},
		{MethodName: "Stop", Handler: _TargetsService_Stop_Handler},
		{MethodName: "CuttlefishInstall", Handler: _TargetsService_CuttlefishInstall_Handler},
		{MethodName: "CuttlefishStart", Handler: _TargetsService_CuttlefishStart_Handler},
		{MethodName: "CuttlefishStop", Handler: _TargetsService_CuttlefishStop_Handler},
	},
	Metadata: "aadk/v1/targets.proto",
}
