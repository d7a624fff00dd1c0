package toolchainpb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion7

const (
	ToolchainService_Install_FullMethodName      = "/aadk.v1.ToolchainService/Install"
	ToolchainService_Verify_FullMethodName       = "/aadk.v1.ToolchainService/Verify"
	ToolchainService_Update_FullMethodName       = "/aadk.v1.ToolchainService/Update"
	ToolchainService_Uninstall_FullMethodName    = "/aadk.v1.ToolchainService/Uninstall"
	ToolchainService_CleanupCache_FullMethodName = "/aadk.v1.ToolchainService/CleanupCache"
)

type ToolchainServiceClient interface {
	Install(ctx context.Context, in *InstallRequest, opts ...grpc.CallOption) (*InstallResponse, error)
	Verify(ctx context.Context, in *VerifyRequest, opts ...grpc.CallOption) (*VerifyResponse, error)
	Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error)
	Uninstall(ctx context.Context, in *UninstallRequest, opts ...grpc.CallOption) (*UninstallResponse, error)
	CleanupCache(ctx context.Context, in *CleanupCacheRequest, opts ...grpc.CallOption) (*CleanupCacheResponse, error)
}

type toolchainServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewToolchainServiceClient(cc grpc.ClientConnInterface) ToolchainServiceClient {
	return &toolchainServiceClient{cc}
}

func (c *toolchainServiceClient) Install(ctx context.Context, in *InstallRequest, opts ...grpc.CallOption) (*InstallResponse, error) {
	out := new(InstallResponse)
	if err := c.cc.Invoke(ctx, ToolchainService_Install_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolchainServiceClient) Verify(ctx context.Context, in *VerifyRequest, opts ...grpc.CallOption) (*VerifyResponse, error) {
	out := new(VerifyResponse)
	if err := c.cc.Invoke(ctx, ToolchainService_Verify_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolchainServiceClient) Update(ctx context.Context, in *UpdateRequest, opts ...grpc.CallOption) (*UpdateResponse, error) {
	out := new(UpdateResponse)
	if err := c.cc.Invoke(ctx, ToolchainService_Update_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolchainServiceClient) Uninstall(ctx context.Context, in *UninstallRequest, opts ...grpc.CallOption) (*UninstallResponse, error) {
	out := new(UninstallResponse)
	if err := c.cc.Invoke(ctx, ToolchainService_Uninstall_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *toolchainServiceClient) CleanupCache(ctx context.Context, in *CleanupCacheRequest, opts ...grpc.CallOption) (*CleanupCacheResponse, error) {
	out := new(CleanupCacheResponse)
	if err := c.cc.Invoke(ctx, ToolchainService_CleanupCache_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type ToolchainServiceServer interface {
	Install(context.Context, *InstallRequest) (*InstallResponse, error)
	Verify(context.Context, *VerifyRequest) (*VerifyResponse, error)
	Update(context.Context, *UpdateRequest) (*UpdateResponse, error)
	Uninstall(context.Context, *UninstallRequest) (*UninstallResponse, error)
	CleanupCache(context.Context, *CleanupCacheRequest) (*CleanupCacheResponse, error)
}

type UnimplementedToolchainServiceServer struct{}

func (UnimplementedToolchainServiceServer) Install(context.Context, *InstallRequest) (*InstallResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Install not implemented")
}
func (UnimplementedToolchainServiceServer) Verify(context.Context, *VerifyRequest) (*VerifyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Verify not implemented")
}
func (UnimplementedToolchainServiceServer) Update(context.Context, *UpdateRequest) (*UpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Update not implemented")
}
func (UnimplementedToolchainServiceServer) Uninstall(context.Context, *UninstallRequest) (*UninstallResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Uninstall not implemented")
}
func (UnimplementedToolchainServiceServer) CleanupCache(context.Context, *CleanupCacheRequest) (*CleanupCacheResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CleanupCache not implemented")
}

func RegisterToolchainServiceServer(s *grpc.Server, srv ToolchainServiceServer) {
	s.RegisterService(&_ToolchainService_serviceDesc, srv)
}

func _ToolchainService_Install_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InstallRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolchainServiceServer).Install(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ToolchainService_Install_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolchainServiceServer).Install(ctx, req.(*InstallRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolchainService_Verify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolchainServiceServer).Verify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ToolchainService_Verify_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolchainServiceServer).Verify(ctx, req.(*VerifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolchainService_Update_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolchainServiceServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ToolchainService_Update_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolchainServiceServer).Update(ctx, req.(*UpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolchainService_Uninstall_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UninstallRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolchainServiceServer).Uninstall(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ToolchainService_Uninstall_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolchainServiceServer).Uninstall(ctx, req.(*UninstallRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ToolchainService_CleanupCache_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CleanupCacheRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolchainServiceServer).CleanupCache(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ToolchainService_CleanupCache_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolchainServiceServer).CleanupCache(ctx, req.(*CleanupCacheRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _ToolchainService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "aadk.v1.ToolchainService",
	HandlerType: (*ToolchainServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Install", Handler: _ToolchainService_Install_Handler},
		{MethodName: "Verify", Handler: _ToolchainService_Verify_Handler},
		{MethodName: "Update", Handler: _ToolchainService_Update_Handler},
		{MethodName: "Uninstall", Handler: _ToolchainService_Uninstall_Handler},
		{MethodName: "CleanupCache", Handler: _ToolchainService_CleanupCache_Handler},
	},
	Metadata: "aadk/v1/toolchain.proto",
}
