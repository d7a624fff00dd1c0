package workflowpb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion7

const (
	WorkflowService_RunPipeline_FullMethodName = "/aadk.v1.WorkflowService/RunPipeline"
)

type WorkflowServiceClient interface {
	RunPipeline(ctx context.Context, in *RunPipelineRequest, opts ...grpc.CallOption) (*RunPipelineResponse, error)
}

type workflowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWorkflowServiceClient(cc grpc.ClientConnInterface) WorkflowServiceClient {
	return &workflowServiceClient{cc}
}

func (c *workflowServiceClient) RunPipeline(ctx context.Context, in *RunPipelineRequest, opts ...grpc.CallOption) (*RunPipelineResponse, error) {
	out := new(RunPipelineResponse)
	if err := c.cc.Invoke(ctx, WorkflowService_RunPipeline_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type WorkflowServiceServer interface {
	RunPipeline(context.Context, *RunPipelineRequest) (*RunPipelineResponse, error)
}

type UnimplementedWorkflowServiceServer struct{}

func (UnimplementedWorkflowServiceServer) RunPipeline(context.Context, *RunPipelineRequest) (*RunPipelineResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunPipeline not implemented")
}

func RegisterWorkflowServiceServer(s *grpc.Server, srv WorkflowServiceServer) {
	s.RegisterService(&_WorkflowService_serviceDesc, srv)
}

func _WorkflowService_RunPipeline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunPipelineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowServiceServer).RunPipeline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: WorkflowService_RunPipeline_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkflowServiceServer).RunPipeline(ctx, req.(*RunPipelineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _WorkflowService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "aadk.v1.WorkflowService",
	HandlerType: (*WorkflowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RunPipeline", Handler: _WorkflowService_RunPipeline_Handler},
	},
	Metadata: "aadk/v1/workflow.proto",
}
