package jobpb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion that this hand-maintained file stays
// compatible with the grpc package it is built against.
const _ = grpc.SupportPackageIsVersion7

const (
	JobService_StartJob_FullMethodName         = "/aadk.v1.JobService/StartJob"
	JobService_GetJob_FullMethodName           = "/aadk.v1.JobService/GetJob"
	JobService_CancelJob_FullMethodName        = "/aadk.v1.JobService/CancelJob"
	JobService_PublishJobEvent_FullMethodName  = "/aadk.v1.JobService/PublishJobEvent"
	JobService_StreamJobEvents_FullMethodName  = "/aadk.v1.JobService/StreamJobEvents"
)

// JobServiceClient is the client API for JobService.
type JobServiceClient interface {
	StartJob(ctx context.Context, in *StartJobRequest, opts ...grpc.CallOption) (*StartJobResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	PublishJobEvent(ctx context.Context, in *PublishJobEventRequest, opts ...grpc.CallOption) (*PublishJobEventResponse, error)
	StreamJobEvents(ctx context.Context, in *StreamJobEventsRequest, opts ...grpc.CallOption) (JobService_StreamJobEventsClient, error)
}

type jobServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobServiceClient(cc grpc.ClientConnInterface) JobServiceClient {
	return &jobServiceClient{cc}
}

func (c *jobServiceClient) StartJob(ctx context.Context, in *StartJobRequest, opts ...grpc.CallOption) (*StartJobResponse, error) {
	out := new(StartJobResponse)
	if err := c.cc.Invoke(ctx, JobService_StartJob_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	out := new(GetJobResponse)
	if err := c.cc.Invoke(ctx, JobService_GetJob_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	out := new(CancelJobResponse)
	if err := c.cc.Invoke(ctx, JobService_CancelJob_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) PublishJobEvent(ctx context.Context, in *PublishJobEventRequest, opts ...grpc.CallOption) (*PublishJobEventResponse, error) {
	out := new(PublishJobEventResponse)
	if err := c.cc.Invoke(ctx, JobService_PublishJobEvent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobServiceClient) StreamJobEvents(ctx context.Context, in *StreamJobEventsRequest, opts ...grpc.CallOption) (JobService_StreamJobEventsClient, error) {
	stream, err := c.cc.NewStream(ctx, &_JobService_serviceDesc.Streams[0], JobService_StreamJobEvents_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &jobServiceStreamJobEventsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// JobService_StreamJobEventsClient is the stream handle a caller ranges
// over with Recv until it returns io.EOF.
type JobService_StreamJobEventsClient interface {
	Recv() (*JobEvent, error)
	grpc.ClientStream
}

type jobServiceStreamJobEventsClient struct {
	grpc.ClientStream
}

func (x *jobServiceStreamJobEventsClient) Recv() (*JobEvent, error) {
	m := new(JobEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// JobServiceServer is the server API for JobService.
type JobServiceServer interface {
	StartJob(context.Context, *StartJobRequest) (*StartJobResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	PublishJobEvent(context.Context, *PublishJobEventRequest) (*PublishJobEventResponse, error)
	StreamJobEvents(*StreamJobEventsRequest, JobService_StreamJobEventsServer) error
}

// UnimplementedJobServiceServer can be embedded to satisfy forward
// compatibility; any method not overridden returns Unimplemented.
type UnimplementedJobServiceServer struct{}

func (UnimplementedJobServiceServer) StartJob(context.Context, *StartJobRequest) (*StartJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartJob not implemented")
}
func (UnimplementedJobServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedJobServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedJobServiceServer) PublishJobEvent(context.Context, *PublishJobEventRequest) (*PublishJobEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PublishJobEvent not implemented")
}
func (UnimplementedJobServiceServer) StreamJobEvents(*StreamJobEventsRequest, JobService_StreamJobEventsServer) error {
	return status.Error(codes.Unimplemented, "method StreamJobEvents not implemented")
}

func RegisterJobServiceServer(s *grpc.Server, srv JobServiceServer) {
	s.RegisterService(&_JobService_serviceDesc, srv)
}

func _JobService_StartJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).StartJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_StartJob_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobServiceServer).StartJob(ctx, req.(*StartJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_GetJob_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_CancelJob_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_PublishJobEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PublishJobEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobServiceServer).PublishJobEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: JobService_PublishJobEvent_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobServiceServer).PublishJobEvent(ctx, req.(*PublishJobEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobService_StreamJobEvents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamJobEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(JobServiceServer).StreamJobEvents(m, &jobServiceStreamJobEventsServer{stream})
}

// JobService_StreamJobEventsServer is the stream handle a server handler
// uses to Send events to the subscriber.
type JobService_StreamJobEventsServer interface {
	Send(*JobEvent) error
	grpc.ServerStream
}

type jobServiceStreamJobEventsServer struct {
	grpc.ServerStream
}

func (x *jobServiceStreamJobEventsServer) Send(m *JobEvent) error {
	return x.ServerStream.SendMsg(m)
}

var _JobService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "aadk.v1.JobService",
	HandlerType: (*JobServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartJob", Handler: _JobService_StartJob_Handler},
		{MethodName: "GetJob", Handler: _JobService_GetJob_Handler},
		{MethodName: "CancelJob", Handler: _JobService_CancelJob_Handler},
		{MethodName: "PublishJobEvent", Handler: _JobService_PublishJobEvent_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamJobEvents",
			Handler:       _JobService_StreamJobEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "aadk/v1/job.proto",
}
