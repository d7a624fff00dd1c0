// Package client is a thin typed wrapper around jobpb.JobServiceClient,
// giving collaborator workers and the workflow orchestrator a Go-native
// call surface instead of raw generated request/response structs at
// every call site.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

// Client wraps a JobServiceClient connection.
type Client struct {
	conn *grpc.ClientConn
	rpc  jobpb.JobServiceClient
}

// Dial opens a client connection to the Job service at addr.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: jobpb.NewJobServiceClient(conn)}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// StartJob starts a job of the given type and scope ids, returning its
// job id. If jobID is non-empty, callers should skip StartJob entirely
// and reuse it (the orchestrator pattern from spec §6).
func (c *Client) StartJob(ctx context.Context, jobType, projectID, targetID, toolchainSetID string) (string, error) {
	resp, err := c.rpc.StartJob(ctx, &jobpb.StartJobRequest{
		JobType:        jobType,
		ProjectId:      projectID,
		TargetId:       targetID,
		ToolchainSetId: toolchainSetID,
	})
	if err != nil {
		return "", err
	}
	return commonpb.UnwrapID(resp.GetJob().GetJobId()), nil
}

// GetJob fetches the current snapshot of a job.
func (c *Client) GetJob(ctx context.Context, jobID string) (*jobpb.Job, error) {
	resp, err := c.rpc.GetJob(ctx, &jobpb.GetJobRequest{JobId: commonpb.WrapID(jobID)})
	if err != nil {
		return nil, err
	}
	return resp.GetJob(), nil
}

// CancelJob requests cancellation of a job, reporting whether the
// request was accepted.
func (c *Client) CancelJob(ctx context.Context, jobID string) (bool, error) {
	resp, err := c.rpc.CancelJob(ctx, &jobpb.CancelJobRequest{JobId: commonpb.WrapID(jobID)})
	if err != nil {
		return false, err
	}
	return resp.GetAccepted(), nil
}

// PublishEvent publishes a pre-built JobEvent on behalf of a worker.
func (c *Client) PublishEvent(ctx context.Context, evt *jobpb.JobEvent) error {
	_, err := c.rpc.PublishJobEvent(ctx, &jobpb.PublishJobEventRequest{Event: evt})
	return err
}

// StreamEvents subscribes to a job's event stream, optionally replaying
// its history first.
func (c *Client) StreamEvents(ctx context.Context, jobID string, includeHistory bool) (jobpb.JobService_StreamJobEventsClient, error) {
	return c.rpc.StreamJobEvents(ctx, &jobpb.StreamJobEventsRequest{
		JobId:          commonpb.WrapID(jobID),
		IncludeHistory: includeHistory,
	})
}

// Raw exposes the underlying generated client for call sites that need
// full control (e.g. custom CallOptions).
func (c *Client) Raw() jobpb.JobServiceClient {
	return c.rpc
}
