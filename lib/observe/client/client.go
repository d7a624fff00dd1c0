// Package client is a thin typed wrapper around observepb.ObserveServiceClient,
// giving the workflow orchestrator and collaborator workers a Go-native
// call surface instead of raw generated request/response structs at
// every call site.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/androiddevkit/aadk/lib/observepb"
)

// Client wraps an ObserveServiceClient connection.
type Client struct {
	conn *grpc.ClientConn
	rpc  observepb.ObserveServiceClient
}

// Dial opens a client connection to the Observe service at addr.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: observepb.NewObserveServiceClient(conn)}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// ListRuns lists run records matching filter, paginated.
func (c *Client) ListRuns(ctx context.Context, filter *observepb.RunFilter, pagination *observepb.Pagination) ([]*observepb.RunRecord, *observepb.PageInfo, error) {
	resp, err := c.rpc.ListRuns(ctx, &observepb.ListRunsRequest{Filter: filter, Pagination: pagination})
	if err != nil {
		return nil, nil, err
	}
	return resp.GetRuns(), resp.GetPage(), nil
}

// ListRunOutputs lists outputs for a run, paginated, along with the
// run's current output summary.
func (c *Client) ListRunOutputs(ctx context.Context, runID string, filter *observepb.RunOutputFilter, pagination *observepb.Pagination) ([]*observepb.RunOutput, *observepb.PageInfo, *observepb.RunOutputSummary, error) {
	resp, err := c.rpc.ListRunOutputs(ctx, &observepb.ListRunOutputsRequest{RunId: runID, Filter: filter, Pagination: pagination})
	if err != nil {
		return nil, nil, nil, err
	}
	return resp.GetOutputs(), resp.GetPage(), resp.GetSummary(), nil
}

// UpsertRun creates or merges a run record per spec §4.4's merge rules.
func (c *Client) UpsertRun(ctx context.Context, req *observepb.UpsertRunRequest) (*observepb.RunRecord, error) {
	resp, err := c.rpc.UpsertRun(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.GetRun(), nil
}

// UpsertRunOutputs registers or updates a run's outputs, returning its
// recomputed output summary.
func (c *Client) UpsertRunOutputs(ctx context.Context, runID string, outputs []*observepb.RunOutput) (*observepb.RunOutputSummary, error) {
	resp, err := c.rpc.UpsertRunOutputs(ctx, &observepb.UpsertRunOutputsRequest{RunId: runID, Outputs: outputs})
	if err != nil {
		return nil, err
	}
	return resp.GetSummary(), nil
}

// ExportSupportBundle starts a support bundle export job, returning the
// backing job id and the bundle's eventual output path.
func (c *Client) ExportSupportBundle(ctx context.Context, req *observepb.ExportSupportBundleRequest) (string, string, error) {
	resp, err := c.rpc.ExportSupportBundle(ctx, req)
	if err != nil {
		return "", "", err
	}
	return resp.GetJobId(), resp.GetOutputPath(), nil
}

// ExportEvidenceBundle starts an evidence bundle export job for a run
// identified by run id or correlation id.
func (c *Client) ExportEvidenceBundle(ctx context.Context, runID, correlationID string) (string, string, error) {
	resp, err := c.rpc.ExportEvidenceBundle(ctx, &observepb.ExportEvidenceBundleRequest{RunId: runID, CorrelationId: correlationID})
	if err != nil {
		return "", "", err
	}
	return resp.GetJobId(), resp.GetOutputPath(), nil
}

// ReloadState asks the Observe service to reload its persisted state
// from disk, reporting whether the reload succeeded.
func (c *Client) ReloadState(ctx context.Context) (bool, uint32, error) {
	resp, err := c.rpc.ReloadState(ctx, &observepb.ReloadStateRequest{})
	if err != nil {
		return false, 0, err
	}
	return resp.GetOk(), resp.GetItemCount(), nil
}

// Raw exposes the underlying generated client for call sites that need
// full control (e.g. custom CallOptions).
func (c *Client) Raw() observepb.ObserveServiceClient {
	return c.rpc
}
