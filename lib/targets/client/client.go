// Package client is a thin typed wrapper around
// targetpb.TargetsServiceClient, giving the workflow orchestrator a
// Go-native call surface onto the Targets collaborator worker.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/androiddevkit/aadk/lib/targetpb"
)

type Client struct {
	conn *grpc.ClientConn
	rpc  targetpb.TargetsServiceClient
}

func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: targetpb.NewTargetsServiceClient(conn)}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// InstallApk starts a targets.install job, returning its job id.
func (c *Client) InstallApk(ctx context.Context, req *targetpb.InstallApkRequest) (string, error) {
	resp, err := c.rpc.InstallApk(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.GetJobId(), nil
}

// Launch starts a targets.launch job, returning its job id.
func (c *Client) Launch(ctx context.Context, req *targetpb.LaunchRequest) (string, error) {
	resp, err := c.rpc.Launch(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.GetJobId(), nil
}

func (c *Client) Raw() targetpb.TargetsServiceClient { return c.rpc }
