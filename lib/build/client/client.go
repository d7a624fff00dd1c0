// Package client is a thin typed wrapper around
// buildpb.BuildServiceClient, giving the workflow orchestrator a
// Go-native call surface onto the Build collaborator worker.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/androiddevkit/aadk/lib/buildpb"
)

type Client struct {
	conn *grpc.ClientConn
	rpc  buildpb.BuildServiceClient
}

func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: buildpb.NewBuildServiceClient(conn)}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// Run starts a build.run job, returning its job id and the newly
// minted build id.
func (c *Client) Run(ctx context.Context, req *buildpb.RunRequest) (string, string, error) {
	resp, err := c.rpc.Run(ctx, req)
	if err != nil {
		return "", "", err
	}
	return resp.GetJobId(), resp.GetBuildId(), nil
}

func (c *Client) Raw() buildpb.BuildServiceClient { return c.rpc }
