// Package client is a thin typed wrapper around
// toolchainpb.ToolchainServiceClient, giving the workflow orchestrator
// a Go-native call surface onto the Toolchain collaborator worker.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/androiddevkit/aadk/lib/toolchainpb"
)

type Client struct {
	conn *grpc.ClientConn
	rpc  toolchainpb.ToolchainServiceClient
}

func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: toolchainpb.NewToolchainServiceClient(conn)}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// Verify starts a toolchain.verify job, returning its job id.
func (c *Client) Verify(ctx context.Context, req *toolchainpb.VerifyRequest) (string, error) {
	resp, err := c.rpc.Verify(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.GetJobId(), nil
}

func (c *Client) Raw() toolchainpb.ToolchainServiceClient { return c.rpc }
