// Package client is a thin typed wrapper around
// projectpb.ProjectServiceClient, giving the workflow orchestrator a
// Go-native call surface onto the Project collaborator worker.
package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/androiddevkit/aadk/lib/projectpb"
)

type Client struct {
	conn *grpc.ClientConn
	rpc  projectpb.ProjectServiceClient
}

func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: projectpb.NewProjectServiceClient(conn)}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// Create starts a project.create job, returning its job id and the
// newly minted project id.
func (c *Client) Create(ctx context.Context, req *projectpb.CreateRequest) (string, string, error) {
	resp, err := c.rpc.Create(ctx, req)
	if err != nil {
		return "", "", err
	}
	return resp.GetJobId(), resp.GetProjectId(), nil
}

// Open resolves an existing project directory to a project id.
func (c *Client) Open(ctx context.Context, req *projectpb.OpenRequest) (string, error) {
	resp, err := c.rpc.Open(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.GetProjectId(), nil
}

func (c *Client) Raw() projectpb.ProjectServiceClient { return c.rpc }
