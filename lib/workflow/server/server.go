// Package server implements workflowpb.WorkflowServiceServer as a thin
// RPC entrypoint delegating to lib/workflow's Orchestrator.
package server

import (
	"context"

	"github.com/androiddevkit/aadk/lib/workflow"
	"github.com/androiddevkit/aadk/lib/workflowpb"
)

type Server struct {
	workflowpb.UnimplementedWorkflowServiceServer

	orchestrator *workflow.Orchestrator
}

func New(orchestrator *workflow.Orchestrator) *Server {
	return &Server{orchestrator: orchestrator}
}

func (s *Server) RunPipeline(ctx context.Context, req *workflowpb.RunPipelineRequest) (*workflowpb.RunPipelineResponse, error) {
	return s.orchestrator.RunPipeline(ctx, req)
}
