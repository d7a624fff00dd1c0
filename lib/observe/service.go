package observe

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/androiddevkit/aadk/lib/aaderrors"
	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/commonpb"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/observepb"
)

// Config bundles the retention knobs from spec §6's environment table.
type Config struct {
	BundleRetentionDays int
	BundleMax           int
	TmpRetentionHours   int
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{BundleRetentionDays: 30, BundleMax: 50, TmpRetentionHours: 24}
}

// Service implements observepb.ObserveServiceServer against a Registry,
// using a Job service client to allocate and drive the sub-jobs that
// back ExportSupportBundle/ExportEvidenceBundle.
type Service struct {
	observepb.UnimplementedObserveServiceServer

	registry *Registry
	jobs     *jobclient.Client
	cfg      Config
}

// NewService constructs a Service. jobs may be nil only in tests that
// never call the export RPCs.
func NewService(registry *Registry, jobs *jobclient.Client, cfg Config) *Service {
	return &Service{registry: registry, jobs: jobs, cfg: cfg}
}

func toStatusErr(err error) error {
	if err == nil {
		return nil
	}
	if s, ok := status.FromError(err); ok {
		return s.Err()
	}
	return aaderrors.FromTraceError(err, "").AsGRPCStatus()
}

func (s *Service) ListRuns(ctx context.Context, req *observepb.ListRunsRequest) (*observepb.ListRunsResponse, error) {
	runs, page, err := s.registry.ListRuns(req.GetFilter(), req.GetPagination())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &observepb.ListRunsResponse{Runs: runs, Page: page}, nil
}

func (s *Service) ListRunOutputs(ctx context.Context, req *observepb.ListRunOutputsRequest) (*observepb.ListRunOutputsResponse, error) {
	outputs, page, summary, err := s.registry.ListRunOutputs(req.GetRunId(), req.GetFilter(), req.GetPagination())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &observepb.ListRunOutputsResponse{Outputs: outputs, Page: page, Summary: summary}, nil
}

func (s *Service) UpsertRun(ctx context.Context, req *observepb.UpsertRunRequest) (*observepb.UpsertRunResponse, error) {
	run, err := s.registry.UpsertRun(req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &observepb.UpsertRunResponse{Run: run}, nil
}

func (s *Service) UpsertRunOutputs(ctx context.Context, req *observepb.UpsertRunOutputsRequest) (*observepb.UpsertRunOutputsResponse, error) {
	summary, err := s.registry.UpsertRunOutputs(req.GetRunId(), req.GetOutputs())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &observepb.UpsertRunOutputsResponse{Summary: summary}, nil
}

func (s *Service) ReloadState(ctx context.Context, req *observepb.ReloadStateRequest) (*observepb.ReloadStateResponse, error) {
	count, err := s.registry.Load()
	if err != nil {
		return &observepb.ReloadStateResponse{Ok: false, Detail: err.Error()}, nil
	}
	return &observepb.ReloadStateResponse{Ok: true, ItemCount: uint32(count)}, nil
}

// ExportSupportBundle allocates a sub-job, upserts a fresh running
// RunRecord, and spawns an async archiver that assembles the bundle
// described by spec §4.4.
func (s *Service) ExportSupportBundle(ctx context.Context, req *observepb.ExportSupportBundleRequest) (*observepb.ExportSupportBundleResponse, error) {
	if s.jobs == nil {
		return nil, status.Error(codes.FailedPrecondition, "observe service has no job client configured")
	}

	runID := ids.RunOrNew(req.GetRunId())
	correlationID := ids.CorrelationOrRun(req.GetCorrelationId(), runID)

	jobID, err := s.jobs.StartJob(ctx, "observe.support_bundle", req.GetProjectId(), req.GetTargetId(), req.GetToolchainSetId())
	if err != nil {
		return nil, toStatusErr(err)
	}

	outputPath, err := bundleOutputPath("support", runID)
	if err != nil {
		return nil, toStatusErr(err)
	}

	if _, err := s.registry.UpsertRun(&observepb.UpsertRunRequest{
		RunId:          runID,
		CorrelationId:  correlationID,
		ProjectId:      req.GetProjectId(),
		TargetId:       req.GetTargetId(),
		ToolchainSetId: req.GetToolchainSetId(),
		StartedAt:      commonpb.WrapMillis(ids.NowMillis()),
		Result:         "running",
		JobIds:         []string{jobID},
	}); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("observe: best-effort UpsertRun failed before support bundle export")
	}

	go s.runSupportBundleExport(context.Background(), req, jobID, runID, outputPath)

	return &observepb.ExportSupportBundleResponse{JobId: jobID, OutputPath: outputPath}, nil
}

// ExportEvidenceBundle looks up a run by run_id or correlation_id and
// spawns an async archiver that writes the minimal evidence bundle.
func (s *Service) ExportEvidenceBundle(ctx context.Context, req *observepb.ExportEvidenceBundleRequest) (*observepb.ExportEvidenceBundleResponse, error) {
	if s.jobs == nil {
		return nil, status.Error(codes.FailedPrecondition, "observe service has no job client configured")
	}

	run, ok := s.lookupRun(req.GetRunId(), req.GetCorrelationId())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no run matches run_id=%q correlation_id=%q", req.GetRunId(), req.GetCorrelationId())
	}

	jobID, err := s.jobs.StartJob(ctx, "observe.evidence_bundle", run.GetProjectId(), run.GetTargetId(), run.GetToolchainSetId())
	if err != nil {
		return nil, toStatusErr(err)
	}

	outputPath, err := bundleOutputPath("evidence", run.GetRunId())
	if err != nil {
		return nil, toStatusErr(err)
	}

	go s.runEvidenceBundleExport(context.Background(), run, jobID, outputPath)

	return &observepb.ExportEvidenceBundleResponse{JobId: jobID, OutputPath: outputPath}, nil
}

func (s *Service) lookupRun(runID, correlationID string) (*observepb.RunRecord, bool) {
	if id := ids.Normalize(runID); id != "" {
		if run, ok := s.registry.GetRun(id); ok {
			return run, true
		}
	}
	if id := ids.Normalize(correlationID); id != "" {
		if run, ok := s.registry.FindRunByCorrelation(id); ok {
			return run, true
		}
	}
	return nil, false
}

func bundleOutputPath(kind, runID string) (string, error) {
	return aadkdir.BundlePath(fmt.Sprintf("%s-%s.zip", kind, runID))
}
