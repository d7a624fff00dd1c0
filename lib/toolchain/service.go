package toolchain

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/aaderrors"
	"github.com/androiddevkit/aadk/lib/cancelwatch"
	"github.com/androiddevkit/aadk/lib/commonpb"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/publish"
	"github.com/androiddevkit/aadk/lib/toolchainpb"
)

// phaseDelay paces the simulated download/verify/extract/register
// phases so progress events are observable without a real toolchain
// download, per the Non-goal carve-out in spec §4.7.
const phaseDelay = 200 * time.Millisecond

// Service implements toolchainpb.ToolchainServiceServer.
type Service struct {
	toolchainpb.UnimplementedToolchainServiceServer

	store *Store
	jobs  *jobclient.Client
}

func NewService(store *Store, jobs *jobclient.Client) *Service {
	return &Service{store: store, jobs: jobs}
}

func (s *Service) claimJob(ctx context.Context, jobType, jobID string) (string, error) {
	if jobID != "" {
		return jobID, nil
	}
	return s.jobs.StartJob(ctx, jobType, "", "", "")
}

func (s *Service) Install(ctx context.Context, req *toolchainpb.InstallRequest) (*toolchainpb.InstallResponse, error) {
	jobID, err := s.claimJob(ctx, "toolchain.install", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting toolchain.install job")
	}
	go s.runPhases(context.Background(), jobID,
		[]string{"downloading", "verifying-checksum", "extracting", "registering"},
		func() error {
			return s.store.Upsert(req.GetToolchainId(), req.GetVersion(), req.GetHost(), "installed")
		},
		func(err error) *aaderrors.ErrorDetail {
			return aaderrors.New(aaderrors.CodeToolchainInstallFailed, "toolchain install failed", err.Error(), jobID)
		},
	)
	return &toolchainpb.InstallResponse{JobId: jobID, ToolchainId: req.GetToolchainId()}, nil
}

func (s *Service) Verify(ctx context.Context, req *toolchainpb.VerifyRequest) (*toolchainpb.VerifyResponse, error) {
	jobID, err := s.claimJob(ctx, "toolchain.verify", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting toolchain.verify job")
	}
	go s.runPhases(context.Background(), jobID,
		[]string{"checking-manifest", "verifying-checksum"},
		func() error {
			return s.store.Upsert(req.GetToolchainId(), "", "", "verified")
		},
		func(err error) *aaderrors.ErrorDetail {
			return aaderrors.New(aaderrors.CodeToolchainVerifyFailed, "toolchain verify failed", err.Error(), jobID)
		},
	)
	return &toolchainpb.VerifyResponse{JobId: jobID, ToolchainId: req.GetToolchainId()}, nil
}

func (s *Service) Update(ctx context.Context, req *toolchainpb.UpdateRequest) (*toolchainpb.UpdateResponse, error) {
	jobID, err := s.claimJob(ctx, "toolchain.update", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting toolchain.update job")
	}
	go s.runPhases(context.Background(), jobID,
		[]string{"downloading", "verifying-checksum", "extracting", "registering"},
		func() error {
			return s.store.Upsert(req.GetToolchainId(), req.GetVersion(), "", "updated")
		},
		func(err error) *aaderrors.ErrorDetail {
			return aaderrors.New(aaderrors.CodeToolchainUpdateFailed, "toolchain update failed", err.Error(), jobID)
		},
	)
	return &toolchainpb.UpdateResponse{JobId: jobID, ToolchainId: req.GetToolchainId()}, nil
}

func (s *Service) Uninstall(ctx context.Context, req *toolchainpb.UninstallRequest) (*toolchainpb.UninstallResponse, error) {
	jobID, err := s.claimJob(ctx, "toolchain.uninstall", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting toolchain.uninstall job")
	}
	go s.runPhases(context.Background(), jobID,
		[]string{"unregistering", "deleting-files"},
		func() error {
			return s.store.Remove(req.GetToolchainId())
		},
		func(err error) *aaderrors.ErrorDetail {
			return aaderrors.New(aaderrors.CodeToolchainUninstallFailed, "toolchain uninstall failed", err.Error(), jobID)
		},
	)
	return &toolchainpb.UninstallResponse{JobId: jobID, ToolchainId: req.GetToolchainId()}, nil
}

func (s *Service) CleanupCache(ctx context.Context, req *toolchainpb.CleanupCacheRequest) (*toolchainpb.CleanupCacheResponse, error) {
	jobID, err := s.claimJob(ctx, "toolchain.cleanup_cache", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting toolchain.cleanup_cache job")
	}
	go s.runPhases(context.Background(), jobID,
		[]string{"scanning-cache", "reclaiming-space"},
		func() error { return nil },
		func(err error) *aaderrors.ErrorDetail {
			return aaderrors.New(aaderrors.CodeToolchainCacheCleanupFailed, "toolchain cache cleanup failed", err.Error(), jobID)
		},
	)
	return &toolchainpb.CleanupCacheResponse{JobId: jobID}, nil
}

// runPhases is the shared worker loop every toolchain operation drives:
// publish Running, step through phases with monotonic Progress and a
// log line each, honor cancellation between phases, commit the store
// mutation, and report the terminal event (spec §4.7).
func (s *Service) runPhases(ctx context.Context, jobID string, phases []string, commit func() error, onFailure func(error) *aaderrors.ErrorDetail) {
	rpc := s.jobs.Raw()
	sig := cancelwatch.Watch(ctx, rpc, jobID)

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("toolchain: publish running failed")
	}
	publish.Logf(ctx, rpc, jobID, "toolchain: starting %d phase(s)\n", len(phases))

	for i, phase := range phases {
		select {
		case <-sig.Done():
			return
		case <-time.After(phaseDelay):
		}

		percent := uint32((i + 1) * 100 / len(phases))
		publish.Progress(ctx, rpc, jobID, percent, phase)
		publish.Logf(ctx, rpc, jobID, "toolchain: %s complete (%d%%)\n", phase, percent)
	}

	if sig.Raised() {
		return
	}

	if err := commit(); err != nil {
		detail := onFailure(err)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		return
	}

	publish.Completed(ctx, rpc, jobID, "toolchain operation finished successfully")
}
