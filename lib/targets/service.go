package targets

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/aaderrors"
	"github.com/androiddevkit/aadk/lib/cancelwatch"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/publish"
	"github.com/androiddevkit/aadk/lib/targetpb"
)

// phaseDelay paces the simulated adb/Cuttlefish phases, per the
// Non-goal carve-out in spec §4.7 (no real adb or image resolution).
const phaseDelay = 200 * time.Millisecond

// Service implements targetpb.TargetsServiceServer.
type Service struct {
	targetpb.UnimplementedTargetsServiceServer

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

func (s *Service) InstallApk(ctx context.Context, req *targetpb.InstallApkRequest) (*targetpb.InstallApkResponse, error) {
	if req.GetTargetId() == "" {
		return nil, aaderrors.New(aaderrors.CodeTargetNotReachable, "target id is required", "", req.GetJobId()).AsGRPCStatus()
	}
	jobID, err := s.claimJob(ctx, "targets.install", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting targets.install job")
	}
	go s.runPhases(context.Background(), jobID, []string{"pushing-apk", "installing", "verifying-install"},
		func() error {
			return s.store.Upsert(req.GetTargetId(), "", req.GetApkPath(), "apk-installed", ids.NowMillis())
		},
		aaderrors.CodeTargetNotReachable, "targets install failed",
	)
	return &targetpb.InstallApkResponse{JobId: jobID}, nil
}

func (s *Service) Launch(ctx context.Context, req *targetpb.LaunchRequest) (*targetpb.LaunchResponse, error) {
	if req.GetTargetId() == "" {
		return nil, aaderrors.New(aaderrors.CodeTargetNotReachable, "target id is required", "", req.GetJobId()).AsGRPCStatus()
	}
	jobID, err := s.claimJob(ctx, "targets.launch", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting targets.launch job")
	}
	go s.runPhases(context.Background(), jobID, []string{"resolving-activity", "starting-process"},
		func() error {
			return s.store.Upsert(req.GetTargetId(), req.GetApplicationId(), "", "running", ids.NowMillis())
		},
		aaderrors.CodeTargetNotReachable, "targets launch failed",
	)
	return &targetpb.LaunchResponse{JobId: jobID}, nil
}

func (s *Service) Stop(ctx context.Context, req *targetpb.StopRequest) (*targetpb.StopResponse, error) {
	if req.GetTargetId() == "" {
		return nil, aaderrors.New(aaderrors.CodeTargetNotReachable, "target id is required", "", req.GetJobId()).AsGRPCStatus()
	}
	jobID, err := s.claimJob(ctx, "targets.stop", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting targets.stop job")
	}
	go s.runPhases(context.Background(), jobID, []string{"stopping-process"},
		func() error {
			return s.store.Upsert(req.GetTargetId(), req.GetApplicationId(), "", "stopped", ids.NowMillis())
		},
		aaderrors.CodeTargetNotReachable, "targets stop failed",
	)
	return &targetpb.StopResponse{JobId: jobID}, nil
}

func (s *Service) CuttlefishInstall(ctx context.Context, req *targetpb.CuttlefishInstallRequest) (*targetpb.CuttlefishInstallResponse, error) {
	jobID, err := s.claimJob(ctx, "targets.cuttlefish.install", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting targets.cuttlefish.install job")
	}
	go s.runPhases(context.Background(), jobID, []string{"resolving-image", "fetching-image", "provisioning-device"},
		func() error {
			return s.store.Upsert(req.GetTargetId(), "", "", "cuttlefish-installed", ids.NowMillis())
		},
		aaderrors.CodeTargetNotReachable, "cuttlefish install failed",
	)
	return &targetpb.CuttlefishInstallResponse{JobId: jobID}, nil
}

func (s *Service) CuttlefishStart(ctx context.Context, req *targetpb.CuttlefishStartRequest) (*targetpb.CuttlefishStartResponse, error) {
	jobID, err := s.claimJob(ctx, "targets.cuttlefish.start", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting targets.cuttlefish.start job")
	}
	go s.runPhases(context.Background(), jobID, []string{"booting-device", "waiting-for-boot-complete"},
		func() error {
			return s.store.Upsert(req.GetTargetId(), "", "", "cuttlefish-running", ids.NowMillis())
		},
		aaderrors.CodeTargetNotReachable, "cuttlefish start failed",
	)
	return &targetpb.CuttlefishStartResponse{JobId: jobID}, nil
}

func (s *Service) CuttlefishStop(ctx context.Context, req *targetpb.CuttlefishStopRequest) (*targetpb.CuttlefishStopResponse, error) {
	jobID, err := s.claimJob(ctx, "targets.cuttlefish.stop", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting targets.cuttlefish.stop job")
	}
	go s.runPhases(context.Background(), jobID, []string{"shutting-down-device"},
		func() error {
			return s.store.Upsert(req.GetTargetId(), "", "", "cuttlefish-stopped", ids.NowMillis())
		},
		aaderrors.CodeTargetNotReachable, "cuttlefish stop failed",
	)
	return &targetpb.CuttlefishStopResponse{JobId: jobID}, nil
}

// runPhases is the shared worker loop every targets operation drives,
// mirroring lib/toolchain's runPhases shape.
func (s *Service) runPhases(ctx context.Context, jobID string, phases []string, commit func() error, failureCode aaderrors.Code, failureMsg string) {
	rpc := s.jobs.Raw()
	sig := cancelwatch.Watch(ctx, rpc, jobID)

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("targets: publish running failed")
	}
	publish.Logf(ctx, rpc, jobID, "targets: starting %d phase(s)\n", len(phases))

	for i, phase := range phases {
		select {
		case <-sig.Done():
			return
		case <-time.After(phaseDelay):
		}

		percent := uint32((i + 1) * 100 / len(phases))
		publish.Progress(ctx, rpc, jobID, percent, phase)
		publish.Logf(ctx, rpc, jobID, "targets: %s complete (%d%%)\n", phase, percent)
	}

	if sig.Raised() {
		return
	}

	if err := commit(); err != nil {
		detail := aaderrors.New(failureCode, failureMsg, err.Error(), jobID)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		return
	}

	publish.Completed(ctx, rpc, jobID, "targets operation finished successfully")
}
