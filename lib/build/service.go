package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/aaderrors"
	"github.com/androiddevkit/aadk/lib/buildpb"
	"github.com/androiddevkit/aadk/lib/cancelwatch"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	observeclient "github.com/androiddevkit/aadk/lib/observe/client"
	"github.com/androiddevkit/aadk/lib/observepb"
	"github.com/androiddevkit/aadk/lib/publish"
)

// phaseDelay paces the simulated Gradle invocation phases, per the
// Non-goal carve-out in spec §4.7 (no real Gradle process supervision).
const phaseDelay = 250 * time.Millisecond

// Service implements buildpb.BuildServiceServer.
type Service struct {
	buildpb.UnimplementedBuildServiceServer

	store   *Store
	jobs    *jobclient.Client
	observe *observeclient.Client
}

func NewService(store *Store, jobs *jobclient.Client, observe *observeclient.Client) *Service {
	return &Service{store: store, jobs: jobs, observe: observe}
}

func (s *Service) claimJob(ctx context.Context, jobType, jobID string) (string, error) {
	if jobID != "" {
		return jobID, nil
	}
	return s.jobs.StartJob(ctx, jobType, "", "", "")
}

// Run drives a simulated Gradle build: preflight, compiling, packaging,
// finalizing, producing one apk artifact registered against Observe
// before the job is marked Completed (spec §4.7).
func (s *Service) Run(ctx context.Context, req *buildpb.RunRequest) (*buildpb.RunResponse, error) {
	jobID, err := s.claimJob(ctx, "build.run", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting build.run job")
	}

	buildID := ids.New()
	go s.runBuild(context.Background(), jobID, buildID, req)

	return &buildpb.RunResponse{JobId: jobID, BuildId: buildID}, nil
}

func (s *Service) runBuild(ctx context.Context, jobID, buildID string, req *buildpb.RunRequest) {
	rpc := s.jobs.Raw()
	sig := cancelwatch.Watch(ctx, rpc, jobID)

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("build: publish running failed")
	}
	publish.Logf(ctx, rpc, jobID, "build: running %d task(s) for variant %q\n", len(req.GetTasks()), req.GetBuildVariant())

	phases := []string{"preflight", "compiling", "packaging", "finalizing"}
	for i, phase := range phases {
		select {
		case <-sig.Done():
			return
		case <-time.After(phaseDelay):
		}

		percent := uint32((i + 1) * 100 / len(phases))
		publish.Progress(ctx, rpc, jobID, percent, phase)
		publish.Logf(ctx, rpc, jobID, "build: %s complete (%d%%)\n", phase, percent)
	}

	if sig.Raised() {
		return
	}

	apkPath, err := writeApk(buildID, req.GetBuildVariant())
	if err != nil {
		detail := aaderrors.New(aaderrors.CodeBuildFailed, "build packaging failed", err.Error(), jobID)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		return
	}

	if err := s.store.Upsert(buildID, req.GetProjectId(), req.GetBuildVariant(), req.GetModule(), req.GetVariantName(), apkPath, "succeeded", ids.NowMillis()); err != nil {
		detail := aaderrors.New(aaderrors.CodeBuildFailed, "build record persist failed", err.Error(), jobID)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		return
	}

	runID := req.GetRunId()
	if runID != "" {
		_, err := s.observe.UpsertRunOutputs(ctx, runID, []*observepb.RunOutput{{
			RunId:      runID,
			Kind:       observepb.RunOutputKindArtifact,
			OutputType: "apk",
			Path:       apkPath,
			Label:      fmt.Sprintf("%s-%s", req.GetModule(), req.GetBuildVariant()),
			JobId:      jobID,
		}})
		if err != nil {
			logrus.WithError(err).WithField("run_id", runID).Warn("build: UpsertRunOutputs failed, continuing")
		}
	}

	publish.Completed(ctx, rpc, jobID, "build finished successfully")
}

// writeApk drops a placeholder APK file under the shared build-outputs
// directory and returns its path. No real Gradle invocation runs; the
// file stands in for the artifact a real build would produce.
func writeApk(buildID, variant string) (string, error) {
	dir, err := aadkdir.BuildOutputsDir()
	if err != nil {
		return "", err
	}
	if variant == "" {
		variant = "debug"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.apk", buildID, variant))
	if err := os.WriteFile(path, []byte("aadk-simulated-apk\n"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
