package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/aaderrors"
	"github.com/androiddevkit/aadk/lib/cancelwatch"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	observeclient "github.com/androiddevkit/aadk/lib/observe/client"
	"github.com/androiddevkit/aadk/lib/observepb"
	"github.com/androiddevkit/aadk/lib/projectpb"
	"github.com/androiddevkit/aadk/lib/publish"
)

// phaseDelay paces the simulated template-resolution/scaffolding phases,
// per the Non-goal carve-out in spec §4.7 (no real template engine).
const phaseDelay = 200 * time.Millisecond

// Service implements projectpb.ProjectServiceServer.
type Service struct {
	projectpb.UnimplementedProjectServiceServer

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

// Create expands req's template into a new project directory skeleton
// and records it, running the scaffold asynchronously behind the
// returned job id (spec §4.7).
func (s *Service) Create(ctx context.Context, req *projectpb.CreateRequest) (*projectpb.CreateResponse, error) {
	jobID, err := s.claimJob(ctx, "project.create", req.GetJobId())
	if err != nil {
		return nil, aaderrors.Unavailable(err, "starting project.create job")
	}

	projectID := ids.New()
	projectPath := req.GetProjectPath()
	projectName := req.GetProjectName()
	if projectName == "" {
		projectName = filepath.Base(projectPath)
	}

	go s.runScaffold(context.Background(), jobID, req.GetRunId(), projectID, projectPath, projectName, req.GetTemplateId())

	return &projectpb.CreateResponse{JobId: jobID, ProjectId: projectID}, nil
}

// Open resolves an existing project directory to a project id,
// registering one on first sight rather than erroring: spec §4.6
// treats "project_path without project_id" as an open_project step,
// not as a guarantee the project was previously created by this
// worker.
func (s *Service) Open(ctx context.Context, req *projectpb.OpenRequest) (*projectpb.OpenResponse, error) {
	projectPath := req.GetProjectPath()
	if projectID, ok := s.store.FindByPath(projectPath); ok {
		return &projectpb.OpenResponse{ProjectId: projectID}, nil
	}

	projectID := ids.New()
	if err := s.store.Insert(projectID, filepath.Base(projectPath), projectPath, "", ids.NowMillis()); err != nil {
		return nil, aaderrors.Unavailable(err, "recording opened project")
	}
	return &projectpb.OpenResponse{ProjectId: projectID}, nil
}

func (s *Service) runScaffold(ctx context.Context, jobID, runID, projectID, projectPath, projectName, templateID string) {
	rpc := s.jobs.Raw()
	sig := cancelwatch.Watch(ctx, rpc, jobID)

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("project: publish running failed")
	}
	publish.Logf(ctx, rpc, jobID, "project: expanding template %q into %s\n", templateID, projectPath)

	phases := []string{"resolving-template", "scaffolding-files", "writing-manifest"}
	for i, phase := range phases {
		select {
		case <-sig.Done():
			return
		case <-time.After(phaseDelay):
		}

		percent := uint32((i + 1) * 100 / len(phases))
		publish.Progress(ctx, rpc, jobID, percent, phase)
		publish.Logf(ctx, rpc, jobID, "project: %s complete (%d%%)\n", phase, percent)
	}

	if sig.Raised() {
		return
	}

	if err := writeSkeleton(projectPath, projectName, templateID); err != nil {
		detail := aaderrors.New(aaderrors.CodeProjectCreateFailed, "project scaffold failed", err.Error(), jobID)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		return
	}

	if err := s.store.Insert(projectID, projectName, projectPath, templateID, ids.NowMillis()); err != nil {
		detail := aaderrors.New(aaderrors.CodeProjectCreateFailed, "project record persist failed", err.Error(), jobID)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		return
	}

	if runID != "" {
		_, err := s.observe.UpsertRunOutputs(ctx, runID, []*observepb.RunOutput{{
			RunId:      runID,
			Kind:       observepb.RunOutputKindArtifact,
			OutputType: "project",
			Path:       projectPath,
			Label:      projectName,
			JobId:      jobID,
		}})
		if err != nil {
			logrus.WithError(err).WithField("run_id", runID).Warn("project: UpsertRunOutputs failed, continuing")
		}
	}

	publish.Completed(ctx, rpc, jobID, "project scaffold finished successfully")
}

// writeSkeleton lays down a minimal Gradle project skeleton under dir.
// The content is illustrative, not a real template engine: templateID
// only selects the application id embedded in the manifest.
func writeSkeleton(dir, name, templateID string) error {
	appID := fmt.Sprintf("com.example.%s", templateID)
	if templateID == "" {
		appID = "com.example.app"
	}

	files := map[string]string{
		"settings.gradle.kts": fmt.Sprintf("rootProject.name = %q\ninclude(\":app\")\n", name),
		"build.gradle.kts":    "plugins {\n    id(\"com.android.application\") version \"8.1.0\" apply false\n}\n",
		"app/build.gradle.kts": fmt.Sprintf("plugins {\n    id(\"com.android.application\")\n}\n\nandroid {\n    namespace = %q\n}\n", appID),
		"app/src/main/AndroidManifest.xml": fmt.Sprintf(
			"<manifest xmlns:android=\"http://schemas.android.com/apk/res/android\" package=%q>\n</manifest>\n", appID),
	}

	for rel, content := range files {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
