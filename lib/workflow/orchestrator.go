package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/aaderrors"
	buildclient "github.com/androiddevkit/aadk/lib/build/client"
	"github.com/androiddevkit/aadk/lib/buildpb"
	"github.com/androiddevkit/aadk/lib/cancelwatch"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	observeclient "github.com/androiddevkit/aadk/lib/observe/client"
	"github.com/androiddevkit/aadk/lib/observepb"
	projectclient "github.com/androiddevkit/aadk/lib/project/client"
	"github.com/androiddevkit/aadk/lib/projectpb"
	"github.com/androiddevkit/aadk/lib/publish"
	targetsclient "github.com/androiddevkit/aadk/lib/targets/client"
	"github.com/androiddevkit/aadk/lib/targetpb"
	toolchainclient "github.com/androiddevkit/aadk/lib/toolchain/client"
	"github.com/androiddevkit/aadk/lib/toolchainpb"
	"github.com/androiddevkit/aadk/lib/workflowpb"
)

// Collaborators bundles the typed clients the orchestrator drives each
// pipeline step against.
type Collaborators struct {
	Project   *projectclient.Client
	Toolchain *toolchainclient.Client
	Build     *buildclient.Client
	Targets   *targetsclient.Client
}

// Orchestrator implements RunPipeline's asynchronous interpreter.
type Orchestrator struct {
	jobs         *jobclient.Client
	observe      *observeclient.Client
	collaborators Collaborators
}

func NewOrchestrator(jobs *jobclient.Client, observe *observeclient.Client, collaborators Collaborators) *Orchestrator {
	return &Orchestrator{jobs: jobs, observe: observe, collaborators: collaborators}
}

// pipelineState threads data forward between steps, per spec §4.6
// step 7.
type pipelineState struct {
	projectID     string
	apkPath       string
	childJobIDs   []string
	outputs       []string
}

// RunPipeline claims or reuses a parent job id, infers (or reads
// explicit) steps, and drives them asynchronously to completion.
func (o *Orchestrator) RunPipeline(ctx context.Context, req *workflowpb.RunPipelineRequest) (*workflowpb.RunPipelineResponse, error) {
	jobID := req.GetJobId()
	if jobID == "" {
		started, err := o.jobs.StartJob(ctx, "workflow.pipeline", req.GetProjectId(), req.GetTargetId(), req.GetToolchainSetId())
		if err != nil {
			return nil, aaderrors.Unavailable(err, "starting workflow.pipeline job")
		}
		jobID = started
	}

	runID := req.GetRunId()
	if runID == "" {
		runID = ids.New()
	}
	correlationID := req.GetCorrelationId()
	if correlationID == "" {
		correlationID = runID
	}

	steps := InferSteps(req)

	if _, err := o.observe.UpsertRun(ctx, &observepb.UpsertRunRequest{
		RunId:          runID,
		CorrelationId:  correlationID,
		ProjectId:      req.GetProjectId(),
		TargetId:       req.GetTargetId(),
		ToolchainSetId: req.GetToolchainSetId(),
		StartedAt:      commonpb.WrapMillis(ids.NowMillis()),
		Result:         "running",
		JobIds:         []string{jobID},
	}); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("workflow: UpsertRun at start failed, continuing")
	}

	go o.run(context.Background(), jobID, runID, correlationID, req, steps)

	return &workflowpb.RunPipelineResponse{
		RunId:     runID,
		JobId:     jobID,
		ProjectId: req.GetProjectId(),
	}, nil
}

func (o *Orchestrator) run(ctx context.Context, jobID, runID, correlationID string, req *workflowpb.RunPipelineRequest, steps []StepDescriptor) {
	rpc := o.jobs.Raw()
	sig := cancelwatch.Watch(ctx, rpc, jobID)

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("workflow: publish running failed")
	}
	publish.Logf(ctx, rpc, jobID, "workflow: running %d step(s)\n", len(steps))

	state := &pipelineState{projectID: req.GetProjectId(), apkPath: req.GetApkPath()}
	total := len(steps)

	var failure error
	for i, step := range steps {
		if sig.Raised() {
			o.finishCancelled(ctx, jobID, runID, state)
			return
		}

		percent := uint32((i + 1) * 100 / max1(total))
		publish.Progress(ctx, rpc, jobID, percent, string(step.Kind))
		publish.Logf(ctx, rpc, jobID, "workflow: starting step %q (%d/%d)\n", step.Kind, i+1, total)

		stepCtx, stopStep := context.WithCancel(ctx)
		go func() {
			select {
			case <-sig.Done():
				stopStep()
			case <-stepCtx.Done():
			}
		}()
		childJobID, err := o.runStep(stepCtx, step.Kind, runID, correlationID, req, state)
		stopStep()
		if childJobID != "" {
			state.childJobIDs = append(state.childJobIDs, childJobID)
		}
		if err != nil && !sig.Raised() {
			failure = fmt.Errorf("%s: %w", step.Kind, err)
			break
		}

		if sig.Raised() {
			if childJobID != "" {
				_, _ = o.jobs.CancelJob(ctx, childJobID)
			}
			o.finishCancelled(ctx, jobID, runID, state)
			return
		}
	}

	if failure != nil {
		detail := aaderrors.FromTraceError(failure, correlationID)
		publish.Failed(ctx, rpc, jobID, commonpb.ErrorDetailFromDomain(detail))
		o.finishRun(ctx, runID, jobID, state, "failed", failure.Error())
		return
	}

	var outputKVs []*commonpb.KeyValue
	for i, path := range state.outputs {
		outputKVs = append(outputKVs, commonpb.KV(fmt.Sprintf("output_%d", i), path))
	}
	publish.Completed(ctx, rpc, jobID, "pipeline finished successfully", outputKVs...)
	o.finishRun(ctx, runID, jobID, state, "success", "")
}

func max1(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func (o *Orchestrator) finishCancelled(ctx context.Context, jobID, runID string, state *pipelineState) {
	o.finishRun(ctx, runID, jobID, state, "cancelled", "")
}

func (o *Orchestrator) finishRun(ctx context.Context, runID, jobID string, state *pipelineState, result, errSummary string) {
	summary := []*commonpb.KeyValue{
		commonpb.KV("step_count", len(state.childJobIDs)),
	}
	if errSummary != "" {
		summary = append(summary, commonpb.KV("error", errSummary))
	}
	jobIDs := append([]string{jobID}, state.childJobIDs...)
	_, err := o.observe.UpsertRun(ctx, &observepb.UpsertRunRequest{
		RunId:      runID,
		ProjectId:  state.projectID,
		FinishedAt: commonpb.WrapMillis(ids.NowMillis()),
		Result:     result,
		JobIds:     jobIDs,
		Summary:    summary,
	})
	if err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("workflow: UpsertRun at end failed, continuing")
	}
}

// runStep invokes one collaborator RPC, waits for its child job (if
// any) to reach a terminal state, and folds its result forward into
// state. It returns the child job id (empty for RPCs with no
// associated job, like project.Open) and an error on failure.
func (o *Orchestrator) runStep(ctx context.Context, kind StepKind, runID, correlationID string, req *workflowpb.RunPipelineRequest, state *pipelineState) (string, error) {
	switch kind {
	case StepCreateProject:
		jobID, projectID, err := o.collaborators.Project.Create(ctx, &projectpb.CreateRequest{
			CorrelationId: correlationID,
			RunId:         runID,
			ProjectPath:   req.GetProjectPath(),
			ProjectName:   req.GetProjectName(),
			TemplateId:    req.GetTemplateId(),
		})
		if err != nil {
			return "", err
		}
		if err := o.waitTerminal(ctx, jobID); err != nil {
			return jobID, err
		}
		state.projectID = projectID
		return jobID, nil

	case StepOpenProject:
		projectID, err := o.collaborators.Project.Open(ctx, &projectpb.OpenRequest{
			CorrelationId: correlationID,
			RunId:         runID,
			ProjectPath:   req.GetProjectPath(),
		})
		if err != nil {
			return "", err
		}
		state.projectID = projectID
		return "", nil

	case StepVerifyToolchain:
		jobID, err := o.collaborators.Toolchain.Verify(ctx, &toolchainpb.VerifyRequest{
			CorrelationId: correlationID,
			RunId:         runID,
			ToolchainId:   req.GetToolchainId(),
		})
		if err != nil {
			return "", err
		}
		return jobID, o.waitTerminal(ctx, jobID)

	case StepBuild:
		jobID, buildID, err := o.collaborators.Build.Run(ctx, &buildpb.RunRequest{
			CorrelationId: correlationID,
			RunId:         runID,
			ProjectId:     state.projectID,
			BuildVariant:  req.GetBuildVariant(),
			Module:        req.GetModule(),
			VariantName:   req.GetVariantName(),
			Tasks:         req.GetTasks(),
		})
		if err != nil {
			return "", err
		}
		if err := o.waitTerminal(ctx, jobID); err != nil {
			return jobID, err
		}
		o.resolveApkPath(ctx, runID, buildID, state)
		return jobID, nil

	case StepInstallApk:
		apkPath := state.apkPath
		if apkPath == "" {
			apkPath = req.GetApkPath()
		}
		jobID, err := o.collaborators.Targets.InstallApk(ctx, &targetpb.InstallApkRequest{
			CorrelationId: correlationID,
			RunId:         runID,
			TargetId:      req.GetTargetId(),
			ApkPath:       apkPath,
		})
		if err != nil {
			return "", err
		}
		return jobID, o.waitTerminal(ctx, jobID)

	case StepLaunchApp:
		jobID, err := o.collaborators.Targets.Launch(ctx, &targetpb.LaunchRequest{
			CorrelationId: correlationID,
			RunId:         runID,
			TargetId:      req.GetTargetId(),
			ApplicationId: req.GetApplicationId(),
			Activity:      req.GetActivity(),
		})
		if err != nil {
			return "", err
		}
		return jobID, o.waitTerminal(ctx, jobID)

	case StepExportSupportBundle:
		jobID, path, err := o.observe.ExportSupportBundle(ctx, &observepb.ExportSupportBundleRequest{
			ProjectId:       state.projectID,
			TargetId:        req.GetTargetId(),
			ToolchainSetId:  req.GetToolchainSetId(),
			IncludeConfig:   true,
			IncludeState:    true,
			IncludeRuns:     true,
			IncludeLogs:     true,
			RecentRunsLimit: 50,
			CorrelationId:   correlationID,
			RunId:           runID,
		})
		if err != nil {
			return "", err
		}
		state.outputs = append(state.outputs, path)
		return jobID, o.waitTerminal(ctx, jobID)

	case StepExportEvidenceBundle:
		jobID, path, err := o.observe.ExportEvidenceBundle(ctx, runID, correlationID)
		if err != nil {
			return "", err
		}
		state.outputs = append(state.outputs, path)
		return jobID, o.waitTerminal(ctx, jobID)

	default:
		return "", fmt.Errorf("unknown pipeline step %q", kind)
	}
}

// resolveApkPath finds the build's apk output and folds it into
// state.apkPath for a later install_apk step (spec §4.6 step 7's
// "first artifact of APK type" rule).
func (o *Orchestrator) resolveApkPath(ctx context.Context, runID, buildID string, state *pipelineState) {
	outputs, _, _, err := o.observe.ListRunOutputs(ctx, runID, &observepb.RunOutputFilter{}, nil)
	if err != nil {
		logrus.WithError(err).WithField("build_id", buildID).Warn("workflow: resolving apk output failed")
		return
	}
	var fallback string
	for _, out := range outputs {
		if fallback == "" {
			fallback = out.GetPath()
		}
		if out.GetOutputType() == "apk" {
			state.apkPath = out.GetPath()
			return
		}
	}
	if state.apkPath == "" {
		state.apkPath = fallback
	}
}

// waitTerminal subscribes to jobID's event history and blocks until a
// terminal event arrives, falling back to a single GetJob poll if the
// stream ends without one (spec §4.6 step 5).
func (o *Orchestrator) waitTerminal(ctx context.Context, jobID string) error {
	stream, err := o.jobs.StreamEvents(ctx, jobID, true)
	if err != nil {
		return err
	}

	for {
		evt, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		if done, failErr := terminalFromEvent(evt); done {
			return failErr
		}
	}

	job, err := o.jobs.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	switch job.State {
	case jobpb.JobStateSuccess:
		return nil
	case jobpb.JobStateCancelled:
		return fmt.Errorf("job %s was cancelled", jobID)
	default:
		return fmt.Errorf("job %s did not reach success (state=%s)", jobID, job.State)
	}
}

func terminalFromEvent(evt *jobpb.JobEvent) (bool, error) {
	if sc := evt.GetStateChanged(); sc != nil {
		switch sc.NewState {
		case jobpb.JobStateSuccess:
			return true, nil
		case jobpb.JobStateFailed:
			return true, fmt.Errorf("job failed")
		case jobpb.JobStateCancelled:
			return true, fmt.Errorf("job was cancelled")
		}
	}
	if evt.GetCompleted() != nil {
		return true, nil
	}
	if f := evt.GetFailed(); f != nil {
		return true, fmt.Errorf("%s", f.GetError().GetMessage())
	}
	return false, nil
}
