package workflow

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"gopkg.in/check.v1"

	"github.com/androiddevkit/aadk/lib/build"
	buildclient "github.com/androiddevkit/aadk/lib/build/client"
	"github.com/androiddevkit/aadk/lib/buildpb"
	"github.com/androiddevkit/aadk/lib/job"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/observe"
	observeclient "github.com/androiddevkit/aadk/lib/observe/client"
	"github.com/androiddevkit/aadk/lib/observepb"
	"github.com/androiddevkit/aadk/lib/project"
	projectclient "github.com/androiddevkit/aadk/lib/project/client"
	"github.com/androiddevkit/aadk/lib/projectpb"
	"github.com/androiddevkit/aadk/lib/targets"
	targetsclient "github.com/androiddevkit/aadk/lib/targets/client"
	"github.com/androiddevkit/aadk/lib/targetpb"
	"github.com/androiddevkit/aadk/lib/toolchain"
	toolchainclient "github.com/androiddevkit/aadk/lib/toolchain/client"
	"github.com/androiddevkit/aadk/lib/toolchainpb"
	"github.com/androiddevkit/aadk/lib/workflowpb"
)

func TestWorkflow(t *testing.T) { check.TestingT(t) }

type S struct {
	cleanups []func()
}

var _ = check.Suite(&S{})

func (s *S) SetUpTest(c *check.C) { s.cleanups = nil }

func (s *S) TearDownTest(c *check.C) {
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
}

func (s *S) addCleanup(f func()) { s.cleanups = append(s.cleanups, f) }

func (s *S) setHome(c *check.C) {
	old, had := os.LookupEnv("HOME")
	os.Setenv("HOME", c.MkDir())
	s.addCleanup(func() {
		if had {
			os.Setenv("HOME", old)
		} else {
			os.Unsetenv("HOME")
		}
	})
}

// harness wires a real Job service plus every collaborator worker on
// loopback listeners, the same way a real deployment's cmd/ binaries
// would, so RunPipeline drives genuine RPCs end to end.
type harness struct {
	jobs *jobclient.Client
	obs  *observeclient.Client
	orch *Orchestrator
}

func (s *S) serveOn(c *check.C, register func(*grpc.Server)) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, check.IsNil)
	srv := grpc.NewServer()
	register(srv)
	go srv.Serve(ln)
	s.addCleanup(srv.Stop)
	return ln.Addr().String()
}

func (s *S) newHarness(c *check.C) *harness {
	s.setHome(c)

	jobAddr := s.serveOn(c, func(srv *grpc.Server) {
		jobpb.RegisterJobServiceServer(srv, job.NewService())
	})
	jobs, err := jobclient.Dial(jobAddr)
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { jobs.Close() })

	observeAddr := s.serveOn(c, func(srv *grpc.Server) {
		registry := observe.NewRegistry()
		observepb.RegisterObserveServiceServer(srv, observe.NewService(registry, jobs, observe.DefaultConfig()))
	})
	obs, err := observeclient.Dial(observeAddr)
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { obs.Close() })

	projectAddr := s.serveOn(c, func(srv *grpc.Server) {
		projectpb.RegisterProjectServiceServer(srv, project.NewService(project.NewStore(), jobs, obs))
	})
	proj, err := projectclient.Dial(projectAddr)
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { proj.Close() })

	toolchainAddr := s.serveOn(c, func(srv *grpc.Server) {
		toolchainpb.RegisterToolchainServiceServer(srv, toolchain.NewService(toolchain.NewStore(), jobs))
	})
	tc, err := toolchainclient.Dial(toolchainAddr)
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { tc.Close() })

	buildAddr := s.serveOn(c, func(srv *grpc.Server) {
		buildpb.RegisterBuildServiceServer(srv, build.NewService(build.NewStore(), jobs, obs))
	})
	bld, err := buildclient.Dial(buildAddr)
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { bld.Close() })

	targetsAddr := s.serveOn(c, func(srv *grpc.Server) {
		targetpb.RegisterTargetsServiceServer(srv, targets.NewService(targets.NewStore(), jobs))
	})
	tgt, err := targetsclient.Dial(targetsAddr)
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { tgt.Close() })

	orch := NewOrchestrator(jobs, obs, Collaborators{
		Project:   proj,
		Toolchain: tc,
		Build:     bld,
		Targets:   tgt,
	})

	return &harness{jobs: jobs, obs: obs, orch: orch}
}

func (h *harness) waitForTerminal(c *check.C, jobID string) *jobpb.Job {
	deadline := time.After(10 * time.Second)
	for {
		j, err := h.jobs.GetJob(context.Background(), jobID)
		c.Assert(err, check.IsNil)
		if j.State.IsTerminal() {
			return j
		}
		select {
		case <-deadline:
			c.Fatalf("job %s did not reach a terminal state in time (last state %v)", jobID, j.State)
		case <-time.After(20 * time.Millisecond):
		}
	}
}

// TestRunPipelineInferredFiveStepScenario mirrors the scenario of
// creating a project, verifying a toolchain, building, installing the
// apk, and launching the app, with no explicit PipelineOptions.
func (s *S) TestRunPipelineInferredFiveStepScenario(c *check.C) {
	h := s.newHarness(c)

	resp, err := h.orch.RunPipeline(context.Background(), &workflowpb.RunPipelineRequest{
		ProjectPath:   c.MkDir(),
		TemplateId:    "kotlin-empty",
		ToolchainId:   "tc-1",
		TargetId:      "tgt-1",
		ApkPath:       "/placeholder.apk",
		ApplicationId: "com.example.app",
	})
	c.Assert(err, check.IsNil)
	c.Assert(resp.GetRunId(), check.Not(check.Equals), "")
	c.Assert(resp.GetJobId(), check.Not(check.Equals), "")

	final := h.waitForTerminal(c, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)

	runs, _, err := h.obs.ListRuns(context.Background(), &observepb.RunFilter{}, nil)
	c.Assert(err, check.IsNil)
	var found bool
	for _, r := range runs {
		if r.GetRunId() == resp.GetRunId() {
			found = true
			c.Assert(r.GetResult(), check.Equals, "success")
			c.Assert(len(r.GetJobIds()) >= 2, check.Equals, true, check.Commentf("job ids = %v", r.GetJobIds()))
		}
	}
	c.Assert(found, check.Equals, true)
}

// TestRunPipelineOpenExistingProjectThenBuild mirrors the project_path
// without template_id inference branch (open_project, then build).
func (s *S) TestRunPipelineOpenExistingProjectThenBuild(c *check.C) {
	h := s.newHarness(c)

	resp, err := h.orch.RunPipeline(context.Background(), &workflowpb.RunPipelineRequest{
		ProjectPath: "/existing/project",
	})
	c.Assert(err, check.IsNil)

	final := h.waitForTerminal(c, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)
}

// TestRunPipelineExportSupportBundle exercises the explicit-options
// export_support_bundle step.
func (s *S) TestRunPipelineExportSupportBundle(c *check.C) {
	h := s.newHarness(c)

	resp, err := h.orch.RunPipeline(context.Background(), &workflowpb.RunPipelineRequest{
		Options: &workflowpb.PipelineOptions{ExportSupportBundle: true},
	})
	c.Assert(err, check.IsNil)

	final := h.waitForTerminal(c, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)

	outputs, _, _, err := h.obs.ListRunOutputs(context.Background(), resp.GetRunId(), &observepb.RunOutputFilter{}, nil)
	c.Assert(err, check.IsNil)
	c.Assert(len(outputs) > 0, check.Equals, true)
}

func (s *S) TestRunPipelineEmptyRequestSucceedsWithNoSteps(c *check.C) {
	h := s.newHarness(c)

	resp, err := h.orch.RunPipeline(context.Background(), &workflowpb.RunPipelineRequest{})
	c.Assert(err, check.IsNil)

	final := h.waitForTerminal(c, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)
}

func (s *S) TestRunPipelineCancelMidRun(c *check.C) {
	h := s.newHarness(c)

	resp, err := h.orch.RunPipeline(context.Background(), &workflowpb.RunPipelineRequest{
		ProjectPath:   c.MkDir(),
		TemplateId:    "kotlin-empty",
		ToolchainId:   "tc-1",
		ApkPath:       "/placeholder.apk",
		ApplicationId: "com.example.app",
	})
	c.Assert(err, check.IsNil)

	deadline := time.After(3 * time.Second)
	for {
		j, err := h.jobs.GetJob(context.Background(), resp.GetJobId())
		c.Assert(err, check.IsNil)
		if j.State == jobpb.JobStateRunning {
			break
		}
		select {
		case <-deadline:
			c.Fatal("pipeline job never reached Running before deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}

	accepted, err := h.jobs.CancelJob(context.Background(), resp.GetJobId())
	c.Assert(err, check.IsNil)
	c.Assert(accepted, check.Equals, true)

	final := h.waitForTerminal(c, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateCancelled)
}
