package targets

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"gopkg.in/check.v1"

	"github.com/androiddevkit/aadk/lib/job"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/targetpb"
)

func TestTargets(t *testing.T) { check.TestingT(t) }

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

func (s *S) startJobService(c *check.C) *jobclient.Client {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, check.IsNil)
	grpcServer := grpc.NewServer()
	jobpb.RegisterJobServiceServer(grpcServer, job.NewService())
	go grpcServer.Serve(ln)
	s.addCleanup(grpcServer.Stop)

	jobs, err := jobclient.Dial(ln.Addr().String())
	c.Assert(err, check.IsNil)
	s.addCleanup(func() { jobs.Close() })
	return jobs
}

func waitForTerminal(c *check.C, jobs *jobclient.Client, jobID string) *jobpb.Job {
	deadline := time.After(5 * time.Second)
	for {
		j, err := jobs.GetJob(context.Background(), jobID)
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

func (s *S) TestInstallApkRequiresTargetId(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	svc := NewService(NewStore(), jobs)

	_, err := svc.InstallApk(context.Background(), &targetpb.InstallApkRequest{ApkPath: "/out/b.apk"})
	c.Assert(err, check.Not(check.IsNil))
}

func (s *S) TestInstallApkRecordsTarget(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	resp, err := svc.InstallApk(context.Background(), &targetpb.InstallApkRequest{TargetId: "tgt-1", ApkPath: "/out/b.apk"})
	c.Assert(err, check.IsNil)

	final := waitForTerminal(c, jobs, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)

	rec, ok := store.Get("tgt-1")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "apk-installed")
	c.Assert(rec.ApkPath, check.Equals, "/out/b.apk")
}

func (s *S) TestLaunchThenStopTransitionsStatus(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	launchResp, err := svc.Launch(context.Background(), &targetpb.LaunchRequest{TargetId: "tgt-2", ApplicationId: "com.example.app"})
	c.Assert(err, check.IsNil)
	waitForTerminal(c, jobs, launchResp.GetJobId())

	rec, ok := store.Get("tgt-2")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "running")

	stopResp, err := svc.Stop(context.Background(), &targetpb.StopRequest{TargetId: "tgt-2", ApplicationId: "com.example.app"})
	c.Assert(err, check.IsNil)
	waitForTerminal(c, jobs, stopResp.GetJobId())

	rec, ok = store.Get("tgt-2")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "stopped")
}

func (s *S) TestCuttlefishLifecycle(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	installResp, err := svc.CuttlefishInstall(context.Background(), &targetpb.CuttlefishInstallRequest{TargetId: "cvd-1"})
	c.Assert(err, check.IsNil)
	waitForTerminal(c, jobs, installResp.GetJobId())
	rec, ok := store.Get("cvd-1")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "cuttlefish-installed")

	startResp, err := svc.CuttlefishStart(context.Background(), &targetpb.CuttlefishStartRequest{TargetId: "cvd-1"})
	c.Assert(err, check.IsNil)
	waitForTerminal(c, jobs, startResp.GetJobId())
	rec, ok = store.Get("cvd-1")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "cuttlefish-running")

	stopResp, err := svc.CuttlefishStop(context.Background(), &targetpb.CuttlefishStopRequest{TargetId: "cvd-1"})
	c.Assert(err, check.IsNil)
	waitForTerminal(c, jobs, stopResp.GetJobId())
	rec, ok = store.Get("cvd-1")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "cuttlefish-stopped")
}

func (s *S) TestInstallApkCancelledMidRun(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	resp, err := svc.InstallApk(context.Background(), &targetpb.InstallApkRequest{TargetId: "tgt-3", ApkPath: "/out/b.apk"})
	c.Assert(err, check.IsNil)

	deadline := time.After(3 * time.Second)
	for {
		j, err := jobs.GetJob(context.Background(), resp.GetJobId())
		c.Assert(err, check.IsNil)
		if j.State == jobpb.JobStateRunning {
			break
		}
		select {
		case <-deadline:
			c.Fatal("job never reached Running before deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}

	accepted, err := jobs.CancelJob(context.Background(), resp.GetJobId())
	c.Assert(err, check.IsNil)
	c.Assert(accepted, check.Equals, true)

	final := waitForTerminal(c, jobs, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateCancelled)

	_, ok := store.Get("tgt-3")
	c.Assert(ok, check.Equals, false)
}
