package toolchain

import (
	"context"
	"io"
	"net"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"gopkg.in/check.v1"

	"github.com/androiddevkit/aadk/lib/job"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/toolchainpb"
)

func TestToolchain(t *testing.T) { check.TestingT(t) }

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

// setHome points HOME at a fresh suite-scoped temp dir for the duration
// of the current test, restoring the prior value on TearDownTest.
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

// startJobService boots a real Job service on a loopback port and
// returns a dialed client, so the Toolchain worker loop can be exercised
// against the genuine publish/stream/cancel RPC surface instead of a
// mock.
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

func (s *S) TestToolchainInstallReachesInstalledState(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	resp, err := svc.Install(context.Background(), &toolchainpb.InstallRequest{
		ToolchainId: "tc-1", Version: "1.0", Host: "linux-x86_64",
	})
	c.Assert(err, check.IsNil)
	c.Assert(resp.GetJobId(), check.Not(check.Equals), "")

	final := waitForTerminal(c, jobs, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)

	rec, ok := store.Get("tc-1")
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.Status, check.Equals, "installed")
}

func (s *S) TestToolchainInstallReusesProvidedJobID(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	jobID, err := jobs.StartJob(context.Background(), "toolchain.install", "", "", "")
	c.Assert(err, check.IsNil)

	resp, err := svc.Install(context.Background(), &toolchainpb.InstallRequest{
		JobId: jobID, ToolchainId: "tc-2", Version: "1.0", Host: "linux-x86_64",
	})
	c.Assert(err, check.IsNil)
	c.Assert(resp.GetJobId(), check.Equals, jobID)

	waitForTerminal(c, jobs, jobID)
}

func (s *S) TestToolchainUninstallRemovesRecord(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	c.Assert(store.Upsert("tc-3", "1.0", "linux-x86_64", "installed"), check.IsNil)
	svc := NewService(store, jobs)

	resp, err := svc.Uninstall(context.Background(), &toolchainpb.UninstallRequest{ToolchainId: "tc-3"})
	c.Assert(err, check.IsNil)

	final := waitForTerminal(c, jobs, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)

	_, ok := store.Get("tc-3")
	c.Assert(ok, check.Equals, false)
}

func (s *S) TestToolchainVerifyPublishesProgress(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs)

	resp, err := svc.Verify(context.Background(), &toolchainpb.VerifyRequest{ToolchainId: "tc-4"})
	c.Assert(err, check.IsNil)

	stream, err := jobs.StreamEvents(context.Background(), resp.GetJobId(), true)
	c.Assert(err, check.IsNil)

	var sawProgress, sawCompleted bool
	deadline := time.After(5 * time.Second)
	for !sawCompleted {
		evtCh := make(chan *jobpb.JobEvent, 1)
		errCh := make(chan error, 1)
		go func() {
			evt, err := stream.Recv()
			if err != nil {
				errCh <- err
				return
			}
			evtCh <- evt
		}()
		select {
		case evt := <-evtCh:
			switch evt.Payload.(type) {
			case *jobpb.JobProgressUpdated:
				sawProgress = true
			case *jobpb.JobCompleted:
				sawCompleted = true
			}
		case err := <-errCh:
			if err == io.EOF {
				c.Fatal("stream closed before a Completed event arrived")
			}
			c.Fatalf("stream.Recv failed: %v", err)
		case <-deadline:
			c.Fatal("timed out waiting for verify to complete")
		}
	}

	c.Assert(sawProgress, check.Equals, true)
}
