package project

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"google.golang.org/grpc"
	"gopkg.in/check.v1"

	"github.com/androiddevkit/aadk/lib/job"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/projectpb"
)

func TestProject(t *testing.T) { check.TestingT(t) }

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

func (s *S) TestCreateScaffoldsProjectAndRecordsIt(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs, nil)

	projectDir := filepath.Join(c.MkDir(), "myapp")
	resp, err := svc.Create(context.Background(), &projectpb.CreateRequest{
		ProjectPath: projectDir, ProjectName: "MyApp", TemplateId: "kotlin-empty",
	})
	c.Assert(err, check.IsNil)
	c.Assert(resp.GetProjectId(), check.Not(check.Equals), "")
	c.Assert(resp.GetJobId(), check.Not(check.Equals), "")

	final := waitForTerminal(c, jobs, resp.GetJobId())
	c.Assert(final.State, check.Equals, jobpb.JobStateSuccess)

	rec, ok := store.Get(resp.GetProjectId())
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.ProjectPath, check.Equals, projectDir)

	manifest := filepath.Join(projectDir, "app", "src", "main", "AndroidManifest.xml")
	_, err = os.Stat(manifest)
	c.Assert(err, check.IsNil)
}

func (s *S) TestOpenRegistersNewProjectOnFirstSight(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs, nil)

	resp, err := svc.Open(context.Background(), &projectpb.OpenRequest{ProjectPath: "/existing/project"})
	c.Assert(err, check.IsNil)
	c.Assert(resp.GetProjectId(), check.Not(check.Equals), "")

	rec, ok := store.Get(resp.GetProjectId())
	c.Assert(ok, check.Equals, true)
	c.Assert(rec.ProjectPath, check.Equals, "/existing/project")
}

func (s *S) TestOpenIsIdempotentForTheSamePath(c *check.C) {
	s.setHome(c)
	jobs := s.startJobService(c)
	store := NewStore()
	svc := NewService(store, jobs, nil)

	first, err := svc.Open(context.Background(), &projectpb.OpenRequest{ProjectPath: "/existing/project"})
	c.Assert(err, check.IsNil)
	second, err := svc.Open(context.Background(), &projectpb.OpenRequest{ProjectPath: "/existing/project"})
	c.Assert(err, check.IsNil)
	c.Assert(second.GetProjectId(), check.Equals, first.GetProjectId())
}
