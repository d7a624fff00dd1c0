package cancelwatch

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"

	"github.com/androiddevkit/aadk/lib/job"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

func TestSignalNotRaisedInitially(t *testing.T) {
	sig := NewSignal()
	if sig.Raised() {
		t.Error("new Signal reports Raised() = true")
	}
	select {
	case <-sig.Done():
		t.Error("new Signal's Done() channel is already closed")
	default:
	}
}

func TestSignalRaiseIsIdempotent(t *testing.T) {
	sig := NewSignal()
	sig.raise()
	sig.raise()
	if !sig.Raised() {
		t.Error("Signal.Raised() = false after raise()")
	}
	select {
	case <-sig.Done():
	default:
		t.Error("Done() channel not closed after raise()")
	}
}

func startJobService(t *testing.T) (*jobclient.Client, jobpb.JobServiceClient) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	grpcServer := grpc.NewServer()
	jobpb.RegisterJobServiceServer(grpcServer, job.NewService())
	go grpcServer.Serve(ln)
	t.Cleanup(grpcServer.Stop)

	jobs, err := jobclient.Dial(ln.Addr().String())
	if err != nil {
		t.Fatalf("jobclient.Dial failed: %v", err)
	}
	t.Cleanup(func() { jobs.Close() })
	return jobs, jobs.Raw()
}

func TestWatchFiresOnCancellation(t *testing.T) {
	jobs, rpc := startJobService(t)

	jobID, err := jobs.StartJob(context.Background(), "demo.job", "", "", "")
	if err != nil {
		t.Fatalf("StartJob failed: %v", err)
	}

	sig := Watch(context.Background(), rpc, jobID)
	if sig.Raised() {
		t.Fatal("Signal raised before cancellation")
	}

	if _, err := jobs.CancelJob(context.Background(), jobID); err != nil {
		t.Fatalf("CancelJob failed: %v", err)
	}

	select {
	case <-sig.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Signal never fired after CancelJob")
	}
	if !sig.Raised() {
		t.Fatal("Signal.Raised() = false after Done() closed")
	}
}

func TestWatchOnUnknownJobNeverFires(t *testing.T) {
	_, rpc := startJobService(t)

	sig := Watch(context.Background(), rpc, "nonexistent-job")
	select {
	case <-sig.Done():
		t.Fatal("Signal fired for a job that was never started")
	case <-time.After(1500 * time.Millisecond):
	}
	if sig.Raised() {
		t.Error("Signal.Raised() = true for an unknown job")
	}
}
