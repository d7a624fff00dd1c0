package runserver

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"google.golang.org/grpc"
)

func TestServeReturnsNilOnTerminationSignal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	grpcServer := grpc.NewServer()

	done := make(chan error, 1)
	go func() { done <- Serve(ln, grpcServer, "test-service") }()

	// Give Serve's goroutine a moment to start grpcServer.Serve before
	// signaling, so GracefulStop has a live server to stop.
	time.Sleep(50 * time.Millisecond)

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess failed: %v", err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("sending SIGTERM failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after a termination signal, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return within 2s of a termination signal")
	}
}

func TestServeReturnsListenerErrorWithoutSignal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	grpcServer := grpc.NewServer()

	// Closing the listener out from under Serve makes grpcServer.Serve
	// return an error immediately, independent of any signal.
	ln.Close()

	err = Serve(ln, grpcServer, "test-service")
	if err == nil {
		t.Error("Serve on a closed listener should return a non-nil error")
	}
}
