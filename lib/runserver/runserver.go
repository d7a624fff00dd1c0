// Package runserver is the shared "listen, serve, wait for a
// termination signal, GracefulStop" body every AADK service binary
// runs, generalized from the teacher's lib/utils.WatchTerminationSignals
// signal-handling idiom (gravity's own grpc agent/rpc server shutdown
// path in lib/rpc/server and lib/install/server follow the same shape).
package runserver

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// Serve blocks serving grpcServer on ln until SIGINT/SIGTERM/SIGQUIT is
// received, then gracefully stops it. The serve error (if the listener
// fails outside of a graceful stop) is returned; a signal-triggered
// shutdown returns nil.
func Serve(ln net.Listener, grpcServer *grpc.Server, name string) error {
	signalC := make(chan os.Signal, 1)
	signals := []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
	signal.Notify(signalC, signals...)
	defer signal.Stop(signalC)

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcServer.Serve(ln) }()

	select {
	case sig := <-signalC:
		logrus.WithField("signal", sig).WithField("service", name).Info("runserver: received termination signal, shutting down")
		grpcServer.GracefulStop()
		<-serveErr
		return nil
	case err := <-serveErr:
		return err
	}
}
