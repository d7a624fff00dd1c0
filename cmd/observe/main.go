// Command observe runs the Observe service (spec §4.4): the read-side
// registry of runs and run outputs, plus support/evidence bundle export.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/alecthomas/kingpin.v2"

	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/observe"
	"github.com/androiddevkit/aadk/lib/observepb"
	"github.com/androiddevkit/aadk/lib/runserver"
)

func main() {
	app := kingpin.New("observe", "AADK Observe service.")
	addr := app.Flag("addr", "Address to listen on.").
		Default("127.0.0.1:50056").OverrideDefaultFromEnvar("AADK_OBSERVE_ADDR").String()
	jobAddr := app.Flag("job-addr", "Address of the Job service.").
		Default("127.0.0.1:50051").OverrideDefaultFromEnvar("AADK_JOB_ADDR").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*addr, *jobAddr); err != nil {
		logrus.WithError(err).Fatal("observe: startup failed")
	}
}

func run(addr, jobAddr string) error {
	jobs, err := jobclient.Dial(jobAddr)
	if err != nil {
		return err
	}
	defer jobs.Close()

	registry := observe.NewRegistry()
	if _, err := registry.Load(); err != nil {
		logrus.WithError(err).Warn("observe: no prior state loaded, starting empty")
	}

	watchReload(registry)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	observepb.RegisterObserveServiceServer(grpcServer, observe.NewService(registry, jobs, observe.DefaultConfig()))

	logrus.WithField("addr", addr).Info("observe: listening")
	return runserver.Serve(ln, grpcServer, "observe")
}

// watchReload reloads the registry's on-disk state whenever the process
// receives SIGHUP, mirroring how operators already bounce the service's
// peers without a restart. It runs for the life of the process; there is
// no corresponding signal.Stop since the service itself is the thing
// being torn down on shutdown.
func watchReload(registry *observe.Registry) {
	sighupC := make(chan os.Signal, 1)
	signal.Notify(sighupC, syscall.SIGHUP)
	go func() {
		for range sighupC {
			count, err := registry.Load()
			if err != nil {
				logrus.WithError(err).Warn("observe: SIGHUP reload failed")
				continue
			}
			logrus.WithField("item_count", count).Info("observe: reloaded state on SIGHUP")
		}
	}()
}
