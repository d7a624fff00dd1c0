// Command targets runs the Targets collaborator worker (spec §4.7):
// simulated APK install/launch/stop and Cuttlefish device lifecycle,
// recorded at state/targets.json.
package main

import (
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/alecthomas/kingpin.v2"

	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/runserver"
	"github.com/androiddevkit/aadk/lib/targetpb"
	"github.com/androiddevkit/aadk/lib/targets"
)

func main() {
	app := kingpin.New("targets", "AADK Targets collaborator worker.")
	addr := app.Flag("addr", "Address to listen on.").
		Default("127.0.0.1:50055").OverrideDefaultFromEnvar("AADK_TARGETS_ADDR").String()
	jobAddr := app.Flag("job-addr", "Address of the Job service.").
		Default("127.0.0.1:50051").OverrideDefaultFromEnvar("AADK_JOB_ADDR").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*addr, *jobAddr); err != nil {
		logrus.WithError(err).Fatal("targets: startup failed")
	}
}

func run(addr, jobAddr string) error {
	jobs, err := jobclient.Dial(jobAddr)
	if err != nil {
		return err
	}
	defer jobs.Close()

	store := targets.NewStore()
	if err := store.Load(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	targetpb.RegisterTargetsServiceServer(grpcServer, targets.NewService(store, jobs))

	logrus.WithField("addr", addr).Info("targets: listening")
	return runserver.Serve(ln, grpcServer, "targets")
}
