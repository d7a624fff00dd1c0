// Command job runs the Job service (spec §4.1): the authoritative job
// state machine, event bus, and cancellation broadcaster every other
// AADK service and worker depends on.
package main

import (
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/androiddevkit/aadk/lib/job"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/runserver"
)

func main() {
	app := kingpin.New("job", "AADK Job service.")
	addr := app.Flag("addr", "Address to listen on.").
		Default("127.0.0.1:50051").OverrideDefaultFromEnvar("AADK_JOB_ADDR").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*addr); err != nil {
		logrus.WithError(err).Fatal("job: startup failed")
	}
}

func run(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	jobpb.RegisterJobServiceServer(grpcServer, job.NewService())

	logrus.WithField("addr", addr).Info("job: listening")
	return runserver.Serve(ln, grpcServer, "job")
}
