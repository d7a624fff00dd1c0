// Command project runs the Project collaborator worker (spec §4.7):
// expanding a named template id into a project directory skeleton,
// recorded at state/projects.json.
package main

import (
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/alecthomas/kingpin.v2"

	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	observeclient "github.com/androiddevkit/aadk/lib/observe/client"
	"github.com/androiddevkit/aadk/lib/project"
	"github.com/androiddevkit/aadk/lib/projectpb"
	"github.com/androiddevkit/aadk/lib/runserver"
)

func main() {
	app := kingpin.New("project", "AADK Project collaborator worker.")
	addr := app.Flag("addr", "Address to listen on.").
		Default("127.0.0.1:50053").OverrideDefaultFromEnvar("AADK_PROJECT_ADDR").String()
	jobAddr := app.Flag("job-addr", "Address of the Job service.").
		Default("127.0.0.1:50051").OverrideDefaultFromEnvar("AADK_JOB_ADDR").String()
	observeAddr := app.Flag("observe-addr", "Address of the Observe service.").
		Default("127.0.0.1:50056").OverrideDefaultFromEnvar("AADK_OBSERVE_ADDR").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*addr, *jobAddr, *observeAddr); err != nil {
		logrus.WithError(err).Fatal("project: startup failed")
	}
}

func run(addr, jobAddr, observeAddr string) error {
	jobs, err := jobclient.Dial(jobAddr)
	if err != nil {
		return err
	}
	defer jobs.Close()

	observe, err := observeclient.Dial(observeAddr)
	if err != nil {
		return err
	}
	defer observe.Close()

	store := project.NewStore()
	if err := store.Load(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	projectpb.RegisterProjectServiceServer(grpcServer, project.NewService(store, jobs, observe))

	logrus.WithField("addr", addr).Info("project: listening")
	return runserver.Serve(ln, grpcServer, "project")
}
