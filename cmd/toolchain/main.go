// Command toolchain runs the Toolchain collaborator worker (spec
// §4.7): install/verify/update/uninstall/cleanup_cache against a
// manifest persisted at state/toolchains.json.
package main

import (
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/alecthomas/kingpin.v2"

	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	"github.com/androiddevkit/aadk/lib/runserver"
	"github.com/androiddevkit/aadk/lib/toolchain"
	"github.com/androiddevkit/aadk/lib/toolchainpb"
)

func main() {
	app := kingpin.New("toolchain", "AADK Toolchain collaborator worker.")
	addr := app.Flag("addr", "Address to listen on.").
		Default("127.0.0.1:50052").OverrideDefaultFromEnvar("AADK_TOOLCHAIN_ADDR").String()
	jobAddr := app.Flag("job-addr", "Address of the Job service.").
		Default("127.0.0.1:50051").OverrideDefaultFromEnvar("AADK_JOB_ADDR").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*addr, *jobAddr); err != nil {
		logrus.WithError(err).Fatal("toolchain: startup failed")
	}
}

func run(addr, jobAddr string) error {
	jobs, err := jobclient.Dial(jobAddr)
	if err != nil {
		return err
	}
	defer jobs.Close()

	store := toolchain.NewStore()
	if err := store.Load(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	toolchainpb.RegisterToolchainServiceServer(grpcServer, toolchain.NewService(store, jobs))

	logrus.WithField("addr", addr).Info("toolchain: listening")
	return runserver.Serve(ln, grpcServer, "toolchain")
}
