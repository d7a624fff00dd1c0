// Command workflow runs the Workflow orchestrator (spec §4.6): a
// multi-step create/verify/build/install/launch pipeline driven as a
// single observable parent job against a single Observe run record.
package main

import (
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gopkg.in/alecthomas/kingpin.v2"

	buildclient "github.com/androiddevkit/aadk/lib/build/client"
	jobclient "github.com/androiddevkit/aadk/lib/job/client"
	observeclient "github.com/androiddevkit/aadk/lib/observe/client"
	projectclient "github.com/androiddevkit/aadk/lib/project/client"
	"github.com/androiddevkit/aadk/lib/runserver"
	targetsclient "github.com/androiddevkit/aadk/lib/targets/client"
	toolchainclient "github.com/androiddevkit/aadk/lib/toolchain/client"
	"github.com/androiddevkit/aadk/lib/workflow"
	"github.com/androiddevkit/aadk/lib/workflow/server"
	"github.com/androiddevkit/aadk/lib/workflowpb"
)

func main() {
	app := kingpin.New("workflow", "AADK Workflow orchestrator.")
	addr := app.Flag("addr", "Address to listen on.").
		Default("127.0.0.1:50057").OverrideDefaultFromEnvar("AADK_WORKFLOW_ADDR").String()
	jobAddr := app.Flag("job-addr", "Address of the Job service.").
		Default("127.0.0.1:50051").OverrideDefaultFromEnvar("AADK_JOB_ADDR").String()
	toolchainAddr := app.Flag("toolchain-addr", "Address of the Toolchain worker.").
		Default("127.0.0.1:50052").OverrideDefaultFromEnvar("AADK_TOOLCHAIN_ADDR").String()
	projectAddr := app.Flag("project-addr", "Address of the Project worker.").
		Default("127.0.0.1:50053").OverrideDefaultFromEnvar("AADK_PROJECT_ADDR").String()
	buildAddr := app.Flag("build-addr", "Address of the Build worker.").
		Default("127.0.0.1:50054").OverrideDefaultFromEnvar("AADK_BUILD_ADDR").String()
	targetsAddr := app.Flag("targets-addr", "Address of the Targets worker.").
		Default("127.0.0.1:50055").OverrideDefaultFromEnvar("AADK_TARGETS_ADDR").String()
	observeAddr := app.Flag("observe-addr", "Address of the Observe service.").
		Default("127.0.0.1:50056").OverrideDefaultFromEnvar("AADK_OBSERVE_ADDR").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*addr, *jobAddr, *toolchainAddr, *projectAddr, *buildAddr, *targetsAddr, *observeAddr); err != nil {
		logrus.WithError(err).Fatal("workflow: startup failed")
	}
}

func run(addr, jobAddr, toolchainAddr, projectAddr, buildAddr, targetsAddr, observeAddr string) error {
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

	project, err := projectclient.Dial(projectAddr)
	if err != nil {
		return err
	}
	defer project.Close()

	toolchain, err := toolchainclient.Dial(toolchainAddr)
	if err != nil {
		return err
	}
	defer toolchain.Close()

	build, err := buildclient.Dial(buildAddr)
	if err != nil {
		return err
	}
	defer build.Close()

	targets, err := targetsclient.Dial(targetsAddr)
	if err != nil {
		return err
	}
	defer targets.Close()

	orchestrator := workflow.NewOrchestrator(jobs, observe, workflow.Collaborators{
		Project:   project,
		Toolchain: toolchain,
		Build:     build,
		Targets:   targets,
	})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	workflowpb.RegisterWorkflowServiceServer(grpcServer, server.New(orchestrator))

	logrus.WithField("addr", addr).Info("workflow: listening")
	return runserver.Serve(ln, grpcServer, "workflow")
}
