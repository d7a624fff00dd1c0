// Package workflow implements the Workflow orchestrator (spec §4.6):
// step inference over a RunPipelineRequest and the straight-line
// interpreter that drives each inferred step against its collaborator
// service, threading a single run identity through all of them.
package workflow

import "github.com/androiddevkit/aadk/lib/workflowpb"

// StepKind names one of the pipeline's fixed step kinds. It is never
// exposed over RPC: StepDescriptor is an in-process planning artifact
// only, per spec §4.6's "pure function, then drive a straight-line
// interpreter" design note.
type StepKind string

const (
	StepCreateProject        StepKind = "create_project"
	StepOpenProject          StepKind = "open_project"
	StepVerifyToolchain      StepKind = "verify_toolchain"
	StepBuild                StepKind = "build"
	StepInstallApk           StepKind = "install_apk"
	StepLaunchApp            StepKind = "launch_app"
	StepExportSupportBundle  StepKind = "export_support_bundle"
	StepExportEvidenceBundle StepKind = "export_evidence_bundle"
)

// StepDescriptor is one planned pipeline step.
type StepDescriptor struct {
	Kind StepKind
}

// InferSteps computes the ordered step set RunPipeline will execute,
// as a pure function of req: no RPC, no I/O, no mutation. If
// req.Options is present, only the flags explicitly set true are
// included, in the canonical order below. If Options is absent, the
// step set is inferred from which input fields are populated (spec
// §4.6).
func InferSteps(req *workflowpb.RunPipelineRequest) []StepDescriptor {
	if req.GetOptions() != nil {
		return explicitSteps(req.GetOptions())
	}
	return inferredSteps(req)
}

func explicitSteps(opts *workflowpb.PipelineOptions) []StepDescriptor {
	var steps []StepDescriptor
	add := func(on bool, kind StepKind) {
		if on {
			steps = append(steps, StepDescriptor{Kind: kind})
		}
	}
	add(opts.GetCreateProject(), StepCreateProject)
	add(opts.GetOpenProject(), StepOpenProject)
	add(opts.GetVerifyToolchain(), StepVerifyToolchain)
	add(opts.GetBuild(), StepBuild)
	add(opts.GetInstallApk(), StepInstallApk)
	add(opts.GetLaunchApp(), StepLaunchApp)
	add(opts.GetExportSupportBundle(), StepExportSupportBundle)
	add(opts.GetExportEvidenceBundle(), StepExportEvidenceBundle)
	return steps
}

// inferredSteps implements spec §4.6's input-presence inference: a
// project reference is either a freshly created project (create_project
// ran) or an explicit project_id; build/install/launch are each gated
// on their own input field, independent of whether earlier steps ran.
func inferredSteps(req *workflowpb.RunPipelineRequest) []StepDescriptor {
	var steps []StepDescriptor

	hasProjectRef := req.GetProjectId() != ""

	if req.GetTemplateId() != "" {
		steps = append(steps, StepDescriptor{Kind: StepCreateProject})
		hasProjectRef = true
	} else if req.GetProjectPath() != "" && req.GetProjectId() == "" {
		steps = append(steps, StepDescriptor{Kind: StepOpenProject})
		hasProjectRef = true
	}

	if req.GetToolchainId() != "" {
		steps = append(steps, StepDescriptor{Kind: StepVerifyToolchain})
	}

	if hasProjectRef {
		steps = append(steps, StepDescriptor{Kind: StepBuild})
	}

	if req.GetApkPath() != "" {
		steps = append(steps, StepDescriptor{Kind: StepInstallApk})
	}

	if req.GetApplicationId() != "" {
		steps = append(steps, StepDescriptor{Kind: StepLaunchApp})
	}

	return steps
}
