package workflow

import (
	"reflect"
	"testing"

	"github.com/androiddevkit/aadk/lib/workflowpb"
)

func kinds(steps []StepDescriptor) []StepKind {
	out := make([]StepKind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind
	}
	return out
}

// TestInferStepsSpecScenario5 mirrors spec.md's §8 scenario 5: a
// request naming every inferable field, no explicit PipelineOptions,
// must infer exactly this five-step plan in this order.
func TestInferStepsSpecScenario5(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{
		ProjectPath:   "/p",
		TemplateId:    "T",
		ToolchainId:   "tc-1",
		ApkPath:       "/build/app.apk",
		ApplicationId: "com.x",
	}
	want := []StepKind{StepCreateProject, StepVerifyToolchain, StepBuild, StepInstallApk, StepLaunchApp}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}

func TestInferStepsOpenProjectWhenNoTemplate(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{ProjectPath: "/existing/project"}
	want := []StepKind{StepOpenProject, StepBuild}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}

func TestInferStepsExistingProjectIdSkipsOpenAndCreate(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{ProjectId: "proj-1", ProjectPath: "/existing/project"}
	want := []StepKind{StepBuild}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}

func TestInferStepsTemplateWinsOverPath(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{ProjectPath: "/p", TemplateId: "T"}
	want := []StepKind{StepCreateProject, StepBuild}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}

func TestInferStepsEmptyRequestInfersNothing(t *testing.T) {
	got := InferSteps(&workflowpb.RunPipelineRequest{})
	if len(got) != 0 {
		t.Fatalf("InferSteps(empty) = %v, want no steps", got)
	}
}

func TestInferStepsInstallAndLaunchIndependentOfProject(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{ApkPath: "/a.apk", ApplicationId: "com.y"}
	want := []StepKind{StepInstallApk, StepLaunchApp}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}

func TestInferStepsExplicitOptionsIgnoreInferenceFields(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{
		TemplateId:  "T",
		ToolchainId: "tc-1",
		Options: &workflowpb.PipelineOptions{
			VerifyToolchain: true,
			ExportSupportBundle: true,
		},
	}
	want := []StepKind{StepVerifyToolchain, StepExportSupportBundle}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}

func TestInferStepsExplicitOptionsCanonicalOrder(t *testing.T) {
	req := &workflowpb.RunPipelineRequest{
		Options: &workflowpb.PipelineOptions{
			LaunchApp:           true,
			CreateProject:       true,
			ExportEvidenceBundle: true,
			Build:               true,
		},
	}
	want := []StepKind{StepCreateProject, StepBuild, StepLaunchApp, StepExportEvidenceBundle}
	got := kinds(InferSteps(req))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InferSteps() = %v, want %v", got, want)
	}
}
