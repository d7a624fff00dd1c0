// Package workflowpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/workflow.proto: the RunPipeline request/response
// messages for WorkflowService.
package workflowpb

import (
	proto "github.com/gogo/protobuf/proto"
)

type PipelineOptions struct {
	CreateProject         bool `protobuf:"varint,1,opt,name=create_project,json=createProject,proto3" json:"create_project,omitempty"`
	OpenProject           bool `protobuf:"varint,2,opt,name=open_project,json=openProject,proto3" json:"open_project,omitempty"`
	VerifyToolchain       bool `protobuf:"varint,3,opt,name=verify_toolchain,json=verifyToolchain,proto3" json:"verify_toolchain,omitempty"`
	Build                 bool `protobuf:"varint,4,opt,name=build,proto3" json:"build,omitempty"`
	InstallApk            bool `protobuf:"varint,5,opt,name=install_apk,json=installApk,proto3" json:"install_apk,omitempty"`
	LaunchApp             bool `protobuf:"varint,6,opt,name=launch_app,json=launchApp,proto3" json:"launch_app,omitempty"`
	ExportSupportBundle   bool `protobuf:"varint,7,opt,name=export_support_bundle,json=exportSupportBundle,proto3" json:"export_support_bundle,omitempty"`
	ExportEvidenceBundle  bool `protobuf:"varint,8,opt,name=export_evidence_bundle,json=exportEvidenceBundle,proto3" json:"export_evidence_bundle,omitempty"`
}

func (m *PipelineOptions) Reset()         { *m = PipelineOptions{} }
func (m *PipelineOptions) String() string { return proto.CompactTextString(m) }
func (*PipelineOptions) ProtoMessage()    {}

func (m *PipelineOptions) GetCreateProject() bool {
	if m != nil {
		return m.CreateProject
	}
	return false
}

func (m *PipelineOptions) GetOpenProject() bool {
	if m != nil {
		return m.OpenProject
	}
	return false
}

func (m *PipelineOptions) GetVerifyToolchain() bool {
	if m != nil {
		return m.VerifyToolchain
	}
	return false
}

func (m *PipelineOptions) GetBuild() bool {
	if m != nil {
		return m.Build
	}
	return false
}

func (m *PipelineOptions) GetInstallApk() bool {
	if m != nil {
		return m.InstallApk
	}
	return false
}

func (m *PipelineOptions) GetLaunchApp() bool {
	if m != nil {
		return m.LaunchApp
	}
	return false
}

func (m *PipelineOptions) GetExportSupportBundle() bool {
	if m != nil {
		return m.ExportSupportBundle
	}
	return false
}

func (m *PipelineOptions) GetExportEvidenceBundle() bool {
	if m != nil {
		return m.ExportEvidenceBundle
	}
	return false
}

type RunPipelineRequest struct {
	CorrelationId  string           `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId          string           `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId          string           `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProjectId      string           `protobuf:"bytes,4,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId       string           `protobuf:"bytes,5,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId string           `protobuf:"bytes,6,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
	Options        *PipelineOptions `protobuf:"bytes,7,opt,name=options,proto3" json:"options,omitempty"`
	ProjectPath    string           `protobuf:"bytes,8,opt,name=project_path,json=projectPath,proto3" json:"project_path,omitempty"`
	ProjectName    string           `protobuf:"bytes,9,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	TemplateId     string           `protobuf:"bytes,10,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	ToolchainId    string           `protobuf:"bytes,11,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
	BuildVariant   string           `protobuf:"bytes,12,opt,name=build_variant,json=buildVariant,proto3" json:"build_variant,omitempty"`
	Module         string           `protobuf:"bytes,13,opt,name=module,proto3" json:"module,omitempty"`
	VariantName    string           `protobuf:"bytes,14,opt,name=variant_name,json=variantName,proto3" json:"variant_name,omitempty"`
	Tasks          []string         `protobuf:"bytes,15,rep,name=tasks,proto3" json:"tasks,omitempty"`
	ApkPath        string           `protobuf:"bytes,16,opt,name=apk_path,json=apkPath,proto3" json:"apk_path,omitempty"`
	ApplicationId  string           `protobuf:"bytes,17,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	Activity       string           `protobuf:"bytes,18,opt,name=activity,proto3" json:"activity,omitempty"`
}

func (m *RunPipelineRequest) Reset()         { *m = RunPipelineRequest{} }
func (m *RunPipelineRequest) String() string { return proto.CompactTextString(m) }
func (*RunPipelineRequest) ProtoMessage()    {}

func (m *RunPipelineRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}

func (m *RunPipelineRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *RunPipelineRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *RunPipelineRequest) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

func (m *RunPipelineRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

func (m *RunPipelineRequest) GetToolchainSetId() string {
	if m != nil {
		return m.ToolchainSetId
	}
	return ""
}

func (m *RunPipelineRequest) GetOptions() *PipelineOptions {
	if m != nil {
		return m.Options
	}
	return nil
}

func (m *RunPipelineRequest) GetProjectPath() string {
	if m != nil {
		return m.ProjectPath
	}
	return ""
}

func (m *RunPipelineRequest) GetProjectName() string {
	if m != nil {
		return m.ProjectName
	}
	return ""
}

func (m *RunPipelineRequest) GetTemplateId() string {
	if m != nil {
		return m.TemplateId
	}
	return ""
}

func (m *RunPipelineRequest) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

func (m *RunPipelineRequest) GetBuildVariant() string {
	if m != nil {
		return m.BuildVariant
	}
	return ""
}

func (m *RunPipelineRequest) GetModule() string {
	if m != nil {
		return m.Module
	}
	return ""
}

func (m *RunPipelineRequest) GetVariantName() string {
	if m != nil {
		return m.VariantName
	}
	return ""
}

func (m *RunPipelineRequest) GetTasks() []string {
	if m != nil {
		return m.Tasks
	}
	return nil
}

func (m *RunPipelineRequest) GetApkPath() string {
	if m != nil {
		return m.ApkPath
	}
	return ""
}

func (m *RunPipelineRequest) GetApplicationId() string {
	if m != nil {
		return m.ApplicationId
	}
	return ""
}

func (m *RunPipelineRequest) GetActivity() string {
	if m != nil {
		return m.Activity
	}
	return ""
}

type RunPipelineResponse struct {
	RunId     string   `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId     string   `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProjectId string   `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Outputs   []string `protobuf:"bytes,4,rep,name=outputs,proto3" json:"outputs,omitempty"`
}

func (m *RunPipelineResponse) Reset()         { *m = RunPipelineResponse{} }
func (m *RunPipelineResponse) String() string { return proto.CompactTextString(m) }
func (*RunPipelineResponse) ProtoMessage()    {}

func (m *RunPipelineResponse) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *RunPipelineResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *RunPipelineResponse) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

func (m *RunPipelineResponse) GetOutputs() []string {
	if m != nil {
		return m.Outputs
	}
	return nil
}
