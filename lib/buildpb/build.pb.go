// Package buildpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/build.proto: the BuildRecord type and the BuildService
// request/response messages.
package buildpb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/commonpb"
)

type BuildRecord struct {
	BuildId      string              `protobuf:"bytes,1,opt,name=build_id,json=buildId,proto3" json:"build_id,omitempty"`
	ProjectId    string              `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	BuildVariant string              `protobuf:"bytes,3,opt,name=build_variant,json=buildVariant,proto3" json:"build_variant,omitempty"`
	Module       string              `protobuf:"bytes,4,opt,name=module,proto3" json:"module,omitempty"`
	VariantName  string              `protobuf:"bytes,5,opt,name=variant_name,json=variantName,proto3" json:"variant_name,omitempty"`
	ApkPath      string              `protobuf:"bytes,6,opt,name=apk_path,json=apkPath,proto3" json:"apk_path,omitempty"`
	Status       string              `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	UpdatedAt    *commonpb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *BuildRecord) Reset()         { *m = BuildRecord{} }
func (m *BuildRecord) String() string { return proto.CompactTextString(m) }
func (*BuildRecord) ProtoMessage()    {}

func (m *BuildRecord) GetBuildId() string {
	if m != nil {
		return m.BuildId
	}
	return ""
}
func (m *BuildRecord) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}
func (m *BuildRecord) GetBuildVariant() string {
	if m != nil {
		return m.BuildVariant
	}
	return ""
}
func (m *BuildRecord) GetModule() string {
	if m != nil {
		return m.Module
	}
	return ""
}
func (m *BuildRecord) GetVariantName() string {
	if m != nil {
		return m.VariantName
	}
	return ""
}
func (m *BuildRecord) GetApkPath() string {
	if m != nil {
		return m.ApkPath
	}
	return ""
}
func (m *BuildRecord) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}
func (m *BuildRecord) GetUpdatedAt() *commonpb.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type RunRequest struct {
	CorrelationId string   `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string   `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string   `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProjectId     string   `protobuf:"bytes,4,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	BuildVariant  string   `protobuf:"bytes,5,opt,name=build_variant,json=buildVariant,proto3" json:"build_variant,omitempty"`
	Module        string   `protobuf:"bytes,6,opt,name=module,proto3" json:"module,omitempty"`
	VariantName   string   `protobuf:"bytes,7,opt,name=variant_name,json=variantName,proto3" json:"variant_name,omitempty"`
	Tasks         []string `protobuf:"bytes,8,rep,name=tasks,proto3" json:"tasks,omitempty"`
}

func (m *RunRequest) Reset()         { *m = RunRequest{} }
func (m *RunRequest) String() string { return proto.CompactTextString(m) }
func (*RunRequest) ProtoMessage()    {}

func (m *RunRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *RunRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *RunRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *RunRequest) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}
func (m *RunRequest) GetBuildVariant() string {
	if m != nil {
		return m.BuildVariant
	}
	return ""
}
func (m *RunRequest) GetModule() string {
	if m != nil {
		return m.Module
	}
	return ""
}
func (m *RunRequest) GetVariantName() string {
	if m != nil {
		return m.VariantName
	}
	return ""
}
func (m *RunRequest) GetTasks() []string {
	if m != nil {
		return m.Tasks
	}
	return nil
}

type RunResponse struct {
	JobId   string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	BuildId string `protobuf:"bytes,2,opt,name=build_id,json=buildId,proto3" json:"build_id,omitempty"`
}

func (m *RunResponse) Reset()         { *m = RunResponse{} }
func (m *RunResponse) String() string { return proto.CompactTextString(m) }
func (*RunResponse) ProtoMessage()    {}

func (m *RunResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *RunResponse) GetBuildId() string {
	if m != nil {
		return m.BuildId
	}
	return ""
}
