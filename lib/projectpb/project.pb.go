// Package projectpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/project.proto: the ProjectRecord type and the
// ProjectService request/response messages.
package projectpb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/commonpb"
)

type ProjectRecord struct {
	ProjectId   string              `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ProjectName string              `protobuf:"bytes,2,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	ProjectPath string              `protobuf:"bytes,3,opt,name=project_path,json=projectPath,proto3" json:"project_path,omitempty"`
	TemplateId  string              `protobuf:"bytes,4,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	CreatedAt   *commonpb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *ProjectRecord) Reset()         { *m = ProjectRecord{} }
func (m *ProjectRecord) String() string { return proto.CompactTextString(m) }
func (*ProjectRecord) ProtoMessage()    {}

func (m *ProjectRecord) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}
func (m *ProjectRecord) GetProjectName() string {
	if m != nil {
		return m.ProjectName
	}
	return ""
}
func (m *ProjectRecord) GetProjectPath() string {
	if m != nil {
		return m.ProjectPath
	}
	return ""
}
func (m *ProjectRecord) GetTemplateId() string {
	if m != nil {
		return m.TemplateId
	}
	return ""
}
func (m *ProjectRecord) GetCreatedAt() *commonpb.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

type CreateRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProjectPath   string `protobuf:"bytes,4,opt,name=project_path,json=projectPath,proto3" json:"project_path,omitempty"`
	ProjectName   string `protobuf:"bytes,5,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	TemplateId    string `protobuf:"bytes,6,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
}

func (m *CreateRequest) Reset()         { *m = CreateRequest{} }
func (m *CreateRequest) String() string { return proto.CompactTextString(m) }
func (*CreateRequest) ProtoMessage()    {}

func (m *CreateRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *CreateRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *CreateRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *CreateRequest) GetProjectPath() string {
	if m != nil {
		return m.ProjectPath
	}
	return ""
}
func (m *CreateRequest) GetProjectName() string {
	if m != nil {
		return m.ProjectName
	}
	return ""
}
func (m *CreateRequest) GetTemplateId() string {
	if m != nil {
		return m.TemplateId
	}
	return ""
}

type CreateResponse struct {
	JobId     string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ProjectId string `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
}

func (m *CreateResponse) Reset()         { *m = CreateResponse{} }
func (m *CreateResponse) String() string { return proto.CompactTextString(m) }
func (*CreateResponse) ProtoMessage()    {}

func (m *CreateResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *CreateResponse) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

type OpenRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	ProjectPath   string `protobuf:"bytes,3,opt,name=project_path,json=projectPath,proto3" json:"project_path,omitempty"`
}

func (m *OpenRequest) Reset()         { *m = OpenRequest{} }
func (m *OpenRequest) String() string { return proto.CompactTextString(m) }
func (*OpenRequest) ProtoMessage()    {}

func (m *OpenRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *OpenRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *OpenRequest) GetProjectPath() string {
	if m != nil {
		return m.ProjectPath
	}
	return ""
}

type OpenResponse struct {
	ProjectId string `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
}

func (m *OpenResponse) Reset()         { *m = OpenResponse{} }
func (m *OpenResponse) String() string { return proto.CompactTextString(m) }
func (*OpenResponse) ProtoMessage()    {}

func (m *OpenResponse) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}
