// Package toolchainpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/toolchain.proto: the ToolchainRecord type and the
// ToolchainService request/response messages.
package toolchainpb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/commonpb"
)

type ToolchainRecord struct {
	ToolchainId string              `protobuf:"bytes,1,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
	Version     string              `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	Host        string              `protobuf:"bytes,3,opt,name=host,proto3" json:"host,omitempty"`
	Status      string              `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	UpdatedAt   *commonpb.Timestamp `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *ToolchainRecord) Reset()         { *m = ToolchainRecord{} }
func (m *ToolchainRecord) String() string { return proto.CompactTextString(m) }
func (*ToolchainRecord) ProtoMessage()    {}

func (m *ToolchainRecord) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

func (m *ToolchainRecord) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *ToolchainRecord) GetHost() string {
	if m != nil {
		return m.Host
	}
	return ""
}

func (m *ToolchainRecord) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *ToolchainRecord) GetUpdatedAt() *commonpb.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type InstallRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId   string `protobuf:"bytes,4,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
	Version       string `protobuf:"bytes,5,opt,name=version,proto3" json:"version,omitempty"`
	Host          string `protobuf:"bytes,6,opt,name=host,proto3" json:"host,omitempty"`
}

func (m *InstallRequest) Reset()         { *m = InstallRequest{} }
func (m *InstallRequest) String() string { return proto.CompactTextString(m) }
func (*InstallRequest) ProtoMessage()    {}

func (m *InstallRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *InstallRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *InstallRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *InstallRequest) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}
func (m *InstallRequest) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}
func (m *InstallRequest) GetHost() string {
	if m != nil {
		return m.Host
	}
	return ""
}

type InstallResponse struct {
	JobId       string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId string `protobuf:"bytes,2,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
}

func (m *InstallResponse) Reset()         { *m = InstallResponse{} }
func (m *InstallResponse) String() string { return proto.CompactTextString(m) }
func (*InstallResponse) ProtoMessage()    {}

func (m *InstallResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *InstallResponse) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

type VerifyRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId   string `protobuf:"bytes,4,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
}

func (m *VerifyRequest) Reset()         { *m = VerifyRequest{} }
func (m *VerifyRequest) String() string { return proto.CompactTextString(m) }
func (*VerifyRequest) ProtoMessage()    {}

func (m *VerifyRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *VerifyRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *VerifyRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *VerifyRequest) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

type VerifyResponse struct {
	JobId       string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId string `protobuf:"bytes,2,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
}

func (m *VerifyResponse) Reset()         { *m = VerifyResponse{} }
func (m *VerifyResponse) String() string { return proto.CompactTextString(m) }
func (*VerifyResponse) ProtoMessage()    {}

func (m *VerifyResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *VerifyResponse) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

type UpdateRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId   string `protobuf:"bytes,4,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
	Version       string `protobuf:"bytes,5,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *UpdateRequest) Reset()         { *m = UpdateRequest{} }
func (m *UpdateRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateRequest) ProtoMessage()    {}

func (m *UpdateRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *UpdateRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *UpdateRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *UpdateRequest) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}
func (m *UpdateRequest) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

type UpdateResponse struct {
	JobId       string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId string `protobuf:"bytes,2,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
}

func (m *UpdateResponse) Reset()         { *m = UpdateResponse{} }
func (m *UpdateResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateResponse) ProtoMessage()    {}

func (m *UpdateResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *UpdateResponse) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

type UninstallRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId   string `protobuf:"bytes,4,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
}

func (m *UninstallRequest) Reset()         { *m = UninstallRequest{} }
func (m *UninstallRequest) String() string { return proto.CompactTextString(m) }
func (*UninstallRequest) ProtoMessage()    {}

func (m *UninstallRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *UninstallRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *UninstallRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *UninstallRequest) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

type UninstallResponse struct {
	JobId       string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ToolchainId string `protobuf:"bytes,2,opt,name=toolchain_id,json=toolchainId,proto3" json:"toolchain_id,omitempty"`
}

func (m *UninstallResponse) Reset()         { *m = UninstallResponse{} }
func (m *UninstallResponse) String() string { return proto.CompactTextString(m) }
func (*UninstallResponse) ProtoMessage()    {}

func (m *UninstallResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *UninstallResponse) GetToolchainId() string {
	if m != nil {
		return m.ToolchainId
	}
	return ""
}

type CleanupCacheRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *CleanupCacheRequest) Reset()         { *m = CleanupCacheRequest{} }
func (m *CleanupCacheRequest) String() string { return proto.CompactTextString(m) }
func (*CleanupCacheRequest) ProtoMessage()    {}

func (m *CleanupCacheRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *CleanupCacheRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *CleanupCacheRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type CleanupCacheResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *CleanupCacheResponse) Reset()         { *m = CleanupCacheResponse{} }
func (m *CleanupCacheResponse) String() string { return proto.CompactTextString(m) }
func (*CleanupCacheResponse) ProtoMessage()    {}

func (m *CleanupCacheResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
