// Package targetpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/targets.proto: the TargetRecord type and the
// TargetsService request/response messages.
package targetpb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/commonpb"
)

type TargetRecord struct {
	TargetId      string              `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ApplicationId string              `protobuf:"bytes,2,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	ApkPath       string              `protobuf:"bytes,3,opt,name=apk_path,json=apkPath,proto3" json:"apk_path,omitempty"`
	Status        string              `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	UpdatedAt     *commonpb.Timestamp `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (m *TargetRecord) Reset()         { *m = TargetRecord{} }
func (m *TargetRecord) String() string { return proto.CompactTextString(m) }
func (*TargetRecord) ProtoMessage()    {}

func (m *TargetRecord) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}
func (m *TargetRecord) GetApplicationId() string {
	if m != nil {
		return m.ApplicationId
	}
	return ""
}
func (m *TargetRecord) GetApkPath() string {
	if m != nil {
		return m.ApkPath
	}
	return ""
}
func (m *TargetRecord) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}
func (m *TargetRecord) GetUpdatedAt() *commonpb.Timestamp {
	if m != nil {
		return m.UpdatedAt
	}
	return nil
}

type InstallApkRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetId      string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ApkPath       string `protobuf:"bytes,5,opt,name=apk_path,json=apkPath,proto3" json:"apk_path,omitempty"`
}

func (m *InstallApkRequest) Reset()         { *m = InstallApkRequest{} }
func (m *InstallApkRequest) String() string { return proto.CompactTextString(m) }
func (*InstallApkRequest) ProtoMessage()    {}

func (m *InstallApkRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *InstallApkRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *InstallApkRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *InstallApkRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}
func (m *InstallApkRequest) GetApkPath() string {
	if m != nil {
		return m.ApkPath
	}
	return ""
}

type InstallApkResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *InstallApkResponse) Reset()         { *m = InstallApkResponse{} }
func (m *InstallApkResponse) String() string { return proto.CompactTextString(m) }
func (*InstallApkResponse) ProtoMessage()    {}

func (m *InstallApkResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type LaunchRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetId      string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ApplicationId string `protobuf:"bytes,5,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	Activity      string `protobuf:"bytes,6,opt,name=activity,proto3" json:"activity,omitempty"`
}

func (m *LaunchRequest) Reset()         { *m = LaunchRequest{} }
func (m *LaunchRequest) String() string { return proto.CompactTextString(m) }
func (*LaunchRequest) ProtoMessage()    {}

func (m *LaunchRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *LaunchRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *LaunchRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *LaunchRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}
func (m *LaunchRequest) GetApplicationId() string {
	if m != nil {
		return m.ApplicationId
	}
	return ""
}
func (m *LaunchRequest) GetActivity() string {
	if m != nil {
		return m.Activity
	}
	return ""
}

type LaunchResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *LaunchResponse) Reset()         { *m = LaunchResponse{} }
func (m *LaunchResponse) String() string { return proto.CompactTextString(m) }
func (*LaunchResponse) ProtoMessage()    {}

func (m *LaunchResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type StopRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetId      string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ApplicationId string `protobuf:"bytes,5,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
}

func (m *StopRequest) Reset()         { *m = StopRequest{} }
func (m *StopRequest) String() string { return proto.CompactTextString(m) }
func (*StopRequest) ProtoMessage()    {}

func (m *StopRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *StopRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *StopRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *StopRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}
func (m *StopRequest) GetApplicationId() string {
	if m != nil {
		return m.ApplicationId
	}
	return ""
}

type StopResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *StopResponse) Reset()         { *m = StopResponse{} }
func (m *StopResponse) String() string { return proto.CompactTextString(m) }
func (*StopResponse) ProtoMessage()    {}

func (m *StopResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type CuttlefishInstallRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetId      string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
}

func (m *CuttlefishInstallRequest) Reset()         { *m = CuttlefishInstallRequest{} }
func (m *CuttlefishInstallRequest) String() string { return proto.CompactTextString(m) }
func (*CuttlefishInstallRequest) ProtoMessage()    {}

func (m *CuttlefishInstallRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *CuttlefishInstallRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *CuttlefishInstallRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *CuttlefishInstallRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

type CuttlefishInstallResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *CuttlefishInstallResponse) Reset()         { *m = CuttlefishInstallResponse{} }
func (m *CuttlefishInstallResponse) String() string { return proto.CompactTextString(m) }
func (*CuttlefishInstallResponse) ProtoMessage()    {}

func (m *CuttlefishInstallResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type CuttlefishStartRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetId      string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
}

func (m *CuttlefishStartRequest) Reset()         { *m = CuttlefishStartRequest{} }
func (m *CuttlefishStartRequest) String() string { return proto.CompactTextString(m) }
func (*CuttlefishStartRequest) ProtoMessage()    {}

func (m *CuttlefishStartRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *CuttlefishStartRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *CuttlefishStartRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *CuttlefishStartRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

type CuttlefishStartResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *CuttlefishStartResponse) Reset()         { *m = CuttlefishStartResponse{} }
func (m *CuttlefishStartResponse) String() string { return proto.CompactTextString(m) }
func (*CuttlefishStartResponse) ProtoMessage()    {}

func (m *CuttlefishStartResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type CuttlefishStopRequest struct {
	CorrelationId string `protobuf:"bytes,1,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId         string `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetId      string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
}

func (m *CuttlefishStopRequest) Reset()         { *m = CuttlefishStopRequest{} }
func (m *CuttlefishStopRequest) String() string { return proto.CompactTextString(m) }
func (*CuttlefishStopRequest) ProtoMessage()    {}

func (m *CuttlefishStopRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}
func (m *CuttlefishStopRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}
func (m *CuttlefishStopRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
func (m *CuttlefishStopRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

type CuttlefishStopResponse struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *CuttlefishStopResponse) Reset()         { *m = CuttlefishStopResponse{} }
func (m *CuttlefishStopResponse) String() string { return proto.CompactTextString(m) }
func (*CuttlefishStopResponse) ProtoMessage()    {}

func (m *CuttlefishStopResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}
