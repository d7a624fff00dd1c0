// Package observepb holds the hand-maintained Go counterparts of
// proto/aadk/v1/observe.proto: the RunRecord/RunOutput registry types
// and the ObserveService request/response messages.
package observepb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/commonpb"
)

type RunOutputKind int32

const (
	RunOutputKindUnspecified RunOutputKind = 0
	RunOutputKindBundle      RunOutputKind = 1
	RunOutputKindArtifact    RunOutputKind = 2
)

func (k RunOutputKind) String() string {
	switch k {
	case RunOutputKindBundle:
		return "BUNDLE"
	case RunOutputKindArtifact:
		return "ARTIFACT"
	default:
		return "RUN_OUTPUT_KIND_UNSPECIFIED"
	}
}

type RunOutputSummary struct {
	BundleCount   uint32              `protobuf:"varint,1,opt,name=bundle_count,json=bundleCount,proto3" json:"bundle_count,omitempty"`
	ArtifactCount uint32              `protobuf:"varint,2,opt,name=artifact_count,json=artifactCount,proto3" json:"artifact_count,omitempty"`
	LastUpdatedAt *commonpb.Timestamp `protobuf:"bytes,3,opt,name=last_updated_at,json=lastUpdatedAt,proto3" json:"last_updated_at,omitempty"`
	LastBundleId  string              `protobuf:"bytes,4,opt,name=last_bundle_id,json=lastBundleId,proto3" json:"last_bundle_id,omitempty"`
}

func (m *RunOutputSummary) Reset()         { *m = RunOutputSummary{} }
func (m *RunOutputSummary) String() string { return proto.CompactTextString(m) }
func (*RunOutputSummary) ProtoMessage()    {}

type RunRecord struct {
	SchemaVersion  uint32                `protobuf:"varint,1,opt,name=schema_version,json=schemaVersion,proto3" json:"schema_version,omitempty"`
	RunId          string                `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	CorrelationId  string                `protobuf:"bytes,3,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	ProjectId      string                `protobuf:"bytes,4,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId       string                `protobuf:"bytes,5,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId string                `protobuf:"bytes,6,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
	StartedAt      *commonpb.Timestamp   `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt     *commonpb.Timestamp   `protobuf:"bytes,8,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	Result         string                `protobuf:"bytes,9,opt,name=result,proto3" json:"result,omitempty"`
	JobIds         []string              `protobuf:"bytes,10,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	Summary        []*commonpb.KeyValue  `protobuf:"bytes,11,rep,name=summary,proto3" json:"summary,omitempty"`
	OutputSummary  *RunOutputSummary     `protobuf:"bytes,12,opt,name=output_summary,json=outputSummary,proto3" json:"output_summary,omitempty"`
}

func (m *RunRecord) Reset()         { *m = RunRecord{} }
func (m *RunRecord) String() string { return proto.CompactTextString(m) }
func (*RunRecord) ProtoMessage()    {}

type RunOutput struct {
	OutputId  string              `protobuf:"bytes,1,opt,name=output_id,json=outputId,proto3" json:"output_id,omitempty"`
	RunId     string              `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Kind      RunOutputKind       `protobuf:"varint,3,opt,name=kind,proto3,enum=aadk.v1.RunOutputKind" json:"kind,omitempty"`
	OutputType string             `protobuf:"bytes,4,opt,name=output_type,json=outputType,proto3" json:"output_type,omitempty"`
	Path      string              `protobuf:"bytes,5,opt,name=path,proto3" json:"path,omitempty"`
	Label     string              `protobuf:"bytes,6,opt,name=label,proto3" json:"label,omitempty"`
	JobId     string              `protobuf:"bytes,7,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CreatedAt *commonpb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *RunOutput) Reset()         { *m = RunOutput{} }
func (m *RunOutput) String() string { return proto.CompactTextString(m) }
func (*RunOutput) ProtoMessage()    {}

type RunFilter struct {
	RunId          string `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	CorrelationId  string `protobuf:"bytes,2,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	ProjectId      string `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId       string `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId string `protobuf:"bytes,5,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
	Result         string `protobuf:"bytes,6,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *RunFilter) Reset()         { *m = RunFilter{} }
func (m *RunFilter) String() string { return proto.CompactTextString(m) }
func (*RunFilter) ProtoMessage()    {}

type RunOutputFilter struct {
	Kind          RunOutputKind `protobuf:"varint,1,opt,name=kind,proto3,enum=aadk.v1.RunOutputKind" json:"kind,omitempty"`
	OutputType    string        `protobuf:"bytes,2,opt,name=output_type,json=outputType,proto3" json:"output_type,omitempty"`
	PathContains  string        `protobuf:"bytes,3,opt,name=path_contains,json=pathContains,proto3" json:"path_contains,omitempty"`
	LabelContains string        `protobuf:"bytes,4,opt,name=label_contains,json=labelContains,proto3" json:"label_contains,omitempty"`
}

func (m *RunOutputFilter) Reset()         { *m = RunOutputFilter{} }
func (m *RunOutputFilter) String() string { return proto.CompactTextString(m) }
func (*RunOutputFilter) ProtoMessage()    {}

type Pagination struct {
	PageToken string `protobuf:"bytes,1,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	PageSize  uint32 `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
}

func (m *Pagination) Reset()         { *m = Pagination{} }
func (m *Pagination) String() string { return proto.CompactTextString(m) }
func (*Pagination) ProtoMessage()    {}

type PageInfo struct {
	NextPageToken string `protobuf:"bytes,1,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	Total         uint32 `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *PageInfo) Reset()         { *m = PageInfo{} }
func (m *PageInfo) String() string { return proto.CompactTextString(m) }
func (*PageInfo) ProtoMessage()    {}

type ListRunsRequest struct {
	Filter     *RunFilter  `protobuf:"bytes,1,opt,name=filter,proto3" json:"filter,omitempty"`
	Pagination *Pagination `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *ListRunsRequest) Reset()         { *m = ListRunsRequest{} }
func (m *ListRunsRequest) String() string { return proto.CompactTextString(m) }
func (*ListRunsRequest) ProtoMessage()    {}

func (m *ListRunsRequest) GetFilter() *RunFilter {
	if m != nil {
		return m.Filter
	}
	return nil
}

func (m *ListRunsRequest) GetPagination() *Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

type ListRunsResponse struct {
	Runs []*RunRecord `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	Page *PageInfo    `protobuf:"bytes,2,opt,name=page,proto3" json:"page,omitempty"`
}

func (m *ListRunsResponse) Reset()         { *m = ListRunsResponse{} }
func (m *ListRunsResponse) String() string { return proto.CompactTextString(m) }
func (*ListRunsResponse) ProtoMessage()    {}

type ListRunOutputsRequest struct {
	RunId      string           `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Filter     *RunOutputFilter `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	Pagination *Pagination      `protobuf:"bytes,3,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *ListRunOutputsRequest) Reset()         { *m = ListRunOutputsRequest{} }
func (m *ListRunOutputsRequest) String() string { return proto.CompactTextString(m) }
func (*ListRunOutputsRequest) ProtoMessage()    {}

func (m *ListRunOutputsRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *ListRunOutputsRequest) GetFilter() *RunOutputFilter {
	if m != nil {
		return m.Filter
	}
	return nil
}

func (m *ListRunOutputsRequest) GetPagination() *Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

type ListRunOutputsResponse struct {
	Outputs []*RunOutput      `protobuf:"bytes,1,rep,name=outputs,proto3" json:"outputs,omitempty"`
	Page    *PageInfo         `protobuf:"bytes,2,opt,name=page,proto3" json:"page,omitempty"`
	Summary *RunOutputSummary `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
}

func (m *ListRunOutputsResponse) Reset()         { *m = ListRunOutputsResponse{} }
func (m *ListRunOutputsResponse) String() string { return proto.CompactTextString(m) }
func (*ListRunOutputsResponse) ProtoMessage()    {}

type UpsertRunRequest struct {
	RunId          string               `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	CorrelationId  string               `protobuf:"bytes,2,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	ProjectId      string               `protobuf:"bytes,3,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId       string               `protobuf:"bytes,4,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId string               `protobuf:"bytes,5,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
	StartedAt      *commonpb.Timestamp  `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt     *commonpb.Timestamp  `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	Result         string               `protobuf:"bytes,8,opt,name=result,proto3" json:"result,omitempty"`
	JobIds         []string             `protobuf:"bytes,9,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	Summary        []*commonpb.KeyValue `protobuf:"bytes,10,rep,name=summary,proto3" json:"summary,omitempty"`
}

func (m *UpsertRunRequest) Reset()         { *m = UpsertRunRequest{} }
func (m *UpsertRunRequest) String() string { return proto.CompactTextString(m) }
func (*UpsertRunRequest) ProtoMessage()    {}

type UpsertRunResponse struct {
	Run *RunRecord `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
}

func (m *UpsertRunResponse) Reset()         { *m = UpsertRunResponse{} }
func (m *UpsertRunResponse) String() string { return proto.CompactTextString(m) }
func (*UpsertRunResponse) ProtoMessage()    {}

type UpsertRunOutputsRequest struct {
	RunId   string       `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Outputs []*RunOutput `protobuf:"bytes,2,rep,name=outputs,proto3" json:"outputs,omitempty"`
}

func (m *UpsertRunOutputsRequest) Reset()         { *m = UpsertRunOutputsRequest{} }
func (m *UpsertRunOutputsRequest) String() string { return proto.CompactTextString(m) }
func (*UpsertRunOutputsRequest) ProtoMessage()    {}

type UpsertRunOutputsResponse struct {
	Summary *RunOutputSummary `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
}

func (m *UpsertRunOutputsResponse) Reset()         { *m = UpsertRunOutputsResponse{} }
func (m *UpsertRunOutputsResponse) String() string { return proto.CompactTextString(m) }
func (*UpsertRunOutputsResponse) ProtoMessage()    {}

type ExportSupportBundleRequest struct {
	ProjectId       string `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId        string `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId  string `protobuf:"bytes,3,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
	IncludeConfig   bool   `protobuf:"varint,4,opt,name=include_config,json=includeConfig,proto3" json:"include_config,omitempty"`
	IncludeState    bool   `protobuf:"varint,5,opt,name=include_state,json=includeState,proto3" json:"include_state,omitempty"`
	IncludeRuns     bool   `protobuf:"varint,6,opt,name=include_runs,json=includeRuns,proto3" json:"include_runs,omitempty"`
	IncludeLogs     bool   `protobuf:"varint,7,opt,name=include_logs,json=includeLogs,proto3" json:"include_logs,omitempty"`
	RecentRunsLimit uint32 `protobuf:"varint,8,opt,name=recent_runs_limit,json=recentRunsLimit,proto3" json:"recent_runs_limit,omitempty"`
	CorrelationId   string `protobuf:"bytes,9,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	RunId           string `protobuf:"bytes,10,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
}

func (m *ExportSupportBundleRequest) Reset()         { *m = ExportSupportBundleRequest{} }
func (m *ExportSupportBundleRequest) String() string { return proto.CompactTextString(m) }
func (*ExportSupportBundleRequest) ProtoMessage()    {}

type ExportSupportBundleResponse struct {
	JobId      string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	OutputPath string `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
}

func (m *ExportSupportBundleResponse) Reset()         { *m = ExportSupportBundleResponse{} }
func (m *ExportSupportBundleResponse) String() string { return proto.CompactTextString(m) }
func (*ExportSupportBundleResponse) ProtoMessage()    {}

type ExportEvidenceBundleRequest struct {
	RunId         string `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	CorrelationId string `protobuf:"bytes,2,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	JobId         string `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *ExportEvidenceBundleRequest) Reset()         { *m = ExportEvidenceBundleRequest{} }
func (m *ExportEvidenceBundleRequest) String() string { return proto.CompactTextString(m) }
func (*ExportEvidenceBundleRequest) ProtoMessage()    {}

type ExportEvidenceBundleResponse struct {
	JobId      string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	OutputPath string `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
}

func (m *ExportEvidenceBundleResponse) Reset()         { *m = ExportEvidenceBundleResponse{} }
func (m *ExportEvidenceBundleResponse) String() string { return proto.CompactTextString(m) }
func (*ExportEvidenceBundleResponse) ProtoMessage()    {}

type ReloadStateRequest struct{}

func (m *ReloadStateRequest) Reset()         { *m = ReloadStateRequest{} }
func (m *ReloadStateRequest) String() string { return proto.CompactTextString(m) }
func (*ReloadStateRequest) ProtoMessage()    {}

type ReloadStateResponse struct {
	Ok        bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	ItemCount uint32 `protobuf:"varint,2,opt,name=item_count,json=itemCount,proto3" json:"item_count,omitempty"`
	Detail    string `protobuf:"bytes,3,opt,name=detail,proto3" json:"detail,omitempty"`
}

func (m *ReloadStateResponse) Reset()         { *m = ReloadStateResponse{} }
func (m *ReloadStateResponse) String() string { return proto.CompactTextString(m) }
func (*ReloadStateResponse) ProtoMessage()    {}

func (m *RunOutput) GetOutputId() string {
	if m != nil {
		return m.OutputId
	}
	return ""
}

func (m *RunOutput) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *RunOutput) GetKind() RunOutputKind {
	if m != nil {
		return m.Kind
	}
	return RunOutputKindUnspecified
}

func (m *RunOutput) GetOutputType() string {
	if m != nil {
		return m.OutputType
	}
	return ""
}

func (m *RunOutput) GetPath() string {
	if m != nil {
		return m.Path
	}
	return ""
}

func (m *RunOutput) GetLabel() string {
	if m != nil {
		return m.Label
	}
	return ""
}

func (m *RunOutput) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *RunOutput) GetCreatedAt() *commonpb.Timestamp {
	if m != nil {
		return m.CreatedAt
	}
	return nil
}

func (m *RunRecord) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *RunRecord) GetOutputSummary() *RunOutputSummary {
	if m != nil {
		return m.OutputSummary
	}
	return nil
}

func (m *RunRecord) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

func (m *RunRecord) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

func (m *RunRecord) GetToolchainSetId() string {
	if m != nil {
		return m.ToolchainSetId
	}
	return ""
}

func (m *RunRecord) GetJobIds() []string {
	if m != nil {
		return m.JobIds
	}
	return nil
}

func (m *RunRecord) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}

func (m *RunRecord) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

func (m *UpsertRunRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *UpsertRunRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}

func (m *UpsertRunRequest) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

func (m *UpsertRunRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

func (m *UpsertRunRequest) GetToolchainSetId() string {
	if m != nil {
		return m.ToolchainSetId
	}
	return ""
}

func (m *UpsertRunRequest) GetStartedAt() *commonpb.Timestamp {
	if m != nil {
		return m.StartedAt
	}
	return nil
}

func (m *UpsertRunRequest) GetFinishedAt() *commonpb.Timestamp {
	if m != nil {
		return m.FinishedAt
	}
	return nil
}

func (m *UpsertRunRequest) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

func (m *UpsertRunRequest) GetJobIds() []string {
	if m != nil {
		return m.JobIds
	}
	return nil
}

func (m *UpsertRunRequest) GetSummary() []*commonpb.KeyValue {
	if m != nil {
		return m.Summary
	}
	return nil
}

func (m *UpsertRunResponse) GetRun() *RunRecord {
	if m != nil {
		return m.Run
	}
	return nil
}

func (m *UpsertRunOutputsRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *UpsertRunOutputsRequest) GetOutputs() []*RunOutput {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *UpsertRunOutputsResponse) GetSummary() *RunOutputSummary {
	if m != nil {
		return m.Summary
	}
	return nil
}

func (m *ExportSupportBundleRequest) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

func (m *ExportSupportBundleRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

func (m *ExportSupportBundleRequest) GetToolchainSetId() string {
	if m != nil {
		return m.ToolchainSetId
	}
	return ""
}

func (m *ExportSupportBundleRequest) GetIncludeConfig() bool {
	if m != nil {
		return m.IncludeConfig
	}
	return false
}

func (m *ExportSupportBundleRequest) GetIncludeState() bool {
	if m != nil {
		return m.IncludeState
	}
	return false
}

func (m *ExportSupportBundleRequest) GetIncludeRuns() bool {
	if m != nil {
		return m.IncludeRuns
	}
	return false
}

func (m *ExportSupportBundleRequest) GetIncludeLogs() bool {
	if m != nil {
		return m.IncludeLogs
	}
	return false
}

func (m *ExportSupportBundleRequest) GetRecentRunsLimit() uint32 {
	if m != nil {
		return m.RecentRunsLimit
	}
	return 0
}

func (m *ExportSupportBundleRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}

func (m *ExportSupportBundleRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *ExportEvidenceBundleRequest) GetRunId() string {
	if m != nil {
		return m.RunId
	}
	return ""
}

func (m *ExportEvidenceBundleRequest) GetCorrelationId() string {
	if m != nil {
		return m.CorrelationId
	}
	return ""
}

func (m *ExportEvidenceBundleRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *ListRunsResponse) GetRuns() []*RunRecord {
	if m != nil {
		return m.Runs
	}
	return nil
}

func (m *ListRunsResponse) GetPage() *PageInfo {
	if m != nil {
		return m.Page
	}
	return nil
}

func (m *ListRunOutputsResponse) GetOutputs() []*RunOutput {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *ListRunOutputsResponse) GetPage() *PageInfo {
	if m != nil {
		return m.Page
	}
	return nil
}

func (m *ListRunOutputsResponse) GetSummary() *RunOutputSummary {
	if m != nil {
		return m.Summary
	}
	return nil
}

func (m *ExportSupportBundleResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *ExportSupportBundleResponse) GetOutputPath() string {
	if m != nil {
		return m.OutputPath
	}
	return ""
}

func (m *ExportEvidenceBundleResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *ExportEvidenceBundleResponse) GetOutputPath() string {
	if m != nil {
		return m.OutputPath
	}
	return ""
}

func (m *ReloadStateResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

func (m *ReloadStateResponse) GetItemCount() uint32 {
	if m != nil {
		return m.ItemCount
	}
	return 0
}

func (m *ReloadStateResponse) GetDetail() string {
	if m != nil {
		return m.Detail
	}
	return ""
}
