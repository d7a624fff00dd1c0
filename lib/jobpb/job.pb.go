// Package jobpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/job.proto: the Job record, the JobEvent envelope and its
// five payload variants, and the JobService request/response messages.
// JobEvent's payload is a gogo/protobuf-style oneof: an unexported marker
// method closes the set of payload types, the same shape as the
// teacher's fsm.PlanEvent / isTerminalEvent() tagged interface in
// lib/fsm/follow.go, generalized from a bool flag to a closed type switch.
package jobpb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/commonpb"
)

// JobState is the closed lifecycle a Job moves through.
type JobState int32

const (
	JobStateUnspecified JobState = 0
	JobStateQueued      JobState = 1
	JobStateRunning     JobState = 2
	JobStateSuccess     JobState = 3
	JobStateFailed      JobState = 4
	JobStateCancelled   JobState = 5
)

var jobStateNames = map[JobState]string{
	JobStateUnspecified: "JOB_STATE_UNSPECIFIED",
	JobStateQueued:      "QUEUED",
	JobStateRunning:     "RUNNING",
	JobStateSuccess:     "SUCCESS",
	JobStateFailed:      "FAILED",
	JobStateCancelled:   "CANCELLED",
}

func (s JobState) String() string {
	if name, ok := jobStateNames[s]; ok {
		return name
	}
	return "JOB_STATE_UNKNOWN"
}

// IsTerminal reports whether s is one of Success, Failed, or Cancelled.
func (s JobState) IsTerminal() bool {
	switch s {
	case JobStateSuccess, JobStateFailed, JobStateCancelled:
		return true
	default:
		return false
	}
}

// Job is the durable record a JobService tracks for a single run.
type Job struct {
	JobId          *commonpb.Id         `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	JobType        string               `protobuf:"bytes,2,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	State          JobState             `protobuf:"varint,3,opt,name=state,proto3,enum=aadk.v1.JobState" json:"state,omitempty"`
	CreatedAt      *commonpb.Timestamp  `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt      *commonpb.Timestamp  `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt     *commonpb.Timestamp  `protobuf:"bytes,6,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	DisplayName    string               `protobuf:"bytes,7,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	CorrelationId  string               `protobuf:"bytes,8,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	ProjectId      string               `protobuf:"bytes,9,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId       string               `protobuf:"bytes,10,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId string               `protobuf:"bytes,11,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
}

func (m *Job) Reset()         { *m = Job{} }
func (m *Job) String() string { return proto.CompactTextString(m) }
func (*Job) ProtoMessage()    {}

func (m *Job) GetJobId() *commonpb.Id {
	if m != nil {
		return m.JobId
	}
	return nil
}

// JobRef is the lightweight handle returned by StartJob.
type JobRef struct {
	JobId *commonpb.Id `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *JobRef) Reset()         { *m = JobRef{} }
func (m *JobRef) String() string { return proto.CompactTextString(m) }
func (*JobRef) ProtoMessage()    {}

// JobProgress is a point-in-time progress reading.
type JobProgress struct {
	Percent uint32                 `protobuf:"varint,1,opt,name=percent,proto3" json:"percent,omitempty"`
	Phase   string                 `protobuf:"bytes,2,opt,name=phase,proto3" json:"phase,omitempty"`
	Metrics []*commonpb.KeyValue   `protobuf:"bytes,3,rep,name=metrics,proto3" json:"metrics,omitempty"`
}

func (m *JobProgress) Reset()         { *m = JobProgress{} }
func (m *JobProgress) String() string { return proto.CompactTextString(m) }
func (*JobProgress) ProtoMessage()    {}

// LogChunk is an appended slice of a job's log stream.
type LogChunk struct {
	Stream    string `protobuf:"bytes,1,opt,name=stream,proto3" json:"stream,omitempty"`
	Data      []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	Truncated bool   `protobuf:"varint,3,opt,name=truncated,proto3" json:"truncated,omitempty"`
}

func (m *LogChunk) Reset()         { *m = LogChunk{} }
func (m *LogChunk) String() string { return proto.CompactTextString(m) }
func (*LogChunk) ProtoMessage()    {}

func (m *LogChunk) GetStream() string {
	if m != nil {
		return m.Stream
	}
	return ""
}

func (m *LogChunk) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *LogChunk) GetTruncated() bool {
	if m != nil {
		return m.Truncated
	}
	return false
}

// JobStateChanged, JobProgressUpdated, JobLogAppended, JobCompleted, and
// JobFailed are JobEvent's five payload variants. isJobEventPayload is the
// closed-set marker; only types in this file may implement it.
type isJobEventPayload interface {
	isJobEventPayload()
}

type JobStateChanged struct {
	NewState JobState `protobuf:"varint,1,opt,name=new_state,json=newState,proto3,enum=aadk.v1.JobState" json:"new_state,omitempty"`
}

func (m *JobStateChanged) Reset()         { *m = JobStateChanged{} }
func (m *JobStateChanged) String() string { return proto.CompactTextString(m) }
func (*JobStateChanged) ProtoMessage()    {}
func (*JobStateChanged) isJobEventPayload() {}

type JobProgressUpdated struct {
	Progress *JobProgress `protobuf:"bytes,1,opt,name=progress,proto3" json:"progress,omitempty"`
}

func (m *JobProgressUpdated) Reset()         { *m = JobProgressUpdated{} }
func (m *JobProgressUpdated) String() string { return proto.CompactTextString(m) }
func (*JobProgressUpdated) ProtoMessage()    {}
func (*JobProgressUpdated) isJobEventPayload() {}

type JobLogAppended struct {
	Chunk *LogChunk `protobuf:"bytes,1,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (m *JobLogAppended) Reset()         { *m = JobLogAppended{} }
func (m *JobLogAppended) String() string { return proto.CompactTextString(m) }
func (*JobLogAppended) ProtoMessage()    {}
func (*JobLogAppended) isJobEventPayload() {}

func (m *JobLogAppended) GetChunk() *LogChunk {
	if m != nil {
		return m.Chunk
	}
	return nil
}

type JobCompleted struct {
	Summary string               `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	Outputs []*commonpb.KeyValue `protobuf:"bytes,2,rep,name=outputs,proto3" json:"outputs,omitempty"`
}

func (m *JobCompleted) Reset()         { *m = JobCompleted{} }
func (m *JobCompleted) String() string { return proto.CompactTextString(m) }
func (*JobCompleted) ProtoMessage()    {}
func (*JobCompleted) isJobEventPayload() {}

type JobFailed struct {
	Error *commonpb.ErrorDetail `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *JobFailed) Reset()         { *m = JobFailed{} }
func (m *JobFailed) String() string { return proto.CompactTextString(m) }
func (*JobFailed) ProtoMessage()    {}
func (*JobFailed) isJobEventPayload() {}

// JobEvent is the envelope broadcast to every StreamJobEvents subscriber
// and stored in a job's bounded history ring.
type JobEvent struct {
	At      *commonpb.Timestamp `protobuf:"bytes,1,opt,name=at,proto3" json:"at,omitempty"`
	JobId   *commonpb.Id        `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Payload isJobEventPayload   `protobuf:"bytes,3,opt,name=payload,proto3,oneof"`
}

func (m *JobEvent) Reset()         { *m = JobEvent{} }
func (m *JobEvent) String() string { return proto.CompactTextString(m) }
func (*JobEvent) ProtoMessage()    {}

func (m *JobEvent) GetAt() *commonpb.Timestamp {
	if m != nil {
		return m.At
	}
	return nil
}

func (m *JobEvent) GetJobId() *commonpb.Id {
	if m != nil {
		return m.JobId
	}
	return nil
}

func (m *JobEvent) GetStateChanged() *JobStateChanged {
	if m != nil {
		v, _ := m.Payload.(*JobStateChanged)
		return v
	}
	return nil
}

func (m *JobEvent) GetProgress() *JobProgressUpdated {
	if m != nil {
		v, _ := m.Payload.(*JobProgressUpdated)
		return v
	}
	return nil
}

func (m *JobEvent) GetLog() *JobLogAppended {
	if m != nil {
		v, _ := m.Payload.(*JobLogAppended)
		return v
	}
	return nil
}

func (m *JobEvent) GetCompleted() *JobCompleted {
	if m != nil {
		v, _ := m.Payload.(*JobCompleted)
		return v
	}
	return nil
}

func (m *JobEvent) GetFailed() *JobFailed {
	if m != nil {
		v, _ := m.Payload.(*JobFailed)
		return v
	}
	return nil
}

// IsTerminal reports whether the event's payload ends the job's stream:
// a Completed or Failed payload, or a StateChanged into a terminal state.
func (m *JobEvent) IsTerminal() bool {
	switch p := m.Payload.(type) {
	case *JobCompleted, *JobFailed:
		return true
	case *JobStateChanged:
		return p.NewState.IsTerminal()
	default:
		return false
	}
}

// NewEvent builds an envelope with At and JobId populated and the given
// payload attached. It exists so packages outside jobpb can assemble a
// JobEvent without needing to name the unexported payload interface.
func NewEvent(at *commonpb.Timestamp, jobID *commonpb.Id, payload interface{}) *JobEvent {
	p, _ := payload.(isJobEventPayload)
	return &JobEvent{At: at, JobId: jobID, Payload: p}
}

// Clone returns a deep-enough copy of the event for safe concurrent
// fan-out to multiple subscriber channels; the payload itself is treated
// as immutable once published and is not deep-copied.
func (m *JobEvent) Clone() *JobEvent {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

// StartJobRequest/StartJobResponse implement StartJob.
type StartJobRequest struct {
	JobType        string `protobuf:"bytes,1,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	ProjectId      string `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	TargetId       string `protobuf:"bytes,3,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	ToolchainSetId string `protobuf:"bytes,4,opt,name=toolchain_set_id,json=toolchainSetId,proto3" json:"toolchain_set_id,omitempty"`
}

func (m *StartJobRequest) Reset()         { *m = StartJobRequest{} }
func (m *StartJobRequest) String() string { return proto.CompactTextString(m) }
func (*StartJobRequest) ProtoMessage()    {}

func (m *StartJobRequest) GetJobType() string {
	if m != nil {
		return m.JobType
	}
	return ""
}

func (m *StartJobRequest) GetProjectId() string {
	if m != nil {
		return m.ProjectId
	}
	return ""
}

func (m *StartJobRequest) GetTargetId() string {
	if m != nil {
		return m.TargetId
	}
	return ""
}

func (m *StartJobRequest) GetToolchainSetId() string {
	if m != nil {
		return m.ToolchainSetId
	}
	return ""
}

type StartJobResponse struct {
	Job *JobRef `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
}

func (m *StartJobResponse) Reset()         { *m = StartJobResponse{} }
func (m *StartJobResponse) String() string { return proto.CompactTextString(m) }
func (*StartJobResponse) ProtoMessage()    {}

func (m *StartJobResponse) GetJob() *JobRef {
	if m != nil {
		return m.Job
	}
	return nil
}

func (m *JobRef) GetJobId() *commonpb.Id {
	if m != nil {
		return m.JobId
	}
	return nil
}

type GetJobRequest struct {
	JobId *commonpb.Id `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *GetJobRequest) Reset()         { *m = GetJobRequest{} }
func (m *GetJobRequest) String() string { return proto.CompactTextString(m) }
func (*GetJobRequest) ProtoMessage()    {}

func (m *GetJobRequest) GetJobId() *commonpb.Id {
	if m != nil {
		return m.JobId
	}
	return nil
}

type GetJobResponse struct {
	Job *Job `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
}

func (m *GetJobResponse) Reset()         { *m = GetJobResponse{} }
func (m *GetJobResponse) String() string { return proto.CompactTextString(m) }
func (*GetJobResponse) ProtoMessage()    {}

func (m *GetJobResponse) GetJob() *Job {
	if m != nil {
		return m.Job
	}
	return nil
}

type CancelJobRequest struct {
	JobId *commonpb.Id `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *CancelJobRequest) Reset()         { *m = CancelJobRequest{} }
func (m *CancelJobRequest) String() string { return proto.CompactTextString(m) }
func (*CancelJobRequest) ProtoMessage()    {}

func (m *CancelJobRequest) GetJobId() *commonpb.Id {
	if m != nil {
		return m.JobId
	}
	return nil
}

type CancelJobResponse struct {
	Accepted bool `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (m *CancelJobResponse) Reset()         { *m = CancelJobResponse{} }
func (m *CancelJobResponse) String() string { return proto.CompactTextString(m) }
func (*CancelJobResponse) ProtoMessage()    {}

func (m *CancelJobResponse) GetAccepted() bool {
	if m != nil {
		return m.Accepted
	}
	return false
}

type PublishJobEventRequest struct {
	Event *JobEvent `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
}

func (m *PublishJobEventRequest) Reset()         { *m = PublishJobEventRequest{} }
func (m *PublishJobEventRequest) String() string { return proto.CompactTextString(m) }
func (*PublishJobEventRequest) ProtoMessage()    {}

func (m *PublishJobEventRequest) GetEvent() *JobEvent {
	if m != nil {
		return m.Event
	}
	return nil
}

type PublishJobEventResponse struct {
	Accepted bool `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (m *PublishJobEventResponse) Reset()         { *m = PublishJobEventResponse{} }
func (m *PublishJobEventResponse) String() string { return proto.CompactTextString(m) }
func (*PublishJobEventResponse) ProtoMessage()    {}

func (m *PublishJobEventResponse) GetAccepted() bool {
	if m != nil {
		return m.Accepted
	}
	return false
}

type StreamJobEventsRequest struct {
	JobId          *commonpb.Id `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	IncludeHistory bool         `protobuf:"varint,2,opt,name=include_history,json=includeHistory,proto3" json:"include_history,omitempty"`
}

func (m *StreamJobEventsRequest) Reset()         { *m = StreamJobEventsRequest{} }
func (m *StreamJobEventsRequest) String() string { return proto.CompactTextString(m) }
func (*StreamJobEventsRequest) ProtoMessage()    {}

func (m *StreamJobEventsRequest) GetJobId() *commonpb.Id {
	if m != nil {
		return m.JobId
	}
	return nil
}

func (m *StreamJobEventsRequest) GetIncludeHistory() bool {
	if m != nil {
		return m.IncludeHistory
	}
	return false
}
