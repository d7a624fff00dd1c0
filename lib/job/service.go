package job

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

// Service implements jobpb.JobServiceServer against an in-memory Store.
// StartJob additionally spawns the built-in demo.job runner so the
// service is independently exercisable without any collaborator worker
// (spec §8 scenario 1).
type Service struct {
	jobpb.UnimplementedJobServiceServer

	store *Store
}

// NewService constructs a Service backed by a fresh Store.
func NewService() *Service {
	return &Service{store: NewStore()}
}

func displayNameFor(jobType string) string {
	if jobType == "demo.job" {
		return "Demo Job"
	}
	return jobType
}

// StartJob validates job_type, allocates a Queued JobRecord, and — for
// the internally-run demo.job type — spawns its runner goroutine.
func (s *Service) StartJob(ctx context.Context, req *jobpb.StartJobRequest) (*jobpb.StartJobResponse, error) {
	jobType := strings.TrimSpace(req.GetJobType())
	if jobType == "" {
		return nil, status.Error(codes.InvalidArgument, "job_type is required")
	}
	if !IsKnownJobType(jobType) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown job_type: %s", jobType)
	}

	jobID := ids.New()
	now := commonpb.WrapMillis(ids.NowMillis())
	j := &jobpb.Job{
		JobId:          commonpb.WrapID(jobID),
		JobType:        jobType,
		State:          jobpb.JobStateQueued,
		CreatedAt:      now,
		DisplayName:    displayNameFor(jobType),
		CorrelationId:  jobID,
		ProjectId:      req.GetProjectId(),
		TargetId:       req.GetTargetId(),
		ToolchainSetId: req.GetToolchainSetId(),
	}

	rec := newRecord(j)
	s.store.insert(jobID, rec)

	if jobType == "demo.job" {
		go runDemoJob(s, jobID, rec)
	}

	return &jobpb.StartJobResponse{Job: &jobpb.JobRef{JobId: commonpb.WrapID(jobID)}}, nil
}

// GetJob returns the current snapshot of a job.
func (s *Service) GetJob(ctx context.Context, req *jobpb.GetJobRequest) (*jobpb.GetJobResponse, error) {
	jobID := commonpb.UnwrapID(req.GetJobId())
	rec, ok := s.store.get(jobID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "job not found: %s", jobID)
	}
	return &jobpb.GetJobResponse{Job: rec.Snapshot()}, nil
}

// CancelJob raises a job's cancellation signal if it is not already in
// a terminal state. An unknown job id or an already-terminal job both
// report accepted=false rather than an error, matching the original
// runner's behavior.
func (s *Service) CancelJob(ctx context.Context, req *jobpb.CancelJobRequest) (*jobpb.CancelJobResponse, error) {
	jobID := commonpb.UnwrapID(req.GetJobId())
	rec, ok := s.store.get(jobID)
	if !ok {
		return &jobpb.CancelJobResponse{Accepted: false}, nil
	}

	snapshot := rec.Snapshot()
	if snapshot.State.IsTerminal() {
		return &jobpb.CancelJobResponse{Accepted: false}, nil
	}

	if !rec.RequestCancel() {
		return &jobpb.CancelJobResponse{Accepted: false}, nil
	}

	s.setState(jobID, rec, jobpb.JobStateCancelled)
	return &jobpb.CancelJobResponse{Accepted: true}, nil
}

// PublishJobEvent is the worker-facing write path: a claimed job
// publishes its own lifecycle events through this RPC. StateChanged,
// Completed, and Failed payloads also update the job's state field so
// GetJob reflects the worker's progress without a separate call.
func (s *Service) PublishJobEvent(ctx context.Context, req *jobpb.PublishJobEventRequest) (*jobpb.PublishJobEventResponse, error) {
	evt := req.GetEvent()
	if evt == nil {
		return nil, status.Error(codes.InvalidArgument, "event is required")
	}
	jobID := commonpb.UnwrapID(evt.GetJobId())
	if jobID == "" {
		return nil, status.Error(codes.InvalidArgument, "event.job_id is required")
	}
	if evt.Payload == nil {
		return nil, status.Error(codes.InvalidArgument, "event.payload is required")
	}

	rec, ok := s.store.get(jobID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "job not found: %s", jobID)
	}

	switch p := evt.Payload.(type) {
	case *jobpb.JobStateChanged:
		rec.applyStateTransition(p.NewState)
	case *jobpb.JobCompleted:
		rec.applyStateTransition(jobpb.JobStateSuccess)
	case *jobpb.JobFailed:
		rec.applyStateTransition(jobpb.JobStateFailed)
	}

	if evt.At == nil {
		evt.At = commonpb.WrapMillis(ids.NowMillis())
	}
	rec.publish(evt)

	return &jobpb.PublishJobEventResponse{Accepted: true}, nil
}

// StreamJobEvents replays the requested history snapshot, then forwards
// live events until the client disconnects or the subscriber channel is
// closed. The snapshot-before-streaming sequencing avoids a lost-wakeup
// between subscribing and the first Send.
func (s *Service) StreamJobEvents(req *jobpb.StreamJobEventsRequest, stream jobpb.JobService_StreamJobEventsServer) error {
	jobID := commonpb.UnwrapID(req.GetJobId())
	rec, ok := s.store.get(jobID)
	if !ok {
		return status.Errorf(codes.NotFound, "job not found: %s", jobID)
	}

	subID, ch, history := rec.subscribe(req.GetIncludeHistory())
	defer rec.unsubscribe(subID)

	for _, evt := range history {
		if err := stream.Send(evt); err != nil {
			return err
		}
	}

	ctx := stream.Context()
	for {
		select {
		case evt, open := <-ch:
			if !open {
				return nil
			}
			if err := stream.Send(evt); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// setState transitions a job's state and publishes the corresponding
// StateChanged event; it is the internal equivalent of a worker calling
// PublishJobEvent(StateChanged) on its own job.
func (s *Service) setState(jobID string, rec *Record, state jobpb.JobState) {
	rec.applyStateTransition(state)
	rec.publish(&jobpb.JobEvent{
		At:      commonpb.WrapMillis(ids.NowMillis()),
		JobId:   commonpb.WrapID(jobID),
		Payload: &jobpb.JobStateChanged{NewState: state},
	})
}
