// Package publish holds the publish_state/log/progress/completed/failed
// helper set (spec §4.2) that every collaborator worker uses to report
// a claimed job's lifecycle back to the Job service. Keeping these as
// free functions over a jobpb.JobServiceClient, rather than methods on
// a heavier worker type, mirrors the teacher's preference for small
// composable helpers over deep object hierarchies (see lib/report's
// plain function set).
package publish

import (
	"context"
	"fmt"

	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

func envelope(jobID string, payload interface{}) *jobpb.JobEvent {
	return jobpb.NewEvent(commonpb.WrapMillis(ids.NowMillis()), commonpb.WrapID(jobID), payload)
}

// State publishes a StateChanged event and, for the Job service's own
// bookkeeping, updates job.state as a side effect of the publish.
func State(ctx context.Context, rpc jobpb.JobServiceClient, jobID string, state jobpb.JobState) error {
	_, err := rpc.PublishJobEvent(ctx, &jobpb.PublishJobEventRequest{
		Event: envelope(jobID, &jobpb.JobStateChanged{NewState: state}),
	})
	return err
}

// Log appends a chunk of a job's log stream.
func Log(ctx context.Context, rpc jobpb.JobServiceClient, jobID, stream string, data []byte) error {
	_, err := rpc.PublishJobEvent(ctx, &jobpb.PublishJobEventRequest{
		Event: envelope(jobID, &jobpb.JobLogAppended{
			Chunk: &jobpb.LogChunk{Stream: stream, Data: data},
		}),
	})
	return err
}

// Logf is a convenience wrapper around Log for a formatted stdout line.
func Logf(ctx context.Context, rpc jobpb.JobServiceClient, jobID, format string, args ...interface{}) error {
	return Log(ctx, rpc, jobID, "stdout", []byte(fmt.Sprintf(format, args...)))
}

// Progress publishes a monotonic progress reading.
func Progress(ctx context.Context, rpc jobpb.JobServiceClient, jobID string, percent uint32, phase string, metrics ...*commonpb.KeyValue) error {
	_, err := rpc.PublishJobEvent(ctx, &jobpb.PublishJobEventRequest{
		Event: envelope(jobID, &jobpb.JobProgressUpdated{
			Progress: &jobpb.JobProgress{Percent: percent, Phase: phase, Metrics: metrics},
		}),
	})
	return err
}

// Completed publishes StateChanged(Success) followed by the job's
// terminal Completed event, per spec §4.2's "first publishes
// StateChanged(Success), then Completed" sequencing. Callers must have
// already registered any RunOutputs with Observe before calling this,
// per spec §4.7's "registers RunOutputs before publish_completed"
// ordering requirement.
func Completed(ctx context.Context, rpc jobpb.JobServiceClient, jobID, summary string, outputs ...*commonpb.KeyValue) error {
	if err := State(ctx, rpc, jobID, jobpb.JobStateSuccess); err != nil {
		return err
	}
	_, err := rpc.PublishJobEvent(ctx, &jobpb.PublishJobEventRequest{
		Event: envelope(jobID, &jobpb.JobCompleted{Summary: summary, Outputs: outputs}),
	})
	return err
}

// Failed publishes StateChanged(Failed) followed by the job's terminal
// Failed event, carrying the structured ErrorDetail from spec §7, with
// the same State-then-payload sequencing Completed uses.
func Failed(ctx context.Context, rpc jobpb.JobServiceClient, jobID string, detail *commonpb.ErrorDetail) error {
	if err := State(ctx, rpc, jobID, jobpb.JobStateFailed); err != nil {
		return err
	}
	_, err := rpc.PublishJobEvent(ctx, &jobpb.PublishJobEventRequest{
		Event: envelope(jobID, &jobpb.JobFailed{Error: detail}),
	})
	return err
}
