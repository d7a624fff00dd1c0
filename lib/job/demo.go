package job

import (
	"fmt"
	"time"

	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

// demoQueuedDelay and demoStepDelay are the fixture timings that make
// scenario 1 of spec §8 observable without a real worker attached.
const (
	demoQueuedDelay = 150 * time.Millisecond
	demoStepCount   = 10
	demoStepDelay   = 250 * time.Millisecond
)

// runDemoJob is the Job service's own built-in worker for job_type
// "demo.job" (spec §4.1): it is the fixture scenario 1 exercises and
// requires no collaborator process to be running.
func runDemoJob(s *Service, jobID string, rec *Record) {
	s.setState(jobID, rec, jobpb.JobStateQueued)

	select {
	case <-time.After(demoQueuedDelay):
	case <-rec.Done():
		finishCancelled(s, jobID, rec)
		return
	}

	s.setState(jobID, rec, jobpb.JobStateRunning)

	for step := 1; step <= demoStepCount; step++ {
		select {
		case <-rec.Done():
			finishCancelled(s, jobID, rec)
			return
		case <-time.After(demoStepDelay):
		}

		percent := uint32(step * 10)
		rec.publish(&jobpb.JobEvent{
			At:    commonpb.WrapMillis(ids.NowMillis()),
			JobId: commonpb.WrapID(jobID),
			Payload: &jobpb.JobProgressUpdated{
				Progress: &jobpb.JobProgress{
					Percent: percent,
					Phase:   fmt.Sprintf("Demo phase %d", step),
					Metrics: []*commonpb.KeyValue{commonpb.KV("step", step)},
				},
			},
		})

		rec.publish(&jobpb.JobEvent{
			At:    commonpb.WrapMillis(ids.NowMillis()),
			JobId: commonpb.WrapID(jobID),
			Payload: &jobpb.JobLogAppended{
				Chunk: &jobpb.LogChunk{
					Stream: "stdout",
					Data:   []byte(fmt.Sprintf("demo: step %d complete (%d%%)\n", step, percent)),
				},
			},
		})
	}

	s.setState(jobID, rec, jobpb.JobStateSuccess)
	rec.publish(&jobpb.JobEvent{
		At:    commonpb.WrapMillis(ids.NowMillis()),
		JobId: commonpb.WrapID(jobID),
		Payload: &jobpb.JobCompleted{
			Summary: "Demo job finished successfully",
			Outputs: []*commonpb.KeyValue{commonpb.KV("artifact", "/tmp/demo-artifact.txt")},
		},
	})
}

// finishCancelled stops the demo runner once cancellation has been
// observed. CancelJob already performs the StateChanged(Cancelled)
// transition and publish before raising the signal this goroutine
// waits on, so there is nothing left to publish here: no further
// Progress and no Completed event, per spec §8 scenario 2.
func finishCancelled(s *Service, jobID string, rec *Record) {}
