// Package cancelwatch is the collaborator-side counterpart of the Job
// service's write-once cancellation signal (spec §4.3, §5): it
// subscribes to a job's event stream and raises a local Signal the
// moment a StateChanged(Cancelled) event arrives, so a worker's main
// loop can select on cancellation without polling a boolean. Retrying the
// initial subscribe with a bounded backoff, rather than busy-looping
// redial attempts, follows the teacher's getFollowStepPolicy in
// lib/fsm/follow.go. Once subscribed, a stream that ends or fails is not
// resubscribed; the Signal then stays unraised.
package cancelwatch

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

// maxSubscribeAttempts bounds the subscribe backoff loop so a worker
// never hangs forever waiting on an unreachable Job service.
const maxSubscribeAttempts = 5

// Signal is a write-once, broadcastable cancellation flag: Done()
// returns a channel that is closed exactly once, the moment
// cancellation is observed, mirroring a Rust tokio::sync::watch<bool>
// more idiomatically than a polled atomic bool would in Go.
type Signal struct {
	mu   sync.Mutex
	once sync.Once
	ch   chan struct{}
}

// NewSignal returns an unraised Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Done returns the channel that closes when cancellation is raised.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Raised reports whether the signal has already fired.
func (s *Signal) Raised() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

func (s *Signal) raise() {
	s.once.Do(func() { close(s.ch) })
}

// Watch subscribes to jobID's event stream on rpc and returns a Signal
// that fires when a StateChanged(Cancelled) event is observed. It
// retries the initial subscribe with a bounded constant backoff; if
// every attempt fails, it logs a warning and returns a Signal that will
// never fire, per spec §4.3 ("leaves signal false and logs a warning on
// failure" rather than blocking the worker indefinitely).
func Watch(ctx context.Context, rpc jobpb.JobServiceClient, jobID string) *Signal {
	sig := NewSignal()

	stream, err := subscribeWithBackoff(ctx, rpc, jobID)
	if err != nil {
		logrus.WithError(err).WithField("job_id", jobID).
			Warn("cancelwatch: giving up subscribing to job events; cancellation will not be observed")
		return sig
	}

	go func() {
		for {
			evt, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logrus.WithError(err).WithField("job_id", jobID).
					Warn("cancelwatch: event stream ended unexpectedly")
				return
			}
			if sc := evt.GetStateChanged(); sc != nil && sc.NewState == jobpb.JobStateCancelled {
				sig.raise()
				return
			}
		}
	}()

	return sig
}

// boundedConstantBackOff wraps backoff.ConstantBackOff with a fixed
// attempt ceiling; cenkalti/backoff v1 has no WithMaxRetries helper, so
// the bound is applied by hand here.
type boundedConstantBackOff struct {
	inner    backoff.ConstantBackOff
	attempts int
	max      int
}

func (b *boundedConstantBackOff) NextBackOff() time.Duration {
	b.attempts++
	if b.attempts >= b.max {
		return backoff.Stop
	}
	return b.inner.NextBackOff()
}

func (b *boundedConstantBackOff) Reset() {
	b.attempts = 0
}

func subscribeWithBackoff(ctx context.Context, rpc jobpb.JobServiceClient, jobID string) (jobpb.JobService_StreamJobEventsClient, error) {
	policy := &boundedConstantBackOff{
		inner: backoff.ConstantBackOff{Interval: 200 * time.Millisecond},
		max:   maxSubscribeAttempts,
	}

	var stream jobpb.JobService_StreamJobEventsClient
	op := func() error {
		s, err := rpc.StreamJobEvents(ctx, &jobpb.StreamJobEventsRequest{
			JobId:          commonpb.WrapID(jobID),
			IncludeHistory: false,
		})
		if err != nil {
			return err
		}
		stream = s
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return stream, nil
}
