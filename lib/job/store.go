// Package job implements the Job service (spec §4.1): an in-memory
// registry of JobRecords, each with a bounded event history ring, a
// fan-out broadcast to StreamJobEvents subscribers, and a write-once
// cancellation signal. The snapshot-then-subscribe sequencing mirrors
// the teacher's lib/fsm.FollowOperationPlan, which always sends the
// initial state before following live changes.
package job

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/jobpb"
)

const (
	// BroadcastCapacity bounds each subscriber's event channel.
	BroadcastCapacity = 1024
	// HistoryCapacity bounds the replay ring kept per job.
	HistoryCapacity = 2048
	// lagNoticeTimeout bounds how long publish blocks trying to deliver a
	// lag notice to a stalled subscriber before giving up for this round;
	// the skip counter is preserved and folded into the next notice, so
	// the count is never lost even when delivery is deferred.
	lagNoticeTimeout = 50 * time.Millisecond
)

// KnownJobTypes is the closed set of job_type strings the Job service
// accepts from StartJob (spec §9's "Known job_type strings" list).
var KnownJobTypes = map[string]bool{
	"demo.job":                     true,
	"project.create":               true,
	"build.run":                    true,
	"toolchain.install":            true,
	"toolchain.verify":             true,
	"toolchain.update":             true,
	"toolchain.uninstall":          true,
	"toolchain.cleanup_cache":      true,
	"targets.install":              true,
	"targets.launch":               true,
	"targets.stop":                 true,
	"targets.cuttlefish.install":   true,
	"targets.cuttlefish.start":     true,
	"targets.cuttlefish.stop":      true,
	"observe.support_bundle":       true,
	"observe.evidence_bundle":      true,
	"workflow.pipeline":            true,
}

// IsKnownJobType reports whether jobType belongs to the closed set.
func IsKnownJobType(jobType string) bool {
	return KnownJobTypes[jobType]
}

// subscriber is one StreamJobEvents listener's mailbox. All sends and
// the close of ch go through mu so a lag-notice retry never races the
// channel's close (which would otherwise panic).
type subscriber struct {
	id uint64
	ch chan *jobpb.JobEvent

	mu      sync.Mutex
	closed  bool
	skipped uint64
}

// trySend attempts a non-blocking send, reporting whether it landed.
func (s *subscriber) trySend(evt *jobpb.JobEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- evt:
		return true
	default:
		return false
	}
}

// sendWithin retries a non-blocking send for up to timeout, giving a
// stalled-but-draining subscriber a chance to make room before this
// call gives up.
func (s *subscriber) sendWithin(evt *jobpb.JobEvent, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if s.trySend(evt) {
			return true
		}
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if closed || time.Now().After(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// addSkipped increments and returns the subscriber's running skipped
// count, which accumulates across rounds until a lag notice carrying it
// is successfully delivered.
func (s *subscriber) addSkipped(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped += n
	return s.skipped
}

func (s *subscriber) resetSkipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped = 0
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Record is the mutex-guarded state backing a single Job: its current
// snapshot, bounded history, live subscribers, and cancellation signal.
type Record struct {
	mu sync.Mutex

	job     *jobpb.Job
	history []*jobpb.JobEvent

	subscribers []*subscriber
	nextSubID   uint64

	cancelOnce   sync.Once
	cancelSignal chan struct{}
	cancelled    bool
}

func newRecord(j *jobpb.Job) *Record {
	return &Record{
		job:          j,
		history:      make([]*jobpb.JobEvent, 0, HistoryCapacity),
		cancelSignal: make(chan struct{}),
	}
}

// Snapshot returns a copy of the job's current state.
func (r *Record) Snapshot() *jobpb.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := *r.job
	return &j
}

// RequestCancel raises the record's cancellation signal exactly once and
// reports whether this call was the one that raised it.
func (r *Record) RequestCancel() (raised bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancelled {
		return false
	}
	r.cancelled = true
	close(r.cancelSignal)
	return true
}

// Done returns a channel that is closed exactly once a cancellation has
// been requested for this job, modeled on the write-once watch<bool>
// signal from the original runner.
func (r *Record) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelSignal
}

// applyStateTransition updates job.State and the started_at/finished_at
// timestamps, per the Job invariants in spec §3: started_at is set on
// the first transition into Running, finished_at on the first
// transition into a terminal state.
func (r *Record) applyStateTransition(state jobpb.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.job.State = state
	now := commonpb.WrapMillis(ids.NowMillis())
	switch state {
	case jobpb.JobStateRunning:
		if r.job.StartedAt == nil {
			r.job.StartedAt = now
		}
	case jobpb.JobStateSuccess, jobpb.JobStateFailed, jobpb.JobStateCancelled:
		if r.job.FinishedAt == nil {
			r.job.FinishedAt = now
		}
	}
}

// subscribe snapshots the history ring and registers a new subscriber
// atomically, so no event published between the snapshot and the
// registration is lost or duplicated.
func (r *Record) subscribe(includeHistory bool) (id uint64, ch <-chan *jobpb.JobEvent, history []*jobpb.JobEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if includeHistory {
		history = make([]*jobpb.JobEvent, len(r.history))
		copy(history, r.history)
	}

	r.nextSubID++
	sub := &subscriber{id: r.nextSubID, ch: make(chan *jobpb.JobEvent, BroadcastCapacity)}
	r.subscribers = append(r.subscribers, sub)
	return sub.id, sub.ch, history
}

func (r *Record) unsubscribe(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sub := range r.subscribers {
		if sub.id == id {
			sub.close()
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			return
		}
	}
}

// publish appends evt to the bounded history ring and fans it out to
// every live subscriber. A subscriber whose mailbox is full never has
// the gap go unreported (spec §4.1): its skipped-event count is
// incremented and a lag notice carrying that count is retried for
// lagNoticeTimeout before publish moves on, so a briefly-stalled
// subscriber still gets the notice once it drains, and a subscriber
// still stuck after the retry window keeps its count for the next
// notice instead of losing it.
func (r *Record) publish(evt *jobpb.JobEvent) {
	r.mu.Lock()
	if len(r.history) >= HistoryCapacity {
		r.history = r.history[1:]
	}
	r.history = append(r.history, evt)
	subs := make([]*subscriber, len(r.subscribers))
	copy(subs, r.subscribers)
	jobID := commonpb.UnwrapID(r.job.JobId)
	r.mu.Unlock()

	for _, sub := range subs {
		if sub.trySend(evt) {
			continue
		}

		skipped := sub.addSkipped(1)
		logrus.WithField("job_id", jobID).WithField("subscriber", sub.id).WithField("skipped", skipped).
			Warn("StreamJobEvents subscriber lagging, event mailbox full")
		notice := &jobpb.JobEvent{
			At:    commonpb.WrapMillis(ids.NowMillis()),
			JobId: r.job.JobId,
			Payload: &jobpb.JobLogAppended{
				Chunk: &jobpb.LogChunk{
					Stream: "server",
					Data:   []byte(fmt.Sprintf("WARNING: subscriber lagging; skipped %d events\n", skipped)),
				},
			},
		}
		if sub.sendWithin(notice, lagNoticeTimeout) {
			sub.resetSkipped()
		} else {
			logrus.WithField("job_id", jobID).WithField("subscriber", sub.id).
				Warn("StreamJobEvents lag notice undelivered after retry window, carrying count forward")
		}
	}
}

// Store is the JobService's registry of job records, keyed by job id.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Record
}

// NewStore returns an empty job Store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]*Record)}
}

func (s *Store) insert(jobID string, rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[jobID] = rec
}

func (s *Store) get(jobID string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.jobs[jobID]
	return rec, ok
}
