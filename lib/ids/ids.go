// Package ids implements the Identifier & Timestamp module: trimming and
// normalizing the opaque identifier strings (JobId, RunId, ProjectId,
// TargetId, ToolchainSetId, CorrelationId) that flow through every RPC, and
// a monotonic wall-clock-millis helper used to stamp everything the system
// persists or publishes.
package ids

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pborman/uuid"
)

// Normalize trims surrounding whitespace from id and returns "" for an
// all-whitespace (or empty) input, so that "trimmed-empty ↔ absent" holds
// everywhere an opaque id is accepted.
func Normalize(id string) string {
	return strings.TrimSpace(id)
}

// IsEmpty reports whether the normalized form of id is empty.
func IsEmpty(id string) bool {
	return Normalize(id) == ""
}

// New generates a fresh, collision-resistant identifier suitable for a
// JobId, RunId, or OutputId.
func New() string {
	return uuid.New()
}

// WithDefault returns id normalized, or def if id normalizes to empty.
func WithDefault(id, def string) string {
	if n := Normalize(id); n != "" {
		return n
	}
	return def
}

// CorrelationOrRun resolves a correlation id: it defaults to runID when
// empty, per the data model's "Correlation id defaults to run id when
// empty" rule.
func CorrelationOrRun(correlationID, runID string) string {
	return WithDefault(correlationID, Normalize(runID))
}

// RunOrNew resolves a run id: a freshly generated unique string when the
// caller supplied none.
func RunOrNew(runID string) string {
	if n := Normalize(runID); n != "" {
		return n
	}
	return New()
}

// Clock is the package-wide time source. Tests replace it with
// clockwork.NewFakeClock() to get deterministic, monotonically-controlled
// timestamps instead of patching time.Now directly.
var Clock clockwork.Clock = clockwork.NewRealClock()

// NowMillis returns the current wall-clock time as Unix milliseconds,
// using Clock so tests can control it.
func NowMillis() int64 {
	return Clock.Now().UnixMilli()
}

// FromMillis converts Unix milliseconds back to a time.Time in UTC.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
