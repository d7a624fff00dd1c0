// Package observe implements the Observe Run Registry (spec §4.4): an
// in-memory, JSON-persisted store of RunRecords and RunOutputs, plus
// the support/evidence bundle export operations. Persistence follows a
// write-temp-then-rename convention, the same discipline gravity's own
// on-disk stores use, so a crash mid-write never corrupts observe.json.
package observe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gravitational/trace"

	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/observepb"
)

const (
	schemaVersion   = 1
	stateFileName   = "observe.json"
	defaultPageSize = 25
)

type summaryEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type runOutputSummaryEntry struct {
	BundleCount   uint32 `json:"bundle_count"`
	ArtifactCount uint32 `json:"artifact_count"`
	LastUpdatedAt int64  `json:"last_updated_at,omitempty"`
	LastBundleID  string `json:"last_bundle_id,omitempty"`
}

type runRecordEntry struct {
	SchemaVersion  uint32                `json:"schema_version"`
	RunID          string                `json:"run_id"`
	CorrelationID  string                `json:"correlation_id,omitempty"`
	ProjectID      string                `json:"project_id,omitempty"`
	TargetID       string                `json:"target_id,omitempty"`
	ToolchainSetID string                `json:"toolchain_set_id,omitempty"`
	StartedAt      int64                 `json:"started_at"`
	FinishedAt     int64                 `json:"finished_at,omitempty"`
	Result         string                `json:"result"`
	JobIDs         []string              `json:"job_ids,omitempty"`
	Summary        []summaryEntry        `json:"summary,omitempty"`
	OutputSummary  runOutputSummaryEntry `json:"output_summary"`
}

type runOutputEntry struct {
	OutputID   string `json:"output_id"`
	RunID      string `json:"run_id"`
	Kind       string `json:"kind,omitempty"`
	OutputType string `json:"output_type,omitempty"`
	Path       string `json:"path,omitempty"`
	Label      string `json:"label,omitempty"`
	JobID      string `json:"job_id,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

type stateFile struct {
	Runs    []runRecordEntry `json:"runs"`
	Outputs []runOutputEntry `json:"outputs"`
}

// Registry is the mutex-guarded in-memory store backing ObserveService.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	runs    []runRecordEntry
	outputs []runOutputEntry
}

// NewRegistry returns an empty Registry. Callers typically follow this
// with a Load to hydrate from disk.
func NewRegistry() *Registry {
	return &Registry{}
}

func statePath() (string, error) {
	return aadkdir.StatePath(stateFileName)
}

// Load replaces the Registry's in-memory contents with what is on disk.
// A missing state file is treated as an empty store rather than an error.
func (r *Registry) Load() (itemCount int, err error) {
	path, err := statePath()
	if err != nil {
		return 0, trace.Wrap(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.mu.Lock()
			r.runs, r.outputs = nil, nil
			r.mu.Unlock()
			return 0, nil
		}
		return 0, trace.Wrap(err, "reading observe state")
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return 0, trace.Wrap(err, "parsing observe state")
	}

	r.mu.Lock()
	r.runs = sf.Runs
	r.outputs = sf.Outputs
	count := len(r.runs) + len(r.outputs)
	r.mu.Unlock()
	return count, nil
}

// persistLocked writes the current in-memory state to disk atomically
// (temp file + rename). The caller must already hold r.mu.
func (r *Registry) persistLocked() error {
	path, err := statePath()
	if err != nil {
		return trace.Wrap(err)
	}

	sf := stateFile{Runs: r.runs, Outputs: r.outputs}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return trace.Wrap(err, "marshaling observe state")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".observe-*.json.tmp")
	if err != nil {
		return trace.Wrap(err, "creating temp state file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return trace.Wrap(err, "writing temp state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return trace.Wrap(err, "closing temp state file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return trace.Wrap(err, "renaming temp state file")
	}
	return nil
}

func kindToString(k observepb.RunOutputKind) string {
	switch k {
	case observepb.RunOutputKindBundle:
		return "BUNDLE"
	case observepb.RunOutputKindArtifact:
		return "ARTIFACT"
	default:
		return ""
	}
}

func kindFromString(s string) observepb.RunOutputKind {
	switch s {
	case "BUNDLE":
		return observepb.RunOutputKindBundle
	case "ARTIFACT":
		return observepb.RunOutputKindArtifact
	default:
		return observepb.RunOutputKindUnspecified
	}
}

func computeOutputSummary(outputs []runOutputEntry, runID string) runOutputSummaryEntry {
	var summary runOutputSummaryEntry
	var lastCreated int64
	for _, o := range outputs {
		if o.RunID != runID {
			continue
		}
		switch o.Kind {
		case "BUNDLE":
			summary.BundleCount++
			if o.CreatedAt >= lastCreated {
				summary.LastBundleID = o.OutputID
			}
		case "ARTIFACT":
			summary.ArtifactCount++
		}
		if o.CreatedAt > lastCreated {
			lastCreated = o.CreatedAt
		}
	}
	summary.LastUpdatedAt = lastCreated
	return summary
}

func (e runRecordEntry) toPB() *observepb.RunRecord {
	summary := make([]*commonpb.KeyValue, 0, len(e.Summary))
	for _, s := range e.Summary {
		summary = append(summary, &commonpb.KeyValue{Key: s.Key, Value: s.Value})
	}
	return &observepb.RunRecord{
		SchemaVersion:  e.SchemaVersion,
		RunId:          e.RunID,
		CorrelationId:  e.CorrelationID,
		ProjectId:      e.ProjectID,
		TargetId:       e.TargetID,
		ToolchainSetId: e.ToolchainSetID,
		StartedAt:      commonpb.WrapMillis(e.StartedAt),
		FinishedAt:     commonpb.WrapMillis(e.FinishedAt),
		Result:         e.Result,
		JobIds:         e.JobIDs,
		Summary:        summary,
		OutputSummary:  e.OutputSummary.toPB(),
	}
}

func (s runOutputSummaryEntry) toPB() *observepb.RunOutputSummary {
	return &observepb.RunOutputSummary{
		BundleCount:   s.BundleCount,
		ArtifactCount: s.ArtifactCount,
		LastUpdatedAt: commonpb.WrapMillis(s.LastUpdatedAt),
		LastBundleId:  s.LastBundleID,
	}
}

func (e runOutputEntry) toPB() *observepb.RunOutput {
	return &observepb.RunOutput{
		OutputId:   e.OutputID,
		RunId:      e.RunID,
		Kind:       kindFromString(e.Kind),
		OutputType: e.OutputType,
		Path:       e.Path,
		Label:      e.Label,
		JobId:      e.JobID,
		CreatedAt:  commonpb.WrapMillis(e.CreatedAt),
	}
}

// findRunIndexLocked returns the index of run id in r.runs, or -1.
func (r *Registry) findRunIndexLocked(runID string) int {
	for i, rec := range r.runs {
		if rec.RunID == runID {
			return i
		}
	}
	return -1
}

func paginate(total int, pageToken string, pageSize uint32) (start, end int, next string) {
	offset := 0
	if pageToken != "" {
		if n, err := strconv.Atoi(pageToken); err == nil && n > 0 {
			offset = n
		}
	}
	size := int(pageSize)
	if size <= 0 {
		size = defaultPageSize
	}
	if offset > total {
		offset = total
	}
	limit := offset + size
	if limit > total {
		limit = total
	}
	nextToken := ""
	if limit < total {
		nextToken = strconv.Itoa(limit)
	}
	return offset, limit, nextToken
}

func sortRunsByStarted(entries []runRecordEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartedAt < entries[j].StartedAt
	})
}

func sortOutputsByCreated(entries []runOutputEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt < entries[j].CreatedAt
	})
}

// newOutputID derives a stable output_id from the output's identifying
// fields, so re-registering the same artifact (a retry, or a re-export
// against the same job) replaces the existing RunOutput via upsert
// rather than appending a duplicate.
func newOutputID(runID, outputType, path string) string {
	return fmt.Sprintf("output:%s:%s:%s", runID, outputType, path)
}

const maxRunRecords = 200

// ListRuns returns a filtered, paginated page of run records, newest first.
func (r *Registry) ListRuns(filter *observepb.RunFilter, pagination *observepb.Pagination) ([]*observepb.RunRecord, *observepb.PageInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]runRecordEntry, 0, len(r.runs))
	for _, rec := range r.runs {
		if runMatchesFilter(rec, filter) {
			matched = append(matched, rec)
		}
	}
	// Newest first: runs are stored insertion-ordered (oldest first), so
	// reverse for presentation.
	reversed := make([]runRecordEntry, len(matched))
	for i, rec := range matched {
		reversed[len(matched)-1-i] = rec
	}

	total := len(reversed)
	token := ""
	size := uint32(defaultPageSize)
	if pagination != nil {
		token = pagination.PageToken
		size = pagination.PageSize
	}
	if token != "" {
		if n, err := strconv.Atoi(token); err != nil || n < 0 {
			return nil, nil, trace.BadParameter("malformed page_token %q", token)
		} else if n >= total && total > 0 {
			return nil, nil, trace.BadParameter("page_token %q offset beyond total %d", token, total)
		}
	}

	start, end, next := paginate(total, token, size)
	page := make([]*observepb.RunRecord, 0, end-start)
	for _, rec := range reversed[start:end] {
		page = append(page, rec.toPB())
	}
	return page, &observepb.PageInfo{NextPageToken: next, Total: uint32(total)}, nil
}

func runMatchesFilter(rec runRecordEntry, f *observepb.RunFilter) bool {
	if f == nil {
		return true
	}
	if f.RunId != "" && f.RunId != rec.RunID {
		return false
	}
	if f.CorrelationId != "" && f.CorrelationId != rec.CorrelationID {
		return false
	}
	if f.ProjectId != "" && f.ProjectId != rec.ProjectID {
		return false
	}
	if f.TargetId != "" && f.TargetId != rec.TargetID {
		return false
	}
	if f.ToolchainSetId != "" && f.ToolchainSetId != rec.ToolchainSetID {
		return false
	}
	if f.Result != "" && f.Result != rec.Result {
		return false
	}
	return true
}

// ListRunOutputs returns a filtered, paginated page of a single run's
// outputs together with that run's current output summary.
func (r *Registry) ListRunOutputs(runID string, filter *observepb.RunOutputFilter, pagination *observepb.Pagination) ([]*observepb.RunOutput, *observepb.PageInfo, *observepb.RunOutputSummary, error) {
	if ids.IsEmpty(runID) {
		return nil, nil, nil, trace.BadParameter("run_id is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]runOutputEntry, 0)
	for _, o := range r.outputs {
		if o.RunID == runID {
			all = append(all, o)
		}
	}
	sortOutputsByCreated(all)

	matched := make([]runOutputEntry, 0, len(all))
	for _, o := range all {
		if outputMatchesFilter(o, filter) {
			matched = append(matched, o)
		}
	}

	total := len(matched)
	token, size := "", uint32(defaultPageSize)
	if pagination != nil {
		token = pagination.PageToken
		size = pagination.PageSize
	}
	start, end, next := paginate(total, token, size)
	page := make([]*observepb.RunOutput, 0, end-start)
	for _, o := range matched[start:end] {
		page = append(page, o.toPB())
	}

	summary := computeOutputSummary(r.outputs, runID).toPB()
	return page, &observepb.PageInfo{NextPageToken: next, Total: uint32(total)}, summary, nil
}

func outputMatchesFilter(o runOutputEntry, f *observepb.RunOutputFilter) bool {
	if f == nil {
		return true
	}
	if f.Kind != observepb.RunOutputKindUnspecified && kindFromString(o.Kind) != f.Kind {
		return false
	}
	if f.OutputType != "" && f.OutputType != o.OutputType {
		return false
	}
	if f.PathContains != "" && !containsSubstring(o.Path, f.PathContains) {
		return false
	}
	if f.LabelContains != "" && !containsSubstring(o.Label, f.LabelContains) {
		return false
	}
	return true
}

func containsSubstring(s, substr string) bool {
	return substr == "" || strings.Contains(s, substr)
}

// UpsertRun creates or merges a RunRecord per spec §4.4's merge rules and
// persists the result.
func (r *Registry) UpsertRun(req *observepb.UpsertRunRequest) (*observepb.RunRecord, error) {
	runID := ids.Normalize(req.GetRunId())
	if runID == "" {
		return nil, trace.BadParameter("run_id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.findRunIndexLocked(runID)
	var rec runRecordEntry
	if idx >= 0 {
		rec = r.runs[idx]
	} else {
		rec = runRecordEntry{SchemaVersion: schemaVersion, RunID: runID, Result: "running"}
	}

	if v := ids.Normalize(req.GetCorrelationId()); v != "" {
		rec.CorrelationID = v
	}
	if v := ids.Normalize(req.GetProjectId()); v != "" {
		rec.ProjectID = v
	}
	if v := ids.Normalize(req.GetTargetId()); v != "" {
		rec.TargetID = v
	}
	if v := ids.Normalize(req.GetToolchainSetId()); v != "" {
		rec.ToolchainSetID = v
	}
	if v := req.GetStartedAt(); v.GetUnixMillis() != 0 {
		rec.StartedAt = v.GetUnixMillis()
	} else if rec.StartedAt == 0 {
		rec.StartedAt = ids.NowMillis()
	}
	if v := req.GetFinishedAt(); v.GetUnixMillis() != 0 {
		rec.FinishedAt = v.GetUnixMillis()
	}
	if v := req.GetResult(); v != "" {
		rec.Result = v
	}
	rec.JobIDs = unionAppend(rec.JobIDs, req.GetJobIds())
	rec.Summary = mergeSummary(rec.Summary, req.GetSummary())
	rec.OutputSummary = computeOutputSummary(r.outputs, runID)

	if idx >= 0 {
		r.runs[idx] = rec
	} else {
		r.runs = append(r.runs, rec)
		r.evictOldestLocked()
	}

	if err := r.persistLocked(); err != nil {
		return nil, trace.Wrap(err)
	}
	return rec.toPB(), nil
}

func (r *Registry) evictOldestLocked() {
	if len(r.runs) <= maxRunRecords {
		return
	}
	sortRunsByStarted(r.runs)
	excess := len(r.runs) - maxRunRecords
	r.runs = r.runs[excess:]
}

func unionAppend(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, v := range existing {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range incoming {
		v = ids.Normalize(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func mergeSummary(existing []summaryEntry, incoming []*commonpb.KeyValue) []summaryEntry {
	index := make(map[string]int, len(existing))
	out := make([]summaryEntry, len(existing))
	copy(out, existing)
	for i, e := range out {
		index[e.Key] = i
	}
	for _, kv := range incoming {
		if kv == nil || kv.Key == "" {
			continue
		}
		if i, ok := index[kv.Key]; ok {
			out[i].Value = kv.Value
		} else {
			index[kv.Key] = len(out)
			out = append(out, summaryEntry{Key: kv.Key, Value: kv.Value})
		}
	}
	return out
}

// UpsertRunOutputs validates and upserts a batch of RunOutputs by
// output_id, creating a minimal running RunRecord if none exists, and
// returns the run's recomputed output summary.
func (r *Registry) UpsertRunOutputs(runID string, outputs []*observepb.RunOutput) (*observepb.RunOutputSummary, error) {
	runID = ids.Normalize(runID)
	if runID == "" {
		return nil, trace.BadParameter("run_id is required")
	}
	for _, o := range outputs {
		if o.GetRunId() != "" && o.GetRunId() != runID {
			return nil, trace.BadParameter("output run_id %q does not match request run_id %q", o.GetRunId(), runID)
		}
		if ids.IsEmpty(o.GetPath()) {
			return nil, trace.BadParameter("output path is required")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findRunIndexLocked(runID) < 0 {
		r.runs = append(r.runs, runRecordEntry{
			SchemaVersion: schemaVersion,
			RunID:         runID,
			Result:        "running",
			StartedAt:     ids.NowMillis(),
		})
		r.evictOldestLocked()
	}

	now := ids.NowMillis()
	for _, o := range outputs {
		entry := runOutputEntry{
			OutputID:   ids.WithDefault(o.GetOutputId(), newOutputID(runID, o.GetOutputType(), o.GetPath())),
			RunID:      runID,
			Kind:       kindToString(o.GetKind()),
			OutputType: o.GetOutputType(),
			Path:       o.GetPath(),
			Label:      o.GetLabel(),
			JobID:      o.GetJobId(),
			CreatedAt:  now,
		}
		if ts := o.GetCreatedAt(); ts.GetUnixMillis() != 0 {
			entry.CreatedAt = ts.GetUnixMillis()
		}
		r.upsertOutputLocked(entry)
	}

	if idx := r.findRunIndexLocked(runID); idx >= 0 {
		r.runs[idx].OutputSummary = computeOutputSummary(r.outputs, runID)
	}

	if err := r.persistLocked(); err != nil {
		return nil, trace.Wrap(err)
	}
	return computeOutputSummary(r.outputs, runID).toPB(), nil
}

func (r *Registry) upsertOutputLocked(entry runOutputEntry) {
	for i, o := range r.outputs {
		if o.OutputID == entry.OutputID {
			r.outputs[i] = entry
			return
		}
	}
	r.outputs = append(r.outputs, entry)
}

// GetRun returns a run's PB form, or (nil, false) if run_id does not
// match any record.
func (r *Registry) GetRun(runID string) (*observepb.RunRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.findRunIndexLocked(runID)
	if idx < 0 {
		return nil, false
	}
	return r.runs[idx].toPB(), true
}

// FindRunByCorrelation looks up a run by correlation_id, returning the
// most recently started match.
func (r *Registry) FindRunByCorrelation(correlationID string) (*observepb.RunRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *runRecordEntry
	for i := range r.runs {
		if r.runs[i].CorrelationID == correlationID {
			if best == nil || r.runs[i].StartedAt > best.StartedAt {
				best = &r.runs[i]
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return best.toPB(), true
}
