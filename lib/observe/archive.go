package observe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/androiddevkit/aadk/lib/aaderrors"
	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/bundle"
	"github.com/androiddevkit/aadk/lib/cancelwatch"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/jobpb"
	"github.com/androiddevkit/aadk/lib/observepb"
	"github.com/androiddevkit/aadk/lib/publish"
)

// envPrefix is the only process-environment prefix whitelisted into a
// support bundle's config/env.json, per spec §4.4.
const envPrefix = "AADK_"

// historyFetchTimeout bounds how long reconstructing a single child
// job's log history is allowed to take before giving up on it.
const historyFetchTimeout = 5 * time.Second

func (s *Service) runSupportBundleExport(ctx context.Context, req *observepb.ExportSupportBundleRequest, jobID, runID, outputPath string) {
	rpc := s.jobs.Raw()
	log := logrus.WithFields(logrus.Fields{"job_id": jobID, "run_id": runID})

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		log.WithError(err).Warn("observe: failed publishing Running for support bundle job")
	}

	sig := cancelwatch.Watch(ctx, rpc, jobID)
	if sig.Raised() {
		s.finishCancelledExport(ctx, runID)
		return
	}

	items := []bundle.Item{bundle.Generated{Name: "manifest.json", Bytes: s.buildManifest(req, jobID, runID)}}

	if req.GetIncludeConfig() {
		items = append(items, bundle.Generated{Name: "config/env.json", Bytes: whitelistedEnvJSON()})
	}

	if sig.Raised() {
		s.finishCancelledExport(ctx, runID)
		return
	}

	if req.GetIncludeState() {
		items = append(items, stateFileItems()...)
	}

	var childJobIDs []string
	if run, ok := s.registry.GetRun(runID); ok {
		childJobIDs = run.GetJobIds()
	}

	if req.GetIncludeRuns() {
		limit := int(req.GetRecentRunsLimit())
		items = append(items, bundle.Generated{Name: "runs.json", Bytes: s.recentRunsJSON(limit)})
	}

	if sig.Raised() {
		s.finishCancelledExport(ctx, runID)
		return
	}

	if req.GetIncludeLogs() {
		for _, childID := range childJobIDs {
			if childID == jobID {
				continue
			}
			items = append(items, s.reconstructJobLogs(childID)...)
			if sig.Raised() {
				s.finishCancelledExport(ctx, runID)
				return
			}
		}
	}

	if err := bundle.Write(bundle.Plan{OutputPath: outputPath, Items: items}); err != nil {
		log.WithError(err).Error("observe: writing support bundle failed")
		s.finishFailedExport(ctx, runID, jobID, err)
		return
	}

	s.finishSuccessfulExport(ctx, runID, jobID, outputPath, "support_bundle", "support bundle exported")
	s.sweepRetention()
}

func (s *Service) runEvidenceBundleExport(ctx context.Context, run *observepb.RunRecord, jobID, outputPath string) {
	rpc := s.jobs.Raw()
	log := logrus.WithFields(logrus.Fields{"job_id": jobID, "run_id": run.GetRunId()})

	if err := publish.State(ctx, rpc, jobID, jobpb.JobStateRunning); err != nil {
		log.WithError(err).Warn("observe: failed publishing Running for evidence bundle job")
	}

	runJSON, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		log.WithError(err).Error("observe: marshaling run.json failed")
		s.finishFailedExport(ctx, run.GetRunId(), jobID, err)
		return
	}

	manifest, _ := json.MarshalIndent(map[string]interface{}{
		"kind":       "evidence_bundle",
		"job_id":     jobID,
		"run_id":     run.GetRunId(),
		"created_at": ids.NowMillis(),
	}, "", "  ")

	items := []bundle.Item{
		bundle.Generated{Name: "manifest.json", Bytes: manifest},
		bundle.Generated{Name: "run.json", Bytes: runJSON},
	}

	if err := bundle.Write(bundle.Plan{OutputPath: outputPath, Items: items}); err != nil {
		log.WithError(err).Error("observe: writing evidence bundle failed")
		s.finishFailedExport(ctx, run.GetRunId(), jobID, err)
		return
	}

	s.finishSuccessfulExport(ctx, run.GetRunId(), jobID, outputPath, "evidence_bundle", "evidence bundle exported")
	s.sweepRetention()
}

func (s *Service) finishSuccessfulExport(ctx context.Context, runID, jobID, outputPath, outputType, summary string) {
	rpc := s.jobs.Raw()

	if _, err := s.registry.UpsertRunOutputs(runID, []*observepb.RunOutput{{
		OutputId:   fmt.Sprintf("bundle:%s", jobID),
		RunId:      runID,
		Kind:       observepb.RunOutputKindBundle,
		OutputType: outputType,
		Path:       outputPath,
		JobId:      jobID,
	}}); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("observe: best-effort UpsertRunOutputs failed after bundle export")
	}

	if _, err := s.registry.UpsertRun(&observepb.UpsertRunRequest{
		RunId:      runID,
		Result:     "success",
		FinishedAt: commonpb.WrapMillis(ids.NowMillis()),
		JobIds:     []string{jobID},
	}); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("observe: best-effort UpsertRun failed after bundle export")
	}

	if err := publish.Completed(ctx, rpc, jobID, summary, commonpb.KV("output_path", outputPath)); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("observe: failed publishing Completed for bundle job")
	}
}

func (s *Service) finishFailedExport(ctx context.Context, runID, jobID string, cause error) {
	rpc := s.jobs.Raw()

	if _, err := s.registry.UpsertRun(&observepb.UpsertRunRequest{
		RunId:      runID,
		Result:     "failed",
		FinishedAt: commonpb.WrapMillis(ids.NowMillis()),
		JobIds:     []string{jobID},
	}); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("observe: best-effort UpsertRun failed after bundle export failure")
	}

	detail := commonpb.ErrorDetailFromDomain(aaderrors.New(aaderrors.CodeInternal, "bundle export failed", cause.Error(), jobID))
	if err := publish.Failed(ctx, rpc, jobID, detail); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("observe: failed publishing Failed for bundle job")
	}
}

// finishCancelledExport honors a cancellation observed mid-archive: the
// Job service has already flipped state to Cancelled via CancelJob, so
// only the run's bookkeeping needs updating here (spec §4.4: "skip
// Completed, publish state only").
func (s *Service) finishCancelledExport(ctx context.Context, runID string) {
	if _, err := s.registry.UpsertRun(&observepb.UpsertRunRequest{
		RunId:      runID,
		Result:     "cancelled",
		FinishedAt: commonpb.WrapMillis(ids.NowMillis()),
	}); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("observe: best-effort UpsertRun failed after bundle export cancellation")
	}
}

func (s *Service) buildManifest(req *observepb.ExportSupportBundleRequest, jobID, runID string) []byte {
	manifest := map[string]interface{}{
		"kind":             "support_bundle",
		"job_id":           jobID,
		"run_id":           runID,
		"project_id":       req.GetProjectId(),
		"target_id":        req.GetTargetId(),
		"toolchain_set_id": req.GetToolchainSetId(),
		"created_at":       ids.NowMillis(),
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return []byte("{}")
	}
	return data
}

func whitelistedEnvJSON() []byte {
	entries := map[string]string{}
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], envPrefix) {
			continue
		}
		entries[parts[0]] = parts[1]
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]map[string]string, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, map[string]string{"key": k, "value": entries[k]})
	}
	data, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return []byte("[]")
	}
	return data
}

// stateFileNames are the collaborator-owned state files a support
// bundle copies verbatim when include_state is set (spec §4.4).
var stateFileNames = []string{"builds.json", "projects.json", "targets.json", "toolchains.json"}

func stateFileItems() []bundle.Item {
	items := make([]bundle.Item, 0, len(stateFileNames))
	for _, name := range stateFileNames {
		path, err := aadkdir.StatePath(name)
		if err != nil {
			continue
		}
		items = append(items, bundle.File{Source: path, Name: "state/" + name})
	}
	return items
}

func (s *Service) recentRunsJSON(limit int) []byte {
	if limit <= 0 {
		limit = 25
	}
	runs, _, err := s.registry.ListRuns(nil, &observepb.Pagination{PageSize: uint32(limit)})
	if err != nil {
		return []byte("[]")
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return []byte("[]")
	}
	return data
}

// reconstructJobLogs replays a child job's bounded event history and
// regroups its JobLogAppended chunks by stream into
// logs/<job_id>/<stream>.log entries, per spec §4.4.
func (s *Service) reconstructJobLogs(jobID string) []bundle.Item {
	ctx, cancel := context.WithTimeout(context.Background(), historyFetchTimeout)
	defer cancel()

	stream, err := s.jobs.StreamEvents(ctx, jobID, true)
	if err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Warn("observe: failed streaming history for support bundle log reconstruction")
		return nil
	}

	byStream := map[string][]byte{}
	for {
		evt, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		if chunk := evt.GetLog(); chunk != nil && chunk.GetChunk() != nil {
			c := chunk.GetChunk()
			byStream[c.GetStream()] = append(byStream[c.GetStream()], c.GetData()...)
		}
		if evt.IsTerminal() {
			break
		}
	}

	streams := make([]string, 0, len(byStream))
	for name := range byStream {
		streams = append(streams, name)
	}
	sort.Strings(streams)

	items := make([]bundle.Item, 0, len(streams))
	for _, name := range streams {
		items = append(items, bundle.Generated{
			Name:  fmt.Sprintf("logs/%s/%s.log", bundle.SanitizeName(jobID), bundle.SanitizeName(name)),
			Bytes: byStream[name],
		})
	}
	return items
}

// sweepRetention enforces the three best-effort retention rules from
// spec §4.4 against the bundles directory: age cap, count cap, and
// stale tmp directory removal. Every deletion failure is logged, never
// propagated.
func (s *Service) sweepRetention() {
	dir, err := aadkdir.BundlesDir()
	if err != nil {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type fileInfo struct {
		path    string
		modTime time.Time
		size    int64
	}
	files := make([]fileInfo, 0, len(entries))
	var tmpDirs []fileInfo
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if strings.HasPrefix(e.Name(), "tmp") {
				tmpDirs = append(tmpDirs, fileInfo{path: full, modTime: info.ModTime()})
			}
			continue
		}
		files = append(files, fileInfo{path: full, modTime: info.ModTime(), size: info.Size()})
	}

	now := time.Now()

	if s.cfg.BundleRetentionDays > 0 {
		cutoff := now.Add(-time.Duration(s.cfg.BundleRetentionDays) * 24 * time.Hour)
		kept := files[:0]
		for _, f := range files {
			if f.modTime.Before(cutoff) {
				removeBestEffort(f.path, "age", humanize.Time(f.modTime))
				continue
			}
			kept = append(kept, f)
		}
		files = kept
	}

	if s.cfg.BundleMax > 0 && len(files) > s.cfg.BundleMax {
		sort.Slice(files, func(i, j int) bool { return files[i].modTime.Before(files[j].modTime) })
		excess := len(files) - s.cfg.BundleMax
		for _, f := range files[:excess] {
			removeBestEffort(f.path, "count-cap", humanize.Bytes(uint64(f.size)))
		}
	}

	if s.cfg.TmpRetentionHours > 0 {
		cutoff := now.Add(-time.Duration(s.cfg.TmpRetentionHours) * time.Hour)
		for _, d := range tmpDirs {
			if d.modTime.Before(cutoff) {
				if err := os.RemoveAll(d.path); err != nil {
					logrus.WithError(err).WithField("path", d.path).Warn("observe: best-effort tmp dir retention removal failed")
				}
			}
		}
	}
}

func removeBestEffort(path, reason, detail string) {
	if err := os.Remove(path); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("observe: best-effort bundle retention removal failed")
		return
	}
	logrus.WithFields(logrus.Fields{"path": path, "reason": reason, "detail": detail}).Info("observe: removed bundle under retention policy")
}
