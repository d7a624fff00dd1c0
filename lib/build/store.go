// Package build implements the Build collaborator worker (spec §4.7):
// simulating a Gradle invocation against a manifest persisted at
// state/builds.json.
package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/buildpb"
	"github.com/androiddevkit/aadk/lib/commonpb"
)

const stateFileName = "builds.json"

type recordEntry struct {
	BuildId      string `json:"build_id"`
	ProjectId    string `json:"project_id"`
	BuildVariant string `json:"build_variant"`
	Module       string `json:"module"`
	VariantName  string `json:"variant_name"`
	ApkPath      string `json:"apk_path"`
	Status       string `json:"status"`
	UpdatedAt    int64  `json:"updated_at"`
}

func (e recordEntry) toPB() *buildpb.BuildRecord {
	return &buildpb.BuildRecord{
		BuildId:      e.BuildId,
		ProjectId:    e.ProjectId,
		BuildVariant: e.BuildVariant,
		Module:       e.Module,
		VariantName:  e.VariantName,
		ApkPath:      e.ApkPath,
		Status:       e.Status,
		UpdatedAt:    commonpb.WrapMillis(e.UpdatedAt),
	}
}

type Store struct {
	mu     sync.Mutex
	builds map[string]recordEntry
}

func NewStore() *Store {
	return &Store{builds: make(map[string]recordEntry)}
}

func statePath() (string, error) {
	return aadkdir.StatePath(stateFileName)
}

// Load replaces the in-memory manifest from disk; a missing file is
// treated as an empty manifest.
func (s *Store) Load() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var entries []recordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.builds = make(map[string]recordEntry, len(entries))
	for _, e := range entries {
		s.builds[e.BuildId] = e
	}
	return nil
}

func (s *Store) persistLocked() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	entries := make([]recordEntry, 0, len(s.builds))
	for _, e := range s.builds {
		entries = append(entries, e)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".builds-*.json.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Upsert records buildID's terminal apk path and status.
func (s *Store) Upsert(buildID, projectID, buildVariant, module, variantName, apkPath, status string, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builds[buildID] = recordEntry{
		BuildId:      buildID,
		ProjectId:    projectID,
		BuildVariant: buildVariant,
		Module:       module,
		VariantName:  variantName,
		ApkPath:      apkPath,
		Status:       status,
		UpdatedAt:    updatedAt,
	}
	return s.persistLocked()
}

// Get returns a build's record, if any.
func (s *Store) Get(buildID string) (*buildpb.BuildRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.builds[buildID]
	if !ok {
		return nil, false
	}
	return e.toPB(), true
}
