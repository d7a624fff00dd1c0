// Package targets implements the Targets collaborator worker (spec
// §4.7): simulated APK install/launch/stop and Cuttlefish device
// lifecycle, recorded at state/targets.json.
package targets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/targetpb"
)

const stateFileName = "targets.json"

type recordEntry struct {
	TargetId      string `json:"target_id"`
	ApplicationId string `json:"application_id"`
	ApkPath       string `json:"apk_path"`
	Status        string `json:"status"`
	UpdatedAt     int64  `json:"updated_at"`
}

func (e recordEntry) toPB() *targetpb.TargetRecord {
	return &targetpb.TargetRecord{
		TargetId:      e.TargetId,
		ApplicationId: e.ApplicationId,
		ApkPath:       e.ApkPath,
		Status:        e.Status,
		UpdatedAt:     commonpb.WrapMillis(e.UpdatedAt),
	}
}

type Store struct {
	mu      sync.Mutex
	targets map[string]recordEntry
}

func NewStore() *Store {
	return &Store{targets: make(map[string]recordEntry)}
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
	s.targets = make(map[string]recordEntry, len(entries))
	for _, e := range entries {
		s.targets[e.TargetId] = e
	}
	return nil
}

func (s *Store) persistLocked() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	entries := make([]recordEntry, 0, len(s.targets))
	for _, e := range s.targets {
		entries = append(entries, e)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".targets-*.json.tmp")
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

// Upsert records targetID's current apk/application/status, merging
// into any existing record rather than clobbering fields left blank.
func (s *Store) Upsert(targetID, applicationID, apkPath, status string, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.targets[targetID]
	e.TargetId = targetID
	if applicationID != "" {
		e.ApplicationId = applicationID
	}
	if apkPath != "" {
		e.ApkPath = apkPath
	}
	e.Status = status
	e.UpdatedAt = updatedAt
	s.targets[targetID] = e
	return s.persistLocked()
}

// Get returns a target's record, if any.
func (s *Store) Get(targetID string) (*targetpb.TargetRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.targets[targetID]
	if !ok {
		return nil, false
	}
	return e.toPB(), true
}
