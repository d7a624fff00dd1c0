// Package toolchain implements the Toolchain collaborator worker (spec
// §4.7): simulated download/verify/extract/register phases against a
// toolchain manifest persisted at state/toolchains.json.
package toolchain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/ids"
	"github.com/androiddevkit/aadk/lib/toolchainpb"
)

const stateFileName = "toolchains.json"

type recordEntry struct {
	ToolchainId string `json:"toolchain_id"`
	Version     string `json:"version"`
	Host        string `json:"host"`
	Status      string `json:"status"`
	UpdatedAt   int64  `json:"updated_at"`
}

func (e recordEntry) toPB() *toolchainpb.ToolchainRecord {
	return &toolchainpb.ToolchainRecord{
		ToolchainId: e.ToolchainId,
		Version:     e.Version,
		Host:        e.Host,
		Status:      e.Status,
		UpdatedAt:   commonpb.WrapMillis(e.UpdatedAt),
	}
}

// Store is a single mutex over the toolchain manifest, write-through to
// disk on every mutation via atomic temp-file-then-rename, mirroring
// the persistence discipline of lib/observe's Registry.
type Store struct {
	mu      sync.Mutex
	records map[string]recordEntry
}

func NewStore() *Store {
	return &Store{records: make(map[string]recordEntry)}
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
	s.records = make(map[string]recordEntry, len(entries))
	for _, e := range entries {
		s.records[e.ToolchainId] = e
	}
	return nil
}

func (s *Store) persistLocked() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	entries := make([]recordEntry, 0, len(s.records))
	for _, e := range s.records {
		entries = append(entries, e)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".toolchains-*.json.tmp")
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

// Upsert records a toolchain's status after a phase completes.
func (s *Store) Upsert(toolchainID, version, host, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[toolchainID]
	if ok {
		if version != "" {
			existing.Version = version
		}
		if host != "" {
			existing.Host = host
		}
		existing.Status = status
		existing.UpdatedAt = ids.NowMillis()
		s.records[toolchainID] = existing
	} else {
		s.records[toolchainID] = recordEntry{
			ToolchainId: toolchainID,
			Version:     version,
			Host:        host,
			Status:      status,
			UpdatedAt:   ids.NowMillis(),
		}
	}
	return s.persistLocked()
}

// Remove deletes a toolchain's manifest entry (uninstall).
func (s *Store) Remove(toolchainID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, toolchainID)
	return s.persistLocked()
}

// Get returns a toolchain's current record, if any.
func (s *Store) Get(toolchainID string) (*toolchainpb.ToolchainRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[toolchainID]
	if !ok {
		return nil, false
	}
	return e.toPB(), true
}
