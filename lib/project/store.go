// Package project implements the Project collaborator worker (spec
// §4.7): expanding a named template id into a real project directory
// skeleton on disk, recorded at state/projects.json.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/androiddevkit/aadk/lib/aadkdir"
	"github.com/androiddevkit/aadk/lib/commonpb"
	"github.com/androiddevkit/aadk/lib/projectpb"
)

const stateFileName = "projects.json"

type recordEntry struct {
	ProjectId   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	ProjectPath string `json:"project_path"`
	TemplateId  string `json:"template_id"`
	CreatedAt   int64  `json:"created_at"`
}

func (e recordEntry) toPB() *projectpb.ProjectRecord {
	return &projectpb.ProjectRecord{
		ProjectId:   e.ProjectId,
		ProjectName: e.ProjectName,
		ProjectPath: e.ProjectPath,
		TemplateId:  e.TemplateId,
		CreatedAt:   commonpb.WrapMillis(e.CreatedAt),
	}
}

// Store is a single mutex over the project manifest, write-through to
// disk via atomic temp-file-then-rename, mirroring lib/observe's
// Registry persistence discipline.
type Store struct {
	mu       sync.Mutex
	projects map[string]recordEntry
}

func NewStore() *Store {
	return &Store{projects: make(map[string]recordEntry)}
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
	s.projects = make(map[string]recordEntry, len(entries))
	for _, e := range entries {
		s.projects[e.ProjectId] = e
	}
	return nil
}

func (s *Store) persistLocked() error {
	path, err := statePath()
	if err != nil {
		return err
	}
	entries := make([]recordEntry, 0, len(s.projects))
	for _, e := range s.projects {
		entries = append(entries, e)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".projects-*.json.tmp")
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

// Insert records a newly created project.
func (s *Store) Insert(projectID, name, path, templateID string, createdAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[projectID] = recordEntry{
		ProjectId:   projectID,
		ProjectName: name,
		ProjectPath: path,
		TemplateId:  templateID,
		CreatedAt:   createdAt,
	}
	return s.persistLocked()
}

// Get returns a project's record, if any.
func (s *Store) Get(projectID string) (*projectpb.ProjectRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.projects[projectID]
	if !ok {
		return nil, false
	}
	return e.toPB(), true
}

// FindByPath returns the project id already recorded against path, if
// any.
func (s *Store) FindByPath(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.projects {
		if e.ProjectPath == path {
			return e.ProjectId, true
		}
	}
	return "", false
}
