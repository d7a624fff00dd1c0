package project

import "testing"

func TestStoreInsertThenGet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Insert("proj-1", "MyApp", "/tmp/myapp", "kotlin-empty", 1000); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rec, ok := s.Get("proj-1")
	if !ok {
		t.Fatal("Get(proj-1) not found after Insert")
	}
	if rec.ProjectName != "MyApp" || rec.ProjectPath != "/tmp/myapp" || rec.TemplateId != "kotlin-empty" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestStoreGetMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if _, ok := s.Get("nonexistent"); ok {
		t.Error("Get(nonexistent) = found, want not found")
	}
}

func TestStoreFindByPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if err := s.Insert("proj-1", "MyApp", "/tmp/myapp", "kotlin-empty", 1000); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	id, ok := s.FindByPath("/tmp/myapp")
	if !ok {
		t.Fatal("FindByPath did not find the inserted project")
	}
	if id != "proj-1" {
		t.Errorf("FindByPath returned %q, want proj-1", id)
	}

	if _, ok := s.FindByPath("/tmp/other"); ok {
		t.Error("FindByPath matched an unrelated path")
	}
}

func TestStorePersistsAcrossLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if err := s.Insert("proj-1", "MyApp", "/tmp/myapp", "kotlin-empty", 1000); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	reloaded := NewStore()
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rec, ok := reloaded.Get("proj-1")
	if !ok {
		t.Fatal("reloaded store missing proj-1")
	}
	if rec.ProjectPath != "/tmp/myapp" {
		t.Errorf("reloaded record path = %q, want /tmp/myapp", rec.ProjectPath)
	}
}
