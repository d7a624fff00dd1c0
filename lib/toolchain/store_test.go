package toolchain

import "testing"

func TestStoreUpsertThenGet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Upsert("tc-1", "1.0", "linux-x86_64", "installed"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	rec, ok := s.Get("tc-1")
	if !ok {
		t.Fatal("Get(tc-1) not found after Upsert")
	}
	if rec.Version != "1.0" || rec.Host != "linux-x86_64" || rec.Status != "installed" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestStoreUpsertPreservesFieldsOnBlankOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Upsert("tc-1", "1.0", "linux-x86_64", "installed"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert("tc-1", "", "", "verified"); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	rec, ok := s.Get("tc-1")
	if !ok {
		t.Fatal("Get(tc-1) not found")
	}
	if rec.Version != "1.0" || rec.Host != "linux-x86_64" {
		t.Errorf("blank overwrite clobbered existing fields: %+v", rec)
	}
	if rec.Status != "verified" {
		t.Errorf("Status = %q, want verified", rec.Status)
	}
}

func TestStoreRemove(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Upsert("tc-1", "1.0", "linux-x86_64", "installed"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Remove("tc-1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := s.Get("tc-1"); ok {
		t.Error("Get(tc-1) still found after Remove")
	}
}

func TestStoreGetMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if _, ok := s.Get("nonexistent"); ok {
		t.Error("Get(nonexistent) = found, want not found")
	}
}

func TestStoreLoadMissingFileIsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if err := s.Load(); err != nil {
		t.Fatalf("Load() on fresh state dir failed: %v", err)
	}
	if _, ok := s.Get("tc-1"); ok {
		t.Error("Get after Load on empty state returned a record")
	}
}

func TestStorePersistsAcrossLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if err := s.Upsert("tc-1", "2.0", "darwin-arm64", "installed"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	reloaded := NewStore()
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rec, ok := reloaded.Get("tc-1")
	if !ok {
		t.Fatal("reloaded store missing tc-1")
	}
	if rec.Version != "2.0" || rec.Host != "darwin-arm64" {
		t.Errorf("reloaded record = %+v, want version 2.0 / host darwin-arm64", rec)
	}
}
