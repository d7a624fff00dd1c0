package build

import "testing"

func TestStoreUpsertThenGet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Upsert("build-1", "proj-1", "debug", "app", "debug", "/out/build-1-debug.apk", "succeeded", 1000); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	rec, ok := s.Get("build-1")
	if !ok {
		t.Fatal("Get(build-1) not found after Upsert")
	}
	if rec.ProjectId != "proj-1" || rec.ApkPath != "/out/build-1-debug.apk" || rec.Status != "succeeded" {
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

func TestStorePersistsAcrossLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()
	if err := s.Upsert("build-1", "proj-1", "release", "app", "release", "/out/build-1-release.apk", "succeeded", 2000); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	reloaded := NewStore()
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rec, ok := reloaded.Get("build-1")
	if !ok {
		t.Fatal("reloaded store missing build-1")
	}
	if rec.ApkPath != "/out/build-1-release.apk" {
		t.Errorf("reloaded apk path = %q, want /out/build-1-release.apk", rec.ApkPath)
	}
}
