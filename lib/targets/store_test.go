package targets

import "testing"

func TestStoreUpsertThenGet(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Upsert("tgt-1", "com.example.app", "/out/b-debug.apk", "apk-installed", 1000); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	rec, ok := s.Get("tgt-1")
	if !ok {
		t.Fatal("Get(tgt-1) not found after Upsert")
	}
	if rec.ApplicationId != "com.example.app" || rec.ApkPath != "/out/b-debug.apk" || rec.Status != "apk-installed" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestStoreUpsertMergesBlankFields(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewStore()

	if err := s.Upsert("tgt-1", "com.example.app", "/out/b-debug.apk", "apk-installed", 1000); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}
	if err := s.Upsert("tgt-1", "", "", "running", 2000); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	rec, ok := s.Get("tgt-1")
	if !ok {
		t.Fatal("Get(tgt-1) not found")
	}
	if rec.ApplicationId != "com.example.app" || rec.ApkPath != "/out/b-debug.apk" {
		t.Errorf("blank fields clobbered existing values: %+v", rec)
	}
	if rec.Status != "running" {
		t.Errorf("record status = %q, want running", rec.Status)
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
	if err := s.Upsert("tgt-1", "com.example.app", "/out/b-debug.apk", "apk-installed", 1000); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	reloaded := NewStore()
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rec, ok := reloaded.Get("tgt-1")
	if !ok {
		t.Fatal("reloaded store missing tgt-1")
	}
	if rec.ApplicationId != "com.example.app" {
		t.Errorf("reloaded application id = %q, want com.example.app", rec.ApplicationId)
	}
}
