package observe

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/androiddevkit/aadk/lib/aadkdir"
)

func TestWhitelistedEnvJSONFiltersByPrefix(t *testing.T) {
	t.Setenv("AADK_FOO", "bar")
	t.Setenv("OTHER_VAR", "ignored")

	data := whitelistedEnvJSON()

	var entries []map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("unmarshaling env json failed: %v", err)
	}

	found := false
	for _, e := range entries {
		if e["key"] == "OTHER_VAR" {
			t.Fatalf("whitelistedEnvJSON leaked a non-AADK_ variable: %+v", e)
		}
		if e["key"] == "AADK_FOO" {
			found = true
			if e["value"] != "bar" {
				t.Errorf("AADK_FOO value = %q, want bar", e["value"])
			}
		}
	}
	if !found {
		t.Error("whitelistedEnvJSON did not include AADK_FOO")
	}
}

func TestStateFileItemsListsEveryStateFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := aadkdir.StatePath("builds.json")
	if err != nil {
		t.Fatalf("StatePath failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"builds":[]}`), 0o644); err != nil {
		t.Fatalf("writing fixture state file failed: %v", err)
	}

	items := stateFileItems()
	if len(items) != len(stateFileNames) {
		t.Fatalf("stateFileItems returned %d items, want %d (missing files still produce a skipped-at-write File item)", len(items), len(stateFileNames))
	}
}

func TestSweepRetentionEnforcesCountCap(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := aadkdir.BundlesDir()
	if err != nil {
		t.Fatalf("BundlesDir failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "bundle-"+string(rune('a'+i))+".zip")
		if err := os.WriteFile(name, []byte("data"), 0o644); err != nil {
			t.Fatalf("writing fixture bundle failed: %v", err)
		}
		mtime := time.Now().Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(name, mtime, mtime); err != nil {
			t.Fatalf("Chtimes failed: %v", err)
		}
	}

	svc := &Service{cfg: Config{BundleMax: 2, BundleRetentionDays: 0, TmpRetentionHours: 0}}
	svc.sweepRetention()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("bundles dir has %d entries after sweep, want 2", len(entries))
	}
	if _, err := os.Stat(filepath.Join(dir, "bundle-e.zip")); err != nil {
		t.Error("sweepRetention removed the newest bundle instead of the oldest")
	}
}

func TestSweepRetentionRemovesStaleTmpDirs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := aadkdir.BundlesDir()
	if err != nil {
		t.Fatalf("BundlesDir failed: %v", err)
	}

	staleDir := filepath.Join(dir, "tmp-stale")
	if err := os.MkdirAll(staleDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	old := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(staleDir, old, old); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	svc := &Service{cfg: Config{TmpRetentionHours: 24}}
	svc.sweepRetention()

	if _, err := os.Stat(staleDir); !os.IsNotExist(err) {
		t.Error("sweepRetention did not remove the stale tmp directory")
	}
}
