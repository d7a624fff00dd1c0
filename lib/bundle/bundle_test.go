package bundle

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"valid_name-1":    "valid_name-1",
		"has spaces/path":  "has_spaces_path",
		"!!!":              "___",
		"":                 "_",
	}
	for in, want := range cases {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func readZipEntries(t *testing.T, path string) map[string][]byte {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer r.Close()

	out := make(map[string][]byte)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening entry %q failed: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading entry %q failed: %v", f.Name, err)
		}
		rc.Close()
		out[f.Name] = data
	}
	return out
}

func TestWriteProducesGeneratedAndFileEntries(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.txt")
	if err := os.WriteFile(src, []byte("hello from disk"), 0o644); err != nil {
		t.Fatalf("writing fixture file failed: %v", err)
	}

	out := filepath.Join(dir, "nested", "bundle.zip")
	plan := Plan{
		OutputPath: out,
		Items: []Item{
			Generated{Name: "manifest.json", Bytes: []byte(`{"ok":true}`)},
			File{Source: src, Name: "logs/source.txt"},
		},
	}

	if err := Write(plan); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries := readZipEntries(t, out)
	if string(entries["manifest.json"]) != `{"ok":true}` {
		t.Errorf("manifest.json entry = %q", entries["manifest.json"])
	}
	if string(entries["logs/source.txt"]) != "hello from disk" {
		t.Errorf("logs/source.txt entry = %q", entries["logs/source.txt"])
	}
}

func TestWriteSkipsMissingFileSource(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bundle.zip")
	plan := Plan{
		OutputPath: out,
		Items: []Item{
			File{Source: filepath.Join(dir, "does-not-exist.txt"), Name: "missing.txt"},
			Generated{Name: "present.txt", Bytes: []byte("here")},
		},
	}

	if err := Write(plan); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries := readZipEntries(t, out)
	if _, ok := entries["missing.txt"]; ok {
		t.Error("missing.txt entry should have been skipped, not written")
	}
	if string(entries["present.txt"]) != "here" {
		t.Errorf("present.txt entry = %q", entries["present.txt"])
	}
}
