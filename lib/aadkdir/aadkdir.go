// Package aadkdir resolves the single on-disk data directory every AADK
// service reads and writes under. It is the one place path construction for
// persisted state (observe.json, bundles/, projects.json, ...) is allowed to
// happen; packages that need a path under the data directory call Resolve
// (or one of its helpers) rather than building the path themselves.
package aadkdir

import (
	"os"
	"path/filepath"
)

const (
	// envHome is the environment variable consulted to locate the user's
	// home directory.
	envHome = "HOME"

	// fallbackDir is used when HOME is unset or empty.
	fallbackDir = "/tmp/aadk"

	relDataDir = ".local/share/aadk"

	// BundlesDirName is the subdirectory exported archives are written to.
	BundlesDirName = "bundles"

	// StateDirName is the subdirectory persisted JSON state lives in.
	StateDirName = "state"

	// BuildOutputsDirName is the subdirectory simulated APK build
	// outputs are written to.
	BuildOutputsDirName = "build-outputs"
)

// Resolve returns the root data directory for this process, creating it (and
// its parents) if necessary.
func Resolve() (string, error) {
	dir := dataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func dataDir() string {
	home := os.Getenv(envHome)
	if home == "" {
		return fallbackDir
	}
	return filepath.Join(home, relDataDir)
}

// StatePath returns the absolute path of a named file under state/,
// ensuring the state directory exists.
func StatePath(name string) (string, error) {
	root, err := Resolve()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, StateDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// BundlesDir returns the absolute path of the bundles/ directory, ensuring
// it exists.
func BundlesDir() (string, error) {
	root, err := Resolve()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, BundlesDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// BundlePath returns the absolute path for a bundle file named name under
// bundles/, without requiring the file to exist yet.
func BundlePath(name string) (string, error) {
	dir, err := BundlesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// BuildOutputsDir returns the absolute path of the build-outputs/
// directory, ensuring it exists.
func BuildOutputsDir() (string, error) {
	root, err := Resolve()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, BuildOutputsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
