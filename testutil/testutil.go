// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory with automatic cleanup.
// Unlike t.TempDir, the returned path is symlink-resolved, so it compares
// equal to paths the code under test resolves itself (macOS mounts the
// default temp location behind a symlink).
func TempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("Failed to resolve temp directory: %v", err)
	}
	return resolved
}

// TouchFile creates an empty regular file at the given path, creating any
// missing parent directories. Fixture trees (fake JDK layouts) are built
// from calls to this helper.
//
// Example:
//
//	root := testutil.TempDir(t)
//	testutil.TouchFile(t, filepath.Join(root, "lib", "server", "libjvm.so"))
//	testutil.TouchFile(t, filepath.Join(root, "bin", "javac"))
func TouchFile(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// CaptureOutput captures stdout during function execution.
// The original stdout is always restored, even if the function errors.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(r)
		outCh <- string(data)
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh
	if fnErr != nil {
		t.Logf("Captured function error: %v", fnErr)
	}
	return output
}
