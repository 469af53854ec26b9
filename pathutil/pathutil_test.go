// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}
	t.Setenv("JDK_TEST_DIR", "jdk-17")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain path unchanged",
			in:   filepath.Join("opt", "jdk8"),
			want: filepath.Join("opt", "jdk8"),
		},
		{
			name: "bare tilde",
			in:   "~",
			want: home,
		},
		{
			name: "tilde prefix",
			in:   "~/jdks",
			want: home + "/jdks",
		},
		{
			name: "env placeholder",
			in:   "/opt/$JDK_TEST_DIR",
			want: "/opt/jdk-17",
		},
		{
			name: "braced env placeholder",
			in:   "/opt/${JDK_TEST_DIR}",
			want: "/opt/jdk-17",
		},
		{
			name: "tilde not expanded mid-path",
			in:   "/opt/~jdk",
			want: "/opt/~jdk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in)
			if err != nil {
				t.Fatalf("Expand(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	// t.TempDir may itself sit behind a symlink (macOS /tmp), so compare
	// against the resolved form.
	resolvedDir := Resolve(dir)
	if !filepath.IsAbs(resolvedDir) {
		t.Errorf("Resolve(%q) = %q, not absolute", dir, resolvedDir)
	}

	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0o750); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if got, want := Resolve(link), Resolve(target); got != want {
		t.Errorf("Resolve(%q) = %q, want %q", link, got, want)
	}
}

func TestResolveNonexistent(t *testing.T) {
	// Resolution of a missing path should fall back to the absolute form
	// rather than erroring.
	got := Resolve(filepath.Join(t.TempDir(), "missing"))
	if !filepath.IsAbs(got) {
		t.Errorf("Resolve of missing path = %q, not absolute", got)
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	if !IsDir(dir) {
		t.Errorf("IsDir(%q) = false, want true", dir)
	}

	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if IsDir(file) {
		t.Errorf("IsDir(%q) = true for regular file", file)
	}
	if IsDir(filepath.Join(dir, "missing")) {
		t.Error("IsDir = true for missing path")
	}
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if !IsRegularFile(file) {
		t.Errorf("IsRegularFile(%q) = false, want true", file)
	}
	if IsRegularFile(dir) {
		t.Errorf("IsRegularFile(%q) = true for directory", dir)
	}
	if IsRegularFile(filepath.Join(dir, "missing")) {
		t.Error("IsRegularFile = true for missing path")
	}
}
