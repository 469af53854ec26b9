// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestForOS(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		ok         bool
		exeSuffix  string
		bundleHome string
		libCount   int
	}{
		{
			name:     "linux",
			goos:     "linux",
			ok:       true,
			libCount: 9,
		},
		{
			name:       "darwin",
			goos:       "darwin",
			ok:         true,
			bundleHome: "Contents/Home",
			libCount:   3,
		},
		{
			name:      "windows",
			goos:      "windows",
			ok:        true,
			exeSuffix: ".exe",
			libCount:  3,
		},
		{
			name: "unsupported platform",
			goos: "plan9",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := ForOS(tt.goos)
			if ok != tt.ok {
				t.Fatalf("ForOS(%q) ok = %v, want %v", tt.goos, ok, tt.ok)
			}
			if !ok {
				return
			}
			if spec.OS != tt.goos {
				t.Errorf("OS = %q, want %q", spec.OS, tt.goos)
			}
			if spec.ExeSuffix != tt.exeSuffix {
				t.Errorf("ExeSuffix = %q, want %q", spec.ExeSuffix, tt.exeSuffix)
			}
			if spec.BundleHome != tt.bundleHome {
				t.Errorf("BundleHome = %q, want %q", spec.BundleHome, tt.bundleHome)
			}
			if len(spec.JVMLibraries) != tt.libCount {
				t.Errorf("len(JVMLibraries) = %d, want %d", len(spec.JVMLibraries), tt.libCount)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	spec, ok := Current()
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		if !ok {
			t.Fatalf("Current() not ok on %s", runtime.GOOS)
		}
		if spec.OS != runtime.GOOS {
			t.Errorf("OS = %q, want %q", spec.OS, runtime.GOOS)
		}
	default:
		if ok {
			t.Errorf("Current() ok on unsupported platform %s", runtime.GOOS)
		}
	}
}

func TestExecutable(t *testing.T) {
	linux, _ := ForOS("linux")
	got := linux.Executable(filepath.Join("opt", "jdk8"), "javac")
	want := filepath.Join("opt", "jdk8", "bin", "javac")
	if got != want {
		t.Errorf("Executable = %q, want %q", got, want)
	}

	windows, _ := ForOS("windows")
	got = windows.Executable(filepath.Join("C:", "jdk"), "javac")
	want = filepath.Join("C:", "jdk", "bin", "javac.exe")
	if got != want {
		t.Errorf("Executable = %q, want %q", got, want)
	}
}

func TestLibEscapesRoot(t *testing.T) {
	// The darwin bundle candidate ../Libraries/libjvm.dylib must resolve
	// to a sibling of the root, not a child.
	darwin, _ := ForOS("darwin")
	root := filepath.Join("some", "bundle", "Contents", "Home")
	got := darwin.Lib(root, "../Libraries/libjvm.dylib")
	want := filepath.Join("some", "bundle", "Contents", "Libraries", "libjvm.dylib")
	if got != want {
		t.Errorf("Lib = %q, want %q", got, want)
	}
}

func TestBundleHomeDir(t *testing.T) {
	darwin, _ := ForOS("darwin")
	got := darwin.BundleHomeDir(filepath.Join("jdk.jdk"))
	want := filepath.Join("jdk.jdk", "Contents", "Home")
	if got != want {
		t.Errorf("BundleHomeDir = %q, want %q", got, want)
	}

	linux, _ := ForOS("linux")
	if got := linux.BundleHomeDir("x"); got != "" {
		t.Errorf("BundleHomeDir on linux = %q, want empty", got)
	}
}
