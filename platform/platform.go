// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"path/filepath"
	"runtime"
)

// Operating system identifiers, matching runtime.GOOS values.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Spec describes how a JDK installation is laid out on one platform.
// All relative paths use forward slashes; callers convert with
// filepath.FromSlash (Lib and BundleHome helpers do this already).
type Spec struct {
	// OS is the runtime.GOOS value this spec applies to.
	OS string

	// ExeSuffix is appended to executable names in bin/ (".exe" on
	// Windows, empty elsewhere).
	ExeSuffix string

	// JVMLibraries lists candidate relative paths to the JVM shared
	// library. A directory qualifies as a JDK root only if at least one
	// of these exists as a regular file beneath it.
	JVMLibraries []string

	// BundleHome is the nested home directory inside a platform bundle
	// ("Contents/Home" on macOS), or empty when the platform has no
	// bundle layout.
	BundleHome string

	// WellKnownRoots lists directories that installers conventionally
	// place JDKs under. Informational: probing never consults it, but
	// scanning does.
	WellKnownRoots []string
}

// specs is the full platform table. Candidate library paths cover both
// the pre-9 layout (jre/, arch-specific subdirectories) and the modular
// layout (lib/server).
var specs = map[string]Spec{
	OSLinux: {
		OS: OSLinux,
		JVMLibraries: []string{
			"lib/amd64/client/libjvm.so",
			"lib/amd64/server/libjvm.so",
			"lib/i386/client/libjvm.so",
			"lib/i386/server/libjvm.so",
			"jre/lib/amd64/client/libjvm.so",
			"jre/lib/amd64/server/libjvm.so",
			"jre/lib/i386/client/libjvm.so",
			"jre/lib/i386/server/libjvm.so",
			"lib/server/libjvm.so",
		},
		WellKnownRoots: []string{
			"/usr/lib/jvm",
		},
	},
	OSDarwin: {
		OS: OSDarwin,
		JVMLibraries: []string{
			"jre/lib/server/libjvm.dylib",
			"../Libraries/libjvm.dylib",
			"lib/server/libjvm.dylib",
		},
		BundleHome: "Contents/Home",
		WellKnownRoots: []string{
			"/Library/Java/JavaVirtualMachines",
			"/System/Library/Java/JavaVirtualMachines",
		},
	},
	OSWindows: {
		OS:        OSWindows,
		ExeSuffix: ".exe",
		JVMLibraries: []string{
			"jre/bin/server/jvm.dll",
			"jre/bin/client/jvm.dll",
			"bin/server/jvm.dll",
		},
		// Windows installers register JDKs in the system registry rather
		// than a conventional directory; scanning relies on JAVA_HOME and
		// explicitly configured roots there.
	},
}

// Current returns the Spec for the running operating system.
// ok is false on platforms without a table entry.
func Current() (Spec, bool) {
	return ForOS(runtime.GOOS)
}

// ForOS returns the Spec for the given runtime.GOOS value.
// ok is false for unknown platforms.
func ForOS(goos string) (Spec, bool) {
	spec, ok := specs[goos]
	return spec, ok
}

// Lib resolves one JVM library candidate against a JDK root, converting
// to native separators. Candidates may step outside the root (the macOS
// bundle keeps libjvm.dylib in a sibling Libraries directory).
func (s Spec) Lib(root, candidate string) string {
	return filepath.Join(root, filepath.FromSlash(candidate))
}

// Executable returns the path of a named tool under the root's bin
// directory, with the platform suffix applied.
func (s Spec) Executable(root, name string) string {
	return filepath.Join(root, "bin", name+s.ExeSuffix)
}

// BundleHomeDir returns the nested bundle home for a directory, or the
// empty string when the platform has no bundle layout.
func (s Spec) BundleHomeDir(dir string) string {
	if s.BundleHome == "" {
		return ""
	}
	return filepath.Join(dir, filepath.FromSlash(s.BundleHome))
}
