// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package jdk

// Tool names a command a JDK installation must provide under bin/.
type Tool string

// The four executables every JDK carries. A directory missing any of them
// fails validation.
const (
	ToolJava      Tool = "java"
	ToolJavac     Tool = "javac"
	ToolKeytool   Tool = "keytool"
	ToolJarsigner Tool = "jarsigner"
)

// RequiredTools lists the tools checked during validation.
var RequiredTools = []Tool{ToolJava, ToolJavac, ToolKeytool, ToolJarsigner}

// Arch is the processor word size a JDK was built for.
type Arch string

const (
	// ArchUnknown means architecture probing did not produce a result.
	ArchUnknown Arch = ""
	// Arch32 is a 32-bit JDK.
	Arch32 Arch = "32bit"
	// Arch64 is a 64-bit JDK.
	Arch64 Arch = "64bit"
)

// Info describes a validated JDK installation.
//
// Path and Executables are always populated by Validate. Arch, Version,
// and Build are filled in best-effort by Enrich; their zero values mean
// "unknown" and never indicate an invalid installation.
type Info struct {
	// Path is the absolute, symlink-resolved effective root of the JDK.
	// On macOS this is the nested Contents/Home directory when the JDK
	// ships as a bundle.
	Path string `json:"path"`

	// Executables maps each required tool to its absolute,
	// symlink-resolved location on disk.
	Executables map[Tool]string `json:"executables"`

	// Arch is "32bit" or "64bit", or empty when unknown.
	Arch Arch `json:"arch,omitempty"`

	// Version is the compiler version string (e.g. "1.8.0"), or empty
	// when unknown.
	Version string `json:"version,omitempty"`

	// Build is the build number (e.g. 202 for "javac 1.8.0_202"), or 0
	// when unknown.
	Build int `json:"build,omitempty"`
}

// Executable returns the recorded path of a tool, or the empty string if
// the tool was not recorded.
func (i *Info) Executable(tool Tool) string {
	return i.Executables[tool]
}
