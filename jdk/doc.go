// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package jdk detects whether a directory contains a Java Development Kit
// installation and extracts its version, build number, and architecture by
// running the JDK's own tools.
//
// Detection has two phases with deliberately different failure behavior:
//
//   - Validate performs structural checks (the directory exists, holds a
//     JVM shared library, and carries the four required executables) and
//     fails hard — a non-JDK must never be reported as one.
//   - Enrich runs javac and java to derive version, build, and
//     architecture, and never fails — a real JDK whose version output is
//     unrecognized is still a JDK; the corresponding fields simply stay
//     unknown.
//
// Detect composes the two and is the entry point intended for callers.
//
// # Example Usage
//
//	info, err := jdk.Detect(ctx, "/usr/lib/jvm/java-8-openjdk")
//	if err != nil {
//	    // errors.Is(err, jdk.ErrNotAJDK) etc.
//	}
//	fmt.Println(info.Version, info.Build, info.Arch)
package jdk
