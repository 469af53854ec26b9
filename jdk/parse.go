// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package jdk

import (
	"regexp"
	"strconv"
)

var (
	// javacVersionPattern matches compiler version output such as
	// "javac 1.8.0_202" (version 1.8.0, build 202) or "javac 17.0.2"
	// (version 17.0.2, no build).
	javacVersionPattern = regexp.MustCompile(`javac\s+(\d+(?:\.\d+)*)(?:_(\d+))?`)

	// runtimeBuildPattern matches the build suffix in java runtime
	// banners, e.g. `(build 1.8.0_202-b08+202)` or `(build 17.0.2+8)`,
	// capturing the digits after the final plus sign.
	runtimeBuildPattern = regexp.MustCompile(`\(build [^)]*\+(\d+)\)`)
)

// parseJavacVersion extracts the version string and optional build number
// from compiler output. The error stream is tried first because javac
// historically printed its version there; stdout is the fallback for
// newer releases.
func parseJavacVersion(stderr, stdout string) (version string, build int, ok bool) {
	for _, stream := range []string{stderr, stdout} {
		m := javacVersionPattern.FindStringSubmatch(stream)
		if m == nil {
			continue
		}
		version = m[1]
		if m[2] != "" {
			// The pattern guarantees digits; a number too large for int
			// is not a real build, leave it unknown.
			if n, err := strconv.Atoi(m[2]); err == nil {
				build = n
			}
		}
		return version, build, true
	}
	return "", 0, false
}

// parseRuntimeBuild extracts the build number from a java -version error
// stream.
func parseRuntimeBuild(stderr string) (int, bool) {
	m := runtimeBuildPattern.FindStringSubmatch(stderr)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
