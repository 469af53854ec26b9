// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package executil provides subprocess execution with separately captured
// stdout and stderr and an explicit exit code.
//
// A non-zero exit is a normal Result, not an error: probing code inspects
// exit codes to make decisions (a failed flag probe still carries
// information). Errors are reserved for the cases where no exit code
// exists at all — the binary could not be started, or the context expired.
//
// The Runner interface exists so tests can substitute a scripted fake for
// real subprocess launches.
//
// # Example Usage
//
//	runner := executil.NewCommandRunner(30 * time.Second)
//	res, err := runner.Run(ctx, "/opt/jdk8/bin/javac", "-version")
//	if err != nil {
//	    // javac could not be launched
//	}
//	if res.ExitCode == 0 {
//	    fmt.Println(string(res.Stderr)) // javac prints its version to stderr
//	}
package executil
