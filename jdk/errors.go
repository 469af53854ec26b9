// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package jdk

import "errors"

// Validation error kinds. Callers classify failures with errors.Is; the
// wrapped message carries the offending path.
var (
	// ErrInvalidArgument means the input path is empty or not usable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means the resolved path does not exist as a directory.
	ErrNotFound = errors.New("directory not found")

	// ErrNotAJDK means the directory exists but lacks a JVM shared
	// library or one of the required executables.
	ErrNotAJDK = errors.New("not a JDK")
)
