// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil provides path expansion, symlink resolution, and
// filesystem type checks used by the JDK prober.
//
// Expansion handles the two shorthand forms users put in configuration
// and environment variables: a leading "~" for the home directory and
// $VAR / ${VAR} environment placeholders. Resolution produces the
// absolute, symlink-free form of a path so that two routes to the same
// JDK compare equal.
//
// # Example Usage
//
//	path, err := pathutil.Expand("~/jdks/$JDK_NAME")
//	if err != nil {
//	    // handle error
//	}
//	resolved := pathutil.Resolve(path)
//	if pathutil.IsDir(resolved) {
//	    // probe it
//	}
package pathutil
