// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package platform describes the per-operating-system layout of a JDK
// installation as a small data table keyed by GOOS.
//
// Each supported platform gets a Spec listing the candidate relative paths
// of the JVM shared library, the executable filename suffix, the bundle
// home adjustment (macOS distributes JDKs as bundles with a nested
// Contents/Home directory), and the well-known directories installers drop
// JDKs into. Probing code resolves the Spec once and stays
// platform-agnostic from there.
//
// Platforms without an entry in the table (anything other than linux,
// darwin, and windows) are unsupported: Current reports ok == false and
// callers must treat every directory as not a JDK.
//
// # Example Usage
//
//	spec, ok := platform.Current()
//	if !ok {
//	    return fmt.Errorf("unsupported platform %s", runtime.GOOS)
//	}
//	for _, rel := range spec.JVMLibraries {
//	    // check filepath.Join(root, rel)
//	}
package platform
