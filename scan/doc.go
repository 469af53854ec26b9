// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package scan enumerates candidate JDK installation directories and
// probes each one.
//
// Candidates come from three sources: the platform's well-known
// installation roots (every immediate child directory is a candidate),
// the JAVA_HOME environment variable, and any extra roots the caller
// supplies. Directories that fail validation are skipped silently —
// scanning is discovery, not management: nothing is persisted, cached, or
// installed.
//
// # Example Usage
//
//	infos := scan.Scan(ctx, scan.Options{})
//	for _, info := range infos {
//	    fmt.Println(info.Path, info.Version)
//	}
package scan
