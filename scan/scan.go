// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/jongio/jdk-core/jdk"
	"github.com/jongio/jdk-core/logutil"
	"github.com/jongio/jdk-core/platform"
)

// EnvJavaHome names the conventional environment variable pointing at a
// JDK installation.
const EnvJavaHome = "JAVA_HOME"

// Options configures a scan.
type Options struct {
	// ExtraRoots lists additional directories whose children are probed,
	// on top of the platform's well-known roots.
	ExtraRoots []string

	// SkipWellKnown disables the platform's well-known roots, scanning
	// only JAVA_HOME and ExtraRoots.
	SkipWellKnown bool

	// Prober overrides the prober, mainly for tests. Nil means the
	// package default.
	Prober *jdk.Prober
}

// Scan probes every candidate directory and returns the valid JDKs found,
// deduplicated by resolved path and sorted for stable output. Candidates
// that fail validation are skipped; scanning itself never fails.
func Scan(ctx context.Context, opts Options) []*jdk.Info {
	log := logutil.NewLogger("jdkscan")

	prober := opts.Prober
	if prober == nil {
		prober = jdk.Default()
	}

	var roots []string
	if !opts.SkipWellKnown {
		if spec, ok := platform.Current(); ok {
			roots = append(roots, spec.WellKnownRoots...)
		}
	}
	roots = append(roots, opts.ExtraRoots...)

	var candidates []string
	for _, root := range roots {
		candidates = append(candidates, childDirs(root)...)
	}
	if home := os.Getenv(EnvJavaHome); home != "" {
		candidates = append(candidates, home)
	}

	seen := make(map[string]bool)
	var found []*jdk.Info
	for _, dir := range candidates {
		info, err := prober.Detect(ctx, dir)
		if err != nil {
			log.Debug("candidate rejected", "dir", dir, "error", err)
			continue
		}
		if seen[info.Path] {
			continue
		}
		seen[info.Path] = true
		found = append(found, info)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })

	log.Debug("scan complete", "candidates", len(candidates), "found", len(found))
	return found
}

// childDirs lists the immediate subdirectories of root. A missing or
// unreadable root yields none.
func childDirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Type()&os.ModeSymlink != 0 {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}
	return dirs
}
