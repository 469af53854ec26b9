// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand expands a leading "~" to the current user's home directory and
// substitutes $VAR / ${VAR} environment placeholders.
// Windows %VAR% syntax is intentionally not handled; callers on Windows
// pass literal paths or $-style placeholders.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = home + path[1:]
	}
	return os.ExpandEnv(path), nil
}

// Resolve returns the absolute, symlink-resolved form of a path.
// If symlink resolution fails (broken link, permission), the absolute
// form is returned instead; if even that fails, the input is returned
// unchanged. Resolve never errors because callers only use it to
// normalize paths that already passed an existence check.
func Resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path exists and is a regular file.
// Symlinks are followed, so a link to a regular file qualifies.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
