// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI styling used in human-readable output.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
)

// Output symbols.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	writer       io.Writer
	colorEnabled bool
)

func init() {
	writer = os.Stdout
	colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))
}

// SetFormat selects the output format. Unknown names are rejected.
func SetFormat(name string) error {
	switch Format(name) {
	case FormatDefault, FormatJSON:
		mu.Lock()
		globalFormat = Format(name)
		mu.Unlock()
		return nil
	default:
		return fmt.Errorf("unknown output format %q", name)
	}
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// SetWriter redirects output, mainly for tests. Color is disabled for
// non-stdout writers.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
	colorEnabled = false
}

// ResetWriter restores output to stdout with terminal color detection.
func ResetWriter() {
	mu.Lock()
	defer mu.Unlock()
	writer = os.Stdout
	colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(color, s string) string {
	mu.RLock()
	enabled := colorEnabled
	mu.RUnlock()
	if !enabled {
		return s
	}
	return color + s + ansiReset
}

func out() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Success prints a check-marked line.
func Success(format string, args ...any) {
	fmt.Fprintf(out(), "%s %s\n", colorize(ansiGreen, SymbolCheck), fmt.Sprintf(format, args...))
}

// Failure prints a cross-marked line.
func Failure(format string, args ...any) {
	fmt.Fprintf(out(), "%s %s\n", colorize(ansiRed, SymbolCross), fmt.Sprintf(format, args...))
}

// Header prints a bold section line.
func Header(format string, args ...any) {
	fmt.Fprintf(out(), "%s\n", colorize(ansiBold, fmt.Sprintf(format, args...)))
}

// Detail prints an indented, dimmed key-value line.
func Detail(key, value string) {
	fmt.Fprintf(out(), "  %s %s\n", colorize(ansiDim, key+":"), value)
}

// PrintJSON marshals v with indentation to the output writer.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(out(), string(data))
	return nil
}
