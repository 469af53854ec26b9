// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single probe invocation when the caller does not
// supply its own deadline. Version probes finish in well under a second;
// thirty seconds covers pathological JVM startup.
const DefaultTimeout = 30 * time.Second

// Result holds the output of a completed command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Combined returns stderr followed by stdout as one trimmed string.
func (r *Result) Combined() string {
	return strings.TrimSpace(string(r.Stderr) + string(r.Stdout))
}

// Runner executes external commands.
type Runner interface {
	// Run executes a command and waits for it to exit. A non-zero exit
	// code is reported via Result.ExitCode with a nil error; a non-nil
	// error means the command never produced an exit code (not found,
	// not executable, context canceled).
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// CommandRunner is the os/exec backed Runner.
type CommandRunner struct {
	// Timeout is applied per invocation when the incoming context has no
	// deadline. Zero means no timeout beyond the context.
	Timeout time.Duration
}

// NewCommandRunner returns a CommandRunner with the given per-run timeout.
func NewCommandRunner(timeout time.Duration) *CommandRunner {
	return &CommandRunner{Timeout: timeout}
}

// Run implements Runner.
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if r.Timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.Timeout)
			defer cancel()
		}
	}

	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 - name comes from a validated JDK layout
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Context expiry also surfaces as an ExitError (the process was
			// killed); report that as an error rather than a fake exit code.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("command %s timed out: %w", name, ctxErr)
			}
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return res, nil
}
