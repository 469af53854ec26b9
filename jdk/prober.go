// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package jdk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jongio/jdk-core/executil"
	"github.com/jongio/jdk-core/logutil"
	"github.com/jongio/jdk-core/pathutil"
	"github.com/jongio/jdk-core/platform"
)

// d64UnsupportedExit is the exit code some 64-bit compilers return when
// they reject the -d64 flag. The failed flag probe still identifies the
// binary as 64-bit in that case; any other failure defaults to 32-bit.
// This heuristic is vendor- and version-dependent; it is preserved as-is
// rather than generalized because its behavior across vendors cannot be
// verified.
const d64UnsupportedExit = 2

// Prober validates JDK directories and enriches them with version
// metadata. The zero value is not usable; construct with NewProber.
// A Prober is safe for concurrent use: each call operates only on its own
// Info value.
type Prober struct {
	runner executil.Runner
	spec   platform.Spec
	specOK bool
	log    *logutil.ComponentLogger
}

// Option configures a Prober.
type Option func(*Prober)

// WithRunner replaces the subprocess runner, mainly for tests.
func WithRunner(r executil.Runner) Option {
	return func(p *Prober) { p.runner = r }
}

// WithPlatform overrides the platform spec, allowing one platform's
// layout to be probed (or tested) from another.
func WithPlatform(spec platform.Spec) Option {
	return func(p *Prober) {
		p.spec = spec
		p.specOK = true
	}
}

// NewProber returns a Prober for the current platform using the default
// command runner.
func NewProber(opts ...Option) *Prober {
	spec, ok := platform.Current()
	p := &Prober{
		runner: executil.NewCommandRunner(executil.DefaultTimeout),
		spec:   spec,
		specOK: ok,
		log:    logutil.NewLogger("jdkprobe"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks whether dir is a JDK installation root.
//
// It fails with ErrInvalidArgument for an empty path, ErrNotFound when the
// expanded path is not an existing directory, and ErrNotAJDK when the
// directory lacks a JVM shared library or any of the required executables.
// On success the returned Info has Path and Executables populated and the
// enrichment fields unknown. Validate only reads the filesystem; no
// subprocess runs in this phase.
func (p *Prober) Validate(dir string) (*Info, error) {
	info, err := p.validate(dir)
	if err != nil {
		recordValidation(validationOutcome(err))
		return nil, err
	}
	recordValidation(outcomeOK)
	return info, nil
}

func (p *Prober) validate(dir string) (*Info, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: directory path is empty", ErrInvalidArgument)
	}

	expanded, err := pathutil.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot expand %q: %v", ErrInvalidArgument, dir, err)
	}
	if !pathutil.IsDir(expanded) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, expanded)
	}
	root := pathutil.Resolve(expanded)

	// macOS distributes JDKs as bundles; the nested home directory is the
	// effective root for everything that follows.
	if p.specOK {
		if home := p.spec.BundleHomeDir(root); home != "" && pathutil.IsDir(home) {
			root = pathutil.Resolve(home)
		}
	}

	// A JRE or an unrelated directory can superficially resemble a JDK
	// layout; requiring the JVM shared library rules those out. Platforms
	// without a library table never validate.
	if !p.specOK || !p.hasJVMLibrary(root) {
		return nil, fmt.Errorf("%w: no JVM shared library under %s", ErrNotAJDK, root)
	}

	executables := make(map[Tool]string, len(RequiredTools))
	for _, tool := range RequiredTools {
		path := p.spec.Executable(root, string(tool))
		if !pathutil.IsRegularFile(path) {
			return nil, fmt.Errorf("%w: missing required executable %s", ErrNotAJDK, path)
		}
		executables[tool] = pathutil.Resolve(path)
	}

	p.log.Debug("validated JDK layout", "path", root)
	return &Info{Path: root, Executables: executables}, nil
}

func (p *Prober) hasJVMLibrary(root string) bool {
	for _, candidate := range p.spec.JVMLibraries {
		if pathutil.IsRegularFile(p.spec.Lib(root, candidate)) {
			return true
		}
	}
	return false
}

// Enrich populates Arch, Version, and Build by running the JDK's own
// javac and java. It never fails: every probe or parse error is swallowed
// and the corresponding fields stay unknown. The input is updated in
// place and returned; treat it as immutable afterwards.
func (p *Prober) Enrich(ctx context.Context, info *Info) *Info {
	if info == nil {
		return info
	}
	javac := info.Executable(ToolJavac)
	if javac == "" {
		return info
	}

	output := p.probeArch(ctx, info, javac)

	if output != nil {
		if version, build, ok := parseJavacVersion(string(output.Stderr), string(output.Stdout)); ok {
			info.Version = version
			info.Build = build
		} else {
			recordEnrichError(stageVersionParse)
			p.log.Debug("unrecognized javac version output", "path", info.Path, "output", output.Combined())
		}
	}

	if info.Build == 0 {
		p.probeRuntimeBuild(ctx, info)
	}

	p.log.Debug("enriched JDK", "path", info.Path,
		"version", info.Version, "build", info.Build, "arch", info.Arch)
	return info
}

// probeArch determines the architecture via the -d64 flag probe and
// returns the output of whichever javac invocation succeeded, or nil when
// neither did.
func (p *Prober) probeArch(ctx context.Context, info *Info, javac string) *executil.Result {
	res, err := p.runner.Run(ctx, javac, "-d64", "-version")
	if err == nil && res.ExitCode == 0 {
		info.Arch = Arch64
		return res
	}

	// The -d64 probe errors on some compiler builds, yet an exit code of
	// d64UnsupportedExit still marks the binary as 64-bit. Anything else
	// (including a spawn failure with no exit code) means 32-bit.
	if err == nil && res.ExitCode == d64UnsupportedExit {
		info.Arch = Arch64
	} else {
		info.Arch = Arch32
	}
	if err != nil {
		recordEnrichError(stageArchProbe)
		p.log.Debug("javac -d64 probe failed to run", "path", info.Path, "error", err)
	}

	fallback, err := p.runner.Run(ctx, javac, "-version")
	if err != nil || fallback.ExitCode != 0 {
		recordEnrichError(stageArchProbe)
		p.log.Debug("javac -version fallback failed", "path", info.Path, "error", err)
		return nil
	}
	return fallback
}

// probeRuntimeBuild asks java -version for the build number when the
// compiler output did not carry one.
func (p *Prober) probeRuntimeBuild(ctx context.Context, info *Info) {
	java := info.Executable(ToolJava)
	if java == "" {
		return
	}

	res, err := p.runner.Run(ctx, java, "-version")
	if err != nil {
		recordEnrichError(stageBuildProbe)
		p.log.Debug("java -version probe failed to run", "path", info.Path, "error", err)
		return
	}
	if build, ok := parseRuntimeBuild(string(res.Stderr)); ok {
		info.Build = build
	}
}

// Detect validates dir and, on success, enriches the result. It is the
// entry point intended for external callers: validation errors propagate,
// enrichment problems never do.
func (p *Prober) Detect(ctx context.Context, dir string) (*Info, error) {
	start := time.Now()
	info, err := p.Validate(dir)
	if err != nil {
		return nil, err
	}
	info = p.Enrich(ctx, info)
	observeProbeDuration(time.Since(start))
	return info, nil
}

func validationOutcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return outcomeInvalidArgument
	case errors.Is(err, ErrNotFound):
		return outcomeNotFound
	default:
		return outcomeNotAJDK
	}
}

var (
	defaultOnce   sync.Once
	defaultProber *Prober
)

// Default returns the shared Prober for the current platform.
func Default() *Prober {
	defaultOnce.Do(func() { defaultProber = NewProber() })
	return defaultProber
}

// Validate runs Prober.Validate on the default Prober.
func Validate(dir string) (*Info, error) {
	return Default().Validate(dir)
}

// Enrich runs Prober.Enrich on the default Prober.
func Enrich(ctx context.Context, info *Info) *Info {
	return Default().Enrich(ctx, info)
}

// Detect runs Prober.Detect on the default Prober.
func Detect(ctx context.Context, dir string) (*Info, error) {
	return Default().Detect(ctx, dir)
}
