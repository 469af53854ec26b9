// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// jdk-probe detects JDK installations and reports their version, build,
// and architecture.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jongio/jdk-core/cli"
	"github.com/jongio/jdk-core/logutil"
	"github.com/jongio/jdk-core/version"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := version.New("jdk-probe")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	root := cli.NewRootCommand(info)
	if err := root.ExecuteContext(ctx); err != nil {
		logutil.Error("command failed", "error", err)
		os.Exit(1)
	}
}
