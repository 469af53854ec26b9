// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jongio/jdk-core/cliout"
	"github.com/jongio/jdk-core/executil"
	"github.com/jongio/jdk-core/jdk"
)

func newDetectCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "detect <directory>",
		Short: "Check whether a directory is a JDK and report its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prober := jdk.NewProber(jdk.WithRunner(executil.NewCommandRunner(timeout)))

			info, err := prober.Detect(cmd.Context(), args[0])
			if err != nil {
				if cliout.GetFormat() != cliout.FormatJSON {
					cliout.Failure("%v", err)
				}
				return err
			}
			return printInfo(info)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", executil.DefaultTimeout,
		"Per-subprocess timeout for version probes")
	return cmd
}
