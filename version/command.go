// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/jdk-core/cliout"
)

// NewCommand creates a version command that displays build information.
// outputFormat is an optional pointer to a global output format flag
// (e.g. "json"); nil defaults to human-readable output.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := ""
			if outputFormat != nil {
				format = *outputFormat
			}

			if format == string(cliout.FormatJSON) {
				return cliout.PrintJSON(info)
			}

			if quiet {
				fmt.Println(info.Version)
				return nil
			}

			cliout.Header("%s", info.Name)
			cliout.Detail("Version", info.Version)
			cliout.Detail("Build Date", info.BuildDate)
			cliout.Detail("Git Commit", info.GitCommit)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
