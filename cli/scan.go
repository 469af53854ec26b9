// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/jdk-core/cliout"
	"github.com/jongio/jdk-core/config"
	"github.com/jongio/jdk-core/executil"
	"github.com/jongio/jdk-core/hostutil"
	"github.com/jongio/jdk-core/jdk"
	"github.com/jongio/jdk-core/logutil"
	"github.com/jongio/jdk-core/scan"
)

func newScanCommand() *cobra.Command {
	var (
		configPath    string
		extraRoots    []string
		skipWellKnown bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find JDK installations in well-known locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				if cfg.Output != string(cliout.FormatDefault) {
					if err := cliout.SetFormat(cfg.Output); err != nil {
						return err
					}
				}
			}
			cfg.ExtraRoots = append(cfg.ExtraRoots, extraRoots...)
			if skipWellKnown {
				cfg.SkipWellKnown = true
			}

			log := logutil.NewLogger("cli")
			log.Debug("scanning host", "host", hostutil.Describe(cmd.Context()).String())

			var opts []jdk.Option
			if cfg.Timeout.Std() > 0 {
				opts = append(opts, jdk.WithRunner(executil.NewCommandRunner(cfg.Timeout.Std())))
			}

			found := scan.Scan(cmd.Context(), scan.Options{
				ExtraRoots:    cfg.ExtraRoots,
				SkipWellKnown: cfg.SkipWellKnown,
				Prober:        jdk.NewProber(opts...),
			})

			if cliout.GetFormat() == cliout.FormatJSON {
				return cliout.PrintJSON(found)
			}

			if len(found) == 0 {
				cliout.Failure("no JDK installations found")
				return nil
			}
			cliout.Header("Found %d JDK installation(s)", len(found))
			for _, info := range found {
				if err := printInfo(info); err != nil {
					return fmt.Errorf("failed to print %s: %w", info.Path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML scan configuration")
	cmd.Flags().StringArrayVar(&extraRoots, "root", nil, "Additional directory whose children are probed (repeatable)")
	cmd.Flags().BoolVar(&skipWellKnown, "skip-well-known", false, "Do not scan the platform's well-known roots")
	return cmd
}
