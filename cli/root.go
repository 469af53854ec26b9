// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/jdk-core/cliout"
	"github.com/jongio/jdk-core/hostutil"
	"github.com/jongio/jdk-core/jdk"
	"github.com/jongio/jdk-core/logutil"
	"github.com/jongio/jdk-core/platform"
	"github.com/jongio/jdk-core/scan"
	"github.com/jongio/jdk-core/version"
)

// NewRootCommand builds the jdk-probe command tree.
func NewRootCommand(info *version.Info) *cobra.Command {
	var (
		outputFormat string
		debug        bool
		jsonLogs     bool
	)

	root := &cobra.Command{
		Use:           "jdk-probe",
		Short:         "Detect and inspect JDK installations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, jsonLogs)
			return cliout.SetFormat(outputFormat)
		},
	}

	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(cliout.FormatDefault),
		"Output format (default or json)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Emit logs as JSON")

	root.AddCommand(newDetectCommand())
	root.AddCommand(newScanCommand())
	root.AddCommand(newEnvCommand())
	root.AddCommand(version.NewCommand(info, &outputFormat))

	return root
}

// newEnvCommand reports the host and the platform's probing parameters.
func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show host details and platform probing parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			host := hostutil.Describe(cmd.Context())
			spec, supported := platform.Current()

			if cliout.GetFormat() == cliout.FormatJSON {
				return cliout.PrintJSON(map[string]any{
					"host":      host,
					"supported": supported,
					"platform":  spec,
					"javaHome":  os.Getenv(scan.EnvJavaHome),
				})
			}

			cliout.Header("Host")
			cliout.Detail("machine", host.String())

			cliout.Header("Platform")
			if !supported {
				cliout.Failure("unsupported platform: no JDK layout known")
				return nil
			}
			cliout.Detail("executable suffix", orNone(spec.ExeSuffix))
			cliout.Detail("bundle home", orNone(spec.BundleHome))
			cliout.Detail("well-known roots", orNone(strings.Join(spec.WellKnownRoots, ", ")))
			cliout.Detail("JVM library candidates", strings.Join(spec.JVMLibraries, ", "))
			cliout.Detail(scan.EnvJavaHome, orNone(os.Getenv(scan.EnvJavaHome)))
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// printInfo renders one detected JDK in the active output format.
func printInfo(info *jdk.Info) error {
	if cliout.GetFormat() == cliout.FormatJSON {
		return cliout.PrintJSON(info)
	}

	cliout.Success("JDK at %s", info.Path)
	cliout.Detail("version", orUnknown(info.Version))
	if info.Build > 0 {
		cliout.Detail("build", strconv.Itoa(info.Build))
	} else {
		cliout.Detail("build", "unknown")
	}
	cliout.Detail("arch", orUnknown(string(info.Arch)))
	for _, tool := range jdk.RequiredTools {
		cliout.Detail(string(tool), info.Executable(tool))
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
