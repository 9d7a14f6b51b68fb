package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call returns a fresh tree so tests
// can run commands in isolation.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Resolve the flow editor settings from defaults, environment and override files",
		Long: `settings builds the configuration handed to the flow runtime host.

Sources, later ones winning:
  1. built-in defaults and environment variables
  2. admin users of the project configuration (CONFIG_PATH, section NODE_ENV)
  3. the final override file (NODE_RED_CONFIG_PATH)

Missing or broken override files never fail resolution.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newResolveCmd(), newHashPasswordCmd(), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout())
		},
	}
}

func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", orNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}

	return v
}
