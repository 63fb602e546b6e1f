package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/s0up4200/koios/koios"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build information injected by main
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "koios %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:   %s\n", buildTime)
		fmt.Fprintf(cmd.OutOrStdout(), "  library: %s\n", koios.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
