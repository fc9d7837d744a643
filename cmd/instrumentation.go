package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/beekit/pkg/instrumentation"
	"github.com/spf13/cobra"
)

var instrumentationCmd = &cobra.Command{
	Use:   "instrumentation",
	Short: "Show the instrumentation flags read from the environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := instrumentation.Current()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "enabled: %t\n", cfg.Enabled)
		fmt.Fprintf(out, "ignored_keys: [%s]\n", strings.Join(cfg.IgnoredKeys, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(instrumentationCmd)
}
