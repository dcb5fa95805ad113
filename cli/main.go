package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the canvasflow command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "canvasflow",
		Short: "Agent workflow canvas engine",
		Long: "canvasflow maintains the node/edge graph behind an agent workflow canvas:\n" +
			"agent lifecycles, trigger schedules, and the editing API the canvas UI talks to.",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	root.AddCommand(serveCmd())
	root.AddCommand(validateCmd())
	return root
}
