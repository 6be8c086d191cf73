package cmd

import (
	"log/slog"
	"os"

	"github.com/pyama86/safelink/handler"
	"github.com/spf13/cobra"
)

// citizenCmd opens the same view as the bare command. The explicit
// subcommand exists so both spellings navigate to the report form.
var citizenCmd = &cobra.Command{
	Use:   "citizen",
	Short: "Open the incident report form",
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(handler.RouteCitizen); err != nil {
			slog.Error("Failed to run command", slog.Any("error", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(citizenCmd)
}
