package cmd

import (
	"log/slog"
	"os"

	"github.com/pyama86/safelink/handler"
	"github.com/spf13/cobra"
)

var responderCmd = &cobra.Command{
	Use:   "responder",
	Short: "Open the incident dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(handler.RouteResponder); err != nil {
			slog.Error("Failed to run command", slog.Any("error", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(responderCmd)
}
