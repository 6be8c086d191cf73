package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pyama86/safelink/handler"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the SafeLink backend is reachable",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := handler.HealthCheck(ctx, configPath); err != nil {
			slog.Error("Backend health check failed", slog.Any("error", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
