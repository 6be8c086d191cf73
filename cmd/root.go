package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path"

	"github.com/joho/godotenv"
	"github.com/pyama86/safelink/handler"
	"github.com/spf13/cobra"
)

var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "safelink",
	Short: "safelink is a terminal client for the SafeLink incident backend",
	// 引数なしはcitizenビューを開く
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(handler.RouteCitizen); err != nil {
			slog.Error("Failed to run command", slog.Any("error", err))
			os.Exit(1)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// デフォルトはホームディレクトリのsafelink.toml
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Error("Failed to get user home directory", slog.Any("error", err))
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", path.Join(home, "safelink.toml"), "config file path")
}

func run(route handler.Route) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	return handler.Handle(ctx, configPath, route)
}
