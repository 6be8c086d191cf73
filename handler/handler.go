package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pyama86/safelink/domain/repository"
	"github.com/pyama86/safelink/presentation/tui"
)

// Route selects which view the program opens. The bare command and the
// citizen subcommand both map to RouteCitizen.
type Route int

const (
	RouteCitizen Route = iota
	RouteResponder
)

func Handle(ctx context.Context, configPath string, route Route) error {
	cfg, err := repository.NewConfigRepository(configPath)
	if err != nil {
		return err
	}

	api := repository.NewAPIRepository(cfg)

	setupLogger()
	slog.Info("Client started", slog.String("api_url", cfg.APIURL))

	model := NewModel(route, api, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// NewModel builds the view model for a route. Unknown routes fall back
// to the citizen view, the default.
func NewModel(route Route, api repository.IncidentAPI, cfg *repository.Config) tea.Model {
	switch route {
	case RouteResponder:
		return tui.NewResponderModel(api, cfg.PollInterval, tui.DefaultTheme)
	default:
		return tui.NewCitizenModel(api, tui.DefaultTheme)
	}
}

// HealthCheck probes the backend once and reports its status line.
func HealthCheck(ctx context.Context, configPath string) error {
	cfg, err := repository.NewConfigRepository(configPath)
	if err != nil {
		return err
	}

	api := repository.NewAPIRepository(cfg)
	status, err := api.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check %s: %w", cfg.APIURL, err)
	}
	fmt.Println(status)
	return nil
}

// setupLogger redirects slog away from stderr while the TUI owns the
// terminal; stderr writes would corrupt the alt screen.
func setupLogger() {
	if path := os.Getenv("SAFELINK_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			slog.SetDefault(slog.New(slog.NewJSONHandler(f, nil)))
			return
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
