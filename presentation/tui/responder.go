package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pyama86/safelink/domain/entity"
	"github.com/pyama86/safelink/domain/repository"
)

// pollTickMsg drives the periodic refresh while the dashboard is mounted.
type pollTickMsg struct{}

// incidentsMsg carries a completed fetch. seq identifies the poll that
// issued it so stale results can be discarded.
type incidentsMsg struct {
	seq       uint64
	incidents []entity.Incident
}

type pollErrMsg struct {
	seq uint64
	err error
}

type responderKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var responderKeys = responderKeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ResponderModel is the incident dashboard. It fetches the full list on
// mount and every interval thereafter, replacing local state wholesale
// and rendering newest first.
type ResponderModel struct {
	api      repository.IncidentLister
	theme    Theme
	interval time.Duration

	incidents []entity.Incident
	loaded    bool
	pollErr   error

	// Fetches can overlap when the backend is slow. issued numbers each
	// fetch; applied records the newest result on screen. A result older
	// than applied is dropped so a stale reply never regresses the view.
	issued  uint64
	applied uint64

	width    int
	quitting bool
}

func NewResponderModel(api repository.IncidentLister, interval time.Duration, theme Theme) ResponderModel {
	return ResponderModel{
		api:      api,
		theme:    theme,
		interval: interval,
		issued:   1,
	}
}

func (m ResponderModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(m.issued), m.tickCmd())
}

func (m ResponderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, responderKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, responderKeys.Refresh):
			m.issued++
			return m, m.fetchCmd(m.issued)
		}
		return m, nil

	case pollTickMsg:
		if m.quitting {
			return m, nil
		}
		m.issued++
		return m, tea.Batch(m.fetchCmd(m.issued), m.tickCmd())

	case incidentsMsg:
		if msg.seq <= m.applied {
			return m, nil
		}
		m.applied = msg.seq
		m.incidents = msg.incidents
		m.loaded = true
		m.pollErr = nil
		return m, nil

	case pollErrMsg:
		// 前回のリストは画面に残す。次のtickで再試行する
		if msg.seq > m.applied {
			m.pollErr = msg.err
			slog.Error("Failed to fetch incidents", slog.Any("error", msg.err))
		}
		return m, nil
	}

	return m, nil
}

func (m ResponderModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m ResponderModel) fetchCmd(seq uint64) tea.Cmd {
	return func() tea.Msg {
		incidents, err := m.api.Incidents(context.Background())
		if err != nil {
			return pollErrMsg{seq: seq, err: err}
		}
		return incidentsMsg{seq: seq, incidents: incidents}
	}
}

func (m ResponderModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("SafeLink — responder dashboard"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded && m.pollErr != nil:
		b.WriteString(m.theme.ErrorText.Render(describeError(m.pollErr)))
		b.WriteString("\n")
	case !m.loaded:
		b.WriteString(m.theme.Placeholder.Render("Loading incidents..."))
		b.WriteString("\n")
	case len(m.incidents) == 0:
		b.WriteString(m.theme.Placeholder.Render("No incidents reported."))
		b.WriteString("\n")
	default:
		// The backend returns oldest first; responders read newest first.
		for i := len(m.incidents) - 1; i >= 0; i-- {
			b.WriteString(m.theme.Card.Render(renderIncident(m.theme, m.incidents[i])))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	status := fmt.Sprintf("refreshing every %s", m.interval)
	if m.loaded && m.pollErr != nil {
		status = describeError(m.pollErr) + " — showing last known list"
		b.WriteString(m.theme.ErrorText.Render(status))
	} else {
		b.WriteString(m.theme.Help.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("r: refresh • q: quit"))
	return b.String()
}
