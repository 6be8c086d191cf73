package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pyama86/safelink/domain/entity"
	"github.com/pyama86/safelink/domain/repository"
)

var errEmptyReport = fmt.Errorf("describe the incident before submitting")

// submitResultMsg is delivered when an asynchronous submission finishes.
type submitResultMsg struct {
	incident *entity.Incident
	err      error
}

type citizenKeyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

var citizenKeys = citizenKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// CitizenModel is the incident report form. It holds the draft message,
// submits it to the backend and renders the classification reply.
type CitizenModel struct {
	api   repository.IncidentSubmitter
	theme Theme

	input textinput.Model
	spin  spinner.Model

	submitting bool
	incident   *entity.Incident
	err        error
	quitting   bool
}

func NewCitizenModel(api repository.IncidentSubmitter, theme Theme) CitizenModel {
	input := textinput.New()
	input.Placeholder = "What happened?"
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return CitizenModel{
		api:   api,
		theme: theme,
		input: input,
		spin:  spin,
	}
}

func (m CitizenModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CitizenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, citizenKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, citizenKeys.Submit):
			if m.submitting {
				return m, nil
			}
			message := strings.TrimSpace(m.input.Value())
			if message == "" {
				m.err = errEmptyReport
				return m, nil
			}
			m.submitting = true
			m.err = nil
			return m, tea.Batch(m.spin.Tick, m.submitCmd(message))
		}

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			// 失敗時は下書きを消さない
			m.err = msg.err
			return m, nil
		}
		m.incident = msg.incident
		m.err = nil
		m.input.Reset()
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitCmd runs the network call off the update loop and reports back
// through the message queue.
func (m CitizenModel) submitCmd(message string) tea.Cmd {
	return func() tea.Msg {
		incident, err := m.api.SubmitIncident(context.Background(), message)
		return submitResultMsg{incident: incident, err: err}
	}
}

func (m CitizenModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("SafeLink — report an incident"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(m.spin.View() + " classifying report...")
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(m.theme.ErrorText.Render(describeError(m.err)))
		b.WriteString("\n")
	case m.incident != nil:
		b.WriteString(m.theme.Card.Render(renderIncident(m.theme, *m.incident)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter: submit • esc: quit"))
	return b.String()
}

func renderIncident(theme Theme, incident entity.Incident) string {
	lines := []string{
		theme.Label.Render("Severity: ") + theme.SeverityStyle(incident.Severity).Render(string(incident.Severity)),
		theme.Label.Render("Summary:  ") + incident.ResponderSummary,
		theme.Label.Render("Guidance: ") + incident.CitizenGuidance,
	}
	return strings.Join(lines, "\n")
}
