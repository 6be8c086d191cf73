package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pyama86/safelink/domain/entity"
)

// Theme is the color scheme shared by both views. ANSI 256-color codes
// keep it usable on common dark terminals.
type Theme struct {
	Title       lipgloss.Style
	Help        lipgloss.Style
	Label       lipgloss.Style
	ErrorText   lipgloss.Style
	Placeholder lipgloss.Style
	Card        lipgloss.Style

	SeverityHigh    lipgloss.Style
	SeverityMedium  lipgloss.Style
	SeverityLow     lipgloss.Style
	SeverityUnknown lipgloss.Style
}

// SeverityStyle returns the style for a severity value. Anything the
// backend returns outside the three known words renders dimmed.
func (t Theme) SeverityStyle(s entity.Severity) lipgloss.Style {
	switch entity.ParseSeverity(string(s)) {
	case entity.SeverityHigh:
		return t.SeverityHigh
	case entity.SeverityMedium:
		return t.SeverityMedium
	case entity.SeverityLow:
		return t.SeverityLow
	}
	return t.SeverityUnknown
}

var DefaultTheme = Theme{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ErrorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	SeverityHigh:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	SeverityMedium:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	SeverityLow:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
	SeverityUnknown: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}
