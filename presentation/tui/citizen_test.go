package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pyama86/safelink/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSubmitter struct {
	incident *entity.Incident
	err      error
	calls    []string
}

func (m *mockSubmitter) SubmitIncident(_ context.Context, message string) (*entity.Incident, error) {
	m.calls = append(m.calls, message)
	if m.err != nil {
		return nil, m.err
	}
	return m.incident, nil
}

func TestCitizenSubmitSendsDraft(t *testing.T) {
	submitter := &mockSubmitter{incident: &entity.Incident{Severity: "Low"}}
	model := NewCitizenModel(submitter, DefaultTheme)

	msg := model.submitCmd("smoke in the kitchen")()
	require.Equal(t, []string{"smoke in the kitchen"}, submitter.calls)

	result, ok := msg.(submitResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	assert.Equal(t, entity.SeverityLow, result.incident.Severity)
}

func TestCitizenSuccessClearsDraft(t *testing.T) {
	model := NewCitizenModel(&mockSubmitter{}, DefaultTheme)
	model.input.SetValue("smoke in the kitchen")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(CitizenModel)
	require.NotNil(t, cmd)
	assert.True(t, model.submitting)

	incident := &entity.Incident{
		Severity:         "High",
		ResponderSummary: "Kitchen fire reported",
		CitizenGuidance:  "Leave the building",
	}
	updated, _ = model.Update(submitResultMsg{incident: incident})
	model = updated.(CitizenModel)

	assert.Empty(t, model.input.Value())
	assert.False(t, model.submitting)

	view := model.View()
	assert.Contains(t, view, "Kitchen fire reported")
	assert.Contains(t, view, "Leave the building")
}

func TestCitizenFailureKeepsDraft(t *testing.T) {
	model := NewCitizenModel(&mockSubmitter{}, DefaultTheme)
	model.input.SetValue("gas smell near the school")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(CitizenModel)

	updated, _ = model.Update(submitResultMsg{err: fmt.Errorf("connection refused")})
	model = updated.(CitizenModel)

	// The draft survives a failed submission so the user can retry.
	assert.Equal(t, "gas smell near the school", model.input.Value())
	assert.Contains(t, model.View(), "connection refused")
}

func TestCitizenEmptyDraftRejectedLocally(t *testing.T) {
	submitter := &mockSubmitter{}
	model := NewCitizenModel(submitter, DefaultTheme)
	model.input.SetValue("   ")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(CitizenModel)

	assert.Nil(t, cmd)
	assert.Empty(t, submitter.calls)
	assert.Contains(t, model.View(), "describe the incident")
}

func TestCitizenIgnoresEnterWhileSubmitting(t *testing.T) {
	submitter := &mockSubmitter{}
	model := NewCitizenModel(submitter, DefaultTheme)
	model.input.SetValue("first report")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(CitizenModel)
	require.True(t, model.submitting)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
