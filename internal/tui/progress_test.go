package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressUpdatesView(t *testing.T) {
	t.Parallel()
	m := New("Ad Kh Qc Js", 100)

	updated, _ := m.Update(ProgressMsg{Done: 25, Avg: 0.4})
	view := updated.View()

	assert.Contains(t, view, "Ad Kh Qc Js")
	assert.Contains(t, view, "25 / 100")
	assert.Contains(t, view, "40.00%")
}

func TestDoneMsgQuits(t *testing.T) {
	t.Parallel()
	m := New("Ad Kh Qc Js", 100)

	updated, cmd := m.Update(DoneMsg{Avg: 0.55})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	model := updated.(Model)
	assert.NoError(t, model.Err())
	assert.Equal(t, 0.55, model.Average())
	assert.Contains(t, model.View(), "100 / 100")
}

func TestDoneMsgCarriesError(t *testing.T) {
	t.Parallel()
	m := New("Ad Kh Qc Js", 100)

	updated, cmd := m.Update(DoneMsg{Err: errors.New("deck exhausted")})
	require.NotNil(t, cmd)

	model := updated.(Model)
	assert.Error(t, model.Err())
	assert.True(t, strings.Contains(model.View(), "deck exhausted"))
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()
	m := New("Ad Kh Qc Js", 100)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
