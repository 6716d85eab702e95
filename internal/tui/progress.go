// Package tui renders live progress for long trial runs with Bubble Tea.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressMsg updates the completed trial count and the running average.
type ProgressMsg struct {
	Done int
	Avg  float64
}

// DoneMsg ends the run, carrying the final average or the failure.
type DoneMsg struct {
	Avg float64
	Err error
}

// Model is the Bubble Tea model for a trial run in flight.
type Model struct {
	holding string
	total   int

	done     int
	avg      float64
	finished bool
	err      error

	bar    progress.Model
	header lipgloss.Style
	muted  lipgloss.Style
}

// New creates a progress model for a run of total trials.
func New(holding string, total int) Model {
	return Model{
		holding: holding,
		total:   total,
		bar:     progress.New(progress.WithDefaultGradient()),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	case ProgressMsg:
		m.done = msg.Done
		m.avg = msg.Avg
		return m, nil
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		if msg.Err == nil {
			m.avg = msg.Avg
			m.done = m.total
		}
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("trial run failed: %v\n", m.err)
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}

	s := m.header.Render("simulating "+m.holding) + "\n\n"
	s += m.bar.ViewAs(pct) + "\n\n"
	s += fmt.Sprintf("%d / %d boards  avg equity %.2f%%\n", m.done, m.total, m.avg*100)
	if m.finished {
		s += "\n"
	} else {
		s += m.muted.Render("press q to abort") + "\n"
	}
	return s
}

// Err returns the failure carried by the final DoneMsg, if any.
func (m Model) Err() error {
	return m.err
}

// Average returns the last reported average equity.
func (m Model) Average() float64 {
	return m.avg
}
