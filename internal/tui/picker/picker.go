// Package picker provides an interactive whatdo picker for 'wd start'.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/git-whatdo/internal/domain"
)

var queuedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

// item adapts a selection candidate to the bubbles list model.
type item struct {
	candidate domain.Candidate
}

// Title renders the id with queue/priority markers.
func (i item) Title() string {
	var b strings.Builder
	b.WriteString(i.candidate.Task.ID)
	if i.candidate.Queued() {
		b.WriteString(" ")
		b.WriteString(queuedStyle.Render("[queued]"))
	}
	if i.candidate.Priority != nil {
		fmt.Fprintf(&b, " (p%d)", *i.candidate.Priority)
	}
	return b.String()
}

// Description renders the summary and resolved tags.
func (i item) Description() string {
	if len(i.candidate.Tags) == 0 {
		return i.candidate.Task.Summary
	}
	return i.candidate.Task.Summary + "  #" + strings.Join(i.candidate.Tags, " #")
}

// FilterValue makes fuzzy filtering match ids and summaries.
func (i item) FilterValue() string {
	return i.candidate.Task.ID + " " + i.candidate.Task.Summary
}

// model is the bubbletea model for the picker.
type model struct {
	list   list.Model
	choice string
}

func newModel(candidates []domain.Candidate) model {
	items := make([]list.Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, item{candidate: c})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pick a whatdo to start"
	l.SetShowStatusBar(false)
	return model{list: l}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.candidate.Task.ID
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	return m.list.View()
}

// Run shows the picker and returns the chosen id, or empty if aborted.
func Run(candidates []domain.Candidate) (string, error) {
	p := tea.NewProgram(newModel(candidates), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	return final.(model).choice, nil
}
