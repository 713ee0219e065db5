// Package errview is an interactive browser for a run's error table.
// Error tables from large shelf audits run to a few hundred rows; the
// browser keeps them scrollable instead of scrolling the terminal away.
package errview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shelfscore/internal/score"
)

// Model renders the error table with Bubble Tea.
type Model struct {
	runID   string
	table   table.Model
	total   int
	noColor bool
}

// Options configures the error browser.
type Options struct {
	RunID   string
	NoColor bool
}

// NewModel constructs an error browser over a run's error rows.
func NewModel(errors []score.ErrorRow, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rowsForErrors(errors)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		runID:   opts.RunID,
		table:   t,
		total:   len(errors),
		noColor: opts.NoColor,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(maxInt(typed.Height-4, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), footer)
}

func (m Model) renderHeader() string {
	text := fmt.Sprintf("Run %s — %d field errors", m.runID, m.total)
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

func (m Model) renderFooter() string {
	text := "↑/↓ scroll   q quit"
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Render(text)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
