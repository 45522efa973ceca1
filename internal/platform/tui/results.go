package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stadium/internal/core"
	"github.com/vovakirdan/tui-stadium/internal/race"
)

// Results panel layout
const (
	resultsWidth   = 42 // Panel width including border
	minSceneWidth  = 40 // Below this the panel replaces the scene
	maxResultsRows = 20
)

// newResultsTable creates the standings table for a finished race.
func newResultsTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Runner", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Color", Width: 8},
	}

	rows := core.Clamp(height-6, 3, maxResultsRows)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resultRows lists finishers by rank with their time since the start.
func resultRows(snap race.Snapshot) []table.Row {
	results := snap.Results()
	rows := make([]table.Row, len(results))
	for i, r := range results {
		elapsed := r.FinishTime.Sub(snap.StartedAt)
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Rank),
			r.Label(),
			fmt.Sprintf("%.2fs", elapsed.Seconds()),
			r.Color,
		}
	}
	return rows
}

// renderResults renders the results panel.
func renderResults(t table.Model) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("RESULTS"),
		t.View(),
	))
}
