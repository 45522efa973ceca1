package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stadium/internal/race"
)

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyles = map[race.Status]lipgloss.Style{
		race.StatusIdle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Background(lipgloss.Color("236")),
		race.StatusRacing:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Background(lipgloss.Color("236")),
		race.StatusFinished: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Background(lipgloss.Color("236")),
	}
)

// renderHUD renders the status line above the scene.
func (m Model) renderHUD(snap race.Snapshot, width int) string {
	parts := []string{
		fmt.Sprintf("Runners %d", len(snap.Runners)),
		fmt.Sprintf("%5.1fs", snap.Elapsed.Seconds()),
		fmt.Sprintf("Finished %d/%d", snap.FinishedCount(), len(snap.Runners)),
	}
	if leader, ok := snap.Leader(); ok && snap.Status != race.StatusIdle {
		parts = append(parts, fmt.Sprintf("Leader %s %3.0f%%", leader.Label(), leader.Progress*100))
	}
	parts = append(parts, "cam "+m.frame.Mode.String())

	status := statusStyles[snap.Status].Render(" " + snap.Status.String() + " ")
	rest := hudStyle.Render(" " + strings.Join(parts, "  |  ") + " ")
	line := status + rest

	if pad := width - lipgloss.Width(line); pad > 0 {
		line += hudStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}

// renderBanner renders the commentary line, or the count editor while it is open.
func (m Model) renderBanner(width int) string {
	if m.editing {
		return m.input.View()
	}

	text := " " + m.line + " "
	if m.notice != "" {
		return bannerStyle.Render(text) + " " + noticeStyle.Render(m.notice)
	}
	return bannerStyle.Width(width).MaxHeight(1).Render(text)
}
