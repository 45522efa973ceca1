// Package tui provides the Bubble Tea front end for the stadium: the race
// view, its keyboard controls and the SSH server that hands every session
// its own race.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Every clock message carries the race generation it was scheduled for.
// The model bumps the generation on start and reset, so messages from an
// earlier race are dropped instead of driving the new one.

// SimTickMsg advances the race engine by one fixed step.
type SimTickMsg struct {
	Gen int
	At  time.Time
}

// FrameMsg redraws the scene and moves the camera.
type FrameMsg struct {
	Gen int
	At  time.Time
}

// CommentaryTickMsg asks for a fresh commentary line.
type CommentaryTickMsg struct {
	Gen int
}

// CommentaryMsg delivers a commentary line fetched in the background.
type CommentaryMsg struct {
	Gen  int
	Text string
}

// simTickCmd schedules the next simulation step.
func simTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SimTickMsg{Gen: gen, At: t}
	})
}

// frameCmd schedules the next frame at the given rate.
func frameCmd(gen, frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}

// commentaryTickCmd schedules the next commentary request.
func commentaryTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return CommentaryTickMsg{Gen: gen}
	})
}
