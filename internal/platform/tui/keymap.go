package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stadium/internal/core"
)

// KeyMap defines the race controls.
type KeyMap struct {
	Start      key.Binding
	Reset      key.Binding
	More       key.Binding
	Fewer      key.Binding
	Edit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.More, k.Fewer, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset},
		{k.More, k.Fewer, k.Edit},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "enter", " "),
			key.WithHelp("s/enter", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "=", "right"),
			key.WithHelp("+", "more runners"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("-", "_", "left"),
			key.WithHelp("-", "fewer runners"),
		),
		Edit: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "set count"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a race action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.More):
		return core.ActionMore
	case key.Matches(msg, k.Fewer):
		return core.ActionFewer
	case key.Matches(msg, k.Edit):
		return core.ActionEdit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
