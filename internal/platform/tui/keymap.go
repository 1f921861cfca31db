package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Up2        key.Binding // Right paddle, versus mode only
	Down2      key.Binding // Right paddle, versus mode only
	Difficulty key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the bindings for a mode. Against the AI both W/S
// and the arrow keys move the left paddle; in versus mode the arrows belong
// to the right player.
func DefaultKeyMap(mode config.Mode) KeyMap {
	k := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "paddle up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "paddle down"),
		),
		Up2: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "right up"),
			key.WithDisabled(),
		),
		Down2: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "right down"),
			key.WithDisabled(),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "difficulty"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "title"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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

	if mode == config.ModeVersus {
		k.Up.SetKeys("w")
		k.Up.SetHelp("w", "left up")
		k.Down.SetKeys("s")
		k.Down.SetHelp("s", "left down")
		k.Up2.SetEnabled(true)
		k.Down2.SetEnabled(true)
	}
	return k
}

// ShortHelp returns key bindings for the in-game footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Up2, k.Down2, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Up2, k.Down2},
		{k.Difficulty, k.Confirm, k.Restart, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Up2):
		return core.ActionUp2
	case key.Matches(msg, k.Down2):
		return core.ActionDown2
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	}
	return core.ActionNone
}

// titleKeys is the help view shown on the title screen.
type titleKeys KeyMap

func (k titleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Difficulty, k.Up, k.Down, k.Confirm, k.Quit}
}

func (k titleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
