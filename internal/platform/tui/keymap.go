package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Confirm  key.Binding
	ForceWin key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:     newBinding(cfg.Left, "move left"),
		Right:    newBinding(cfg.Right, "move right"),
		Confirm:  newBinding(cfg.Confirm, "start/restart"),
		ForceWin: newBinding(cfg.ForceWin, "force win (debug)"),
		Help:     newBinding(cfg.Help, "toggle help"),
		Quit:     newBinding(cfg.Quit, "quit"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp implements help.KeyMap. The debug key is only in the full view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.ForceWin},
		{k.Help, k.Quit},
	}
}

// All returns every binding in display order.
func (k KeyMap) All() []key.Binding {
	var all []key.Binding
	for _, col := range k.FullHelp() {
		all = append(all, col...)
	}
	return all
}

// Action maps a key message to its action, or ActionNone.
// Quit is checked first so it can never be shadowed.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.ForceWin):
		return core.ActionForceWin
	}
	return core.ActionNone
}
