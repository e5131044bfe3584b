package actions

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the dashboard to do.
type Action int

const (
	None Action = iota
	Quit
	FocusNext
	FocusPrev
	MoveUp
	MoveDown
	Refresh
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Quit:
		return "quit"
	case FocusNext:
		return "focus-next"
	case FocusPrev:
		return "focus-prev"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Refresh:
		return "refresh"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ListScoped reports whether the action only applies while the conversation
// list has focus.
func (a Action) ListScoped() bool {
	return a == MoveUp || a == MoveDown || a == Refresh
}

type KeyMap struct {
	Quit      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Up        key.Binding
	Down      key.Binding
	Refresh   key.Binding

	// nav is the combined j/k entry shown in the list help line.
	nav key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		nav:       key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "nav")),
	}
}

// Resolve maps a key press to an action. Unbound keys resolve to None.
func (k KeyMap) Resolve(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return Quit
	case key.Matches(msg, k.FocusNext):
		return FocusNext
	case key.Matches(msg, k.FocusPrev):
		return FocusPrev
	case key.Matches(msg, k.Up):
		return MoveUp
	case key.Matches(msg, k.Down):
		return MoveDown
	case key.Matches(msg, k.Refresh):
		return Refresh
	default:
		return None
	}
}

// ListHelp is the help line under the conversation list.
func (k KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.nav, k.Refresh}
}

// GlobalHelp is the footer help line.
func (k KeyMap) GlobalHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.FocusPrev, k.Quit}
}
