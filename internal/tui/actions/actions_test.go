package actions

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResolve_DefaultBindings(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{name: "q", msg: runeKey('q'), want: Quit},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: Quit},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: FocusNext},
		{name: "shift+tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: FocusPrev},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: MoveUp},
		{name: "k", msg: runeKey('k'), want: MoveUp},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: MoveDown},
		{name: "j", msg: runeKey('j'), want: MoveDown},
		{name: "r", msg: runeKey('r'), want: Refresh},
		{name: "x", msg: runeKey('x'), want: None},
		{name: "Q", msg: runeKey('Q'), want: None},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: None},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: None},
	}
	for _, tc := range cases {
		if got := km.Resolve(tc.msg); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestAction_ListScoped(t *testing.T) {
	scoped := map[Action]bool{
		None:      false,
		Quit:      false,
		FocusNext: false,
		FocusPrev: false,
		MoveUp:    true,
		MoveDown:  true,
		Refresh:   true,
	}
	for a, want := range scoped {
		if a.ListScoped() != want {
			t.Fatalf("%v: expected ListScoped=%v", a, want)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()

	list := km.ListHelp()
	if len(list) != 2 || list[0].Help().Key != "j/k" || list[0].Help().Desc != "nav" || list[1].Help().Key != "r" {
		t.Fatalf("unexpected list help: %+v", list)
	}

	global := km.GlobalHelp()
	want := []string{"tab focus", "shift+tab back", "q quit"}
	if len(global) != len(want) {
		t.Fatalf("unexpected global help length: %d", len(global))
	}
	for i, b := range global {
		if got := b.Help().Key + " " + b.Help().Desc; got != want[i] {
			t.Fatalf("global help %d = %q, want %q", i, got, want[i])
		}
	}
}
