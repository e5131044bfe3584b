package view

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/glabrego/chatwoot-tui/internal/tui/actions"
	"github.com/glabrego/chatwoot-tui/internal/tui/state"
	tuitheme "github.com/glabrego/chatwoot-tui/internal/tui/theme"
)

var ansiStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiStrip.ReplaceAllString(s, "")
}

func TestRenderHeader(t *testing.T) {
	th := tuitheme.Default()
	got := RenderHeader(HeaderParams{BaseURL: "https://chat.example.com/", AccountID: 7, Focus: state.ColumnMessages, Width: 80}, th)
	plain := stripANSI(got)
	if !strings.HasPrefix(plain, " Chatwoot  chat.example.com • account 7 • focus: Messages") {
		t.Fatalf("unexpected header: %q", plain)
	}
	if lipgloss.Width(got) != 80 {
		t.Fatalf("expected header padded to 80, got %d", lipgloss.Width(got))
	}

	narrow := RenderHeader(HeaderParams{BaseURL: "https://chat.example.com", AccountID: 7, Width: 20}, th)
	if lipgloss.Width(narrow) != 20 {
		t.Fatalf("expected narrow header of 20 cells, got %d: %q", lipgloss.Width(narrow), stripANSI(narrow))
	}

	tiny := RenderHeader(HeaderParams{Width: 4}, th)
	if lipgloss.Width(tiny) != 4 {
		t.Fatalf("expected tiny header of 4 cells, got %d", lipgloss.Width(tiny))
	}
}

func TestRenderHelpLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := tuitheme.Default()
	km := actions.DefaultKeyMap()

	global := RenderHelpLine(km.GlobalHelp(), 80, th)
	if plain := strings.TrimRight(stripANSI(global), " "); plain != "tab focus • shift+tab back • q quit" {
		t.Fatalf("unexpected global help: %q", plain)
	}
	if lipgloss.Width(global) != 80 {
		t.Fatalf("expected help padded to 80, got %d", lipgloss.Width(global))
	}

	list := RenderHelpLine(km.ListHelp(), 40, th)
	if plain := strings.TrimRight(stripANSI(list), " "); plain != "j/k nav • r refresh" {
		t.Fatalf("unexpected list help: %q", plain)
	}

	if got := lipgloss.Width(RenderHelpLine(km.GlobalHelp(), 12, th)); got != 12 {
		t.Fatalf("expected truncated help of 12 cells, got %d", got)
	}
}

func TestPlaceholderColumn(t *testing.T) {
	th := tuitheme.Default()
	lines := PlaceholderColumn("Messages", 30, 10, th)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if stripANSI(lines[0]) != " Messages " || stripANSI(lines[1]) != "(coming soon)" {
		t.Fatalf("unexpected placeholder: %q", lines)
	}
	for _, line := range PlaceholderColumn("Details", 5, 10, th) {
		if lipgloss.Width(line) > 5 {
			t.Fatalf("placeholder line wider than 5: %q", stripANSI(line))
		}
	}
	for height, want := range map[int]int{-1: 0, 0: 0, 1: 1, 2: 2} {
		if got := len(PlaceholderColumn("Details", 30, height, th)); got != want {
			t.Fatalf("height %d: expected %d lines, got %d", height, want, got)
		}
	}
}

func TestTruncateAndFit(t *testing.T) {
	if got := Truncate("hello world", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := Truncate("hi", 6); got != "hi" {
		t.Fatalf("unexpected truncation of short text: %q", got)
	}
	if got := Truncate("日本語テキスト", 5); runeWidth(got) > 5 {
		t.Fatalf("wide runes exceed width: %q", got)
	}
	if got := FitLine("abc", 5); got != "abc  " {
		t.Fatalf("unexpected padding: %q", got)
	}

	lipgloss.SetColorProfile(termenv.ANSI)
	styled := tuitheme.Default().Error.Render("something failed badly")
	fitted := FitLine(styled, 9)
	if lipgloss.Width(fitted) != 9 || stripANSI(fitted) != "something" {
		t.Fatalf("unexpected fitted line: %q", fitted)
	}
}

func runeWidth(s string) int {
	return lipgloss.Width(s)
}
