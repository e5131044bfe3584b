package view

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"

	"github.com/glabrego/chatwoot-tui/internal/tui/state"
	tuitheme "github.com/glabrego/chatwoot-tui/internal/tui/theme"
)

const appTitle = " Chatwoot "

type HeaderParams struct {
	BaseURL   string
	AccountID int64
	Focus     state.Column
	Width     int
}

// RenderHeader renders the top line, padded to exactly p.Width cells.
func RenderHeader(p HeaderParams, th tuitheme.Theme) string {
	if p.Width <= 0 {
		return ""
	}
	titleWidth := runewidth.StringWidth(appTitle)
	if titleWidth >= p.Width {
		return FitLine(th.Title.Render(Truncate(appTitle, p.Width)), p.Width)
	}

	parts := make([]string, 0, 3)
	if host := hostOf(p.BaseURL); host != "" {
		parts = append(parts, host)
	}
	if p.AccountID > 0 {
		parts = append(parts, fmt.Sprintf("account %d", p.AccountID))
	}
	parts = append(parts, "focus: "+p.Focus.String())
	info := Truncate(" "+strings.Join(parts, " • "), p.Width-titleWidth)

	return FitLine(th.Title.Render(appTitle)+th.Header.Render(info), p.Width)
}

// RenderHelpLine renders bindings with bubbles/help, truncated by help itself
// and then padded to exactly width cells.
func RenderHelpLine(bindings []key.Binding, width int, th tuitheme.Theme) string {
	if width <= 0 {
		return ""
	}
	h := help.New()
	h.Styles = th.HelpStyles()
	h.Width = width
	return FitLine(h.ShortHelpView(bindings), width)
}

// PlaceholderColumn is the body of a pane that has no content yet, at most
// height lines tall.
func PlaceholderColumn(title string, width, height int, th tuitheme.Theme) []string {
	lines := []string{
		th.Title.Render(" " + title + " "),
		th.Placeholder.Render("(coming soon)"),
	}
	if len(lines) > height {
		lines = lines[:max(height, 0)]
	}
	return ClipLines(lines, width)
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	}
	return u.Host
}
