package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Truncate cuts plain text to at most width terminal cells, ending with an
// ellipsis when anything was dropped.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// FitLine makes a styled line exactly width cells wide: longer lines are cut
// without breaking escape sequences, shorter ones are padded with spaces.
func FitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	if gap := width - lipgloss.Width(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}

// ClipLines truncates every line of a block to width. It never pads.
func ClipLines(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if width <= 0 {
			continue
		}
		if lipgloss.Width(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		out[i] = line
	}
	return out
}
