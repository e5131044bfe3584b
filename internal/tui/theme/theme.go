package theme

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme is built once at startup and passed by value to the render path.
type Theme struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Placeholder lipgloss.Style

	Border        lipgloss.Style
	FocusedBorder lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
}

func Default() Theme {
	white := lipgloss.Color("#FAFAFA")
	purple := lipgloss.Color("#7D56F4")
	pink := lipgloss.Color("#FF69B4")
	gray := lipgloss.Color("#626262")
	gold := lipgloss.Color("#FFD700")
	red := lipgloss.Color("#FF4444")

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(white).Background(purple),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(purple),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(pink),
		Normal:      lipgloss.NewStyle(),
		Muted:       lipgloss.NewStyle().Foreground(gray),
		Warning:     lipgloss.NewStyle().Foreground(gold),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(red),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(gray),

		Border:        box.BorderForeground(purple),
		FocusedBorder: box.BorderForeground(pink),

		HelpKey:  lipgloss.NewStyle().Foreground(purple),
		HelpDesc: lipgloss.NewStyle().Foreground(gray),
		HelpSep:  lipgloss.NewStyle().Foreground(gray),
	}
}

// Column returns the box style for a pane. The result is a copy, so callers
// may size it without touching the theme.
func (t Theme) Column(focused bool) lipgloss.Style {
	if focused {
		return t.FocusedBorder
	}
	return t.Border
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.Selected.Render(line)
}

// HelpStyles maps the theme onto bubbles/help.
func (t Theme) HelpStyles() help.Styles {
	return help.Styles{
		Ellipsis:       t.HelpSep,
		ShortKey:       t.HelpKey,
		ShortDesc:      t.HelpDesc,
		ShortSeparator: t.HelpSep,
		FullKey:        t.HelpKey,
		FullDesc:       t.HelpDesc,
		FullSeparator:  t.HelpSep,
	}
}
