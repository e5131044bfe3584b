package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/chatwoot-tui/internal/tui/actions"
	"github.com/glabrego/chatwoot-tui/internal/tui/conversations"
	"github.com/glabrego/chatwoot-tui/internal/tui/layout"
	"github.com/glabrego/chatwoot-tui/internal/tui/state"
	tuitheme "github.com/glabrego/chatwoot-tui/internal/tui/theme"
	"github.com/glabrego/chatwoot-tui/internal/tui/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Options struct {
	BaseURL   string
	AccountID int64
	Logger    *slog.Logger
}

// Model is the dashboard: three columns, a focus ring over them and the
// conversation list in the first one.
type Model struct {
	list   *conversations.List
	theme  tuitheme.Theme
	keys   actions.KeyMap
	logger *slog.Logger

	baseURL   string
	accountID int64

	width  int
	height int
	focus  state.Column
}

func NewModel(fetcher conversations.Fetcher, opts Options) Model {
	th := tuitheme.Default()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := actions.DefaultKeyMap()
	return Model{
		list:      conversations.New(fetcher, th, keys),
		theme:     th,
		keys:      keys,
		logger:    logger,
		baseURL:   opts.BaseURL,
		accountID: opts.AccountID,
		width:     defaultWidth,
		height:    defaultHeight,
		focus:     state.ColumnConversations,
	}
}

// Init performs the first fetch before the first frame is drawn.
func (m Model) Init() tea.Cmd {
	m.fetch("init")
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg)
	if action.ListScoped() && m.focus != state.ColumnConversations {
		return m, nil
	}

	switch action {
	case actions.None:
	case actions.Quit:
		return m, tea.Quit
	case actions.FocusNext:
		m.focus = m.focus.Next()
	case actions.FocusPrev:
		m.focus = m.focus.Prev()
	case actions.MoveUp:
		m.list.MoveUp()
	case actions.MoveDown:
		m.list.MoveDown()
	case actions.Refresh:
		m.fetch("key")
	default:
		panic(fmt.Sprintf("tui: unhandled action %v", action))
	}
	return m, nil
}

func (m Model) fetch(source string) {
	m.list.Fetch(context.Background())
	status := m.list.Status()
	if status.Kind() == state.StatusError {
		m.logger.Warn("conversation fetch failed", "source", source, "error", status.Message())
		return
	}
	m.logger.Debug("conversations fetched", "source", source, "count", m.list.Len())
}

func (m Model) View() string {
	widths := layout.ColumnWidths(m.width)
	inner := layout.InteriorHeight(m.height)

	columns := make([]string, 0, len(widths))
	for i, col := range state.Columns() {
		box := m.theme.Column(col == m.focus).Width(widths[i]).Height(inner)
		columns = append(columns, box.Render(m.columnBody(col, widths[i], inner)))
	}

	header := view.RenderHeader(view.HeaderParams{
		BaseURL:   m.baseURL,
		AccountID: m.accountID,
		Focus:     m.focus,
		Width:     m.width,
	}, m.theme)
	footer := view.RenderHelpLine(m.keys.GlobalHelp(), m.width, m.theme)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		footer,
	)
}

func (m Model) columnBody(col state.Column, width, height int) string {
	switch col {
	case state.ColumnConversations:
		return m.list.View(width, height)
	case state.ColumnMessages, state.ColumnDetails:
		return strings.Join(view.PlaceholderColumn(col.String(), width, height, m.theme), "\n")
	default:
		panic(fmt.Sprintf("tui: unhandled column %d", int(col)))
	}
}
