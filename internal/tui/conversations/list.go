// Package conversations is the scrollable list of open conversations shown in
// the first dashboard column.
package conversations

import (
	"context"
	"fmt"
	"strings"

	"github.com/glabrego/chatwoot-tui/internal/chatwoot"
	"github.com/glabrego/chatwoot-tui/internal/tui/actions"
	"github.com/glabrego/chatwoot-tui/internal/tui/layout"
	"github.com/glabrego/chatwoot-tui/internal/tui/state"
	tuitheme "github.com/glabrego/chatwoot-tui/internal/tui/theme"
	"github.com/glabrego/chatwoot-tui/internal/tui/view"
)

type Fetcher interface {
	ListOpenConversations(ctx context.Context) ([]chatwoot.Conversation, error)
}

// Row is a visible record together with its index in the full list.
type Row struct {
	Index        int
	Conversation chatwoot.Conversation
}

// List owns the fetched records, the cursor and the load status. It is not
// safe for concurrent use; the dashboard drives it from one goroutine.
type List struct {
	fetcher Fetcher
	theme   tuitheme.Theme
	keys    actions.KeyMap

	records []chatwoot.Conversation
	cursor  int
	status  state.Status
}

func New(fetcher Fetcher, th tuitheme.Theme, keys actions.KeyMap) *List {
	return &List{
		fetcher: fetcher,
		theme:   th,
		keys:    keys,
		records: []chatwoot.Conversation{},
		status:  state.Idle(),
	}
}

// Fetch loads open conversations synchronously. On failure the error message
// becomes the list status and the previous records and cursor are kept.
func (l *List) Fetch(ctx context.Context) {
	l.status = state.Loading()

	convs, err := l.fetcher.ListOpenConversations(ctx)
	if err != nil {
		l.status = state.Failed(err.Error())
		return
	}
	if convs == nil {
		convs = []chatwoot.Conversation{}
	}
	l.records = convs
	l.cursor = state.ClampCursor(l.cursor, len(l.records))
	l.status = state.Idle()
}

func (l *List) MoveUp() {
	l.cursor = state.ClampCursor(l.cursor-1, len(l.records))
}

func (l *List) MoveDown() {
	l.cursor = state.ClampCursor(l.cursor+1, len(l.records))
}

// Selected returns the record under the cursor; ok is false when the list is
// empty.
func (l *List) Selected() (chatwoot.Conversation, bool) {
	if len(l.records) == 0 {
		return chatwoot.Conversation{}, false
	}
	return l.records[l.cursor], true
}

// WindowFor returns at most height rows around the cursor.
func (l *List) WindowFor(height int) []Row {
	start, end := state.Window(len(l.records), l.cursor, height)
	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, Row{Index: i, Conversation: l.records[i]})
	}
	return rows
}

func (l *List) Cursor() int                      { return l.cursor }
func (l *List) Len() int                         { return len(l.records) }
func (l *List) Status() state.Status             { return l.status }
func (l *List) Records() []chatwoot.Conversation { return l.records }

// View renders the column body: a title line, the status or rows, and a help
// line. Lines are cut to width; the block is at most height lines tall.
func (l *List) View(width, height int) string {
	lines := make([]string, 0, height)
	lines = append(lines, l.theme.Title.Render(" Conversations "))
	lines = append(lines, l.body(width, height)...)
	lines = append(lines, view.RenderHelpLine(l.keys.ListHelp(), width, l.theme))
	if len(lines) > height {
		lines = lines[:max(height, 0)]
	}
	return strings.Join(view.ClipLines(lines, width), "\n")
}

func (l *List) body(width, height int) []string {
	switch l.status.Kind() {
	case state.StatusLoading:
		return []string{l.theme.Warning.Render("Loading...")}
	case state.StatusError:
		msg := strings.Join(strings.Fields(l.status.Message()), " ")
		return []string{l.theme.Error.Render(view.Truncate("Error: "+msg, width))}
	case state.StatusIdle:
		if len(l.records) == 0 {
			return []string{l.theme.Muted.Render("No open conversations")}
		}
		rows := l.WindowFor(height - layout.ListChromeLines)
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, view.RenderConversationLine(view.ConversationLineParams{
				Conversation: row.Conversation,
				Active:       row.Index == l.cursor,
				Width:        width,
			}, l.theme))
		}
		return lines
	default:
		panic(fmt.Sprintf("conversations: unhandled status kind %d", l.status.Kind()))
	}
}
