package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/glabrego/chatwoot-tui/internal/chatwoot"
	tuitheme "github.com/glabrego/chatwoot-tui/internal/tui/theme"
)

const senderMaxWidth = 15

type ConversationLineParams struct {
	Conversation chatwoot.Conversation
	Active       bool
	Width        int
}

// RenderConversationLine renders one list row, never wider than p.Width:
//
//	> #12 Jane Doe  Support (3) · 2026-01-02
//
// The head (marker, id, sender) is styled as active or normal; the inbox
// meta that follows is muted and is the first thing cut when space runs out.
func RenderConversationLine(p ConversationLineParams, th tuitheme.Theme) string {
	if p.Width <= 0 {
		return ""
	}
	marker := "  "
	if p.Active {
		marker = "> "
	}
	conv := p.Conversation
	head := fmt.Sprintf("%s#%d %s", marker, conv.ID, Truncate(conv.SenderName(), senderMaxWidth))

	headWidth := runewidth.StringWidth(head)
	if headWidth >= p.Width {
		return th.RenderActiveLine(p.Active, Truncate(head, p.Width))
	}

	meta := Truncate("  "+ConversationMeta(conv), p.Width-headWidth)
	if strings.TrimSpace(meta) == "" {
		return th.RenderActiveLine(p.Active, head)
	}
	return th.RenderActiveLine(p.Active, head) + th.Muted.Render(meta)
}

// ConversationMeta is the inbox and message count, followed by the UTC date
// of the last activity when the server reported one.
func ConversationMeta(conv chatwoot.Conversation) string {
	meta := fmt.Sprintf("(%d)", conv.MessagesCount)
	if inbox := strings.TrimSpace(conv.InboxName()); inbox != "" {
		meta = inbox + " " + meta
	}
	if conv.LastActivityAt > 0 {
		meta += " · " + time.Unix(conv.LastActivityAt, 0).UTC().Format(time.DateOnly)
	}
	return meta
}
