package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/chatwoot-tui/internal/chatwoot"
	tuitheme "github.com/glabrego/chatwoot-tui/internal/tui/theme"
)

func conversation(id int64, sender, inbox string, messages int) chatwoot.Conversation {
	conv := chatwoot.Conversation{ID: id, MessagesCount: messages}
	if sender != "" {
		conv.Meta.Sender = &chatwoot.Contact{Name: sender}
	}
	if inbox != "" {
		conv.Meta.Inbox = &chatwoot.Inbox{Name: inbox}
	}
	return conv
}

func TestRenderConversationLine_ActiveMarker(t *testing.T) {
	th := tuitheme.Default()
	conv := conversation(12, "Jane Doe", "Support", 3)

	active := stripANSI(RenderConversationLine(ConversationLineParams{Conversation: conv, Active: true, Width: 60}, th))
	if active != "> #12 Jane Doe  Support (3)" {
		t.Fatalf("unexpected active line: %q", active)
	}
	inactive := stripANSI(RenderConversationLine(ConversationLineParams{Conversation: conv, Width: 60}, th))
	if inactive != "  #12 Jane Doe  Support (3)" {
		t.Fatalf("unexpected inactive line: %q", inactive)
	}
}

func TestRenderConversationLine_FallbacksAndSenderTruncation(t *testing.T) {
	th := tuitheme.Default()

	unknown := stripANSI(RenderConversationLine(ConversationLineParams{Conversation: conversation(1, "", "", 0), Width: 40}, th))
	if unknown != "  #1 Unknown  (0)" {
		t.Fatalf("unexpected fallback line: %q", unknown)
	}

	long := stripANSI(RenderConversationLine(ConversationLineParams{Conversation: conversation(2, "Bartholomew Longname", "Web", 1), Width: 80}, th))
	if !strings.HasPrefix(long, "  #2 Bartholomew Lo…  Web") {
		t.Fatalf("expected sender cut to 15 cells, got %q", long)
	}
}

func TestRenderConversationLine_NeverExceedsWidth(t *testing.T) {
	th := tuitheme.Default()
	conv := conversation(123456, "Jane Doe", "A very long inbox name", 42)
	conv.LastActivityAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	for width := 0; width <= 70; width++ {
		line := RenderConversationLine(ConversationLineParams{Conversation: conv, Active: width%2 == 0, Width: width}, th)
		if got := lipgloss.Width(line); got > width {
			t.Fatalf("width %d: line is %d cells: %q", width, got, stripANSI(line))
		}
	}

	full := stripANSI(RenderConversationLine(ConversationLineParams{Conversation: conv, Width: 200}, th))
	if !strings.HasSuffix(full, "A very long inbox name (42) · 2026-01-01") {
		t.Fatalf("unexpected full line: %q", full)
	}
}
