package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/glabrego/chatwoot-tui/internal/chatwoot"
)

type ConversationClient interface {
	ListConversations(ctx context.Context, opts chatwoot.ListOptions) ([]chatwoot.Conversation, error)
}

type Service struct {
	client  ConversationClient
	logger  *slog.Logger
	timeout time.Duration
}

// NewService wires the client. A nil logger discards; a non-positive timeout
// leaves the caller's context untouched.
func NewService(client ConversationClient, logger *slog.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{client: client, logger: logger, timeout: timeout}
}

// ListOpenConversations returns the first page of open conversations in
// server order. Client errors are returned as-is so the dashboard can show
// them verbatim.
func (s *Service) ListOpenConversations(ctx context.Context) ([]chatwoot.Conversation, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	convs, err := s.client.ListConversations(ctx, chatwoot.ListOptions{Status: chatwoot.StatusOpen, Page: 1})
	elapsed := time.Since(started)
	if err != nil {
		s.logger.Error("list open conversations failed", "duration", elapsed, "error", err)
		return nil, err
	}
	s.logger.Info("listed open conversations", "count", len(convs), "duration", elapsed)
	return convs, nil
}
