package chatwoot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const MessageTypeOutgoing = "outgoing"

type Message struct {
	ID          int64          `json:"id"`
	Content     string         `json:"content"`
	ContentType string         `json:"content_type"`
	MessageType int            `json:"message_type"`
	CreatedAt   int64          `json:"created_at"`
	Private     bool           `json:"private"`
	Sender      *MessageSender `json:"sender"`
}

type MessageSender struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateMessageRequest struct {
	Content           string         `json:"content"`
	MessageType       string         `json:"message_type"`
	Private           bool           `json:"private"`
	ContentAttributes map[string]any `json:"content_attributes,omitempty"`
}

func (c *Client) ListMessages(ctx context.Context, conversationID, before int64) ([]Message, error) {
	q := make(url.Values)
	if before > 0 {
		q.Set("before", strconv.FormatInt(before, 10))
	}
	var resp struct {
		Payload []Message `json:"payload"`
	}
	path := fmt.Sprintf("/conversations/%d/messages", conversationID)
	if err := c.do(ctx, "list messages", http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// CreateMessage posts a message; an empty MessageType is sent as outgoing.
func (c *Client) CreateMessage(ctx context.Context, conversationID int64, req CreateMessageRequest) (Message, error) {
	if req.MessageType == "" {
		req.MessageType = MessageTypeOutgoing
	}
	var msg Message
	path := fmt.Sprintf("/conversations/%d/messages", conversationID)
	if err := c.do(ctx, "create message", http.MethodPost, path, nil, req, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (c *Client) DeleteMessage(ctx context.Context, conversationID, messageID int64) error {
	path := fmt.Sprintf("/conversations/%d/messages/%d", conversationID, messageID)
	return c.do(ctx, "delete message", http.MethodDelete, path, nil, nil, nil)
}
