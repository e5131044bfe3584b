package chatwoot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
	StatusPending  = "pending"
	StatusSnoozed  = "snoozed"
)

// Conversation is the subset of Chatwoot conversation fields used by the app.
type Conversation struct {
	ID             int64            `json:"id"`
	AccountID      int64            `json:"account_id"`
	InboxID        int64            `json:"inbox_id"`
	Status         string           `json:"status"`
	Priority       *string          `json:"priority"`
	MessagesCount  int              `json:"messages_count"`
	UnreadCount    int              `json:"unread_count"`
	CreatedAt      int64            `json:"created_at"`
	LastActivityAt int64            `json:"last_activity_at"`
	Labels         []string         `json:"labels"`
	Meta           ConversationMeta `json:"meta"`
}

type ConversationMeta struct {
	Sender   *Contact `json:"sender"`
	Assignee *Agent   `json:"assignee"`
	Inbox    *Inbox   `json:"inbox"`
	Channel  string   `json:"channel"`
}

type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Agent struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Inbox struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SenderName falls back to "Unknown" when the sender is missing or unnamed.
func (c Conversation) SenderName() string {
	if c.Meta.Sender == nil || strings.TrimSpace(c.Meta.Sender.Name) == "" {
		return "Unknown"
	}
	return c.Meta.Sender.Name
}

func (c Conversation) InboxName() string {
	if c.Meta.Inbox == nil {
		return ""
	}
	return c.Meta.Inbox.Name
}

type ListOptions struct {
	Status       string
	AssigneeType string
	InboxID      int64
	Labels       []string
	Page         int
}

func (o ListOptions) query() url.Values {
	q := make(url.Values)
	page := o.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.AssigneeType != "" {
		q.Set("assignee_type", o.AssigneeType)
	}
	if o.InboxID > 0 {
		q.Set("inbox_id", strconv.FormatInt(o.InboxID, 10))
	}
	if len(o.Labels) > 0 {
		q.Set("labels", strings.Join(o.Labels, ","))
	}
	return q
}

type listConversationsResponse struct {
	Data struct {
		Meta    Counts         `json:"meta"`
		Payload []Conversation `json:"payload"`
	} `json:"data"`
}

// Counts mirrors the conversation counters returned by the meta endpoint.
type Counts struct {
	AllCount        int `json:"all_count"`
	MineCount       int `json:"mine_count"`
	AssignedCount   int `json:"assigned_count"`
	UnassignedCount int `json:"unassigned_count"`
}

// ListConversations returns one page of conversations. A response without a
// payload yields an empty slice.
func (c *Client) ListConversations(ctx context.Context, opts ListOptions) ([]Conversation, error) {
	var resp listConversationsResponse
	if err := c.do(ctx, "list conversations", http.MethodGet, "/conversations", opts.query(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Payload == nil {
		return []Conversation{}, nil
	}
	return resp.Data.Payload, nil
}

func (c *Client) GetConversation(ctx context.Context, id int64) (Conversation, error) {
	var conv Conversation
	if err := c.do(ctx, "get conversation", http.MethodGet, fmt.Sprintf("/conversations/%d", id), nil, nil, &conv); err != nil {
		return Conversation{}, err
	}
	return conv, nil
}

type CreateConversationRequest struct {
	InboxID              int64          `json:"inbox_id"`
	ContactID            int64          `json:"contact_id,omitempty"`
	SourceID             string         `json:"source_id,omitempty"`
	AdditionalAttributes map[string]any `json:"additional_attributes,omitempty"`
}

func (c *Client) CreateConversation(ctx context.Context, req CreateConversationRequest) (Conversation, error) {
	var conv Conversation
	if err := c.do(ctx, "create conversation", http.MethodPost, "/conversations", nil, req, &conv); err != nil {
		return Conversation{}, err
	}
	return conv, nil
}

func (c *Client) UpdateConversation(ctx context.Context, id int64, attributes map[string]any) (Conversation, error) {
	var conv Conversation
	if err := c.do(ctx, "update conversation", http.MethodPatch, fmt.Sprintf("/conversations/%d", id), nil, attributes, &conv); err != nil {
		return Conversation{}, err
	}
	return conv, nil
}

type toggleStatusRequest struct {
	Status       string `json:"status"`
	SnoozedUntil *int64 `json:"snoozed_until,omitempty"`
}

type ToggleStatusResult struct {
	Success        bool   `json:"success"`
	CurrentStatus  string `json:"current_status"`
	ConversationID int64  `json:"conversation_id"`
}

func (c *Client) ToggleStatus(ctx context.Context, id int64, status string, snoozedUntil *int64) (ToggleStatusResult, error) {
	var payload struct {
		Payload ToggleStatusResult `json:"payload"`
	}
	body := toggleStatusRequest{Status: status, SnoozedUntil: snoozedUntil}
	if err := c.do(ctx, "toggle status", http.MethodPost, fmt.Sprintf("/conversations/%d/toggle_status", id), nil, body, &payload); err != nil {
		return ToggleStatusResult{}, err
	}
	return payload.Payload, nil
}

func (c *Client) TogglePriority(ctx context.Context, id int64, priority string) error {
	body := map[string]string{"priority": priority}
	return c.do(ctx, "toggle priority", http.MethodPost, fmt.Sprintf("/conversations/%d/toggle_priority", id), nil, body, nil)
}

func (c *Client) Assign(ctx context.Context, id, assigneeID int64) error {
	body := map[string]int64{"assignee_id": assigneeID}
	return c.do(ctx, "assign conversation", http.MethodPost, fmt.Sprintf("/conversations/%d/assignments", id), nil, body, nil)
}

// ConversationCounts queries /conversations/meta; empty status and zero inbox
// are omitted from the query.
func (c *Client) ConversationCounts(ctx context.Context, status string, inboxID int64) (Counts, error) {
	q := make(url.Values)
	if status != "" {
		q.Set("status", status)
	}
	if inboxID > 0 {
		q.Set("inbox_id", strconv.FormatInt(inboxID, 10))
	}
	var resp struct {
		Meta Counts `json:"meta"`
	}
	if err := c.do(ctx, "conversation counts", http.MethodGet, "/conversations/meta", q, nil, &resp); err != nil {
		return Counts{}, err
	}
	return resp.Meta, nil
}
