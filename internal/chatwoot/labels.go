package chatwoot

import (
	"context"
	"fmt"
	"net/http"
)

type labelsPayload struct {
	Payload []string `json:"payload"`
}

func (c *Client) ListLabels(ctx context.Context, conversationID int64) ([]string, error) {
	var resp labelsPayload
	path := fmt.Sprintf("/conversations/%d/labels", conversationID)
	if err := c.do(ctx, "list labels", http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// AddLabels returns the conversation's full label set after the update.
func (c *Client) AddLabels(ctx context.Context, conversationID int64, labels []string) ([]string, error) {
	var resp labelsPayload
	path := fmt.Sprintf("/conversations/%d/labels", conversationID)
	body := map[string][]string{"labels": labels}
	if err := c.do(ctx, "add labels", http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Payload, nil
}
