package chatwoot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrAuthentication = errors.New("invalid API key")
	ErrNotFound       = errors.New("resource not found")
	ErrRateLimited    = errors.New("rate limit exceeded")
)

const maxSummaryRunes = 120

// APIError is returned for any non-2xx status without a dedicated sentinel.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if summary := summarizeBody(e.Body); summary != "" {
		return fmt.Sprintf("API error: %d: %s", e.Status, summary)
	}
	return fmt.Sprintf("API error: %d", e.Status)
}

// summarizeBody extracts a one-line reason from a JSON or HTML error body.
func summarizeBody(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if strings.HasPrefix(body, "{") {
		return clip(jsonReason(body))
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<html") || strings.Contains(lower, "<title") || strings.Contains(lower, "<h1") {
		return clip(htmlReason(body))
	}
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[:i]
	}
	return clip(body)
}

func jsonReason(body string) string {
	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error", "errors"} {
		switch v := payload[key].(type) {
		case string:
			if s := collapseSpace(v); s != "" {
				return s
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok && collapseSpace(s) != "" {
					parts = append(parts, collapseSpace(s))
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	return ""
}

// htmlReason prefers the document title and falls back to the first heading.
func htmlReason(body string) string {
	doc, err := nethtml.Parse(strings.NewReader(body))
	if err != nil {
		return ""
	}
	if title := firstText(doc, atom.Title); title != "" {
		return title
	}
	return firstText(doc, atom.H1)
}

func firstText(n *nethtml.Node, tag atom.Atom) string {
	if n.Type == nethtml.ElementNode && n.DataAtom == tag {
		return collapseSpace(textContent(n))
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if s := firstText(child, tag); s != "" {
			return s
		}
	}
	return ""
}

func textContent(n *nethtml.Node) string {
	if n.Type == nethtml.TextNode {
		return n.Data
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(textContent(child))
		b.WriteString(" ")
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func clip(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryRunes {
		return s
	}
	return string(runes[:maxSummaryRunes-3]) + "..."
}
