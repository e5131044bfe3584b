package chatwoot

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListMessages_SendsBefore(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/1/conversations/8/messages" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("before") != "100" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"meta":{},"payload":[{"id":99,"content":"Hi there","message_type":0,"sender":{"id":1,"name":"Jane","type":"contact"}}]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret", 1, ts.Client())
	msgs, err := c.ListMessages(context.Background(), 8, 100)
	if err != nil {
		t.Fatalf("ListMessages returned error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "Hi there" || msgs[0].Sender.Name != "Jane" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestCreateMessage_DefaultsToOutgoing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"message_type":"outgoing"`) || !strings.Contains(string(body), `"private":true`) {
			t.Fatalf("unexpected body: %s", body)
		}
		_, _ = w.Write([]byte(`{"id":5,"content":"noted","private":true}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret", 1, ts.Client())
	msg, err := c.CreateMessage(context.Background(), 8, CreateMessageRequest{Content: "noted", Private: true})
	if err != nil {
		t.Fatalf("CreateMessage returned error: %v", err)
	}
	if msg.ID != 5 || !msg.Private {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestDeleteMessageAndLabels(t *testing.T) {
	requests := make([]string, 0, 3)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, r.Method+" "+r.URL.Path+" "+string(body))
		if strings.HasSuffix(r.URL.Path, "/labels") {
			_, _ = w.Write([]byte(`{"payload":["billing","vip"]}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret", 1, ts.Client())
	ctx := context.Background()
	if err := c.DeleteMessage(ctx, 8, 5); err != nil {
		t.Fatalf("DeleteMessage returned error: %v", err)
	}
	labels, err := c.AddLabels(ctx, 8, []string{"vip"})
	if err != nil {
		t.Fatalf("AddLabels returned error: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("unexpected labels: %v", labels)
	}
	listed, err := c.ListLabels(ctx, 8)
	if err != nil {
		t.Fatalf("ListLabels returned error: %v", err)
	}
	if len(listed) != 2 || listed[1] != "vip" {
		t.Fatalf("unexpected labels: %v", listed)
	}

	if requests[0] != "DELETE /api/v1/accounts/1/conversations/8/messages/5 " {
		t.Fatalf("unexpected delete request: %q", requests[0])
	}
	if !strings.Contains(requests[1], `POST /api/v1/accounts/1/conversations/8/labels {"labels":["vip"]}`) {
		t.Fatalf("unexpected add labels request: %q", requests[1])
	}
}
