package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postWebhook(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, req)
	return rr
}

func TestHandleWebhook_ReturnsReply(t *testing.T) {
	var gotCommand, gotArg string
	h := newTestHandler(Config{
		Bot: &MockCommandService{
			DispatchFunc: func(_ context.Context, command, arg string) string {
				gotCommand, gotArg = command, arg
				return "♟ erik on Chess.com"
			},
		},
	})

	rr := postWebhook(h, `{"command":"stats","args":"erik","chat_id":42,"message_id":7}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if gotCommand != "stats" || gotArg != "erik" {
		t.Errorf("Dispatched (%q, %q), want (stats, erik)", gotCommand, gotArg)
	}

	var resp webhookResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Response is not JSON: %v", err)
	}
	if resp.Text != "♟ erik on Chess.com" {
		t.Errorf("Text = %q, want the dispatched reply", resp.Text)
	}
}

func TestHandleWebhook_SilentReplyIs204(t *testing.T) {
	h := newTestHandler(Config{
		Bot: &MockCommandService{
			DispatchFunc: func(_ context.Context, _, _ string) string { return "" },
		},
	})

	rr := postWebhook(h, `{"command":"stats","args":""}`)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("Status = %d, want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("Body = %q, want empty", rr.Body.String())
	}
}

func TestHandleWebhook_NormalizesCommandCase(t *testing.T) {
	var gotCommand string
	h := newTestHandler(Config{
		Bot: &MockCommandService{
			DispatchFunc: func(_ context.Context, command, _ string) string {
				gotCommand = command
				return "ok"
			},
		},
	})

	rr := postWebhook(h, `{"command":"  TOP  "}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rr.Code)
	}
	if gotCommand != "top" {
		t.Errorf("Dispatched command %q, want top", gotCommand)
	}
}

func TestHandleWebhook_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"command":`},
		{name: "missing command", body: `{"args":"erik"}`},
		{name: "unknown command", body: `{"command":"weather"}`},
		{name: "oversized args", body: fmt.Sprintf(`{"command":"stats","args":%q}`, strings.Repeat("x", 300))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatched := false
			h := newTestHandler(Config{
				Bot: &MockCommandService{
					DispatchFunc: func(_ context.Context, _, _ string) string {
						dispatched = true
						return "ok"
					},
				},
			})

			rr := postWebhook(h, tt.body)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Status = %d, want 400", rr.Code)
			}
			if dispatched {
				t.Error("Dispatch was called for a rejected payload")
			}
			var resp map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Error body is not JSON: %v", err)
			}
			if resp["error"] == "" {
				t.Error("Expected an error message in the body")
			}
		})
	}
}

func TestHandleWebhook_OversizedBody(t *testing.T) {
	h := newTestHandler(Config{})

	body := fmt.Sprintf(`{"command":"stats","args":%q}`, strings.Repeat("x", MaxBodySize))
	rr := postWebhook(h, body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rr.Code)
	}
}
