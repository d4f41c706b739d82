package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewWebhookNotifier_MissingURL(t *testing.T) {
	if _, err := NewWebhookNotifier(""); err != ErrMissingWebhookURL {
		t.Fatalf("expected ErrMissingWebhookURL, got %v", err)
	}
}

func TestWebhookNotifier_Notify(t *testing.T) {
	t.Run("delivers payload", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.Header.Get("Content-Type"))
			}
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n, err := NewWebhookNotifier(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payload := map[string]any{"quote_id": "q-1", "service": "Web Design & Development"}
		if err := n.Notify(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["quote_id"] != "q-1" {
			t.Fatalf("unexpected payload received: %v", got)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		n, err := NewWebhookNotifier(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := n.Notify(context.Background(), map[string]any{"quote_id": "q-1"}); err == nil {
			t.Fatalf("expected error on non-2xx response")
		}
	})
}
