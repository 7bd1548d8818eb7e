package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama-3.3-70b-versatile" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 {
			t.Errorf("messages = %d, want 2", len(req.Messages))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Haan ji? Kaun bol raha hai?"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "llama-3.3-70b-versatile")
	c.apiURL = srv.URL

	reply, err := c.Complete(context.Background(), []Message{
		{Role: "system", Content: "persona"},
		{Role: "user", Content: "your account is blocked"},
	}, 150, 0.8)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply != "Haan ji? Kaun bol raha hai?" {
		t.Errorf("reply = %q", reply)
	}
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit","message":"slow down"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "llama-3.3-70b-versatile")
	c.apiURL = srv.URL

	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 10, 0); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "llama-3.3-70b-versatile")
	c.apiURL = srv.URL

	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, 10, 0); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
