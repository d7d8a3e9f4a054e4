package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient points a GeminiClient at a stub server.
func newTestClient(serverURL string) *GeminiClient {
	c := NewGeminiClient("test-key", "test-model", http.DefaultClient)
	c.baseURL = serverURL
	return c
}

// geminiReply wraps an inner JSON payload in the generateContent envelope.
func geminiReply(inner string) string {
	env := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": inner}},
			}},
		},
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func TestGeminiGenerate(t *testing.T) {
	t.Run("parses_structured_advisory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if !strings.Contains(r.URL.Path, "test-model:generateContent") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.Header.Get("x-goog-api-key") != "test-key" {
				t.Errorf("missing api key header")
			}

			var req generateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if req.GenerationConfig.ResponseMimeType != "application/json" {
				t.Errorf("expected JSON response mime type, got %q", req.GenerationConfig.ResponseMimeType)
			}

			_, _ = w.Write([]byte(geminiReply(`{"summary":"Spending looks healthy.","advice":["a","b","c"]}`)))
		}))
		defer server.Close()

		advisory, err := newTestClient(server.URL).Generate(context.Background(), "analyze this")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advisory.Summary != "Spending looks healthy." {
			t.Errorf("unexpected summary: %q", advisory.Summary)
		}
		if len(advisory.Advice) != 3 {
			t.Errorf("expected 3 advice items, got %d", len(advisory.Advice))
		}
	})

	t.Run("non_200_status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).Generate(context.Background(), "p"); err == nil {
			t.Fatal("expected error on non-200 status")
		}
	})

	t.Run("malformed_payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(geminiReply(`not json at all`)))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).Generate(context.Background(), "p"); err == nil {
			t.Fatal("expected error on malformed advisory payload")
		}
	})

	t.Run("empty_candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		if _, err := newTestClient(server.URL).Generate(context.Background(), "p"); err == nil {
			t.Fatal("expected error on empty candidates")
		}
	})

	t.Run("missing_api_key", func(t *testing.T) {
		c := NewGeminiClient("", "test-model", nil)
		if _, err := c.Generate(context.Background(), "p"); err == nil {
			t.Fatal("expected error when api key is not configured")
		}
	})
}

func TestFallback(t *testing.T) {
	fb := Fallback()
	if !fb.Fallback {
		t.Error("expected Fallback flag to be set")
	}
	if fb.Summary == "" {
		t.Error("expected non-empty fallback summary")
	}
	if len(fb.Advice) != 3 {
		t.Errorf("expected exactly 3 fallback tips, got %d", len(fb.Advice))
	}
}
