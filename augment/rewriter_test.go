package augment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRewriteExpandsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "test-model",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": "hi greetings salutations",
					},
				},
			},
		})
	}))
	defer server.Close()

	rewriter := NewRewriter(server.URL+"/v1", "test-key", "test-model")

	got, err := rewriter.Rewrite(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	want := "hello hi greetings salutations"
	if got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
}

func TestRewriteEmptyCompletionFallsBackToQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "test-model",
			"choices": []map[string]any{
				{"index": 0, "finish_reason": "stop", "message": map[string]any{"role": "assistant", "content": ""}},
			},
		})
	}))
	defer server.Close()

	rewriter := NewRewriter(server.URL+"/v1", "test-key", "test-model")
	got, err := rewriter.Rewrite(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("Rewrite() = %q, want original query preserved", got)
	}
}
