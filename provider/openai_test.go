package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	if p.Model() != "gpt-4o-mini" {
		t.Errorf("default model = %q, want gpt-4o-mini", p.Model())
	}
	if p.temperature != 0.3 {
		t.Errorf("default temperature = %v, want 0.3", p.temperature)
	}
}

func TestNewOpenAIProvider_Overrides(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{
		APIKey:      "test",
		Model:       "gpt-4o",
		Temperature: 0.7,
	})

	if p.Model() != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", p.Model())
	}
	if p.temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", p.temperature)
	}
}

// fakeCompletionServer serves a minimal chat-completion response and records
// the request payload.
func fakeCompletionServer(t *testing.T, completion string, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if captured != nil {
			*captured = payload
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}]
		}`, completion)
	}))
}

func TestOpenAIProvider_Complete(t *testing.T) {
	var captured map[string]interface{}
	server := fakeCompletionServer(t, "  你好世界\n", &captured)
	defer server.Close()

	p := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test",
		BaseURL: server.URL,
	})

	result, err := p.Complete(context.Background(), CompletionRequest{
		Instruction: "Translate the text from English to 繁體中文.",
		Text:        "Hello world",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != "你好世界" {
		t.Errorf("completion should be trimmed, got %q", result)
	}

	messages, ok := captured["messages"].([]interface{})
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got: %v", captured["messages"])
	}

	system := messages[0].(map[string]interface{})
	if system["role"] != "system" {
		t.Errorf("first message role = %v, want system", system["role"])
	}
	if system["content"] != "Translate the text from English to 繁體中文." {
		t.Errorf("system content = %v", system["content"])
	}

	user := messages[1].(map[string]interface{})
	if user["role"] != "user" || user["content"] != "Hello world" {
		t.Errorf("unexpected user message: %v", user)
	}
}

func TestOpenAIProvider_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limit exceeded", "type": "requests"}}`)
	}))
	defer server.Close()

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test", BaseURL: server.URL})

	_, err := p.Complete(context.Background(), CompletionRequest{Text: "Hello"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"rate limit", fmt.Errorf("Rate limit exceeded"), true},
		{"timeout", fmt.Errorf("request timeout"), true},
		{"status 429", fmt.Errorf("unexpected status 429"), true},
		{"status 503", fmt.Errorf("got 503 from upstream"), true},
		{"bad request", fmt.Errorf("invalid request body"), false},
		{"auth failure", fmt.Errorf("invalid api key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.expected {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
