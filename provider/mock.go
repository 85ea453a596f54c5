package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock AI provider for testing.
type MockProvider struct {
	Completions map[string]string  // Map of selection text to completion
	CallCount   int                // Number of times Complete was called
	LastRequest *CompletionRequest // Last request received
}

// NewMockProvider creates a new mock provider with default completions.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Completions: map[string]string{
			"Hello world": "你好世界",
			"這是測試":        "This is a test",
			"Helo wrld":   "Hello world",
		},
	}
}

// Complete returns a canned completion for the selection.
func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if completion, ok := m.Completions[req.Text]; ok {
		return completion, nil
	}
	// Return bracketed text for unknown selections
	return fmt.Sprintf("[%s]", req.Text), nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements CompletionProvider
var _ CompletionProvider = (*MockProvider)(nil)
