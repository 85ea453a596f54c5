package lingoswap

import (
	"context"
	"strings"
	"testing"
)

// mockProvider is a simple mock for testing
type mockProvider struct {
	completions map[string]string
	callCount   int
	lastReq     CompletionRequest
	err         error
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		completions: map[string]string{
			"Hello world":          "你好世界",
			"這是測試":                 "This is a test",
			"She dont like apples": "She doesn't like apples",
		},
	}
}

func (m *mockProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.callCount++
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	if completion, ok := m.completions[req.Text]; ok {
		return completion, nil
	}
	return "[" + req.Text + "]", nil
}

// mockCache is a simple mock cache for testing
type mockCache struct {
	data map[string]string
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (c *mockCache) Get(key string) (string, bool) {
	val, ok := c.data[key]
	return val, ok
}

func (c *mockCache) Set(key string, value string) error {
	c.data[key] = value
	return nil
}

func TestAssistant_Translate_DefaultDirection(t *testing.T) {
	p := newMockProvider()
	a := NewAssistant("English", "繁體中文", p)

	result, err := a.Translate(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Output != "你好世界" {
		t.Errorf("unexpected output: %s", result.Output)
	}
	if result.Source != "English" || result.Destination != "繁體中文" {
		t.Errorf("unexpected direction: %s -> %s", result.Source, result.Destination)
	}
	if result.Mode != ModeTranslate {
		t.Errorf("unexpected mode: %s", result.Mode)
	}
	if !strings.Contains(p.lastReq.Instruction, "from English to 繁體中文") {
		t.Errorf("instruction should follow resolved direction, got: %s", p.lastReq.Instruction)
	}
}

func TestAssistant_Translate_SwappedDirection(t *testing.T) {
	p := newMockProvider()
	a := NewAssistant("English", "繁體中文", p)

	result, err := a.Translate(context.Background(), "這是測試")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Source != "繁體中文" || result.Destination != "English" {
		t.Errorf("expected swapped direction, got: %s -> %s", result.Source, result.Destination)
	}
	if !strings.Contains(p.lastReq.Instruction, "from 繁體中文 to English") {
		t.Errorf("instruction should follow swapped direction, got: %s", p.lastReq.Instruction)
	}
}

func TestAssistant_Translate_CacheHit(t *testing.T) {
	p := newMockProvider()
	c := newMockCache()
	a := NewAssistant("English", "繁體中文", p, WithCache(c))

	first, err := a.Translate(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Error("first call should not be cached")
	}

	second, err := a.Translate(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Error("second call should hit the cache")
	}
	if second.Output != first.Output {
		t.Errorf("cached output differs: %q vs %q", second.Output, first.Output)
	}
	if p.callCount != 1 {
		t.Errorf("provider called %d times, want 1", p.callCount)
	}
}

func TestAssistant_Translate_EmptySelection(t *testing.T) {
	p := newMockProvider()
	a := NewAssistant("English", "繁體中文", p)

	result, err := a.Translate(context.Background(), "   \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Output != "   \n" {
		t.Errorf("blank selection should pass through, got %q", result.Output)
	}
	if p.callCount != 0 {
		t.Error("provider should not be called for blank selections")
	}
}

func TestAssistant_Correct(t *testing.T) {
	p := newMockProvider()
	a := NewAssistant("English", "繁體中文", p)

	result, err := a.Correct(context.Background(), "She dont like apples")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Output != "She doesn't like apples" {
		t.Errorf("unexpected output: %s", result.Output)
	}
	if result.Mode != ModeCorrect {
		t.Errorf("unexpected mode: %s", result.Mode)
	}
	if !strings.Contains(p.lastReq.Instruction, "keeping it in English") {
		t.Errorf("instruction should name detected language, got: %s", p.lastReq.Instruction)
	}
}

func TestAssistant_Correct_SeparateCacheEntry(t *testing.T) {
	p := newMockProvider()
	c := newMockCache()
	a := NewAssistant("English", "繁體中文", p, WithCache(c))

	if _, err := a.Translate(context.Background(), "Hello world"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := a.Correct(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Cached {
		t.Error("correct should not reuse the translate cache entry")
	}
	if p.callCount != 2 {
		t.Errorf("provider called %d times, want 2", p.callCount)
	}
}

func TestAssistant_EmptyCompletion(t *testing.T) {
	p := newMockProvider()
	p.completions["Hello world"] = "   "
	a := NewAssistant("English", "繁體中文", p)

	_, err := a.Translate(context.Background(), "Hello world")
	if err == nil {
		t.Fatal("expected error for blank completion")
	}
	if _, ok := err.(*EmptyCompletionError); !ok {
		t.Errorf("expected EmptyCompletionError, got %T", err)
	}
}

func TestAssistant_WithHint(t *testing.T) {
	p := newMockProvider()
	a := NewAssistant("English", "繁體中文", p, WithHint("The text is a commit message."))

	if _, err := a.Translate(context.Background(), "Hello world"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p.lastReq.Instruction, "The text is a commit message.") {
		t.Errorf("hint missing from instruction: %s", p.lastReq.Instruction)
	}
}

// markupStripper fakes an extractor that drops everything but the prose.
type markupStripper struct{}

func (markupStripper) Text(content string) (string, error) {
	content = strings.ReplaceAll(content, "<b>", "")
	return strings.ReplaceAll(content, "</b>", ""), nil
}

func (markupStripper) ContentType() string { return "html" }

func TestAssistant_WithExtractor_DetectionOnly(t *testing.T) {
	p := newMockProvider()
	a := NewAssistant("English", "繁體中文", p, WithExtractor(markupStripper{}))

	// Raw markup dilutes the Han percentage below 50; extraction restores it.
	pair := a.Resolve("<b>這是測試</b>")
	if pair.Source != "繁體中文" {
		t.Errorf("detection should run on extracted text, got source %s", pair.Source)
	}

	// The raw selection is still what gets sent to the provider.
	if _, err := a.Translate(context.Background(), "<b>這是測試</b>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.lastReq.Text != "<b>這是測試</b>" {
		t.Errorf("provider should receive the raw selection, got %q", p.lastReq.Text)
	}
}

func TestAssistant_Accessors(t *testing.T) {
	a := NewAssistant("English", "日本語", newMockProvider(), WithHint("hint"))

	if a.DefaultLang() != "English" {
		t.Errorf("DefaultLang() = %s", a.DefaultLang())
	}
	if a.TargetLang() != "日本語" {
		t.Errorf("TargetLang() = %s", a.TargetLang())
	}
	if a.Hint() != "hint" {
		t.Errorf("Hint() = %s", a.Hint())
	}
}
