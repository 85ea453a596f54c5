package lingoswap

import (
	"context"
	"strings"
)

// Assistant is the main entry point: it resolves the translation direction
// for a selection and asks an AI provider for the translated or corrected
// text.
type Assistant struct {
	defaultLang string
	targetLang  string
	provider    CompletionProvider
	cache       ResultCache
	extractor   TextExtractor
	hint        string
}

// CompletionProvider is the interface for AI chat-completion backends.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	Instruction string // System instruction (what to do with the text)
	Text        string // The user's selection
}

// ResultCache is the interface for completion caching.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// TextExtractor extracts the translatable text from a selection so that
// language detection scores prose rather than markup.
type TextExtractor interface {
	Text(content string) (string, error)
	ContentType() string
}

// AssistantOption is a functional option for configuring the Assistant.
type AssistantOption func(*Assistant)

// WithCache sets the completion cache.
func WithCache(cache ResultCache) AssistantOption {
	return func(a *Assistant) {
		a.cache = cache
	}
}

// WithExtractor sets the extractor used to obtain detection text from
// marked-up selections. The raw selection is still what gets sent to the
// provider.
func WithExtractor(extractor TextExtractor) AssistantOption {
	return func(a *Assistant) {
		a.extractor = extractor
	}
}

// WithHint appends a free-form hint to every instruction (e.g. "The text is
// a git commit message").
func WithHint(hint string) AssistantOption {
	return func(a *Assistant) {
		a.hint = hint
	}
}

// NewAssistant creates a new Assistant for the given default and target
// languages. The language identifiers are expected to be keys of
// ScriptRanges; unknown identifiers are tolerated and simply never match.
func NewAssistant(defaultLang, targetLang string, provider CompletionProvider, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		defaultLang: defaultLang,
		targetLang:  targetLang,
		provider:    provider,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Resolve returns the translation direction for the selection. When an
// extractor is configured, detection runs on the extracted text so that tags
// and attributes do not dilute the script percentages.
func (a *Assistant) Resolve(text string) LanguagePair {
	return Resolve(a.detectionText(text), a.defaultLang, a.targetLang)
}

// Translate translates the selection along the resolved direction.
func (a *Assistant) Translate(ctx context.Context, text string) (*Result, error) {
	return a.assist(ctx, ModeTranslate, text)
}

// Correct fixes grammar and spelling in the selection, keeping it in the
// detected language.
func (a *Assistant) Correct(ctx context.Context, text string) (*Result, error) {
	return a.assist(ctx, ModeCorrect, text)
}

// assist runs a single operation: resolve direction, consult the cache, and
// fall through to the provider on a miss.
func (a *Assistant) assist(ctx context.Context, mode Mode, text string) (*Result, error) {
	pair := a.Resolve(text)

	// Nothing to do for blank selections; skip the provider round trip.
	if strings.TrimSpace(text) == "" {
		return &Result{
			Output:      text,
			Source:      pair.Source,
			Destination: pair.Destination,
			Mode:        mode,
		}, nil
	}

	key := CacheKey(HashText(text), pair, mode)
	if a.cache != nil {
		if cached, ok := a.cache.Get(key); ok {
			return &Result{
				Output:      cached,
				Source:      pair.Source,
				Destination: pair.Destination,
				Mode:        mode,
				Cached:      true,
			}, nil
		}
	}

	instruction := InstructionFor(mode, pair)
	if a.hint != "" {
		instruction += " " + a.hint
	}

	output, err := a.provider.Complete(ctx, CompletionRequest{
		Instruction: instruction,
		Text:        text,
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(output) == "" {
		return nil, &EmptyCompletionError{Mode: mode}
	}

	if a.cache != nil {
		_ = a.cache.Set(key, output) // Ignore cache set errors
	}

	return &Result{
		Output:      output,
		Source:      pair.Source,
		Destination: pair.Destination,
		Mode:        mode,
	}, nil
}

// detectionText returns the text used for language detection.
func (a *Assistant) detectionText(text string) string {
	if a.extractor == nil {
		return text
	}
	extracted, err := a.extractor.Text(text)
	if err != nil || strings.TrimSpace(extracted) == "" {
		// Fall back to the raw selection on extraction failure.
		return text
	}
	return extracted
}

// DefaultLang returns the configured default language.
func (a *Assistant) DefaultLang() string {
	return a.defaultLang
}

// TargetLang returns the configured target language.
func (a *Assistant) TargetLang() string {
	return a.targetLang
}

// Hint returns the instruction hint.
func (a *Assistant) Hint() string {
	return a.hint
}
