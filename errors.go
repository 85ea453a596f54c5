package lingoswap

import "fmt"

// AssistError is the base error type for assistant failures.
type AssistError struct {
	Message string
	Cause   error
}

func (e *AssistError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AssistError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates an AI provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ExtractError indicates a selection extraction failure (parse error, etc.).
type ExtractError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to extract
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error (%s): %s", e.ContentType, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// EmptyCompletionError indicates the AI returned an empty completion for a
// non-empty selection.
type EmptyCompletionError struct {
	Mode Mode
}

func (e *EmptyCompletionError) Error() string {
	return fmt.Sprintf("empty completion for %s request", e.Mode)
}
