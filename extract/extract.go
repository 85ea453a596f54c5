// Package extract pulls the translatable text out of editor selections so
// language detection scores prose rather than markup.
package extract

import (
	"strings"

	"github.com/glottolabs/lingoswap"
)

// TextExtractor is an alias to the main package interface for convenience.
type TextExtractor = lingoswap.TextExtractor

// PlainExtractor treats the selection as plain text, normalizing whitespace.
type PlainExtractor struct{}

// NewPlainExtractor creates a plain-text extractor.
func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

// Text returns the selection with runs of whitespace collapsed to single
// spaces.
func (p *PlainExtractor) Text(content string) (string, error) {
	return strings.Join(strings.Fields(content), " "), nil
}

// ContentType returns the content type handled by this extractor.
func (p *PlainExtractor) ContentType() string {
	return "text"
}

// Verify PlainExtractor implements TextExtractor
var _ TextExtractor = (*PlainExtractor)(nil)
