package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/glottolabs/lingoswap"
	"golang.org/x/net/html"
)

// IgnoredTags contains HTML tags whose content carries no translatable prose.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// HTMLExtractor pulls the visible text out of an HTML selection. Tag names,
// attributes, and the content of ignored tags are dropped so that script
// detection is not skewed by markup.
type HTMLExtractor struct {
	ignoredTags map[string]bool
}

// NewHTMLExtractor creates a new HTML extractor with default ignored tags.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{
		ignoredTags: IgnoredTags,
	}
}

// NewHTMLExtractorWithIgnoredTags creates a new HTML extractor with custom
// ignored tags.
func NewHTMLExtractorWithIgnoredTags(tags []string) *HTMLExtractor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLExtractor{
		ignoredTags: ignored,
	}
}

// Text parses the selection as HTML and returns its visible text, with
// individual text nodes joined by single spaces.
func (p *HTMLExtractor) Text(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &lingoswap.ExtractError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if p.ignoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(parts, " "), nil
}

// ContentType returns the content type handled by this extractor.
func (p *HTMLExtractor) ContentType() string {
	return "html"
}

// Verify HTMLExtractor implements TextExtractor
var _ TextExtractor = (*HTMLExtractor)(nil)
