package browser

import (
	"context"
	"fmt"
)

// DefaultReadLimit caps extracted text length in characters.
const DefaultReadLimit = 20000

// PageContent is the readable form of the page or of a selector subtree.
type PageContent struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
	Truncated   bool   `json:"truncated,omitempty"`
}

// ReadOptions configures content extraction.
type ReadOptions struct {
	// Selector limits extraction to the first matching element's subtree.
	Selector string

	// MaxLength caps the extracted text; zero means DefaultReadLimit.
	MaxLength int
}

// Read extracts the page's readable text. A selector that matches nothing
// is reported in the content text, not as an error.
func (s *Session) Read(ctx context.Context, opts ReadOptions) (PageContent, error) {
	if err := s.requireActive(); err != nil {
		return PageContent{}, err
	}

	raw, err := s.runJS(ctx, readHTMLScript, opts.Selector)
	if err != nil {
		return PageContent{}, err
	}
	if raw == "" {
		if opts.Selector != "" {
			return PageContent{Text: fmt.Sprintf("No element found for selector %q", opts.Selector)}, nil
		}
		return PageContent{Text: ""}, nil
	}

	limit := opts.MaxLength
	if limit <= 0 {
		limit = DefaultReadLimit
	}
	return extractReadable(raw, limit), nil
}
