package browser

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Safari records the default search engine as a reverse-domain identifier,
// e.g. "com.google" or "com.duckduckgo".
const (
	searchDefaultsDomain = "com.apple.Safari"
	searchDefaultsKey    = "SearchProviderIdentifier"
)

// SearchURL resolves the host's configured default search engine and builds
// a query URL for it. An unreadable or malformed provider identifier is a
// hard failure; guessing a provider would silently send queries elsewhere.
func (s *Session) SearchURL(ctx context.Context, query string) (string, error) {
	id, err := s.ch.ReadDefault(ctx, searchDefaultsDomain, searchDefaultsKey)
	if err != nil {
		return "", fmt.Errorf("failed to resolve default search engine: %w", err)
	}

	domain, err := providerDomain(id)
	if err != nil {
		return "", fmt.Errorf("failed to resolve default search engine: %w", err)
	}

	return "https://" + domain + "/search?q=" + url.QueryEscape(query), nil
}

// providerDomain reverses the dot-separated segments of a reverse-domain
// provider identifier: "com.google" becomes "google.com".
func providerDomain(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("empty search provider identifier")
	}

	segments := strings.Split(id, ".")
	if len(segments) < 2 {
		return "", fmt.Errorf("malformed search provider identifier %q", id)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	for _, seg := range segments {
		if seg == "" {
			return "", fmt.Errorf("malformed search provider identifier %q", id)
		}
	}
	return strings.Join(segments, "."), nil
}

// Search runs a query through the default search engine and synchronizes
// on the result page.
func (s *Session) Search(ctx context.Context, query, selector string) (PageState, error) {
	if err := s.requireActive(); err != nil {
		return PageState{}, err
	}

	target, err := s.SearchURL(ctx, query)
	if err != nil {
		return PageState{}, err
	}
	return s.Navigate(ctx, NavigateOptions{URL: target, Selector: selector})
}
