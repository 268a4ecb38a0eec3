package browser

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sable-dev/sable/pkg/osa"
)

// NavigateOptions describes a navigation target: either an absolute URL or
// a history move by direction and step count.
type NavigateOptions struct {
	// URL is the absolute target; http and https only.
	URL string

	// Direction moves through history, "back" or "forward", when URL is
	// empty.
	Direction string

	// Steps is the history distance; zero means one.
	Steps int

	// Selector, when set, is waited for after the load settles.
	Selector string
}

// PageState is the post-operation snapshot the tool layer assembles
// responses from.
type PageState struct {
	Title         string
	URL           string
	SelectorFound *bool
}

// Navigate drives the current tab to a URL or through history, then runs
// the synchronization sequence (console capture, load wait, optional
// selector wait).
func (s *Session) Navigate(ctx context.Context, opts NavigateOptions) (PageState, error) {
	if err := s.requireActive(); err != nil {
		return PageState{}, err
	}

	switch {
	case opts.URL != "":
		if err := s.checkURL(opts.URL); err != nil {
			return PageState{}, err
		}
		if _, err := s.ch.TellBrowser(ctx, osa.SetCurrentURLStmt(opts.URL)); err != nil {
			return PageState{}, err
		}
	case opts.Direction != "":
		steps := opts.Steps
		if steps <= 0 {
			steps = 1
		}
		if opts.Direction == "back" {
			steps = -steps
		} else if opts.Direction != "forward" {
			return PageState{}, fmt.Errorf("invalid direction %q (must be back or forward)", opts.Direction)
		}
		if _, err := s.runJS(ctx, historyScript, steps); err != nil {
			return PageState{}, err
		}
	default:
		return PageState{}, fmt.Errorf("navigate requires a url or a direction")
	}

	return s.settle(ctx, opts.Selector)
}

// Refresh reloads the current page; hard bypasses the cache.
func (s *Session) Refresh(ctx context.Context, hard bool, selector string) (PageState, error) {
	if err := s.requireActive(); err != nil {
		return PageState{}, err
	}
	if _, err := s.runJS(ctx, reloadScript, hard); err != nil {
		return PageState{}, err
	}
	return s.settle(ctx, selector)
}

// settle runs post-navigation synchronization and snapshots the page.
func (s *Session) settle(ctx context.Context, selector string) (PageState, error) {
	found := s.synchronize(ctx, selector)

	state := PageState{SelectorFound: found}
	if title, err := s.runJS(ctx, "function() { return document.title; }"); err == nil {
		state.Title = title
	}
	if href, err := s.runJS(ctx, "function() { return window.location.href; }"); err == nil {
		state.URL = href
	}
	return state, nil
}

// checkURL validates the scheme and enforces the configured host allowlist.
func (s *Session) checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if !s.cfg.HostAllowed(u.Hostname()) {
		return fmt.Errorf("navigation to host %q is not allowed", u.Hostname())
	}
	return nil
}
