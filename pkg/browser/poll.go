package browser

import (
	"context"
	"time"
)

// Poll samples predicate at the given interval until it reports true or
// the timeout elapses. There is no event channel from the browser process,
// so every "has something happened" question is answered by sampling.
//
// Timing out is not an error: the caller gets false and decides what that
// means. Only a predicate error or context cancellation aborts the loop.
func Poll(ctx context.Context, interval, timeout time.Duration, predicate func(context.Context) (bool, error)) (bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		done, err := predicate(ctx)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// WaitForLoad polls the document ready state until the page reports fully
// loaded or the configured timeout elapses. Best effort: a page that never
// reaches a terminal state returns false rather than an error.
func (s *Session) WaitForLoad(ctx context.Context) bool {
	loaded, err := Poll(ctx, s.cfg.PollInterval(), s.cfg.PageTimeout(), func(ctx context.Context) (bool, error) {
		state, err := s.runJS(ctx, readyStateScript)
		if err != nil {
			// Mid-navigation the page context may be briefly unreachable;
			// that is a "not ready yet" answer, not a failure.
			return false, nil
		}
		return state == "complete", nil
	})
	if err != nil {
		return false
	}
	return loaded
}

// WaitForSelector polls for the presence of a selector until found or the
// configured timeout elapses. Absence within the timeout is reported as
// false, never as an error.
func (s *Session) WaitForSelector(ctx context.Context, selector string) bool {
	found, err := Poll(ctx, s.cfg.PollInterval(), s.cfg.PageTimeout(), func(ctx context.Context) (bool, error) {
		out, err := s.runJS(ctx, selectorPresentScript, selector)
		if err != nil {
			return false, nil
		}
		return out == "true", nil
	})
	if err != nil {
		return false
	}
	return found
}

// synchronize is the post-navigation sequence shared by navigate, refresh,
// search, and tab opening: install console capture in two phases around the
// load wait, then optionally wait for a selector. The returned pointer is
// nil when no selector was requested.
func (s *Session) synchronize(ctx context.Context, selector string) *bool {
	s.installConsoleCapture(ctx)
	s.WaitForLoad(ctx)
	// Late re-injection; a no-op when the mid-load phase landed.
	s.injectConsoleCapture(ctx)

	if selector == "" {
		return nil
	}
	found := s.WaitForSelector(ctx, selector)
	return &found
}
