package browser

import (
	"context"
	"encoding/json"
)

// ConsoleLog holds the error and warning records captured from the page.
// The arrays live on the page global scope and reset with navigation; this
// system only injects the interceptors and reads them back.
type ConsoleLog struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// injectConsoleCapture installs the interceptors once. The in-page marker
// makes re-injection a no-op.
func (s *Session) injectConsoleCapture(ctx context.Context) {
	if _, err := s.runJS(ctx, consoleCaptureScript); err != nil {
		s.log.Debugf("console capture injection deferred: %v", err)
	}
}

// installConsoleCapture is the mid-load phase of the two-phase injection.
// Inline script errors can fire before any post-load injection point, so
// this polls the loading-state transition and injects as soon as the
// document is reachable at all. If parsing outruns the poll interval some
// early errors are missed; the post-load phase in synchronize guarantees
// coverage for everything after full load.
func (s *Session) installConsoleCapture(ctx context.Context) {
	_, _ = Poll(ctx, s.cfg.PollInterval(), s.cfg.PageTimeout(), func(ctx context.Context) (bool, error) {
		state, err := s.runJS(ctx, readyStateScript)
		if err != nil || state == "" {
			return false, nil
		}
		s.injectConsoleCapture(ctx)
		return true, nil
	})
}

// ConsoleMessages reads the captured error and warning records. Unparsable
// output from the page degrades to empty records; this path stays usable
// even when the page returns garbage.
func (s *Session) ConsoleMessages(ctx context.Context) (ConsoleLog, error) {
	if err := s.requireActive(); err != nil {
		return ConsoleLog{}, err
	}

	// Make sure the interceptors exist before reading, e.g. after a
	// navigation initiated by the page itself.
	s.injectConsoleCapture(ctx)

	out, err := s.runJS(ctx, consoleReadScript)
	if err != nil {
		return ConsoleLog{}, err
	}

	log := ConsoleLog{Errors: []string{}, Warnings: []string{}}
	if jsonErr := json.Unmarshal([]byte(out), &log); jsonErr != nil {
		s.log.Warnf("unparsable console capture output %q: %v", out, jsonErr)
		return ConsoleLog{Errors: []string{}, Warnings: []string{}}, nil
	}
	return log, nil
}
