package browser

import "errors"

// Precondition violations. These are the only fatal session-level
// failures: every operation except Open requires an active session, and
// Open requires an inactive one. Resolution misses and timeouts are
// ordinary results, not errors.
var (
	// ErrNoSession is returned when an operation other than Open runs
	// without an active session.
	ErrNoSession = errors.New("no active browser session; open one first")

	// ErrSessionActive is returned when Open runs while a session is
	// already active.
	ErrSessionActive = errors.New("browser session already active")
)
