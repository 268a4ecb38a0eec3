package browser

import (
	"context"
	"strings"
	"sync"

	"github.com/sable-dev/sable/pkg/config"
	"github.com/sable-dev/sable/pkg/logging"
	"github.com/sable-dev/sable/pkg/osa"
)

// Channel is the automation transport the session drives. osa.Channel is
// the production implementation; tests substitute an in-memory fake.
type Channel interface {
	RunAppleScript(ctx context.Context, script string) (string, error)
	DoJavaScript(ctx context.Context, js string) (string, error)
	TellBrowser(ctx context.Context, statements ...string) (string, error)
	ReadDefault(ctx context.Context, domain, key string) (string, error)
	FrontWindowID(ctx context.Context) (int, error)
	CaptureWindow(ctx context.Context, windowID int, path string) error
}

// Session owns the lifecycle of one managed browser window. It is a
// two-state machine: Open moves it from inactive to active, Close back.
// Every other operation asserts the active state.
//
// Operations are strictly sequential; the mutex only protects the state
// flag against a misbehaving caller, it does not make concurrent page
// operations meaningful.
type Session struct {
	ch  Channel
	cfg *config.Config
	log *logging.Logger

	mu     sync.Mutex
	active bool
}

// NewSession creates an inactive session over the given channel.
func NewSession(ch Channel, cfg *config.Config, log *logging.Logger) *Session {
	return &Session{ch: ch, cfg: cfg, log: log}
}

// Active reports whether the session is currently active.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Session) requireActive() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return ErrNoSession
	}
	return nil
}

// Open creates the managed browser window, positions it according to the
// configured bounds, and activates the session.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return ErrSessionActive
	}
	s.mu.Unlock()

	offset := s.cfg.BoundsOffset
	_, err := s.ch.TellBrowser(ctx,
		"activate",
		"make new document",
		osa.SetBoundsStmt(offset, offset, s.cfg.WindowWidth, s.cfg.WindowHeight),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.active = true
	s.mu.Unlock()
	s.log.Infof("session opened (%dx%d at offset %d)", s.cfg.WindowWidth, s.cfg.WindowHeight, offset)
	return nil
}

// Close closes the managed window and deactivates the session. The session
// is marked inactive even when closing the window fails, so a window the
// user already closed by hand does not wedge the state machine.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return ErrNoSession
	}
	s.active = false
	s.mu.Unlock()

	if _, err := s.ch.TellBrowser(ctx, "close front window"); err != nil {
		s.log.Warnf("closing browser window failed: %v", err)
		return err
	}
	s.log.Infof("session closed")
	return nil
}

// runJS serializes a function literal with its arguments and executes the
// resulting expression in the current tab.
func (s *Session) runJS(ctx context.Context, fn string, args ...any) (string, error) {
	expr, err := osa.Call(fn, args...)
	if err != nil {
		return "", err
	}
	return s.ch.DoJavaScript(ctx, expr)
}

// Execute runs a caller-supplied script in the page. Function literals are
// wrapped into a self-invoking call; scripts that are already self-invoking
// or plain expressions run as given.
func (s *Session) Execute(ctx context.Context, script string) (string, error) {
	if err := s.requireActive(); err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(script)
	if strings.HasPrefix(trimmed, "function") || strings.HasPrefix(trimmed, "async function") {
		return s.runJS(ctx, trimmed)
	}
	// Already self-invoking scripts and bare expressions run as given.
	return s.ch.DoJavaScript(ctx, trimmed)
}

// Title returns the current page title.
func (s *Session) Title(ctx context.Context) (string, error) {
	if err := s.requireActive(); err != nil {
		return "", err
	}
	return s.runJS(ctx, "function() { return document.title; }")
}

// URL returns the current page URL.
func (s *Session) URL(ctx context.Context) (string, error) {
	if err := s.requireActive(); err != nil {
		return "", err
	}
	return s.runJS(ctx, "function() { return window.location.href; }")
}
