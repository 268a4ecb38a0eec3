package osa

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultBrowser is the application addressed by the automation channel.
const DefaultBrowser = "Safari"

// Channel is the out-of-process automation transport: it issues AppleScript
// to the browser, reads macOS defaults, and drives the screen-capture
// utility. Commands are synchronous; once dispatched, the caller waits for
// the result.
type Channel struct {
	cmd Commander
	app string
}

// NewChannel returns a Channel targeting the default browser.
func NewChannel(cmd Commander) *Channel {
	return &Channel{cmd: cmd, app: DefaultBrowser}
}

// App returns the application the channel addresses.
func (c *Channel) App() string {
	return c.app
}

// RunAppleScript executes a complete AppleScript and returns trimmed stdout.
func (c *Channel) RunAppleScript(ctx context.Context, script string) (string, error) {
	out, err := c.cmd.Output(ctx, "osascript", "-e", script)
	if err != nil {
		return "", fmt.Errorf("automation script failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// DoJavaScript executes a JavaScript expression in the current tab of the
// front window and returns its result as a string.
func (c *Channel) DoJavaScript(ctx context.Context, js string) (string, error) {
	return c.RunAppleScript(ctx, Tell(c.app, DoJavaScriptStmt(js)))
}

// TellBrowser executes one or more statements inside a tell block addressed
// to the browser.
func (c *Channel) TellBrowser(ctx context.Context, statements ...string) (string, error) {
	return c.RunAppleScript(ctx, Tell(c.app, statements...))
}

// ReadDefault reads a key from a macOS defaults domain. Failure to read is
// propagated; callers that need the value must not guess one.
func (c *Channel) ReadDefault(ctx context.Context, domain, key string) (string, error) {
	out, err := c.cmd.Output(ctx, "defaults", "read", domain, key)
	if err != nil {
		return "", fmt.Errorf("defaults read %s %s: %w", domain, key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// FrontWindowID returns the window-server id of the browser's front window,
// used to scope screen capture to that window.
func (c *Channel) FrontWindowID(ctx context.Context) (int, error) {
	out, err := c.TellBrowser(ctx, "get id of front window")
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected window id %q: %w", out, err)
	}
	return id, nil
}

// CaptureWindow captures the window with the given id to path as PNG.
// -x suppresses the capture sound, -o omits the window shadow.
func (c *Channel) CaptureWindow(ctx context.Context, windowID int, path string) error {
	_, err := c.cmd.Output(ctx, "screencapture", "-x", "-o", "-l", strconv.Itoa(windowID), path)
	if err != nil {
		return fmt.Errorf("screen capture failed: %w", err)
	}
	return nil
}
