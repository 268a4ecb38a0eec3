package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sable-dev/sable/pkg/config"
	"github.com/sable-dev/sable/pkg/logging"
)

// fakeChannel is an in-memory automation channel. JavaScript dispatches are
// routed through onJS, AppleScript tell blocks through onTell; both default
// to empty success. Every dispatched script is recorded for assertions.
type fakeChannel struct {
	mu sync.Mutex

	onJS   func(js string) (string, error)
	onTell func(stmts []string) (string, error)

	defaultsOut string
	defaultsErr error

	windowID    int
	windowErr   error
	onCapture   func(path string) error
	captureErr  error

	jsCalls   []string
	tellCalls [][]string
}

func (f *fakeChannel) RunAppleScript(_ context.Context, script string) (string, error) {
	return f.TellBrowser(context.Background(), script)
}

func (f *fakeChannel) DoJavaScript(_ context.Context, js string) (string, error) {
	f.mu.Lock()
	f.jsCalls = append(f.jsCalls, js)
	f.mu.Unlock()
	if f.onJS != nil {
		return f.onJS(js)
	}
	return "", nil
}

func (f *fakeChannel) TellBrowser(_ context.Context, stmts ...string) (string, error) {
	f.mu.Lock()
	f.tellCalls = append(f.tellCalls, stmts)
	f.mu.Unlock()
	if f.onTell != nil {
		return f.onTell(stmts)
	}
	return "", nil
}

func (f *fakeChannel) ReadDefault(context.Context, string, string) (string, error) {
	return f.defaultsOut, f.defaultsErr
}

func (f *fakeChannel) FrontWindowID(context.Context) (int, error) {
	return f.windowID, f.windowErr
}

func (f *fakeChannel) CaptureWindow(_ context.Context, _ int, path string) error {
	if f.captureErr != nil {
		return f.captureErr
	}
	if f.onCapture != nil {
		return f.onCapture(path)
	}
	return nil
}

func (f *fakeChannel) lastJS() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.jsCalls) == 0 {
		return ""
	}
	return f.jsCalls[len(f.jsCalls)-1]
}

func (f *fakeChannel) jsCallCount(substr string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, js := range f.jsCalls {
		if strings.Contains(js, substr) {
			n++
		}
	}
	return n
}

// testConfig returns a config with waits short enough for unit tests.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.PollIntervalMS = 1
	cfg.PageTimeoutMS = 30
	return cfg
}

// activeSession returns an open session over the fake channel.
func activeSession(ch *fakeChannel) *Session {
	s := NewSession(ch, testConfig(), logging.Discard())
	s.active = true
	return s
}

// jsRouter builds an onJS handler that answers by script substring, e.g.
// routing readyState queries separately from page info queries.
func jsRouter(routes map[string]string) func(string) (string, error) {
	return func(js string) (string, error) {
		for marker, out := range routes {
			if strings.Contains(js, marker) {
				return out, nil
			}
		}
		return "", nil
	}
}

var errScriptFailed = fmt.Errorf("execution error: some AppleScript problem (-2700)")
