package browser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navRouter() func(string) (string, error) {
	return jsRouter(map[string]string{
		"readyState":     "complete",
		"document.title": "Example Domain",
		"location.href":  "https://example.com/",
	})
}

func TestNavigateToURL(t *testing.T) {
	ch := &fakeChannel{onJS: navRouter()}
	s := activeSession(ch)

	state, err := s.Navigate(context.Background(), NavigateOptions{URL: "https://example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "Example Domain", state.Title)
	assert.Equal(t, "https://example.com/", state.URL)
	assert.Nil(t, state.SelectorFound)

	require.NotEmpty(t, ch.tellCalls)
	assert.Contains(t, ch.tellCalls[0][0], `set URL of current tab of front window to "https://example.com/"`)
}

func TestNavigateRejectsNonHTTPSchemes(t *testing.T) {
	ch := &fakeChannel{}
	s := activeSession(ch)

	for _, raw := range []string{"ftp://example.com/", "file:///etc/passwd", "javascript:alert(1)"} {
		_, err := s.Navigate(context.Background(), NavigateOptions{URL: raw})
		require.Error(t, err, raw)
		assert.Contains(t, err.Error(), "scheme")
	}
	assert.Empty(t, ch.tellCalls, "rejected navigations must not reach the browser")
}

func TestNavigateEnforcesHostAllowlist(t *testing.T) {
	ch := &fakeChannel{onJS: navRouter()}
	s := activeSession(ch)
	require.NoError(t, s.cfg.SetAllowedHosts([]string{"*.example.com", "example.com"}))

	_, err := s.Navigate(context.Background(), NavigateOptions{URL: "https://docs.example.com/page"})
	require.NoError(t, err)

	_, err = s.Navigate(context.Background(), NavigateOptions{URL: "https://evil.test/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestNavigateHistory(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		steps     int
		wantArg   string
	}{
		{"back default one step", "back", 0, "(-1)"},
		{"back three steps", "back", 3, "(-3)"},
		{"forward default", "forward", 0, "(1)"},
		{"forward two", "forward", 2, "(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := &fakeChannel{onJS: navRouter()}
			s := activeSession(ch)

			_, err := s.Navigate(context.Background(), NavigateOptions{Direction: tt.direction, Steps: tt.steps})
			require.NoError(t, err)

			var historyCall string
			for _, js := range ch.jsCalls {
				if strings.Contains(js, "history.go") {
					historyCall = js
				}
			}
			require.NotEmpty(t, historyCall, "expected a history.go dispatch")
			assert.Contains(t, historyCall, tt.wantArg)
		})
	}
}

func TestNavigateInvalidDirection(t *testing.T) {
	s := activeSession(&fakeChannel{})
	_, err := s.Navigate(context.Background(), NavigateOptions{Direction: "sideways"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid direction")
}

func TestNavigateRequiresTarget(t *testing.T) {
	s := activeSession(&fakeChannel{})
	_, err := s.Navigate(context.Background(), NavigateOptions{})
	require.Error(t, err)
}

func TestNavigateWaitsForSelector(t *testing.T) {
	ch := &fakeChannel{onJS: jsRouter(map[string]string{
		"readyState": "complete",
		"#content":   "true",
	})}
	s := activeSession(ch)

	state, err := s.Navigate(context.Background(), NavigateOptions{
		URL:      "https://example.com/",
		Selector: "#content",
	})
	require.NoError(t, err)
	require.NotNil(t, state.SelectorFound)
	assert.True(t, *state.SelectorFound)
}

func TestRefreshHard(t *testing.T) {
	ch := &fakeChannel{onJS: navRouter()}
	s := activeSession(ch)

	_, err := s.Refresh(context.Background(), true, "")
	require.NoError(t, err)

	var reloadCall string
	for _, js := range ch.jsCalls {
		if strings.Contains(js, "reload") {
			reloadCall = js
		}
	}
	require.NotEmpty(t, reloadCall)
	assert.Contains(t, reloadCall, "(true)")
}

func TestSettleSurvivesSnapshotFailures(t *testing.T) {
	ch := &fakeChannel{onJS: func(js string) (string, error) {
		if strings.Contains(js, "readyState") {
			return "complete", nil
		}
		return "", errScriptFailed
	}}
	s := activeSession(ch)

	state, err := s.Navigate(context.Background(), NavigateOptions{URL: "https://example.com/"})
	require.NoError(t, err, "snapshot reads are best effort")
	assert.Empty(t, state.Title)
	assert.Empty(t, state.URL)
}
