package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickParsesResult(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) {
		return `{"description":"Clicked button \"Sign In\" via interactive element"}`, nil
	}}
	s := activeSession(ch)

	result, err := s.Click(context.Background(), ClickOptions{Text: "Sign In"})
	require.NoError(t, err)
	assert.Equal(t, `Clicked button "Sign In" via interactive element`, result.Description)
	assert.Nil(t, result.SelectorFound)
}

func TestClickMissIsNotAnError(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) {
		return `{"description":"No element found matching \"Frobnicate\""}`, nil
	}}
	s := activeSession(ch)

	result, err := s.Click(context.Background(), ClickOptions{Text: "Frobnicate"})
	require.NoError(t, err, "absence is a normal outcome, not a failure")
	assert.Contains(t, result.Description, "No element found")
}

func TestClickUnparsableResultDegrades(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) { return "missing value", nil }}
	s := activeSession(ch)

	result, err := s.Click(context.Background(), ClickOptions{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "click dispatched", result.Description)
}

func TestClickBindsArguments(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) { return "{}", nil }}
	s := activeSession(ch)

	x, y := 100, 250
	_, err := s.Click(context.Background(), ClickOptions{X: &x, Y: &y})
	require.NoError(t, err)
	assert.Contains(t, ch.lastJS(), `("", "", 100, 250)`)
}

func TestClickNilCoordinatesSerializeAsNull(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) { return "{}", nil }}
	s := activeSession(ch)

	_, err := s.Click(context.Background(), ClickOptions{Text: "Sign In"})
	require.NoError(t, err)
	assert.Contains(t, ch.lastJS(), `("Sign In", "", null, null)`)
}

func TestClickWaitSelectorTimesOutAsData(t *testing.T) {
	ch := &fakeChannel{onJS: jsRouter(map[string]string{
		"#result": "false", // selector poll; click call falls through to empty
	})}
	s := activeSession(ch)

	result, err := s.Click(context.Background(), ClickOptions{Text: "Go", WaitSelector: "#result"})
	require.NoError(t, err)
	require.NotNil(t, result.SelectorFound)
	assert.False(t, *result.SelectorFound)
}

func TestClickRejectsEmptyTarget(t *testing.T) {
	ch := &fakeChannel{}
	s := activeSession(ch)

	_, err := s.Click(context.Background(), ClickOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires text, a selector, a key, or coordinates")
	assert.Empty(t, ch.jsCalls, "no script may run without a target")
}

func TestClickRejectsLoneCoordinate(t *testing.T) {
	n := 100
	tests := []struct {
		name string
		opts ClickOptions
	}{
		{"x without y", ClickOptions{X: &n}},
		{"y without x", ClickOptions{Y: &n}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := &fakeChannel{}
			s := activeSession(ch)

			_, err := s.Click(context.Background(), tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "both x and y")
			assert.Empty(t, ch.jsCalls)
		})
	}
}

func TestClickKeyDispatchesKeyEvents(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) {
		return `{"description":"Pressed Enter on input"}`, nil
	}}
	s := activeSession(ch)

	result, err := s.Click(context.Background(), ClickOptions{Key: "Enter"})
	require.NoError(t, err)
	assert.Contains(t, result.Description, "Pressed Enter")
	assert.Contains(t, ch.lastJS(), `("Enter", "Enter", 13)`)
}

func TestKeyEventParams(t *testing.T) {
	tests := []struct {
		key     string
		code    string
		keyCode int
	}{
		{"Enter", "Enter", 13},
		{"Escape", "Escape", 27},
		{"Tab", "Tab", 9},
		{"a", "KeyA", 65},
		{"Z", "KeyZ", 90},
		{"7", "Digit7", 55},
		{" ", "Space", 32},
		{"F5", "F5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			code, keyCode := keyEventParams(tt.key)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.keyCode, keyCode)
		})
	}
}
