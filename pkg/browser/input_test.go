package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeBindsArguments(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) { return "{}", nil }}
	s := activeSession(ch)

	_, err := s.Type(context.Background(), TypeOptions{
		Text:     "hello world",
		Selector: "#search",
		Append:   true,
		Submit:   true,
	})
	require.NoError(t, err)
	assert.Contains(t, ch.lastJS(), `("hello world", "#search", true, true)`)
}

func TestTypeReportsDescription(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) {
		return `{"description":"Typed into input#q"}`, nil
	}}
	s := activeSession(ch)

	desc, err := s.Type(context.Background(), TypeOptions{Text: "weather"})
	require.NoError(t, err)
	assert.Equal(t, "Typed into input#q", desc)
}

func TestTypeMissingTargetIsNotAnError(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) {
		return `{"description":"No editable element found"}`, nil
	}}
	s := activeSession(ch)

	desc, err := s.Type(context.Background(), TypeOptions{Text: "x", Selector: "#nope"})
	require.NoError(t, err)
	assert.Contains(t, desc, "No editable element")
}

func TestTypeUnparsableResultDegrades(t *testing.T) {
	ch := &fakeChannel{onJS: func(string) (string, error) { return "missing value", nil }}
	s := activeSession(ch)

	desc, err := s.Type(context.Background(), TypeOptions{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "text written", desc)
}

func TestTypeQuotingSurvivesTheBoundary(t *testing.T) {
	var got string
	ch := &fakeChannel{onJS: func(js string) (string, error) {
		got = js
		return "{}", nil
	}}
	s := activeSession(ch)

	_, err := s.Type(context.Background(), TypeOptions{Text: `it's a "test" \ done`})
	require.NoError(t, err)
	// The channel fake sits below the AppleScript quoting layer, so the
	// payload arrives as plain JSON with only JSON's own escapes.
	assert.Contains(t, got, `"it's a \"test\" \\ done"`)
}
