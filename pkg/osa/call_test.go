package osa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	t.Run("serializes arguments structurally", func(t *testing.T) {
		expr, err := Call("function(a, b) { return a + b; }", "it's", 42)
		require.NoError(t, err)
		assert.Equal(t, `(function(a, b) { return a + b; })("it's", 42)`, expr)
	})

	t.Run("no arguments yields empty call", func(t *testing.T) {
		expr, err := Call("function() { return document.title; }")
		require.NoError(t, err)
		assert.Equal(t, "(function() { return document.title; })()", expr)
	})

	t.Run("escapes quotes inside string arguments", func(t *testing.T) {
		expr, err := Call("function(s) { return s; }", `say "hi"`)
		require.NoError(t, err)
		assert.Equal(t, `(function(s) { return s; })("say \"hi\"")`, expr)
	})

	t.Run("structured arguments survive as JSON", func(t *testing.T) {
		expr, err := Call("function(opts) { return opts.text; }", map[string]any{"text": "ok"})
		require.NoError(t, err)
		assert.Equal(t, `(function(opts) { return opts.text; })({"text":"ok"})`, expr)
	})

	t.Run("rejects unserializable arguments", func(t *testing.T) {
		_, err := Call("function(f) {}", func() {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not serializable")
	})

	t.Run("rejects empty script", func(t *testing.T) {
		_, err := Call("   ")
		require.Error(t, err)
	})
}

func TestCallDoesNotDoubleWrap(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"iife", "(function() { return 1; })()"},
		{"arrow iife", "(() => 1)()"},
		{"async iife", "(async () => { await fetch('/'); })()"},
		{"leading whitespace", "  \n(function() {})()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Call(tt.script)
			require.NoError(t, err)
			assert.NotContains(t, expr, "((function", "script must not be wrapped twice")
			assert.NotContains(t, expr, "((()")
		})
	}
}

func TestCallSelfInvokingWithArgsFails(t *testing.T) {
	_, err := Call("(function(a) { return a; })()", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already self-invoking")
}
