package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultPageTimeoutMS, cfg.PageTimeoutMS)
	assert.Equal(t, DefaultWindowWidth, cfg.WindowWidth)
	assert.Equal(t, 30*time.Second, cfg.PageTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
page_timeout_ms: 5000
window_width: 1280
allowed_hosts:
  - "*.example.com"
  - "example.com"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.PageTimeoutMS)
	assert.Equal(t, 1280, cfg.WindowWidth)
	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)
	assert.Equal(t, DefaultPollIntervalMS, cfg.PollIntervalMS)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_timeout_ms: [broken"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SABLE_PAGE_TIMEOUT_MS", "1234")
	t.Setenv("SABLE_WINDOW_HEIGHT", "800")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.PageTimeoutMS)
	assert.Equal(t, 800, cfg.WindowHeight)
}

func TestHostAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		host    string
		want    bool
	}{
		{"empty list allows everything", nil, "anything.dev", true},
		{"exact match", []string{"example.com"}, "example.com", true},
		{"glob match", []string{"*.example.com"}, "docs.example.com", true},
		{"no match", []string{"*.example.com"}, "evil.com", false},
		{"bare domain does not match subdomain glob", []string{"*.example.com"}, "example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			require.NoError(t, cfg.SetAllowedHosts(tt.allowed))
			assert.Equal(t, tt.want, cfg.HostAllowed(tt.host))
		})
	}
}

func TestInvalidHostPatternFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allowed_hosts: [\"[\"]"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed_hosts")
}
