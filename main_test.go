package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no file", args: []string{"/usr/local/bin/orgview"}},
		{name: "too many", args: []string{"/usr/local/bin/orgview", "a.org", "b.org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := run(tt.args, &stderr)

			assert.Equal(t, 1, code)
			assert.Equal(t, "Usage: orgview <file-path>\n", stderr.String())
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Setenv("ORGVIEW_DEBUG", "")
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.org")

	code := run([]string{"orgview", path}, &stderr)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "Error loading document:"), stderr.String())
	assert.Contains(t, stderr.String(), "missing.org")
}

func TestProgramName(t *testing.T) {
	assert.Equal(t, "orgview", programName(nil))
	assert.Equal(t, "orgview", programName([]string{""}))
	assert.Equal(t, "view", programName([]string{"./bin/view"}))
}

func TestConfigFromEnv(t *testing.T) {
	env := map[string]string{
		"HOME":             "/home/me",
		"ORGVIEW_DEBUG":    "1",
		"ORGVIEW_LOG_FILE": "$HOME/logs/orgview.log",
	}

	cfg := configFromEnv(func(k string) string { return env[k] })

	assert.True(t, cfg.Debug)
	assert.Equal(t, "/home/me/logs/orgview.log", cfg.LogFile)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	env := map[string]string{"HOME": "/home/me"}

	cfg := configFromEnv(func(k string) string { return env[k] })

	assert.False(t, cfg.Debug)
	assert.Equal(t, "/home/me/.local/share/orgview/debug.log", cfg.LogFile)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	logger, closer := newLogger(Config{Debug: true, LogFile: path})
	logger.Printf("loaded %s", "notes.org")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "orgview: ")
	assert.Contains(t, string(data), "loaded notes.org")
}

func TestNewLoggerDisabled(t *testing.T) {
	logger, closer := newLogger(Config{})

	assert.NotPanics(t, func() { logger.Printf("dropped") })
	assert.NoError(t, closer.Close())
}
