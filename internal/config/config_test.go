package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-screen/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"USERS_BASE_URL", "HTTP_ADDR", "FETCH_TIMEOUT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "CONSOLE_RENDER"} {
		t.Setenv(k, "")
	}

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/", cfg.BaseURL)
	assert.Zero(t, cfg.FetchTimeout)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
base_url: http://localhost:9000/
http_addr: ":9090"
fetch_timeout: 3s
log_level: debug
cors_allowed_origins: ["https://a.example"]
console_render: false
`)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://b.example, https://c.example")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/", cfg.BaseURL)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.ConsoleRender)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "Fail: bad timeout",
			env:     map[string]string{"FETCH_TIMEOUT": "soon"},
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "Fail: negative timeout",
			env:     map[string]string{"FETCH_TIMEOUT": "-1s"},
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "Fail: bad log level",
			env:     map[string]string{"LOG_LEVEL": "loud"},
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "Fail: bad console flag",
			env:     map[string]string{"CONSOLE_RENDER": "maybe"},
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "Fail: broken yaml",
			file:    "base_url: [",
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "Fail: empty base url in file",
			file:    `base_url: ""`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := config.Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
