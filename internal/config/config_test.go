package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodgo4k/cade-meu-filme/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "pt-BR", cfg.TMDB.Language)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "streaming-availability.p.rapidapi.com", cfg.Streaming.Host)
	assert.Equal(t, []string{"br", "us"}, cfg.Streaming.Countries)
	assert.Equal(t, 20, cfg.Search.DefaultPerPage)
	assert.Equal(t, 100, cfg.Search.MaxPerPage)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Streaming.TitleFallback)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("CMF_TEST_TMDB_KEY", "secret-tmdb")
	t.Setenv("CMF_TEST_RAPID_KEY", "secret-rapid")

	path := writeConfig(t, `
tmdb:
  api_key: ${CMF_TEST_TMDB_KEY}
streaming:
  api_key: ${CMF_TEST_RAPID_KEY}
  countries: [br]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "secret-tmdb", cfg.TMDB.APIKey)
	assert.Equal(t, "secret-rapid", cfg.Streaming.APIKey)
	assert.True(t, cfg.TMDB.Configured())
	assert.True(t, cfg.Streaming.Configured())
	assert.Equal(t, []string{"br"}, cfg.Streaming.Countries)
}

func TestLoad_MissingKeysAreNotFatal(t *testing.T) {
	t.Parallel()

	// Missing credentials degrade at request time, not at startup.
	path := writeConfig(t, "logging:\n  level: debug\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.TMDB.Configured())
	assert.False(t, cfg.Streaming.Configured())
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad port",
			yaml:    "server:\n  port: 70000\n",
			wantErr: "server.port",
		},
		{
			name:    "bad tmdb url",
			yaml:    "tmdb:\n  base_url: ftp://example.com\n",
			wantErr: "tmdb.base_url",
		},
		{
			name:    "bad country code",
			yaml:    "streaming:\n  countries: [brazil]\n",
			wantErr: "streaming.countries",
		},
		{
			name:    "per page over max",
			yaml:    "search:\n  default_per_page: 50\n  max_per_page: 10\n",
			wantErr: "default_per_page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.yaml)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := config.Load("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault_ReadsConventionalEnvVars(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "tk")
	t.Setenv("RAPIDAPI_KEY", "rk")

	cfg := config.Default()
	assert.Equal(t, "tk", cfg.TMDB.APIKey)
	assert.Equal(t, "rk", cfg.Streaming.APIKey)
	assert.Equal(t, 8080, cfg.Server.Port)
}
