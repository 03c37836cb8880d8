// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	TMDB      TMDBConfig      `yaml:"tmdb"`
	Streaming StreamingConfig `yaml:"streaming"`
	Search    SearchConfig    `yaml:"search"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// TMDBConfig defines the title lookup provider settings. An empty APIKey
// disables free-text search but not direct ID lookups.
type TMDBConfig struct {
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Configured reports whether free-text title search can be used.
func (t *TMDBConfig) Configured() bool {
	return t.APIKey != ""
}

// StreamingConfig defines the availability provider settings. APIKey is
// required for every request; its absence is surfaced per request, not at
// load time, so the server can still start and report the problem.
type StreamingConfig struct {
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Host      string        `yaml:"host"`
	Countries []string      `yaml:"countries"`
	Timeout   time.Duration `yaml:"timeout"`

	// TitleFallback enables the speculative alternate title-search endpoints
	// when no TMDB key is configured. Off by default; the provider does not
	// document these endpoints.
	TitleFallback     bool     `yaml:"title_fallback"`
	FallbackEndpoints []string `yaml:"fallback_endpoints"`
}

// Configured reports whether the availability provider can be called.
func (s *StreamingConfig) Configured() bool {
	return s.APIKey != ""
}

// SearchConfig defines pagination bounds for the search endpoint.
type SearchConfig struct {
	DefaultPerPage int `yaml:"default_per_page"`
	MaxPerPage     int `yaml:"max_per_page"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration built purely from defaults and the
// conventional environment variables (TMDB_API_KEY, RAPIDAPI_KEY). Used when
// no config file is present.
func Default() *Config {
	cfg := &Config{
		TMDB:      TMDBConfig{APIKey: os.Getenv("TMDB_API_KEY")},
		Streaming: StreamingConfig{APIKey: os.Getenv("RAPIDAPI_KEY")},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyTMDBDefaults(&cfg.TMDB)
	applyStreamingDefaults(&cfg.Streaming)
	applySearchDefaults(&cfg.Search)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyTMDBDefaults(t *TMDBConfig) {
	if t.BaseURL == "" {
		t.BaseURL = "https://api.themoviedb.org/3"
	}
	if t.Language == "" {
		t.Language = "pt-BR"
	}
	if t.Timeout == 0 {
		t.Timeout = 10 * time.Second
	}
}

func applyStreamingDefaults(s *StreamingConfig) {
	if s.BaseURL == "" {
		s.BaseURL = "https://streaming-availability.p.rapidapi.com"
	}
	if s.Host == "" {
		s.Host = "streaming-availability.p.rapidapi.com"
	}
	if len(s.Countries) == 0 {
		s.Countries = []string{"br", "us"}
	}
	if s.Timeout == 0 {
		s.Timeout = 10 * time.Second
	}
	if len(s.FallbackEndpoints) == 0 {
		s.FallbackEndpoints = []string{"/getByTitle", "/find"}
	}
}

func applySearchDefaults(s *SearchConfig) {
	if s.DefaultPerPage == 0 {
		s.DefaultPerPage = 20
	}
	if s.MaxPerPage == 0 {
		s.MaxPerPage = 100
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 0 and 65535 (got %d)", cfg.Server.Port))
	}
	if !strings.HasPrefix(cfg.TMDB.BaseURL, "http") {
		errs = append(errs, fmt.Errorf("tmdb.base_url must be an http(s) URL (got %q)", cfg.TMDB.BaseURL))
	}
	if !strings.HasPrefix(cfg.Streaming.BaseURL, "http") {
		errs = append(errs, fmt.Errorf("streaming.base_url must be an http(s) URL (got %q)", cfg.Streaming.BaseURL))
	}
	for _, c := range cfg.Streaming.Countries {
		if len(c) != 2 {
			errs = append(errs, fmt.Errorf("streaming.countries entries must be ISO 3166-1 alpha-2 codes (got %q)", c))
		}
	}
	if cfg.Search.DefaultPerPage > cfg.Search.MaxPerPage {
		errs = append(errs, fmt.Errorf(
			"search.default_per_page (%d) must not exceed search.max_per_page (%d)",
			cfg.Search.DefaultPerPage, cfg.Search.MaxPerPage,
		))
	}

	return errors.Join(errs...)
}
