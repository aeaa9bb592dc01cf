// Package config loads typeout settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// History backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var backends = []string{BackendJSON, BackendSQLite, BackendMemory}

// Config holds runtime settings. Command-line flags are applied on top of
// the parsed environment.
type Config struct {
	HistoryBackend string `env:"TYPEOUT_RECENT_BACKEND" envDefault:"json"`
	HistoryPath    string `env:"TYPEOUT_RECENT_PATH"`
	HistoryLimit   int    `env:"TYPEOUT_RECENT_LIMIT" envDefault:"10"`

	StartDir string `env:"TYPEOUT_START_DIR"`

	LogFile  string `env:"TYPEOUT_LOG_FILE"`
	LogLevel string `env:"TYPEOUT_LOG_LEVEL" envDefault:"info"`

	ShowLineNumbers bool `env:"TYPEOUT_LINE_NUMBERS" envDefault:"true"`
	TabWidth        int  `env:"TYPEOUT_TAB_WIDTH" envDefault:"4"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.HistoryBackend = strings.ToLower(strings.TrimSpace(cfg.HistoryBackend))
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !slices.Contains(backends, c.HistoryBackend) {
		return fmt.Errorf("unknown history backend %q (want one of %s)", c.HistoryBackend, strings.Join(backends, ", "))
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history limit must be positive, got %d", c.HistoryLimit)
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab width must be positive, got %d", c.TabWidth)
	}
	return nil
}

// ResolveHistoryPath fills HistoryPath with the default location for the
// configured backend when it is empty: <UserConfigDir>/typeout/recent.json
// or recent.db.
func (c Config) ResolveHistoryPath() (Config, error) {
	if c.HistoryPath != "" || c.HistoryBackend == BackendMemory {
		return c, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return c, fmt.Errorf("locate config dir: %w", err)
	}
	name := "recent.json"
	if c.HistoryBackend == BackendSQLite {
		name = "recent.db"
	}
	c.HistoryPath = filepath.Join(dir, "typeout", name)
	return c, nil
}
