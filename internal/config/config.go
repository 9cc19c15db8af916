package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"personal-kanban/internal/document"
)

// Log formats accepted in LOG_FORMAT.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	Storage      string
	DBPath       string
	RedisURL     string
	StorageKey   string
	APIPort      string
	LogLevel     slog.Level
	LogFormat    string
	SettingsPath string
	Board        BoardSettings
}

// BoardSettings are the board tunables read from the optional TOML settings file.
type BoardSettings struct {
	DefaultCategories []string `toml:"default_categories"`
	HistoryLimit      int      `toml:"history_limit"`
	NoticeTTL         Duration `toml:"notice_ttl"`
}

// settingsFile is the layout of the TOML settings file.
type settingsFile struct {
	Board BoardSettings `toml:"board"`
}

// Duration is a time.Duration written as a Go duration string ("3s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultBoardSettings returns the settings used when no file overrides them.
func DefaultBoardSettings() BoardSettings {
	return BoardSettings{
		DefaultCategories: slices.Clone(document.DefaultCategories),
		HistoryLimit:      10,
		NoticeTTL:         Duration{3 * time.Second},
	}
}

// Load reads configuration from environment variables and returns a Config struct.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Storage:      strings.ToLower(getEnv("BOARD_STORAGE", "sqlite")),
		DBPath:       getEnv("DB_PATH", "./data/board.db"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		StorageKey:   getEnv("BOARD_STORAGE_KEY", "boardData"),
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", LogFormatText)),
		SettingsPath: getEnv("BOARD_SETTINGS_PATH", ""),
		Board:        DefaultBoardSettings(),
	}

	switch cfg.Storage {
	case "sqlite", "redis", "memory":
	default:
		return nil, fmt.Errorf("BOARD_STORAGE must be sqlite, redis or memory, got %q", cfg.Storage)
	}

	if _, err := strconv.Atoi(cfg.APIPort); err != nil {
		return nil, fmt.Errorf("API_PORT must be a valid integer: %w", err)
	}

	level, err := ParseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.SettingsPath != "" {
		settings, err := LoadBoardSettings(cfg.SettingsPath)
		if err != nil {
			return nil, err
		}
		cfg.Board = settings
	}

	return cfg, nil
}

// loadDotEnv loads .env from the current directory, then from the nearest parent that has one.
func loadDotEnv() {
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// LoadBoardSettings reads the TOML settings file at path on top of the defaults.
// A missing file yields the defaults.
func LoadBoardSettings(path string) (BoardSettings, error) {
	file := settingsFile{Board: DefaultBoardSettings()}

	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultBoardSettings(), nil
		}
		return BoardSettings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	s := file.Board
	if s.HistoryLimit < 1 {
		return BoardSettings{}, fmt.Errorf("settings %s: history_limit must be at least 1", path)
	}
	if s.NoticeTTL.Duration <= 0 {
		return BoardSettings{}, fmt.Errorf("settings %s: notice_ttl must be positive", path)
	}
	if len(s.DefaultCategories) == 0 {
		return BoardSettings{}, fmt.Errorf("settings %s: default_categories must not be empty", path)
	}
	for i, title := range s.DefaultCategories {
		s.DefaultCategories[i] = strings.TrimSpace(title)
		if s.DefaultCategories[i] == "" {
			return BoardSettings{}, fmt.Errorf("settings %s: default_categories[%d] is empty", path, i)
		}
	}
	return s, nil
}

// ParseLogLevel converts debug, info, warn or error to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// NewLogger builds the process logger described by cfg, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
