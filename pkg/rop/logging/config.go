package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the settings for a slog-backed Logger.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
	// AddSource includes file and line in every entry.
	AddSource bool `yaml:"add_source"`
}

// DefaultConfig returns a text logger at info level.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatText,
	}
}

// LoadConfig reads a YAML config. Missing keys keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("logging: decode config: %w", err)
	}
	if _, err := cfg.level(); err != nil {
		return Config{}, err
	}
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return Config{}, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", c.Level)
	}
}

// New builds a SlogLogger writing to w. Invalid levels fall back to info.
func New(cfg Config, w io.Writer) *SlogLogger {
	level, _ := cfg.level()
	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.AddSource}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return NewSlogLogger(slog.New(handler))
}
