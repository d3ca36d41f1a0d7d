package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	SinkGeneric = "generic"
	SinkFile    = "file"
)

const defaultMaxAgeDays = 7

type Config struct {
	Level     string
	Format    string
	AddSource bool
	// Sink selects where per-bot loggers write: the shared output or a
	// rotating file under the bot's working directory.
	Sink       string
	MaxAgeDays int
	Output     io.Writer
}

func ConfigFromViper(v *viper.Viper) Config {
	cfg := Config{
		Level:      v.GetString("logging.level"),
		Format:     v.GetString("logging.format"),
		AddSource:  v.GetBool("logging.add_source"),
		Sink:       v.GetString("logging.sink"),
		MaxAgeDays: v.GetInt("logging.max_age_days"),
	}
	if !v.IsSet("logging.level") && v.GetBool("verbose") {
		cfg.Level = "debug"
	}
	return cfg
}

func NewLogger(cfg Config) (*slog.Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	h, err := newHandler(out, cfg)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

func newHandler(out io.Writer, cfg Config) (slog.Handler, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		return slog.NewTextHandler(out, opts), nil
	case "json":
		return slog.NewJSONHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unknown logging.format: %s", cfg.Format)
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown logging.level: %s", s)
	}
}
