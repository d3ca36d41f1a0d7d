package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/onebot-cli/internal/domain"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Sinks hands out the per-bot loggers. With the file sink each logger writes
// to <workingDir>/logs/<name>.log, rotated and pruned after MaxAgeDays.
type Sinks struct {
	cfg  Config
	base *slog.Logger

	mu    sync.Mutex
	files map[string]*lumberjack.Logger
}

func NewSinks(cfg Config, base *slog.Logger) (*Sinks, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Sink)) {
	case "", SinkGeneric:
		cfg.Sink = SinkGeneric
	case SinkFile:
		cfg.Sink = SinkFile
	default:
		return nil, fmt.Errorf("unknown logging.sink: %s", cfg.Sink)
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = defaultMaxAgeDays
	}
	if base == nil {
		logger, err := NewLogger(cfg)
		if err != nil {
			return nil, err
		}
		base = logger
	}

	return &Sinks{cfg: cfg, base: base, files: make(map[string]*lumberjack.Logger)}, nil
}

func BotLoggerName(id domain.BotID) string {
	return "Bot." + id.String()
}

func NetworkLoggerName(id domain.BotID) string {
	return "Net." + id.String()
}

func (s *Sinks) BotLogger(id domain.BotID, workingDir string) *slog.Logger {
	return s.logger(BotLoggerName(id), workingDir)
}

func (s *Sinks) NetworkLogger(id domain.BotID, workingDir string) *slog.Logger {
	return s.logger(NetworkLoggerName(id), workingDir)
}

func (s *Sinks) logger(name, workingDir string) *slog.Logger {
	if s.cfg.Sink != SinkFile {
		return s.base.With("logger", name)
	}

	path := filepath.Join(workingDir, "logs", name+".log")
	h, err := newHandler(s.file(path), s.cfg)
	if err != nil {
		s.base.Warn("file log sink unavailable, using generic sink", "logger", name, "error", err)
		return s.base.With("logger", name)
	}
	return slog.New(h).With("logger", name)
}

func (s *Sinks) file(path string) *lumberjack.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.files[path]; ok {
		return f
	}
	f := &lumberjack.Logger{
		Filename: path,
		MaxAge:   s.cfg.MaxAgeDays,
	}
	s.files[path] = f
	return f
}

// Close releases every open log file.
func (s *Sinks) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for path, f := range s.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log %s: %w", path, err))
		}
		delete(s.files, path)
	}
	return errors.Join(errs...)
}
