// Package logger owns the process-wide structured logger of the CLI.
//
// Diagnostics go to stderr; stdout is reserved for the generated document.
// Until Setup runs, L returns a logger that discards everything.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by Setup for a Format other than text or json.
var ErrUnknownFormat = errors.New("logger: unknown format")

type Config struct {
	Writer io.Writer
	Format Format
	Debug  bool
}

var (
	mu       sync.RWMutex
	global   = discard()
	initedAt time.Time
)

// Setup installs a logger writing to cfg.Writer. Level is Warn, or Debug
// when cfg.Debug is set. The returned cleanup restores the discarding logger.
func Setup(cfg Config) (func(), error) {
	if cfg.Writer == nil {
		setDiscard()
		return func() {}, nil
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch cfg.Format {
	case "", FormatText:
		h = slog.NewTextHandler(cfg.Writer, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(cfg.Writer, opts)
	default:
		setDiscard()
		return func() {}, ErrUnknownFormat
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Debug("logger.initialized", "format", string(cfg.Format), "debug", cfg.Debug)

	return setDiscard, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	initedAt = time.Time{}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
