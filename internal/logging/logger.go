// Package logging wraps a process-wide zerolog logger.
//
//	logging.Info().Str("route_id", id).Msg("route loaded")
//	logging.Ctx(ctx).Error().Err(err).Msg("rating recompute failed")
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string
	Format string
	// File enables size-based rotation into the given path in addition to stderr.
	File string
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stderr
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	if cfg.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 7,
			MaxAge:     7, // days
			Compress:   true,
		})
	}

	log = zerolog.New(out).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug() *zerolog.Event { l := Logger(); return l.Debug() }
func Info() *zerolog.Event  { l := Logger(); return l.Info() }
func Warn() *zerolog.Event  { l := Logger(); return l.Warn() }
func Error() *zerolog.Event { l := Logger(); return l.Error() }
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

type traceKey struct{}

// WithTraceID stores the request trace id so Ctx can attach it.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceID)
}

// TraceID returns the id stored by WithTraceID, or "".
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

// Ctx returns the global logger enriched with the trace id carried by ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if id := TraceID(ctx); id != "" {
		l = l.With().Str("trace_id", id).Logger()
	}
	return &l
}
