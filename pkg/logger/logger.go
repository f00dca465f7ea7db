package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kozmossocial/kozmosv1-sub000/config"
)

// Logger wraps slog with the small surface the usecases need. The zero
// value is usable and logs through slog's default handler.
type Logger struct {
	l *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Prod {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{l: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (lg Logger) base() *slog.Logger {
	if lg.l == nil {
		return slog.Default()
	}
	return lg.l
}

func (lg Logger) Debug(msg string, kv ...any) { lg.base().Debug(msg, kv...) }
func (lg Logger) Info(msg string, kv ...any)  { lg.base().Info(msg, kv...) }
func (lg Logger) Warn(msg string, kv ...any)  { lg.base().Warn(msg, kv...) }
func (lg Logger) Error(msg string, kv ...any) { lg.base().Error(msg, kv...) }

func (lg Logger) Warnf(format string, args ...any) {
	lg.base().Warn(fmt.Sprintf(format, args...))
}

func (lg Logger) Errorf(format string, args ...any) {
	lg.base().Error(fmt.Sprintf(format, args...))
}
