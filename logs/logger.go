package logs

import "log/slog"

// Logger is the minimal structured logging surface library packages depend
// on, so they stay decoupled from the zap setup in infrastructure/logger.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type slogWrapper struct{}

func (slogWrapper) Info(msg string, args ...any)  { slog.Info(msg, args...) }
func (slogWrapper) Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func (slogWrapper) Error(msg string, args ...any) { slog.Error(msg, args...) }

// DefaultLogger is used by packages when no logger is injected.
var DefaultLogger Logger = slogWrapper{}
