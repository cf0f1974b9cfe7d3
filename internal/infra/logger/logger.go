package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// JSONでstdoutに出すslogをデフォルトにする。全レコードにserviceが付く
func Init(level string, service string) *slog.Logger {
	return InitWithWriter(os.Stdout, level, service)
}

func InitWithWriter(w io.Writer, level string, service string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	l := slog.New(handler).With(slog.String("service", service))
	slog.SetDefault(l)
	return l
}

// 不明な値はinfo
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
