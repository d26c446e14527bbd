package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a -log-level value such as "debug" or "WARN" to a
// slog.Level. slog's offset forms like "info+2" are accepted too.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// ParseFormat checks a -log-format value and returns it lower-cased.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "text", "json":
		return f, nil
	default:
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s)
	}
}

// NewLogger creates a slog.Logger writing to outW. It does not set the
// global logger. Unrecognised levels fall back to info and unrecognised
// formats to text.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := ParseLevel(levelStr)
	if err != nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if format, _ := ParseFormat(formatStr); format == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
