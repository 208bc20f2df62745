package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured diagnostics logger.
// It writes to Stderr and standardizes common keys (e.g., "error" -> "err").
// Declaration and schema-cache events are debug level; pass slog.LevelDebug
// to see them.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
