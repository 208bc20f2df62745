package logging

import (
	"log/slog"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New(slog.LevelDebug)
	if logger == nil {
		t.Fatal("New returned nil")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop returned nil")
	}
	// Must not panic when used.
	logger.Info("discarded", "key", "value")
}
