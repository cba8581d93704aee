package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "faceoff.log")

	logger, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("poll complete", zap.Int("games", 7))
	logger.Debug("cache hit", zap.String("key", "club-stats/TOR"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry[MessageKey] != "poll complete" {
		t.Fatalf("message = %v, want poll complete", entry[MessageKey])
	}
	if entry[LevelKey] != "INFO" {
		t.Fatalf("level = %v, want INFO", entry[LevelKey])
	}
	if entry["games"] != float64(7) {
		t.Fatalf("games = %v, want 7", entry["games"])
	}
	if _, ok := entry[TimeKey]; !ok {
		t.Fatalf("entry missing %q: %v", TimeKey, entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faceoff.log")
	logger, err := New(path, "warn")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "dropped") || !strings.Contains(string(data), "kept") {
		t.Fatalf("unexpected log contents: %q", data)
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	if _, err := New("", "info"); err == nil {
		t.Fatalf("New with empty path returned nil error")
	}
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("New with bad level returned nil error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{" DEBUG ", zapcore.DebugLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	logger := Nop()
	logger.Error("ignored", zap.String("k", "v"))
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("Nop logger should be disabled")
	}
}
