package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"quizview/internal/config"
)

// TestNewProductionWritesJSON verifies production logs are JSON lines.
func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.ProductionEnv, &buf)
	logger.Info("bank loaded", zap.Int("questions", 3))
	logger.Debug("dropped")
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "bank loaded" || entry["questions"] != float64(3) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

// TestNewDevelopmentWritesConsole verifies local logs include debug output.
func TestNewDevelopmentWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.DefaultEnv, &buf)
	logger.Debug("filter applied", zap.String("search", "sky"))
	_ = logger.Sync()
	if !strings.Contains(buf.String(), "DEBUG") || !strings.Contains(buf.String(), "filter applied") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
