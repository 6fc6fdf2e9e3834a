package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() should fail for an unknown level")
	}
}

func TestNewOrNop_FallsBack(t *testing.T) {
	logger := NewOrNop(Config{Level: "loud"})
	if logger == nil {
		t.Fatal("NewOrNop() returned nil")
	}
	logger.Info("discarded")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mobile.log")
	logger, err := New(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("device listed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "device listed") {
		t.Errorf("log file missing message, got: %s", data)
	}
}
