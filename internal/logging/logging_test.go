package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, closeFn := New("", "info")
	defer closeFn()

	// Must never panic or write anywhere.
	logger.Info("discarded")
	if logger.Core().Enabled(0) {
		t.Error("nop logger should not enable any level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "branchout.log")
	logger, closeFn := New(path, "debug")

	logger.Info("session started")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestNewWithBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "branchout.log")
	logger, closeFn := New(path, "shouting")

	logger.Debug("hidden")
	logger.Info("visible")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(string(data), "visible") {
		t.Error("info entry should be written")
	}
}
