package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Prefix: "forestrun", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer logger.Close()

	logger.Debug("run finished", "score", 42, "reason", "giant")

	out := buf.String()
	for _, want := range []string{"forestrun", "run finished", "score=42", "reason=giant"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "WARN", Writer: &buf})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info line passed a warn logger")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn line missing")
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "forestrun.log")
	logger, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("level started", "level", 2)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "level started") {
		t.Errorf("unexpected log contents %q", data)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.forestrun/forestrun.log")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".forestrun", "forestrun.log"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}
}
