package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"doorview/internal/config"
	"doorview/internal/logger"
)

func TestWriteDefaultConfigCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "doorview.json")
	cfg := config.Default()
	cfg.Door.Width = 1.5

	writeDefaultConfig(path, cfg, logger.Nop())

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Expected written config to load, got %v", err)
	}
	if loaded.Door.Width != 1.5 {
		t.Errorf("Expected width 1.5, got %v", loaded.Door.Width)
	}
}

func TestWriteDefaultConfigKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doorview.json")
	body := []byte(`{"door": {"width": 2, "height": 3}}`)
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	writeDefaultConfig(path, config.Default(), logger.Nop())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(body) {
		t.Errorf("Existing config should not be overwritten, got %s", data)
	}
}

func TestLogChdirReportsFailure(t *testing.T) {
	log := logger.Nop()

	logChdir(log, nil)
	if len(log.Lines()) != 0 {
		t.Fatalf("Successful chdir should not log, got %v", log.Lines())
	}

	logChdir(log, errors.New("permission denied"))
	lines := log.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "DEBUG") || !strings.Contains(lines[0], "permission denied") {
		t.Errorf("Expected one debug line with the error, got %v", lines)
	}
}
