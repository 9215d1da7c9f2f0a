package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagConfig, flagDefaults, flagLogFile = "", false, ""
	flagLogLevel = "info"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlayUnknownGameReturnsError(t *testing.T) {
	_, err := execute(t, "play", "no_such_game")
	if err == nil || !strings.Contains(err.Error(), "no_such_game") {
		t.Errorf("play no_such_game error = %v, expected unknown game", err)
	}
}

func TestConfigPrintsGrid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "# source: embedded") {
		t.Errorf("config output missing source line:\n%s", out)
	}
	if !strings.Contains(out, "# grid: 20 rows x 10 cols") {
		t.Errorf("config output missing grid line:\n%s", out)
	}
}

func TestConfigInvalidGridReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte("display:\n  width: 220\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "config", "--config", path)
	if !errors.Is(err, blocks.ErrInvalidDimensions) {
		t.Errorf("config error = %v, expected ErrInvalidDimensions", err)
	}
}

func TestConfigMissingFileReturnsError(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("config with missing file error = nil, expected error")
	}
}

func TestControlsUsesConfiguredKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out, err := execute(t, "controls")
	if err != nil {
		t.Fatalf("controls error = %v", err)
	}
	if !strings.Contains(out, "Rotate clockwise: 'c'") {
		t.Errorf("controls output missing rotate line:\n%s", out)
	}
}

func TestNewLoggerWithoutFile(t *testing.T) {
	flagLogFile = ""
	logger, closer, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	flagLogFile = filepath.Join(t.TempDir(), "blocks.log")
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogFile, flagLogLevel = "", "info" })

	if _, _, err := newLogger(); err == nil {
		t.Error("newLogger(loud) error = nil, expected error")
	}
}
