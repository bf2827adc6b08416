package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHighScoreStoreLogsToSessionLogger(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	old := flagHighScore
	flagHighScore = filepath.Join(blocker, "highscore.txt")
	defer func() { flagHighScore = old }()

	var buf bytes.Buffer
	store := highScoreStore(log.New(&buf))
	store.Save(10)

	if !strings.Contains(buf.String(), "cannot save high score") {
		t.Errorf("session log = %q, expected the save warning", buf.String())
	}
}

func TestDebugLoggerDiscardsWithoutFlag(t *testing.T) {
	old := flagDebug
	flagDebug = false
	defer func() { flagDebug = old }()

	logger, closeLog, err := debugLogger()
	if err != nil {
		t.Fatalf("debugLogger() error: %v", err)
	}
	defer closeLog()
	if logger == nil {
		t.Fatal("expected a logger")
	}
}
