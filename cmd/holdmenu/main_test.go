package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreLog(t *testing.T) {
	t.Helper()
	out, prefix, flags := log.Writer(), log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetPrefix(prefix)
		log.SetFlags(flags)
	})
}

func TestSetupLogWritesFileAndCloses(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "holdmenu.log")

	closeLog, err := setupLog(path)
	if err != nil {
		t.Fatalf("setupLog: %v", err)
	}
	log.Printf("commit like")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "holdmenu") || !strings.Contains(string(data), "commit like") {
		t.Fatalf("log file = %q", data)
	}
}

func TestSetupLogWithoutPathDiscards(t *testing.T) {
	restoreLog(t)
	closeLog, err := setupLog("")
	if err != nil {
		t.Fatalf("setupLog: %v", err)
	}
	closeLog()
	if w := log.Writer(); w != io.Discard {
		t.Fatalf("log writer = %T, want io.Discard", w)
	}
}

func TestSetupLogBadPath(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "missing", "holdmenu.log")
	if _, err := setupLog(path); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
