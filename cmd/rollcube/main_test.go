package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/rollcube/internal/storage"
)

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rollcube.log")
	t.Cleanup(closeLogger)

	l, err := openLogger(path, "debug", false)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	l.Debug("move completed", "tile", "(1,0)")
	closeLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "move completed") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestOpenLoggerRejectsLevel(t *testing.T) {
	if _, err := openLogger("", "loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestScoresRanksEachBoardSeparately(t *testing.T) {
	oldDB := flagDBPath
	t.Cleanup(func() { flagDBPath = oldDB })
	flagDBPath = filepath.Join(t.TempDir(), "results.db")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	for _, r := range []storage.Result{
		{GameID: "rollcube", Moves: 11, Won: true, GridSize: 5, Colours: 1},
		{GameID: "rollcube", Moves: 77, Won: true, GridSize: 10, Colours: 1},
		{GameID: "rollcube", Moves: 200, Won: false, GridSize: 10, Colours: 1},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	store.Close()

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}

	got := out.String()
	small := strings.Index(got, "5x5 board")
	large := strings.Index(got, "10x10 board")
	if small < 0 || large < small {
		t.Fatalf("expected a 5x5 section before a 10x10 section:\n%s", got)
	}
	if !strings.Contains(got[small:large], fmt.Sprintf("  %-4d  %-6d", 1, 11)) {
		t.Errorf("5x5 section should rank the 11-move win first:\n%s", got[small:large])
	}
	if !strings.Contains(got[large:], fmt.Sprintf("  %-4d  %-6d", 1, 77)) {
		t.Errorf("10x10 section should rank the 77-move win first:\n%s", got[large:])
	}
	if !strings.Contains(got[large:], "Sessions: 2  Won: 1") {
		t.Errorf("10x10 stats missing:\n%s", got[large:])
	}
	if !strings.Contains(got, "Recent sessions") || !strings.Contains(got, "out of moves") {
		t.Errorf("recent sessions missing:\n%s", got)
	}
}

func TestScoresRunLookup(t *testing.T) {
	oldDB := flagDBPath
	t.Cleanup(func() { flagDBPath = oldDB; flagRun = "" })
	flagDBPath = filepath.Join(t.TempDir(), "results.db")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	runID := storage.NewRunID()
	if _, err := store.SaveResult(storage.Result{RunID: runID, GameID: "rollcube", Moves: 33, Won: true, GridSize: 6, Colours: 1}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	flagRun = runID
	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "6x6/1 board  cleared in 33 moves") {
		t.Errorf("unexpected run output %q", got)
	}

	flagRun = storage.NewRunID()
	if err := runScores(scoresCmd, nil); err == nil {
		t.Error("expected error for unknown run id")
	}
}

func TestVariantArg(t *testing.T) {
	if id, err := variantArg(nil); err != nil || id != "rollcube" {
		t.Errorf("variantArg(nil) = %q, %v", id, err)
	}
	if id, err := variantArg([]string{"rollcube_rainbow"}); err != nil || id != "rollcube_rainbow" {
		t.Errorf("variantArg(rainbow) = %q, %v", id, err)
	}
	if _, err := variantArg([]string{"tetris"}); err == nil {
		t.Error("expected error for unknown variant")
	}
}
