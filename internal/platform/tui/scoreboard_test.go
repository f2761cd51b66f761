package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/rollcube"
	"github.com/vovakirdan/rollcube/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveWin(t *testing.T, store *storage.Store, gameID string, board storage.Board, moves int) {
	t.Helper()
	r := storage.Result{GameID: gameID, Moves: moves, Won: true, GridSize: board.Size, Colours: board.Colours}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

// activeTestBoard is the board the classic variant starts on with no
// config file or preset.
func activeTestBoard(t *testing.T) storage.Board {
	t.Helper()
	cfg, ok := activeConfig(rollcube.Classic.ID)
	if !ok {
		t.Fatal("classic variant not registered")
	}
	return boardOf(cfg)
}

func movesOf(results []storage.Result) []int {
	moves := make([]int, len(results))
	for i, r := range results {
		moves[i] = r.Moves
	}
	return moves
}

func TestScoreboardRanksPerBoard(t *testing.T) {
	store := openStore(t)
	active := activeTestBoard(t)
	small := storage.Board{Size: 3, Colours: active.Colours}

	saveWin(t, store, rollcube.Classic.ID, small, 12)
	saveWin(t, store, rollcube.Classic.ID, active, 75)
	saveWin(t, store, rollcube.Classic.ID, active, 60)

	m := NewScoreboardModel(store, 100, 30)
	if m.games[m.gameCursor].ID != rollcube.Classic.ID {
		t.Fatalf("first variant = %q", m.games[m.gameCursor].ID)
	}
	if len(m.boards) != 2 {
		t.Fatalf("boards = %d, want 2", len(m.boards))
	}

	// Opens on the configured board, not the one holding the lowest count.
	if b, _ := m.currentBoard(); b.Board != active {
		t.Errorf("opened on %v, want %v", b.Board, active)
	}
	if got := movesOf(m.results); len(got) != 2 || got[0] != 60 || got[1] != 75 {
		t.Errorf("active board results = %v, want [60 75]", got)
	}
	if line := m.statsLine(); !strings.Contains(line, "best 60") {
		t.Errorf("stats line %q does not show the board's best", line)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if b, _ := m.currentBoard(); b.Board != small {
		t.Errorf("tab moved to %v, want %v", b.Board, small)
	}
	if got := movesOf(m.results); len(got) != 1 || got[0] != 12 {
		t.Errorf("small board results = %v, want [12]", got)
	}
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	store := openStore(t)
	saveWin(t, store, rollcube.Classic.ID, activeTestBoard(t), 40)

	m := NewScoreboardModel(store, 100, 30)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)

	if m.games[m.gameCursor].ID != rollcube.Rainbow.ID {
		t.Fatalf("variant = %q, want %q", m.games[m.gameCursor].ID, rollcube.Rainbow.ID)
	}
	if len(m.boards) != 0 || len(m.results) != 0 {
		t.Errorf("classic results leaked into rainbow: %v", m.results)
	}
	if view := m.View(); !strings.Contains(view, "No sessions recorded yet.") {
		t.Errorf("view missing empty notice:\n%s", view)
	}
}

func TestMenuShowsBestForActiveBoard(t *testing.T) {
	store := openStore(t)
	active := activeTestBoard(t)

	saveWin(t, store, rollcube.Classic.ID, storage.Board{Size: 3, Colours: active.Colours}, 5)
	saveWin(t, store, rollcube.Classic.ID, active, 44)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60})
	var item *MenuItem
	for i := range m.items {
		if m.items[i].GameID == rollcube.Classic.ID {
			item = &m.items[i]
		}
	}
	if item == nil {
		t.Fatal("classic variant missing from menu")
	}
	if item.Board != active || item.Best != "44" {
		t.Errorf("menu item %+v, want best 44 on %v", item, active)
	}

	for _, it := range m.items {
		if it.GameID == rollcube.Rainbow.ID && it.Best != "-" {
			t.Errorf("rainbow best = %q, want -", it.Best)
		}
	}
}
