package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/rollcube"
	"github.com/vovakirdan/rollcube/internal/storage"
)

// oneTileSource lights only the last tile of a 2x2 board, at (1,0).
type oneTileSource struct{ n int }

func (s *oneTileSource) Seed(int64) { s.n = 0 }

func (s *oneTileSource) UniformInt(low, high int) int {
	s.n++
	if s.n%4 == 0 {
		return high
	}
	return low
}

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()

	store := openStore(t)

	cfg := config.DefaultRollCubeConfig()
	cfg.Grid.Size = 2
	cfg.Grid.Colours = 1
	cfg.Roll.Speed = 1
	game, err := rollcube.New(cfg, rollcube.WithSource(&oneTileSource{}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	return m, store
}

func step(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestModelSavesResultOnce(t *testing.T) {
	m, store := newTestModel(t)
	firstRun := m.runID

	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp}, TickMsg{})
	if !m.gameState.GameOver || !m.gameState.Won {
		t.Fatalf("expected a win, state %+v", m.gameState)
	}

	m = step(t, m, TickMsg{}, TickMsg{})

	results, err := store.RecentResults("rollcube", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("saved %d results, want 1", len(results))
	}
	r := results[0]
	if r.RunID != firstRun || r.Moves != 1 || !r.Won || r.GridSize != 2 || r.Colours != 1 {
		t.Errorf("unexpected result %+v", r)
	}

	// Restart begins a new run.
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, TickMsg{})
	if m.gameState.GameOver {
		t.Fatal("still game over after restart")
	}
	if m.runID == firstRun {
		t.Error("run id not renewed after restart")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp}, TickMsg{})
	best, ok, _ := store.BestMoves("rollcube", storage.Board{Size: 2, Colours: 1})
	if !ok || best != 1 {
		t.Errorf("BestMoves = %d (%v), want 1", best, ok)
	}
}

func TestModelBackOnlyWhenOver(t *testing.T) {
	m, _ := newTestModel(t)
	m.embedded = true

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back accepted mid-game")
	}

	m = step(t, m, TickMsg{}, tea.KeyMsg{Type: tea.KeyUp}, TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back not accepted after game over")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, TickMsg{})
	if view := m.View(); !strings.Contains(view, "Moves taken") {
		t.Errorf("view missing HUD:\n%s", view)
	}
}
