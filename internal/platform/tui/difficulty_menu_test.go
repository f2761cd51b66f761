package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollcube/internal/config"
)

func pressMenu(m DifficultyModel, msgs ...tea.KeyMsg) DifficultyModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(DifficultyModel)
	}
	return m
}

func TestDifficultySelect(t *testing.T) {
	m := NewDifficultyModel("Rolling Cube", config.DefaultRollCubeConfig(), 80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("selection made before input")
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	m = pressMenu(m, down, down, down, down, tea.KeyMsg{Type: tea.KeyEnter})

	preset, ok := m.Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("Selected = (%q, %v), want hard", preset, ok)
	}
}

func TestDifficultyBack(t *testing.T) {
	m := NewDifficultyModel("Rolling Cube", config.DefaultRollCubeConfig(), 80, 24)
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("Esc did not go back")
	}
	if _, ok := m.Selected(); ok {
		t.Error("back produced a selection")
	}
}

func TestDifficultyView(t *testing.T) {
	m := NewDifficultyModel("Rolling Cube", config.DefaultRollCubeConfig(), 80, 24)
	view := m.View()
	for _, want := range []string{"ROLLING CUBE", "5x5, 50 moves", "10x10, 100 moves"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
