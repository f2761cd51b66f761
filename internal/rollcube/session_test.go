package rollcube

import "testing"

func TestEvaluateEnd(t *testing.T) {
	cleared := NewUniformGrid(3, 1, 0)
	dirty := NewUniformGrid(3, 1, 1)

	tests := []struct {
		name  string
		grid  *Grid
		moves int
		limit int
		want  EndState
	}{
		{"cleared under limit", cleared, 10, 18, Won},
		{"cleared at limit", cleared, 18, 18, Playing},
		{"dirty under limit", dirty, 10, 18, Playing},
		{"dirty at limit", dirty, 18, 18, Lost},
		{"dirty over limit", dirty, 20, 18, Lost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateEnd(tt.grid, tt.moves, tt.limit); got != tt.want {
				t.Errorf("EvaluateEnd = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionHighScore(t *testing.T) {
	cleared := NewUniformGrid(2, 1, 0)
	s := NewSession(8)
	if s.HasHighScore() {
		t.Fatal("new session has a high score")
	}

	win := func(moves int) {
		s.Reset()
		for i := 0; i < moves; i++ {
			s.RecordMoveCompleted()
		}
		if got := s.Evaluate(cleared); got != Won {
			t.Fatalf("Evaluate after %d moves = %v", moves, got)
		}
	}

	win(5)
	if s.HighScore() != 5 {
		t.Errorf("HighScore = %d, want 5", s.HighScore())
	}
	win(7)
	if s.HighScore() != 5 {
		t.Errorf("worse win changed HighScore to %d", s.HighScore())
	}
	win(3)
	if s.HighScore() != 3 {
		t.Errorf("HighScore = %d, want 3", s.HighScore())
	}
	win(0)
	if !s.HasHighScore() || s.HighScore() != 0 {
		t.Errorf("zero-move win not recorded: %d", s.HighScore())
	}
}

func TestSessionFrozenAfterEnd(t *testing.T) {
	s := NewSession(2)
	dirty := NewUniformGrid(2, 1, 1)
	s.RecordMoveCompleted()
	s.RecordMoveCompleted()
	if s.Evaluate(dirty) != Lost || !s.Ended() {
		t.Fatal("expected Lost")
	}
	if s.Evaluate(NewUniformGrid(2, 1, 0)) != Lost {
		t.Error("ended session re-evaluated")
	}

	s.Reset()
	if s.Ended() || s.End() != Playing || s.Moves() != 0 {
		t.Errorf("after Reset: ended=%v end=%v moves=%d", s.Ended(), s.End(), s.Moves())
	}
}
