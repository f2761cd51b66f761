package rollcube

// EndState is the outcome of a session so far.
type EndState int

const (
	Playing EndState = iota
	Won
	Lost
)

func (e EndState) String() string {
	switch e {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// EvaluateEnd classifies a board: won when every tile is cleared inside
// the move budget, lost when the budget is spent with tiles left.
func EvaluateEnd(g *Grid, moveCount, moveLimit int) EndState {
	remaining := g.Remaining()
	switch {
	case remaining == 0 && moveCount < moveLimit:
		return Won
	case moveCount >= moveLimit && remaining > 0:
		return Lost
	default:
		return Playing
	}
}

// Session tracks moves, the end state and the best winning move count.
type Session struct {
	moves     int
	moveLimit int
	ended     bool
	end       EndState
	highScore int // lowest winning move count
	hasHigh   bool
}

// NewSession creates a session with the given move budget.
func NewSession(moveLimit int) *Session {
	return &Session{moveLimit: moveLimit}
}

// Moves returns the number of completed moves.
func (s *Session) Moves() int {
	return s.moves
}

// MoveLimit returns the move budget.
func (s *Session) MoveLimit() int {
	return s.moveLimit
}

// Ended reports whether the session reached Won or Lost.
func (s *Session) Ended() bool {
	return s.ended
}

// End returns the last evaluated end state.
func (s *Session) End() EndState {
	return s.end
}

// HighScore returns the lowest winning move count, 0 if none yet.
func (s *Session) HighScore() int {
	return s.highScore
}

// HasHighScore reports whether any session has been won.
func (s *Session) HasHighScore() bool {
	return s.hasHigh
}

// RecordMoveCompleted counts one completed move.
func (s *Session) RecordMoveCompleted() {
	s.moves++
}

// Evaluate updates the end state from the board. Once the session has
// ended the outcome is frozen until Reset. A win lowers the high score.
func (s *Session) Evaluate(g *Grid) EndState {
	if s.ended {
		return s.end
	}
	s.end = EvaluateEnd(g, s.moves, s.moveLimit)
	if s.end == Playing {
		return s.end
	}
	s.ended = true
	if s.end == Won && (!s.hasHigh || s.moves < s.highScore) {
		s.highScore = s.moves
		s.hasHigh = true
	}
	return s.end
}

// Reset starts a new session, keeping the high score.
func (s *Session) Reset() {
	s.moves = 0
	s.ended = false
	s.end = Playing
}
