package rollcube

// Snapshot captures the complete game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Pose      Pose
	Moves     int
	Remaining int
	End       EndState
	HighScore int
	Speed     int
	Tiles     map[Coord]int
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Pose:      g.roller.Pose(),
		Moves:     g.session.Moves(),
		Remaining: g.grid.Remaining(),
		End:       g.session.End(),
		HighScore: g.session.HighScore(),
		Speed:     g.roller.Speed(),
		Tiles:     g.grid.Tiles(),
	}
}
