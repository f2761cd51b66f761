package rollcube

import "github.com/vovakirdan/rollcube/internal/core"

// Signals are the level-triggered inputs sampled once per frame.
type Signals struct {
	Up    bool
	Down  bool
	Right bool
	Left  bool
	Reset bool
}

// SignalsFromFrame extracts the roll and reset signals from an input frame.
func SignalsFromFrame(in core.InputFrame) Signals {
	return Signals{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Right: in.Has(core.ActionRight),
		Left:  in.Has(core.ActionLeft),
		Reset: in.Has(core.ActionRestart),
	}
}

// Held reports whether the direction's signal is set.
func (s Signals) Held(d Direction) bool {
	switch d {
	case DirUp:
		return s.Up
	case DirDown:
		return s.Down
	case DirRight:
		return s.Right
	case DirLeft:
		return s.Left
	default:
		return false
	}
}

// InBounds reports whether a roll in direction d from pos stays on a
// grid of the given size. The bounds track RowRange and ColRange for
// both odd and even sizes.
func InBounds(d Direction, pos Coord, gridSize int) bool {
	half := gridSize / 2
	parity := gridSize%2 - 1 // 0 for odd sizes, -1 for even
	switch d {
	case DirUp:
		return pos.X < half
	case DirDown:
		return pos.X > -half-parity
	case DirRight:
		return pos.Z > -half
	case DirLeft:
		return pos.Z < half+parity
	default:
		return false
	}
}

// Arbitrate picks the move to start this frame, if any. Nothing starts
// while a roll is in flight or the session has ended. Held directions are
// tried in priority order (up, down, right, left) and the first one that
// stays on the grid wins; the rest are dropped, not queued.
func Arbitrate(sig Signals, idle, ended bool, pos Coord, gridSize int) (Direction, bool) {
	if !idle || ended {
		return 0, false
	}
	for _, d := range Directions {
		if sig.Held(d) && InBounds(d, pos, gridSize) {
			return d, true
		}
	}
	return 0, false
}
