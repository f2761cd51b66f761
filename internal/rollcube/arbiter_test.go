package rollcube

import (
	"testing"

	"github.com/vovakirdan/rollcube/internal/core"
)

// delta returns the cell offset a completed roll applies.
func delta(d Direction) Coord {
	switch d {
	case DirUp:
		return Coord{X: 1}
	case DirDown:
		return Coord{X: -1}
	case DirRight:
		return Coord{Z: -1}
	default:
		return Coord{Z: 1}
	}
}

func TestArbiterNeverLeavesBoard(t *testing.T) {
	for size := 1; size <= 20; size++ {
		rows, cols := RowRange(size), ColRange(size)
		seen := map[Coord]bool{{}: true}
		queue := []Coord{{}}
		for len(queue) > 0 {
			pos := queue[0]
			queue = queue[1:]
			for _, d := range Directions {
				if !InBounds(d, pos, size) {
					continue
				}
				next := Coord{X: pos.X + delta(d).X, Z: pos.Z + delta(d).Z}
				if !rows.Contains(next.Z) || !cols.Contains(next.X) {
					t.Fatalf("size %d: %v -> %v leaves the board", size, pos, next)
				}
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
		if len(seen) != size*size {
			t.Errorf("size %d: reached %d of %d tiles", size, len(seen), size*size)
		}
	}
}

func TestArbitratePriority(t *testing.T) {
	tests := []struct {
		name string
		sig  Signals
		pos  Coord
		want Direction
		ok   bool
	}{
		{"none", Signals{}, Coord{}, 0, false},
		{"up beats left", Signals{Up: true, Left: true}, Coord{}, DirUp, true},
		{"down beats right", Signals{Down: true, Right: true}, Coord{}, DirDown, true},
		{"blocked up falls through", Signals{Up: true, Left: true}, Coord{X: 2}, DirLeft, true},
		{"all blocked", Signals{Up: true}, Coord{X: 2}, 0, false},
		{"right only", Signals{Right: true}, Coord{}, DirRight, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Arbitrate(tt.sig, true, false, tt.pos, 5)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Arbitrate = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestArbitrateGuards(t *testing.T) {
	sig := Signals{Up: true}
	if _, ok := Arbitrate(sig, false, false, Coord{}, 5); ok {
		t.Error("move started while a roll is in flight")
	}
	if _, ok := Arbitrate(sig, true, true, Coord{}, 5); ok {
		t.Error("move started after the session ended")
	}
}

func TestSignalsFromFrame(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRestart)
	sig := SignalsFromFrame(in)
	if !sig.Left || !sig.Reset || sig.Up || sig.Down || sig.Right {
		t.Errorf("unexpected signals %+v", sig)
	}
}
