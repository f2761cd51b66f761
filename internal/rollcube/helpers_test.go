package rollcube

import (
	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/core"
)

// constSource always draws the same value.
type constSource int

func (s constSource) Seed(int64) {}

func (s constSource) UniformInt(low, high int) int {
	return min(max(int(s), low), high)
}

// seqSource replays a fixed sequence, restarting on Seed.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Seed(int64) { s.i = 0 }

func (s *seqSource) UniformInt(low, high int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return min(max(v, low), high)
}

func testConfig(size, colours, speed int) config.RollCubeConfig {
	cfg := config.DefaultRollCubeConfig()
	cfg.Grid.Size = size
	cfg.Grid.Colours = colours
	cfg.Roll.Speed = speed
	cfg.Roll.MinSpeed = 1
	cfg.Roll.MaxSpeed = 120
	cfg.Rules.MoveLimit = 0
	return cfg
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// rollOnce presses a direction for one frame and steps until the cube
// lands or maxFrames pass. It returns the frames taken, or -1.
func rollOnce(g *Game, a core.Action, maxFrames int) int {
	g.Step(frame(a))
	if g.Landed() {
		return 1
	}
	for i := 2; i <= maxFrames; i++ {
		g.Step(frame())
		if g.Landed() {
			return i
		}
	}
	return -1
}
