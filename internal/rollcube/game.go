// Package rollcube implements the rolling-cube tile puzzle: a cube rolls
// one quarter turn per move across a square grid, toggling the tile it
// lands on. Clear every tile within the move budget to win.
package rollcube

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/registry"
)

// Variant identifies a registered flavour of the game.
type Variant struct {
	ID      string
	Title   string
	Colours int // 0 keeps the configured colour count
}

var (
	// Classic is the on/off board: one colour per tile.
	Classic = Variant{ID: "rollcube", Title: "Rolling Cube"}
	// Rainbow cycles each tile through eight colours before it clears.
	Rainbow = Variant{ID: "rollcube_rainbow", Title: "Rolling Cube (Rainbow)", Colours: 8}
)

// Variants lists every registered variant.
var Variants = []Variant{Classic, Rainbow}

// VariantByID looks up a registered variant.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Package-level settings applied by registry factories.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultLogger    = log.NewWithOptions(io.Discard, log.Options{Prefix: "rollcube"})
)

// SetConfigPath sets the YAML config used by registry-created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by registry-created games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by registry-created games.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

func init() {
	for _, v := range Variants {
		registry.Register(registry.GameInfo{ID: v.ID, Title: v.Title}, func() (registry.Game, error) {
			g, err := newVariant(v)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}

// LoadVariantConfig resolves the configuration for a variant:
// file, variant colours, preset, then environment overrides.
func LoadVariantConfig(v Variant, path string, preset config.DifficultyPreset) (config.RollCubeConfig, error) {
	cfg, err := config.LoadRollCube(path)
	if err != nil {
		return cfg, err
	}
	if v.Colours > 0 {
		cfg.Grid.Colours = v.Colours
	}
	config.ApplyPreset(&cfg, preset)
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newVariant(v Variant) (*Game, error) {
	cfg, err := LoadVariantConfig(v, configPath, difficultyPreset)
	if err != nil {
		return nil, err
	}
	return New(cfg, WithVariant(v), WithLogger(defaultLogger))
}

// Option configures a Game.
type Option func(*Game)

// WithSource replaces the default math/rand source.
func WithSource(src Source) Option {
	return func(g *Game) { g.src = src }
}

// WithLogger sets the logger for move and outcome events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithVariant sets the ID and title reported by the game.
func WithVariant(v Variant) Option {
	return func(g *Game) { g.variant = v }
}

// WithSeed seeds the source before the first board is populated.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// Game wires the grid, roller, arbiter and session into a fixed-order
// frame loop. It is not safe for concurrent use; one goroutine drives it.
type Game struct {
	variant Variant
	cfg     config.RollCubeConfig
	src     Source
	seed    int64
	logger  *log.Logger

	grid    *Grid
	roller  *Roller
	session *Session

	tick   uint64
	paused bool
	landed bool // a move completed during the last Step

	screenW int
	screenH int
}

// New creates a game and populates its first board. Configurations that
// cannot run (non-positive grid size, roll speed or colour count) are
// rejected here rather than mid-animation.
func New(cfg config.RollCubeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rollcube: %w", err)
	}

	g := &Game{
		variant: Classic,
		cfg:     cfg,
		seed:    1,
		logger:  defaultLogger,
		screenW: core.DefaultConfig().ScreenW,
		screenH: core.DefaultConfig().ScreenH,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewRandSource(g.seed)
	} else {
		g.src.Seed(g.seed)
	}

	g.roller = NewRoller(cfg.Roll.Speed, cfg.Roll.MinSpeed, cfg.Roll.MaxSpeed)
	g.session = NewSession(cfg.MoveLimit())
	g.grid = Populate(cfg.Grid.Size, cfg.Grid.Colours, g.src)
	g.session.Evaluate(g.grid)
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RollCubeConfig {
	return g.cfg
}

// Reset reseeds the source and starts a fresh session. The high score
// survives; only a new Game clears it.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.seed = rc.Seed
	g.src.Seed(rc.Seed)
	g.tick = 0
	g.paused = false
	g.roller.SetSpeed(g.cfg.Roll.Speed)
	g.resetSession()
}

// resetSession clears moves and the end flag, repopulates the board and
// returns the cube to the origin. Any roll in flight is discarded.
func (g *Game) resetSession() {
	g.session.Reset()
	g.roller.Reset()
	g.grid = Populate(g.cfg.Grid.Size, g.cfg.Grid.Colours, g.src)
	g.landed = false
	g.session.Evaluate(g.grid)
	g.logger.Debug("board populated",
		"size", g.grid.Size(),
		"colours", g.grid.Colours(),
		"remaining", g.grid.Remaining(),
	)
}

// Step runs one frame: sample input, arbitrate, advance the roll, toggle
// the landing tile, then evaluate the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.landed = false

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// A new board is honoured even while paused and resumes play.
	sig := SignalsFromFrame(in)
	if sig.Reset {
		g.paused = false
		g.resetSession()
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Speed is frames per quarter turn: faster means fewer frames.
	if in.Has(core.ActionSpeedUp) {
		g.roller.AdjustSpeed(-1)
	}
	if in.Has(core.ActionSpeedDown) {
		g.roller.AdjustSpeed(1)
	}

	if dir, ok := Arbitrate(sig, g.roller.Idle(), g.session.Ended(), g.roller.Pos(), g.grid.Size()); ok {
		g.roller.Start(dir)
	}

	if g.roller.Advance() {
		g.completeMove()
	}

	prev := g.session.End()
	if end := g.session.Evaluate(g.grid); end != prev {
		g.logger.Info("session ended",
			"outcome", end,
			"moves", g.session.Moves(),
			"limit", g.session.MoveLimit(),
			"best", g.session.HighScore(),
		)
	}

	return core.StepResult{State: g.State()}
}

// completeMove applies the single tile mutation a landed roll authorizes.
func (g *Game) completeMove() {
	g.session.RecordMoveCompleted()
	pos := g.roller.Pos()
	visits, ok := g.grid.ToggleAt(pos.X, pos.Z)
	if !ok {
		g.logger.Warn("cube landed off the board", "tile", pos)
		return
	}
	g.landed = true
	g.logger.Debug("move completed",
		"tile", pos,
		"visits", visits,
		"speed", g.roller.Speed(),
		"moves", g.session.Moves(),
		"remaining", g.grid.Remaining(),
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Moves(),
		GameOver: g.session.Ended(),
		Won:      g.session.End() == Won,
		Paused:   g.paused,
	}
}

// Pose returns the cube's read-only pose.
func (g *Game) Pose() Pose {
	return g.roller.Pose()
}

// Grid returns a copy of the board.
func (g *Game) Grid() *Grid {
	return g.grid.Clone()
}

// SessionInfo is the read-only HUD view of a session.
type SessionInfo struct {
	Moves     int
	MoveLimit int
	Remaining int
	End       EndState
	HighScore int
	HasBest   bool
	Speed     int
}

// Session returns the HUD view of the current session.
func (g *Game) Session() SessionInfo {
	return SessionInfo{
		Moves:     g.session.Moves(),
		MoveLimit: g.session.MoveLimit(),
		Remaining: g.grid.Remaining(),
		End:       g.session.End(),
		HighScore: g.session.HighScore(),
		HasBest:   g.session.HasHighScore(),
		Speed:     g.roller.Speed(),
	}
}

// Landed reports whether the last Step completed a move.
func (g *Game) Landed() bool {
	return g.landed
}
