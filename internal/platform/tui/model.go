package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/storage"
)

// boardConfig is implemented by games that can report their board settings
// for result storage.
type boardConfig interface {
	Config() config.RollCubeConfig
}

// boardOf is the storage key for a board configuration.
func boardOf(cfg config.RollCubeConfig) storage.Board {
	return storage.Board{Size: cfg.Grid.Size, Colours: cfg.Grid.Colours}
}

// activeConfig reports the board settings a game created now would use,
// honouring the current config path and difficulty preset.
func activeConfig(gameID string) (config.RollCubeConfig, bool) {
	g, err := registry.Create(gameID)
	if err != nil {
		return config.RollCubeConfig{}, false
	}
	bc, ok := g.(boardConfig)
	if !ok {
		return config.RollCubeConfig{}, false
	}
	return bc.Config(), true
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	keyMapper   *KeyMapper
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	runID       string
	quitting    bool
	embedded    bool // Back returns to a host menu instead of quitting
	backToMenu  bool
	resultSaved bool // Whether the result has been saved for the current session
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runID:      storage.NewRunID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys are collected into the frame
// and sampled on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in play.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The board does not depend
// on the terminal size, so the session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.saveResult()
		m.resultSaved = true
	case wasOver && !m.gameState.GameOver:
		// The game reset itself: a new run begins.
		m.runID = storage.NewRunID()
		m.resultSaved = false
		m.logger.Info("session started", "game", m.game.ID(), "run", m.runID)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished session. Failures are logged and play
// continues.
func (m Model) saveResult() {
	res := storage.Result{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Moves:  m.gameState.Score,
		Won:    m.gameState.Won,
	}
	if bc, ok := m.game.(boardConfig); ok {
		b := boardOf(bc.Config())
		res.GridSize = b.Size
		res.Colours = b.Colours
	}

	m.logger.Info("session finished", "game", res.GameID, "run", res.RunID, "moves", res.Moves, "won", res.Won)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(res); err != nil {
		m.logger.Warn("could not save result", "run", res.RunID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".rollcube", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
