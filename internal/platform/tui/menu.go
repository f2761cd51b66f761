package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/storage"
)

// MenuItem is one variant in the picker, described by the board it would
// start on now.
type MenuItem struct {
	GameID    string
	Title     string
	Board     storage.Board
	MoveLimit int
	Best      string // fewest winning moves on Board, "-" when never won
	Record    string // sessions and wins on Board, empty when never played
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered variants with their records on the
// currently configured board.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, menuItem(store, g))
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func menuItem(store *storage.Store, g registry.GameInfo) MenuItem {
	item := MenuItem{GameID: g.ID, Title: g.Title, Best: "-"}

	cfg, ok := activeConfig(g.ID)
	if !ok {
		return item
	}
	item.Board = boardOf(cfg)
	item.MoveLimit = cfg.MoveLimit()

	if store == nil {
		return item
	}
	if best, ok, err := store.BestMoves(g.ID, item.Board); err == nil && ok {
		item.Best = fmt.Sprintf("%d", best)
	}
	if stats, err := store.GetGameStats(g.ID, item.Board); err == nil && stats.Sessions > 0 {
		item.Record = fmt.Sprintf("%d played, %d cleared", stats.Sessions, stats.Wins)
	}
	return item
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  R O L L C U B E  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Clear every tile before the moves run out", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %-8s best: %s", cursor, item.Title, boardLabel(item.Board), item.Best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(m.items[m.cursor].details(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Results  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// details describes the highlighted variant's board and record.
func (it MenuItem) details() string {
	if it.Board.Size == 0 {
		return "board unavailable"
	}
	s := fmt.Sprintf("%s, %d move budget", colourLabel(it.Board), it.MoveLimit)
	if it.Record != "" {
		s += "  |  " + it.Record
	}
	return s
}

func boardLabel(b storage.Board) string {
	if b.Size == 0 {
		return "?"
	}
	return fmt.Sprintf("%dx%d", b.Size, b.Size)
}

func colourLabel(b storage.Board) string {
	if b.Colours == 1 {
		return "1 colour"
	}
	return fmt.Sprintf("%d colours", b.Colours)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}

	return result, nil
}
