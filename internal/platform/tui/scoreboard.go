package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/storage"
)

const maxResults = 100

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevVariant key.Binding
	NextVariant key.Binding
	PrevBoard   key.Binding
	NextBoard   key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.NextBoard, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevVariant, k.NextVariant, k.PrevBoard, k.NextBoard},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		PrevVariant: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "prev variant")),
		NextVariant: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("left/right", "variant")),
		PrevBoard:   key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("S-tab/[", "prev board")),
		NextBoard:   key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "board")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the fewest-move wins of one variant on one board.
// Wins on different boards are never ranked together.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	boards      []storage.GameStats // boards played for the current variant
	boardCursor int
	results     []storage.Result
	store       *storage.Store
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.selectGame(0)
	}
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Moves", Width: 7},
			{Title: "Tiles", Width: 6},
			{Title: "Run", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectGame loads the boards played for variant i and opens the one the
// variant is currently configured for, falling back to the smallest.
func (m *ScoreboardModel) selectGame(i int) {
	m.gameCursor = i
	m.boards = nil
	m.boardCursor = 0

	gameID := m.games[i].ID
	if m.store != nil {
		if boards, err := m.store.BoardStats(gameID); err == nil {
			m.boards = boards
		}
	}
	if cfg, ok := activeConfig(gameID); ok {
		active := boardOf(cfg)
		for j, b := range m.boards {
			if b.Board == active {
				m.boardCursor = j
			}
		}
	}
	m.loadBoard()
}

// loadBoard fills the table with wins on the selected board.
func (m *ScoreboardModel) loadBoard() {
	m.results = nil
	if b, ok := m.currentBoard(); ok && m.store != nil {
		if results, err := m.store.TopResults(m.games[m.gameCursor].ID, b.Board, maxResults); err == nil {
			m.results = results
		}
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.GridSize*r.GridSize),
			shortRunID(r.RunID),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) currentBoard() (storage.GameStats, bool) {
	if m.boardCursor < 0 || m.boardCursor >= len(m.boards) {
		return storage.GameStats{}, false
	}
	return m.boards[m.boardCursor], true
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant), key.Matches(msg, m.keys.PrevVariant):
			if n := len(m.games); n > 0 {
				step := 1
				if key.Matches(msg, m.keys.PrevVariant) {
					step = n - 1
				}
				m.selectGame((m.gameCursor + step) % n)
			}
			return m, nil

		case key.Matches(msg, m.keys.NextBoard), key.Matches(msg, m.keys.PrevBoard):
			if n := len(m.boards); n > 0 {
				step := 1
				if key.Matches(msg, m.keys.PrevBoard) {
					step = n - 1
				}
				m.boardCursor = (m.boardCursor + step) % n
				m.loadBoard()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadBoard()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "FEWEST MOVES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("FEWEST MOVES - < %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(sbTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.boardTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(sbMutedStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")
	b.WriteString(sbBoxStyle.Render(m.tableContent()))
	b.WriteString("\n")
	b.WriteString(sbMutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// boardTabs lists the boards played, highlighting the selected one.
func (m ScoreboardModel) boardTabs() string {
	if len(m.boards) == 0 {
		return sbMutedStyle.Render("no boards played")
	}
	tabs := make([]string, len(m.boards))
	for i, gs := range m.boards {
		label := fmt.Sprintf("%s %s", boardLabel(gs.Board), colourLabel(gs.Board))
		if i == m.boardCursor {
			tabs[i] = sbActiveStyle.Render(label)
		} else {
			tabs[i] = sbMutedStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// statsLine summarizes every session on the selected board.
func (m ScoreboardModel) statsLine() string {
	gs, ok := m.currentBoard()
	if !ok || gs.Sessions == 0 {
		return ""
	}
	best := "-"
	if gs.Wins > 0 {
		best = fmt.Sprintf("%d", gs.BestMoves)
	}
	return fmt.Sprintf("best %s  |  %d sessions  %d cleared (%.0f%%)  avg %.1f moves",
		best, gs.Sessions, gs.Wins, gs.WinRate()*100, gs.AvgMoves)
}

func (m ScoreboardModel) tableContent() string {
	if len(m.results) > 0 {
		return m.table.View()
	}
	msg := "No wins on this board yet.\nClear every tile to set a best!"
	if len(m.boards) == 0 {
		msg = "No sessions recorded yet."
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4).Render(msg)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
