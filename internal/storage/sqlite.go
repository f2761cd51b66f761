// Package storage provides SQLite-based persistence for session results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Board identifies a board configuration. Move counts are only comparable
// between results played on the same board.
type Board struct {
	Size    int
	Colours int
}

// String formats the board as "8x8/1".
func (b Board) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Size, b.Size, b.Colours)
}

// Result is one finished (or abandoned) rollcube session.
type Result struct {
	ID        int64
	RunID     string // uuid assigned per session
	GameID    string
	Moves     int
	Won       bool
	GridSize  int
	Colours   int
	CreatedAt time.Time
}

// Board returns the board the result was played on.
func (r Result) Board() Board {
	return Board{Size: r.GridSize, Colours: r.Colours}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			grid_size INTEGER NOT NULL,
			colours INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		DROP INDEX IF EXISTS idx_results_best;
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(game_id, grid_size, colours, won, moves);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewRunID returns a fresh session identifier.
func NewRunID() string {
	return uuid.NewString()
}

// SaveResult records a session result. An empty RunID is filled in.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	} else if _, err := uuid.Parse(r.RunID); err != nil {
		return 0, fmt.Errorf("storage: invalid run id %q: %w", r.RunID, err)
	}

	res, err := s.db.Exec(
		`INSERT INTO results (run_id, game_id, moves, won, grid_size, colours)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Moves, r.Won, r.GridSize, r.Colours,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N winning results for the given game and board.
// Results are ordered by move count ascending; ties go to the earlier run.
func (s *Store) TopResults(gameID string, board Board, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT id, run_id, game_id, moves, won, grid_size, colours, created_at
		 FROM results
		 WHERE game_id = ? AND grid_size = ? AND colours = ? AND won = 1
		 ORDER BY moves ASC, id ASC
		 LIMIT ?`,
		gameID, board.Size, board.Colours, limit,
	)
}

// RecentResults retrieves the latest N results for the given game, won or lost.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT id, run_id, game_id, moves, won, grid_size, colours, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// ResultByRunID retrieves a result by its run ID, or nil if none exists.
func (s *Store) ResultByRunID(runID string) (*Result, error) {
	var r Result
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, run_id, game_id, moves, won, grid_size, colours, created_at
		 FROM results
		 WHERE run_id = ?`,
		runID,
	).Scan(&r.ID, &r.RunID, &r.GameID, &r.Moves, &r.Won, &r.GridSize, &r.Colours, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Moves, &r.Won, &r.GridSize, &r.Colours, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestMoves returns the lowest winning move count for the given game and board.
// ok is false if that board has never been won.
func (s *Store) BestMoves(gameID string, board Board) (best int, ok bool, err error) {
	var moves sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MIN(moves) FROM results
		 WHERE game_id = ? AND grid_size = ? AND colours = ? AND won = 1`,
		gameID, board.Size, board.Colours,
	).Scan(&moves)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}

	return int(moves.Int64), true, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for one board of a game.
type GameStats struct {
	GameID     string
	Board      Board
	Sessions   int
	Wins       int
	BestMoves  int // 0 when never won
	AvgMoves   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of sessions won.
func (g GameStats) WinRate() float64 {
	if g.Sessions == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Sessions)
}

// GetGameStats retrieves aggregated statistics for a game on one board.
func (s *Store) GetGameStats(gameID string, board Board) (*GameStats, error) {
	stats := &GameStats{GameID: gameID, Board: board}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN moves END), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results
		 WHERE game_id = ? AND grid_size = ? AND colours = ?`,
		gameID, board.Size, board.Colours,
	).Scan(&stats.Sessions, &stats.Wins, &stats.BestMoves, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// BoardStats retrieves statistics for every board the game has been played
// on, smallest board first.
func (s *Store) BoardStats(gameID string) ([]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT grid_size, colours, COUNT(*), SUM(won),
		        COALESCE(MIN(CASE WHEN won = 1 THEN moves END), 0),
		        AVG(moves), MAX(created_at)
		 FROM results
		 WHERE game_id = ?
		 GROUP BY grid_size, colours
		 ORDER BY grid_size ASC, colours ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	defer rows.Close()

	var stats []GameStats
	for rows.Next() {
		gs := GameStats{GameID: gameID}
		var lastPlayed any
		if err := rows.Scan(&gs.Board.Size, &gs.Board.Colours, &gs.Sessions, &gs.Wins, &gs.BestMoves, &gs.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, gs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
