// Package storage provides SQLite-based persistence for scores and replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Replay records everything needed to reproduce a finished game: the board
// parameters, the seed, and the sequence of applied moves as edge indices.
type Replay struct {
	ID        int64
	GameID    string
	Seed      int64
	Rows      int
	Cols      int
	CellTypes int
	Moves     []int // Edge indices in play order
	Score     int
	CreatedAt time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			cell_types INTEGER NOT NULL,
			moves TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveReplay records a finished game's replay.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays (game_id, seed, rows, cols, cell_types, moves, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.Rows, r.Cols, r.CellTypes, encodeMoves(r.Moves), r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ReplayByID retrieves a replay by its record ID.
// Returns nil if no such replay exists.
func (s *Store) ReplayByID(id int64) (*Replay, error) {
	var r Replay
	var moves string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, rows, cols, cell_types, moves, score, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Seed, &r.Rows, &r.Cols, &r.CellTypes, &moves, &r.Score, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	r.Moves, err = decodeMoves(moves)
	if err != nil {
		return nil, fmt.Errorf("storage: corrupt replay %d: %w", id, err)
	}
	r.CreatedAt = parseTimestamp(createdAt)

	return &r, nil
}

// RecentReplays retrieves the most recent replays for a game.
func (s *Store) RecentReplays(gameID string, limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, rows, cols, cell_types, moves, score, created_at
		 FROM replays
		 WHERE game_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var results []Replay
	for rows.Next() {
		var r Replay
		var moves string
		var createdAt any

		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Rows, &r.Cols, &r.CellTypes, &moves, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Moves, err = decodeMoves(moves)
		if err != nil {
			return nil, fmt.Errorf("storage: corrupt replay %d: %w", r.ID, err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// encodeMoves flattens edge indices into a comma-separated string.
func encodeMoves(moves []int) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

// decodeMoves parses the stored move string back into edge indices.
func decodeMoves(encoded string) ([]int, error) {
	if encoded == "" {
		return nil, nil
	}
	parts := strings.Split(encoded, ",")
	moves := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad move %q: %w", p, err)
		}
		moves[i] = v
	}
	return moves, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
