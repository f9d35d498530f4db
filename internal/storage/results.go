package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is one finished round.
type Result struct {
	ID        string
	GameID    string
	Player    string // Display name of the signed-in student, empty for guests
	Score     int
	Attempts  int
	Completed bool
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Completed  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestTries  int // Fewest attempts in a completed round, zero when none
	LastPlayed time.Time
}

// BoardQuery selects rounds for a leaderboard.
type BoardQuery struct {
	GameID     string
	Player     string // Only rounds by this player when Mine is set
	Mine       bool
	ByAttempts bool // Rank completed rounds by fewest attempts instead of score
	Limit      int
}

const resultColumns = `id, game_id, player, score, attempts, completed, created_at`

// SaveResult records a finished round and returns it with its ID and
// timestamp filled in.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.GameID == "" {
		return Result{}, errors.New("storage: result needs a game id")
	}
	r.ID = uuid.NewString()
	ts := s.timestamp()

	_, err := s.db.Exec(
		`INSERT INTO results (`+resultColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Player, r.Score, r.Attempts, r.Completed, ts,
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	r.CreatedAt = parseTime(ts)
	return r, nil
}

// TopScores retrieves the top N results for the given game.
// Results are ordered by score descending; earlier rounds win ties.
func (s *Store) TopScores(gameID string, limit int) ([]Result, error) {
	return s.Board(BoardQuery{GameID: gameID, Limit: limit})
}

// RecentResults retrieves the latest results across all games.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Attempts, &r.Completed, &createdAt); err != nil {
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

// HighScore returns the highest score for the given game.
// Returns 0 if no results exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE game_id = ?",
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

// ClearScores deletes all results for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Board retrieves the leaderboard rounds selected by q. Earlier rounds win
// ties in both orderings.
func (s *Store) Board(q BoardQuery) ([]Result, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}

	where, args := "game_id = ?", []any{q.GameID}
	if q.Mine {
		where += " AND player = ?"
		args = append(args, q.Player)
	}
	order := "score DESC"
	if q.ByAttempts {
		order = "completed DESC, attempts ASC"
	}
	args = append(args, q.Limit)

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE `+where+`
		 ORDER BY `+order+`, created_at ASC, rowid ASC
		 LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board: %w", err)
	}
	return scanResults(rows)
}

const statsColumns = `COUNT(*), COALESCE(SUM(completed), 0), COALESCE(MAX(score), 0),
	COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
	COALESCE(MIN(CASE WHEN completed = 1 THEN attempts END), 0), MAX(created_at)`

func scanStats(row interface{ Scan(...any) error }, gs *GameStats) error {
	var lastPlayed any
	err := row.Scan(&gs.GamesCount, &gs.Completed, &gs.HighScore, &gs.AvgScore,
		&gs.TotalScore, &gs.BestTries, &lastPlayed)
	if err != nil {
		return err
	}
	gs.LastPlayed = parseTime(lastPlayed)
	return nil
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM results WHERE game_id = ?`, gameID)
	if err := scanStats(row, stats); err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return stats, nil
}

// PlayerStats is GameStats limited to one player's rounds.
func (s *Store) PlayerStats(gameID, player string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	row := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM results WHERE game_id = ? AND player = ?`,
		gameID, player,
	)
	if err := scanStats(row, stats); err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	return stats, nil
}

// AllGameStats retrieves statistics for all games that have been played.
func (s *Store) AllGameStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, `+statsColumns+`
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		err := scanStats(scanFunc(func(dest ...any) error {
			return rows.Scan(append([]any{&gs.GameID}, dest...)...)
		}), &gs)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanFunc adapts a function to the Scan method shared by sql.Row and sql.Rows.
type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }
