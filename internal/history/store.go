package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so finished_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one finished round.
type Entry struct {
	PuzzleID    int       `json:"puzzleId"`
	PrintDate   string    `json:"printDate"`
	Solution    string    `json:"solution"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	Won         bool      `json:"won"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// Stats summarizes all recorded rounds.
type Stats struct {
	Played        int `json:"played"`
	Wins          int `json:"wins"`
	CurrentStreak int `json:"currentStreak"`
	MaxStreak     int `json:"maxStreak"`
	// Distribution maps attempts-to-win to the number of wins.
	Distribution map[int]int `json:"distribution"`
}

// Recorder stores finished rounds. The session driver only needs this much.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Store is a SQLite-backed Recorder.
type Store struct{ db *sql.DB }

// Open opens the database at path and applies migrations.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts a finished round.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now()
	}
	won := 0
	if e.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO rounds
            (puzzle_id, print_date, solution, attempts, max_attempts, won, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.PuzzleID, e.PrintDate, e.Solution, e.Attempts, e.MaxAttempts, won,
		e.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns the latest rounds, newest first. limit <= 0 means 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT puzzle_id, print_date, solution, attempts, max_attempts, won, finished_at
        FROM rounds
        ORDER BY finished_at DESC, id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var won int
		var finished string
		if err := rows.Scan(&e.PuzzleID, &e.PrintDate, &e.Solution, &e.Attempts, &e.MaxAttempts, &won, &finished); err != nil {
			return nil, err
		}
		e.Won = won == 1
		e.FinishedAt, _ = time.Parse(timeLayout, finished)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Stats computes totals, streaks, and the win distribution.
// Streaks follow finish order: a loss resets the current streak to zero.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{Distribution: map[int]int{}}
	rows, err := s.db.QueryContext(ctx, `
        SELECT won, attempts FROM rounds ORDER BY finished_at ASC, id ASC`)
	if err != nil {
		return st, fmt.Errorf("history: stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var won, attempts int
		if err := rows.Scan(&won, &attempts); err != nil {
			return st, err
		}
		st.Played++
		if won == 1 {
			st.Wins++
			st.CurrentStreak++
			st.Distribution[attempts]++
			if st.CurrentStreak > st.MaxStreak {
				st.MaxStreak = st.CurrentStreak
			}
		} else {
			st.CurrentStreak = 0
		}
	}
	return st, rows.Err()
}
