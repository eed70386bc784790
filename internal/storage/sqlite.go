// Package storage keeps finished run results in SQLite through the
// pure-Go modernc.org/sqlite driver. Simulation state is never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario_id TEXT    NOT NULL,
	score       INTEGER NOT NULL,
	kills       INTEGER NOT NULL DEFAULT 0,
	deaths      INTEGER NOT NULL DEFAULT 0,
	ticks       INTEGER NOT NULL DEFAULT 0,
	seed        INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(scenario_id, score DESC);
`

const (
	runColumns = `id, scenario_id, score, kills, deaths, ticks, seed, created_at`
	bestFirst  = `ORDER BY score DESC, id ASC`

	statsQuery = `SELECT scenario_id, COUNT(*), MAX(score), AVG(score),
		SUM(kills), SUM(deaths), MAX(created_at) FROM runs`

	// sqliteTime is the layout CURRENT_TIMESTAMP writes.
	sqliteTime = "2006-01-02 15:04:05"
)

// Store is a handle on the results database.
type Store struct {
	db *sql.DB
}

// RunRecord is the outcome of one finished run.
type RunRecord struct {
	ID         int64
	ScenarioID string
	Score      int
	Kills      int
	Deaths     int
	Ticks      int
	Seed       int64
	CreatedAt  time.Time
}

// ScenarioStats aggregates every run of one scenario.
type ScenarioStats struct {
	ScenarioID  string
	Runs        int
	HighScore   int
	AvgScore    float64
	TotalKills  int64
	TotalDeaths int64
	LastPlayed  time.Time
}

// Open opens the database at path, creating it and its parent directories
// when missing. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun inserts r and returns its id.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.ScenarioID == "" {
		return 0, errors.New("storage: run has no scenario")
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (scenario_id, score, kills, deaths, ticks, seed) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ScenarioID, r.Score, r.Kills, r.Deaths, r.Ticks, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted id: %w", err)
	}
	return id, nil
}

// TopRuns returns the best limit runs of a scenario. Ties go to the
// earlier run. limit <= 0 means 10.
func (s *Store) TopRuns(scenarioID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(`WHERE scenario_id = ? `+bestFirst+` LIMIT ?`, scenarioID, limit)
}

// AllRuns returns every run of a scenario, best first.
func (s *Store) AllRuns(scenarioID string) ([]RunRecord, error) {
	return s.queryRuns(`WHERE scenario_id = ? `+bestFirst, scenarioID)
}

func (s *Store) queryRuns(where string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r       RunRecord
			created any
		)
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.Score, &r.Kills, &r.Deaths, &r.Ticks, &r.Seed, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(created)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read runs: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score of a scenario, 0 when unplayed.
func (s *Store) HighScore(scenarioID string) (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM runs WHERE scenario_id = ?`, scenarioID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// ClearRuns deletes every run of a scenario.
func (s *Store) ClearRuns(scenarioID string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE scenario_id = ?`, scenarioID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates one scenario. An unplayed scenario yields zero values.
func (s *Store) Stats(scenarioID string) (*ScenarioStats, error) {
	all, err := s.queryStats(` WHERE scenario_id = ? GROUP BY scenario_id`, scenarioID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[scenarioID]; ok {
		return st, nil
	}
	return &ScenarioStats{ScenarioID: scenarioID}, nil
}

// AllStats aggregates every scenario that has at least one run.
func (s *Store) AllStats() (map[string]*ScenarioStats, error) {
	return s.queryStats(` GROUP BY scenario_id`)
}

func (s *Store) queryStats(tail string, args ...any) (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(statsQuery+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var (
			st   ScenarioStats
			last any
		)
		if err := rows.Scan(&st.ScenarioID, &st.Runs, &st.HighScore, &st.AvgScore, &st.TotalKills, &st.TotalDeaths, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
		}
		st.LastPlayed = parseTime(last)
		stats[st.ScenarioID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read stats: %w", err)
	}
	return stats, nil
}

// parseTime accepts driver-decoded times and raw SQLite text.
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
