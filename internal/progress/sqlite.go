package progress

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is the profile used for local play.
const DefaultProfile = "local"

// Run is one finished level session in the history table.
type Run struct {
	ID        string
	Profile   string
	Level     int
	Score     int
	Coins     int
	Outcome   string
	CreatedAt time.Time
}

// SQLiteStore keeps progress for any number of profiles in one database.
// Each value is bound to a single profile; Profile derives siblings that
// share the connection.
type SQLiteStore struct {
	db      *sql.DB
	owner   bool
	profile string
	logger  *log.Logger

	mu   *sync.Mutex // serialises read-modify-write across siblings
	last Record      // last good record, returned when the database fails
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string, logger *log.Logger) (*SQLiteStore, error) {
	path, err := expandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot prepare %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY
	// between concurrent SSH sessions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: cannot connect to database: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}

	store := &SQLiteStore{
		db:      db,
		owner:   true,
		profile: DefaultProfile,
		logger:  logger.WithPrefix("progress"),
		mu:      &sync.Mutex{},
		last:    Defaults(),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT PRIMARY KEY,
			max_level_reached INTEGER NOT NULL DEFAULT 1,
			total_score INTEGER NOT NULL DEFAULT 0,
			total_coins INTEGER NOT NULL DEFAULT 0,
			games_played INTEGER NOT NULL DEFAULT 0,
			games_won INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS level_records (
			profile TEXT NOT NULL,
			level INTEGER NOT NULL,
			best_score INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (profile, level)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Profile returns a store for another profile sharing this database.
func (s *SQLiteStore) Profile(name string) *SQLiteStore {
	if name == "" {
		name = DefaultProfile
	}
	return &SQLiteStore{
		db:      s.db,
		profile: name,
		logger:  s.logger,
		mu:      s.mu,
		last:    Defaults(),
	}
}

// ProfileName returns the profile this store reads and writes.
func (s *SQLiteStore) ProfileName() string {
	return s.profile
}

// Close closes the database connection. Stores derived with Profile do
// not own the connection and closing them is a no-op.
func (s *SQLiteStore) Close() error {
	if s.db != nil && s.owner {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored record, or defaults when it cannot be read.
func (s *SQLiteStore) Load() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load(s.db)
	if err != nil {
		s.logger.Warn("cannot load progress, using defaults", "profile", s.profile, "err", err)
		return Defaults()
	}
	s.last = rec
	return rec.Clone()
}

// Update applies a session result and appends it to the run history.
func (s *SQLiteStore) Update(res Result) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.update(res)
	if err != nil {
		s.logger.Warn("cannot save progress", "profile", s.profile, "level", res.Level, "err", err)
		s.last = s.last.Apply(res)
		return s.last.Clone()
	}
	s.last = rec
	return rec.Clone()
}

// Reset deletes the profile's progress and run history.
func (s *SQLiteStore) Reset() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = Defaults()
	if err := s.reset(); err != nil {
		s.logger.Warn("cannot reset progress", "profile", s.profile, "err", err)
	}
	return s.last.Clone()
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
}

func (s *SQLiteStore) load(q queryer) (Record, error) {
	var rec Record
	err := q.QueryRow(
		`SELECT max_level_reached, total_score, total_coins, games_played, games_won
		 FROM progress WHERE profile = ?`,
		s.profile,
	).Scan(&rec.MaxLevelReached, &rec.TotalScore, &rec.TotalCoins, &rec.GamesPlayed, &rec.GamesWon)
	if errors.Is(err, sql.ErrNoRows) {
		return Defaults(), nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("progress: cannot query progress: %w", err)
	}

	rows, err := q.Query(
		"SELECT level, best_score FROM level_records WHERE profile = ?",
		s.profile,
	)
	if err != nil {
		return Record{}, fmt.Errorf("progress: cannot query level records: %w", err)
	}
	defer rows.Close()

	rec.LevelRecords = make(map[int]int)
	for rows.Next() {
		var level, best int
		if err := rows.Scan(&level, &best); err != nil {
			return Record{}, fmt.Errorf("progress: cannot scan row: %w", err)
		}
		rec.LevelRecords[level] = best
	}
	if err := rows.Err(); err != nil {
		return Record{}, fmt.Errorf("progress: row iteration error: %w", err)
	}

	rec.Backfill()
	return rec, nil
}

func (s *SQLiteStore) update(res Result) (Record, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Record{}, fmt.Errorf("progress: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	cur, err := s.load(tx)
	if err != nil {
		return Record{}, err
	}
	rec := cur.Apply(res)

	_, err = tx.Exec(
		`INSERT INTO progress (profile, max_level_reached, total_score, total_coins, games_played, games_won, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   max_level_reached = excluded.max_level_reached,
		   total_score = excluded.total_score,
		   total_coins = excluded.total_coins,
		   games_played = excluded.games_played,
		   games_won = excluded.games_won,
		   updated_at = excluded.updated_at`,
		s.profile, rec.MaxLevelReached, rec.TotalScore, rec.TotalCoins, rec.GamesPlayed, rec.GamesWon,
	)
	if err != nil {
		return Record{}, fmt.Errorf("progress: cannot save progress: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO level_records (profile, level, best_score) VALUES (?, ?, ?)
		 ON CONFLICT(profile, level) DO UPDATE SET best_score = excluded.best_score`,
		s.profile, res.Level, rec.LevelRecords[res.Level],
	)
	if err != nil {
		return Record{}, fmt.Errorf("progress: cannot save level record: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO runs (id, profile, level, score, coins, outcome) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.NewString(), s.profile, res.Level, res.Score, res.Coins, res.Outcome(),
	)
	if err != nil {
		return Record{}, fmt.Errorf("progress: cannot save run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("progress: cannot commit: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("progress: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"progress", "level_records", "runs"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile = ?", s.profile); err != nil {
			return fmt.Errorf("progress: cannot clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// RecentRuns retrieves the most recent runs of this profile.
func (s *SQLiteStore) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, level, score, coins, outcome, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		s.profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Level, &r.Score, &r.Coins, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("progress: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress: row iteration error: %w", err)
	}

	return runs, nil
}

// Profiles lists every profile with stored progress.
func (s *SQLiteStore) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM progress ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("progress: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("progress: cannot scan row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
