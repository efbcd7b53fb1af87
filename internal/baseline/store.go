// Package baseline stores accepted violations in SQLite.
//
// A baseline is a snapshot of the violations a project has decided to live
// with. The check command can suppress any violation recorded in the
// current baseline, so new findings stand out while old ones stay quiet
// until someone fixes them.
package baseline

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver "sqlite"
)

// Entry is one accepted violation.
type Entry struct {
	Path    string
	RuleID  string
	Line    int
	Message string
}

// Snapshot describes one baseline write.
type Snapshot struct {
	ID        string
	CreatedAt time.Time
	Entries   int
}

// Store is the SQLite-backed baseline store.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewStore creates an unopened store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// Open opens the SQLite database at path, creating it if needed.
// Use ":memory:" for an in-memory database.
func (s *Store) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(wal)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open baseline database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping baseline database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Write replaces the baseline with the given entries and records a
// snapshot. It returns the snapshot ID.
func (s *Store) Write(entries []Entry) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("database not opened")
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	s.logger.Debug("writing baseline snapshot",
		slog.String("id", id), slog.Int("entries", len(entries)))

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return "", fmt.Errorf("failed to clear baseline: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO snapshots (id, created_at, entry_count) VALUES (?, ?, ?)`,
		id, now, len(entries),
	); err != nil {
		return "", fmt.Errorf("failed to record snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO entries (snapshot_id, path, rule_id, line, message) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		if _, err := stmt.Exec(id, e.Path, e.RuleID, e.Line, e.Message); err != nil {
			return "", fmt.Errorf("failed to insert baseline entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit baseline: %w", err)
	}

	return id, nil
}

// Load reads the current baseline into a lookup set.
func (s *Store) Load() (*Set, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(`SELECT path, rule_id, line, message FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline: %w", err)
	}
	defer func() { _ = rows.Close() }()

	set := &Set{keys: make(map[string]bool)}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.RuleID, &e.Line, &e.Message); err != nil {
			return nil, fmt.Errorf("failed to scan baseline entry: %w", err)
		}
		set.keys[entryKey(e)] = true
		set.count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	return set, nil
}

// Snapshots lists recorded snapshots, newest first.
func (s *Store) Snapshots() ([]Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, entry_count FROM snapshots ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.CreatedAt, &snap.Entries); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	return snaps, nil
}

// Clear removes all baseline entries and snapshots.
func (s *Store) Clear() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	return tx.Commit()
}

// Set is an in-memory baseline lookup.
type Set struct {
	keys  map[string]bool
	count int
}

// Has reports whether the baseline contains the violation.
func (s *Set) Has(e Entry) bool {
	if s == nil {
		return false
	}
	return s.keys[entryKey(e)]
}

// Len returns the number of entries in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

func entryKey(e Entry) string {
	return fmt.Sprintf("%s\x00%s\x00%d\x00%s", e.Path, e.RuleID, e.Line, e.Message)
}
