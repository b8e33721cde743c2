// Package history persists the lines entered at the mUML prompt so they can
// be recalled across sessions.
package history

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mumlerr "github.com/msto63/mUML/foundation/core/error"
	"github.com/msto63/mUML/foundation/utils/filex"
)

// Entry is one line entered in a session.
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Line      string    `json:"line"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`
}

// Filter selects entries. Results are newest first.
type Filter struct {
	SessionID  string
	FailedOnly bool
	Limit      int
	Offset     int
}

// Store defines line history persistence.
type Store interface {
	Append(ctx context.Context, entry *Entry) error
	Query(ctx context.Context, filter Filter) ([]*Entry, error)
	// Lines returns up to limit distinct lines, oldest first, ready for
	// prompt recall.
	Lines(ctx context.Context, limit int) ([]string, error)
	Stats(ctx context.Context) (map[string]interface{}, error)
	Prune(ctx context.Context, keep int) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db         *sql.DB
	mu         sync.RWMutex
	maxEntries int
}

// Config holds configuration for the SQLite store.
type Config struct {
	Path string
	// MaxEntries caps the table size; 0 keeps everything.
	MaxEntries int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Path:       "./data/history.db",
		MaxEntries: 1000,
	}
}

// NewSQLiteStore opens (and creates if needed) the history database.
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if err := filex.EnsureDir(filepath.Dir(cfg.Path)); err != nil {
		return nil, historyError(err, "failed to create directory")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, historyError(err, "failed to open database")
	}

	store := &SQLiteStore{db: db, maxEntries: cfg.MaxEntries}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, historyError(err, "failed to initialize schema")
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		line TEXT NOT NULL,
		succeeded INTEGER NOT NULL,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timestamp DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records an entry, filling in ID and timestamp when missing, and
// trims the table to MaxEntries.
func (s *SQLiteStore) Append(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fillDefaults(entry)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, session_id, timestamp, line, succeeded, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.Timestamp, entry.Line, entry.Succeeded, nullString(entry.Error))
	if err != nil {
		return historyError(err, "failed to insert history entry")
	}

	if s.maxEntries > 0 {
		if _, err := s.prune(ctx, s.maxEntries); err != nil {
			return err
		}
	}
	return nil
}

// Query retrieves entries matching filter, newest first.
func (s *SQLiteStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, session_id, timestamp, line, succeeded, error FROM history WHERE 1=1`
	var args []interface{}

	if filter.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filter.SessionID)
	}
	if filter.FailedOnly {
		query += " AND succeeded = 0"
	}

	query += " ORDER BY seq DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, historyError(err, "failed to query history")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var errText sql.NullString
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.Timestamp, &entry.Line,
			&entry.Succeeded, &errText); err != nil {
			return nil, historyError(err, "failed to scan history entry")
		}
		if errText.Valid {
			entry.Error = errText.String
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, historyError(err, "failed to read history")
	}
	return entries, nil
}

// Lines returns up to limit recent distinct lines, oldest first.
func (s *SQLiteStore) Lines(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT line FROM history GROUP BY line ORDER BY MAX(seq) DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, historyError(err, "failed to query history lines")
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, historyError(err, "failed to scan history line")
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, historyError(err, "failed to read history lines")
	}
	reverse(lines)
	return lines, nil
}

// Stats returns entry counts and the time of the last entry.
func (s *SQLiteStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var total, failed, sessions int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN succeeded = 0 THEN 1 ELSE 0 END), 0), COUNT(DISTINCT session_id) FROM history`,
	).Scan(&total, &failed, &sessions); err != nil {
		return nil, historyError(err, "failed to read history stats")
	}
	stats["total_entries"] = total
	stats["failed_entries"] = failed
	stats["sessions"] = sessions

	var last sql.NullTime
	err := s.db.QueryRowContext(ctx, `SELECT timestamp FROM history ORDER BY seq DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, historyError(err, "failed to read last history entry")
	}
	if last.Valid {
		stats["last_entry"] = last.Time
	}
	return stats, nil
}

// Prune keeps the newest keep entries and deletes the rest.
func (s *SQLiteStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prune(ctx, keep)
}

func (s *SQLiteStore) prune(ctx context.Context, keep int) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM history WHERE seq NOT IN (
			SELECT seq FROM history ORDER BY seq DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, historyError(err, "failed to prune history")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory Store for tests and for sessions that run
// without a history file.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    []*Entry
	maxEntries int
}

// NewMemoryStore creates an empty in-memory store. maxEntries of 0 keeps
// everything.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{maxEntries: maxEntries}
}

// Append records an entry.
func (s *MemoryStore) Append(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fillDefaults(entry)
	copied := *entry
	s.entries = append(s.entries, &copied)
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		s.entries = append([]*Entry(nil), s.entries[len(s.entries)-s.maxEntries:]...)
	}
	return nil
}

// Query retrieves entries matching filter, newest first.
func (s *MemoryStore) Query(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Entry
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if filter.SessionID != "" && e.SessionID != filter.SessionID {
			continue
		}
		if filter.FailedOnly && e.Succeeded {
			continue
		}
		copied := *e
		results = append(results, &copied)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}
	return results, nil
}

// Lines returns up to limit recent distinct lines, oldest first.
func (s *MemoryStore) Lines(ctx context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var lines []string
	for i := len(s.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(lines) == limit {
			break
		}
		line := s.entries[i].Line
		if seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	reverse(lines)
	return lines, nil
}

// Stats returns entry counts.
func (s *MemoryStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var failed int64
	sessions := make(map[string]bool)
	for _, e := range s.entries {
		if !e.Succeeded {
			failed++
		}
		sessions[e.SessionID] = true
	}
	stats := map[string]interface{}{
		"total_entries":  int64(len(s.entries)),
		"failed_entries": failed,
		"sessions":       int64(len(sessions)),
	}
	if n := len(s.entries); n > 0 {
		stats["last_entry"] = s.entries[n-1].Timestamp
	}
	return stats, nil
}

// Prune keeps the newest keep entries.
func (s *MemoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if len(s.entries) <= keep {
		return 0, nil
	}
	deleted := int64(len(s.entries) - keep)
	s.entries = append([]*Entry(nil), s.entries[len(s.entries)-keep:]...)
	return deleted, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func fillDefaults(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func reverse(lines []string) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}

func historyError(err error, message string) error {
	return mumlerr.Wrap(err, message).WithCode(mumlerr.CodeHistory)
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
