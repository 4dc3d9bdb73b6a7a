// Package progress persists per-key solve progress in SQLite so a long batch
// can be interrupted and resumed. Each key is either pending or complete with
// an integer result.
package progress

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrUnknownKey is returned by SetResult for a key that was never added.
var ErrUnknownKey = errors.New("progress: unknown key")

// Entry is one tracked unit of work.
type Entry struct {
	Key       string
	Complete  bool
	Result    int
	RunID     string
	UpdatedAt time.Time
}

// Cache is a SQLite-backed progress store. It is safe for concurrent use.
type Cache struct {
	db    *sql.DB
	runID string
}

// Key derives a stable cache key from a command, a part name and the raw
// input, so edited inputs never reuse stale results.
func Key(command, part string, input []byte) string {
	h := sha256.New()
	h.Write([]byte(command))
	h.Write([]byte{0})
	h.Write([]byte(part))
	h.Write([]byte{0})
	h.Write(input)
	return hex.EncodeToString(h.Sum(nil))
}

// Open opens or creates the store at path. Every Cache gets a fresh run ID
// that is recorded on the rows it writes.
func Open(path string) (*Cache, error) {
	if path == "" {
		return nil, fmt.Errorf("progress: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Cache{db: db, runID: uuid.NewString()}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS progress (
			key        TEXT PRIMARY KEY,
			complete   INTEGER NOT NULL DEFAULT 0,
			result     INTEGER,
			run_id     TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("progress: init schema: %w", err)
		}
	}
	return nil
}

// RunID identifies this Cache's writes.
func (c *Cache) RunID() string { return c.runID }

// Close releases the database.
func (c *Cache) Close() error { return c.db.Close() }

// Add registers key as pending unless it is already tracked.
func (c *Cache) Add(ctx context.Context, key string) error {
	return c.AddMany(ctx, []string{key}, false)
}

// AddMany registers keys as pending. With overwrite, already tracked keys
// are reset to pending as well.
func (c *Cache) AddMany(ctx context.Context, keys []string, overwrite bool) error {
	q := `INSERT INTO progress (key, complete, run_id, updated_at) VALUES (?, 0, ?, ?)
		ON CONFLICT(key) DO NOTHING`
	if overwrite {
		q = `INSERT INTO progress (key, complete, run_id, updated_at) VALUES (?, 0, ?, ?)
			ON CONFLICT(key) DO UPDATE SET complete = 0, result = NULL,
				run_id = excluded.run_id, updated_at = excluded.updated_at`
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	now := time.Now().UnixMilli()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, q, k, c.runID, now); err != nil {
			return fmt.Errorf("progress: add %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// SetResult marks key complete with result.
func (c *Cache) SetResult(ctx context.Context, key string, result int) error {
	res, err := c.db.ExecContext(ctx,
		`UPDATE progress SET complete = 1, result = ?, run_id = ?, updated_at = ? WHERE key = ?`,
		result, c.runID, time.Now().UnixMilli(), key)
	if err != nil {
		return fmt.Errorf("progress: set %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Result returns the stored result for key if it is complete.
func (c *Cache) Result(ctx context.Context, key string) (int, bool, error) {
	var v sql.NullInt64
	err := c.db.QueryRowContext(ctx,
		`SELECT result FROM progress WHERE key = ? AND complete = 1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int(v.Int64), v.Valid, nil
}

// Entries returns every tracked key ordered by key.
func (c *Cache) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT key, complete, result, run_id, updated_at FROM progress ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			result  sql.NullInt64
			updated int64
		)
		if err := rows.Scan(&e.Key, &e.Complete, &result, &e.RunID, &updated); err != nil {
			return nil, err
		}
		e.Result = int(result.Int64)
		e.UpdatedAt = time.UnixMilli(updated)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Incomplete returns the pending keys.
func (c *Cache) Incomplete(ctx context.Context) ([]string, error) {
	entries, err := c.Entries(ctx)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if !e.Complete {
			keys = append(keys, e.Key)
		}
	}
	return keys, nil
}

// Summary renders "<pending> of <total> remaining...".
func (c *Cache) Summary(ctx context.Context) (string, error) {
	var total, pending int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(1 - complete), 0) FROM progress`).Scan(&total, &pending)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d of %d remaining...", pending, total), nil
}
