// ABOUTME: SQLite cache implementation for single-node deployments that want persistence
// ABOUTME: Stores values in one key/value table with lazy expiration

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache implements the Cache interface on a local SQLite file.
// It survives restarts, which suits directory-lookup and icon caches
// whose entries are expensive to rebuild.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (or creates) the database file and ensures the
// cache table exists.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Single writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cache (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteCache{db: db}, nil
}

// Get retrieves a value, treating expired rows as missing and removing
// them on the way out.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64

	row := c.db.QueryRowContext(ctx, "SELECT value, expires_at FROM cache WHERE key = ?", key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	if expiresAt > 0 && time.Now().Unix() >= expiresAt {
		_, _ = c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
		return nil, errors.New("key not found")
	}

	return value, nil
}

// Set stores a value, replacing any existing entry. A zero TTL stores
// the key without expiration.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt)
	return err
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
	return err
}

// Prune removes every expired row. Call it periodically on long-lived
// deployments; Get already removes expired rows it touches.
func (c *SQLiteCache) Prune(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE expires_at > 0 AND expires_at <= ?", time.Now().Unix())
	return err
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
