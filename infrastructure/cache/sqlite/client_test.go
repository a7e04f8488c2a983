package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewSQLiteCache_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteCache(""); err == nil {
		t.Error("NewSQLiteCache should fail with an empty path")
	}
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestSQLiteCache_GetMissingKey(t *testing.T) {
	cache := newTestCache(t)

	if _, err := cache.Get(context.Background(), "absent"); err == nil {
		t.Error("Get should return error for missing key")
	}
}

func TestSQLiteCache_ExpiredKeyNotReturned(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	// Store an already-expired entry directly.
	_, err := cache.db.Exec("INSERT INTO cache (key, value, expires_at) VALUES (?, ?, ?)",
		"old", []byte("v"), time.Now().Add(-time.Minute).Unix())
	if err != nil {
		t.Fatalf("seeding expired row: %v", err)
	}

	if _, err := cache.Get(ctx, "old"); err == nil {
		t.Error("Get should return error for an expired key")
	}
}

func TestSQLiteCache_SetReplacesExistingValue(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("one"), time.Minute)
	cache.Set(ctx, "key", []byte("two"), time.Minute)

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Get = %q, want the replaced value", got)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("key still present after Delete")
	}
}

func TestSQLiteCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "forever", []byte("v"), 0)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("Get returned error for a non-expiring key: %v", err)
	}
}

func TestSQLiteCache_PruneRemovesExpiredRows(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	cache.db.Exec("INSERT INTO cache (key, value, expires_at) VALUES (?, ?, ?)",
		"old", []byte("v"), time.Now().Add(-time.Minute).Unix())
	cache.Set(ctx, "fresh", []byte("v"), time.Hour)

	if err := cache.Prune(ctx); err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}

	var count int
	cache.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count)
	if count != 1 {
		t.Errorf("rows after prune = %d, want 1", count)
	}
}
