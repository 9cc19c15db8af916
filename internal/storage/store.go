package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// KV is the key-value persistence port the board document is written through.
type KV interface {
	// Get returns the value stored under key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a KV backend.
type Options struct {
	Backend  string
	DBPath   string
	RedisURL string
}

// Open creates the KV backend described by opts.
func Open(opts Options) (KV, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		if dir := filepath.Dir(opts.DBPath); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		db, err := New(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		return NewSQLiteStore(db), nil
	case BackendRedis:
		return NewRedisStore(opts.RedisURL)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
