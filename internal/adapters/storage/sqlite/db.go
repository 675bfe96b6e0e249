package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/config"
)

// ErrLocked is returned by Open when another process holds the database lock.
var ErrLocked = fmt.Errorf("%w: database file is locked by another process", domain.ErrUnavailable)

// DB is an open storage engine: one SQLite connection guarded by an exclusive
// lock on "<path>.lock".
type DB struct {
	db     *sql.DB
	lock   *flock.Flock
	path   string
	logger *slog.Logger
}

// Open prepares the database directory, takes the file lock, opens the
// connection, applies pragmas, and runs pending migrations when
// cfg.AutoMigrate is set.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	lock := flock.New(cfg.Path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire database lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection: every statement and transaction is serialized by the
	// driver pool, matching the single-writer run loop above it.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()),
	}
	for _, pragma := range pragmas {
		if _, execErr := sqlDB.ExecContext(ctx, pragma); execErr != nil {
			_ = sqlDB.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	d := &DB{db: sqlDB, lock: lock, path: cfg.Path, logger: logger}

	if cfg.AutoMigrate {
		if err := d.Migrate(ctx); err != nil {
			_ = d.Close()
			return nil, err
		}
	}

	logger.InfoContext(ctx, "storage engine opened",
		slog.String("path", cfg.Path),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return d, nil
}

// Close closes the connection and releases the file lock.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return errors.Join(d.db.Close(), d.lock.Unlock())
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Space returns the todo record space bound to the connection (outside any
// transaction).
func (d *DB) Space() *Space {
	return &Space{q: d.db}
}
