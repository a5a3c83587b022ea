// Package storage builds the user directory selected by configuration and
// owns its lifetime: create it once at start-up, share it between every
// registration, close it on exit.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/dmitrijs2005/gophchat/internal/migrations"
	"github.com/dmitrijs2005/gophchat/internal/users"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Manager interface {
	Users() users.Repository
	Close() error
}

// NewManager returns the directory for backend. Both backends live only in
// process memory; "sqlite" runs the same schema migrations a file-backed
// database would, against an in-memory SQLite database.
func NewManager(ctx context.Context, backend string, logger logging.Logger) (Manager, error) {
	switch backend {
	case "", BackendMemory:
		return NewInMemoryManager(), nil
	case BackendSQLite:
		return NewSQLiteManager(ctx, logger)
	}
	return nil, fmt.Errorf("unknown registry backend %q", backend)
}

type InMemoryManager struct {
	users *users.InMemoryRepository
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryManager) Close() error {
	return nil
}

type SQLiteManager struct {
	db    *sql.DB
	users *users.SQLiteRepository
}

func NewSQLiteManager(ctx context.Context, logger logging.Logger) (*SQLiteManager, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &SQLiteManager{db: db, users: users.NewSQLiteRepository(db)}, nil
}

func (m *SQLiteManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteManager) Close() error {
	return m.db.Close()
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.Debug(ctx, "migration applied", "source", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
