package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/config"
	"github.com/spec-kit/notice-board/internal/persistence"
)

// Store bundles the repositories of one backend with its connection handle.
type Store struct {
	Admins  AdminRepository
	Notices NoticeRepository

	driver string
	db     interface {
		persistence.Execer
		Ping(ctx context.Context) error
		Close()
	}
}

// OpenStore connects to the configured backend: pgx for postgres, sqlx for
// mysql and sqlite.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		pool := pg.PoolHandle()
		return &Store{
			Admins:  NewAdminRepository(pool),
			Notices: NewNoticeRepository(pool),
			driver:  cfg.Driver,
			db:      pg,
		}, nil
	case config.DriverMySQL, config.DriverSQLite:
		sqlDB, err := persistence.NewSQLDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(sqlDB), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// NewSQLStore wraps an open MySQL or SQLite handle.
func NewSQLStore(db *persistence.SQLDB) *Store {
	return &Store{
		Admins:  NewSQLAdminRepository(db.DB),
		Notices: NewSQLNoticeRepository(db.DB),
		driver:  db.Dialect,
		db:      db,
	}
}

// Migrate applies the embedded schema for the store's dialect.
func (s *Store) Migrate(ctx context.Context, logger *zap.Logger) error {
	return persistence.RunMigrations(ctx, s.db, s.driver, logger)
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Driver names the backend.
func (s *Store) Driver() string {
	return s.driver
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.db.Close()
}
