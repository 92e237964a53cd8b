package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/spec-kit/notice-board/internal/config"
)

// SQLDB wraps a database/sql pool for the MySQL and SQLite backends.
type SQLDB struct {
	DB      *sqlx.DB
	Dialect string
}

// NewSQLDB opens and pings a MySQL or SQLite pool.
func NewSQLDB(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*SQLDB, error) {
	var driverName string
	switch cfg.Driver {
	case config.DriverMySQL:
		driverName = "mysql"
	case config.DriverSQLite:
		driverName = "sqlite"
	default:
		return nil, fmt.Errorf("driver %q is not served by database/sql", cfg.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, driverName, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("%s connect: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite serialises writers; an in-memory database also lives on a single connection.
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxConns > 0 {
			db.SetMaxOpenConns(int(cfg.MaxConns))
		}
		if cfg.MinConns > 0 {
			db.SetMaxIdleConns(int(cfg.MinConns))
		}
		if cfg.ConnMaxIdleSec > 0 {
			db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleSec) * time.Second)
		}
		if cfg.ConnMaxLifeSec > 0 {
			db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeSec) * time.Second)
		}
	}

	logger.Info("connected to database", zap.String("driver", cfg.Driver))
	return &SQLDB{DB: db, Dialect: cfg.Driver}, nil
}

// NewSQLite opens an in-memory SQLite database, used by tests and local runs.
func NewSQLite(ctx context.Context, logger *zap.Logger) (*SQLDB, error) {
	return NewSQLDB(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    ":memory:?_pragma=foreign_keys(1)",
	}, logger)
}

// Close releases pool resources.
func (s *SQLDB) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}

// Ping verifies database connectivity.
func (s *SQLDB) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("database not configured")
	}
	return s.DB.PingContext(ctx)
}
