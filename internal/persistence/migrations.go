package persistence

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"go.uber.org/zap"
)

//go:embed migrations
var migrationFiles embed.FS

// Execer runs a single migration statement.
type Execer interface {
	ExecSQL(ctx context.Context, statement string) error
}

// ExecFunc adapts a function to Execer.
type ExecFunc func(ctx context.Context, statement string) error

// ExecSQL implements Execer.
func (f ExecFunc) ExecSQL(ctx context.Context, statement string) error {
	return f(ctx, statement)
}

// ExecSQL runs a single statement on the pgx pool.
func (p *Postgres) ExecSQL(ctx context.Context, statement string) error {
	_, err := p.Pool.Exec(ctx, statement)
	return err
}

// ExecSQL runs a single statement on the database/sql pool.
func (s *SQLDB) ExecSQL(ctx context.Context, statement string) error {
	_, err := s.DB.ExecContext(ctx, statement)
	return err
}

// MigrationNames lists the embedded migration files for a dialect in apply order.
func MigrationNames(dialect string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, path.Join("migrations", dialect))
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}
	sort.Strings(filenames)
	return filenames, nil
}

// RunMigrations executes the embedded SQL migrations for dialect. Each file
// holds one idempotent statement.
func RunMigrations(ctx context.Context, db Execer, dialect string, logger *zap.Logger) error {
	filenames, err := MigrationNames(dialect)
	if err != nil {
		return err
	}

	for _, name := range filenames {
		content, err := migrationFiles.ReadFile(path.Join("migrations", dialect, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		logger.Info("applying migration", zap.String("dialect", dialect), zap.String("file", name))
		if err := db.ExecSQL(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(filenames)))
	return nil
}
