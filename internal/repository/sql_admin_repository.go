package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/notice-board/internal/domain"
)

type adminRow struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r adminRow) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

type sqlAdminRepository struct {
	db *sqlx.DB
}

// NewSQLAdminRepository returns a MySQL/SQLite implementation.
func NewSQLAdminRepository(db *sqlx.DB) AdminRepository {
	return &sqlAdminRepository{db: db}
}

func (r *sqlAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
        INSERT INTO admins (name, email, password)
        VALUES (?, ?, ?)`),
		admin.Name,
		admin.Email,
		admin.PasswordHash,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	var row adminRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(`
        SELECT id, name, email, password, created_at
        FROM admins WHERE id = ?`), id); err != nil {
		return err
	}
	*admin = *row.toDomain()
	return nil
}

func (r *sqlAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var row adminRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(`
        SELECT id, name, email, password, created_at
        FROM admins WHERE email = ?`), email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}
