package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/notice-board/internal/domain"
)

// PgxQuerier is the subset of *pgxpool.Pool the Postgres repositories use.
type PgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type noticeRepository struct {
	pool PgxQuerier
}

// NewNoticeRepository instantiates the Postgres repository.
func NewNoticeRepository(pool PgxQuerier) NoticeRepository {
	return &noticeRepository{pool: pool}
}

// Create inserts the notice and reads it back joined with its author in the
// same statement.
func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	const query = `
        WITH n AS (
            INSERT INTO notices (title, content, department, date, admin_id)
            VALUES ($1,$2,$3,$4,$5)
            RETURNING id, title, content, department, date, admin_id, created_at
        )
        SELECT n.id, n.title, n.content, n.department, n.date, n.admin_id, a.name AS admin_name, n.created_at
        FROM n
        LEFT JOIN admins a ON n.admin_id = a.id`
	stored, err := scanNotice(r.pool.QueryRow(ctx, query,
		notice.Title,
		notice.Content,
		notice.Department,
		notice.Date,
		notice.AdminID,
	))
	if err != nil {
		return err
	}
	*notice = *stored
	return nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	query := noticeSelect + `
        WHERE n.id=$1`
	notice, err := scanNotice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, err
	}
	return notice, nil
}

func (r *noticeRepository) List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, error) {
	query, args := buildNoticeListQuery(filter, dollarPlaceholder, dateAsTime)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Notice{}
	for rows.Next() {
		notice, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *notice)
	}
	return result, rows.Err()
}

func (r *noticeRepository) Update(ctx context.Context, id int64, input domain.NoticeInput) (bool, error) {
	const query = `
        UPDATE notices SET title=$1, content=$2, department=$3, date=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		input.Title,
		input.Content,
		input.Department,
		input.Date,
		id,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *noticeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM notices WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanNotice(row pgx.Row) (*domain.Notice, error) {
	var (
		notice  domain.Notice
		adminID *int64
	)
	if err := row.Scan(
		&notice.ID,
		&notice.Title,
		&notice.Content,
		&notice.Department,
		&notice.Date,
		&adminID,
		&notice.AdminName,
		&notice.CreatedAt,
	); err != nil {
		return nil, err
	}
	if adminID != nil {
		notice.AdminID = *adminID
	}
	return &notice, nil
}
