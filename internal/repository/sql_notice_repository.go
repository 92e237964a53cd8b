package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spec-kit/notice-board/internal/domain"
)

// noticeRow maps the joined listing columns for sqlx scanning.
type noticeRow struct {
	ID         int64          `db:"id"`
	Title      string         `db:"title"`
	Content    string         `db:"content"`
	Department string         `db:"department"`
	Date       time.Time      `db:"date"`
	AdminID    sql.NullInt64  `db:"admin_id"`
	AdminName  sql.NullString `db:"admin_name"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r noticeRow) toDomain() domain.Notice {
	notice := domain.Notice{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		Department: r.Department,
		Date:       r.Date,
		CreatedAt:  r.CreatedAt,
	}
	if r.AdminID.Valid {
		notice.AdminID = r.AdminID.Int64
	}
	if r.AdminName.Valid {
		name := r.AdminName.String
		notice.AdminName = &name
	}
	return notice
}

type sqlNoticeRepository struct {
	db *sqlx.DB
}

// NewSQLNoticeRepository returns a MySQL/SQLite implementation. Dates are
// bound as YYYY-MM-DD strings, which both engines compare against DATE columns.
func NewSQLNoticeRepository(db *sqlx.DB) NoticeRepository {
	return &sqlNoticeRepository{db: db}
}

func (r *sqlNoticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
        INSERT INTO notices (title, content, department, date, admin_id)
        VALUES (?, ?, ?, ?, ?)`),
		notice.Title,
		notice.Content,
		notice.Department,
		dateAsString(notice.Date),
		notice.AdminID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*notice = *stored
	return nil
}

func (r *sqlNoticeRepository) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	var row noticeRow
	query := noticeSelect + `
        WHERE n.id = ?`
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, err
	}
	notice := row.toDomain()
	return &notice, nil
}

func (r *sqlNoticeRepository) List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, error) {
	query, args := buildNoticeListQuery(filter, questionPlaceholder, dateAsString)

	var rows []noticeRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	result := make([]domain.Notice, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *sqlNoticeRepository) Update(ctx context.Context, id int64, input domain.NoticeInput) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
        UPDATE notices SET title = ?, content = ?, department = ?, date = ?
        WHERE id = ?`),
		input.Title,
		input.Content,
		input.Department,
		dateAsString(input.Date),
		id,
	)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}

func (r *sqlNoticeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM notices WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
