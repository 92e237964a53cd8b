package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/notice-board/internal/domain"
)

const noticeSelect = `
        SELECT n.id, n.title, n.content, n.department, n.date, n.admin_id, a.name AS admin_name, n.created_at
        FROM notices n
        LEFT JOIN admins a ON n.admin_id = a.id`

// placeholderFunc renders the n-th (1-based) bind parameter.
type placeholderFunc func(n int) string

func dollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

func questionPlaceholder(int) string { return "?" }

// dateArgFunc converts an effective date to the driver's bind value.
type dateArgFunc func(t time.Time) any

func dateAsTime(t time.Time) any { return t }

func dateAsString(t time.Time) any { return t.Format(domain.DateLayout) }

// buildNoticeListQuery renders the filtered listing, newest first. Ties on
// created_at fall back to the id so the order is total.
func buildNoticeListQuery(filter domain.NoticeFilter, placeholder placeholderFunc, dateArg dateArgFunc) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("n.department = %s", placeholder(len(args))))
	}
	if filter.Date != nil {
		args = append(args, dateArg(*filter.Date))
		clauses = append(clauses, fmt.Sprintf("n.date = %s", placeholder(len(args))))
	}

	query := noticeSelect + `
        WHERE ` + strings.Join(clauses, " AND ") + `
        ORDER BY n.created_at DESC, n.id DESC`
	return query, args
}
