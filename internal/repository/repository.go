package repository

import (
	"context"

	"github.com/spec-kit/notice-board/internal/domain"
)

// AdminRepository is the credential store.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

// NoticeRepository is the notice store. Update and Delete report whether a
// row was affected; callers decide what a miss means.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	GetByID(ctx context.Context, id int64) (*domain.Notice, error)
	List(ctx context.Context, filter domain.NoticeFilter) ([]domain.Notice, error)
	Update(ctx context.Context, id int64, input domain.NoticeInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
