package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/notice-board/internal/domain"
)

type stubAdminRepo struct {
	mu     sync.Mutex
	byMail map[string]*domain.Admin
	nextID int64
	err    error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byMail: map[string]*domain.Admin{}}
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	admin.ID = r.nextID
	admin.CreatedAt = time.Now()
	stored := *admin
	r.byMail[admin.Email] = &stored
	return nil
}

func (r *stubAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	admin, ok := r.byMail[email]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

type stubNoticeRepo struct {
	mu      sync.Mutex
	notices map[int64]domain.Notice
	nextID  int64
	filters []domain.NoticeFilter
	err     error
}

func newStubNoticeRepo() *stubNoticeRepo {
	return &stubNoticeRepo{notices: map[int64]domain.Notice{}}
}

func (r *stubNoticeRepo) Create(_ context.Context, notice *domain.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	notice.ID = r.nextID
	notice.CreatedAt = time.Now()
	r.notices[notice.ID] = *notice
	return nil
}

func (r *stubNoticeRepo) GetByID(_ context.Context, id int64) (*domain.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notices[id]
	if !ok {
		return nil, domain.ErrNoticeNotFound
	}
	return &n, nil
}

func (r *stubNoticeRepo) List(_ context.Context, filter domain.NoticeFilter) ([]domain.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.filters = append(r.filters, filter)
	out := []domain.Notice{}
	for _, n := range r.notices {
		if filter.Department != nil && n.Department != *filter.Department {
			continue
		}
		if filter.Date != nil && !n.Date.Equal(*filter.Date) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubNoticeRepo) Update(_ context.Context, id int64, input domain.NoticeInput) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	n, ok := r.notices[id]
	if !ok {
		return false, nil
	}
	n.Title, n.Content, n.Department, n.Date = input.Title, input.Content, input.Department, input.Date
	r.notices[id] = n
	return true, nil
}

func (r *stubNoticeRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.notices[id]
	delete(r.notices, id)
	return ok, nil
}

type stubLimiter struct {
	blocked  bool
	allowErr error
	failures map[string]int
	resets   int
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	if l.allowErr != nil {
		return false, l.allowErr
	}
	return !l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	if l.failures == nil {
		l.failures = map[string]int{}
	}
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(context.Context, string) error {
	l.resets++
	return nil
}
