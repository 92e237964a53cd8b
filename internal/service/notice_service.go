package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/auth"
	"github.com/spec-kit/notice-board/internal/domain"
	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/observability"
	"github.com/spec-kit/notice-board/internal/repository"
)

// NoticeService coordinates notice workflows.
type NoticeService struct {
	notices     repository.NoticeRepository
	departments domain.DepartmentSet
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NoticeDependencies bundles collaborators for the notice service.
type NoticeDependencies struct {
	NoticeRepo  repository.NoticeRepository
	Departments []string
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NoticeWriteInput is the raw create/update payload. Date is YYYY-MM-DD.
type NoticeWriteInput struct {
	Title      string
	Content    string
	Department string
	Date       string
}

// NewNoticeService constructs the service.
func NewNoticeService(deps NoticeDependencies) *NoticeService {
	labels := deps.Departments
	if len(labels) == 0 {
		labels = domain.DefaultDepartments
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{
		notices:     deps.NoticeRepo,
		departments: domain.NewDepartmentSet(labels),
		dispatcher:  deps.Dispatcher,
		metrics:     deps.Metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Departments returns the allowed department labels, "All" first.
func (s *NoticeService) Departments() []string {
	return s.departments.Labels()
}

// List returns notices newest first. department "all" or empty disables the
// department filter. A date that is not YYYY-MM-DD matches no stored notice,
// so the result is empty rather than an error.
func (s *NoticeService) List(ctx context.Context, department, date string) ([]domain.Notice, error) {
	var datePtr *time.Time
	if date = strings.TrimSpace(date); date != "" {
		parsed, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			s.logger.Debug("unparseable date filter", zap.String("date", date))
			return []domain.Notice{}, nil
		}
		datePtr = &parsed
	}
	return s.notices.List(ctx, domain.NewNoticeFilter(department, datePtr))
}

// Create stores a notice authored by the principal and returns the stored record.
func (s *NoticeService) Create(ctx context.Context, principal auth.Principal, input NoticeWriteInput) (*domain.Notice, error) {
	clean, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	notice := &domain.Notice{
		Title:      clean.Title,
		Content:    clean.Content,
		Department: clean.Department,
		Date:       clean.Date,
		AdminID:    principal.AdminID,
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}

	s.metrics.RecordNoticeMutation("create")
	s.publishEvent(ctx, events.Event{
		Type:     events.EventNoticeCreated,
		NoticeID: notice.ID,
		Actor:    adminActor(principal),
		Payload:  changedPayload(notice.Title, notice.Department, notice.Date),
	})
	return notice, nil
}

// Update overwrites the mutable fields of a notice. A missing id is not an
// error: it returns a nil notice. No ownership check is made.
func (s *NoticeService) Update(ctx context.Context, principal auth.Principal, id int64, input NoticeWriteInput) (*domain.Notice, error) {
	clean, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.notices.Update(ctx, id, clean)
	if err != nil {
		return nil, err
	}
	if !updated {
		s.logger.Debug("update matched no notice", zap.Int64("notice_id", id))
		return nil, nil
	}

	s.metrics.RecordNoticeMutation("update")
	s.publishEvent(ctx, events.Event{
		Type:     events.EventNoticeUpdated,
		NoticeID: id,
		Actor:    adminActor(principal),
		Payload:  changedPayload(clean.Title, clean.Department, clean.Date),
	})

	notice, err := s.notices.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNoticeNotFound) {
		// Deleted between the two statements.
		return nil, nil
	}
	return notice, err
}

// Delete removes a notice by id and reports whether a row existed. No
// ownership check is made.
func (s *NoticeService) Delete(ctx context.Context, principal auth.Principal, id int64) (bool, error) {
	deleted, err := s.notices.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.metrics.RecordNoticeMutation("delete")
		s.publishEvent(ctx, events.Event{
			Type:     events.EventNoticeDeleted,
			NoticeID: id,
			Actor:    adminActor(principal),
		})
	}
	return deleted, nil
}

func (s *NoticeService) validate(input NoticeWriteInput) (domain.NoticeInput, error) {
	fields := map[string]string{}
	out := domain.NoticeInput{
		Title:      strings.TrimSpace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		Department: strings.TrimSpace(input.Department),
	}

	if out.Title == "" {
		fields["title"] = "title is required"
	}
	if out.Content == "" {
		fields["content"] = "content is required"
	}
	switch {
	case out.Department == "":
		fields["department"] = "department is required"
	case !s.departments.Contains(out.Department):
		fields["department"] = "department must be one of: " + strings.Join(s.departments.Labels(), ", ")
	}
	date := strings.TrimSpace(input.Date)
	if date == "" {
		fields["date"] = "date is required"
	} else if parsed, err := time.Parse(domain.DateLayout, date); err != nil {
		fields["date"] = "date must be YYYY-MM-DD"
	} else {
		out.Date = parsed
	}

	if len(fields) > 0 {
		return domain.NoticeInput{}, &domain.ValidationError{Fields: fields}
	}
	return out, nil
}

func (s *NoticeService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func adminActor(principal auth.Principal) events.Actor {
	return events.Actor{AdminID: principal.AdminID, Email: principal.Email}
}

func changedPayload(title, department string, date time.Time) events.NoticeChangedPayload {
	return events.NoticeChangedPayload{
		Title:      title,
		Department: department,
		Date:       date.Format(domain.DateLayout),
	}
}
