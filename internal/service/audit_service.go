package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/events"
)

// AuditService writes one structured log line per notice mutation.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventNoticeCreated, a.handleNoticeEvent)
	a.dispatcher.Subscribe(events.EventNoticeUpdated, a.handleNoticeEvent)
	a.dispatcher.Subscribe(events.EventNoticeDeleted, a.handleNoticeEvent)
}

func (a *AuditService) handleNoticeEvent(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.Int64("notice_id", event.NoticeID),
		zap.Int64("admin_id", event.Actor.AdminID),
		zap.String("admin_email", event.Actor.Email),
		zap.Time("at", event.Timestamp),
	}
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}
	a.logger.Info(string(event.Type), fields...)
	return nil
}
