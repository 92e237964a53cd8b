package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventNoticeCreated EventType = "notice_created"
	EventNoticeUpdated EventType = "notice_updated"
	EventNoticeDeleted EventType = "notice_deleted"
)

// Actor identifies the administrator behind a mutation.
type Actor struct {
	AdminID int64  `json:"admin_id"`
	Email   string `json:"email,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	NoticeID  int64     `json:"notice_id"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// NoticeChangedPayload accompanies created and updated events.
type NoticeChangedPayload struct {
	Title      string `json:"title"`
	Department string `json:"department"`
	Date       string `json:"date"`
}
