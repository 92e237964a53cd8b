package dto

import (
	"time"

	"github.com/spec-kit/notice-board/internal/domain"
)

// NoticeRequest is the create/update payload.
type NoticeRequest struct {
	Title      string `json:"title" validate:"required,max=255"`
	Content    string `json:"content" validate:"required"`
	Department string `json:"department" validate:"required,max=100"`
	Date       string `json:"date" validate:"required,notice_date"`
}

// NoticeResponse is the wire form of a notice.
type NoticeResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Department string    `json:"department"`
	Date       string    `json:"date"`
	AdminID    *int64    `json:"admin_id"`
	AdminName  *string   `json:"admin_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// NoticeMutationResponse wraps create and update acknowledgements. Notice is
// omitted when an update matched no row.
type NoticeMutationResponse struct {
	Message string          `json:"message"`
	Notice  *NoticeResponse `json:"notice,omitempty"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// DepartmentsResponse lists the allowed department labels.
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

// NewNoticeResponse converts a domain notice.
func NewNoticeResponse(n *domain.Notice) NoticeResponse {
	resp := NoticeResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Department: n.Department,
		Date:       n.Date.Format(domain.DateLayout),
		AdminName:  n.AdminName,
		CreatedAt:  n.CreatedAt,
	}
	if n.AdminID != 0 {
		id := n.AdminID
		resp.AdminID = &id
	}
	return resp
}

// NewNoticeList converts a listing, never returning nil.
func NewNoticeList(notices []domain.Notice) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(notices))
	for i := range notices {
		out = append(out, NewNoticeResponse(&notices[i]))
	}
	return out
}
