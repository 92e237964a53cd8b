package board

import (
	"time"

	"github.com/spec-kit/notice-board/internal/client"
	"github.com/spec-kit/notice-board/internal/domain"
)

// Form is the create/edit modal. Its draft is discarded on Close.
type Form struct {
	open    bool
	editing *client.Notice
	draft   client.NoticeInput
}

// OpenCreate opens an empty draft for department "All" dated today.
func (f *Form) OpenCreate(now time.Time) {
	f.open = true
	f.editing = nil
	f.draft = client.NoticeInput{
		Department: domain.DepartmentAll,
		Date:       now.Format(domain.DateLayout),
	}
}

// OpenEdit opens a draft prefilled from n.
func (f *Form) OpenEdit(n client.Notice) {
	f.open = true
	f.editing = &n
	f.draft = client.NoticeInput{
		Title:      n.Title,
		Content:    n.Content,
		Department: n.Department,
		Date:       n.Date,
	}
}

// Close discards the draft.
func (f *Form) Close() {
	f.open = false
	f.editing = nil
	f.draft = client.NoticeInput{}
}

func (f *Form) IsOpen() bool { return f.open }

// Editing returns the notice being edited, or nil when creating.
func (f *Form) Editing() *client.Notice { return f.editing }

func (f *Form) Draft() client.NoticeInput { return f.draft }

// Update applies fn to the draft while the form is open.
func (f *Form) Update(fn func(*client.NoticeInput)) {
	if f.open {
		fn(&f.draft)
	}
}

// Heading is the modal title.
func (f *Form) Heading() string {
	if f.editing != nil {
		return "Edit Notice"
	}
	return "Create New Notice"
}

// SubmitLabel is the label of the save button.
func (f *Form) SubmitLabel() string {
	if f.editing != nil {
		return "Update Notice"
	}
	return "Create Notice"
}
