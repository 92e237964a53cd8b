package board

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/client"
)

// NoticeAPI is the subset of the API client the controller drives.
type NoticeAPI interface {
	ListNotices(ctx context.Context, filter client.Filter) ([]client.Notice, error)
	CreateNotice(ctx context.Context, input client.NoticeInput) (*client.Notice, error)
	UpdateNotice(ctx context.Context, id int64, input client.NoticeInput) (*client.Notice, error)
	DeleteNotice(ctx context.Context, id int64) error
}

// Controller owns the locally displayed notice list. Failed operations are
// logged and leave the list untouched.
type Controller struct {
	api     NoticeAPI
	logger  *zap.Logger
	notices []client.Notice
	filter  client.Filter
}

// NewController creates a controller with the "all" department filter.
func NewController(api NoticeAPI, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		api:    api,
		logger: logger,
		filter: client.Filter{Department: "all"},
	}
}

// Notices returns a copy of the local list.
func (c *Controller) Notices() []client.Notice {
	return append([]client.Notice(nil), c.notices...)
}

// Visible applies the client-side search on top of the server filters.
func (c *Controller) Visible(term string) []client.Notice {
	return Search(c.notices, term)
}

func (c *Controller) Filter() client.Filter { return c.filter }

// SetFilter changes the server-side filters and re-fetches the full list.
func (c *Controller) SetFilter(ctx context.Context, filter client.Filter) error {
	c.filter = filter
	return c.Refresh(ctx)
}

// Refresh replaces the local list with the server's.
func (c *Controller) Refresh(ctx context.Context) error {
	notices, err := c.api.ListNotices(ctx, c.filter)
	if err != nil {
		c.logger.Error("failed to fetch notices", zap.Error(err))
		return err
	}
	c.notices = notices
	return nil
}

// Create stores a notice and prepends the server's record.
func (c *Controller) Create(ctx context.Context, input client.NoticeInput) (*client.Notice, error) {
	created, err := c.api.CreateNotice(ctx, input)
	if err != nil {
		c.logger.Error("failed to create notice", zap.Error(err))
		return nil, err
	}
	c.notices = append([]client.Notice{*created}, c.notices...)
	return created, nil
}

// Update saves an edit. The local entry is replaced with the server record,
// or has the submitted fields merged in when the server returned none.
func (c *Controller) Update(ctx context.Context, id int64, input client.NoticeInput) error {
	updated, err := c.api.UpdateNotice(ctx, id, input)
	if err != nil {
		c.logger.Error("failed to update notice", zap.Int64("notice_id", id), zap.Error(err))
		return err
	}
	for i := range c.notices {
		if c.notices[i].ID != id {
			continue
		}
		if updated != nil {
			c.notices[i] = *updated
		} else {
			c.notices[i].Title = input.Title
			c.notices[i].Content = input.Content
			c.notices[i].Department = input.Department
			c.notices[i].Date = input.Date
		}
	}
	return nil
}

// Delete removes a notice.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.api.DeleteNotice(ctx, id); err != nil {
		c.logger.Error("failed to delete notice", zap.Int64("notice_id", id), zap.Error(err))
		return err
	}
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notices = kept
	return nil
}

// Save submits the form, creating or updating depending on what it edits,
// and closes it. The form closes even when the save fails.
func (c *Controller) Save(ctx context.Context, form *Form) error {
	if !form.IsOpen() {
		return nil
	}
	draft := form.Draft()
	editing := form.Editing()
	form.Close()

	if editing != nil {
		return c.Update(ctx, editing.ID, draft)
	}
	_, err := c.Create(ctx, draft)
	return err
}
