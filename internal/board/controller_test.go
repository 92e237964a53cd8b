package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/notice-board/internal/client"
)

type fakeAPI struct {
	listed      []client.Filter
	list        []client.Notice
	nextID      int64
	returnNil   bool
	err         error
	deletedIDs  []int64
	updatedWith map[int64]client.NoticeInput
}

func (f *fakeAPI) ListNotices(_ context.Context, filter client.Filter) ([]client.Notice, error) {
	f.listed = append(f.listed, filter)
	if f.err != nil {
		return nil, f.err
	}
	return append([]client.Notice(nil), f.list...), nil
}

func (f *fakeAPI) CreateNotice(_ context.Context, in client.NoticeInput) (*client.Notice, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	name := "Dr. Smith"
	return &client.Notice{ID: f.nextID, Title: in.Title, Content: in.Content, Department: in.Department, Date: in.Date, AdminName: &name}, nil
}

func (f *fakeAPI) UpdateNotice(_ context.Context, id int64, in client.NoticeInput) (*client.Notice, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updatedWith == nil {
		f.updatedWith = map[int64]client.NoticeInput{}
	}
	f.updatedWith[id] = in
	if f.returnNil {
		return nil, nil
	}
	return &client.Notice{ID: id, Title: in.Title + " (server)", Content: in.Content, Department: in.Department, Date: in.Date}, nil
}

func (f *fakeAPI) DeleteNotice(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func seeded() *fakeAPI {
	return &fakeAPI{
		nextID: 10,
		list: []client.Notice{
			{ID: 2, Title: "Annual Tech Fest", Content: "Registration open.", Department: "All", Date: "2024-10-12"},
			{ID: 1, Title: "Mid-Semester Exams", Content: "Check timetables.", Department: "Computer Science", Date: "2024-10-10"},
		},
	}
}

func TestControllerRefetchesOnFilterChange(t *testing.T) {
	api := seeded()
	c := NewController(api, nil)
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := c.SetFilter(ctx, client.Filter{Department: "Computer Science"}); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if err := c.SetFilter(ctx, client.Filter{Department: "Computer Science", Date: "2024-10-10"}); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if len(api.listed) != 3 {
		t.Fatalf("expected a fetch per filter change, got %d", len(api.listed))
	}
	if api.listed[0].Department != "all" || api.listed[2].Date != "2024-10-10" {
		t.Fatalf("unexpected filters sent: %+v", api.listed)
	}
}

func TestControllerCreatePrepends(t *testing.T) {
	api := seeded()
	c := NewController(api, nil)
	ctx := context.Background()
	_ = c.Refresh(ctx)

	created, err := c.Create(ctx, client.NoticeInput{Title: "Exam Notice", Content: "c", Department: "All", Date: "2024-10-15"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	notices := c.Notices()
	if len(notices) != 3 || notices[0].ID != created.ID {
		t.Fatalf("created notice should be first: %+v", notices)
	}
	if notices[0].AdminName == nil {
		t.Fatalf("server record should be used")
	}
}

func TestControllerUpdateUsesServerRecord(t *testing.T) {
	api := seeded()
	c := NewController(api, nil)
	ctx := context.Background()
	_ = c.Refresh(ctx)

	in := client.NoticeInput{Title: "Tech Fest 2024", Content: "Moved.", Department: "All", Date: "2024-10-20"}
	if err := c.Update(ctx, 2, in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := c.Notices()[0]; got.ID != 2 || got.Title != "Tech Fest 2024 (server)" {
		t.Fatalf("expected server record in place, got %+v", got)
	}
}

func TestControllerUpdateMergesWhenServerSilent(t *testing.T) {
	api := seeded()
	api.returnNil = true
	c := NewController(api, nil)
	ctx := context.Background()
	_ = c.Refresh(ctx)

	in := client.NoticeInput{Title: "Exams postponed", Content: "New dates soon.", Department: "Computer Science", Date: "2024-10-17"}
	if err := c.Update(ctx, 1, in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := c.Notices()[1]
	if got.ID != 1 || got.Title != "Exams postponed" || got.Date != "2024-10-17" {
		t.Fatalf("expected submitted fields merged, got %+v", got)
	}
}

func TestControllerDelete(t *testing.T) {
	api := seeded()
	c := NewController(api, nil)
	ctx := context.Background()
	_ = c.Refresh(ctx)

	if err := c.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if notices := c.Notices(); len(notices) != 1 || notices[0].ID != 1 {
		t.Fatalf("unexpected list after delete: %+v", notices)
	}
}

func TestControllerFailuresKeepState(t *testing.T) {
	api := seeded()
	c := NewController(api, nil)
	ctx := context.Background()
	_ = c.Refresh(ctx)
	before := c.Notices()

	api.err = errors.New("server unreachable")
	if err := c.SetFilter(ctx, client.Filter{Department: "Civil"}); err == nil {
		t.Fatalf("expected refresh error")
	}
	if _, err := c.Create(ctx, client.NoticeInput{Title: "x"}); err == nil {
		t.Fatalf("expected create error")
	}
	if err := c.Update(ctx, 1, client.NoticeInput{Title: "x"}); err == nil {
		t.Fatalf("expected update error")
	}
	if err := c.Delete(ctx, 1); err == nil {
		t.Fatalf("expected delete error")
	}

	after := c.Notices()
	if len(after) != len(before) || after[0].Title != before[0].Title || after[1].Title != before[1].Title {
		t.Fatalf("local state changed on failure: %+v", after)
	}
}

func TestControllerSaveForm(t *testing.T) {
	api := seeded()
	c := NewController(api, nil)
	ctx := context.Background()
	_ = c.Refresh(ctx)

	var form Form
	form.OpenCreate(time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC))
	if form.Draft().Department != "All" || form.Draft().Date != "2024-10-15" || form.Heading() != "Create New Notice" {
		t.Fatalf("unexpected draft defaults %+v", form.Draft())
	}
	form.Update(func(in *client.NoticeInput) {
		in.Title = "Exam Notice"
		in.Content = "Bring ID cards."
	})
	if err := c.Save(ctx, &form); err != nil {
		t.Fatalf("Save create: %v", err)
	}
	if form.IsOpen() {
		t.Fatalf("form should close after save")
	}
	if c.Notices()[0].Title != "Exam Notice" {
		t.Fatalf("created notice not prepended")
	}

	form.OpenEdit(c.Notices()[1])
	if form.Heading() != "Edit Notice" || form.SubmitLabel() != "Update Notice" || form.Draft().Title != "Annual Tech Fest" {
		t.Fatalf("edit form not prefilled: %+v", form.Draft())
	}
	form.Update(func(in *client.NoticeInput) { in.Content = "Registration closes Nov 5." })
	if err := c.Save(ctx, &form); err != nil {
		t.Fatalf("Save edit: %v", err)
	}
	if in := api.updatedWith[2]; in.Content != "Registration closes Nov 5." || in.Title != "Annual Tech Fest" {
		t.Fatalf("unexpected update payload %+v", in)
	}

	form.OpenCreate(time.Now())
	form.Close()
	form.Update(func(in *client.NoticeInput) { in.Title = "ignored" })
	if form.Draft().Title != "" {
		t.Fatalf("closed form must discard edits")
	}
}
