package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/notice-board/internal/api/http"
	"github.com/spec-kit/notice-board/internal/config"
	"github.com/spec-kit/notice-board/internal/persistence"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/internal/service"
)

// startServer runs the real API on an ephemeral port backed by in-memory SQLite.
func startServer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	db, err := persistence.NewSQLite(ctx, logger)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(db.Close)
	store := repository.NewSQLStore(db)
	if err := store.Migrate(ctx, logger); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	authSvc := service.NewAuthService(config.AuthConfig{
		JWTSecret:  "client-test",
		BcryptCost: bcrypt.MinCost,
	}, service.AuthDependencies{AdminRepo: store.Admins})
	if _, err := authSvc.CreateAdmin(ctx, "Dr. Smith", "admin@college.edu", "password"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	app := httptransport.NewApp(httptransport.ServerDeps{
		Name:          "college-notice-board",
		AuthService:   authSvc,
		NoticeService: service.NewNoticeService(service.NoticeDependencies{NoticeRepo: store.Notices}),
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	anon := New(startServer(t))

	if _, err := anon.Login(ctx, "admin@college.edu", "wrong"); err == nil {
		t.Fatalf("expected login failure")
	} else {
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != 400 || apiErr.Code != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if _, err := anon.CreateNotice(ctx, NoticeInput{Title: "t", Content: "c", Department: "All", Date: "2024-10-15"}); !IsUnauthorized(err) {
		t.Fatalf("expected local unauthorized error, got %v", err)
	}

	res, err := anon.Login(ctx, "admin@college.edu", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Admin.Name != "Dr. Smith" {
		t.Fatalf("unexpected admin %+v", res.Admin)
	}
	admin := anon.WithSession(res.Token)
	if anon.Token() != "" {
		t.Fatalf("WithSession must not mutate the receiver")
	}

	created, err := admin.CreateNotice(ctx, NoticeInput{
		Title:      "Exam Notice",
		Content:    "Exams start Monday.",
		Department: "All",
		Date:       "2024-10-15",
	})
	if err != nil {
		t.Fatalf("CreateNotice: %v", err)
	}
	if created.AdminName == nil || *created.AdminName != "Dr. Smith" {
		t.Fatalf("expected admin name, got %+v", created)
	}

	list, err := anon.ListNotices(ctx, Filter{Department: "all", Date: "2024-10-15"})
	if err != nil || len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("ListNotices: %+v err=%v", list, err)
	}

	updated, err := admin.UpdateNotice(ctx, created.ID, NoticeInput{
		Title:      "Exam Notice (revised)",
		Content:    "Exams start Tuesday.",
		Department: "All",
		Date:       "2024-10-15",
	})
	if err != nil || updated == nil || updated.Title != "Exam Notice (revised)" {
		t.Fatalf("UpdateNotice: %+v err=%v", updated, err)
	}

	missing, err := admin.UpdateNotice(ctx, created.ID+100, NoticeInput{Title: "x", Content: "y", Department: "All", Date: "2024-10-15"})
	if err != nil || missing != nil {
		t.Fatalf("update unknown id: %+v err=%v", missing, err)
	}

	_, err = admin.CreateNotice(ctx, NoticeInput{Title: "x", Content: "y", Department: "Astrology", Date: "2024-10-15"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "VALIDATION_FAILED" || apiErr.Details["department"] == nil {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := admin.DeleteNotice(ctx, created.ID); err != nil {
		t.Fatalf("DeleteNotice: %v", err)
	}
	list, err = anon.ListNotices(ctx, Filter{})
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %+v err=%v", list, err)
	}

	departments, err := anon.Departments(ctx)
	if err != nil || len(departments) == 0 || departments[0] != "All" {
		t.Fatalf("Departments: %v err=%v", departments, err)
	}
}

func TestClientCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New("http://127.0.0.1:1").ListNotices(ctx, Filter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDecodeError(t *testing.T) {
	err := decodeError(500, []byte(`{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`))
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "INTERNAL_ERROR" || apiErr.Status != 500 {
		t.Fatalf("unexpected %v", err)
	}

	err = decodeError(502, []byte("bad gateway"))
	if !errors.As(err, &apiErr) || apiErr.Message != "bad gateway" {
		t.Fatalf("unexpected %v", err)
	}
}
