package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/notice-board/internal/domain"
)

func TestNoticeResponseWireShape(t *testing.T) {
	name := "Dr. Smith"
	n := &domain.Notice{
		ID:         3,
		Title:      "Annual Tech Fest",
		Content:    "Registration open.",
		Department: "All",
		Date:       time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC),
		AdminID:    1,
		AdminName:  &name,
		CreatedAt:  time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(NewNoticeResponse(n))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{`"date":"2024-10-12"`, `"admin_name":"Dr. Smith"`, `"admin_id":1`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestNoticeResponseDanglingAdmin(t *testing.T) {
	raw, err := json.Marshal(NewNoticeResponse(&domain.Notice{ID: 1, Date: time.Now()}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"admin_name":null`) || !strings.Contains(string(raw), `"admin_id":null`) {
		t.Fatalf("expected null admin fields, got %s", raw)
	}
}

func TestNoticeListNeverNil(t *testing.T) {
	raw, _ := json.Marshal(NewNoticeList(nil))
	if string(raw) != "[]" {
		t.Fatalf("expected empty array, got %s", raw)
	}
}
