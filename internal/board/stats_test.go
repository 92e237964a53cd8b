package board

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/notice-board/internal/client"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 10, 15, 13, 0, 0, 0, time.UTC)
	notices := []client.Notice{
		{Department: "All", Date: "2024-10-20"},              // upcoming
		{Department: "All", Date: "2024-10-15"},              // today
		{Department: "Computer Science", Date: "2024-10-08"}, // exactly a week ago
		{Department: "Civil", Date: "2024-10-01"},
		{Department: "Civil", Date: "2024-09-30"},
		{Department: "Civil", Date: "not-a-date"},
	}

	got := ComputeStats(notices, now)
	want := Stats{Total: 6, ThisWeek: 3, ThisMonth: 4, Departments: 3, Active: 2}
	if got != want {
		t.Fatalf("ComputeStats = %+v, want %+v", got, want)
	}
}

func TestSearch(t *testing.T) {
	notices := []client.Notice{
		{ID: 1, Title: "Library Extension Hours", Content: "Open till 10 PM."},
		{ID: 2, Title: "Tech Fest", Content: "Register at the LIBRARY desk."},
		{ID: 3, Title: "Exams", Content: "Timetables posted."},
	}
	if got := Search(notices, "library"); len(got) != 2 {
		t.Fatalf("expected 2 matches, got %+v", got)
	}
	if got := Search(notices, "  "); len(got) != 3 {
		t.Fatalf("blank term should keep all, got %d", len(got))
	}
	if got := Search(notices, "hostel"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestRenderNotices(t *testing.T) {
	name := "Prof. Johnson"
	notices := []client.Notice{
		{ID: 2, Title: "Annual Tech Fest", Content: "Registration open.", Department: "All", Date: "2024-10-12", AdminName: &name},
		{ID: 1, Title: "Orphaned", Content: "No author.", Department: "Civil", Date: "2024-10-10"},
	}

	var buf bytes.Buffer
	if err := RenderNotices(&buf, notices, true); err != nil {
		t.Fatalf("RenderNotices: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[2] Annual Tech Fest  (All)", "October 12, 2024 | Prof. Johnson", "Orphaned", "| Unknown", "Notice #1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	_ = RenderNotices(&buf, notices[:1], false)
	if strings.Contains(buf.String(), "[2]") {
		t.Fatalf("student view should not show admin ids")
	}

	buf.Reset()
	_ = RenderNotices(&buf, nil, false)
	if strings.TrimSpace(buf.String()) != "No notices found." {
		t.Fatalf("unexpected empty render %q", buf.String())
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderStats(&buf, Stats{Total: 5, ThisWeek: 2, ThisMonth: 4, Departments: 3, Active: 1}, true); err != nil {
		t.Fatalf("RenderStats: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Total Notices  5") || !strings.Contains(out, "Active") {
		t.Fatalf("unexpected stats render:\n%s", out)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-10-15"); got != "October 15, 2024" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDate("soon"); got != "soon" {
		t.Fatalf("FormatDate fallback = %q", got)
	}
}
