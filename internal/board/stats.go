package board

import (
	"time"

	"github.com/spec-kit/notice-board/internal/client"
	"github.com/spec-kit/notice-board/internal/domain"
)

// Stats summarizes a notice list for the dashboard cards.
type Stats struct {
	Total int
	// ThisWeek counts notices dated within the last seven days or later.
	ThisWeek    int
	ThisMonth   int
	Departments int
	// Active counts notices dated today or later.
	Active int
}

// ComputeStats evaluates notices relative to now's calendar day.
func ComputeStats(notices []client.Notice, now time.Time) Stats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)

	stats := Stats{Total: len(notices)}
	departments := map[string]struct{}{}
	for _, n := range notices {
		departments[n.Department] = struct{}{}

		date, err := time.ParseInLocation(domain.DateLayout, n.Date, now.Location())
		if err != nil {
			continue
		}
		if !date.Before(weekAgo) {
			stats.ThisWeek++
		}
		if date.Year() == today.Year() && date.Month() == today.Month() {
			stats.ThisMonth++
		}
		if !date.Before(today) {
			stats.Active++
		}
	}
	stats.Departments = len(departments)
	return stats
}
