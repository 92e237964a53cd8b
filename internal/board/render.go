package board

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spec-kit/notice-board/internal/client"
	"github.com/spec-kit/notice-board/internal/domain"
)

const displayDate = "January 2, 2006"

// FormatDate renders a YYYY-MM-DD date for display, or the raw value if it
// does not parse.
func FormatDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDate)
}

// RenderNotices writes one card per notice. Admin cards show the id first so
// it can be passed to edit and delete.
func RenderNotices(w io.Writer, notices []client.Notice, admin bool) error {
	if len(notices) == 0 {
		_, err := fmt.Fprintln(w, "No notices found.")
		return err
	}
	for i, n := range notices {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderCard(w, n, admin); err != nil {
			return err
		}
	}
	return nil
}

func renderCard(w io.Writer, n client.Notice, admin bool) error {
	author := "Unknown"
	if n.AdminName != nil {
		author = *n.AdminName
	}

	var b strings.Builder
	if admin {
		fmt.Fprintf(&b, "[%d] ", n.ID)
	}
	fmt.Fprintf(&b, "%s  (%s)\n", n.Title, n.Department)
	fmt.Fprintf(&b, "    %s | %s\n", FormatDate(n.Date), author)
	for _, line := range strings.Split(strings.TrimSpace(n.Content), "\n") {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	fmt.Fprintf(&b, "    Posted %s | Notice #%d\n", n.CreatedAt.Local().Format(displayDate), n.ID)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderStats writes the summary cards as an aligned table.
func RenderStats(w io.Writer, s Stats, admin bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Notices\t%d\n", s.Total)
	fmt.Fprintf(tw, "This Week\t%d\n", s.ThisWeek)
	if admin {
		fmt.Fprintf(tw, "This Month\t%d\n", s.ThisMonth)
		fmt.Fprintf(tw, "Active\t%d\n", s.Active)
	}
	fmt.Fprintf(tw, "Departments\t%d\n", s.Departments)
	return tw.Flush()
}
