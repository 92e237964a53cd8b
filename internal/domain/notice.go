package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and storage format of a notice's effective date.
const DateLayout = "2006-01-02"

// DepartmentAll scopes a notice to every department.
const DepartmentAll = "All"

// DepartmentFilterAll is the list filter sentinel meaning "no department filter".
const DepartmentFilterAll = "all"

// DefaultDepartments is the label set offered when none is configured.
var DefaultDepartments = []string{"Computer Science", "Electronics", "Mechanical", "Civil"}

// Notice is a single announcement on the board.
type Notice struct {
	ID         int64
	Title      string
	Content    string
	Department string
	Date       time.Time
	AdminID    int64
	// AdminName is nil when the creating administrator no longer exists.
	AdminName *string
	CreatedAt time.Time
}

// NoticeInput carries the mutable fields of a notice.
type NoticeInput struct {
	Title      string
	Content    string
	Department string
	Date       time.Time
}

// NoticeFilter narrows a listing. Nil fields are not applied.
type NoticeFilter struct {
	Department *string
	Date       *time.Time
}

// NewNoticeFilter builds a filter from raw query values, treating the
// "all" department sentinel and empty values as absent.
func NewNoticeFilter(department string, date *time.Time) NoticeFilter {
	var filter NoticeFilter
	department = strings.TrimSpace(department)
	if department != "" && department != DepartmentFilterAll {
		filter.Department = &department
	}
	filter.Date = date
	return filter
}

// DepartmentSet is the closed set of labels a notice may carry.
type DepartmentSet struct {
	labels []string
	index  map[string]struct{}
}

// NewDepartmentSet always includes DepartmentAll first.
func NewDepartmentSet(labels []string) DepartmentSet {
	set := DepartmentSet{
		labels: []string{DepartmentAll},
		index:  map[string]struct{}{DepartmentAll: {}},
	}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, exists := set.index[label]; exists {
			continue
		}
		set.index[label] = struct{}{}
		set.labels = append(set.labels, label)
	}
	return set
}

// Contains reports whether label is an allowed department.
func (s DepartmentSet) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Labels returns the allowed labels, "All" first.
func (s DepartmentSet) Labels() []string {
	return append([]string(nil), s.labels...)
}
