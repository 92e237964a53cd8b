package board

import (
	"strings"

	"github.com/spec-kit/notice-board/internal/client"
)

// Search keeps notices whose title or content contains term, ignoring case.
// An empty term keeps everything.
func Search(notices []client.Notice, term string) []client.Notice {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]client.Notice, 0, len(notices))
	for _, n := range notices {
		if term == "" ||
			strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) {
			out = append(out, n)
		}
	}
	return out
}
