// Package portfolio holds the page logic that sits between the backend
// client and the views: project filtering, list edits for the admin editors
// and the multi-resource page loaders.
package portfolio

import (
	"strings"

	"github.com/ruebensh/portfolio/internal/domain"
	"golang.org/x/text/cases"
)

// AllCategories is the chip that disables category filtering.
const AllCategories = "All"

// FilterProjects keeps the projects whose category equals category exactly
// and whose title, description or category contains query, ignoring case. An
// empty category or "All" keeps every category. Order is preserved.
func FilterProjects(projects []domain.Project, category, query string) []domain.Project {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if needle != "" && !matches(fold, p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(fold cases.Caser, p domain.Project, needle string) bool {
	for _, field := range []string{p.Title, p.Description, p.DisplayCategory()} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// Categories returns "All" followed by each distinct category in the order
// it first appears. Blank categories count as "General".
func Categories(projects []domain.Project) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		c := p.DisplayCategory()
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// FindProject returns the project whose id equals slug.
func FindProject(projects []domain.Project, slug string) (domain.Project, error) {
	for _, p := range projects {
		if p.ID.String() == slug {
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrNotFound
}

// Badge tones.
const (
	ToneGreen = "green"
	ToneBlue  = "blue"
	ToneMuted = "muted"
)

// StatusBadge picks the badge tone for a project status.
func StatusBadge(status string) string {
	switch status {
	case "", domain.DefaultStatus:
		return ToneGreen
	case "In Progress":
		return ToneBlue
	default:
		return ToneMuted
	}
}

// UnreadCount counts messages not yet marked read.
func UnreadCount(messages []domain.Message) int {
	n := 0
	for _, m := range messages {
		if !m.Read {
			n++
		}
	}
	return n
}

// SearchMessages keeps messages whose name, email or text contains query,
// ignoring case.
func SearchMessages(messages []domain.Message, query string) []domain.Message {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	if needle == "" {
		return messages
	}
	out := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		if strings.Contains(fold.String(m.Name), needle) ||
			strings.Contains(fold.String(m.Email), needle) ||
			strings.Contains(fold.String(m.Text), needle) {
			out = append(out, m)
		}
	}
	return out
}
