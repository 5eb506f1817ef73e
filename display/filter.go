package display

import (
	"strings"

	"github.com/eduproject/catalog/models"
)

// FilterProjects keeps the projects whose title or category contains term,
// ignoring case. An empty term keeps everything. The result is never nil.
func FilterProjects(projects []models.Project, term string) []models.Project {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
