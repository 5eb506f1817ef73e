package display

import (
	"strings"

	"github.com/eduproject/catalog/models"
)

// ParseGallery splits a comma separated list of image URLs, trimming each
// and dropping empty entries.
func ParseGallery(gallery string) []string {
	out := []string{}
	for _, part := range strings.Split(gallery, ",") {
		if url := strings.TrimSpace(part); url != "" {
			out = append(out, url)
		}
	}
	return out
}

type ActionKind string

const (
	// ActionNavigate moves to a route inside the site.
	ActionNavigate ActionKind = "navigate"
	// ActionOpen opens an external URL in a new browsing context.
	ActionOpen ActionKind = "open"
)

// Action is what activating a project card does.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Target string     `json:"target"`
}

// ActionFor resolves a project card's click action. Only internal projects
// navigate to their detail route.
func ActionFor(p models.Project) Action {
	if p.ActionType == models.ActionInternal {
		return Action{Kind: ActionNavigate, Target: DetailPath(p.ID)}
	}
	return Action{Kind: ActionOpen, Target: p.ExternalURL}
}

// DetailPath is the route of a project's detail page.
func DetailPath(id string) string {
	return "/project/" + id
}

type Icon struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

var (
	IconExcel = Icon{Name: "file-spreadsheet", Label: "Excel"}
	IconJSON  = Icon{Name: "file-code", Label: "JSON"}
)

// IconFor picks the icon of a resource's file type. Unknown types get the
// spreadsheet icon, matching how the store defaults them.
func IconFor(t models.FileType) Icon {
	if t == models.FileTypeJSON {
		return IconJSON
	}
	return IconExcel
}
