package admin

import (
	"github.com/eduproject/catalog/models"
	"github.com/pkg/errors"
)

type DraftKind int

const (
	DraftProject DraftKind = iota
	DraftResource
)

func (k DraftKind) String() string {
	if k == DraftResource {
		return "resource"
	}
	return "project"
}

// Draft is the entity being edited in the single open modal. A new draft is
// created for every edit and dropped when the modal closes; it is never
// reset in place.
type Draft struct {
	Kind     DraftKind
	Project  models.Project
	Resource models.DownloadItem
}

func newProjectDraft(p models.Project) Draft {
	return Draft{Kind: DraftProject, Project: p}
}

func newResourceDraft(r models.DownloadItem) Draft {
	return Draft{Kind: DraftResource, Resource: r}
}

// IsNew reports whether submitting the draft creates an entity.
func (d Draft) IsNew() bool {
	if d.Kind == DraftResource {
		return d.Resource.IsNew()
	}
	return d.Project.IsNew()
}

func (d Draft) Validate() error {
	if d.Kind == DraftResource {
		return d.Resource.Validate()
	}
	return d.Project.Validate()
}

// replace returns next when it edits the same entity as d.
func (d Draft) replace(next Draft) (Draft, error) {
	if next.Kind != d.Kind {
		return d, errors.Errorf("draft holds a %s, got a %s", d.Kind, next.Kind)
	}
	if next.Kind == DraftProject && next.Project.ID != d.Project.ID ||
		next.Kind == DraftResource && next.Resource.ID != d.Resource.ID {
		return d, errors.New("draft identifier cannot change while editing")
	}
	return next, nil
}
