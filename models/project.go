package models

import (
	"fmt"
	"strings"

	"github.com/eduproject/catalog/errs"
)

// ActionType decides what activating a project card does.
type ActionType string

const (
	ActionExternal ActionType = "external"
	ActionInternal ActionType = "internal"
)

// Project represents a catalog entry shown on the home listing.
// An empty ID means the project has not been persisted yet.
type Project struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	ExternalURL   string     `json:"externalUrl"`
	Category      string     `json:"category"`
	Order         int        `json:"order"`
	ActionType    ActionType `json:"actionType,omitempty"`
	DetailContent string     `json:"detailContent,omitempty"`
	DetailGallery string     `json:"detailGallery,omitempty"`
	DetailVideo   string     `json:"detailVideo,omitempty"`
}

// IsNew reports whether the project still needs an identifier from the store.
func (p Project) IsNew() bool {
	return p.ID == ""
}

// Validate enforces the required fields of a project before any write.
func (p Project) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"title", p.Title},
		{"imageUrl", p.ImageURL},
		{"externalUrl", p.ExternalURL},
		{"description", p.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errs.NewMissingRequiredFieldError(r.field)
		}
	}

	switch p.ActionType {
	case "", ActionExternal, ActionInternal:
	default:
		return errs.NewInvalidFieldError("actionType", fmt.Sprintf("unknown action type %q", p.ActionType))
	}
	return nil
}

// NewProject returns an unsaved project placed after count existing ones.
func NewProject(count int) Project {
	return Project{
		Category:   "Edukasi",
		Order:      count + 1,
		ActionType: ActionExternal,
	}
}

// Normalize fills optional fields that the store would default on read.
func (p *Project) Normalize() {
	if p.ActionType == "" {
		p.ActionType = ActionExternal
	}
}
