package models

import (
	"time"

	"gorm.io/datatypes"
)

// The *Table types describe the columns created by migrations. Reads and
// writes never go through them: rows travel as loose maps through the schema
// adapter so tables created by hand with other spellings keep working.

// ProjectTable is the migration model for the projects table.
type ProjectTable struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string    `gorm:"column:title;type:text;not null"`
	Description   string    `gorm:"column:description;type:text;not null"`
	ImageURL      string    `gorm:"column:image_url;type:text;not null"`
	ExternalURL   string    `gorm:"column:external_url;type:text;not null"`
	Category      string    `gorm:"column:category;type:text;not null;default:''"`
	Order         int       `gorm:"column:order;type:integer;not null;default:0"`
	ActionType    string    `gorm:"column:action_type;type:text;not null;default:'external'"`
	DetailContent *string   `gorm:"column:detail_content;type:text"`
	DetailGallery *string   `gorm:"column:detail_gallery;type:text"`
	DetailVideo   *string   `gorm:"column:detail_video;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (ProjectTable) TableName() string { return "projects" }

// ResourceTable is the migration model for the resources table.
type ResourceTable struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `gorm:"column:title;type:text;not null"`
	Description string    `gorm:"column:description;type:text;not null;default:''"`
	FileURL     string    `gorm:"column:file_url;type:text;not null"`
	FileType    string    `gorm:"column:file_type;type:text;not null;default:'excel'"`
	Order       int       `gorm:"column:order;type:integer;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (ResourceTable) TableName() string { return "resources" }

// ProfileTable is the migration model for the profiles table. Settings are
// kept in text columns holding JSON.
type ProfileTable struct {
	ID             string         `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name           string         `gorm:"column:name;type:text;not null;default:''"`
	Role           string         `gorm:"column:role;type:text;not null;default:''"`
	Bio            string         `gorm:"column:bio;type:text;not null;default:''"`
	PhotoURL       string         `gorm:"column:photo_url;type:text;not null;default:''"`
	AppLogoURL     string         `gorm:"column:app_logo_url;type:text;not null;default:''"`
	Email          string         `gorm:"column:email;type:text;not null;default:''"`
	LinkedIn       string         `gorm:"column:linkedin;type:text;not null;default:''"`
	LinkedInLabel  string         `gorm:"column:linkedin_label;type:text;not null;default:''"`
	GitHub         string         `gorm:"column:github;type:text;not null;default:''"`
	GitHubLabel    string         `gorm:"column:github_label;type:text;not null;default:''"`
	SocialLabel    string         `gorm:"column:social_label;type:text;not null;default:''"`
	LayoutSettings datatypes.JSON `gorm:"column:layout_settings;type:text"`
	ThemeSettings  datatypes.JSON `gorm:"column:theme_settings;type:text"`
}

func (ProfileTable) TableName() string { return "profiles" }

// Tables lists every migration model.
func Tables() []any {
	return []any{&ProjectTable{}, &ResourceTable{}, &ProfileTable{}}
}
