package schema

import "github.com/eduproject/catalog/models"

var defaultLayout = models.DefaultLayout()
var defaultTheme = models.DefaultTheme()

// Layout describes the keys of the layout settings blob.
var Layout = Table{
	Name: "layoutSettings",
	Fields: []Field{
		{Name: "columnsDesktop", Columns: []string{"columnsDesktop", "columns_desktop"}, Kind: KindInt, Min: atLeast(1), Default: defaultLayout.ColumnsDesktop},
		{Name: "columnsTablet", Columns: []string{"columnsTablet", "columns_tablet"}, Kind: KindInt, Min: atLeast(1), Default: defaultLayout.ColumnsTablet},
		{Name: "columnsMobile", Columns: []string{"columnsMobile", "columns_mobile"}, Kind: KindInt, Min: atLeast(1), Default: defaultLayout.ColumnsMobile},
		{Name: "gap", Columns: []string{"gap"}, Kind: KindInt, Min: atLeast(0), Default: defaultLayout.Gap},
		{Name: "isAutoFit", Columns: []string{"isAutoFit", "is_auto_fit", "autoFit"}, Kind: KindBool},
		{
			Name:    "preset",
			Columns: []string{"preset"},
			Kind:    KindEnum,
			Enum: []string{
				string(models.PresetStandard), string(models.PresetAdaptive),
				string(models.PresetMasonry), string(models.PresetCustom),
			},
			Default: string(defaultLayout.Preset),
		},
	},
}

// Theme describes the keys of the theme settings blob.
var Theme = Table{
	Name: "themeSettings",
	Fields: []Field{
		{Name: "primaryColor", Columns: []string{"primaryColor", "primary_color", "primary"}, Default: defaultTheme.PrimaryColor},
		{Name: "secondaryColor", Columns: []string{"secondaryColor", "secondary_color", "secondary"}, Default: defaultTheme.SecondaryColor},
		{Name: "accentColor", Columns: []string{"accentColor", "accent_color", "accent"}, Default: defaultTheme.AccentColor},
		{Name: "textColor", Columns: []string{"textColor", "text_color", "text"}, Default: defaultTheme.TextColor},
		{Name: "backgroundColor", Columns: []string{"backgroundColor", "background_color", "bg"}, Default: defaultTheme.BackgroundColor},
		{Name: "cardColor", Columns: []string{"cardColor", "card_color", "card"}, Default: defaultTheme.CardColor},
		{Name: "borderRadius", Columns: []string{"borderRadius", "border_radius", "radius"}, Default: defaultTheme.BorderRadius},
	},
}

// Projects is the mapping table of the projects table.
var Projects = Table{
	Name:          "projects",
	ArrivalColumn: "created_at",
	Fields: []Field{
		{Name: "id", Columns: []string{"id"}, OmitEmpty: true},
		{Name: "title", Columns: []string{"title"}},
		{Name: "description", Columns: []string{"description"}},
		{Name: "imageUrl", Columns: []string{"image_url", "imageUrl"}, Legacy: "imageUrl"},
		{Name: "externalUrl", Columns: []string{"external_url", "externalUrl"}, Legacy: "externalUrl"},
		{Name: "category", Columns: []string{"category"}},
		{Name: "order", Columns: []string{"order"}, ReadOnly: []string{"sort_order"}, Legacy: "idx", Kind: KindInt},
		{
			Name:    "actionType",
			Columns: []string{"action_type", "actionType"},
			Legacy:  "actionType",
			Kind:    KindEnum,
			Enum:    []string{string(models.ActionExternal), string(models.ActionInternal)},
			Default: string(models.ActionExternal),
		},
		{Name: "detailContent", Columns: []string{"detail_content", "detailContent"}, Legacy: "detailContent"},
		{Name: "detailGallery", Columns: []string{"detail_gallery", "detailGallery"}, Legacy: "detailGallery"},
		{Name: "detailVideo", Columns: []string{"detail_video", "detailVideo"}, Legacy: "detailVideo"},
	},
}

// Resources is the mapping table of the resources table.
var Resources = Table{
	Name:          "resources",
	ArrivalColumn: "created_at",
	Fields: []Field{
		{Name: "id", Columns: []string{"id"}, OmitEmpty: true},
		{Name: "title", Columns: []string{"title"}},
		{Name: "description", Columns: []string{"description"}},
		{Name: "fileUrl", Columns: []string{"file_url", "fileUrl"}, Legacy: "fileUrl"},
		{
			Name:    "fileType",
			Columns: []string{"file_type", "fileType"},
			Legacy:  "fileType",
			Kind:    KindEnum,
			Enum:    []string{string(models.FileTypeExcel), string(models.FileTypeJSON)},
			Default: string(models.FileTypeExcel),
		},
		{Name: "order", Columns: []string{"order"}, ReadOnly: []string{"sort_order"}, Legacy: "idx", Kind: KindInt},
	},
}

// Profiles is the mapping table of the profiles table.
var Profiles = Table{
	Name:          "profiles",
	ArrivalColumn: "created_at",
	Fields: []Field{
		{Name: "id", Columns: []string{"id"}, OmitEmpty: true},
		{Name: "name", Columns: []string{"name"}},
		{Name: "role", Columns: []string{"role"}},
		{Name: "bio", Columns: []string{"bio"}},
		{Name: "photoUrl", Columns: []string{"photo_url", "photoUrl"}, Legacy: "photoUrl"},
		{Name: "appLogoUrl", Columns: []string{"app_logo_url", "appLogoUrl"}, Legacy: "appLogoUrl"},
		{Name: "email", Columns: []string{"email"}},
		{Name: "linkedin", Columns: []string{"linkedin"}},
		{Name: "linkedinLabel", Columns: []string{"linkedin_label", "linkedinLabel"}, Legacy: "linkedinLabel"},
		{Name: "github", Columns: []string{"github"}},
		{Name: "githubLabel", Columns: []string{"github_label", "githubLabel"}, Legacy: "githubLabel"},
		{Name: "socialLabel", Columns: []string{"social_label", "socialLabel"}, Legacy: "socialLabel"},
		{Name: "layoutSettings", Columns: []string{"layout_settings", "layoutSettings"}, Legacy: "layoutSettings", Kind: KindSettings, Settings: &Layout},
		{Name: "themeSettings", Columns: []string{"theme_settings", "themeSettings"}, Legacy: "themeSettings", Kind: KindSettings, Settings: &Theme},
	},
}

// All lists the mapping tables of the remote tables.
func All() []Table {
	return []Table{Projects, Resources, Profiles}
}

// ExpectedColumns returns the accepted spellings per field per table, the
// shape the column drift report compares against.
func ExpectedColumns() models.ExpectedColumns {
	out := make(models.ExpectedColumns)
	for _, t := range All() {
		out[t.Name] = t.AcceptedColumns()
	}
	return out
}
