package schema

import (
	"github.com/eduproject/catalog/models"
	"github.com/eduproject/catalog/store"
)

// DecodeProject reads a project from a row of any supported spelling.
func DecodeProject(row store.Row) models.Project {
	r := Projects.Decode(row)
	return models.Project{
		ID:            r.String("id"),
		Title:         r.String("title"),
		Description:   r.String("description"),
		ImageURL:      r.String("imageUrl"),
		ExternalURL:   r.String("externalUrl"),
		Category:      r.String("category"),
		Order:         r.Int("order"),
		ActionType:    models.ActionType(r.String("actionType")),
		DetailContent: r.String("detailContent"),
		DetailGallery: r.String("detailGallery"),
		DetailVideo:   r.String("detailVideo"),
	}
}

// EncodeProject writes a project into a row spelled according to naming.
func EncodeProject(p models.Project, naming Naming) store.Row {
	return Projects.Encode(Record{
		"id":            p.ID,
		"title":         p.Title,
		"description":   p.Description,
		"imageUrl":      p.ImageURL,
		"externalUrl":   p.ExternalURL,
		"category":      p.Category,
		"order":         p.Order,
		"actionType":    string(p.ActionType),
		"detailContent": p.DetailContent,
		"detailGallery": p.DetailGallery,
		"detailVideo":   p.DetailVideo,
	}, naming)
}

func DecodeResource(row store.Row) models.DownloadItem {
	r := Resources.Decode(row)
	return models.DownloadItem{
		ID:          r.String("id"),
		Title:       r.String("title"),
		Description: r.String("description"),
		FileURL:     r.String("fileUrl"),
		FileType:    models.FileType(r.String("fileType")),
		Order:       r.Int("order"),
	}
}

func EncodeResource(d models.DownloadItem, naming Naming) store.Row {
	return Resources.Encode(Record{
		"id":          d.ID,
		"title":       d.Title,
		"description": d.Description,
		"fileUrl":     d.FileURL,
		"fileType":    string(d.FileType),
		"order":       d.Order,
	}, naming)
}

// DecodeProfile reads the profile, decoding both settings blobs.
func DecodeProfile(row store.Row) models.DeveloperProfile {
	r := Profiles.Decode(row)
	return models.DeveloperProfile{
		ID:             r.String("id"),
		Name:           r.String("name"),
		Role:           r.String("role"),
		Bio:            r.String("bio"),
		PhotoURL:       r.String("photoUrl"),
		AppLogoURL:     r.String("appLogoUrl"),
		Email:          r.String("email"),
		LinkedIn:       r.String("linkedin"),
		LinkedInLabel:  r.String("linkedinLabel"),
		GitHub:         r.String("github"),
		GitHubLabel:    r.String("githubLabel"),
		SocialLabel:    r.String("socialLabel"),
		LayoutSettings: layoutFromRecord(r.Record("layoutSettings")),
		ThemeSettings:  themeFromRecord(r.Record("themeSettings")),
	}
}

func EncodeProfile(p models.DeveloperProfile, naming Naming) store.Row {
	return Profiles.Encode(Record{
		"id":             p.ID,
		"name":           p.Name,
		"role":           p.Role,
		"bio":            p.Bio,
		"photoUrl":       p.PhotoURL,
		"appLogoUrl":     p.AppLogoURL,
		"email":          p.Email,
		"linkedin":       p.LinkedIn,
		"linkedinLabel":  p.LinkedInLabel,
		"github":         p.GitHub,
		"githubLabel":    p.GitHubLabel,
		"socialLabel":    p.SocialLabel,
		"layoutSettings": layoutRecord(p.LayoutSettings),
		"themeSettings":  themeRecord(p.ThemeSettings),
	}, naming)
}

// DecodeLayout reads layout settings from a blob or structured value,
// defaulting every key that is absent or malformed.
func DecodeLayout(v any) models.LayoutSettings {
	m, err := ParseSettings(v)
	if err != nil {
		return models.DefaultLayout()
	}
	return layoutFromRecord(Layout.Decode(m))
}

// EncodeLayout serializes layout settings into their text blob.
func EncodeLayout(l models.LayoutSettings) string {
	return EncodeSettings(Layout.Encode(layoutRecord(l), NamingPrimary))
}

func DecodeTheme(v any) models.ThemeSettings {
	m, err := ParseSettings(v)
	if err != nil {
		return models.DefaultTheme()
	}
	return themeFromRecord(Theme.Decode(m))
}

func EncodeTheme(t models.ThemeSettings) string {
	return EncodeSettings(Theme.Encode(themeRecord(t), NamingPrimary))
}

func layoutFromRecord(r Record) models.LayoutSettings {
	return models.LayoutSettings{
		ColumnsDesktop: r.Int("columnsDesktop"),
		ColumnsTablet:  r.Int("columnsTablet"),
		ColumnsMobile:  r.Int("columnsMobile"),
		Gap:            r.Int("gap"),
		IsAutoFit:      r.Bool("isAutoFit"),
		Preset:         models.LayoutPreset(r.String("preset")),
	}
}

func layoutRecord(l models.LayoutSettings) Record {
	return Record{
		"columnsDesktop": l.ColumnsDesktop,
		"columnsTablet":  l.ColumnsTablet,
		"columnsMobile":  l.ColumnsMobile,
		"gap":            l.Gap,
		"isAutoFit":      l.IsAutoFit,
		"preset":         string(l.Preset),
	}
}

func themeFromRecord(r Record) models.ThemeSettings {
	return models.ThemeSettings{
		PrimaryColor:    r.String("primaryColor"),
		SecondaryColor:  r.String("secondaryColor"),
		AccentColor:     r.String("accentColor"),
		TextColor:       r.String("textColor"),
		BackgroundColor: r.String("backgroundColor"),
		CardColor:       r.String("cardColor"),
		BorderRadius:    r.String("borderRadius"),
	}
}

func themeRecord(t models.ThemeSettings) Record {
	return Record{
		"primaryColor":    t.PrimaryColor,
		"secondaryColor":  t.SecondaryColor,
		"accentColor":     t.AccentColor,
		"textColor":       t.TextColor,
		"backgroundColor": t.BackgroundColor,
		"cardColor":       t.CardColor,
		"borderRadius":    t.BorderRadius,
	}
}
